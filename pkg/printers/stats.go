package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/store"
)

// StatRow pairs a habit with its tally over some date range.
type StatRow struct {
	Habit habit.Habit
	Tally store.Tally
}

// Rate reports done/(done+skipped) as a whole percentage. Days the habit was
// never marked do not count against it.
func (r StatRow) Rate() int {
	tracked := r.Tally.Done + r.Tally.Skipped
	if tracked == 0 {
		return 0
	}
	return r.Tally.Done * 100 / tracked
}

// Stats renders a tally table for the given rows.
func (pp *PrettyPrint) Stats(title string, rows ...StatRow) {
	fmt.Println(glyph.Underline(glyph.Bold(title)))

	if len(rows) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("HABIT", "DONE", "SKIPPED", "UNMARKED", "RATE")

	for _, r := range rows {
		tbl.AddRow(r.Habit.Name, r.Tally.Done, r.Tally.Skipped, r.Tally.Unmarked, fmt.Sprintf("%d%%", r.Rate()))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
