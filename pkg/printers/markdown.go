package printers

import (
	"fmt"
	"strings"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/week"
)

// Markdown renders a weekly report as a markdown document.
func Markdown(r app.WeekReport) string {
	var b strings.Builder

	b.WriteString("# Habit Tracking Report\n\n")
	fmt.Fprintf(&b, "**Week of %s**\n\n", r.Week.Format())
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("January 2, 2006 at 3:04 PM"))

	b.WriteString("## Weekly Summary\n\n")

	if len(r.Summary) == 0 {
		b.WriteString("*No habits tracked this week.*\n\n")
		return b.String()
	}

	b.WriteString("| Habit | Done | Skipped | Unmarked | Completion Rate |\n")
	b.WriteString("|-------|------|---------|----------|------------------|\n")
	for _, row := range r.Summary {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d%% |\n",
			row.Habit, row.Done, row.Skipped, row.Unmarked, row.Rate())
	}
	b.WriteString("\n")

	b.WriteString("## Daily Breakdown\n\n")

	for _, day := range r.Days {
		fmt.Fprintf(&b, "### %s - %s\n\n", week.FullWeekdayName(day.Date), day.Date.Format("January 2, 2006"))

		for _, e := range day.Entries {
			fmt.Fprintf(&b, "- **%s**: %s\n", e.Habit, statusLine(e.Status))
			if e.Note != "" {
				fmt.Fprintf(&b, "  *Note: %s*\n", e.Note)
			}
		}

		if !day.HasActivity() {
			b.WriteString("*No activity recorded for this day.*\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*Report generated by habits*\n")

	return b.String()
}

func statusLine(s glyph.Status) string {
	switch s {
	case glyph.Done:
		return "✓ Done"
	case glyph.Skipped:
		return "✗ Skipped"
	default:
		return "○ Not tracked"
	}
}
