package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/week"
)

// Stats tallies statuses per habit over a trailing window ending on End.
type Stats struct {
	Window string
	End    time.Time

	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not tally, no persistence")
	}

	days, err := week.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	from, to := week.WindowEnding(n.End, days)

	tallies := n.Persistence.Stats(from, to)
	rows := make([]printers.StatRow, 0, len(tallies))
	for _, h := range n.Persistence.Habits() {
		rows = append(rows, printers.StatRow{Habit: h, Tally: tallies[h.ID]})
	}

	fmt.Println("")
	title := fmt.Sprintf("Stats %s to %s", week.FormatDate(from), week.FormatDate(to))
	pp := printers.PrettyPrint{}
	pp.Stats(title, rows...)

	return nil
}
