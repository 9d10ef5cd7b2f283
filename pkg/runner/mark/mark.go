package mark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/week"
)

// Mark sets a habit's status for a single day. Marking a Weekly habit Done
// back-fills the earlier unmarked days of that week as Skipped.
type Mark struct {
	Query  string
	On     time.Time
	Status glyph.Status

	Persistence store.Persistence
}

func (n *Mark) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not mark, no persistence")
	}

	h, ok := habit.Find(n.Persistence.Habits(), n.Query)
	if !ok {
		return fmt.Errorf("no habit matches %q: %w", n.Query, store.ErrHabitNotFound)
	}

	on := week.Truncate(n.On)

	session := app.NewSession(n.Persistence)
	if err := session.Mark(h.ID, on, n.Status); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("%s - %s", week.FullWeekdayName(on), on.Format("January 2, 2006")))
	pp.Day(n.Persistence.Habits(), n.Persistence.LogsForDate(on))

	return nil
}
