package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/week"
)

// Note attaches a free-form note to a habit's log for a day. An empty text
// clears the note.
type Note struct {
	Query string
	On    time.Time
	Text  string

	Persistence store.Persistence
}

func (n *Note) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not note, no persistence")
	}

	h, ok := habit.Find(n.Persistence.Habits(), n.Query)
	if !ok {
		return fmt.Errorf("no habit matches %q: %w", n.Query, store.ErrHabitNotFound)
	}

	on := week.Truncate(n.On)
	if err := n.Persistence.SetNote(h.ID, on, n.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("%s - %s", week.FullWeekdayName(on), on.Format("January 2, 2006")))
	pp.Day(n.Persistence.Habits(), n.Persistence.LogsForDate(on))

	return nil
}
