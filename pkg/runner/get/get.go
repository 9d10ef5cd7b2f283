package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/week"
)

type Get struct {
	ShowID bool

	// On selects a single day view; nil lists the registry.
	On *time.Time

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	habits := n.Persistence.Habits()

	if n.On != nil {
		on := week.Truncate(*n.On)
		symbol := app.NewSession(n.Persistence).DaySymbol(on)
		pp.Title(fmt.Sprintf("%s - %s  %s", week.FullWeekdayName(on), on.Format("January 2, 2006"), symbol))
		pp.Day(habits, n.Persistence.LogsForDate(on))
		return nil
	}

	pp.TitleWithCount("Habits", len(habits))
	pp.Habits(habits...)

	return nil
}
