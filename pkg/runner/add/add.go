package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/store"
)

type Add struct {
	Name        string
	Description string
	Frequency   string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	h, err := n.Persistence.AddHabit(n.Name)
	if err != nil {
		return err
	}
	if h == nil {
		return errors.New("can not add a habit without a name")
	}

	if n.Description != "" {
		if err := n.Persistence.SetDescription(h.ID, n.Description); err != nil {
			return err
		}
	}
	if n.Frequency != "" {
		f, err := parseFrequency(n.Frequency)
		if err != nil {
			return err
		}
		if err := n.Persistence.SetFrequency(h.ID, f); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	all := n.Persistence.Habits()
	pp.TitleWithCount("Habits", len(all))
	pp.Habits(all...)

	return nil
}

func parseFrequency(s string) (habit.Frequency, error) {
	switch s {
	case "daily":
		return habit.Daily, nil
	case "weekly":
		return habit.Weekly, nil
	case "as-needed", "asneeded":
		return habit.AsNeeded, nil
	}
	return habit.Daily, fmt.Errorf("unknown frequency %q, want daily, weekly or as-needed", s)
}
