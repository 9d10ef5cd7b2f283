package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/habit"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" habit")
	default:
		_, _ = c.Println(" habits")
	}
}

// Habits lists the registry in display order with frequency annotations.
func (pp *PrettyPrint) Habits(habits ...habit.Habit) {
	if len(habits) == 0 {
		pp.none()
		return
	}

	t := color.New()
	f := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, h := range habits {
		if pp.ShowID {
			id := shortID(h.ID.String())
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = t.Printf("%s %s", glyph.Unmarked.Glyph().Symbol, h.Name)
		_, _ = f.Printf("  (%s)", h.Frequency.Description())
		if h.Description != "" {
			_, _ = f.Printf(" %s", h.Description)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Day lists each habit with its status glyph for a single date.
func (pp *PrettyPrint) Day(habits []habit.Habit, logs []habit.Log) {
	if len(habits) == 0 {
		pp.none()
		return
	}

	t := color.New()
	n := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	byHabit := make(map[string]habit.Log, len(logs))
	for _, l := range logs {
		byHabit[l.HabitID.String()] = l
	}

	for _, h := range habits {
		if pp.ShowID {
			id := shortID(h.ID.String())
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		l, ok := byHabit[h.ID.String()]
		status := glyph.Unmarked
		if ok {
			status = l.Status
		}
		_, _ = t.Printf("%s %s", status.Glyph().Symbol, h.Name)
		if ok && l.Note != "" {
			_, _ = n.Printf("  %s", l.Note)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// shortID trims a uuid to the first block, enough to disambiguate on screen.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
