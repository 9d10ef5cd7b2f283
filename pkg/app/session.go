// Package app holds the habit-logging session: the staged-edit buffer and its
// commit protocol, weekly propagation, day aggregation, and the navigation
// state the interactive surfaces share.
package app

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/week"
)

// StagedChange is a single pending status edit that has not been written to
// the store yet. At most one exists per session.
type StagedChange struct {
	HabitID uuid.UUID
	Date    time.Time
	Status  glyph.Status
}

// Session wires a persistence backend to the selection and staging state of
// one interactive run. The staged slot is a session field, never package
// state, so independent sessions (tests included) cannot interfere.
type Session struct {
	Persistence store.Persistence

	// Now returns the current instant; tests pin it.
	Now func() time.Time

	currentWeek week.Week
	dayIdx      int // 0 = Monday .. 6 = Sunday
	habitIdx    int

	staged *StagedChange
}

// NewSession starts a session on the week containing today, with today
// selected.
func NewSession(p store.Persistence) *Session {
	s := &Session{
		Persistence: p,
		Now:         time.Now,
	}
	now := s.Now()
	s.currentWeek = week.Current(now)
	if idx := s.currentWeek.IndexOf(now); idx >= 0 {
		s.dayIdx = idx
	}
	return s
}

// Week returns the week currently in view.
func (s *Session) Week() week.Week {
	return s.currentWeek
}

// SelectedDate returns the day currently selected in the week.
func (s *Session) SelectedDate() time.Time {
	d, _ := s.currentWeek.Day(s.dayIdx)
	return d
}

// SelectedDayIndex returns the selected day position (0 = Monday).
func (s *Session) SelectedDayIndex() int {
	return s.dayIdx
}

// SelectedHabitIndex returns the selected habit position in the sorted list.
func (s *Session) SelectedHabitIndex() int {
	return s.habitIdx
}

// Habits returns the registry sorted by display order. Frequency never
// filters the list; every habit shows on every day.
func (s *Session) Habits() []habit.Habit {
	return s.Persistence.Habits()
}

// SelectedHabit returns the habit under the cursor, if any.
func (s *Session) SelectedHabit() (habit.Habit, bool) {
	habits := s.Habits()
	if s.habitIdx < 0 || s.habitIdx >= len(habits) {
		return habit.Habit{}, false
	}
	return habits[s.habitIdx], true
}

// Toggle cycles the effective status of the selected habit and day into the
// staged slot. Memory only: nothing is persisted until Commit. Staging
// overwrites any previous staged tuple, even one for a different pair.
func (s *Session) Toggle() {
	h, ok := s.SelectedHabit()
	if !ok {
		return
	}
	date := s.SelectedDate()
	next := s.Status(h.ID, date).Cycle()
	s.staged = &StagedChange{HabitID: h.ID, Date: date, Status: next}
}

// Staged exposes the pending change, if any. Read-only; used by views to
// distinguish a staged edit from a committed one.
func (s *Session) Staged() (StagedChange, bool) {
	if s.staged == nil {
		return StagedChange{}, false
	}
	return *s.staged, true
}

// Commit writes the staged change, clears the slot, and runs the weekly
// propagation hook when a Weekly habit was committed Done. Calling Commit
// with nothing staged is a no-op and always safe.
func (s *Session) Commit() error {
	if s.staged == nil {
		return nil
	}
	change := *s.staged
	if err := s.Mark(change.HabitID, change.Date, change.Status); err != nil {
		return err
	}
	s.staged = nil
	return nil
}

// Mark writes a committed status for an arbitrary pair, running the weekly
// back-fill when a Weekly habit is marked Done. Commits and direct command
// line marks both land here so propagation has a single trigger point.
func (s *Session) Mark(habitID uuid.UUID, date time.Time, status glyph.Status) error {
	if err := s.Persistence.SetStatus(habitID, date, status); err != nil {
		return err
	}
	if h, ok := s.Persistence.Habit(habitID); ok {
		if h.Frequency == habit.Weekly && status == glyph.Done {
			return s.propagateWeekly(habitID, date)
		}
	}
	return nil
}

// Cancel discards the staged change without writing.
func (s *Session) Cancel() {
	s.staged = nil
}

// propagateWeekly back-fills the earlier days of the week containing doneDate
// as Skipped where they are still Unmarked. Later days and the done day are
// never touched, and an explicit status is never overwritten, which also
// makes the rule idempotent.
func (s *Session) propagateWeekly(habitID uuid.UUID, doneDate time.Time) error {
	w := week.Containing(doneDate)
	for _, day := range w.Days() {
		if !day.Before(week.Truncate(doneDate)) {
			continue
		}
		status := glyph.Unmarked
		if l, ok := s.Persistence.Log(habitID, day); ok {
			status = l.Status
		}
		if status != glyph.Unmarked {
			continue
		}
		if err := s.Persistence.SetStatus(habitID, day, glyph.Skipped); err != nil {
			return err
		}
	}
	return nil
}

// Status is the effective status for a pair: the staged value when it matches
// exactly, else the committed value, else Unmarked. What the user sees while
// editing is exactly what Commit would write.
func (s *Session) Status(habitID uuid.UUID, date time.Time) glyph.Status {
	if s.staged != nil && s.staged.HabitID == habitID && week.SameDay(s.staged.Date, date) {
		return s.staged.Status
	}
	if l, ok := s.Persistence.Log(habitID, date); ok {
		return l.Status
	}
	return glyph.Unmarked
}

// DaySymbol derives the single display symbol for a day from the effective
// statuses of all habits. It is re-derived on every read because staged edits
// change effective statuses without a persisted write.
func (s *Session) DaySymbol(date time.Time) glyph.DaySymbol {
	habits := s.Habits()
	if len(habits) == 0 {
		return glyph.Blank
	}
	if week.Truncate(date).After(week.Truncate(s.Now())) {
		return glyph.Blank
	}

	done, skipped, unmarked := 0, 0, 0
	for _, h := range habits {
		switch s.Status(h.ID, date) {
		case glyph.Done:
			done++
		case glyph.Skipped:
			skipped++
		default:
			unmarked++
		}
	}

	switch {
	case unmarked == len(habits):
		return glyph.Blank
	case done == len(habits):
		return glyph.FullyDone
	case skipped > 0:
		return glyph.HasSkip
	default:
		return glyph.Partial
	}
}

// Note returns the committed note for the selected habit and day.
func (s *Session) Note() string {
	h, ok := s.SelectedHabit()
	if !ok {
		return ""
	}
	if l, ok := s.Persistence.Log(h.ID, s.SelectedDate()); ok {
		return l.Note
	}
	return ""
}

// SetNote writes the note for the selected habit and day directly; notes do
// not pass through the staged slot.
func (s *Session) SetNote(text string) error {
	h, ok := s.SelectedHabit()
	if !ok {
		return nil
	}
	return s.Persistence.SetNote(h.ID, s.SelectedDate(), text)
}
