package app

import (
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/week"
)

// Navigation commits the staged change at every boundary that moves the
// selection, so an in-flight edit can never be silently lost. Only the
// explicit Cancel discards.

// NextDay moves one day forward, wrapping into the next week's Monday.
func (s *Session) NextDay() error {
	if err := s.Commit(); err != nil {
		return err
	}
	if s.dayIdx < 6 {
		s.dayIdx++
	} else {
		s.currentWeek = s.currentWeek.Next()
		s.dayIdx = 0
	}
	s.habitIdx = 0
	return nil
}

// PrevDay moves one day back, wrapping into the previous week's Sunday.
func (s *Session) PrevDay() error {
	if err := s.Commit(); err != nil {
		return err
	}
	if s.dayIdx > 0 {
		s.dayIdx--
	} else {
		s.currentWeek = s.currentWeek.Prev()
		s.dayIdx = 6
	}
	s.habitIdx = 0
	return nil
}

// NextHabit moves the habit cursor down, wrapping to the top.
func (s *Session) NextHabit() error {
	if err := s.Commit(); err != nil {
		return err
	}
	if count := len(s.Habits()); count > 0 {
		s.habitIdx = (s.habitIdx + 1) % count
	}
	return nil
}

// PrevHabit moves the habit cursor up, wrapping to the bottom.
func (s *Session) PrevHabit() error {
	if err := s.Commit(); err != nil {
		return err
	}
	if count := len(s.Habits()); count > 0 {
		s.habitIdx = (s.habitIdx + count - 1) % count
	}
	return nil
}

// NextWeek moves the view one week forward, keeping the day position.
func (s *Session) NextWeek() error {
	if err := s.Commit(); err != nil {
		return err
	}
	s.currentWeek = s.currentWeek.Next()
	return nil
}

// PrevWeek moves the view one week back, keeping the day position.
func (s *Session) PrevWeek() error {
	if err := s.Commit(); err != nil {
		return err
	}
	s.currentWeek = s.currentWeek.Prev()
	return nil
}

// GoToToday jumps to the current week with today selected.
func (s *Session) GoToToday() error {
	if err := s.Commit(); err != nil {
		return err
	}
	now := s.Now()
	s.currentWeek = week.Current(now)
	if idx := s.currentWeek.IndexOf(now); idx >= 0 {
		s.dayIdx = idx
	} else {
		s.dayIdx = 0
	}
	return nil
}

// SelectHabit places the cursor on the habit at the given sorted position.
func (s *Session) SelectHabit(idx int) error {
	if err := s.Commit(); err != nil {
		return err
	}
	if count := len(s.Habits()); count > 0 && idx >= 0 && idx < count {
		s.habitIdx = idx
	}
	return nil
}

// ClampHabitSelection pulls the cursor back in range after a deletion.
func (s *Session) ClampHabitSelection() {
	count := len(s.Habits())
	if count == 0 {
		s.habitIdx = 0
		return
	}
	if s.habitIdx >= count {
		s.habitIdx = count - 1
	}
}

// Registry passthroughs for the management surfaces. Each commits any staged
// edit first: management is a view transition away from the editing surface.

// AddHabit appends a habit; empty names are a no-op.
func (s *Session) AddHabit(name string) (*habit.Habit, error) {
	if err := s.Commit(); err != nil {
		return nil, err
	}
	return s.Persistence.AddHabit(name)
}

// RenameSelected renames the habit under the cursor.
func (s *Session) RenameSelected(name string) error {
	h, ok := s.SelectedHabit()
	if !ok {
		return nil
	}
	return s.Persistence.RenameHabit(h.ID, name)
}

// DeleteSelected removes the habit under the cursor and its logs.
func (s *Session) DeleteSelected() error {
	h, ok := s.SelectedHabit()
	if !ok {
		return nil
	}
	if err := s.Persistence.DeleteHabit(h.ID); err != nil {
		return err
	}
	s.ClampHabitSelection()
	return nil
}

// MoveSelectedUp swaps the habit under the cursor with the one above it.
func (s *Session) MoveSelectedUp() error {
	h, ok := s.SelectedHabit()
	if !ok || s.habitIdx == 0 {
		return nil
	}
	if err := s.Persistence.ReorderHabit(h.ID, s.habitIdx-1); err != nil {
		return err
	}
	s.habitIdx--
	return nil
}

// MoveSelectedDown swaps the habit under the cursor with the one below it.
func (s *Session) MoveSelectedDown() error {
	h, ok := s.SelectedHabit()
	if !ok || s.habitIdx >= len(s.Habits())-1 {
		return nil
	}
	if err := s.Persistence.ReorderHabit(h.ID, s.habitIdx+1); err != nil {
		return err
	}
	s.habitIdx++
	return nil
}

// CycleSelectedFrequency steps the habit under the cursor to the next
// frequency option.
func (s *Session) CycleSelectedFrequency() error {
	h, ok := s.SelectedHabit()
	if !ok {
		return nil
	}
	return s.Persistence.SetFrequency(h.ID, h.Frequency.Cycle())
}
