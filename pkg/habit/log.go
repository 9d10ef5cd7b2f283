package habit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/week"
)

// Date is a calendar day persisted in ISO form ("2025-10-14").
type Date struct {
	time.Time
}

// On wraps a time as its canonical calendar day.
func On(t time.Time) Date {
	return Date{Time: week.Truncate(t)}
}

// SameDay reports whether the date and then fall on the same calendar day.
func (d Date) SameDay(then time.Time) bool {
	return week.SameDay(d.Time, then)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(week.FormatDate(d.Time))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	t, err := week.ParseDate(v)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return week.FormatDate(d.Time)
}

// Log records the status of one habit on one day. The (HabitID, Date) pair is
// the composite key; at most one log exists per pair. A log only exists once a
// status or note was written for the pair, so a missing log reads as Unmarked.
type Log struct {
	HabitID uuid.UUID    `json:"habit_id"`
	Date    Date         `json:"date"`
	Status  glyph.Status `json:"status"`
	Note    string       `json:"note,omitempty"`
}

// NewLog creates an empty log entry for a habit and day.
func NewLog(habitID uuid.UUID, date time.Time) *Log {
	return &Log{
		HabitID: habitID,
		Date:    On(date),
	}
}
