package week

import (
	"fmt"
	"time"
)

const (
	// LayoutISO is the date layout used everywhere a day is written down.
	LayoutISO = "2006-01-02"
)

// Truncate maps any instant to the canonical midnight-UTC value for its
// calendar day. All day arithmetic in this package works on truncated values.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Truncate(a).Equal(Truncate(b))
}

// ParseDate parses an ISO formatted day ("2025-10-13") into its canonical value.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, v)
	if err != nil {
		return time.Time{}, err
	}
	return Truncate(t), nil
}

// FormatDate renders a day in ISO form.
func FormatDate(t time.Time) string {
	return Truncate(t).Format(LayoutISO)
}

// Week is the Monday-anchored week containing a date. Its value is the Monday
// itself; the remaining six days are derived by offset.
type Week struct {
	Start time.Time
}

// Containing returns the week holding the given date.
func Containing(date time.Time) Week {
	return Week{Start: monday(date)}
}

// Current returns the week holding now.
func Current(now time.Time) Week {
	return Containing(now)
}

func monday(date time.Time) time.Time {
	d := Truncate(date)
	sinceMonday := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -sinceMonday)
}

// Days lists the seven days of the week, Monday through Sunday.
func (w Week) Days() [7]time.Time {
	var days [7]time.Time
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// Day returns the day at index i (0 = Monday, 6 = Sunday).
func (w Week) Day(i int) (time.Time, bool) {
	if i < 0 || i > 6 {
		return time.Time{}, false
	}
	return w.Start.AddDate(0, 0, i), true
}

// End returns the Sunday of the week.
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, 6)
}

// Next returns the following week.
func (w Week) Next() Week {
	return Week{Start: w.Start.AddDate(0, 0, 7)}
}

// Prev returns the preceding week.
func (w Week) Prev() Week {
	return Week{Start: w.Start.AddDate(0, 0, -7)}
}

// Contains reports whether the date falls inside the week.
func (w Week) Contains(date time.Time) bool {
	d := Truncate(date)
	return !d.Before(w.Start) && !d.After(w.End())
}

// Format renders the week range, e.g. "Oct 13-19, 2025" or, crossing a month
// boundary, "Sep 29-Oct 5, 2025".
func (w Week) Format() string {
	end := w.End()
	if w.Start.Month() == end.Month() {
		return fmt.Sprintf("%s %d-%d, %d",
			w.Start.Format("Jan"), w.Start.Day(), end.Day(), w.Start.Year())
	}
	return fmt.Sprintf("%s %d-%s %d, %d",
		w.Start.Format("Jan"), w.Start.Day(),
		end.Format("Jan"), end.Day(), w.Start.Year())
}

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayName returns the short weekday name for a day index (0 = Mon).
func WeekdayName(i int) string {
	if i < 0 || i > 6 {
		return "???"
	}
	return weekdayNames[i]
}

// FullWeekdayName returns the long weekday name for a date.
func FullWeekdayName(date time.Time) string {
	return Truncate(date).Format("Monday")
}

// IndexOf returns the position of date inside the week, or -1 when the date
// belongs to a different week.
func (w Week) IndexOf(date time.Time) int {
	for i, d := range w.Days() {
		if SameDay(d, date) {
			return i
		}
	}
	return -1
}
