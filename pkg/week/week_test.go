package week

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContainingFindsMonday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", date(2025, time.October, 15), date(2025, time.October, 13)},
		{"sunday", date(2025, time.October, 19), date(2025, time.October, 13)},
		{"monday", date(2025, time.October, 13), date(2025, time.October, 13)},
	}
	for _, tc := range cases {
		w := Containing(tc.in)
		if !w.Start.Equal(tc.want) {
			t.Fatalf("%s: expected monday %s, got %s", tc.name, tc.want, w.Start)
		}
	}
}

func TestDays(t *testing.T) {
	w := Week{Start: date(2025, time.October, 13)}
	days := w.Days()
	if !days[0].Equal(date(2025, time.October, 13)) {
		t.Fatalf("expected monday first, got %s", days[0])
	}
	if !days[6].Equal(date(2025, time.October, 19)) {
		t.Fatalf("expected sunday last, got %s", days[6])
	}
}

func TestDayIndexBounds(t *testing.T) {
	w := Week{Start: date(2025, time.October, 13)}
	if _, ok := w.Day(6); !ok {
		t.Fatalf("expected index 6 to be valid")
	}
	if _, ok := w.Day(7); ok {
		t.Fatalf("expected index 7 to be rejected")
	}
	if _, ok := w.Day(-1); ok {
		t.Fatalf("expected index -1 to be rejected")
	}
}

func TestNavigation(t *testing.T) {
	w := Week{Start: date(2025, time.October, 13)}
	if next := w.Next(); !next.Start.Equal(date(2025, time.October, 20)) {
		t.Fatalf("unexpected next week start: %s", next.Start)
	}
	if prev := w.Prev(); !prev.Start.Equal(date(2025, time.October, 6)) {
		t.Fatalf("unexpected prev week start: %s", prev.Start)
	}
}

func TestFormat(t *testing.T) {
	w := Week{Start: date(2025, time.October, 13)}
	if got := w.Format(); got != "Oct 13-19, 2025" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestFormatCrossMonth(t *testing.T) {
	w := Week{Start: date(2025, time.September, 29)}
	if got := w.Format(); got != "Sep 29-Oct 5, 2025" {
		t.Fatalf("unexpected cross-month format: %s", got)
	}
}

func TestWeekdayNames(t *testing.T) {
	if WeekdayName(0) != "Mon" || WeekdayName(3) != "Thu" || WeekdayName(6) != "Sun" {
		t.Fatalf("unexpected short weekday names")
	}
	if WeekdayName(7) != "???" {
		t.Fatalf("expected ??? for out of range index")
	}
	if FullWeekdayName(date(2025, time.October, 13)) != "Monday" {
		t.Fatalf("expected Monday")
	}
	if FullWeekdayName(date(2025, time.October, 16)) != "Thursday" {
		t.Fatalf("expected Thursday")
	}
}

func TestIndexOf(t *testing.T) {
	w := Week{Start: date(2025, time.October, 13)}
	if got := w.IndexOf(date(2025, time.October, 16)); got != 3 {
		t.Fatalf("expected index 3, got %d", got)
	}
	if got := w.IndexOf(date(2025, time.October, 20)); got != -1 {
		t.Fatalf("expected -1 for a different week, got %d", got)
	}
}

func TestTruncateNormalizesZone(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	in := time.Date(2025, time.October, 15, 23, 30, 0, 0, loc)
	got := Truncate(in)
	if !got.Equal(date(2025, time.October, 15)) {
		t.Fatalf("expected wall-clock day to be preserved, got %s", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-10-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(d) != "2025-10-13" {
		t.Fatalf("round trip changed date: %s", FormatDate(d))
	}
	if _, err := ParseDate("13/10/2025"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestParseWindow(t *testing.T) {
	days, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected default of 7 days, got %d", days)
	}

	days, err = ParseWindow("2w3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 17 {
		t.Fatalf("expected 17 days, got %d", days)
	}

	if _, err := ParseWindow("90m"); err == nil {
		t.Fatalf("expected sub-day units to be rejected")
	}
	if _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
}

func TestWindowEnding(t *testing.T) {
	start, end := WindowEnding(date(2025, time.October, 19), 7)
	if !start.Equal(date(2025, time.October, 13)) || !end.Equal(date(2025, time.October, 19)) {
		t.Fatalf("unexpected range: %s - %s", start, end)
	}
}
