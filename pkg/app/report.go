package app

import (
	"time"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/week"
)

// ReportRow is one habit's weekly tally.
type ReportRow struct {
	Habit    string
	Done     int
	Skipped  int
	Unmarked int
}

// Rate is the completion percentage over tracked days (done + skipped). A
// habit never tracked this week rates 0.
func (r ReportRow) Rate() int {
	tracked := r.Done + r.Skipped
	if tracked == 0 {
		return 0
	}
	return int(float64(r.Done) / float64(tracked) * 100.0)
}

// ReportEntry is one habit's status and note on one day.
type ReportEntry struct {
	Habit  string
	Status glyph.Status
	Note   string
}

// ReportDay is one day's breakdown.
type ReportDay struct {
	Date    time.Time
	Entries []ReportEntry
}

// HasActivity reports whether anything was recorded on the day.
func (d ReportDay) HasActivity() bool {
	for _, e := range d.Entries {
		if e.Status != glyph.Unmarked || e.Note != "" {
			return true
		}
	}
	return false
}

// WeekReport is the structured weekly summary the exporters render. It is
// built from read accessors only, so staged edits are reflected.
type WeekReport struct {
	Week        week.Week
	GeneratedAt time.Time
	Summary     []ReportRow
	Days        []ReportDay
}

// WeekReport assembles the report for the week currently in view.
func (s *Session) WeekReport() WeekReport {
	report := WeekReport{
		Week:        s.currentWeek,
		GeneratedAt: s.Now(),
	}

	habits := s.Habits()
	days := s.currentWeek.Days()

	for _, h := range habits {
		row := ReportRow{Habit: h.Name}
		for _, day := range days {
			switch s.Status(h.ID, day) {
			case glyph.Done:
				row.Done++
			case glyph.Skipped:
				row.Skipped++
			default:
				row.Unmarked++
			}
		}
		report.Summary = append(report.Summary, row)
	}

	for _, day := range days {
		rd := ReportDay{Date: day}
		for _, h := range habits {
			e := ReportEntry{
				Habit:  h.Name,
				Status: s.Status(h.ID, day),
			}
			if l, ok := s.Persistence.Log(h.ID, day); ok {
				e.Note = l.Note
			}
			rd.Entries = append(rd.Entries, e)
		}
		report.Days = append(report.Days, rd)
	}

	return report
}
