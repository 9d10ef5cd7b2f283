package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/habit"
)

type testConfig struct {
	path   string
	export string
}

func (t testConfig) BasePath() string   { return t.path }
func (t testConfig) ExportPath() string { return t.export }

func load(t *testing.T, base string) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoadSeedsDefaults(t *testing.T) {
	base := t.TempDir()
	p := load(t, base)

	habits := p.Habits()
	if len(habits) != 4 {
		t.Fatalf("expected 4 seeded habits, got %d", len(habits))
	}
	if _, err := os.Stat(filepath.Join(base, "habits.json")); err != nil {
		t.Fatalf("expected seed document to be persisted immediately: %v", err)
	}

	// A second load must read the same document, not reseed.
	again := load(t, base)
	if got := again.Habits(); got[0].ID != habits[0].ID {
		t.Fatalf("reload produced different ids")
	}
}

func TestLoadEmptyFileReseeds(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "habits.json"), []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write empty document: %v", err)
	}

	p := load(t, base)
	if len(p.Habits()) != 4 {
		t.Fatalf("expected empty file to reseed defaults")
	}

	data, err := os.ReadFile(filepath.Join(base, "habits.json"))
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected reseeded document to be saved")
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "habits.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	_, err := Load(testConfig{path: base})
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestAddHabit(t *testing.T) {
	p := load(t, t.TempDir())

	h, err := p.AddHabit("  Journal  ")
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}
	if h.Name != "Journal" {
		t.Fatalf("expected trimmed name, got %q", h.Name)
	}
	if h.Order != 4 {
		t.Fatalf("expected order 4, got %d", h.Order)
	}
	if h.Frequency != habit.Daily {
		t.Fatalf("expected default frequency Daily")
	}
}

func TestAddHabitEmptyNameIsNoOp(t *testing.T) {
	p := load(t, t.TempDir())
	before := len(p.Habits())

	h, err := p.AddHabit("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != nil {
		t.Fatalf("expected no habit for empty name")
	}
	if len(p.Habits()) != before {
		t.Fatalf("expected registry unchanged")
	}
}

func TestRenameHabit(t *testing.T) {
	p := load(t, t.TempDir())
	id := p.Habits()[0].ID

	if err := p.RenameHabit(id, "Cold shower"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	h, _ := p.Habit(id)
	if h.Name != "Cold shower" {
		t.Fatalf("expected renamed habit, got %q", h.Name)
	}

	if err := p.RenameHabit(uuid.New(), "Ghost"); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestSetFrequency(t *testing.T) {
	p := load(t, t.TempDir())
	id := p.Habits()[0].ID

	if err := p.SetFrequency(id, habit.Weekly); err != nil {
		t.Fatalf("set frequency: %v", err)
	}
	h, _ := p.Habit(id)
	if h.Frequency != habit.Weekly {
		t.Fatalf("expected Weekly")
	}

	if err := p.SetFrequency(uuid.New(), habit.Daily); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestDeleteHabitCascadesLogs(t *testing.T) {
	p := load(t, t.TempDir())
	habits := p.Habits()
	victim := habits[1].ID
	keeper := habits[0].ID
	day := date(2025, time.October, 14)

	if err := p.SetStatus(victim, day, glyph.Done); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := p.SetStatus(keeper, day, glyph.Done); err != nil {
		t.Fatalf("set status: %v", err)
	}

	if err := p.DeleteHabit(victim); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := p.Log(victim, day); ok {
		t.Fatalf("expected victim's logs to be cascade deleted")
	}
	if _, ok := p.Log(keeper, day); !ok {
		t.Fatalf("expected other habit's logs to survive")
	}

	if err := p.DeleteHabit(victim); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound on second delete, got %v", err)
	}
}

func assertContiguous(t *testing.T, p Persistence) {
	t.Helper()
	for i, h := range p.Habits() {
		if h.Order != i {
			t.Fatalf("order not contiguous: position %d has order %d", i, h.Order)
		}
	}
}

func TestOrderContiguity(t *testing.T) {
	p := load(t, t.TempDir())

	if _, err := p.AddHabit("Walk"); err != nil {
		t.Fatalf("add: %v", err)
	}
	assertContiguous(t, p)

	habits := p.Habits()
	if err := p.DeleteHabit(habits[2].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	assertContiguous(t, p)

	habits = p.Habits()
	if err := p.ReorderHabit(habits[3].ID, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	assertContiguous(t, p)

	habits = p.Habits()
	if err := p.ReorderHabit(habits[0].ID, 99); err != nil {
		t.Fatalf("reorder clamp: %v", err)
	}
	assertContiguous(t, p)
	habits = p.Habits()
	if habits[len(habits)-1].Order != len(habits)-1 {
		t.Fatalf("expected clamped habit at the end")
	}
}

func TestReorderMovesHabit(t *testing.T) {
	p := load(t, t.TempDir())
	habits := p.Habits()
	moved := habits[2]

	if err := p.ReorderHabit(moved.ID, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if got := p.Habits()[0]; got.ID != moved.ID {
		t.Fatalf("expected %q first, got %q", moved.Name, got.Name)
	}

	if err := p.ReorderHabit(uuid.New(), 0); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestSetStatusCreatesLogLazily(t *testing.T) {
	p := load(t, t.TempDir())
	id := p.Habits()[0].ID
	day := date(2025, time.October, 14)

	if _, ok := p.Log(id, day); ok {
		t.Fatalf("expected no log before first write")
	}

	if err := p.SetStatus(id, day, glyph.Done); err != nil {
		t.Fatalf("set status: %v", err)
	}
	l, ok := p.Log(id, day)
	if !ok || l.Status != glyph.Done {
		t.Fatalf("expected Done log, got %+v ok=%v", l, ok)
	}

	// Writing again must update in place, never duplicate the pair.
	if err := p.SetStatus(id, day, glyph.Skipped); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if got := p.LogsForDate(day); len(got) != 1 {
		t.Fatalf("expected a single log for the pair, got %d", len(got))
	}
}

func TestSetNote(t *testing.T) {
	p := load(t, t.TempDir())
	id := p.Habits()[0].ID
	day := date(2025, time.October, 14)

	if err := p.SetNote(id, day, "  rough day  "); err != nil {
		t.Fatalf("set note: %v", err)
	}
	l, _ := p.Log(id, day)
	if l.Note != "rough day" {
		t.Fatalf("expected trimmed note, got %q", l.Note)
	}
	if l.Status != glyph.Unmarked {
		t.Fatalf("note write must not change status")
	}

	if err := p.SetNote(id, day, "   "); err != nil {
		t.Fatalf("clear note: %v", err)
	}
	l, _ = p.Log(id, day)
	if l.Note != "" {
		t.Fatalf("expected note cleared, got %q", l.Note)
	}
}

func TestRoundTrip(t *testing.T) {
	base := t.TempDir()
	p := load(t, base)

	habits := p.Habits()
	weekly := habits[2] // Trim nails, Weekly
	daily := habits[0]
	day := date(2025, time.October, 14)

	if err := p.SetStatus(weekly.ID, day, glyph.Done); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := p.SetStatus(daily.ID, day, glyph.Skipped); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := p.SetNote(daily.ID, day, "slept in"); err != nil {
		t.Fatalf("set note: %v", err)
	}

	reloaded := load(t, base)
	got := reloaded.Habits()
	if len(got) != len(habits) {
		t.Fatalf("habit count changed across reload")
	}
	for i := range habits {
		if got[i] != habits[i] {
			t.Fatalf("habit %d changed across reload:\n  was %+v\n  now %+v", i, habits[i], got[i])
		}
	}

	l, ok := reloaded.Log(weekly.ID, day)
	if !ok || l.Status != glyph.Done {
		t.Fatalf("weekly log lost across reload")
	}
	l, ok = reloaded.Log(daily.ID, day)
	if !ok || l.Status != glyph.Skipped || l.Note != "slept in" {
		t.Fatalf("daily log lost across reload: %+v", l)
	}
}

func TestMissingFrequencyDefaultsDaily(t *testing.T) {
	base := t.TempDir()
	doc := `{
  "habits": [
    {"id": "7b7c1c47-5411-4f9b-9a1c-fb3a69a1f4f0", "name": "Read", "order": 0}
  ],
  "logs": []
}`
	if err := os.WriteFile(filepath.Join(base, "habits.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	p := load(t, base)
	h := p.Habits()[0]
	if h.Frequency != habit.Daily {
		t.Fatalf("expected missing frequency to read as Daily, got %s", h.Frequency.Description())
	}
}

func TestStats(t *testing.T) {
	p := load(t, t.TempDir())
	id := p.Habits()[0].ID
	start := date(2025, time.October, 14)
	end := date(2025, time.October, 20) // 7 days inclusive

	if err := p.SetStatus(id, start, glyph.Done); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := p.SetStatus(id, start.AddDate(0, 0, 1), glyph.Done); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := p.SetStatus(id, start.AddDate(0, 0, 2), glyph.Skipped); err != nil {
		t.Fatalf("set status: %v", err)
	}

	tally := p.Stats(start, end)[id]
	if tally.Done != 2 || tally.Skipped != 1 || tally.Unmarked != 4 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	base := t.TempDir()
	a := load(t, base)
	b := load(t, base)

	h, err := a.AddHabit("Stretch")
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}

	if _, ok := b.Habit(h.ID); ok {
		t.Fatalf("second handle saw the write before reload")
	}
	if err := b.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := b.Habit(h.ID); !ok {
		t.Fatalf("expected reload to surface the new habit")
	}
}
