package teaui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string   { return t.path }
func (t testConfig) ExportPath() string { return t.path }

var wednesday = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()
	p, err := store.Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	m := New(p, dir)
	m.session.Now = func() time.Time { return wednesday }
	if err := m.session.GoToToday(); err != nil {
		t.Fatalf("go to today: %v", err)
	}
	return m
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestSpaceStagesWithoutWriting(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]

	m = press(m, " ")

	if _, ok := m.session.Staged(); !ok {
		t.Fatalf("expected a staged change")
	}
	if _, ok := m.session.Persistence.Log(h.ID, wednesday); ok {
		t.Fatalf("space must not write to the store")
	}
}

func TestEnterCommitsStagedChange(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]

	m = press(m, " ", "enter")

	l, ok := m.session.Persistence.Log(h.ID, wednesday)
	if !ok || l.Status != glyph.Done {
		t.Fatalf("expected committed Done log")
	}
	if _, staged := m.session.Staged(); staged {
		t.Fatalf("staged slot should be clear after enter")
	}
}

func TestEscDiscardsStagedChange(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]

	m = press(m, " ", "esc")

	if _, ok := m.session.Persistence.Log(h.ID, wednesday); ok {
		t.Fatalf("discarded change must not persist")
	}
	if got := m.session.Status(h.ID, wednesday); got != glyph.Unmarked {
		t.Fatalf("expected Unmarked after discard, got %s", got.Tag())
	}
}

func TestDayMoveCommitsStagedChange(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]

	m = press(m, " ", "l")

	l, ok := m.session.Persistence.Log(h.ID, wednesday)
	if !ok || l.Status != glyph.Done {
		t.Fatalf("moving days must commit the staged change")
	}
	if !m.session.SelectedDate().Equal(wednesday.AddDate(0, 0, 1)) {
		t.Fatalf("expected Thursday selected")
	}
}

func TestManageModeCommitsStagedChange(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]

	m = press(m, " ", "m")

	l, ok := m.session.Persistence.Log(h.ID, wednesday)
	if !ok || l.Status != glyph.Done {
		t.Fatalf("entering manage mode must commit the staged change")
	}
	if m.mode != modeManage {
		t.Fatalf("expected manage mode")
	}
}

func TestQuitCommitsStagedChange(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]

	m = press(m, " ", "q")

	l, ok := m.session.Persistence.Log(h.ID, wednesday)
	if !ok || l.Status != glyph.Done {
		t.Fatalf("quit must commit the staged change")
	}
}

func TestNoteInput(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]

	m = press(m, "n")
	if m.mode != modeInput || m.action != actionNote {
		t.Fatalf("expected note input mode")
	}
	m = press(m, "h", "i", "enter")

	l, ok := m.session.Persistence.Log(h.ID, wednesday)
	if !ok || l.Note != "hi" {
		t.Fatalf("expected note saved, got %+v", l)
	}
	if m.mode != modeWeek {
		t.Fatalf("expected return to week view")
	}
}

func TestManageAddHabit(t *testing.T) {
	m := newTestModel(t)
	before := len(m.session.Habits())

	m = press(m, "m", "a")
	if m.mode != modeInput || m.action != actionAddHabit {
		t.Fatalf("expected add input mode")
	}
	m = press(m, "R", "e", "a", "d", "enter")

	habits := m.session.Habits()
	if len(habits) != before+1 {
		t.Fatalf("expected %d habits, got %d", before+1, len(habits))
	}
	if habits[len(habits)-1].Name != "Read" {
		t.Fatalf("expected Read appended last, got %q", habits[len(habits)-1].Name)
	}
	if m.mode != modeManage {
		t.Fatalf("expected return to manage view")
	}
}

func TestManageDeleteHabit(t *testing.T) {
	m := newTestModel(t)
	first := m.session.Habits()[0]
	before := len(m.session.Habits())

	m = press(m, "m", "d")

	if len(m.session.Habits()) != before-1 {
		t.Fatalf("expected one habit removed")
	}
	if _, ok := m.session.Persistence.Habit(first.ID); ok {
		t.Fatalf("expected selected habit deleted")
	}
}

func TestHelpToggles(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "?")
	if m.mode != modeHelp {
		t.Fatalf("expected help mode")
	}
	if !strings.Contains(m.View(), "cycle status") {
		t.Fatalf("help view missing key table")
	}
	m = press(m, "esc")
	if m.mode != modeWeek {
		t.Fatalf("expected week view after esc")
	}
}

func TestWeekViewRendering(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	for _, want := range []string{
		"Oct 13-19, 2025",
		"Wednesday October 15",
		"Shower",
		"Meds",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("week view missing %q:\n%s", want, view)
		}
	}
}

func TestStatsViewRendering(t *testing.T) {
	m := newTestModel(t)
	h := m.session.Habits()[0]
	if err := m.session.Persistence.SetStatus(h.ID, wednesday, glyph.Done); err != nil {
		t.Fatalf("set status: %v", err)
	}

	m = press(m, "s")
	if m.mode != modeStats {
		t.Fatalf("expected stats mode")
	}
	if !strings.Contains(m.View(), h.Name) {
		t.Fatalf("stats view missing habit name")
	}
}
