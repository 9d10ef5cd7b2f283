package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/runner/export"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/week"
)

type mode int

const (
	modeWeek mode = iota
	modeInput
	modeManage
	modeStats
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionNote
	actionAddHabit
	actionRename
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stagedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Model is the bubbletea state for the weekly tracker.
type Model struct {
	session   *app.Session
	exportDir string
	ctx       context.Context

	mode   mode
	action action

	input  textinput.Model
	status string

	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the model on a fresh session over p.
func New(p store.Persistence, exportDir string) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = "> "

	return Model{
		session:   app.NewSession(p),
		exportDir: exportDir,
		ctx:       context.Background(),
		mode:      modeWeek,
		input:     ti,
		status:    "space toggle, enter save, n note, m manage, ? help, q quit",
	}
}

// messages

type errMsg struct{ err error }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{}

type watchStoppedMsg struct{}

type exportedMsg struct{ path string }

func (m Model) Init() tea.Cmd {
	return m.startWatch()
}

func (m *Model) startWatch() tea.Cmd {
	parent := m.ctx
	p := m.session.Persistence
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return watchEventMsg{}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "watch unavailable: " + msg.err.Error()
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if err := m.session.Persistence.Reload(); err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.session.ClampHabitSelection()
			m.status = "Reloaded"
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case exportedMsg:
		m.status = "Exported " + msg.path
	case tea.KeyMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeWeek
			}
		case modeStats:
			if key := msg.String(); key == "q" || key == "esc" || key == "s" {
				m.mode = modeWeek
			}
		case modeInput:
			m.handleInputKey(msg, &cmds)
		case modeManage:
			m.handleManageKey(msg, &cmds)
		default:
			if cmd := m.handleWeekKey(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleWeekKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		// Staged edits save on exit, same as any other boundary.
		if err := m.session.Commit(); err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		m.stopWatch()
		return tea.Quit

	case "h", "left":
		m.do(m.session.PrevDay)
	case "l", "right":
		m.do(m.session.NextDay)
	case "j", "down":
		m.do(m.session.NextHabit)
	case "k", "up":
		m.do(m.session.PrevHabit)
	case "H", "shift+left":
		m.do(m.session.PrevWeek)
	case "L", "shift+right":
		m.do(m.session.NextWeek)
	case "t":
		m.do(m.session.GoToToday)

	case " ":
		m.session.Toggle()
		if change, ok := m.session.Staged(); ok {
			m.status = fmt.Sprintf("Staged %s, enter to save, esc to discard", change.Status.Display())
		}
	case "enter":
		if _, ok := m.session.Staged(); !ok {
			break
		}
		if err := m.session.Commit(); err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.status = "Saved"
		}
	case "esc":
		if _, ok := m.session.Staged(); ok {
			m.session.Cancel()
			m.status = "Discarded"
		}

	case "n":
		if _, ok := m.session.SelectedHabit(); !ok {
			break
		}
		m.mode = modeInput
		m.action = actionNote
		m.input.Placeholder = "Note for the day"
		m.input.SetValue(m.session.Note())
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return tea.Batch(cmd, textinput.Blink)

	case "m":
		// Leaving the editing surface commits, same as navigation.
		if err := m.session.Commit(); err != nil {
			m.status = "ERR: " + err.Error()
			break
		}
		m.mode = modeManage
		m.status = "a add, r rename, d delete, f frequency, K/J move, esc back"
	case "s":
		if err := m.session.Commit(); err != nil {
			m.status = "ERR: " + err.Error()
			break
		}
		m.mode = modeStats
	case "e":
		if err := m.session.Commit(); err != nil {
			m.status = "ERR: " + err.Error()
			break
		}
		return m.exportWeek()
	case "?":
		m.mode = modeHelp
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		switch m.action {
		case actionNote:
			if err := m.session.SetNote(text); err != nil {
				m.status = "ERR: " + err.Error()
			} else if text == "" {
				m.status = "Note cleared"
			} else {
				m.status = "Note saved"
			}
			m.mode = modeWeek
		case actionAddHabit:
			if text != "" {
				if _, err := m.session.AddHabit(text); err != nil {
					m.status = "ERR: " + err.Error()
				} else {
					m.status = "Added " + text
				}
			}
			m.mode = modeManage
		case actionRename:
			if text != "" {
				if err := m.session.RenameSelected(text); err != nil {
					m.status = "ERR: " + err.Error()
				} else {
					m.status = "Renamed"
				}
			}
			m.mode = modeManage
		}
		m.action = actionNone
		m.input.Reset()
		m.input.Blur()
	case "esc":
		if m.action == actionNote {
			m.mode = modeWeek
		} else {
			m.mode = modeManage
		}
		m.action = actionNone
		m.input.Reset()
		m.input.Blur()
		m.status = "Cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleManageKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "m":
		m.mode = modeWeek
		m.status = "space toggle, enter save, n note, m manage, ? help, q quit"
	case "j", "down":
		m.do(m.session.NextHabit)
	case "k", "up":
		m.do(m.session.PrevHabit)
	case "J":
		m.do(m.session.MoveSelectedDown)
	case "K":
		m.do(m.session.MoveSelectedUp)
	case "f":
		if err := m.session.CycleSelectedFrequency(); err != nil {
			m.status = "ERR: " + err.Error()
		} else if h, ok := m.session.SelectedHabit(); ok {
			m.status = h.Name + " is now " + h.Frequency.Description()
		}
	case "d":
		h, ok := m.session.SelectedHabit()
		if !ok {
			break
		}
		if err := m.session.DeleteSelected(); err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.status = "Deleted " + h.Name
		}
	case "a":
		m.mode = modeInput
		m.action = actionAddHabit
		m.input.Placeholder = "New habit name"
		m.input.SetValue("")
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case "r":
		h, ok := m.session.SelectedHabit()
		if !ok {
			break
		}
		m.mode = modeInput
		m.action = actionRename
		m.input.Placeholder = "Rename habit"
		m.input.SetValue(h.Name)
		m.input.CursorEnd()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	}
}

// do runs a session call and surfaces its error on the status line.
func (m *Model) do(fn func() error) {
	if err := fn(); err != nil {
		m.status = "ERR: " + err.Error()
	}
}

func (m *Model) exportWeek() tea.Cmd {
	report := m.session.WeekReport()
	dir := m.exportDir
	return func() tea.Msg {
		path, err := export.Write(report, dir)
		if err != nil {
			return errMsg{err}
		}
		return exportedMsg{path: path}
	}
}

func (m Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.helpView()
	case modeStats:
		return m.statsView()
	case modeManage:
		return m.manageView()
	case modeInput:
		return m.inputView()
	default:
		return m.weekView()
	}
}

func (m Model) weekView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Habits - " + m.session.Week().Format()))
	b.WriteString("\n\n")
	b.WriteString(m.dayStrip())
	b.WriteString("\n\n")

	date := m.session.SelectedDate()
	b.WriteString(selectedStyle.Render(week.FullWeekdayName(date) + " " + date.Format("January 2")))
	b.WriteString("\n\n")

	habits := m.session.Habits()
	if len(habits) == 0 {
		b.WriteString(faintStyle.Render("  No habits yet. Press m then a to add one.\n"))
	}
	staged, hasStaged := m.session.Staged()
	for i, h := range habits {
		cursor := "  "
		if i == m.session.SelectedHabitIndex() {
			cursor = "> "
		}
		status := m.session.Status(h.ID, date)
		line := fmt.Sprintf("%s%s %s", cursor, status.Glyph().Symbol, h.Name)

		marker := ""
		if hasStaged && staged.HabitID == h.ID && week.SameDay(staged.Date, date) {
			marker = " *"
		}

		switch {
		case marker != "":
			b.WriteString(stagedStyle.Render(line + marker))
		case i == m.session.SelectedHabitIndex():
			b.WriteString(selectedStyle.Render(line))
		default:
			b.WriteString(line)
		}

		if l, ok := m.session.Persistence.Log(h.ID, date); ok && l.Note != "" {
			b.WriteString(faintStyle.Render("  " + l.Note))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

// dayStrip renders the seven weekday columns with their aggregate symbols.
func (m Model) dayStrip() string {
	var names, symbols strings.Builder
	for i, day := range m.session.Week().Days() {
		name := week.WeekdayName(i)
		symbol := m.session.DaySymbol(day).Glyph().Symbol
		if symbol == " " {
			symbol = "."
		}
		cellName := fmt.Sprintf(" %s ", name)
		cellSym := fmt.Sprintf("  %s  ", symbol)
		if i == m.session.SelectedDayIndex() {
			names.WriteString(selectedStyle.Render(cellName))
			symbols.WriteString(selectedStyle.Render(cellSym))
		} else {
			names.WriteString(faintStyle.Render(cellName))
			symbols.WriteString(cellSym)
		}
	}
	return names.String() + "\n" + symbols.String()
}

func (m Model) manageView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Manage habits"))
	b.WriteString("\n\n")

	for i, h := range m.session.Habits() {
		cursor := "  "
		if i == m.session.SelectedHabitIndex() {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d. %s", cursor, h.Order+1, h.Name)
		if i == m.session.SelectedHabitIndex() {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString(faintStyle.Render("  (" + h.Frequency.Description() + ")"))
		if h.Description != "" {
			b.WriteString(faintStyle.Render(" " + h.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statsView() string {
	var b strings.Builder

	report := m.session.WeekReport()
	b.WriteString(headerStyle.Render("Stats - " + report.Week.Format()))
	b.WriteString("\n\n")

	if len(report.Summary) == 0 {
		b.WriteString(faintStyle.Render("  No habits tracked.\n"))
	}

	width := 0
	for _, row := range report.Summary {
		if len(row.Habit) > width {
			width = len(row.Habit)
		}
	}
	for _, row := range report.Summary {
		b.WriteString(fmt.Sprintf("  %-*s  %s %d  %s %d  %s %d  %3d%%\n",
			width, row.Habit,
			glyph.Done.Glyph().Symbol, row.Done,
			glyph.Skipped.Glyph().Symbol, row.Skipped,
			glyph.Unmarked.Glyph().Symbol, row.Unmarked,
			row.Rate()))
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render("esc back"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) inputView() string {
	var b strings.Builder

	title := "Note"
	switch m.action {
	case actionAddHabit:
		title = "Add habit"
	case actionRename:
		title = "Rename habit"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("enter save, esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpView() string {
	rows := [][2]string{
		{"h/l", "previous / next day"},
		{"j/k", "next / previous habit"},
		{"H/L", "previous / next week"},
		{"t", "jump to today"},
		{"space", "cycle status (staged)"},
		{"enter", "save staged change"},
		{"esc", "discard staged change"},
		{"n", "edit note for the day"},
		{"m", "manage habits"},
		{"s", "weekly stats"},
		{"e", "export week to markdown"},
		{"?", "toggle help"},
		{"q", "quit (saves staged change)"},
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-7s %s\n", r[0], r[1]))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("esc back"))
	b.WriteString("\n")
	return b.String()
}
