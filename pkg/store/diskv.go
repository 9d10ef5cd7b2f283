package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/habit"
)

// ErrHabitNotFound is returned when a mutation targets an id that is not in
// the registry. The operation is aborted with no partial write.
var ErrHabitNotFound = errors.New("store: habit not found")

// Tally counts statuses for one habit over a date range.
type Tally struct {
	Done     int
	Skipped  int
	Unmarked int
}

// Persistence is the storage contract for the habit registry and logs. Every
// mutation saves the whole document synchronously before returning; on a save
// failure the in-memory state keeps the mutation and the caller may retry.
type Persistence interface {
	Habits() []habit.Habit
	Habit(id uuid.UUID) (habit.Habit, bool)
	AddHabit(name string) (*habit.Habit, error)
	RenameHabit(id uuid.UUID, name string) error
	SetDescription(id uuid.UUID, description string) error
	SetFrequency(id uuid.UUID, f habit.Frequency) error
	DeleteHabit(id uuid.UUID) error
	ReorderHabit(id uuid.UUID, newOrder int) error

	Log(habitID uuid.UUID, date time.Time) (habit.Log, bool)
	LogsForDate(date time.Time) []habit.Log
	SetStatus(habitID uuid.UUID, date time.Time, status glyph.Status) error
	SetNote(habitID uuid.UUID, date time.Time, note string) error

	Stats(start, end time.Time) map[uuid.UUID]Tally

	Reload() error
	Watch(ctx context.Context) (<-chan Event, error)
}

const documentKey = "habits.json"

// Load opens (or seeds) the habit document under the configured base path.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	doc      Document
}

// load reads the document, seeding and saving the default set when the
// document is missing or empty.
func (p *persistence) load() error {
	if !p.d.Has(documentKey) {
		p.doc = DefaultDocument()
		return p.save()
	}

	data, err := p.d.Read(documentKey)
	if err != nil {
		return fmt.Errorf("store: read habit document: %w", err)
	}

	doc, ok, err := DecodeDocument(data)
	if err != nil {
		return err
	}
	if !ok {
		// An empty file is treated the same as a missing one.
		p.doc = DefaultDocument()
		return p.save()
	}

	p.doc = doc
	return nil
}

// Reload re-reads the document from disk, bypassing the read cache, so a
// change written by another process becomes visible. Watch callers pair the
// two: an event fires, Reload picks it up.
func (p *persistence) Reload() error {
	if !p.d.Has(documentKey) {
		return p.load()
	}

	rc, err := p.d.ReadStream(documentKey, true)
	if err != nil {
		return fmt.Errorf("store: reload habit document: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("store: reload habit document: %w", err)
	}

	doc, ok, err := DecodeDocument(data)
	if err != nil {
		return err
	}
	if !ok {
		// A writer may have truncated the file mid-save; keep what we have.
		return nil
	}

	p.doc = doc
	return nil
}

// save writes the whole document. Write amplification is accepted for the
// crash-consistency it buys: every save is a complete, valid document.
func (p *persistence) save() error {
	data, err := EncodeDocument(p.doc)
	if err != nil {
		return err
	}
	if err := p.d.Write(documentKey, data); err != nil {
		return fmt.Errorf("store: write habit document: %w", err)
	}
	return nil
}

func (p *persistence) Habits() []habit.Habit {
	habits := make([]habit.Habit, len(p.doc.Habits))
	copy(habits, p.doc.Habits)
	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].Order < habits[j].Order
	})
	return habits
}

func (p *persistence) Habit(id uuid.UUID) (habit.Habit, bool) {
	for _, h := range p.doc.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return habit.Habit{}, false
}

func (p *persistence) AddHabit(name string) (*habit.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	h := habit.New(name)
	h.Order = len(p.doc.Habits)
	p.doc.Habits = append(p.doc.Habits, *h)
	if err := p.save(); err != nil {
		return nil, err
	}
	return h, nil
}

func (p *persistence) RenameHabit(id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range p.doc.Habits {
		if p.doc.Habits[i].ID == id {
			p.doc.Habits[i].Name = name
			return p.save()
		}
	}
	return ErrHabitNotFound
}

func (p *persistence) SetDescription(id uuid.UUID, description string) error {
	for i := range p.doc.Habits {
		if p.doc.Habits[i].ID == id {
			p.doc.Habits[i].Description = strings.TrimSpace(description)
			return p.save()
		}
	}
	return ErrHabitNotFound
}

func (p *persistence) SetFrequency(id uuid.UUID, f habit.Frequency) error {
	for i := range p.doc.Habits {
		if p.doc.Habits[i].ID == id {
			p.doc.Habits[i].Frequency = f
			return p.save()
		}
	}
	return ErrHabitNotFound
}

// DeleteHabit removes the habit and every log that references it in the same
// save, so no orphaned log can ever be persisted.
func (p *persistence) DeleteHabit(id uuid.UUID) error {
	found := false
	habits := p.doc.Habits[:0]
	for _, h := range p.doc.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return ErrHabitNotFound
	}
	p.doc.Habits = habits

	logs := p.doc.Logs[:0]
	for _, l := range p.doc.Logs {
		if l.HabitID != id {
			logs = append(logs, l)
		}
	}
	p.doc.Logs = logs

	p.renumber()
	return p.save()
}

// ReorderHabit moves the habit to newOrder (clamped) and renumbers every order
// to its positional index, keeping orders contiguous from 0.
func (p *persistence) ReorderHabit(id uuid.UUID, newOrder int) error {
	sorted := p.Habits()
	idx := -1
	for i, h := range sorted {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrHabitNotFound
	}

	moved := sorted[idx]
	sorted = append(sorted[:idx], sorted[idx+1:]...)
	if newOrder < 0 {
		newOrder = 0
	}
	if newOrder > len(sorted) {
		newOrder = len(sorted)
	}
	rest := make([]habit.Habit, 0, len(sorted)+1)
	rest = append(rest, sorted[:newOrder]...)
	rest = append(rest, moved)
	rest = append(rest, sorted[newOrder:]...)

	for i := range rest {
		rest[i].Order = i
	}
	p.doc.Habits = rest
	return p.save()
}

func (p *persistence) renumber() {
	sort.SliceStable(p.doc.Habits, func(i, j int) bool {
		return p.doc.Habits[i].Order < p.doc.Habits[j].Order
	})
	for i := range p.doc.Habits {
		p.doc.Habits[i].Order = i
	}
}

func (p *persistence) Log(habitID uuid.UUID, date time.Time) (habit.Log, bool) {
	for _, l := range p.doc.Logs {
		if l.HabitID == habitID && l.Date.SameDay(date) {
			return l, true
		}
	}
	return habit.Log{}, false
}

func (p *persistence) LogsForDate(date time.Time) []habit.Log {
	logs := make([]habit.Log, 0)
	for _, l := range p.doc.Logs {
		if l.Date.SameDay(date) {
			logs = append(logs, l)
		}
	}
	return logs
}

// getOrCreateLog returns the index of the log for the pair, creating an
// Unmarked entry when none exists yet.
func (p *persistence) getOrCreateLog(habitID uuid.UUID, date time.Time) int {
	for i, l := range p.doc.Logs {
		if l.HabitID == habitID && l.Date.SameDay(date) {
			return i
		}
	}
	p.doc.Logs = append(p.doc.Logs, *habit.NewLog(habitID, date))
	return len(p.doc.Logs) - 1
}

func (p *persistence) SetStatus(habitID uuid.UUID, date time.Time, status glyph.Status) error {
	i := p.getOrCreateLog(habitID, date)
	p.doc.Logs[i].Status = status
	return p.save()
}

// SetNote writes the trimmed note for the pair; an empty note clears it. Notes
// bypass the staged-edit buffer entirely.
func (p *persistence) SetNote(habitID uuid.UUID, date time.Time, note string) error {
	i := p.getOrCreateLog(habitID, date)
	p.doc.Logs[i].Note = strings.TrimSpace(note)
	return p.save()
}

// Stats tallies committed statuses per habit over the inclusive range. Days
// with no log count as Unmarked.
func (p *persistence) Stats(start, end time.Time) map[uuid.UUID]Tally {
	stats := make(map[uuid.UUID]Tally, len(p.doc.Habits))
	for _, h := range p.doc.Habits {
		var tally Tally
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			status := glyph.Unmarked
			if l, ok := p.Log(h.ID, d); ok {
				status = l.Status
			}
			switch status {
			case glyph.Done:
				tally.Done++
			case glyph.Skipped:
				tally.Skipped++
			default:
				tally.Unmarked++
			}
		}
		stats[h.ID] = tally
	}
	return stats
}
