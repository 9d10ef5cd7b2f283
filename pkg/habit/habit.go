package habit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Frequency is how often a habit is meant to be done. It is informational for
// display and governs weekly roll-over; it never filters which habits appear
// on a day. The zero value is Daily so documents written before the field
// existed decode correctly.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	AsNeeded
)

var frequencyTags = map[Frequency]string{
	Daily:    "Daily",
	Weekly:   "Weekly",
	AsNeeded: "AsNeeded",
}

// Description returns the human-readable label for the frequency.
func (f Frequency) Description() string {
	switch f {
	case Weekly:
		return "Weekly"
	case AsNeeded:
		return "As needed"
	default:
		return "Daily"
	}
}

// Cycle returns the next frequency in the rotation Daily, Weekly, AsNeeded.
// The habit management surface uses it to step a habit through the options.
func (f Frequency) Cycle() Frequency {
	switch f {
	case Daily:
		return Weekly
	case Weekly:
		return AsNeeded
	default:
		return Daily
	}
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	tag, ok := frequencyTags[f]
	if !ok {
		return nil, fmt.Errorf("habit: unknown frequency %d", int(f))
	}
	return json.Marshal(tag)
}

func (f *Frequency) UnmarshalJSON(b []byte) error {
	var tag string
	if err := json.Unmarshal(b, &tag); err != nil {
		return err
	}
	if tag == "" {
		*f = Daily
		return nil
	}
	for freq, t := range frequencyTags {
		if t == tag {
			*f = freq
			return nil
		}
	}
	return fmt.Errorf("habit: unknown frequency tag %q", tag)
}

// Habit is a single recurring habit being tracked.
type Habit struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	Frequency   Frequency `json:"frequency"`
}

// New creates a habit with a generated id and default frequency.
func New(name string) *Habit {
	return &Habit{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Frequency: Daily,
	}
}

// WithID creates a habit with a fixed id, useful in tests.
func WithID(id uuid.UUID, name string) *Habit {
	h := New(name)
	h.ID = id
	return h
}

// Find resolves a habit from a command line query: an exact id, an id prefix,
// or a case-insensitive name or name prefix. Name matches win over id prefix
// matches; an ambiguous prefix resolves to the first habit in display order.
func Find(habits []Habit, query string) (Habit, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Habit{}, false
	}

	for _, h := range habits {
		if strings.EqualFold(h.Name, query) {
			return h, true
		}
	}
	lower := strings.ToLower(query)
	for _, h := range habits {
		if strings.HasPrefix(strings.ToLower(h.Name), lower) {
			return h, true
		}
	}
	for _, h := range habits {
		if strings.HasPrefix(h.ID.String(), lower) {
			return h, true
		}
	}
	return Habit{}, false
}

// DefaultHabits is the seed set written on first run.
func DefaultHabits() []Habit {
	shower := New("Shower")
	teeth := New("Brush teeth")
	nails := New("Trim nails")
	nails.Description = "Weekly habit"
	nails.Frequency = Weekly
	meds := New("Meds")

	habits := []Habit{*shower, *teeth, *nails, *meds}
	for i := range habits {
		habits[i].Order = i
	}
	return habits
}
