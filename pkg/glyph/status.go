package glyph

import (
	"encoding/json"
	"fmt"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs returns the symbol table, indexed by Status then DaySymbol.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Key:     " ",
		Symbol:  "·",
		Meaning: "unmarked",
	}, Glyph{
		Key:     "x",
		Symbol:  "✓",
		Meaning: "done",
	}, Glyph{
		Key:     "s",
		Symbol:  "✗",
		Meaning: "skipped",
	}, Glyph{
		Key:     "",
		Symbol:  " ",
		Meaning: "nothing recorded",
	}, Glyph{
		Key:     "",
		Symbol:  "✓",
		Meaning: "all habits done",
	}, Glyph{
		Key:     "",
		Symbol:  "✗",
		Meaning: "at least one habit skipped",
	}, Glyph{
		Key:     "",
		Symbol:  "~",
		Meaning: "partially done",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Status is the completion state of a habit on a single day. The zero value is
// Unmarked, matching the state of a day nothing was ever recorded for.
type Status int

// DaySymbol is the single glyph summarizing a whole day across all habits.
type DaySymbol int

const (
	Unmarked Status = iota
	Done
	Skipped
	Blank DaySymbol = iota
	FullyDone
	HasSkip
	Partial
)

// cycleTable is the only place status advancement lives.
var cycleTable = map[Status]Status{
	Done:     Skipped,
	Skipped:  Unmarked,
	Unmarked: Done,
}

// Cycle returns the next status in the rotation Done, Skipped, Unmarked.
func (s Status) Cycle() Status {
	return cycleTable[s]
}

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	return s.Glyph().String()
}

// Display renders the status the way the day detail shows it, e.g. "[Done]".
func (s Status) Display() string {
	switch s {
	case Done:
		return "[Done]"
	case Skipped:
		return "[Skipped]"
	default:
		return "[ ]"
	}
}

func (d DaySymbol) Glyph() Glyph {
	return DefaultGlyphs()[d]
}

func (d DaySymbol) String() string {
	return d.Glyph().String()
}

var statusTags = map[Status]string{
	Done:     "Done",
	Skipped:  "Skipped",
	Unmarked: "Unmarked",
}

// Tag returns the persisted document tag for the status.
func (s Status) Tag() string {
	return statusTags[s]
}

func (s Status) MarshalJSON() ([]byte, error) {
	tag, ok := statusTags[s]
	if !ok {
		return nil, fmt.Errorf("glyph: unknown status %d", int(s))
	}
	return json.Marshal(tag)
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var tag string
	if err := json.Unmarshal(b, &tag); err != nil {
		return err
	}
	for status, t := range statusTags {
		if t == tag {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("glyph: unknown status tag %q", tag)
}
