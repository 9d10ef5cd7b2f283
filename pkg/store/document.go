package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/habits/pkg/habit"
)

// ErrMalformedDocument indicates the persisted document exists but cannot be
// decoded. This is fatal at startup; silently discarding the file would be
// data loss, so no recovery is attempted here.
var ErrMalformedDocument = errors.New("store: malformed habit document")

// Document is the entire durable state: the ordered habit registry and the
// sparse status logs. It is always read and written whole.
type Document struct {
	Habits []habit.Habit `json:"habits"`
	Logs   []habit.Log   `json:"logs"`
}

// DefaultDocument seeds a fresh document with the default habit set.
func DefaultDocument() Document {
	return Document{
		Habits: habit.DefaultHabits(),
		Logs:   []habit.Log{},
	}
}

// DecodeDocument parses document bytes. Empty input is the caller's signal to
// reseed and is reported via ok=false rather than an error.
func DecodeDocument(data []byte) (Document, bool, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, false, nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, false, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Logs == nil {
		doc.Logs = []habit.Log{}
	}
	return doc, true, nil
}

// EncodeDocument renders the document as indented JSON, the on-disk form.
func EncodeDocument(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: encode habit document: %w", err)
	}
	return data, nil
}
