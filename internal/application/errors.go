package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for fatal, run-aborting conditions
var (
	ErrSourceMissing = errors.New("source database not found")
	ErrNoNotes       = errors.New("no importable notes")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NoteError records the failure of a single note during an import run.
// Note failures are isolated: they are counted and reported but never
// abort sibling work.
type NoteError struct {
	NoteID string
	Title  string
	Err    error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("failed to import note %q (%s): %v", e.Title, e.NoteID, e.Err)
}

func (e *NoteError) Unwrap() error {
	return e.Err
}
