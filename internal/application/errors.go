package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrEmptyNote     = errors.New("empty note")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NoteError wraps a storage failure for a specific note
type NoteError struct {
	ID  string
	Op  string
	Err error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("cannot %s note %s: %v", e.Op, e.ID, e.Err)
}

func (e *NoteError) Unwrap() error {
	return e.Err
}
