package ports

import (
	"context"

	"memoflow/internal/domain"
)

// NoteSource provides the current set of notes, newest first
type NoteSource interface {
	List(ctx context.Context) ([]domain.Note, error)
}

// NoteRepository defines the interface for note storage operations
type NoteRepository interface {
	NoteSource

	// Get returns the note with the given ID or an error wrapping ErrNotFound
	Get(ctx context.Context, id string) (*domain.Note, error)

	Create(ctx context.Context, note domain.Note) error
	Update(ctx context.Context, note domain.Note) error
	Delete(ctx context.Context, id string) error
}
