package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"memoflow/internal/application"
	"memoflow/internal/domain"
)

// memRepo is an in-memory ports.NoteRepository
type memRepo struct {
	notes   []domain.Note
	failErr error
}

func (r *memRepo) List(ctx context.Context) ([]domain.Note, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	out := slices.Clone(r.notes)
	slices.SortStableFunc(out, func(a, b domain.Note) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *memRepo) Get(ctx context.Context, id string) (*domain.Note, error) {
	for _, n := range r.notes {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, fmt.Errorf("note %s: %w", id, application.ErrNotFound)
}

func (r *memRepo) Create(ctx context.Context, note domain.Note) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, err := r.Get(ctx, note.ID); err == nil {
		return application.ErrAlreadyExists
	}
	r.notes = append(r.notes, note)
	return nil
}

func (r *memRepo) Update(ctx context.Context, note domain.Note) error {
	if r.failErr != nil {
		return r.failErr
	}
	for i := range r.notes {
		if r.notes[i].ID == note.ID {
			r.notes[i] = note
			return nil
		}
	}
	return application.ErrNotFound
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	if r.failErr != nil {
		return r.failErr
	}
	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = slices.Delete(r.notes, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("note %s: %w", id, application.ErrNotFound)
}

var errBoom = errors.New("boom")

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
