package commands

import (
	"context"
	"fmt"
	"time"

	"memoflow/internal/application"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

// UpdateNoteResult contains the result of updating a note
type UpdateNoteResult struct {
	Note    *domain.Note
	Message string
}

// UpdateNoteCommand replaces a note's title, content and labels.
// The color and creation time are kept.
type UpdateNoteCommand struct {
	repo  ports.NoteRepository
	now   func() time.Time
	ID    string
	Draft domain.NoteDraft
}

// NewUpdateNoteCommand creates a new UpdateNoteCommand
func NewUpdateNoteCommand(repo ports.NoteRepository, id string, draft domain.NoteDraft) *UpdateNoteCommand {
	return &UpdateNoteCommand{
		repo:  repo,
		now:   time.Now,
		ID:    id,
		Draft: draft,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateNoteCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the update note command
func (c *UpdateNoteCommand) Execute(ctx context.Context) (*UpdateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, err := c.repo.Get(ctx, c.ID)
	if err != nil {
		return nil, &application.NoteError{ID: c.ID, Op: "update", Err: err}
	}

	note.Apply(c.Draft, c.now())
	if err := c.repo.Update(ctx, *note); err != nil {
		return nil, &application.NoteError{ID: c.ID, Op: "update", Err: err}
	}

	return &UpdateNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Updated note: %s", note.Title),
	}, nil
}
