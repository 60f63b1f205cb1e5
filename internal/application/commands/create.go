package commands

import (
	"context"
	"fmt"
	"time"

	"memoflow/internal/application"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

// CreateNoteResult contains the result of creating a note
type CreateNoteResult struct {
	Note    *domain.Note
	Message string
}

// CreateNoteCommand creates a note from raw form input
type CreateNoteCommand struct {
	repo  ports.NoteRepository
	now   func() time.Time
	Draft domain.NoteDraft
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(repo ports.NoteRepository, draft domain.NoteDraft) *CreateNoteCommand {
	return &CreateNoteCommand{
		repo:  repo,
		now:   time.Now,
		Draft: draft,
	}
}

// Validate checks if the create operation is valid
func (c *CreateNoteCommand) Validate() error {
	if err := application.ValidateDraft(c.Draft); err != nil {
		return fmt.Errorf("%w: %w", application.ErrEmptyNote, err)
	}
	return nil
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note := domain.NewNote(c.Draft, c.now())
	if err := c.repo.Create(ctx, note); err != nil {
		return nil, &application.NoteError{ID: note.ID, Op: "create", Err: err}
	}

	return &CreateNoteResult{
		Note:    &note,
		Message: fmt.Sprintf("Created note: %s", note.Title),
	}, nil
}
