package commands

import (
	"context"
	"fmt"

	"memoflow/internal/application"
	"memoflow/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID string
	Message   string
}

// DeleteNoteCommand deletes a note by ID
type DeleteNoteCommand struct {
	repo ports.NoteRepository
	ID   string
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(repo ports.NoteRepository, id string) *DeleteNoteCommand {
	return &DeleteNoteCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteNoteCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the delete command
func (c *DeleteNoteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.Delete(ctx, c.ID); err != nil {
		return nil, &application.NoteError{ID: c.ID, Op: "delete", Err: err}
	}

	return &DeleteResult{
		DeletedID: c.ID,
		Message:   fmt.Sprintf("Deleted %s", c.ID),
	}, nil
}
