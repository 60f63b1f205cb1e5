package commands

import (
	"context"

	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

// ListNotesCommand lists notes, optionally restricted to one label
type ListNotesCommand struct {
	repo  ports.NoteSource
	Label string
}

// NewListNotesCommand creates a new ListNotesCommand. An empty label or
// domain.FilterAll lists every note.
func NewListNotesCommand(repo ports.NoteSource, label string) *ListNotesCommand {
	return &ListNotesCommand{
		repo:  repo,
		Label: label,
	}
}

// Execute runs the list notes command
func (c *ListNotesCommand) Execute(ctx context.Context) ([]domain.Note, error) {
	notes, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByLabel(notes, c.Label), nil
}

// ListLabelsCommand lists the sorted set of labels across all notes
type ListLabelsCommand struct {
	repo ports.NoteSource
}

// NewListLabelsCommand creates a new ListLabelsCommand
func NewListLabelsCommand(repo ports.NoteSource) *ListLabelsCommand {
	return &ListLabelsCommand{repo: repo}
}

// Execute runs the list labels command
func (c *ListLabelsCommand) Execute(ctx context.Context) ([]string, error) {
	notes, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CollectLabels(notes), nil
}
