package views

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"memoflow/internal/application"
	"memoflow/internal/domain"
)

type memRepo struct {
	notes     []domain.Note
	deleteErr error
}

func (r *memRepo) List(context.Context) ([]domain.Note, error) {
	return append([]domain.Note(nil), r.notes...), nil
}

func (r *memRepo) Get(_ context.Context, id string) (*domain.Note, error) {
	for _, n := range r.notes {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, application.ErrNotFound)
}

func (r *memRepo) Create(_ context.Context, n domain.Note) error {
	r.notes = append([]domain.Note{n}, r.notes...)
	return nil
}

func (r *memRepo) Update(_ context.Context, n domain.Note) error {
	for i := range r.notes {
		if r.notes[i].ID == n.ID {
			r.notes[i] = n
			return nil
		}
	}
	return application.ErrNotFound
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return application.ErrNotFound
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

var errBoom = errors.New("boom")

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// run executes cmd and returns its message, or nil for a nil command
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
