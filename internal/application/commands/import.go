package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"memoflow/internal/application"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

// BrowserMemo is one entry of the browser board's exported "memos" array
type BrowserMemo struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Color   string   `json:"color"`
	Labels  []string `json:"labels"`
}

// DecodeBrowserMemos reads a JSON array of memos
func DecodeBrowserMemos(r io.Reader) ([]BrowserMemo, error) {
	var memos []BrowserMemo
	if err := json.NewDecoder(r).Decode(&memos); err != nil {
		return nil, fmt.Errorf("failed to decode memos: %w", err)
	}
	return memos, nil
}

// ImportResult contains the result of an import
type ImportResult struct {
	Created int
	Updated int
	Message string
}

// ImportNotesCommand stores browser memos, keeping their IDs. Existing notes
// with the same ID are overwritten.
type ImportNotesCommand struct {
	repo  ports.NoteRepository
	now   func() time.Time
	Memos []BrowserMemo
}

// NewImportNotesCommand creates a new ImportNotesCommand
func NewImportNotesCommand(repo ports.NoteRepository, memos []BrowserMemo) *ImportNotesCommand {
	return &ImportNotesCommand{
		repo:  repo,
		now:   time.Now,
		Memos: memos,
	}
}

// Execute runs the import command
func (c *ImportNotesCommand) Execute(ctx context.Context) (*ImportResult, error) {
	res := &ImportResult{}
	now := c.now()

	// The export is newest first; older entries get earlier fallback times
	// so the board keeps the same order.
	for i, m := range c.Memos {
		note := memoToNote(m, now.Add(-time.Duration(i)*time.Millisecond))

		_, err := c.repo.Get(ctx, note.ID)
		switch {
		case err == nil:
			if err := c.repo.Update(ctx, note); err != nil {
				return res, &application.NoteError{ID: note.ID, Op: "import", Err: err}
			}
			res.Updated++
		case errors.Is(err, application.ErrNotFound):
			if err := c.repo.Create(ctx, note); err != nil {
				return res, &application.NoteError{ID: note.ID, Op: "import", Err: err}
			}
			res.Created++
		default:
			return res, &application.NoteError{ID: note.ID, Op: "import", Err: err}
		}
	}

	res.Message = fmt.Sprintf("Imported %d notes (%d new, %d updated)", res.Created+res.Updated, res.Created, res.Updated)
	return res, nil
}

// memoToNote normalizes a browser memo. Browser IDs are millisecond
// timestamps, which become the creation time when they parse.
func memoToNote(m BrowserMemo, fallback time.Time) domain.Note {
	id := strings.TrimSpace(m.ID)
	if id == "" {
		id = uuid.NewString()
	}

	created := fallback
	if ms, err := strconv.ParseInt(id, 10, 64); err == nil && ms > 0 {
		created = time.UnixMilli(ms)
	}

	title := strings.TrimSpace(m.Title)
	if title == "" {
		title = domain.UntitledTitle
	}

	color := strings.ToUpper(strings.TrimSpace(m.Color))
	if !domain.IsPaletteColor(color) {
		color = domain.Palette[rand.IntN(len(domain.Palette))]
	}

	return domain.Note{
		ID:        id,
		Title:     title,
		Content:   strings.TrimSpace(m.Content),
		Color:     color,
		Labels:    domain.CleanLabels(m.Labels),
		CreatedAt: created,
		UpdatedAt: created,
	}
}
