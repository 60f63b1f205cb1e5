package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"memoflow/internal/application"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.NoteRepository using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements NoteRepository
var _ ports.NoteRepository = (*Store)(nil)

// Open opens (creating if needed) the note database at path
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			color TEXT NOT NULL,
			labels TEXT NOT NULL DEFAULT '[]',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '` + schemaVersion + `');
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db, dbPath: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// List returns all notes, newest first
func (s *Store) List(ctx context.Context) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, color, labels, created_at, updated_at
		FROM notes ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}

	return notes, rows.Err()
}

// Get retrieves a note by ID
func (s *Store) Get(ctx context.Context, id string) (*domain.Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, color, labels, created_at, updated_at
		FROM notes WHERE id = ?
	`, id)

	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %s: %w", id, application.ErrNotFound)
	}
	return n, err
}

// Create inserts a new note
func (s *Store) Create(ctx context.Context, note domain.Note) error {
	labels, err := encodeLabels(note.Labels)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO notes (id, title, content, color, labels, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.Content, note.Color, labels,
		note.CreatedAt.UnixNano(), note.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note %s: %w", note.ID, application.ErrAlreadyExists)
	}
	return nil
}

// Update overwrites an existing note
func (s *Store) Update(ctx context.Context, note domain.Note) error {
	labels, err := encodeLabels(note.Labels)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, content = ?, color = ?, labels = ?, created_at = ?, updated_at = ?
		WHERE id = ?
	`, note.Title, note.Content, note.Color, labels,
		note.CreatedAt.UnixNano(), note.UpdatedAt.UnixNano(), note.ID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note %s: %w", note.ID, application.ErrNotFound)
	}
	return nil
}

// Delete removes a note by ID
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note %s: %w", id, application.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*domain.Note, error) {
	var (
		n                domain.Note
		labels           string
		created, updated int64
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Color, &labels, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(labels), &n.Labels); err != nil {
		return nil, fmt.Errorf("corrupt labels for note %s: %w", n.ID, err)
	}
	if n.Labels == nil {
		n.Labels = []string{}
	}
	n.CreatedAt = time.Unix(0, created)
	n.UpdatedAt = time.Unix(0, updated)
	return &n, nil
}

func encodeLabels(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	b, err := json.Marshal(labels)
	if err != nil {
		return "", fmt.Errorf("failed to encode labels: %w", err)
	}
	return string(b), nil
}

// expandHome expands a leading ~ in path
func expandHome(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}
