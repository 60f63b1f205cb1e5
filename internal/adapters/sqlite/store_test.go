package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"memoflow/internal/application"
	"memoflow/internal/domain"
)

func openTestStore(t testing.TB) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "notes.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return s
}

func testNote(id string, created time.Time, labels ...string) domain.Note {
	return domain.Note{
		ID:        id,
		Title:     "Title " + id,
		Content:   "Content " + id,
		Color:     domain.Palette[0],
		Labels:    labels,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestStore_CreateGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	created := time.Date(2026, 4, 1, 10, 0, 0, 123, time.UTC)

	want := testNote("n1", created, "work", "urgent")
	if err := s.Create(ctx, want); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := s.Get(ctx, "n1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Title != want.Title || got.Content != want.Content || got.Color != want.Color {
		t.Errorf("Get() = %+v, expected %+v", got, want)
	}
	if !slices.Equal(got.Labels, want.Labels) {
		t.Errorf("Labels = %v, expected %v", got.Labels, want.Labels)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, created)
	}

	if err := s.Create(ctx, want); !errors.Is(err, application.ErrAlreadyExists) {
		t.Errorf("duplicate Create() = %v, expected ErrAlreadyExists", err)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Get() = %v, expected ErrNotFound", err)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		if err := s.Create(ctx, testNote(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Create(%s) error: %v", id, err)
		}
	}

	notes, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	var ids []string
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	if !slices.Equal(ids, []string{"c", "b", "a"}) {
		t.Errorf("List() order = %v, expected newest first", ids)
	}
}

func TestStore_ListEmpty(t *testing.T) {
	s := openTestStore(t)
	notes, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Errorf("List() = %v, expected empty non-nil slice", notes)
	}
}

func TestStore_Update(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	n := testNote("n1", time.Now())
	if err := s.Create(ctx, n); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	n.Title = "Changed"
	n.Labels = nil
	if err := s.Update(ctx, n); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, _ := s.Get(ctx, "n1")
	if got.Title != "Changed" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Labels == nil || len(got.Labels) != 0 {
		t.Errorf("Labels = %v, expected empty", got.Labels)
	}

	if err := s.Update(ctx, testNote("ghost", time.Now())); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Update(ghost) = %v, expected ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.Create(ctx, testNote("n1", time.Now())); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := s.Delete(ctx, "n1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, "n1"); !errors.Is(err, application.ErrNotFound) {
		t.Error("note still present after Delete")
	}
	if err := s.Delete(ctx, "n1"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("second Delete() = %v, expected ErrNotFound", err)
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := s.Create(ctx, testNote("keep", time.Now())); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s.Close()

	if _, err := s.Get(ctx, "keep"); err != nil {
		t.Errorf("note lost across reopen: %v", err)
	}
}

// BenchmarkList benchmarks listing a board of a few hundred notes
func BenchmarkList(b *testing.B) {
	s := openTestStore(b)
	ctx := context.Background()
	base := time.Now()
	for i := 0; i < 500; i++ {
		id := fmt.Sprintf("n%03d", i)
		if err := s.Create(ctx, testNote(id, base.Add(time.Duration(i)), "bench")); err != nil {
			b.Fatalf("Create() error: %v", err)
		}
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := s.List(ctx); err != nil {
			b.Fatalf("List() error: %v", err)
		}
	}
}
