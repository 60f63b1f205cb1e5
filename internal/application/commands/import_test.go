package commands

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"memoflow/internal/domain"
)

const browserExport = `[
  {"id": "1735689600000", "title": "", "content": "  newest  ", "color": "#fbbc04", "labels": ["work", " ", "work"]},
  {"id": "abc", "title": "Plain", "content": "second", "color": "not-a-color", "labels": []},
  {"id": "", "title": "No id", "content": "", "color": "#E8EAED"}
]`

func TestDecodeBrowserMemos(t *testing.T) {
	memos, err := DecodeBrowserMemos(strings.NewReader(browserExport))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memos) != 3 {
		t.Fatalf("len = %d, expected 3", len(memos))
	}
	if memos[0].Content != "  newest  " || memos[1].Title != "Plain" {
		t.Errorf("unexpected memos %+v", memos)
	}

	if _, err := DecodeBrowserMemos(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Error("expected decode error for non-array input")
	}
}

func TestImportNotesCommand_Execute(t *testing.T) {
	memos, err := DecodeBrowserMemos(strings.NewReader(browserExport))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &memRepo{notes: []domain.Note{{ID: "abc", Title: "stale"}}}
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	cmd := NewImportNotesCommand(repo, memos)
	cmd.now = func() time.Time { return now }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 2 || result.Updated != 1 {
		t.Errorf("Created/Updated = %d/%d, expected 2/1", result.Created, result.Updated)
	}

	first, err := repo.Get(context.Background(), "1735689600000")
	if err != nil {
		t.Fatalf("imported note missing: %v", err)
	}
	if first.Title != domain.UntitledTitle || first.Content != "newest" {
		t.Errorf("unexpected first note %+v", first)
	}
	if first.Color != "#FBBC04" {
		t.Errorf("Color = %q, expected normalized palette color", first.Color)
	}
	if !slices.Equal(first.Labels, []string{"work"}) {
		t.Errorf("Labels = %v", first.Labels)
	}
	if !first.CreatedAt.Equal(time.UnixMilli(1735689600000)) {
		t.Errorf("CreatedAt = %v, expected time from the browser ID", first.CreatedAt)
	}

	plain, _ := repo.Get(context.Background(), "abc")
	if plain.Title != "Plain" || !domain.IsPaletteColor(plain.Color) {
		t.Errorf("unexpected updated note %+v", plain)
	}
	if !plain.CreatedAt.Equal(now.Add(-time.Millisecond)) {
		t.Errorf("CreatedAt = %v, expected fallback time", plain.CreatedAt)
	}

	var generated int
	for _, n := range repo.notes {
		if n.Title == "No id" && n.ID != "" {
			generated++
		}
	}
	if generated != 1 {
		t.Error("expected a generated ID for the memo without one")
	}
}
