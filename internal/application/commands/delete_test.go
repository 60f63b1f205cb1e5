package commands

import (
	"context"
	"errors"
	"testing"

	"memoflow/internal/application"
	"memoflow/internal/domain"
)

func TestDeleteNoteCommand_Execute(t *testing.T) {
	repo := &memRepo{notes: []domain.Note{{ID: "a"}, {ID: "b"}}}

	result, err := NewDeleteNoteCommand(repo, "a").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DeletedID != "a" || result.Message != "Deleted a" {
		t.Errorf("unexpected result %+v", result)
	}
	if len(repo.notes) != 1 || repo.notes[0].ID != "b" {
		t.Errorf("repo notes = %+v", repo.notes)
	}
}

func TestDeleteNoteCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
		errMsg  string
	}{
		{name: "empty ID", id: "", errMsg: "note ID is required"},
		{name: "missing note", id: "zzz", wantErr: application.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeleteNoteCommand(&memRepo{}, tt.id).Execute(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.errMsg != "" && !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}
