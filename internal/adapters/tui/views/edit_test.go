package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"memoflow/internal/application"
	"memoflow/internal/domain"
)

func TestEdit_CreateNote(t *testing.T) {
	repo := &memRepo{}
	m := NewEditModel(repo)
	m.SetNote(nil)
	m.form.SetValue(fieldTitle, "  Shopping ")
	m.form.SetValue(fieldContent, "milk\neggs")
	m.form.SetValue(fieldLabels, "home, , errands")

	msg, ok := m.save().(NoteSavedMsg)
	if !ok {
		t.Fatalf("save() returned %T, want NoteSavedMsg", m.save())
	}
	if msg.Message != "Created note: Shopping" {
		t.Errorf("Message = %q", msg.Message)
	}
	if len(repo.notes) != 1 {
		t.Fatalf("repo has %d notes, want 1", len(repo.notes))
	}
	n := repo.notes[0]
	if n.Content != "milk\neggs" {
		t.Errorf("Content = %q, want newline preserved", n.Content)
	}
	if len(n.Labels) != 2 || n.Labels[0] != "home" || n.Labels[1] != "errands" {
		t.Errorf("Labels = %v", n.Labels)
	}
	if !domain.IsPaletteColor(n.Color) {
		t.Errorf("Color = %q, want a palette color", n.Color)
	}
}

func TestEdit_EmptyNewNoteIsDiscarded(t *testing.T) {
	repo := &memRepo{}
	m := NewEditModel(repo)
	m.SetNote(nil)
	m.form.SetValue(fieldTitle, "   ")

	if _, ok := m.save().(SwitchToBoardMsg); !ok {
		t.Error("save() of an empty note should return to the board")
	}
	if len(repo.notes) != 0 {
		t.Errorf("repo has %d notes, want 0", len(repo.notes))
	}
}

func TestEdit_UpdateNote(t *testing.T) {
	orig := domain.Note{ID: "1", Title: "Old", Content: "c", Color: "#FBBC04", Labels: []string{"a", "b"}}
	repo := &memRepo{notes: []domain.Note{orig}}
	m := NewEditModel(repo)
	m.SetNote(&orig)

	if !m.Editing() {
		t.Fatal("Editing() = false for an existing note")
	}
	if d := m.Draft(); d.Title != "Old" || d.Labels != "a, b" {
		t.Errorf("Draft() = %+v, want fields loaded from the note", d)
	}

	m.form.SetValue(fieldTitle, "")
	if _, ok := m.save().(NoteSavedMsg); !ok {
		t.Fatal("save() did not report success")
	}
	got := repo.notes[0]
	if got.Title != domain.UntitledTitle {
		t.Errorf("Title = %q, want %q", got.Title, domain.UntitledTitle)
	}
	if got.Color != "#FBBC04" {
		t.Errorf("Color = %q, want it kept", got.Color)
	}
}

func TestEdit_UpdateMissingNote(t *testing.T) {
	m := NewEditModel(&memRepo{})
	m.SetNote(&domain.Note{ID: "gone", Title: "x"})

	msg, ok := m.save().(EditErrMsg)
	if !ok {
		t.Fatal("save() should fail for a missing note")
	}
	if !errors.Is(msg.Err, application.ErrNotFound) {
		t.Errorf("Err = %v, want ErrNotFound", msg.Err)
	}
}

func TestEdit_Keys(t *testing.T) {
	m := NewEditModel(&memRepo{})
	m.SetNote(nil)

	if _, cmd := m.Update(keyType(tea.KeyEsc)); cmd == nil {
		t.Error("esc should cancel")
	} else if _, ok := cmd().(SwitchToBoardMsg); !ok {
		t.Error("esc should return to the board")
	}

	// Enter in the title field submits
	if !m.form.IsSubmit(keyType(tea.KeyEnter)) {
		t.Error("enter in the title field should submit")
	}

	// Enter in the content area inserts a newline; ctrl+s still submits
	m.Update(keyType(tea.KeyTab))
	if m.form.FocusedField != fieldContent {
		t.Fatalf("FocusedField = %d, want content", m.form.FocusedField)
	}
	if m.form.IsSubmit(keyType(tea.KeyEnter)) {
		t.Error("enter in the content area should not submit")
	}
	if !m.form.IsSubmit(keyType(tea.KeyCtrlS)) {
		t.Error("ctrl+s should submit")
	}
}

func TestEdit_SetNoteResets(t *testing.T) {
	m := NewEditModel(&memRepo{})
	m.SetNote(&domain.Note{ID: "1", Title: "x", Content: "y"})
	m.SetMessage("old error", true)
	m.SetNote(nil)

	if m.Editing() || m.Message != "" {
		t.Errorf("SetNote(nil) left editing=%v message=%q", m.Editing(), m.Message)
	}
	if d := m.Draft(); !d.IsEmpty() {
		t.Errorf("Draft() = %+v, want empty", d)
	}
}

func TestEdit_ExternalEditRequest(t *testing.T) {
	m := NewEditModel(&memRepo{})
	m.SetNote(&domain.Note{ID: "1", Content: "body"})

	_, cmd := m.Update(keyType(tea.KeyCtrlE))
	msg, ok := run(cmd).(OpenEditorMsg)
	if !ok || msg.Text != "body" {
		t.Errorf("ctrl+e: got %#v, want OpenEditorMsg with the content", run(cmd))
	}
}
