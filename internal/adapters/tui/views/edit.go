package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"memoflow/internal/application/commands"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

// ExternalEditKey opens the content field in $EDITOR
var ExternalEditKey = key.NewBinding(
	key.WithKeys("ctrl+e"),
	key.WithHelp("ctrl+e", "$EDITOR"),
)

const (
	fieldTitle = iota
	fieldContent
	fieldLabels
)

// EditModel is the note form, used both for new notes and for editing
type EditModel struct {
	ViewState
	repo   ports.NoteRepository
	form   *InputForm
	target *domain.Note
}

// NewEditModel creates a new edit view model
func NewEditModel(repo ports.NoteRepository) *EditModel {
	return &EditModel{
		repo: repo,
		form: NewInputForm(
			NewInputField("Title", "Untitled", 200),
			NewTextAreaField("Content", "What's on your mind?", 0, 6),
			NewInputField("Labels", "work, ideas", 200),
		),
	}
}

// SetNote loads a note into the form. A nil note starts a new one.
func (m *EditModel) SetNote(note *domain.Note) {
	m.form.Reset()
	m.ClearMessage()
	m.target = nil
	if note == nil {
		return
	}
	n := *note
	m.target = &n
	m.form.SetValue(fieldTitle, n.Title)
	m.form.SetValue(fieldContent, n.Content)
	m.form.SetValue(fieldLabels, n.LabelString())
}

// Editing reports whether the form edits an existing note
func (m *EditModel) Editing() bool {
	return m.target != nil
}

// Draft returns the current form input
func (m *EditModel) Draft() domain.NoteDraft {
	return domain.NoteDraft{
		Title:   m.form.Value(fieldTitle),
		Content: m.form.Value(fieldContent),
		Labels:  m.form.Value(fieldLabels),
	}
}

// SetContent replaces the content field, used after an external edit
func (m *EditModel) SetContent(text string) {
	m.form.SetValue(fieldContent, text)
	m.form.SetFocus(fieldContent)
}

// SetSize updates the view dimensions and field widths
func (m *EditModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.form.SetWidth(min(max(width-10, 20), 72))
}

// Init initializes the edit view
func (m *EditModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the edit view
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }
		case m.form.IsSubmit(msg):
			return m, m.save
		case key.Matches(msg, ExternalEditKey):
			text := m.form.Value(fieldContent)
			return m, func() tea.Msg { return OpenEditorMsg{Text: text} }
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *EditModel) save() tea.Msg {
	draft := m.Draft()
	ctx := context.Background()

	if m.target == nil {
		// An empty new note is discarded silently
		if draft.IsEmpty() {
			return SwitchToBoardMsg{}
		}
		res, err := commands.NewCreateNoteCommand(m.repo, draft).Execute(ctx)
		if err != nil {
			return EditErrMsg{Err: err}
		}
		return NoteSavedMsg{Message: res.Message}
	}

	res, err := commands.NewUpdateNoteCommand(m.repo, m.target.ID, draft).Execute(ctx)
	if err != nil {
		return EditErrMsg{Err: err}
	}
	return NoteSavedMsg{Message: res.Message}
}

// View renders the edit view
func (m *EditModel) View() string {
	title := "New Note"
	submit := "create"
	if m.target != nil {
		title = "Edit Note"
		submit = "save"
	}

	v := NewViewBuilder().Title(title).BlankLine()
	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i)).BlankLine()
	}
	v.Muted("Labels are comma separated.").BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Line(strings.TrimSpace(m.form.RenderHelp(submit)) + "  " + RenderKeyHelp(ExternalEditKey))
	return v.String()
}
