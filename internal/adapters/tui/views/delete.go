package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"memoflow/internal/adapters/tui/styles"
	"memoflow/internal/application/commands"
	"memoflow/internal/ports"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	repo ports.NoteRepository
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(repo ports.NoteRepository) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		repo:              repo,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			m.doDelete,
			func() tea.Msg { return SwitchToBoardMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	if m.Target == nil {
		return DeleteErrMsg{Err: fmt.Errorf("no note selected")}
	}

	cmd := commands.NewDeleteNoteCommand(m.repo, m.Target.ID)
	if _, err := cmd.Execute(context.Background()); err != nil {
		return DeleteErrMsg{Err: err}
	}

	return NoteSavedMsg{
		Message: fmt.Sprintf("Deleted note: %s", m.Target.Title),
	}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	return NewViewBuilder().
		Title("Delete Note").
		BlankLine().
		Line(styles.ErrorMsg.Render("This action cannot be undone!")).
		BlankLine().
		Line(RenderTargetInfo(m.Target, "Delete", m.Width)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(RenderConfirmPrompt("Are you sure?")).
		String()
}
