package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"memoflow/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("memoflow Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Sticky notes with a flowing marquee"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Board"))
	b.WriteString("\n")
	b.WriteString(helpLine("h j k l / arrows", "Move between cards"))
	b.WriteString(helpLine("tab / shift+tab", "Next / previous label filter"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(helpLine("n", "New note"))
	b.WriteString(helpLine("enter / e", "Edit selected note"))
	b.WriteString(helpLine("d", "Delete selected note"))
	b.WriteString(helpLine("y", "Copy content to clipboard"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editor"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab", "Next field"))
	b.WriteString(helpLine("enter / ctrl+s", "Save (ctrl+s inside content)"))
	b.WriteString(helpLine("ctrl+e", "Edit content in $EDITOR"))
	b.WriteString(helpLine("esc", "Cancel"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("  Note contents drift across the strip at the top."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
