package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"memoflow/internal/adapters/tui/styles"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

const (
	cardWidth        = 28 // outer width including border
	cardContentLines = 3
	cardHeight       = cardContentLines + 4 // title, labels, border
	cardGap          = 1
	boardChrome      = 8 // title, filter bar, page line, message, help
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Copy       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	NextFilter: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "filter"),
	),
	PrevFilter: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BoardModel is the card board with its label filter bar
type BoardModel struct {
	ViewState
	clip    ports.Clipboard
	notes   []domain.Note
	labels  []string
	filter  string
	visible []domain.Note
	grid    *Grid
	loaded  bool
}

// NewBoardModel creates a new board. clip may be nil, which disables copying.
func NewBoardModel(clip ports.Clipboard) *BoardModel {
	return &BoardModel{
		clip:   clip,
		filter: domain.FilterAll,
		grid:   NewGrid(),
	}
}

// Init initializes the board
func (m *BoardModel) Init() tea.Cmd {
	return nil
}

// SetNotes replaces the note set. The filter falls back to "all" when its
// label no longer exists; the cursor stays on the same note when possible.
func (m *BoardModel) SetNotes(notes []domain.Note) {
	var selectedID string
	if n := m.Selected(); n != nil {
		selectedID = n.ID
	}

	m.notes = notes
	m.labels = domain.CollectLabels(notes)
	m.loaded = true
	if m.filter != domain.FilterAll && !slices.Contains(m.labels, m.filter) {
		m.filter = domain.FilterAll
	}
	m.applyFilter()

	if selectedID != "" {
		for i, n := range m.visible {
			if n.ID == selectedID {
				m.grid.SetCursor(i)
				break
			}
		}
	}
}

// Filters returns the filter bar entries: "all" then every label
func (m *BoardModel) Filters() []string {
	return append([]string{domain.FilterAll}, m.labels...)
}

// Filter returns the active filter
func (m *BoardModel) Filter() string {
	return m.filter
}

// SetFilter activates a filter entry, ignoring unknown labels
func (m *BoardModel) SetFilter(filter string) {
	if !slices.Contains(m.Filters(), filter) {
		return
	}
	m.filter = filter
	m.grid.SetCursor(0)
	m.applyFilter()
}

// Visible returns the notes passing the active filter
func (m *BoardModel) Visible() []domain.Note {
	return m.visible
}

// Selected returns the note under the cursor, or nil on an empty board
func (m *BoardModel) Selected() *domain.Note {
	if len(m.visible) == 0 {
		return nil
	}
	n := m.visible[m.grid.Cursor()]
	return &n
}

func (m *BoardModel) applyFilter() {
	m.visible = domain.FilterByLabel(m.notes, m.filter)
	m.grid.SetTotal(len(m.visible))
}

func (m *BoardModel) cycleFilter(step int) {
	filters := m.Filters()
	i := slices.Index(filters, m.filter)
	i = (i + step + len(filters)) % len(filters)
	m.SetFilter(filters[i])
}

// SetSize updates the view dimensions and the card layout
func (m *BoardModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	cols := (width - 4 + cardGap) / (cardWidth + cardGap)
	rows := (height - boardChrome) / cardHeight
	m.grid.SetLayout(cols, rows)
}

type copiedMsg struct {
	err error
}

// Update handles messages for the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.SetMessage("Copied to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BoardKeys.Quit):
		return tea.Quit
	case key.Matches(msg, BoardKeys.Up):
		m.grid.Up()
	case key.Matches(msg, BoardKeys.Down):
		m.grid.Down()
	case key.Matches(msg, BoardKeys.Left):
		m.grid.Left()
	case key.Matches(msg, BoardKeys.Right):
		m.grid.Right()
	case key.Matches(msg, BoardKeys.NextFilter):
		m.cycleFilter(1)
	case key.Matches(msg, BoardKeys.PrevFilter):
		m.cycleFilter(-1)
	case key.Matches(msg, BoardKeys.New):
		m.ClearMessage()
		return func() tea.Msg { return SwitchToEditMsg{} }
	case key.Matches(msg, BoardKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(msg, BoardKeys.Edit):
		if n := m.Selected(); n != nil {
			m.ClearMessage()
			return func() tea.Msg { return SwitchToEditMsg{Note: n} }
		}
	case key.Matches(msg, BoardKeys.Delete):
		if n := m.Selected(); n != nil {
			m.ClearMessage()
			return func() tea.Msg { return SwitchToDeleteMsg{Note: *n} }
		}
	case key.Matches(msg, BoardKeys.Copy):
		return m.copySelected()
	}
	return nil
}

func (m *BoardModel) copySelected() tea.Cmd {
	n := m.Selected()
	if n == nil || m.clip == nil {
		return nil
	}
	content := n.Content
	clip := m.clip
	return func() tea.Msg {
		return copiedMsg{err: clip.WriteAll(content)}
	}
}

// View renders the board
func (m *BoardModel) View() string {
	if !m.loaded {
		return styles.App.Render("Loading...")
	}

	v := NewViewBuilder().Title("memoflow")
	v.Line(m.renderFilterBar()).BlankLine()

	if len(m.visible) == 0 {
		if m.filter == domain.FilterAll {
			v.Muted("No notes yet. Press n to create one.")
		} else {
			v.Muted(fmt.Sprintf("No notes labelled %q.", m.filter))
		}
	} else {
		v.Line(m.renderGrid())
		if m.grid.PageCount() > 1 {
			v.Muted(fmt.Sprintf("page %d/%d", m.grid.Page()+1, m.grid.PageCount()))
		}
	}

	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Help(BoardKeys.New, BoardKeys.Edit, BoardKeys.Delete, BoardKeys.Copy,
		BoardKeys.NextFilter, BoardKeys.Help, BoardKeys.Quit)
	return v.String()
}

func (m *BoardModel) renderFilterBar() string {
	var parts []string
	for _, f := range m.Filters() {
		if f == m.filter {
			parts = append(parts, styles.FilterActive.Render(f))
		} else {
			parts = append(parts, styles.FilterInactive.Render(f))
		}
	}
	return strings.Join(parts, " ")
}

func (m *BoardModel) renderGrid() string {
	start, end := m.grid.VisibleRange()
	cols := m.grid.Cols()
	gap := strings.Repeat(" ", cardGap)

	var rows []string
	for rowStart := start; rowStart < end; rowStart += cols {
		var cards []string
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			if len(cards) > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, renderCard(m.visible[i], i == m.grid.Cursor()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws a note as a bordered card in its palette color
func renderCard(n domain.Note, selected bool) string {
	color := styles.NoteColor(n.Color)
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	inner := cardWidth - 4 // border and padding

	lines := []string{styles.CardTitle.Foreground(color).Render(truncate(n.Title, inner))}
	content := wrapLines(n.Content, inner, cardContentLines)
	for len(content) < cardContentLines {
		content = append(content, "")
	}
	lines = append(lines, content...)

	var tags []string
	for _, l := range n.Labels {
		tags = append(tags, "#"+l)
	}
	lines = append(lines, styles.CardLabel.Render(truncate(strings.Join(tags, " "), inner)))

	return style.
		BorderForeground(color).
		Width(cardWidth - 2).
		Render(strings.Join(lines, "\n"))
}
