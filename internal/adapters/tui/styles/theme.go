package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Ink       = lipgloss.Color("#1F2937") // Dark slate

	// Base styles
	App = lipgloss.NewStyle().
		Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Marquee strip
	Marquee = lipgloss.NewStyle().
		Background(Ink).
		Foreground(White).
		Bold(true)

	// Note cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Bold(true)

	CardLabel = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Label filter bar
	FilterActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	FilterInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// NoteColor returns the lipgloss color for a note's palette color,
// falling back to Muted for anything unset
func NoteColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return Muted
	}
	return lipgloss.Color(hex)
}
