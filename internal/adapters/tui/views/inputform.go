package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"memoflow/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Save   key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

// InputField is a labelled single-line input or, when Multiline is set,
// a text area where enter inserts a newline
type InputField struct {
	Label     string
	Input     textinput.Model
	Area      textarea.Model
	Multiline bool
}

// InputForm manages multiple input fields with focus handling
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates a new input form with the given fields
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields:       fields,
		FocusedField: 0,
		Keys:         DefaultInputFormKeys,
	}
	if len(fields) > 0 {
		form.Fields[0].focus()
	}
	return form
}

// NewInputField creates a new single-line field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// NewTextAreaField creates a multi-line field of the given height in rows
func NewTextAreaField(label, placeholder string, charLimit, rows int) InputField {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.CharLimit = charLimit
	area.SetHeight(rows)
	return InputField{
		Label:     label,
		Area:      area,
		Multiline: true,
	}
}

func (f *InputField) focus() tea.Cmd {
	if f.Multiline {
		return f.Area.Focus()
	}
	return f.Input.Focus()
}

func (f *InputField) blur() {
	if f.Multiline {
		f.Area.Blur()
		return
	}
	f.Input.Blur()
}

func (f *InputField) value() string {
	if f.Multiline {
		return f.Area.Value()
	}
	return f.Input.Value()
}

func (f *InputField) setValue(v string) {
	if f.Multiline {
		f.Area.SetValue(v)
		return
	}
	f.Input.SetValue(v)
}

func (f *InputField) view() string {
	if f.Multiline {
		return f.Area.View()
	}
	return f.Input.View()
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// IsSubmit reports whether msg submits the form: ctrl+s always does,
// enter only outside a multi-line field
func (f *InputForm) IsSubmit(msg tea.KeyMsg) bool {
	if key.Matches(msg, f.Keys.Save) {
		return true
	}
	if !key.Matches(msg, f.Keys.Submit) {
		return false
	}
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		return !f.Fields[f.FocusedField].Multiline
	}
	return true
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.Keys.Tab) {
		return true, f.NextField()
	}

	if f.FocusedField < 0 || f.FocusedField >= len(f.Fields) {
		return false, nil
	}

	var cmd tea.Cmd
	field := &f.Fields[f.FocusedField]
	if field.Multiline {
		field.Area, cmd = field.Area.Update(msg)
	} else {
		field.Input, cmd = field.Input.Update(msg)
	}
	return false, cmd
}

// NextField moves focus to the next field
func (f *InputForm) NextField() tea.Cmd {
	if len(f.Fields) <= 1 {
		return nil
	}
	return f.SetFocus((f.FocusedField + 1) % len(f.Fields))
}

// SetFocus sets focus to a specific field
func (f *InputForm) SetFocus(index int) tea.Cmd {
	if index < 0 || index >= len(f.Fields) {
		return nil
	}
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].blur()
	}
	f.FocusedField = index
	return f.Fields[index].focus()
}

// Value returns the raw value of a field by index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return f.Fields[index].value()
}

// SetValue sets the value of a field by index
func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].setValue(value)
}

// SetWidth resizes every field
func (f *InputForm) SetWidth(width int) {
	for i := range f.Fields {
		if f.Fields[i].Multiline {
			f.Fields[i].Area.SetWidth(width)
		} else {
			f.Fields[i].Input.Width = width
		}
	}
}

// Reset clears all field values and resets focus to the first field
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].setValue("")
		f.Fields[i].blur()
	}
	f.FocusedField = 0
	if len(f.Fields) > 0 {
		f.Fields[0].focus()
	}
}

// RenderField renders a single field with appropriate styling
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := &f.Fields[index]
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(field.Label))
	b.WriteString("\n")

	if index == f.FocusedField {
		b.WriteString(styles.InputFocused.Render(field.view()))
	} else {
		b.WriteString(styles.InputField.Render(field.view()))
	}

	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	var parts []string

	if len(f.Fields) > 1 {
		parts = append(parts, RenderKeyHelp(f.Keys.Tab))
	}
	parts = append(parts, styles.HelpKey.Render("enter/ctrl+s")+" "+styles.HelpDesc.Render(submitText))
	parts = append(parts, RenderKeyHelp(f.Keys.Cancel))

	return strings.Join(parts, "  ")
}
