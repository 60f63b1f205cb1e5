package views

import "memoflow/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToEditMsg struct {
	// Note is nil when creating a new note
	Note *domain.Note
}

type SwitchToDeleteMsg struct {
	Note domain.Note
}

type SwitchToHelpMsg struct{}

type SwitchToBoardMsg struct{}

// NoteSavedMsg reports a committed create, update or delete.
// The host reloads notes and refreshes the marquee pool on receipt.
type NoteSavedMsg struct {
	Message string
}

// EditErrMsg indicates an error while saving a note
type EditErrMsg struct {
	Err error
}

// DeleteErrMsg indicates an error during deletion
type DeleteErrMsg struct {
	Err error
}

// OpenEditorMsg asks the host to edit Text in the external editor
type OpenEditorMsg struct {
	Text string
}
