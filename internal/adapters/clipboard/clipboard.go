package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"memoflow/internal/ports"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard unavailable (install xclip, xsel or wl-clipboard)")

// System writes to the desktop clipboard
type System struct{}

// Ensure System implements ports.Clipboard
var _ ports.Clipboard = System{}

// New returns the system clipboard, or nil when the platform has none so
// callers can disable copying up front
func New() ports.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return System{}
}

// WriteAll copies text to the clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
