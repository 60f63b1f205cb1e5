package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Opener hands note text to the user's preferred editor
type Opener struct {
	lookup func(string) string
}

// NewOpener creates a new editor opener reading $VISUAL and $EDITOR
func NewOpener() *Opener {
	return &Opener{lookup: os.Getenv}
}

// Session is one round trip of text through a temporary file
type Session struct {
	path string
}

// Edit writes text to a temporary file and returns the editor command for it.
// Run the command (bubbletea's ExecProcess does this) then call Result.
func (o *Opener) Edit(text string) (*exec.Cmd, *Session, error) {
	name := o.findEditor()
	if name == "" {
		return nil, nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp("", "memoflow-*.md")
	if err != nil {
		return nil, nil, fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, nil, fmt.Errorf("closing temp file: %w", err)
	}

	// $EDITOR may carry arguments, e.g. "code --wait"
	fields := strings.Fields(name)
	cmd := exec.Command(fields[0], append(fields[1:], f.Name())...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, &Session{path: f.Name()}, nil
}

// Result reads the edited text back and removes the temporary file.
// The single trailing newline most editors append is dropped.
func (s *Session) Result() (string, error) {
	defer os.Remove(s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("reading edited text: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if visual := o.lookup("VISUAL"); visual != "" {
		return visual
	}
	if editor := o.lookup("EDITOR"); editor != "" {
		return editor
	}

	// Try common editors
	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
