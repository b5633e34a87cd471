package console

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("not a terminal")

// TTY holds a terminal in raw mode.
type TTY struct {
	fd    int
	state *term.State
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// MakeRaw switches f to raw mode. Call Restore to undo it.
func MakeRaw(f *os.File) (*TTY, error) {
	if !IsTerminal(f) {
		return nil, ErrNotTerminal
	}
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &TTY{fd: fd, state: state}, nil
}

// Restore returns the terminal to its previous mode. It is safe to call twice.
func (t *TTY) Restore() error {
	if t == nil || t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	return term.Restore(t.fd, state)
}

// Size returns the current terminal size.
func (t *TTY) Size() Size {
	if t == nil {
		return Size{}
	}
	width, height, err := term.GetSize(t.fd)
	if err != nil {
		return Size{}
	}
	return Size{Width: width, Height: height}
}
