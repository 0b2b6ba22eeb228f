// Package clipboard delivers generated passwords to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// Sink receives a finished password.
type Sink interface {
	Write(text string) error
}

// System writes to the desktop clipboard.
type System struct {
	unsupported bool
	writeAll    func(string) error
}

// NewSystem returns a Sink backed by the platform clipboard utility
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
func NewSystem() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		writeAll:    clipboard.WriteAll,
	}
}

// Write replaces the clipboard contents with text.
func (s *System) Write(text string) error {
	if s.unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
