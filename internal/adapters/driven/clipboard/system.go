package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System writes to the operating system clipboard. On Linux this needs
// xclip, xsel, or wl-copy on PATH.
type System struct {
	write func(string) error
}

// NewSystem creates a clipboard backed by the OS.
func NewSystem() *System {
	return &System{write: clipboard.WriteAll}
}

// WriteText replaces the clipboard contents.
func (s *System) WriteText(text string) error {
	return s.write(text)
}

// Available reports whether a clipboard utility was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}
