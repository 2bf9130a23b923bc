package clipboard

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
)

// Ensure Null implements the interface.
var _ driven.Clipboard = (*Null)(nil)

// Null is a clipboard that is never available.
type Null struct{}

// NewNull creates a disabled clipboard.
func NewNull() *Null {
	return &Null{}
}

// WriteText always fails with domain.ErrClipboardUnavailable.
func (n *Null) WriteText(_ string) error {
	return domain.ErrClipboardUnavailable
}

// Available always returns false.
func (n *Null) Available() bool {
	return false
}

// New returns the system clipboard when enabled, otherwise Null.
func New(enabled bool) driven.Clipboard {
	if !enabled {
		return NewNull()
	}
	return NewSystem()
}
