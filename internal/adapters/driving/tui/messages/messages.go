// Package messages defines Bubbletea message types for the TUI.
// Messages carry the results of commands back into the model.
package messages

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// SettingsLoaded carries persisted settings at startup.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved reports the outcome of persisting a toggle or theme change.
type SettingsSaved struct {
	Err error
}

// Copied reports the outcome of a clipboard copy.
type Copied struct {
	Chars int
	Err   error
}

// StatusExpired clears a transient status message if it is still current.
type StatusExpired struct {
	ID int
}

// Pane identifies which pane receives keys.
type Pane int

const (
	// PaneEditor is the input text area.
	PaneEditor Pane = iota
	// PanePreview is the scrollable cleaned output.
	PanePreview
)

// Next returns the other pane.
func (p Pane) Next() Pane {
	if p == PaneEditor {
		return PanePreview
	}
	return PaneEditor
}

// String returns the string representation of the pane.
func (p Pane) String() string {
	switch p {
	case PaneEditor:
		return "editor"
	case PanePreview:
		return "preview"
	default:
		return "unknown"
	}
}
