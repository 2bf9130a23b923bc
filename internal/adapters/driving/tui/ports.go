// Package tui provides an interactive terminal user interface for cleanpaste.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Normaliser runs the transform pipeline on every edit.
	Normaliser driving.NormaliserService

	// Settings restores and persists toggles and theme.
	// Optional: defaults are used and nothing is saved when nil.
	Settings driving.SettingsService

	// ResultAction copies the cleaned output.
	// Optional: copy reports an error when nil.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	normaliser driving.NormaliserService,
	settings driving.SettingsService,
	resultAction driving.ResultActionService,
) *Ports {
	return &Ports{
		Normaliser:   normaliser,
		Settings:     settings,
		ResultAction: resultAction,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Normaliser == nil {
		return ErrMissingNormaliserService
	}
	return nil
}
