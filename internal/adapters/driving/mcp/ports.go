package mcp

import (
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Normaliser runs the transform pipeline.
	Normaliser driving.NormaliserService

	// Settings supplies defaults for options a caller leaves unset.
	// Optional: built-in defaults are used when nil.
	Settings driving.SettingsService

	// Extractor converts HTML or Markdown input when a tool call names a
	// format. Optional: formatted input is rejected when nil.
	Extractor driving.ExtractService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Normaliser == nil {
		return ErrMissingNormaliserService
	}
	return nil
}
