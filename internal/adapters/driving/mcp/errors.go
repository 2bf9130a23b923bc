// Package mcp provides an MCP (Model Context Protocol) server adapter for
// cleanpaste. It lets AI assistants clean and squeeze text before it goes
// into a prompt.
package mcp

import "errors"

var (
	// ErrMissingNormaliserService is returned when the normaliser service is not provided.
	ErrMissingNormaliserService = errors.New("mcp: normaliser service is required")

	// ErrExtractUnavailable is returned when a tool call names an input
	// format but no extract service is configured.
	ErrExtractUnavailable = errors.New("mcp: input formats are not available")
)
