package tui

import "errors"

// ErrMissingNormaliserService is returned when the normaliser service is not provided.
var ErrMissingNormaliserService = errors.New("tui: normaliser service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
