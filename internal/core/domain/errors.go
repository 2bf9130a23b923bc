package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoInput indicates no text was supplied to a command.
	ErrNoInput = errors.New("no input provided")

	// ErrUnknownSetting indicates a settings key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidSetting indicates a settings value cannot be parsed or is out of range.
	ErrInvalidSetting = errors.New("invalid setting value")

	// ErrClipboardUnavailable indicates no clipboard backend is usable.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
