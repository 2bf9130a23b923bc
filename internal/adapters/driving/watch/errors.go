// Package watch re-cleans a file every time it is written.
//
// The watcher observes the file's parent directory so that editors which
// save by rename-and-replace are still seen.
package watch

import "errors"

var (
	// ErrMissingNormaliserService is returned when the normaliser service is not provided.
	ErrMissingNormaliserService = errors.New("watch: normaliser service is required")

	// ErrMissingActionService is returned when an output path is set without an action service.
	ErrMissingActionService = errors.New("watch: result action service is required to write output")

	// ErrMissingExtractService is returned when a non-text format is set without an extract service.
	ErrMissingExtractService = errors.New("watch: extract service is required for formatted input")

	// ErrOutputIsInput is returned when the output path would overwrite the watched file.
	ErrOutputIsInput = errors.New("watch: output path must differ from the watched file")
)
