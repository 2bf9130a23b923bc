package driving

import "github.com/custodia-labs/cleanpaste/internal/core/domain"

// ExtractService converts formatted input to plain text before cleaning.
type ExtractService interface {
	// Extract converts input written in format. FormatAuto detects the
	// format from pathHint and the content. Returns the text and the
	// format that was used.
	Extract(input string, format domain.InputFormat, pathHint string) (string, domain.InputFormat, error)
}
