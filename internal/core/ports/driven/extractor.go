package driven

import "github.com/custodia-labs/cleanpaste/internal/core/domain"

// TextExtractor turns formatted input into plain text.
type TextExtractor interface {
	// Format is the input format this extractor handles.
	Format() domain.InputFormat

	// Extensions returns file extensions (with dot, lower case) for this format.
	Extensions() []string

	// MIMETypes returns the media types this extractor handles.
	MIMETypes() []string

	// Extract returns the readable text of input.
	Extract(input string) (string, error)
}

// ExtractorRegistry looks up extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a concrete format.
	Get(format domain.InputFormat) (TextExtractor, bool)

	// Detect picks a format from a file name hint and the content itself.
	Detect(pathHint, content string) domain.InputFormat
}
