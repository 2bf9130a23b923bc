// Package plaintext passes plain text through unchanged.
package plaintext

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles plain text.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns domain.FormatText.
func (e *Extractor) Format() domain.InputFormat {
	return domain.FormatText
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".txt", ".text", ".log"}
}

// MIMETypes returns the MIME types this extractor handles.
func (e *Extractor) MIMETypes() []string {
	return []string{"text/plain"}
}

// Extract returns input unchanged.
func (e *Extractor) Extract(input string) (string, error) {
	return input, nil
}
