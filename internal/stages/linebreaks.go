package stages

import (
	"strings"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// RepairLineBreaks joins hard-wrapped lines, as produced by copying from PDFs.
//
// A newline becomes a space when the characters on both sides of it are not
// newlines. Blank lines (two or more newlines in a row) are kept, and so is a
// newline at either end of the text.
func RepairLineBreaks(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}

	// '\n' never occurs inside a multi-byte UTF-8 sequence, so bytes are safe.
	out := []byte(text)
	for i := 1; i < len(text)-1; i++ {
		if text[i] == '\n' && text[i-1] != '\n' && text[i+1] != '\n' {
			out[i] = ' '
		}
	}
	return string(out)
}

// LineBreaks is the stage wrapping RepairLineBreaks.
type LineBreaks struct{}

// Name returns the stage name.
func (LineBreaks) Name() string { return NameLineBreaks }

// Apply joins single line breaks in text.
func (LineBreaks) Apply(_ *domain.Document, text string) string {
	return RepairLineBreaks(text)
}
