package stages

import (
	"strings"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// isZeroWidth matches zero-width space, non-joiner, joiner and the byte-order mark.
func isZeroWidth(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF':
		return true
	default:
		return false
	}
}

// StripZeroWidth removes zero-width characters left behind by rich-text copy/paste.
func StripZeroWidth(text string) string {
	if !strings.ContainsFunc(text, isZeroWidth) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if isZeroWidth(r) {
			return -1
		}
		return r
	}, text)
}

// ZeroWidth is the stage wrapping StripZeroWidth.
type ZeroWidth struct{}

// Name returns the stage name.
func (ZeroWidth) Name() string { return NameZeroWidth }

// Apply strips zero-width characters from text.
func (ZeroWidth) Apply(_ *domain.Document, text string) string {
	return StripZeroWidth(text)
}
