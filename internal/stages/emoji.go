package stages

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// emojiTable covers ©, ®, U+2000–U+3300 and U+1F000–U+1FBFF.
//
// The BMP block is far wider than emoji: it also holds general punctuation
// (dashes, curly quotes, ellipsis, typographic spaces), arrows, math
// operators, box drawing and CJK symbols. All of those are removed too.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A9, Hi: 0x00A9, Stride: 1},
		{Lo: 0x00AE, Hi: 0x00AE, Stride: 1},
		{Lo: 0x2000, Hi: 0x3300, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1FBFF, Stride: 1},
	},
	LatinOffset: 2,
}

// IsEmoji reports whether r falls in the ranges removed by StripEmoji.
func IsEmoji(r rune) bool {
	return unicode.Is(emojiTable, r)
}

// StripEmoji removes emoji and every other symbol in the same broad ranges.
func StripEmoji(text string) string {
	if !strings.ContainsFunc(text, IsEmoji) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if IsEmoji(r) {
			return -1
		}
		return r
	}, text)
}

// Emoji is the stage wrapping StripEmoji.
type Emoji struct{}

// Name returns the stage name.
func (Emoji) Name() string { return NameEmoji }

// Apply strips emoji from text.
func (Emoji) Apply(_ *domain.Document, text string) string {
	return StripEmoji(text)
}
