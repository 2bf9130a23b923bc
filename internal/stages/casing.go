package stages

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

var (
	// sentenceStart matches the first word character of the text or of a
	// sentence, together with the terminator and spacing before it. \s is
	// ASCII-only, so Unicode spaces such as NBSP are added explicitly.
	sentenceStart = regexp.MustCompile(`^[\s\p{Zs}]*[\pL\pN_]|[.!?][\s\p{Zs}]*[\pL\pN_]`)

	// titleWord matches a token from its first word character up to the
	// next whitespace. Leading punctuation such as "(" is not part of it.
	titleWord = regexp.MustCompile(`[\pL\pN_]\S*`)
)

// ApplyCase rewrites letter case according to mode.
// CaseNone and unknown modes return text unchanged.
func ApplyCase(text string, mode domain.CaseMode) string {
	// Casers keep state, so each call gets its own.
	switch mode {
	case domain.CaseLower:
		return cases.Lower(language.Und).String(text)
	case domain.CaseUpper:
		return cases.Upper(language.Und).String(text)
	case domain.CaseSentence:
		return ToSentenceCase(text)
	case domain.CaseTitle:
		return ToTitleCase(text)
	default:
		return text
	}
}

// ToSentenceCase uppercases the first letter of the text and the first
// letter after each '.', '!' or '?'. Other letters are left as they are,
// so "e.g. this" becomes "E.G. This".
func ToSentenceCase(text string) string {
	return sentenceStart.ReplaceAllStringFunc(text, strings.ToUpper)
}

// ToTitleCase uppercases the first letter of every word and lowercases
// the rest of it.
func ToTitleCase(text string) string {
	lower := cases.Lower(language.Und)
	return titleWord.ReplaceAllStringFunc(text, func(word string) string {
		first, size := utf8.DecodeRuneInString(word)
		return string(unicode.ToUpper(first)) + lower.String(word[size:])
	})
}

// Case is the stage wrapping ApplyCase.
type Case struct {
	mode domain.CaseMode
}

// NewCase creates a case stage for the given mode.
func NewCase(mode domain.CaseMode) *Case {
	return &Case{mode: mode}
}

// Name returns the stage name.
func (c *Case) Name() string { return NameCase }

// Mode returns the configured case mode.
func (c *Case) Mode() domain.CaseMode { return c.mode }

// Apply rewrites letter case in text.
func (c *Case) Apply(_ *domain.Document, text string) string {
	return ApplyCase(text, c.mode)
}
