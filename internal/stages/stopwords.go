package stages

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// stopWordList holds articles, common prepositions, conjunctions and
// auxiliary verbs.
var stopWordList = []string{
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did",
	"of", "for", "in", "on", "at", "to", "from", "by", "with", "about",
	"that", "this", "these", "those", "it", "its",
	"and", "or", "but", "so", "if", "because", "as", "while", "when",
}

// stopWordPattern matches a stop word with the non-word rune (or text edge)
// on each side. RE2's \b is ASCII-only, so the boundaries are spelled out
// to keep "año" or "doña" whole.
var stopWordPattern = regexp.MustCompile(
	`(?i)(^|[^\pL\pN_])(?:` + strings.Join(stopWordList, "|") + `)([^\pL\pN_]|$)`)

// StopWordList returns a copy of the stop words.
func StopWordList() []string {
	words := make([]string, len(stopWordList))
	copy(words, stopWordList)
	return words
}

// StripStopWords replaces whole-word, case-insensitive stop words with a
// space, collapses space and tab runs, and trims the ends. Words that merely
// contain a stop word ("thistle", "another") are kept.
func StripStopWords(text string) string {
	// Matches consume their neighbours, so "the and" needs a second pass.
	for stopWordPattern.MatchString(text) {
		text = stopWordPattern.ReplaceAllString(text, "${1} ${2}")
	}
	text = horizontalSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StopWords is the stage wrapping StripStopWords.
type StopWords struct{}

// Name returns the stage name.
func (StopWords) Name() string { return NameStopWords }

// Apply strips stop words from text.
func (StopWords) Apply(_ *domain.Document, text string) string {
	return StripStopWords(text)
}
