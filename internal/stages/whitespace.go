package stages

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	blankLineRun    = regexp.MustCompile(`\n{3,}`)
)

// CollapseWhitespace squeezes runs of spaces and tabs to one space, limits
// blank lines to one, and trims the ends.
func CollapseWhitespace(text string) string {
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = blankLineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Whitespace is the stage wrapping CollapseWhitespace.
type Whitespace struct{}

// Name returns the stage name.
func (Whitespace) Name() string { return NameWhitespace }

// Apply collapses whitespace in text.
func (Whitespace) Apply(_ *domain.Document, text string) string {
	return CollapseWhitespace(text)
}
