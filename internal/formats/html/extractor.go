// Package html extracts readable text from HTML documents and fragments.
package html

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles HTML input.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns domain.FormatHTML.
func (e *Extractor) Format() domain.InputFormat {
	return domain.FormatHTML
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".html", ".htm", ".xhtml"}
}

// MIMETypes returns the MIME types this extractor handles.
func (e *Extractor) MIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Elements whose content is never shown.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Head:     true,
	atom.Svg:      true,
	atom.Template: true,
}

// Elements that start a new paragraph.
var paragraphs = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Hr: true, atom.Pre: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Table: true, atom.Section: true, atom.Article: true,
	atom.Header: true, atom.Footer: true, atom.Main: true, atom.Nav: true, atom.Aside: true,
	atom.Ul: true, atom.Ol: true, atom.Dl: true, atom.Figure: true, atom.Form: true,
}

// Elements that start a new line.
var lines = map[atom.Atom]bool{
	atom.Br: true, atom.Li: true, atom.Tr: true, atom.Dt: true, atom.Dd: true,
	atom.Figcaption: true,
}

// Elements separated from their neighbours by a space.
var cells = map[atom.Atom]bool{
	atom.Td: true, atom.Th: true,
}

var (
	whitespaceRun  = regexp.MustCompile(`[ \t\r\n\f]+`)
	trailingSpaces = regexp.MustCompile(`(?m)[ \t]+$`)
	multiNewlines  = regexp.MustCompile(`\n{3,}`)
)

// Extract returns the visible text of input. Paragraph-level elements are
// separated by a blank line and line-level elements by a newline. Whitespace
// inside text collapses as a browser would, except within <pre>.
func (e *Extractor) Extract(input string) (string, error) {
	z := xhtml.NewTokenizer(strings.NewReader(input))

	var b strings.Builder
	skipDepth := 0
	preDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return tidy(b.String()), nil
			}
			return "", fmt.Errorf("html: %w", z.Err())

		case xhtml.TextToken:
			if skipDepth > 0 {
				continue
			}
			writeText(&b, string(z.Text()), preDepth > 0)

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skipped[a] {
				if tt == xhtml.StartTagToken {
					skipDepth++
				}
				continue
			}
			if a == atom.Pre && tt == xhtml.StartTagToken {
				preDepth++
			}
			if skipDepth == 0 {
				writeBreak(&b, a, true)
			}

		case xhtml.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skipped[a] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if a == atom.Pre && preDepth > 0 {
				preDepth--
			}
			if skipDepth == 0 {
				writeBreak(&b, a, false)
			}

		case xhtml.CommentToken, xhtml.DoctypeToken:
		}
	}
}

func writeText(b *strings.Builder, text string, pre bool) {
	if !pre {
		text = whitespaceRun.ReplaceAllString(text, " ")
		if b.Len() == 0 || strings.HasSuffix(b.String(), "\n") {
			text = strings.TrimLeft(text, " ")
		}
	}
	b.WriteString(text)
}

// writeBreak separates block content. Line and cell breaks only apply at
// the start tag so that adjacent items don't double up.
func writeBreak(b *strings.Builder, a atom.Atom, start bool) {
	switch {
	case paragraphs[a]:
		b.WriteString("\n\n")
	case lines[a] && start:
		b.WriteString("\n")
	case cells[a] && start && b.Len() > 0 && !strings.HasSuffix(b.String(), "\n"):
		b.WriteString(" ")
	}
}

// tidy trims line ends and collapses runs of blank lines.
func tidy(text string) string {
	text = trailingSpaces.ReplaceAllString(text, "")
	text = multiNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
