// Package markdown extracts readable text from Markdown source.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles Markdown input.
type Extractor struct {
	md goldmark.Markdown
}

// New creates a new Markdown extractor.
func New() *Extractor {
	return &Extractor{md: goldmark.New()}
}

// Format returns domain.FormatMarkdown.
func (e *Extractor) Format() domain.InputFormat {
	return domain.FormatMarkdown
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".md", ".markdown", ".mdown"}
}

// MIMETypes returns the MIME types this extractor handles.
func (e *Extractor) MIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

var (
	trailingSpaces = regexp.MustCompile(`(?m)[ \t]+$`)
	multiNewlines  = regexp.MustCompile(`\n{3,}`)
)

// Extract renders the document as plain text. Link text and code are kept;
// images and raw HTML are dropped. Soft line breaks stay as newlines.
func (e *Extractor) Extract(input string) (string, error) {
	src := []byte(input)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				b.Write(node.Label(src))
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(src))
				}
				b.WriteString("\n\n")
			}
			return ast.WalkSkipChildren, nil
		case *ast.Image, *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.ThematicBreak, *ast.List:
			if !entering {
				b.WriteString("\n\n")
			}
		case *ast.TextBlock:
			if !entering {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("markdown: %w", err)
	}

	return tidy(b.String()), nil
}

// tidy trims line ends and collapses runs of blank lines.
func tidy(s string) string {
	s = trailingSpaces.ReplaceAllString(s, "")
	s = multiNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
