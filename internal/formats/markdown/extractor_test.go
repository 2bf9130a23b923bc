package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

func TestExtractor_Metadata(t *testing.T) {
	e := New()

	assert.Equal(t, domain.FormatMarkdown, e.Format())
	assert.Contains(t, e.Extensions(), ".md")
	assert.Contains(t, e.MIMETypes(), "text/markdown")
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "heading and emphasis",
			input:    "# Title\n\nSome *emphasis* and **bold**.",
			expected: "Title\n\nSome emphasis and bold.",
		},
		{
			name:     "link keeps text",
			input:    "See [the docs](https://example.com) now",
			expected: "See the docs now",
		},
		{
			name:     "image dropped",
			input:    "A ![logo](logo.png) B",
			expected: "A  B",
		},
		{
			name:     "fenced code kept",
			input:    "Run:\n\n```go\nx := 1\n```\n",
			expected: "Run:\n\nx := 1",
		},
		{
			name:     "inline code kept",
			input:    "Use `go test` here",
			expected: "Use go test here",
		},
		{
			name:     "tight list",
			input:    "- one\n- two\n",
			expected: "one\ntwo",
		},
		{
			name:     "soft line break kept",
			input:    "line one\nline two",
			expected: "line one\nline two",
		},
		{
			name:     "raw html dropped",
			input:    "a <span>b</span> c",
			expected: "a b c",
		},
		{
			name:     "blockquote",
			input:    "> quoted\n",
			expected: "quoted",
		},
		{
			name:     "underscores in words survive",
			input:    "use snake_case names",
			expected: "use snake_case names",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Extract(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
