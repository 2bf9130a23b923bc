package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

func TestExtractor_Metadata(t *testing.T) {
	e := New()

	assert.Equal(t, domain.FormatHTML, e.Format())
	assert.Contains(t, e.Extensions(), ".html")
	assert.Contains(t, e.Extensions(), ".htm")
	assert.Contains(t, e.MIMETypes(), "text/html")
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "paragraphs",
			input:    "<p>Hello <b>world</b></p><p>Second</p>",
			expected: "Hello world\n\nSecond",
		},
		{
			name:     "script and style removed",
			input:    "<style>p { color: red }</style><p>x</p><script>alert(1)</script>",
			expected: "x",
		},
		{
			name:     "head removed",
			input:    "<html><head><title>T</title></head><body><h1>Hi</h1></body></html>",
			expected: "Hi",
		},
		{
			name:     "entities decoded",
			input:    "<p>Fish &amp; chips &lt;3</p>",
			expected: "Fish & chips <3",
		},
		{
			name:     "line breaks",
			input:    "a<br>b<br/>c",
			expected: "a\nb\nc",
		},
		{
			name:     "list items on their own lines",
			input:    "<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>",
			expected: "one\ntwo",
		},
		{
			name:     "source wrapping collapses",
			input:    "<p>hello\n      world</p>",
			expected: "hello world",
		},
		{
			name:     "pre keeps layout",
			input:    "<p>code:</p><pre>  x := 1\n  y := 2</pre>",
			expected: "code:\n\n  x := 1\n  y := 2",
		},
		{
			name:     "comments dropped",
			input:    "a<!-- hidden -->b",
			expected: "ab",
		},
		{
			name:     "table cells",
			input:    "<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>",
			expected: "A B\n1 2",
		},
		{
			name:     "plain text",
			input:    "just text",
			expected: "just text",
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

func TestExtractor_UnclosedSkippedElement(t *testing.T) {
	got, err := New().Extract("<p>before</p><script>never closed")

	require.NoError(t, err)
	assert.Equal(t, "before", got)
}
