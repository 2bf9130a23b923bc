package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/formats"
)

type failingExtractor struct{}

func (failingExtractor) Format() domain.InputFormat     { return domain.FormatHTML }
func (failingExtractor) Extensions() []string           { return []string{".html"} }
func (failingExtractor) MIMETypes() []string            { return []string{"text/html"} }
func (failingExtractor) Extract(string) (string, error) { return "", errors.New("boom") }

func TestExtractService_Extract(t *testing.T) {
	service := NewExtractService(formats.NewDefaultRegistry())

	tests := []struct {
		name     string
		input    string
		format   domain.InputFormat
		path     string
		expected string
		resolved domain.InputFormat
	}{
		{
			name:     "text is identity",
			input:    "<p>kept</p>",
			format:   domain.FormatText,
			expected: "<p>kept</p>",
			resolved: domain.FormatText,
		},
		{
			name:     "html",
			input:    "<p>Hello <b>world</b></p>",
			format:   domain.FormatHTML,
			expected: "Hello world",
			resolved: domain.FormatHTML,
		},
		{
			name:     "markdown",
			input:    "# Title\n\nBody text",
			format:   domain.FormatMarkdown,
			expected: "Title\n\nBody text",
			resolved: domain.FormatMarkdown,
		},
		{
			name:     "auto by extension",
			input:    "**bold**",
			format:   domain.FormatAuto,
			path:     "notes.md",
			expected: "bold",
			resolved: domain.FormatMarkdown,
		},
		{
			name:     "auto by content",
			input:    "<!DOCTYPE html><html><body><p>Hi</p></body></html>",
			format:   domain.FormatAuto,
			expected: "Hi",
			resolved: domain.FormatHTML,
		},
		{
			name:     "auto falls back to text",
			input:    "just words",
			format:   domain.FormatAuto,
			expected: "just words",
			resolved: domain.FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, resolved, err := service.Extract(tt.input, tt.format, tt.path)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.resolved, resolved)
		})
	}
}

func TestExtractService_Extract_InvalidFormat(t *testing.T) {
	service := NewExtractService(formats.NewDefaultRegistry())

	_, _, err := service.Extract("x", domain.InputFormat("pdf"), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractService_Extract_MissingExtractor(t *testing.T) {
	service := NewExtractService(formats.NewRegistry())

	_, _, err := service.Extract("x", domain.FormatHTML, "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractService_Extract_ExtractorError(t *testing.T) {
	registry := formats.NewRegistry()
	registry.Register(failingExtractor{})
	service := NewExtractService(registry)

	_, _, err := service.Extract("<p>x</p>", domain.FormatHTML, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extracting html")
	assert.Contains(t, err.Error(), "boom")
}
