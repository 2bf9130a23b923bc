package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFormat_IsValid(t *testing.T) {
	for _, f := range AllInputFormats() {
		assert.True(t, f.IsValid(), f.String())
	}
	assert.False(t, InputFormat("rtf").IsValid())
	assert.False(t, InputFormat("").IsValid())
}

func TestInputFormat_String(t *testing.T) {
	assert.Equal(t, "markdown", FormatMarkdown.String())
}

func TestInputFormat_Description(t *testing.T) {
	for _, f := range AllInputFormats() {
		assert.NotEqual(t, "unknown", f.Description(), f)
	}
	assert.Equal(t, "unknown", InputFormat("pdf").Description())
}
