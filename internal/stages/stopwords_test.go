package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripStopWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"article and padding", "  a   cat   sat  ", "cat sat"},
		{"several stop words", "The cat and the hat", "cat hat"},
		{"case insensitive", "IT IS what it is", "what"},
		{"inside longer words", "thistle another island", "thistle another island"},
		{"newlines are kept", "cat\nthe dog", "cat\n dog"},
		{"only stop words", "the and of", ""},
		{"no stop words", "quick brown fox", "quick brown fox"},
		{"adjacent stop words", "cat of the and dog", "cat dog"},
		{"punctuation neighbours", "cat,the,dog", "cat, ,dog"},
		{"accented letter after", "año nuevo", "año nuevo"},
		{"accented letter before", "doña Ana", "doña Ana"},
		{"accented letter inside", "aéb", "aéb"},
		{"accented word then stop word", "isé the cat", "isé cat"},
		{"non-ASCII neighbours around stop word", "café the niño", "café niño"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripStopWords(tt.input))
		})
	}
}

func TestStopWordList(t *testing.T) {
	words := StopWordList()

	assert.Contains(t, words, "the")
	assert.Contains(t, words, "because")
	assert.Len(t, words, 41)

	words[0] = "changed"
	assert.Equal(t, "a", StopWordList()[0])
}
