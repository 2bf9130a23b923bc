package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty", "", 0},
		{"one char", "a", 1},
		{"four chars", "abcd", 1},
		{"five chars", "abcde", 2},
		{"hundred chars", strings.Repeat("x", 100), 25},
		{"multibyte counts runes", "éééé", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateTokens(tt.text))
		})
	}
}

func TestNewTransformResult(t *testing.T) {
	result := NewTransformResult("hello world", "hello", []string{"stop_words"})

	assert.Equal(t, "hello", result.Output)
	assert.Equal(t, 11, result.OriginalLength)
	assert.Equal(t, 5, result.ResultLength)
	assert.Equal(t, 6, result.RemovedCount)
	assert.InDelta(t, 54.545, result.SavingsPercent, 0.01)
	assert.Equal(t, "54.5%", result.SavingsDisplay())
	assert.Equal(t, 3, result.OriginalTokens)
	assert.Equal(t, 2, result.ResultTokens)
	assert.Equal(t, []string{"stop_words"}, result.Stages)
}

func TestNewTransformResult_GrowthIsNotNegative(t *testing.T) {
	result := NewTransformResult("ab", "a b", nil)

	assert.Equal(t, 0, result.RemovedCount)
	assert.Zero(t, result.SavingsPercent)
	assert.Equal(t, "0.0%", result.SavingsDisplay())
}

func TestNewTransformResult_Empty(t *testing.T) {
	result := NewTransformResult("", "", nil)

	assert.Zero(t, result.OriginalLength)
	assert.Zero(t, result.SavingsPercent)
	assert.Zero(t, result.TokenSavingsPercent())
}

func TestTransformResult_TokenSavingsPercent(t *testing.T) {
	result := NewTransformResult(strings.Repeat("x", 100), strings.Repeat("x", 50), nil)

	assert.Equal(t, 25, result.OriginalTokens)
	assert.Equal(t, 13, result.ResultTokens)
	assert.InDelta(t, 48.0, result.TokenSavingsPercent(), 0.001)
}

func TestTransformResult_Changed(t *testing.T) {
	result := NewTransformResult("abc", "abc", nil)
	assert.False(t, result.Changed("abc"))
	assert.True(t, result.Changed("abcd"))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t"))
	assert.Equal(t, 3, CountWords("  one two\nthree  "))
}
