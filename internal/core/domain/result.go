package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CharsPerToken is the divisor used by EstimateTokens.
const CharsPerToken = 4

// TransformResult is the output of one normalisation run.
type TransformResult struct {
	// Output is the transformed text.
	Output string `json:"output"`

	// OriginalLength is the input length in characters.
	OriginalLength int `json:"original_length"`

	// ResultLength is the output length in characters.
	ResultLength int `json:"result_length"`

	// RemovedCount is how many characters were removed (never negative).
	RemovedCount int `json:"removed_count"`

	// SavingsPercent is RemovedCount as a percentage of OriginalLength.
	SavingsPercent float64 `json:"savings_percent"`

	// OriginalTokens is the token estimate for the input.
	OriginalTokens int `json:"original_tokens"`

	// ResultTokens is the token estimate for the output.
	ResultTokens int `json:"result_tokens"`

	// Stages lists the stages that ran, in order.
	Stages []string `json:"stages,omitempty"`
}

// NewTransformResult computes metrics for a run that turned input into output.
func NewTransformResult(input, output string, stages []string) TransformResult {
	originalLength := CharLength(input)
	resultLength := CharLength(output)

	removed := originalLength - resultLength
	if removed < 0 {
		removed = 0
	}

	var savings float64
	if removed > 0 {
		savings = 100 * float64(removed) / float64(originalLength)
	}

	return TransformResult{
		Output:         output,
		OriginalLength: originalLength,
		ResultLength:   resultLength,
		RemovedCount:   removed,
		SavingsPercent: savings,
		OriginalTokens: EstimateTokens(input),
		ResultTokens:   EstimateTokens(output),
		Stages:         stages,
	}
}

// SavingsDisplay formats SavingsPercent with one decimal place.
func (r TransformResult) SavingsDisplay() string {
	return fmt.Sprintf("%.1f%%", r.SavingsPercent)
}

// TokenSavingsPercent returns the estimated token reduction as a percentage.
func (r TransformResult) TokenSavingsPercent() float64 {
	if r.OriginalTokens <= 0 {
		return 0
	}
	return 100 * float64(r.OriginalTokens-r.ResultTokens) / float64(r.OriginalTokens)
}

// Changed reports whether the output differs from the input.
func (r TransformResult) Changed(input string) bool {
	return r.Output != input
}

// CharLength returns the length of text in Unicode code points.
func CharLength(text string) int {
	return utf8.RuneCountInString(text)
}

// EstimateTokens approximates language-model tokens as ceil(characters / 4).
//
// This is a coarse heuristic and not a tokenizer: real counts vary by model,
// language and content type.
func EstimateTokens(text string) int {
	n := CharLength(text)
	if n == 0 {
		return 0
	}
	return (n + CharsPerToken - 1) / CharsPerToken
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
