package driving

import "github.com/custodia-labs/cleanpaste/internal/core/domain"

// NormaliserService runs the text-normalisation pipeline.
// All methods are safe for concurrent use and never fail.
type NormaliserService interface {
	// Normalise transforms input according to cfg.
	Normalise(input string, cfg domain.TransformConfig) domain.TransformResult

	// Squeeze transforms input with a squeeze preset.
	Squeeze(input string, level domain.SqueezeLevel) domain.TransformResult

	// EstimateTokens approximates language-model tokens for text.
	EstimateTokens(text string) int
}
