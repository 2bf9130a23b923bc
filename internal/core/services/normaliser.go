package services

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// Ensure NormaliserService implements the interface.
var _ driving.NormaliserService = (*NormaliserService)(nil)

// NormaliserService builds a stage pipeline per request and reports
// before/after metrics. It holds no mutable state.
type NormaliserService struct {
	factory driven.StageFactory
}

// NewNormaliserService creates a normaliser backed by the given stage factory.
func NewNormaliserService(factory driven.StageFactory) *NormaliserService {
	return &NormaliserService{
		factory: factory,
	}
}

// Normalise transforms input according to cfg.
// Stages that are switched off are skipped; an unknown case mode leaves case unchanged.
func (s *NormaliserService) Normalise(input string, cfg domain.TransformConfig) domain.TransformResult {
	pipeline := s.factory.Build(cfg)
	output := pipeline.Run(domain.NewDocument(input))

	result := domain.NewTransformResult(input, output, pipeline.Names())
	logger.Debug("normalised %d -> %d chars (%s saved)",
		result.OriginalLength, result.ResultLength, result.SavingsDisplay())

	return result
}

// Squeeze transforms input with the preset for level.
// Unknown levels fall back to the low preset.
func (s *NormaliserService) Squeeze(input string, level domain.SqueezeLevel) domain.TransformResult {
	if !level.IsValid() {
		logger.Warn("unknown squeeze level %q, using %s", level, domain.SqueezeLow)
		level = domain.SqueezeLow
	}

	result := s.Normalise(input, level.Config())
	logger.Debug("squeeze %s: %d -> %d tokens", level, result.OriginalTokens, result.ResultTokens)

	return result
}

// EstimateTokens approximates language-model tokens for text.
func (s *NormaliserService) EstimateTokens(text string) int {
	return domain.EstimateTokens(text)
}
