package services

import (
	"fmt"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// Ensure ExtractService implements the interface.
var _ driving.ExtractService = (*ExtractService)(nil)

// ExtractService turns HTML or Markdown input into plain text.
type ExtractService struct {
	registry driven.ExtractorRegistry
}

// NewExtractService creates an extract service backed by registry.
func NewExtractService(registry driven.ExtractorRegistry) *ExtractService {
	return &ExtractService{registry: registry}
}

// Extract converts input from format to plain text.
func (s *ExtractService) Extract(
	input string,
	format domain.InputFormat,
	pathHint string,
) (string, domain.InputFormat, error) {
	if !format.IsValid() {
		return "", format, fmt.Errorf("%w: input format %q", domain.ErrInvalidInput, format)
	}

	if format == domain.FormatAuto {
		format = s.registry.Detect(pathHint, input)
		logger.Debug("detected input format %s", format)
	}

	extractor, ok := s.registry.Get(format)
	if !ok {
		return "", format, fmt.Errorf("%w: no extractor for %s", domain.ErrInvalidInput, format)
	}

	text, err := extractor.Extract(input)
	if err != nil {
		return "", format, fmt.Errorf("extracting %s: %w", format, err)
	}
	return text, format, nil
}
