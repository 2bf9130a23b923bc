package services

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on transform results.
type ResultActionService struct {
	clipboard driven.Clipboard
}

// NewResultActionService creates a new result action service.
// A nil clipboard behaves as an unavailable one.
func NewResultActionService(clipboard driven.Clipboard) *ResultActionService {
	return &ResultActionService{
		clipboard: clipboard,
	}
}

// CopyToClipboard copies the result's output to the system clipboard.
func (s *ResultActionService) CopyToClipboard(_ context.Context, result *domain.TransformResult) error {
	if result == nil {
		return fmt.Errorf("copy: %w", domain.ErrInvalidInput)
	}
	if s.clipboard == nil || !s.clipboard.Available() {
		return domain.ErrClipboardUnavailable
	}

	if err := s.clipboard.WriteText(result.Output); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	logger.Debug("copied %d chars to clipboard", result.ResultLength)
	return nil
}

// WriteToFile writes the result's output to path.
func (s *ResultActionService) WriteToFile(ctx context.Context, result *domain.TransformResult, path string) error {
	if result == nil || path == "" {
		return fmt.Errorf("write output: %w", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(result.Output), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug("wrote %d chars to %s", result.ResultLength, path)
	return nil
}
