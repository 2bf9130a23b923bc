package driving

import (
	"context"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// ResultActionService delivers a transform result somewhere useful.
// This is used by TUI, CLI, and watcher adapters.
type ResultActionService interface {
	// CopyToClipboard copies the result's output to the system clipboard.
	CopyToClipboard(ctx context.Context, result *domain.TransformResult) error

	// WriteToFile writes the result's output to path, replacing its contents.
	WriteToFile(ctx context.Context, result *domain.TransformResult, path string) error
}
