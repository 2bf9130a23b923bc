package driven

import "github.com/custodia-labs/cleanpaste/internal/core/domain"

// Stage is one step of the normalisation pipeline.
// Stages are pure: the same document and text always give the same output.
type Stage interface {
	// Name returns the stage name for logging and result reporting.
	Name() string

	// Apply transforms text, the output of the previous stage.
	// doc carries the untouched input for stages that need it.
	Apply(doc *domain.Document, text string) string
}

// StagePipeline chains stages in a fixed order.
type StagePipeline interface {
	// Run passes the document through every stage and returns the final text.
	Run(doc *domain.Document) string

	// Names returns the names of the stages in execution order.
	Names() []string
}

// StageFactory builds the pipeline selected by a configuration.
type StageFactory interface {
	// Build returns a pipeline containing only the enabled stages,
	// in the canonical order regardless of how cfg was assembled.
	Build(cfg domain.TransformConfig) StagePipeline
}
