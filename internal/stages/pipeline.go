package stages

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.StagePipeline = (*Pipeline)(nil)

// Pipeline chains multiple stages and runs them in order.
type Pipeline struct {
	stages []driven.Stage
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Run passes the document through every stage.
// The first stage receives the original text; each later stage receives
// the output of the one before it. A nil document yields "".
func (p *Pipeline) Run(doc *domain.Document) string {
	if doc == nil {
		return ""
	}

	text := doc.Original
	for _, stage := range p.stages {
		before := domain.CharLength(text)
		text = stage.Apply(doc, text)
		logger.Debug("stage %s: %d -> %d chars", stage.Name(), before, domain.CharLength(text))
	}

	return text
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.stages))
	for _, stage := range p.stages {
		names = append(names, stage.Name())
	}
	return names
}
