package stages

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.StageFactory = (*Registry)(nil)

// BuilderFunc creates a stage from the transform options.
// It returns false when the options leave the stage disabled.
type BuilderFunc func(cfg domain.TransformConfig) (driven.Stage, bool)

// Registry maps stage names to their builders and remembers the order
// in which they were registered. That order is the execution order.
type Registry struct {
	order    []string
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty stage registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// NewDefaultRegistry creates a registry holding every built-in stage.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// Register adds a stage builder to the registry.
// Re-registering a name replaces its builder but keeps its position.
func (r *Registry) Register(name string, builder BuilderFunc) {
	if _, ok := r.builders[name]; !ok {
		r.order = append(r.order, name)
	}
	r.builders[name] = builder
}

// Build creates a pipeline holding the stages enabled by cfg.
func (r *Registry) Build(cfg domain.TransformConfig) driven.StagePipeline {
	p := NewPipeline()
	for _, name := range r.order {
		if stage, ok := r.builders[name](cfg); ok {
			p.Add(stage)
		}
	}
	return p
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names in execution order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
