package watch

import (
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
)

// Ports aggregates the driving ports the watcher needs.
type Ports struct {
	// Normaliser runs the transform pipeline.
	Normaliser driving.NormaliserService

	// Actions writes results to the output file. Required when Options.Output is set.
	Actions driving.ResultActionService

	// Extractor converts formatted input first. Required when Options.Format
	// is set to anything other than text.
	Extractor driving.ExtractService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Normaliser == nil {
		return ErrMissingNormaliserService
	}
	return nil
}
