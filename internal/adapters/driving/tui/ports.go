// Package tui provides an interactive terminal user interface for solidkit.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog lists and runs the examples.
	Catalog driving.ExampleCatalog
}

// NewPorts creates a new Ports aggregate.
func NewPorts(catalog driving.ExampleCatalog) *Ports {
	return &Ports{Catalog: catalog}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalog
	}
	return nil
}
