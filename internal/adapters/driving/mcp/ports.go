package mcp

import (
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog lists and runs the examples.
	Catalog driving.ExampleCatalog

	// Payments backs the calculate_fee tool. Optional.
	Payments driving.PaymentProcessor

	// Discounts backs the calculate_discount tool. Optional.
	Discounts driving.DiscountService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalog
	}
	return nil
}
