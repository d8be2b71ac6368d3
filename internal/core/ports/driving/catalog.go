package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// ExampleCatalog lists and runs the teaching examples.
type ExampleCatalog interface {
	// List returns matching examples in catalog order.
	List(filter domain.ExampleFilter) []domain.Example

	// Get returns one example, or domain.ErrNotFound.
	Get(id string) (*domain.Example, error)

	// Run executes the example and writes its output to w.
	Run(ctx context.Context, id string, w io.Writer) error
}
