// Package examples is the catalog of runnable teaching examples.
// Every principle has a good and a bad variant; each runner builds its own
// collaborators and writes the simulated output to the caller's writer.
package examples

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// Ensure Registry implements the interface.
var _ driving.ExampleCatalog = (*Registry)(nil)

// RunFunc executes one example, writing its output to w.
type RunFunc func(ctx context.Context, w io.Writer) error

type entry struct {
	example domain.Example
	run     RunFunc
}

// Registry maps example ids to their metadata and runner.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// NewDefaultRegistry creates a registry holding every built-in example.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// Register adds an example. The id is derived from principle and variant
// and replaces any earlier registration.
func (r *Registry) Register(example domain.Example, run RunFunc) {
	example.ID = domain.ExampleID(example.Principle, example.Variant)
	r.entries[example.ID] = entry{example: example, run: run}
}

// List returns the matching examples ordered by principle, good first.
func (r *Registry) List(filter domain.ExampleFilter) []domain.Example {
	result := make([]domain.Example, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.Matches(e.example) {
			result = append(result, e.example)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Principle.Order() != b.Principle.Order() {
			return a.Principle.Order() < b.Principle.Order()
		}
		// "good" before "bad"
		return a.Variant > b.Variant
	})
	return result
}

// Get returns the example with the given id.
func (r *Registry) Get(id string) (*domain.Example, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("example %q: %w", id, domain.ErrNotFound)
	}
	example := e.example
	return &example, nil
}

// Run executes the example.
func (r *Registry) Run(ctx context.Context, id string, w io.Writer) error {
	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("example %q: %w", id, domain.ErrNotFound)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.run(ctx, w); err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	return nil
}
