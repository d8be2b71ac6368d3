package counterexamples

import (
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// Bird promises that every bird can fly.
//
// Counter-example (LSP): Penguin satisfies the interface but cannot honour
// it. The program compiles and then fails at run time, so callers can no
// longer trust the abstraction.
type Bird interface {
	Fly() error
}

// Sparrow flies.
type Sparrow struct {
	out io.Writer
}

// NewSparrow creates a sparrow writing to out.
func NewSparrow(out io.Writer) *Sparrow {
	return &Sparrow{out: out}
}

// Fly prints and succeeds.
func (s *Sparrow) Fly() error {
	fmt.Fprintln(s.out, "Sparrow is flying")
	return nil
}

// Penguin cannot fly but is still a Bird.
type Penguin struct{}

// Fly always fails.
func (Penguin) Fly() error {
	return fmt.Errorf("penguins cannot fly: %w", domain.ErrUnsupportedBehaviour)
}

// FlightlessBirdService trusts the Bird contract.
type FlightlessBirdService struct{}

// MakeBirdFly asks any bird to fly.
func (FlightlessBirdService) MakeBirdFly(bird Bird) error {
	return bird.Fly()
}
