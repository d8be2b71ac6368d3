// Package birds provides birds whose types only promise what they can do.
package birds

import (
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Ensure the birds implement the capabilities they have, and only those.
var (
	_ driven.Bird       = (*Sparrow)(nil)
	_ driven.FlyingBird = (*Sparrow)(nil)
	_ driven.Bird       = (*Penguin)(nil)
)

// Sparrow moves and flies.
type Sparrow struct {
	out io.Writer
}

// NewSparrow creates a sparrow that reports to out.
func NewSparrow(out io.Writer) *Sparrow {
	return &Sparrow{out: out}
}

// Name returns "sparrow".
func (s *Sparrow) Name() string { return "sparrow" }

// Move hops.
func (s *Sparrow) Move() {
	fmt.Fprintln(s.out, "Sparrow is hopping")
}

// Fly flies.
func (s *Sparrow) Fly() {
	fmt.Fprintln(s.out, "Sparrow is flying")
}

// Penguin moves by swimming. It has no Fly method.
type Penguin struct {
	out io.Writer
}

// NewPenguin creates a penguin that reports to out.
func NewPenguin(out io.Writer) *Penguin {
	return &Penguin{out: out}
}

// Name returns "penguin".
func (p *Penguin) Name() string { return "penguin" }

// Move swims.
func (p *Penguin) Move() {
	fmt.Fprintln(p.out, "Penguin is swimming")
}

// New returns the named bird.
func New(name string, out io.Writer) (driven.Bird, bool) {
	switch name {
	case "sparrow":
		return NewSparrow(out), true
	case "penguin":
		return NewPenguin(out), true
	default:
		return nil, false
	}
}

// AsFlying reports whether the bird has the flying capability.
func AsFlying(b driven.Bird) (driven.FlyingBird, bool) {
	f, ok := b.(driven.FlyingBird)
	return f, ok
}
