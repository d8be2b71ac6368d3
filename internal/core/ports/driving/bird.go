package driving

import "github.com/custodia-labs/solidkit/internal/core/ports/driven"

// BirdService makes birds do things.
type BirdService interface {
	// MakeBirdMove works for every bird.
	MakeBirdMove(bird driven.Bird)

	// MakeBirdFly only accepts birds that can fly.
	MakeBirdFly(bird driven.FlyingBird)
}
