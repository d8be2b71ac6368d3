package services

import (
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// Ensure BirdService implements the interface.
var _ driving.BirdService = (*BirdService)(nil)

// BirdService only asks birds for what their type promises.
type BirdService struct{}

// NewBirdService creates a new bird service.
func NewBirdService() *BirdService {
	return &BirdService{}
}

// MakeBirdMove is safe for every bird.
func (s *BirdService) MakeBirdMove(bird driven.Bird) {
	bird.Move()
}

// MakeBirdFly only accepts flying birds.
func (s *BirdService) MakeBirdFly(bird driven.FlyingBird) {
	bird.Fly()
}
