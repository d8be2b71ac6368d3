package driven

// Bird is something every bird can do.
type Bird interface {
	// Name returns the species name.
	Name() string

	// Move makes the bird get around in whatever way it can.
	Move()
}

// FlyingBird is implemented only by birds that can fly.
// Flightless birds do not implement it, so asking them to fly does not
// compile.
type FlyingBird interface {
	Fly()
}
