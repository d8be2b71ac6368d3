package tui

import "errors"

// ErrMissingCatalog is returned when the example catalog is not provided.
var ErrMissingCatalog = errors.New("tui: example catalog is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
