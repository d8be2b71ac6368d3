package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates a business precondition was violated.
	// Callers are expected to fix the input and try again.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedPaymentMethod indicates no fee strategy is registered
	// for a payment method.
	ErrUnsupportedPaymentMethod = errors.New("payment method not supported")

	// ErrUnsupportedBehaviour indicates a type was asked to do something it
	// can never do. Only the substitution counter-example returns it; a
	// correct hierarchy makes the call impossible instead.
	ErrUnsupportedBehaviour = errors.New("behaviour not supported")
)

// ValidationError describes which field broke which rule.
// It unwraps to ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrValidation so errors.Is matches it.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
