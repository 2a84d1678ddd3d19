// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// It is usually wrapped in a *ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrPasswordTooShort is returned when a password is below the minimum
	// length. It wraps ErrValidation so both classifications hold.
	ErrPasswordTooShort = fmt.Errorf("%w: password too short", ErrValidation)
)

// ValidationError carries the field that failed validation alongside a
// human-readable reason. It wraps ErrValidation (or a more specific sentinel)
// so callers can classify it with errors.Is while still reporting which field
// was at fault.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string, err error) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Err:    err,
	}
}
