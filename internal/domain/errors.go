package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a referenced vehicle, booking, return or
	// maintenance record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates an operation that would violate a lifecycle rule,
	// such as booking an unavailable vehicle or settling a booking twice.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates a malformed request value.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports a rejected field on vehicle input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
