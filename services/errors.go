package services

import (
	"errors"
	"fmt"
)

// Sentinel errors let callers (and the HTTP error handler) branch on the
// failure class without parsing messages.
var (
	// ErrValidation marks bad input: empty item lists, negative quantities
	// or rates, missing snapshot fields. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing tenant-scoped record.
	ErrNotFound = errors.New("not found")

	// ErrSequenceUnavailable is returned when the document-number allocator
	// exhausted its retries or the counter store is unreachable. Nothing has
	// been issued when this is returned.
	ErrSequenceUnavailable = errors.New("document sequence unavailable")
)

// ValidationError wraps ErrValidation with a human-readable detail.
type ValidationError struct {
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Details)
	}
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Details: fmt.Sprintf(format, args...)}
}
