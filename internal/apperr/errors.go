package apperr

import (
	"errors"
	"fmt"
)

var (
	// Not found errors.
	ErrPostingNotFound     = errors.New("jobboard: posting not found")
	ErrEmployerNotFound    = errors.New("jobboard: employer not found")
	ErrApplicationNotFound = errors.New("jobboard: application not found")

	// State errors.
	ErrNotPending = errors.New("jobboard: posting is not pending")

	// Auth errors.
	ErrUnauthenticated = errors.New("jobboard: unauthenticated")
	ErrForbidden       = errors.New("jobboard: forbidden")
)

// ValidationError reports a missing or malformed required field. It is
// returned before any persistence is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("jobboard: invalid %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for a single field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DanglingReference reports a related record that should exist but does not,
// e.g. the employer contact for a posting being denied.
type DanglingReference struct {
	Collection string
	ID         string
}

func (e *DanglingReference) Error() string {
	return fmt.Sprintf("jobboard: dangling reference: %s/%s", e.Collection, e.ID)
}

// StoreError wraps a failure of the external store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("jobboard: store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError, or returns nil if err is nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
