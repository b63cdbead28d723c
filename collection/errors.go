/*
errors.go - Centralized error types for the collection engine

PURPOSE:
  All error types in one place. Domain packages wrap these with additional
  context; handlers map them to HTTP statuses.

ERROR CATEGORIES:
  1. Validation errors - a draft record failed the collection's predicate
  2. Lookup errors     - an id or index did not resolve
  3. Capability errors - an operation the collection was not configured for

USAGE:
  if errors.Is(err, collection.ErrInvalidRecord) {
      // reject with 400, reason in InvalidRecordError.Reason
  }
*/
package collection

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRecord is returned when a draft fails validation on Create
	// or Update. The collection is left unchanged.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrNotFound is returned by Update when no record has the target id.
	// Delete deliberately does NOT return this; absent deletes are no-ops.
	ErrNotFound = errors.New("record not found")

	// ErrReorderDisabled is returned by Reorder on collections constructed
	// without WithReorder.
	ErrReorderDisabled = errors.New("reordering not enabled")

	// ErrIndexOutOfRange is returned by Reorder for positions outside the
	// collection bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidRecordError reports which collection rejected a draft and why.
type InvalidRecordError struct {
	Collection string
	Reason     error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record for %q: %v", e.Collection, e.Reason)
}

func (e *InvalidRecordError) Unwrap() error { return ErrInvalidRecord }

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRecord) ||
		errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrReorderDisabled)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
