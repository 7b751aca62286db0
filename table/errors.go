package table

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors for table operations.
var (
	// Emptiness violations
	ErrEmptyTable    = errors.New("table is empty")
	ErrTableNotEmpty = errors.New("table is not empty")

	// Key resolution failures
	ErrColumnNotFound   = errors.New("column not found")
	ErrInvalidColumnKey = errors.New("invalid column key")
	ErrRowOutOfRange    = errors.New("row number out of range")

	// Schema mismatches
	ErrDuplicateHeader   = errors.New("duplicate header columns")
	ErrRowLengthMismatch = errors.New("row length mismatch")

	// Cardinality mismatches
	ErrLengthMismatch = errors.New("value count does not match row count")
)

// DuplicateHeaderError reports column names that appear more than once
// in a combined header.
type DuplicateHeaderError struct {
	Names []string
}

// Error implements the error interface.
func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("duplicate header columns: %s", strings.Join(e.Names, ", "))
}

// Is reports whether the target matches this error.
func (e *DuplicateHeaderError) Is(target error) bool {
	return target == ErrDuplicateHeader
}

// CardinalityError reports a supplied value sequence whose length does
// not match the table's data row count.
type CardinalityError struct {
	Want int
	Got  int
}

// Error implements the error interface.
func (e *CardinalityError) Error() string {
	return fmt.Sprintf("value count does not match row count: got %d values for %d rows", e.Got, e.Want)
}

// Is reports whether the target matches this error.
func (e *CardinalityError) Is(target error) bool {
	return target == ErrLengthMismatch
}
