package vector

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrIndexOutOfRange is returned by checked accessors when the index is not below the size.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyContainer is returned when removing from a vector with no elements.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrAllocationFailure is the panic value (wrapped) when backing storage cannot be obtained.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrInvalidPosition is the panic value (wrapped) when a position lies outside the vector.
	ErrInvalidPosition = errors.New("invalid position")
)

// Error wraps errors with operation context
type Error struct {
	Op  string // Operation name
	Err error  // Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("vector: %v", e.Err)
	}
	return fmt.Sprintf("vector: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func indexError(op string, index, size int) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)}
}

func emptyError(op string) error {
	return &Error{Op: op, Err: ErrEmptyContainer}
}

func positionError(op string, pos, lo, hi int) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPosition, pos, lo, hi)}
}

func allocError(op string, n int, cause any) error {
	if cause == nil {
		return &Error{Op: op, Err: fmt.Errorf("%w: %d elements", ErrAllocationFailure, n)}
	}
	return &Error{Op: op, Err: fmt.Errorf("%w: %d elements: %v", ErrAllocationFailure, n, cause)}
}
