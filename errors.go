package intvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a location lies outside the range an operation accepts.
	ErrOutOfBounds = errors.New("location out of bounds")

	// ErrNotInitialized is returned by operations on a vector that was never
	// initialized or has been cleaned up.
	ErrNotInitialized = errors.New("vector not initialized")

	// ErrAlreadyInitialized is returned by Init on an active vector.
	ErrAlreadyInitialized = errors.New("vector already initialized")

	// ErrAllocationFailed is returned when a buffer cannot be obtained.
	ErrAllocationFailed = errors.New("allocation failed")
)

// BoundsError reports a rejected location together with the length at the
// time of the call.
//
// errors.Is(err, ErrOutOfBounds) reports true for every BoundsError.
type BoundsError struct {
	Op       string
	Location int
	Length   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: location %d out of bounds for length %d", e.Op, e.Location, e.Length)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// CapacityError indicates an invalid start capacity.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Capacity)
}

// AllocationError indicates that a buffer of Capacity elements could not be
// obtained, either because the size overflows or because the memory budget
// refused it.
//
// The underlying cause can be reached via errors.Is/errors.As; the error also
// matches ErrAllocationFailed.
type AllocationError struct {
	Capacity int
	cause    error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocation of %d elements failed: %v", e.Capacity, e.cause)
}

func (e *AllocationError) Unwrap() []error { return []error{ErrAllocationFailed, e.cause} }
