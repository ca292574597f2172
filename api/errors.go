// File: api/errors.go
//
// Common error values and error taxonomy for cds collections.

package api

import "fmt"

// Errors reported by checked collection operations. Every checked
// operation is all-or-nothing: when one of these is returned the
// collection is exactly as it was before the call.
var (
	// ErrInsufficientCapacity is returned when a mutation would exceed
	// the declared capacity of a fixed-capacity collection.
	ErrInsufficientCapacity = fmt.Errorf("insufficient capacity")

	// ErrInvalidIndex is returned when an index or range argument is
	// out of bounds.
	ErrInvalidIndex = fmt.Errorf("invalid index")

	// ErrMisalignedIndex is returned by string collections when an
	// index is a valid byte offset but does not lie on a character
	// boundary. It matches ErrInvalidIndex under errors.Is.
	ErrMisalignedIndex = fmt.Errorf("%w: not a character boundary", ErrInvalidIndex)

	// ErrCapacityOverflow is returned when a reservation on a growable
	// collection cannot be represented by its length type.
	ErrCapacityOverflow = fmt.Errorf("capacity overflow")

	// ErrInvalidUTF8 is returned by string collections when the input
	// is not valid UTF-8. Go strings carry no validity guarantee, so
	// checked string entry points verify it to uphold the content
	// invariant.
	ErrInvalidUTF8 = fmt.Errorf("invalid utf-8")
)

// AllocError reports a failed or refused buffer allocation during
// small-vector promotion. Unlike the capacity errors above it is not a
// precondition failure: the collection is valid but could not grow.
type AllocError struct {
	// Size is the requested buffer size in elements.
	Size int
	// Cause is the underlying allocator error, if any.
	Cause error
}

// Error implements the error interface.
func (e *AllocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("alloc error: size %d: %v", e.Size, e.Cause)
	}
	return fmt.Sprintf("alloc error: size %d", e.Size)
}

// Unwrap returns the underlying allocator error.
func (e *AllocError) Unwrap() error { return e.Cause }
