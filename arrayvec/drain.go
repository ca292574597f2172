// File: arrayvec/drain.go

package arrayvec

import "github.com/r-bk/cds/api"

// Drain is a one-shot owned sequence of elements removed from a vector
// range. See Vector.Drain.
type Drain[T any, L api.LengthType, P api.SpareMemoryPolicy] struct {
	v        *Vector[T, L, P]
	from, to int // half-open range being drained
	next     int // next index to yield
	closed   bool
}

// Drain removes the elements in the half-open index range [from, to)
// and returns them as a one-shot sequence.
//
// The range is removed in full even if the sequence is not consumed:
// Close (idempotent, called automatically on exhaustion) compacts the
// tail exactly once and hands the vacated slots to the spare-memory
// policy. The vector must not be otherwise accessed until the drain is
// closed.
//
// Returns api.ErrInvalidIndex if the range is out of bounds. The
// removal count is to-from regardless of the element type's size.
func (v *Vector[T, L, P]) Drain(from, to int) (*Drain[T, L, P], error) {
	if from < 0 || to < from || to > int(v.len) {
		return nil, api.ErrInvalidIndex
	}
	return &Drain[T, L, P]{v: v, from: from, to: to, next: from}, nil
}

// Next returns the next drained element. The second return value is
// false once the range is exhausted; at that point the drain has been
// closed and the vector is compacted.
func (d *Drain[T, L, P]) Next() (T, bool) {
	if d.next >= d.to {
		var zero T
		d.Close()
		return zero, false
	}
	e := d.v.buf[d.next]
	d.next++
	return e, true
}

// Remaining returns a view of the elements not yet consumed. The view
// is invalidated by Next and Close.
func (d *Drain[T, L, P]) Remaining() []T {
	return d.v.buf[d.next:d.to]
}

// Close removes the drained range from the vector, consuming any
// elements not yet yielded. Safe to call more than once.
func (d *Drain[T, L, P]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	v := d.v
	n := int(v.len)
	removed := d.to - d.from
	copy(v.buf[d.from:], v.buf[d.to:n])
	v.wipe(n-removed, n)
	v.len = L(n - removed)
}
