// File: arrayvec/vector.go
// Fixed-capacity vector core: buffer ownership, capacity-checked
// mutation and spare-memory accounting.

package arrayvec

import (
	"github.com/r-bk/cds/api"
	"github.com/r-bk/cds/internal/memx"
)

// Vector is a fixed-capacity vector of T.
//
// Slots [0, Len) hold live elements; slots [Len, Cap) are spare and
// their byte content is owned by the policy P.
type Vector[T any, L api.LengthType, P api.SpareMemoryPolicy] struct {
	buf    []T
	len    L
	pinned bool
}

// New creates an empty vector with the given capacity.
//
// New panics if capacity is negative or exceeds the maximal length
// representable by L.
func New[T any, L api.LengthType, P api.SpareMemoryPolicy](capacity int) Vector[T, L, P] {
	if !api.FitsLen[L](capacity) {
		panic("arrayvec: capacity exceeds length type")
	}
	v := Vector[T, L, P]{buf: make([]T, capacity)}
	v.wipe(0, capacity)
	return v
}

// Wrap creates an empty vector over a caller-supplied buffer. The
// buffer's length becomes the vector capacity; its previous content is
// handed to the spare-memory policy.
//
// The caller must not access buf directly while the vector is in use.
// Wrap panics if the buffer length exceeds the maximal length
// representable by L.
func Wrap[T any, L api.LengthType, P api.SpareMemoryPolicy](buf []T) Vector[T, L, P] {
	if !api.FitsLen[L](len(buf)) {
		panic("arrayvec: capacity exceeds length type")
	}
	v := Vector[T, L, P]{buf: buf}
	v.wipe(0, len(buf))
	return v
}

// FromSlice creates a vector with the given capacity holding a copy of s.
//
// Returns api.ErrInsufficientCapacity if s does not fit.
func FromSlice[T any, L api.LengthType, P api.SpareMemoryPolicy](capacity int, s []T) (Vector[T, L, P], error) {
	v := New[T, L, P](capacity)
	if err := v.CopyFromSlice(s); err != nil {
		return Vector[T, L, P]{}, err
	}
	return v, nil
}

// NewSecure creates an empty vector whose backing buffer is pinned into
// physical memory, so that element bytes are never swapped to disk.
// Use it with the Zeroed policy to keep wiped secrets off swap; Close
// unpins the buffer.
func NewSecure[T any, L api.LengthType, P api.SpareMemoryPolicy](capacity int) (Vector[T, L, P], error) {
	v := New[T, L, P](capacity)
	if err := memx.Pin(memx.Bytes(v.buf)); err != nil {
		return Vector[T, L, P]{}, err
	}
	v.pinned = true
	return v, nil
}

// wipe applies the spare-memory policy to slots [from, to).
func (v *Vector[T, L, P]) wipe(from, to int) {
	var p P
	if p.NoOp() || from >= to {
		return
	}
	p.Fill(memx.Bytes(v.buf[from:to]))
}

// Len returns the number of live elements.
func (v *Vector[T, L, P]) Len() int { return int(v.len) }

// Cap returns the declared capacity.
func (v *Vector[T, L, P]) Cap() int { return len(v.buf) }

// Spare returns the number of spare slots.
func (v *Vector[T, L, P]) Spare() int { return len(v.buf) - int(v.len) }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T, L, P]) IsEmpty() bool { return v.len == 0 }

// IsFull reports whether the vector is at capacity.
func (v *Vector[T, L, P]) IsFull() bool { return int(v.len) == len(v.buf) }

// HasSpare reports whether at least one spare slot exists.
func (v *Vector[T, L, P]) HasSpare() bool { return int(v.len) < len(v.buf) }

// Slice returns a view of the live elements.
//
// The view aliases vector storage: it is invalidated by any mutating
// operation and must not be retained across one.
func (v *Vector[T, L, P]) Slice() []T { return v.buf[:v.len] }

// SpareSlice returns a view of the spare slots. Together with SetLen it
// allows bulk-filling the tail without intermediate copies.
func (v *Vector[T, L, P]) SpareSlice() []T { return v.buf[v.len:] }

// SplitAtSpare returns the live and spare regions as two views.
func (v *Vector[T, L, P]) SplitAtSpare() (live, spare []T) {
	return v.buf[:v.len], v.buf[v.len:]
}

// Get returns the element at index i, or api.ErrInvalidIndex if i is
// out of bounds.
func (v *Vector[T, L, P]) Get(i int) (T, error) {
	if i < 0 || i >= int(v.len) {
		var zero T
		return zero, api.ErrInvalidIndex
	}
	return v.buf[i], nil
}

// Set replaces the element at index i, or returns api.ErrInvalidIndex
// if i is out of bounds.
func (v *Vector[T, L, P]) Set(i int, e T) error {
	if i < 0 || i >= int(v.len) {
		return api.ErrInvalidIndex
	}
	v.buf[i] = e
	return nil
}

// SetLen sets the length without touching element slots.
//
// The caller must ensure n is within [0, Cap] and that slots [0, n)
// hold initialized elements, e.g. after filling SpareSlice. Shrinking
// with SetLen bypasses the spare-memory policy; use Truncate for that.
func (v *Vector[T, L, P]) SetLen(n int) { v.len = L(n) }

// Push appends an element.
//
// Returns api.ErrInsufficientCapacity if the vector is full; the
// vector is unchanged and the caller still holds e.
func (v *Vector[T, L, P]) Push(e T) error {
	if int(v.len) == len(v.buf) {
		return api.ErrInsufficientCapacity
	}
	v.buf[v.len] = e
	v.len++
	return nil
}

// PushUnchecked appends an element without the capacity guard.
//
// The caller must ensure there is at least one spare slot.
func (v *Vector[T, L, P]) PushUnchecked(e T) {
	v.buf[v.len] = e
	v.len++
}

// Pop removes and returns the last element. The second return value is
// false if the vector is empty.
func (v *Vector[T, L, P]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	n := int(v.len) - 1
	e := v.buf[n]
	v.wipe(n, n+1)
	v.len = L(n)
	return e, true
}

// PopUnchecked removes and returns the last element.
//
// The caller must ensure the vector is not empty.
func (v *Vector[T, L, P]) PopUnchecked() T {
	n := int(v.len) - 1
	e := v.buf[n]
	v.wipe(n, n+1)
	v.len = L(n)
	return e
}

// Insert inserts an element at index i, shifting the tail right.
//
// Returns api.ErrInvalidIndex if i is outside [0, Len], or
// api.ErrInsufficientCapacity if the vector is full. The index check
// runs first, matching remove symmetry.
func (v *Vector[T, L, P]) Insert(i int, e T) error {
	n := int(v.len)
	if i < 0 || i > n {
		return api.ErrInvalidIndex
	}
	if n == len(v.buf) {
		return api.ErrInsufficientCapacity
	}
	copy(v.buf[i+1:n+1], v.buf[i:n])
	v.buf[i] = e
	v.len++
	return nil
}

// InsertUnchecked inserts an element at index i without the guards.
//
// The caller must ensure i <= Len and that a spare slot exists.
func (v *Vector[T, L, P]) InsertUnchecked(i int, e T) {
	n := int(v.len)
	copy(v.buf[i+1:n+1], v.buf[i:n])
	v.buf[i] = e
	v.len++
}

// Remove removes and returns the element at index i, shifting the tail
// left. Returns api.ErrInvalidIndex if i is out of bounds.
func (v *Vector[T, L, P]) Remove(i int) (T, error) {
	if i < 0 || i >= int(v.len) {
		var zero T
		return zero, api.ErrInvalidIndex
	}
	return v.RemoveUnchecked(i), nil
}

// RemoveUnchecked removes and returns the element at index i.
//
// The caller must ensure i < Len.
func (v *Vector[T, L, P]) RemoveUnchecked(i int) T {
	n := int(v.len)
	e := v.buf[i]
	copy(v.buf[i:n-1], v.buf[i+1:n])
	v.wipe(n-1, n)
	v.len = L(n - 1)
	return e
}

// SwapRemove removes and returns the element at index i by replacing it
// with the last element. O(1), does not preserve order.
// Returns api.ErrInvalidIndex if i is out of bounds.
func (v *Vector[T, L, P]) SwapRemove(i int) (T, error) {
	if i < 0 || i >= int(v.len) {
		var zero T
		return zero, api.ErrInvalidIndex
	}
	return v.SwapRemoveUnchecked(i), nil
}

// SwapRemoveUnchecked removes and returns the element at index i by
// replacing it with the last element.
//
// The caller must ensure i < Len.
func (v *Vector[T, L, P]) SwapRemoveUnchecked(i int) T {
	n := int(v.len) - 1
	e := v.buf[i]
	v.buf[i] = v.buf[n]
	v.wipe(n, n+1)
	v.len = L(n)
	return e
}

// Truncate shrinks the vector to at most n elements, vacating the tail
// under the spare-memory policy. Does nothing if n >= Len.
func (v *Vector[T, L, P]) Truncate(n int) {
	cur := int(v.len)
	if n < 0 || n >= cur {
		return
	}
	v.wipe(n, cur)
	v.len = L(n)
}

// Clear removes all elements.
func (v *Vector[T, L, P]) Clear() { v.Truncate(0) }

// Append appends as many of the given elements as spare capacity allows
// and returns the number accepted. Elements beyond capacity are not
// appended; the count makes the truncation observable to the caller.
func (v *Vector[T, L, P]) Append(items ...T) int {
	n := copy(v.buf[v.len:], items)
	v.len += L(n)
	return n
}

// CopyFromSlice appends a copy of s, all-or-nothing.
//
// Returns api.ErrInsufficientCapacity without mutating the vector if s
// does not fit into spare capacity.
func (v *Vector[T, L, P]) CopyFromSlice(s []T) error {
	if len(s) > len(v.buf)-int(v.len) {
		return api.ErrInsufficientCapacity
	}
	v.CopyFromSliceUnchecked(s)
	return nil
}

// CopyFromSliceUnchecked appends a copy of s without the capacity guard.
//
// The caller must ensure s fits into spare capacity.
func (v *Vector[T, L, P]) CopyFromSliceUnchecked(s []T) {
	copy(v.buf[v.len:], s)
	v.len += L(len(s))
}

// Resize grows or shrinks the vector to exactly n elements. New slots
// are set to e; vacated slots go to the spare-memory policy.
//
// Returns api.ErrInsufficientCapacity if n exceeds the capacity.
func (v *Vector[T, L, P]) Resize(n int, e T) error {
	return v.ResizeWith(n, func() T { return e })
}

// ResizeWith grows or shrinks the vector to exactly n elements,
// constructing new elements with f in index order.
//
// Returns api.ErrInsufficientCapacity if n exceeds the capacity, or
// api.ErrInvalidIndex if n is negative.
//
// If f panics, the elements it already constructed stay live and the
// panic is re-raised; spare slots remain policy-owned.
func (v *Vector[T, L, P]) ResizeWith(n int, f func() T) error {
	if n < 0 {
		return api.ErrInvalidIndex
	}
	if n > len(v.buf) {
		return api.ErrInsufficientCapacity
	}
	cur := int(v.len)
	if n <= cur {
		v.Truncate(n)
		return nil
	}
	i := cur
	defer func() { v.len = L(i) }()
	for ; i < n; i++ {
		v.buf[i] = f()
	}
	return nil
}

// Retain keeps only the elements for which pred returns true,
// preserving their relative order. Vacated tail slots are handed to the
// spare-memory policy exactly once.
func (v *Vector[T, L, P]) Retain(pred func(e T) bool) {
	v.RetainMut(func(e *T) bool { return pred(*e) })
}

// RetainMut is Retain with a predicate that may also mutate the element
// in place.
//
// If pred panics, the vector is left in a consistent state: elements
// already rejected are removed, the unprocessed tail is compacted and
// the panic is re-raised.
func (v *Vector[T, L, P]) RetainMut(pred func(e *T) bool) {
	n := int(v.len)
	processed, deleted := 0, 0
	defer func() {
		if deleted > 0 {
			copy(v.buf[processed-deleted:], v.buf[processed:n])
		}
		v.wipe(n-deleted, n)
		v.len = L(n - deleted)
	}()
	for ; processed < n; processed++ {
		if pred(&v.buf[processed]) {
			if deleted > 0 {
				v.buf[processed-deleted] = v.buf[processed]
			}
		} else {
			deleted++
		}
	}
}

// Clone returns a vector with the same capacity, policy and content.
func (v *Vector[T, L, P]) Clone() Vector[T, L, P] {
	c := New[T, L, P](len(v.buf))
	c.CopyFromSliceUnchecked(v.buf[:v.len])
	return c
}

// Close vacates every live slot under the spare-memory policy and
// unpins the buffer if the vector was created with NewSecure. The
// vector remains usable as an empty vector afterwards.
func (v *Vector[T, L, P]) Close() error {
	v.Truncate(0)
	if v.pinned {
		v.pinned = false
		return memx.Unpin(memx.Bytes(v.buf))
	}
	return nil
}
