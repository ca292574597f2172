// File: smallvec/vector.go
// Growable vector with inline-first storage and one-way promotion to a
// heap buffer.

package smallvec

import (
	"math"
	"math/bits"

	"github.com/r-bk/cds/api"
	"github.com/r-bk/cds/internal/memx"
)

// Vector is a growable vector of T with inline-first storage.
type Vector[T any, L api.LengthType, P api.SpareMemoryPolicy] struct {
	inline []T // fixed inline buffer, spare after promotion
	heap   []T // nil until promoted
	len    L
	alloc  api.Allocator[T] // nil selects the Go heap
}

// Option configures a vector at construction.
type Option[T any] func(*config[T])

type config[T any] struct {
	alloc api.Allocator[T]
}

// WithAllocator selects the allocator used for heap promotion, e.g. a
// pool.Recycler. The default is the Go heap.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(c *config[T]) { c.alloc = a }
}

// New creates an empty vector with the given inline capacity.
//
// New panics if inlineCap is negative or exceeds the maximal length
// representable by L.
func New[T any, L api.LengthType, P api.SpareMemoryPolicy](inlineCap int, opts ...Option[T]) Vector[T, L, P] {
	if !api.FitsLen[L](inlineCap) {
		panic("smallvec: capacity exceeds length type")
	}
	var c config[T]
	for _, o := range opts {
		o(&c)
	}
	v := Vector[T, L, P]{inline: make([]T, inlineCap), alloc: c.alloc}
	v.wipeSlots(v.inline)
	return v
}

// NewWithCapacity creates an empty vector with the given inline
// capacity, promoted up front if capacity exceeds it.
func NewWithCapacity[T any, L api.LengthType, P api.SpareMemoryPolicy](inlineCap, capacity int, opts ...Option[T]) (Vector[T, L, P], error) {
	v := New[T, L, P](inlineCap, opts...)
	if capacity > inlineCap {
		if err := v.ReserveExact(capacity); err != nil {
			return Vector[T, L, P]{}, err
		}
	}
	return v, nil
}

// FromSlice creates a vector with the given inline capacity holding a
// copy of s, promoting if s does not fit inline.
func FromSlice[T any, L api.LengthType, P api.SpareMemoryPolicy](inlineCap int, s []T, opts ...Option[T]) (Vector[T, L, P], error) {
	v := New[T, L, P](inlineCap, opts...)
	if err := v.CopyFromSlice(s); err != nil {
		return Vector[T, L, P]{}, err
	}
	return v, nil
}

// active returns the buffer currently backing the vector.
func (v *Vector[T, L, P]) active() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inline
}

// wipeSlots applies the spare-memory policy to the given slots.
func (v *Vector[T, L, P]) wipeSlots(s []T) {
	var p P
	if p.NoOp() {
		return
	}
	p.Fill(memx.Bytes(s))
}

func (v *Vector[T, L, P]) wipe(from, to int) {
	if from < to {
		v.wipeSlots(v.active()[from:to])
	}
}

// IsHeap reports whether the vector has been promoted to heap storage.
func (v *Vector[T, L, P]) IsHeap() bool { return v.heap != nil }

// IsLocal reports whether the vector still uses its inline storage.
func (v *Vector[T, L, P]) IsLocal() bool { return v.heap == nil }

// Len returns the number of live elements.
func (v *Vector[T, L, P]) Len() int { return int(v.len) }

// Cap returns the current capacity: the inline capacity before
// promotion, the heap buffer capacity after.
func (v *Vector[T, L, P]) Cap() int { return len(v.active()) }

// Spare returns the number of spare slots at the current capacity.
func (v *Vector[T, L, P]) Spare() int { return len(v.active()) - int(v.len) }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T, L, P]) IsEmpty() bool { return v.len == 0 }

// IsFull reports whether the next push would have to grow.
func (v *Vector[T, L, P]) IsFull() bool { return int(v.len) == len(v.active()) }

// HasSpare reports whether a push fits at the current capacity.
func (v *Vector[T, L, P]) HasSpare() bool { return int(v.len) < len(v.active()) }

// Slice returns a view of the live elements. The view is invalidated
// by any mutating operation (promotion moves the storage).
func (v *Vector[T, L, P]) Slice() []T { return v.active()[:v.len] }

// SpareSlice returns a view of the spare slots at the current
// capacity. Together with SetLen it allows bulk-filling the tail.
func (v *Vector[T, L, P]) SpareSlice() []T { return v.active()[v.len:] }

// SplitAtSpare returns the live and spare regions as two views.
func (v *Vector[T, L, P]) SplitAtSpare() (live, spare []T) {
	b := v.active()
	return b[:v.len], b[v.len:]
}

// Get returns the element at index i, or api.ErrInvalidIndex if i is
// out of bounds.
func (v *Vector[T, L, P]) Get(i int) (T, error) {
	if i < 0 || i >= int(v.len) {
		var zero T
		return zero, api.ErrInvalidIndex
	}
	return v.active()[i], nil
}

// Set replaces the element at index i, or returns api.ErrInvalidIndex
// if i is out of bounds.
func (v *Vector[T, L, P]) Set(i int, e T) error {
	if i < 0 || i >= int(v.len) {
		return api.ErrInvalidIndex
	}
	v.active()[i] = e
	return nil
}

// SetLen sets the length without touching element slots.
//
// The caller must ensure n is within [0, Cap] and that slots [0, n)
// hold initialized elements. Shrinking with SetLen bypasses the
// spare-memory policy.
func (v *Vector[T, L, P]) SetLen(n int) { v.len = L(n) }

// nextCap returns the amortized capacity for a required minimum:
// the next power of two, clamped to the length type's maximum.
func nextCap[L api.LengthType](required int) int {
	c := uint64(1) << bits.Len(uint(required-1))
	if m := api.MaxLen[L](); c > m {
		c = m
	}
	if c > uint64(math.MaxInt) {
		c = uint64(math.MaxInt)
	}
	return int(c)
}

// Reserve ensures spare capacity for at least additional more
// elements, growing by the amortized policy. Promotion allocates, moves
// every live element in order and vacates the previous buffer under
// the spare-memory policy.
//
// Returns api.ErrCapacityOverflow if the required capacity is not
// representable by L, or *api.AllocError if the allocator fails; the
// vector is unchanged in both cases.
func (v *Vector[T, L, P]) Reserve(additional int) error {
	required := int(v.len) + additional
	if required <= len(v.active()) {
		return nil
	}
	if !api.FitsLen[L](required) {
		return api.ErrCapacityOverflow
	}
	return v.grow(nextCap[L](required))
}

// ReserveExact ensures capacity for exactly capacity elements, without
// amortization. See Reserve for the error contract.
func (v *Vector[T, L, P]) ReserveExact(capacity int) error {
	if capacity <= len(v.active()) {
		return nil
	}
	if !api.FitsLen[L](capacity) {
		return api.ErrCapacityOverflow
	}
	return v.grow(capacity)
}

func (v *Vector[T, L, P]) allocBuf(n int) ([]T, error) {
	if v.alloc == nil {
		return make([]T, n), nil
	}
	return v.alloc.Alloc(n)
}

func (v *Vector[T, L, P]) freeBuf(b []T) {
	if v.alloc != nil {
		v.alloc.Free(b)
	}
}

// grow promotes or regrows to exactly newCap slots. Allocation happens
// before any mutation, so a failure leaves the vector untouched.
func (v *Vector[T, L, P]) grow(newCap int) error {
	nb, err := v.allocBuf(newCap)
	if err != nil {
		return &api.AllocError{Size: newCap, Cause: err}
	}
	if len(nb) < newCap {
		v.freeBuf(nb)
		return &api.AllocError{Size: newCap}
	}
	// an allocator may hand back a larger class-sized buffer; the extra
	// capacity is usable as long as the length type can represent it
	if !api.FitsLen[L](len(nb)) {
		nb = nb[:newCap]
	}
	n := int(v.len)
	old := v.active()
	copy(nb, old[:n])
	v.wipeSlots(nb[n:])
	v.wipeSlots(old[:n])
	if v.heap != nil {
		v.freeBuf(v.heap)
	}
	v.heap = nb
	return nil
}

// Push appends an element, growing if needed.
func (v *Vector[T, L, P]) Push(e T) error {
	if v.IsFull() {
		if err := v.Reserve(1); err != nil {
			return err
		}
	}
	b := v.active()
	b[v.len] = e
	v.len++
	return nil
}

// PushUnchecked appends an element without the capacity guard.
//
// The caller must ensure spare capacity exists at the current buffer.
func (v *Vector[T, L, P]) PushUnchecked(e T) {
	v.active()[v.len] = e
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
	e := v.active()[n]
	v.wipe(n, n+1)
	v.len = L(n)
	return e, true
}

// PopUnchecked removes and returns the last element.
//
// The caller must ensure the vector is not empty.
func (v *Vector[T, L, P]) PopUnchecked() T {
	n := int(v.len) - 1
	e := v.active()[n]
	v.wipe(n, n+1)
	v.len = L(n)
	return e
}

// Insert inserts an element at index i, shifting the tail right and
// growing if needed.
//
// Returns api.ErrInvalidIndex if i is outside [0, Len]; see Reserve
// for the growth errors.
func (v *Vector[T, L, P]) Insert(i int, e T) error {
	n := int(v.len)
	if i < 0 || i > n {
		return api.ErrInvalidIndex
	}
	if v.IsFull() {
		if err := v.Reserve(1); err != nil {
			return err
		}
	}
	b := v.active()
	copy(b[i+1:n+1], b[i:n])
	b[i] = e
	v.len++
	return nil
}

// InsertUnchecked inserts an element at index i without the guards.
//
// The caller must ensure i <= Len and that a spare slot exists at the
// current buffer.
func (v *Vector[T, L, P]) InsertUnchecked(i int, e T) {
	n := int(v.len)
	b := v.active()
	copy(b[i+1:n+1], b[i:n])
	b[i] = e
	v.len++
}

// Remove removes and returns the element at index i, shifting the tail
// left. Returns api.ErrInvalidIndex if i is out of bounds.
func (v *Vector[T, L, P]) Remove(i int) (T, error) {
	n := int(v.len)
	if i < 0 || i >= n {
		var zero T
		return zero, api.ErrInvalidIndex
	}
	b := v.active()
	e := b[i]
	copy(b[i:n-1], b[i+1:n])
	v.wipe(n-1, n)
	v.len = L(n - 1)
	return e, nil
}

// RemoveUnchecked removes and returns the element at index i.
//
// The caller must ensure i < Len.
func (v *Vector[T, L, P]) RemoveUnchecked(i int) T {
	n := int(v.len)
	b := v.active()
	e := b[i]
	copy(b[i:n-1], b[i+1:n])
	v.wipe(n-1, n)
	v.len = L(n - 1)
	return e
}

// SwapRemove removes and returns the element at index i by replacing
// it with the last element. O(1), does not preserve order.
func (v *Vector[T, L, P]) SwapRemove(i int) (T, error) {
	n := int(v.len) - 1
	if i < 0 || i > n {
		var zero T
		return zero, api.ErrInvalidIndex
	}
	b := v.active()
	e := b[i]
	b[i] = b[n]
	v.wipe(n, n+1)
	v.len = L(n)
	return e, nil
}

// SwapRemoveUnchecked removes and returns the element at index i by
// replacing it with the last element.
//
// The caller must ensure i < Len.
func (v *Vector[T, L, P]) SwapRemoveUnchecked(i int) T {
	n := int(v.len) - 1
	b := v.active()
	e := b[i]
	b[i] = b[n]
	v.wipe(n, n+1)
	v.len = L(n)
	return e
}

// Truncate shrinks the vector to at most n elements, vacating the tail
// under the spare-memory policy. Heap capacity is not reclaimed.
func (v *Vector[T, L, P]) Truncate(n int) {
	cur := int(v.len)
	if n < 0 || n >= cur {
		return
	}
	v.wipe(n, cur)
	v.len = L(n)
}

// Clear removes all elements, keeping the current capacity.
func (v *Vector[T, L, P]) Clear() { v.Truncate(0) }

// Append appends all given elements, growing as needed.
func (v *Vector[T, L, P]) Append(items ...T) error {
	return v.CopyFromSlice(items)
}

// CopyFromSlice appends a copy of s, growing as needed, all-or-nothing.
func (v *Vector[T, L, P]) CopyFromSlice(s []T) error {
	if len(s) > v.Spare() {
		if err := v.Reserve(len(s)); err != nil {
			return err
		}
	}
	copy(v.active()[v.len:], s)
	v.len += L(len(s))
	return nil
}

// CopyFromSliceUnchecked appends a copy of s without the capacity guard.
//
// The caller must ensure s fits into the current buffer's spare
// capacity.
func (v *Vector[T, L, P]) CopyFromSliceUnchecked(s []T) {
	copy(v.active()[v.len:], s)
	v.len += L(len(s))
}

// Resize grows or shrinks the vector to exactly n elements. New slots
// are set to e.
func (v *Vector[T, L, P]) Resize(n int, e T) error {
	return v.ResizeWith(n, func() T { return e })
}

// ResizeWith grows or shrinks the vector to exactly n elements,
// constructing new elements with f in index order.
//
// Returns api.ErrInvalidIndex if n is negative; see Reserve for the
// growth errors.
//
// If f panics, the elements it already constructed stay live and the
// panic is re-raised; spare slots remain policy-owned.
func (v *Vector[T, L, P]) ResizeWith(n int, f func() T) error {
	if n < 0 {
		return api.ErrInvalidIndex
	}
	cur := int(v.len)
	if n <= cur {
		v.Truncate(n)
		return nil
	}
	if n > len(v.active()) {
		if err := v.Reserve(n - cur); err != nil {
			return err
		}
	}
	b := v.active()
	i := cur
	defer func() { v.len = L(i) }()
	for ; i < n; i++ {
		b[i] = f()
	}
	return nil
}

// Retain keeps only the elements for which pred returns true,
// preserving their relative order.
func (v *Vector[T, L, P]) Retain(pred func(e T) bool) {
	v.RetainMut(func(e *T) bool { return pred(*e) })
}

// RetainMut is Retain with a predicate that may also mutate the
// element in place. If pred panics the vector is left consistent, as
// in arrayvec.
func (v *Vector[T, L, P]) RetainMut(pred func(e *T) bool) {
	b := v.active()
	n := int(v.len)
	processed, deleted := 0, 0
	defer func() {
		if deleted > 0 {
			copy(b[processed-deleted:], b[processed:n])
		}
		v.wipe(n-deleted, n)
		v.len = L(n - deleted)
	}()
	for ; processed < n; processed++ {
		if pred(&b[processed]) {
			if deleted > 0 {
				b[processed-deleted] = b[processed]
			}
		} else {
			deleted++
		}
	}
}

// Iter returns a restartable iterator over the live elements. The
// vector must not be mutated while the iterator is in use.
func (v *Vector[T, L, P]) Iter() *Iterator[T] {
	return &Iterator[T]{s: v.Slice()}
}

// Clone returns a vector with the same inline capacity, policy,
// allocator and content.
func (v *Vector[T, L, P]) Clone() (Vector[T, L, P], error) {
	var opts []Option[T]
	if v.alloc != nil {
		opts = append(opts, WithAllocator(v.alloc))
	}
	return FromSlice[T, L, P](len(v.inline), v.Slice(), opts...)
}

// Close vacates every live slot under the spare-memory policy and
// releases the heap buffer to the allocator. The vector reverts to an
// empty inline state and remains usable.
func (v *Vector[T, L, P]) Close() error {
	v.Truncate(0)
	if v.heap != nil {
		v.freeBuf(v.heap)
		v.heap = nil
	}
	return nil
}
