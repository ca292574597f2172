// File: pool/recycler.go
// Package pool implements size-classed buffer recycling for the
// growable collections.
//
// A Recycler keeps released heap buffers in per-class FIFO freelists
// (powers of two, like the buffer size-class table of a slab pool) and
// serves subsequent promotions from them, avoiding allocator churn in
// workloads that repeatedly grow and close small vectors.
//
// A Recycler is single-goroutine, like the collections it serves.
package pool

import (
	"math/bits"

	"github.com/eapache/queue"

	"github.com/r-bk/cds/api"
)

// maxClass bounds the number of size classes: class k holds buffers of
// at least 2^k slots.
const maxClass = 62

// defaultClassLimit is the number of buffers kept per class before
// further releases are dropped for the GC to collect.
const defaultClassLimit = 64

// Stats aggregates recycler accounting.
type Stats struct {
	// Alloc counts buffers allocated fresh from the Go heap.
	Alloc int64
	// Reuse counts allocations served from a freelist.
	Reuse int64
	// Free counts buffers accepted back into a freelist.
	Free int64
	// Drop counts buffers released on a full freelist.
	Drop int64
}

// Recycler is a size-classed freelist allocator implementing
// api.Allocator.
type Recycler[T any] struct {
	free  [maxClass + 1]*queue.Queue
	limit int
	stats Stats
}

var _ api.Allocator[int] = (*Recycler[int])(nil)

// Option configures a Recycler.
type Option func(*settings)

type settings struct {
	limit int
}

// WithClassLimit caps the number of buffers kept per size class.
func WithClassLimit(n int) Option {
	return func(s *settings) { s.limit = n }
}

// NewRecycler creates an empty recycler.
func NewRecycler[T any](opts ...Option) *Recycler[T] {
	s := settings{limit: defaultClassLimit}
	for _, o := range opts {
		o(&s)
	}
	return &Recycler[T]{limit: s.limit}
}

// classOf returns the smallest class covering n slots, n >= 1.
func classOf(n int) int {
	return bits.Len(uint(n - 1))
}

// Alloc returns a buffer of at least n slots, reusing a freed buffer
// of the covering size class when one is available. Implements
// api.Allocator.
func (r *Recycler[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	k := classOf(n)
	if k > maxClass {
		return make([]T, n), nil
	}
	if q := r.free[k]; q != nil && q.Length() > 0 {
		buf := q.Remove().([]T)
		r.stats.Reuse++
		return buf, nil
	}
	r.stats.Alloc++
	return make([]T, 1<<k), nil
}

// Free hands a buffer back to its size-class freelist. Buffers beyond
// the class limit are dropped for the garbage collector. Implements
// api.Allocator.
func (r *Recycler[T]) Free(buf []T) {
	n := cap(buf)
	if n == 0 {
		return
	}
	// round down, so every buffer in class k holds at least 2^k slots
	k := bits.Len(uint(n)) - 1
	if k > maxClass {
		return
	}
	q := r.free[k]
	if q == nil {
		q = queue.New()
		r.free[k] = q
	}
	if q.Length() >= r.limit {
		r.stats.Drop++
		return
	}
	clear(buf[:n])
	q.Add(buf[:n])
	r.stats.Free++
}

// Stats returns a snapshot of recycler accounting.
func (r *Recycler[T]) Stats() Stats { return r.stats }
