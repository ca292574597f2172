// File: api/alloc.go

package api

// Allocator abstracts heap-buffer acquisition for the growable
// collections. The default allocator is the Go heap; pool.Recycler
// implements this interface to recycle promoted buffers.
type Allocator[T any] interface {
	// Alloc returns a buffer of at least n slots. A failed or refused
	// allocation is reported as an error; the caller's collection is
	// left untouched in that case.
	Alloc(n int) ([]T, error)

	// Free hands a buffer back to the allocator. The buffer must not
	// be used afterwards.
	Free(buf []T)
}
