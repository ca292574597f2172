// File: arrayvec/iterator.go

package arrayvec

// Iterator is a restartable, ordered, read-only traversal of a
// vector's live elements at the time Iter was called.
type Iterator[T any] struct {
	s []T
	i int
}

// Iter returns an iterator over the live elements.
//
// The iterator reads through a view of vector storage; the vector must
// not be mutated while the iterator is in use.
func (v *Vector[T, L, P]) Iter() *Iterator[T] {
	return &Iterator[T]{s: v.buf[:v.len]}
}

// Valid reports whether the iterator points at an element.
func (it *Iterator[T]) Valid() bool { return it.i < len(it.s) }

// Value returns the current element. Valid must be true.
func (it *Iterator[T]) Value() T { return it.s[it.i] }

// Index returns the current element index.
func (it *Iterator[T]) Index() int { return it.i }

// Next advances the iterator.
func (it *Iterator[T]) Next() { it.i++ }

// Reset restarts the traversal from the first element.
func (it *Iterator[T]) Reset() { it.i = 0 }
