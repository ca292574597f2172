// Package smallvec implements a growable vector with inline-first
// storage: operations stay within a fixed inline buffer allocated at
// construction and transparently promote to a heap buffer the first
// time capacity is exceeded.
//
// Promotion moves every live element in order, hands the vacated
// inline slots to the spare-memory policy and never loses or
// duplicates an element; a failed allocation leaves the vector exactly
// as it was. Once promoted a vector never demotes back to inline
// storage (shrinking does not reclaim heap capacity).
//
// Growth policy: capacity grows to the next power of two of the
// required minimum, clamped to the maximal value of the length type.
//
// A Vector must not be used by more than one goroutine at a time.
package smallvec
