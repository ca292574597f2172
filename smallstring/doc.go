// Package smallstring implements a growable UTF-8 string with
// inline-first storage, layered on the smallvec byte vector.
//
// It enforces the same character-boundary discipline as arraystring
// and grows like smallvec: inline until the first promotion, heap
// afterwards.
//
// A String must not be used by more than one goroutine at a time.
package smallstring
