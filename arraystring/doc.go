// Package arraystring implements a fixed-capacity UTF-8 string layered
// on the arrayvec byte vector.
//
// On top of the vector's capacity discipline the string enforces a text
// invariant: bytes [0, Len) always form valid UTF-8 with no partial
// character at the end. Every mutating entry point validates character
// boundaries; lossy operations truncate at the last complete character
// instead of splitting one.
//
// A String must not be used by more than one goroutine at a time.
package arraystring
