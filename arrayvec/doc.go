// Package arrayvec implements a fixed-capacity vector: a contiguous
// collection backed by a single buffer allocated at construction and
// never regrown.
//
// The vector is parameterized by its element type, a length type
// (api.LengthType) bounding the representable capacity, and a
// spare-memory policy (api.SpareMemoryPolicy) governing the bytes of
// vacated slots.
//
// Checked operations are all-or-nothing: a call that reports an error
// leaves the vector untouched. Operations with an Unchecked suffix skip
// the guards and document the precondition the caller must uphold.
//
// A Vector must not be used by more than one goroutine at a time.
package arrayvec
