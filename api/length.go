// File: api/length.go
//
// Length-type capability: the unsigned integer type used to track a
// collection's length and capacity.

package api

// LengthType constrains the integer type a collection uses to store its
// current length. Picking a narrow type yields a more compact collection
// header: a Vector[byte, uint8, ...] spends a single byte on bookkeeping.
//
// A length type with N bits supports capacities of up to 2^N - 1 elements.
// Constructing a collection with a capacity above MaxLen of its length
// type is a contract violation and panics.
type LengthType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MaxLen returns the maximal length representable by the length type L.
func MaxLen[L LengthType]() uint64 {
	var z L
	return uint64(^z)
}

// FitsLen reports whether n is representable by the length type L.
func FitsLen[L LengthType](n int) bool {
	return n >= 0 && uint64(n) <= MaxLen[L]()
}
