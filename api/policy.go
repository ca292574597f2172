// File: api/policy.go
//
// Spare-memory policy capability: what bytes live in slots that are
// allocated but not logically occupied.

package api

// SpareMemoryPolicy defines how a collection treats spare memory: the
// bytes of slots in [length, capacity), including slots vacated by pop,
// remove, drain, retain, truncate, shrinking resize and Close.
//
// The policy is invoked with a raw byte view of the vacated region on
// every operation that shrinks the live range, and with the whole buffer
// on construction.
//
// Policies are zero-sized strategy types selected as a type parameter,
// so the choice costs no per-instance state and no dynamic dispatch.
//
// Note for element types containing pointers: under Uninitialized the
// vacated slots keep bytewise copies of the removed elements, which keeps
// any memory they reference reachable by the garbage collector until the
// slots are overwritten. Use Zeroed when that is not acceptable. A custom
// policy filling with a non-zero pattern must be used with pointer-free
// element types only.
type SpareMemoryPolicy interface {
	// NoOp reports whether the policy leaves spare bytes untouched.
	// A true value lets the hot paths skip the wipe entirely.
	NoOp() bool

	// Fill overwrites a spare region. The slice aliases collection
	// storage and must not be retained.
	Fill(spare []byte)
}

// Uninitialized is the fastest spare-memory policy: it does nothing.
// Spare slots keep whatever bytes were last written to them.
type Uninitialized struct{}

// NoOp implements SpareMemoryPolicy.
func (Uninitialized) NoOp() bool { return true }

// Fill implements SpareMemoryPolicy.
func (Uninitialized) Fill([]byte) {}

// Zeroed overwrites every vacated byte with zero, erasing residual
// copies of possibly sensitive data.
type Zeroed struct{}

// NoOp implements SpareMemoryPolicy.
func (Zeroed) NoOp() bool { return false }

// Fill implements SpareMemoryPolicy.
func (Zeroed) Fill(spare []byte) { clear(spare) }

var (
	_ SpareMemoryPolicy = Uninitialized{}
	_ SpareMemoryPolicy = Zeroed{}
)
