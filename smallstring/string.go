// File: smallstring/string.go

package smallstring

import (
	"unicode/utf8"

	"github.com/r-bk/cds/api"
	"github.com/r-bk/cds/internal/memx"
	"github.com/r-bk/cds/smallvec"
)

// String is a growable UTF-8 string with inline-first storage.
type String[L api.LengthType, P api.SpareMemoryPolicy] struct {
	v smallvec.Vector[byte, L, P]
}

// New creates an empty string with the given inline byte capacity.
//
// New panics if inlineCap is negative or exceeds the maximal length
// representable by L.
func New[L api.LengthType, P api.SpareMemoryPolicy](inlineCap int, opts ...smallvec.Option[byte]) String[L, P] {
	return String[L, P]{v: smallvec.New[byte, L, P](inlineCap, opts...)}
}

// FromString creates a string with the given inline capacity holding a
// copy of str, promoting if str does not fit inline.
//
// Returns api.ErrInvalidUTF8 if str is not valid UTF-8.
func FromString[L api.LengthType, P api.SpareMemoryPolicy](inlineCap int, str string, opts ...smallvec.Option[byte]) (String[L, P], error) {
	s := New[L, P](inlineCap, opts...)
	if err := s.PushStr(str); err != nil {
		return String[L, P]{}, err
	}
	return s, nil
}

// Len returns the length in bytes.
func (s *String[L, P]) Len() int { return s.v.Len() }

// Cap returns the current capacity in bytes.
func (s *String[L, P]) Cap() int { return s.v.Cap() }

// Spare returns the spare capacity in bytes.
func (s *String[L, P]) Spare() int { return s.v.Spare() }

// IsEmpty reports whether the string is empty.
func (s *String[L, P]) IsEmpty() bool { return s.v.IsEmpty() }

// IsHeap reports whether the string has been promoted to heap storage.
func (s *String[L, P]) IsHeap() bool { return s.v.IsHeap() }

// IsLocal reports whether the string still uses inline storage.
func (s *String[L, P]) IsLocal() bool { return s.v.IsLocal() }

// Bytes returns a view of the string content. The view aliases string
// storage and is invalidated by any mutating operation.
func (s *String[L, P]) Bytes() []byte { return s.v.Slice() }

// String returns a copy of the content. Implements fmt.Stringer.
func (s *String[L, P]) String() string { return string(s.v.Slice()) }

// View returns the content as a string without copying. It must not be
// retained across a mutating operation.
func (s *String[L, P]) View() string { return memx.String(s.v.Slice()) }

// Clear removes all content, keeping the current capacity.
func (s *String[L, P]) Clear() { s.v.Clear() }

// Reserve ensures spare capacity for at least additional more bytes.
// See smallvec.Vector.Reserve for the error contract.
func (s *String[L, P]) Reserve(additional int) error { return s.v.Reserve(additional) }

// ReserveExact ensures capacity for exactly capacity bytes, without
// the growth policy's rounding. See Reserve for the error contract.
func (s *String[L, P]) ReserveExact(capacity int) error { return s.v.ReserveExact(capacity) }

func (s *String[L, P]) isBoundary(i int) bool {
	b := s.v.Slice()
	return i == 0 || i == len(b) || utf8.RuneStart(b[i])
}

// Push appends a character, growing if needed. An invalid rune is
// encoded as utf8.RuneError, matching the standard library.
func (s *String[L, P]) Push(ch rune) error {
	var tmp [utf8.UTFMax]byte
	k := utf8.EncodeRune(tmp[:], ch)
	return s.v.CopyFromSlice(tmp[:k])
}

// PushStr appends str, growing if needed, all-or-nothing.
//
// Returns api.ErrInvalidUTF8 if str is not valid UTF-8; see
// smallvec.Vector.Reserve for the growth errors.
func (s *String[L, P]) PushStr(str string) error {
	if !utf8.ValidString(str) {
		return api.ErrInvalidUTF8
	}
	return s.v.CopyFromSlice(memx.StringBytes(str))
}

// Pop removes and returns the last character. The second return value
// is false if the string is empty.
func (s *String[L, P]) Pop() (rune, bool) {
	b := s.v.Slice()
	if len(b) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(b)
	s.v.Truncate(len(b) - size)
	return r, true
}

// Insert inserts a character at byte offset idx, shifting the tail and
// growing if needed.
//
// Returns api.ErrInvalidIndex if idx is out of bounds, or
// api.ErrMisalignedIndex if it does not lie on a character boundary.
func (s *String[L, P]) Insert(idx int, ch rune) error {
	var tmp [utf8.UTFMax]byte
	k := utf8.EncodeRune(tmp[:], ch)
	return s.insertBytes(idx, memx.String(tmp[:k]))
}

// InsertStr inserts str at byte offset idx, shifting the tail and
// growing if needed.
//
// Returns api.ErrInvalidIndex if idx is out of bounds,
// api.ErrMisalignedIndex if it does not lie on a character boundary,
// or api.ErrInvalidUTF8 if str is not valid UTF-8.
func (s *String[L, P]) InsertStr(idx int, str string) error {
	if !utf8.ValidString(str) {
		return api.ErrInvalidUTF8
	}
	return s.insertBytes(idx, str)
}

func (s *String[L, P]) insertBytes(idx int, str string) error {
	n := s.v.Len()
	if idx < 0 || idx > n {
		return api.ErrInvalidIndex
	}
	if !s.isBoundary(idx) {
		return api.ErrMisalignedIndex
	}
	k := len(str)
	if k > s.v.Spare() {
		if err := s.v.Reserve(k); err != nil {
			return err
		}
	}
	s.v.SetLen(n + k)
	b := s.v.Slice()
	copy(b[idx+k:], b[idx:n])
	copy(b[idx:], str)
	return nil
}

// Remove removes and returns the character at byte offset idx,
// shifting the tail left.
//
// Returns api.ErrInvalidIndex if idx is out of bounds, or
// api.ErrMisalignedIndex if it does not lie on a character boundary.
func (s *String[L, P]) Remove(idx int) (rune, error) {
	b := s.v.Slice()
	if idx < 0 || idx >= len(b) {
		return 0, api.ErrInvalidIndex
	}
	if !utf8.RuneStart(b[idx]) {
		return 0, api.ErrMisalignedIndex
	}
	r, size := utf8.DecodeRune(b[idx:])
	copy(b[idx:], b[idx+size:])
	s.v.Truncate(len(b) - size)
	return r, nil
}

// Truncate shrinks the string to at most n bytes, vacating the tail
// under the spare-memory policy. Does nothing if n >= Len.
//
// Returns api.ErrInvalidIndex if n is negative, or
// api.ErrMisalignedIndex if n splits a character.
func (s *String[L, P]) Truncate(n int) error {
	if n < 0 {
		return api.ErrInvalidIndex
	}
	if n >= s.v.Len() {
		return nil
	}
	if !s.isBoundary(n) {
		return api.ErrMisalignedIndex
	}
	s.v.Truncate(n)
	return nil
}

// Close vacates the content under the spare-memory policy and releases
// the heap buffer to the allocator, reverting to inline storage.
func (s *String[L, P]) Close() error { return s.v.Close() }
