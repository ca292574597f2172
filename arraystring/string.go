// File: arraystring/string.go

package arraystring

import (
	"unicode/utf8"

	"github.com/r-bk/cds/api"
	"github.com/r-bk/cds/arrayvec"
	"github.com/r-bk/cds/internal/memx"
)

// String is a fixed-capacity UTF-8 string.
type String[L api.LengthType, P api.SpareMemoryPolicy] struct {
	v arrayvec.Vector[byte, L, P]
}

// New creates an empty string with the given byte capacity.
//
// New panics if capacity is negative or exceeds the maximal length
// representable by L.
func New[L api.LengthType, P api.SpareMemoryPolicy](capacity int) String[L, P] {
	return String[L, P]{v: arrayvec.New[byte, L, P](capacity)}
}

// NewSecure creates an empty string whose backing buffer is pinned into
// physical memory. Use it with the Zeroed policy for secrets; Close
// unpins the buffer.
func NewSecure[L api.LengthType, P api.SpareMemoryPolicy](capacity int) (String[L, P], error) {
	v, err := arrayvec.NewSecure[byte, L, P](capacity)
	if err != nil {
		return String[L, P]{}, err
	}
	return String[L, P]{v: v}, nil
}

// FromString creates a string with the given capacity holding a copy
// of str.
//
// Returns api.ErrInsufficientCapacity if str does not fit, or
// api.ErrInvalidUTF8 if it is not valid UTF-8.
func FromString[L api.LengthType, P api.SpareMemoryPolicy](capacity int, str string) (String[L, P], error) {
	s := New[L, P](capacity)
	if err := s.PushStr(str); err != nil {
		return String[L, P]{}, err
	}
	return s, nil
}

// Len returns the length in bytes.
func (s *String[L, P]) Len() int { return s.v.Len() }

// Cap returns the capacity in bytes.
func (s *String[L, P]) Cap() int { return s.v.Cap() }

// Spare returns the spare capacity in bytes.
func (s *String[L, P]) Spare() int { return s.v.Spare() }

// IsEmpty reports whether the string is empty.
func (s *String[L, P]) IsEmpty() bool { return s.v.IsEmpty() }

// Bytes returns a view of the string content. The view aliases string
// storage and is invalidated by any mutating operation.
func (s *String[L, P]) Bytes() []byte { return s.v.Slice() }

// String returns a copy of the content. Implements fmt.Stringer.
func (s *String[L, P]) String() string { return string(s.v.Slice()) }

// View returns the content as a string without copying.
//
// The result aliases string storage: it must not be retained across a
// mutating operation.
func (s *String[L, P]) View() string { return memx.String(s.v.Slice()) }

// Clear removes all content.
func (s *String[L, P]) Clear() { s.v.Clear() }

// isBoundary reports whether byte offset i lies on a character
// boundary of the current content.
func (s *String[L, P]) isBoundary(i int) bool {
	b := s.v.Slice()
	return i == 0 || i == len(b) || utf8.RuneStart(b[i])
}

// Push appends a character.
//
// Returns api.ErrInsufficientCapacity if the UTF-8 encoding of ch does
// not fit into spare capacity. An invalid rune is encoded as
// utf8.RuneError, matching the standard library.
func (s *String[L, P]) Push(ch rune) error {
	var tmp [utf8.UTFMax]byte
	k := utf8.EncodeRune(tmp[:], ch)
	return s.v.CopyFromSlice(tmp[:k])
}

// PushUnchecked appends a character without the capacity guard.
//
// The caller must ensure the encoding fits into spare capacity.
func (s *String[L, P]) PushUnchecked(ch rune) {
	var tmp [utf8.UTFMax]byte
	k := utf8.EncodeRune(tmp[:], ch)
	s.v.CopyFromSliceUnchecked(tmp[:k])
}

// PushStr appends str, all-or-nothing.
//
// Returns api.ErrInsufficientCapacity if str does not fit into spare
// capacity, or api.ErrInvalidUTF8 if it is not valid UTF-8.
func (s *String[L, P]) PushStr(str string) error {
	if !utf8.ValidString(str) {
		return api.ErrInvalidUTF8
	}
	return s.v.CopyFromSlice(memx.StringBytes(str))
}

// PushStrUnchecked appends str without the capacity and validity
// guards.
//
// The caller must ensure str is valid UTF-8 and fits into spare
// capacity.
func (s *String[L, P]) PushStrUnchecked(str string) {
	s.v.CopyFromSliceUnchecked(memx.StringBytes(str))
}

// AddStr appends as many characters of str as spare capacity allows
// and returns the number of bytes copied. When the whole input does not
// fit, the copy stops at the last complete character before the spare
// limit, never mid-character.
//
// str must be valid UTF-8.
func (s *String[L, P]) AddStr(str string) int {
	k := len(str)
	if spare := s.v.Spare(); k > spare {
		k = spare
		for k > 0 && !utf8.RuneStart(str[k]) {
			k--
		}
	}
	if k == 0 {
		return 0
	}
	n := s.v.Len()
	s.v.SetLen(n + k)
	copy(s.v.Slice()[n:], str[:k])
	return k
}

// Write appends p under the AddStr contract, reporting the number of
// bytes accepted. A truncated write returns
// api.ErrInsufficientCapacity alongside the count. Implements
// io.Writer.
//
// Returns api.ErrInvalidUTF8 without mutating the string if p is not
// valid UTF-8.
func (s *String[L, P]) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, api.ErrInvalidUTF8
	}
	n := s.AddStr(memx.String(p))
	if n < len(p) {
		return n, api.ErrInsufficientCapacity
	}
	return n, nil
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

// Insert inserts a character at byte offset idx, shifting the tail.
//
// Returns api.ErrInvalidIndex if idx is out of bounds,
// api.ErrMisalignedIndex if it does not lie on a character boundary,
// or api.ErrInsufficientCapacity if the encoding does not fit.
func (s *String[L, P]) Insert(idx int, ch rune) error {
	var tmp [utf8.UTFMax]byte
	k := utf8.EncodeRune(tmp[:], ch)
	return s.insertBytes(idx, memx.String(tmp[:k]))
}

// InsertStr inserts str at byte offset idx, shifting the tail.
//
// Returns api.ErrInvalidIndex if idx is out of bounds,
// api.ErrMisalignedIndex if it does not lie on a character boundary,
// api.ErrInsufficientCapacity if str does not fit, or
// api.ErrInvalidUTF8 if it is not valid UTF-8.
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
		return api.ErrInsufficientCapacity
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

// Clone returns a string with the same capacity, policy and content.
func (s *String[L, P]) Clone() String[L, P] {
	return String[L, P]{v: s.v.Clone()}
}

// Close vacates the content under the spare-memory policy and unpins
// the buffer if the string was created with NewSecure.
func (s *String[L, P]) Close() error { return s.v.Close() }
