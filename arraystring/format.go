// File: arraystring/format.go
// Lossy formatting: best-effort writes that truncate on a character
// boundary instead of failing.

package arraystring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/r-bk/cds/api"
	"github.com/r-bk/cds/internal/memx"
)

// lossyWriter adapts a String to the always-succeeding sink used by
// lossy formatting. Writes beyond capacity are truncated at the last
// complete character and reported as successful; invalid byte
// sequences are replaced with utf8.RuneError so the content stays
// valid UTF-8.
type lossyWriter[L api.LengthType, P api.SpareMemoryPolicy] struct {
	s *String[L, P]
}

func (w lossyWriter[L, P]) Write(p []byte) (int, error) {
	str := memx.String(p)
	if !utf8.ValidString(str) {
		str = strings.ToValidUTF8(str, string(utf8.RuneError))
	}
	w.s.AddStr(str)
	return len(p), nil
}

// Appendf formats according to format and appends the result,
// truncating at the last complete character if spare capacity runs out.
// Lossy by contract: it never fails; invalid byte sequences in the
// formatted output become utf8.RuneError. Use Write for the fallible
// sink.
func (s *String[L, P]) Appendf(format string, args ...any) {
	fmt.Fprintf(lossyWriter[L, P]{s: s}, format, args...)
}

// Format creates a string with the given capacity holding the
// formatted arguments, truncated at the last complete character if the
// capacity is insufficient.
func Format[L api.LengthType, P api.SpareMemoryPolicy](capacity int, format string, args ...any) String[L, P] {
	s := New[L, P](capacity)
	s.Appendf(format, args...)
	return s
}
