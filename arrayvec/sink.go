// File: arrayvec/sink.go
// Byte-sink integration for byte vectors.

package arrayvec

import (
	"io"

	"github.com/r-bk/cds/api"
)

type sink[L api.LengthType, P api.SpareMemoryPolicy] struct {
	v *Vector[byte, L, P]
}

// Writer adapts a byte vector to io.Writer, bounded by spare capacity.
//
// Write accepts as many bytes as fit and reports the accepted count; a
// truncated write additionally returns api.ErrInsufficientCapacity, so
// short writes are never silent.
func Writer[L api.LengthType, P api.SpareMemoryPolicy](v *Vector[byte, L, P]) io.Writer {
	return sink[L, P]{v: v}
}

func (s sink[L, P]) Write(p []byte) (int, error) {
	n := s.v.Append(p...)
	if n < len(p) {
		return n, api.ErrInsufficientCapacity
	}
	return n, nil
}
