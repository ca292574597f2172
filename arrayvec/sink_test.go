package arrayvec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-bk/cds/api"
	"github.com/r-bk/cds/arrayvec"
)

func TestWriterAcceptsUpToCapacity(t *testing.T) {
	v := arrayvec.New[byte, uint8, api.Uninitialized](8)
	w := arrayvec.Writer(&v)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = w.Write([]byte("world"))
	require.ErrorIs(t, err, api.ErrInsufficientCapacity)
	require.Equal(t, 3, n)
	require.Equal(t, []byte("hellowor"), v.Slice())

	n, err = w.Write([]byte("!"))
	require.ErrorIs(t, err, api.ErrInsufficientCapacity)
	require.Equal(t, 0, n)
}

func TestWriterWithFprintf(t *testing.T) {
	v := arrayvec.New[byte, uint8, api.Uninitialized](32)
	_, err := fmt.Fprintf(arrayvec.Writer(&v), "id=%d", 7)
	require.NoError(t, err)
	require.Equal(t, []byte("id=7"), v.Slice())
}
