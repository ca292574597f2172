package arraystring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-bk/cds/api"
)

func TestZeroedPolicyWipesVacatedBytes(t *testing.T) {
	s := New[uint8, api.Zeroed](8)
	require.NoError(t, s.PushStr("secret"))

	require.NoError(t, s.Truncate(2))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0}, s.v.SpareSlice())

	_, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0}, s.v.SpareSlice())

	require.NoError(t, s.Close())
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, s.v.SpareSlice())
}

func TestUninitializedPolicyLeavesVacatedBytes(t *testing.T) {
	s := New[uint8, api.Uninitialized](8)
	require.NoError(t, s.PushStr("secret"))
	s.Clear()
	require.Equal(t, byte('s'), s.v.SpareSlice()[0])
}
