package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-bk/cds/api"
)

func TestMisalignedIndexIsInvalidIndex(t *testing.T) {
	require.ErrorIs(t, api.ErrMisalignedIndex, api.ErrInvalidIndex)
	require.NotErrorIs(t, api.ErrInvalidIndex, api.ErrMisalignedIndex)
}

func TestAllocError(t *testing.T) {
	cause := fmt.Errorf("out of buffers")
	err := &api.AllocError{Size: 128, Cause: cause}
	require.Equal(t, "alloc error: size 128: out of buffers", err.Error())
	require.ErrorIs(t, err, cause)

	var ae *api.AllocError
	require.True(t, errors.As(error(err), &ae))

	err = &api.AllocError{Size: 64}
	require.Equal(t, "alloc error: size 64", err.Error())
}
