package arrayvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-bk/cds/api"
	"github.com/r-bk/cds/arrayvec"
)

func newVec(capacity int) arrayvec.Vector[int, uint8, api.Uninitialized] {
	return arrayvec.New[int, uint8, api.Uninitialized](capacity)
}

func newZeroed(capacity int) arrayvec.Vector[uint32, uint8, api.Zeroed] {
	return arrayvec.New[uint32, uint8, api.Zeroed](capacity)
}

func TestNewEmpty(t *testing.T) {
	v := newVec(4)
	require.Equal(t, 0, v.Len())
	require.Equal(t, 4, v.Cap())
	require.Equal(t, 4, v.Spare())
	require.True(t, v.IsEmpty())
	require.False(t, v.IsFull())
	require.True(t, v.HasSpare())
	require.Empty(t, v.Slice())
}

func TestNewCapacityExceedsLengthType(t *testing.T) {
	require.Panics(t, func() {
		arrayvec.New[int, uint8, api.Uninitialized](256)
	})
	require.Panics(t, func() {
		arrayvec.New[int, uint8, api.Uninitialized](-1)
	})
	require.NotPanics(t, func() {
		arrayvec.New[int, uint8, api.Uninitialized](255)
	})
}

func TestPushWithinCapacity(t *testing.T) {
	v := newVec(4)
	for i := 1; i <= 4; i++ {
		require.NoError(t, v.Push(i))
		require.Equal(t, i, v.Len())
	}
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestPushBeyondCapacity(t *testing.T) {
	v := newVec(4)
	for i := 1; i <= 4; i++ {
		require.NoError(t, v.Push(i))
	}
	require.ErrorIs(t, v.Push(5), api.ErrInsufficientCapacity)
	require.Equal(t, 4, v.Len())
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())

	// scenario continued: remove(1) yields 2
	e, err := v.Remove(1)
	require.NoError(t, err)
	require.Equal(t, 2, e)
	require.Equal(t, []int{1, 3, 4}, v.Slice())
}

func TestPushUnchecked(t *testing.T) {
	v := newVec(2)
	v.PushUnchecked(7)
	v.PushUnchecked(8)
	require.Equal(t, []int{7, 8}, v.Slice())
}

func TestPop(t *testing.T) {
	v := newVec(3)
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))

	e, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, 2, e)

	e, ok = v.Pop()
	require.True(t, ok)
	require.Equal(t, 1, e)

	_, ok = v.Pop()
	require.False(t, ok)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	v := newVec(8)
	require.NoError(t, v.CopyFromSlice([]int{1, 2, 3, 4, 5}))

	e, err := v.Remove(2)
	require.NoError(t, err)
	require.Equal(t, 3, e)
	require.Equal(t, []int{1, 2, 4, 5}, v.Slice())

	require.NoError(t, v.Insert(2, e))
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())
}

func TestInsertErrors(t *testing.T) {
	v := newVec(2)
	require.NoError(t, v.Push(1))

	require.ErrorIs(t, v.Insert(3, 9), api.ErrInvalidIndex)
	require.ErrorIs(t, v.Insert(-1, 9), api.ErrInvalidIndex)

	require.NoError(t, v.Insert(0, 0))
	require.ErrorIs(t, v.Insert(1, 9), api.ErrInsufficientCapacity)
	require.Equal(t, []int{0, 1}, v.Slice())
}

func TestRemoveInvalidIndex(t *testing.T) {
	v := newVec(2)
	require.NoError(t, v.Push(1))

	_, err := v.Remove(1)
	require.ErrorIs(t, err, api.ErrInvalidIndex)
	_, err = v.Remove(-1)
	require.ErrorIs(t, err, api.ErrInvalidIndex)
	require.Equal(t, 1, v.Len())
}

func TestSwapRemove(t *testing.T) {
	v := newVec(4)
	require.NoError(t, v.CopyFromSlice([]int{1, 2, 3, 4}))

	e, err := v.SwapRemove(0)
	require.NoError(t, err)
	require.Equal(t, 1, e)
	require.Equal(t, []int{4, 2, 3}, v.Slice())

	_, err = v.SwapRemove(3)
	require.ErrorIs(t, err, api.ErrInvalidIndex)
}

func TestGetSet(t *testing.T) {
	v := newVec(3)
	require.NoError(t, v.Push(10))

	e, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, 10, e)

	_, err = v.Get(1)
	require.ErrorIs(t, err, api.ErrInvalidIndex)

	require.NoError(t, v.Set(0, 20))
	require.Equal(t, []int{20}, v.Slice())
	require.ErrorIs(t, v.Set(1, 30), api.ErrInvalidIndex)
}

func TestAppendTruncates(t *testing.T) {
	v := newVec(4)
	require.Equal(t, 3, v.Append(1, 2, 3))
	require.Equal(t, 1, v.Append(4, 5, 6))
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
	require.Equal(t, 0, v.Append(7))
}

func TestCopyFromSliceAllOrNothing(t *testing.T) {
	v := newVec(4)
	require.NoError(t, v.CopyFromSlice([]int{1, 2}))
	require.ErrorIs(t, v.CopyFromSlice([]int{3, 4, 5}), api.ErrInsufficientCapacity)
	require.Equal(t, []int{1, 2}, v.Slice())
	require.NoError(t, v.CopyFromSlice([]int{3, 4}))
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestFromSlice(t *testing.T) {
	v, err := arrayvec.FromSlice[int, uint16, api.Uninitialized](4, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, v.Slice())

	_, err = arrayvec.FromSlice[int, uint16, api.Uninitialized](2, []int{1, 2, 3})
	require.ErrorIs(t, err, api.ErrInsufficientCapacity)
}

func TestResize(t *testing.T) {
	v := newVec(6)
	require.NoError(t, v.Resize(4, 9))
	require.Equal(t, []int{9, 9, 9, 9}, v.Slice())

	require.NoError(t, v.Resize(2, 0))
	require.Equal(t, []int{9, 9}, v.Slice())

	require.ErrorIs(t, v.Resize(7, 0), api.ErrInsufficientCapacity)
	require.Equal(t, 2, v.Len())
}

func TestResizeWith(t *testing.T) {
	v := newVec(4)
	i := 0
	require.NoError(t, v.ResizeWith(3, func() int { i++; return i }))
	require.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestRetainPreservesOrder(t *testing.T) {
	v := newVec(8)
	require.NoError(t, v.CopyFromSlice([]int{1, 2, 3, 4, 5, 6}))

	v.Retain(func(e int) bool { return e%2 == 0 })
	require.Equal(t, []int{2, 4, 6}, v.Slice())

	v.Retain(func(e int) bool { return false })
	require.Empty(t, v.Slice())
}

func TestRetainMut(t *testing.T) {
	v := newVec(4)
	require.NoError(t, v.CopyFromSlice([]int{1, 2, 3, 4}))

	v.RetainMut(func(e *int) bool {
		if *e > 2 {
			return false
		}
		*e *= 10
		return true
	})
	require.Equal(t, []int{10, 20}, v.Slice())
}

func TestRetainMutPanicLeavesConsistentState(t *testing.T) {
	v := newVec(8)
	require.NoError(t, v.CopyFromSlice([]int{1, 2, 3, 4, 5}))

	require.Panics(t, func() {
		v.RetainMut(func(e *int) bool {
			if *e == 4 {
				panic("predicate failure")
			}
			return *e != 2
		})
	})
	// 1 and 3 kept, 2 rejected, 4 and 5 unprocessed and compacted
	require.Equal(t, []int{1, 3, 4, 5}, v.Slice())
}

func TestTruncateAndClear(t *testing.T) {
	v := newVec(4)
	require.NoError(t, v.CopyFromSlice([]int{1, 2, 3, 4}))

	v.Truncate(6) // no-op
	require.Equal(t, 4, v.Len())

	v.Truncate(2)
	require.Equal(t, []int{1, 2}, v.Slice())

	v.Clear()
	require.Equal(t, 0, v.Len())
	require.Equal(t, 4, v.Cap())
}

func TestSpareSliceAndSetLen(t *testing.T) {
	v := newVec(4)
	require.NoError(t, v.Push(1))

	spare := v.SpareSlice()
	require.Len(t, spare, 3)
	spare[0] = 2
	spare[1] = 3
	v.SetLen(3)
	require.Equal(t, []int{1, 2, 3}, v.Slice())

	live, spare := v.SplitAtSpare()
	require.Len(t, live, 3)
	require.Len(t, spare, 1)
}

func TestWrapUsesCallerBuffer(t *testing.T) {
	buf := make([]int, 3)
	v := arrayvec.Wrap[int, uint8, api.Uninitialized](buf)
	require.Equal(t, 3, v.Cap())
	require.NoError(t, v.Push(42))
	require.Equal(t, 42, buf[0])
}

func TestClone(t *testing.T) {
	v := newVec(4)
	require.NoError(t, v.CopyFromSlice([]int{1, 2}))

	c := v.Clone()
	require.NoError(t, c.Push(3))
	require.Equal(t, []int{1, 2}, v.Slice())
	require.Equal(t, []int{1, 2, 3}, c.Slice())
}

func TestIterator(t *testing.T) {
	v := newVec(4)
	require.NoError(t, v.CopyFromSlice([]int{5, 6, 7}))

	var got []int
	it := v.Iter()
	for ; it.Valid(); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{5, 6, 7}, got)

	it.Reset()
	require.True(t, it.Valid())
	require.Equal(t, 5, it.Value())
	require.Equal(t, 0, it.Index())
}

func TestZeroedPolicyWipesOnVacate(t *testing.T) {
	v := newZeroed(4)
	require.NoError(t, v.CopyFromSlice([]uint32{0xAABBCCDD, 2, 3, 4}))

	// pop
	_, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(0), v.SpareSlice()[0])

	// remove shifts left and wipes the vacated tail slot
	_, err := v.Remove(0)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 0}, v.SpareSlice())

	// truncate
	v.Truncate(0)
	require.Equal(t, []uint32{0, 0, 0, 0}, v.SpareSlice())
}

func TestZeroedPolicyWipesOnResizeDown(t *testing.T) {
	v := newZeroed(4)
	require.NoError(t, v.CopyFromSlice([]uint32{1, 2, 3, 4}))
	require.NoError(t, v.Resize(1, 0))
	require.Equal(t, []uint32{0, 0, 0}, v.SpareSlice())
}

func TestZeroedPolicyWipesOnRetain(t *testing.T) {
	v := newZeroed(4)
	require.NoError(t, v.CopyFromSlice([]uint32{1, 2, 3, 4}))
	v.Retain(func(e uint32) bool { return e%2 == 0 })
	require.Equal(t, []uint32{2, 4}, v.Slice())
	require.Equal(t, []uint32{0, 0}, v.SpareSlice())
}

func TestUninitializedPolicyLeavesBytes(t *testing.T) {
	v := arrayvec.New[uint32, uint8, api.Uninitialized](2)
	require.NoError(t, v.Push(0xDEADBEEF))
	_, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(0xDEADBEEF), v.SpareSlice()[0])
}

func TestCloseWipesAndEmpties(t *testing.T) {
	v := newZeroed(4)
	require.NoError(t, v.CopyFromSlice([]uint32{1, 2, 3}))
	require.NoError(t, v.Close())
	require.Equal(t, 0, v.Len())
	require.Equal(t, []uint32{0, 0, 0, 0}, v.SpareSlice())

	// still usable after Close
	require.NoError(t, v.Push(7))
	require.Equal(t, []uint32{7}, v.Slice())
}

func TestNewSecure(t *testing.T) {
	v, err := arrayvec.NewSecure[byte, uint16, api.Zeroed](4096)
	if err != nil {
		t.Skipf("pin not permitted: %v", err)
	}
	require.NoError(t, v.Push(0x42))
	require.NoError(t, v.Close())
	require.Equal(t, 0, v.Len())
}

func TestZeroSizedElements(t *testing.T) {
	v := arrayvec.New[struct{}, uint8, api.Zeroed](8)
	for i := 0; i < 8; i++ {
		require.NoError(t, v.Push(struct{}{}))
	}
	require.ErrorIs(t, v.Push(struct{}{}), api.ErrInsufficientCapacity)
	require.Equal(t, 8, v.Len())

	_, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, 7, v.Len())
}

func TestResizeWithPanicCommitsConstructed(t *testing.T) {
	v := arrayvec.New[uint32, uint8, api.Zeroed](8)
	require.NoError(t, v.CopyFromSlice([]uint32{1, 2}))

	calls := uint32(0)
	require.Panics(t, func() {
		v.ResizeWith(6, func() uint32 {
			calls++
			if calls == 3 {
				panic("factory failure")
			}
			return 10 + calls
		})
	})
	// the two constructed elements are live, the rest stays spare
	require.Equal(t, []uint32{1, 2, 11, 12}, v.Slice())
	for _, e := range v.SpareSlice() {
		require.Zero(t, e)
	}
}
