// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var v Vector[int]

	assert.Zero(t, v.Len())
	assert.Zero(t, v.MaxSize())
	require.Error(t, v.Push(1))
}

func TestNewSized(t *testing.T) {
	for n := 0; n <= 2; n++ {
		v, err := NewSized[int](n, 2)
		require.NoError(t, err, n)
		assert.Equal(t, n, v.Len(), n)
	}

	v, err := NewSized[int](3, 2)
	require.Error(t, err)
	assert.Nil(t, v)

	var size *SizeError
	require.ErrorAs(t, err, &size)
	assert.Equal(t, 3, size.Attempted)
	assert.Equal(t, 2, size.Max)
	assert.ErrorIs(t, err, ErrSizeLimit)
}

func TestNewFilled(t *testing.T) {
	v, err := NewFilled(2, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7}, v.Slice())

	_, err = NewFilled(3, 7, 2)
	require.ErrorIs(t, err, ErrSizeLimit)
}

func TestFromSlice(t *testing.T) {
	src := []int{1, 2}

	v, err := FromSlice(src, 2)
	require.NoError(t, err)
	assert.Equal(t, src, v.Slice())

	// The vector holds a copy.
	src[0] = 9
	assert.Equal(t, 1, v.At(0))

	_, err = FromSlice([]int{1, 2, 3}, 2)
	require.ErrorIs(t, err, ErrSizeLimit)
}

func TestWrap(t *testing.T) {
	src := []int{1, 2, 3}

	_, err := Wrap(src, 2)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, []int{1, 2, 3}, src) // Source survives a failed adoption.

	v, err := Wrap(src, 3)
	require.NoError(t, err)
	v.Set(0, 9)
	assert.Equal(t, 9, src[0]) // Adopted, not copied.
}

func TestPushAtLimit(t *testing.T) {
	v := New[int](3)
	for i := 1; i <= 3; i++ {
		require.NoError(t, v.Push(i))
	}

	err := v.Push(4)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestInsert(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3}, 3)
	require.NoError(t, err)

	// Position never affects whether the operation is permitted.
	for _, i := range []int{0, 1, 3} {
		err := v.Insert(i, 4)
		require.ErrorIs(t, err, ErrSizeLimit, i)
		assert.Equal(t, []int{1, 2, 3}, v.Slice(), i)
	}

	v, err = FromSlice([]int{1, 3}, 3)
	require.NoError(t, err)
	require.NoError(t, v.Insert(1, 2))
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestInsertN(t *testing.T) {
	v, err := FromSlice([]int{1, 2}, 4)
	require.NoError(t, err)

	// All-or-nothing: three more don't fit, so nothing is inserted.
	err = v.InsertN(1, 3, 0)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, []int{1, 2}, v.Slice())

	require.NoError(t, v.InsertN(1, 2, 0))
	assert.Equal(t, []int{1, 0, 0, 2}, v.Slice())
}

func TestInsertNNegativeCount(t *testing.T) {
	v, err := FromSlice([]int{1, 2}, 4)
	require.NoError(t, err)

	assert.Panics(t, func() { v.InsertN(1, -1, 0) })
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestInsertSlice(t *testing.T) {
	v, err := FromSlice([]int{1, 4}, 4)
	require.NoError(t, err)

	require.NoError(t, v.InsertSlice(1, []int{2, 3}))
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())

	err = v.InsertSlice(0, []int{5})
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestAssign(t *testing.T) {
	dst, err := FromSlice([]int{1, 2}, 2)
	require.NoError(t, err)

	err = dst.AssignSlice([]int{3, 4, 5})
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, []int{1, 2}, dst.Slice()) // Destination unchanged.

	require.NoError(t, dst.AssignSlice([]int{3, 4}))
	assert.Equal(t, []int{3, 4}, dst.Slice())

	src, err := FromSlice([]int{5}, 5)
	require.NoError(t, err)
	require.NoError(t, dst.Assign(src))
	assert.Equal(t, []int{5}, dst.Slice())
}

func TestAssignSelfAlias(t *testing.T) {
	// The source may alias the backing storage.
	v, err := FromSlice([]int{1, 2, 3}, 3)
	require.NoError(t, err)

	require.NoError(t, v.AssignSlice(v.Slice()[1:]))
	assert.Equal(t, []int{2, 3}, v.Slice())

	require.NoError(t, v.AssignSlice(v.Slice()[:1]))
	assert.Equal(t, []int{2}, v.Slice())

	require.NoError(t, v.Assign(v))
	assert.Equal(t, []int{2}, v.Slice())
}

func TestAssignFilled(t *testing.T) {
	v := New[int](3)

	require.NoError(t, v.AssignFilled(3, 8))
	assert.Equal(t, []int{8, 8, 8}, v.Slice())

	err := v.AssignFilled(4, 8)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, []int{8, 8, 8}, v.Slice())
}

func TestAdopt(t *testing.T) {
	v, err := FromSlice([]int{1}, 2)
	require.NoError(t, err)

	src := []int{1, 2, 3}
	err = v.Adopt(src)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, []int{1}, v.Slice())
	assert.Equal(t, []int{1, 2, 3}, src)

	require.NoError(t, v.Adopt(src[:2]))
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestResize(t *testing.T) {
	v := New[int](4)

	require.NoError(t, v.Resize(3))
	assert.Equal(t, []int{0, 0, 0}, v.Slice())

	require.NoError(t, v.ResizeFilled(4, 7))
	assert.Equal(t, []int{0, 0, 0, 7}, v.Slice())

	require.NoError(t, v.Resize(1))
	assert.Equal(t, []int{0}, v.Slice())

	err := v.Resize(5)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Equal(t, 1, v.Len())
}

func TestReserve(t *testing.T) {
	v := New[int](4)

	require.NoError(t, v.Reserve(4))
	assert.Zero(t, v.Len()) // Reserve never changes the length.
	assert.GreaterOrEqual(t, v.Cap(), 4)

	err := v.Reserve(5)
	require.ErrorIs(t, err, ErrSizeLimit)
}

func TestTruncate(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3}, 3)
	require.NoError(t, err)

	v.Truncate(5) // No-op beyond the length.
	assert.Equal(t, 3, v.Len())

	v.Truncate(1)
	assert.Equal(t, []int{1}, v.Slice())
}

func TestNoLimit(t *testing.T) {
	v := New[int](NoLimit)
	for i := 0; i < 10000; i++ {
		require.NoError(t, v.Push(i))
	}
	assert.Equal(t, 10000, v.Len())
}

func TestEqualCompare(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3}, NoLimit)
	require.NoError(t, err)
	b, err := FromSlice([]int{1, 2, 3}, 3)
	require.NoError(t, err)
	c, err := FromSlice([]int{1, 2, 4}, NoLimit)
	require.NoError(t, err)

	assert.True(t, Equal(a, b)) // Maximum sizes are not compared.
	assert.False(t, Equal(a, c))
	assert.Equal(t, 0, Compare(a, b))
	assert.Equal(t, -1, Compare(a, c))
	assert.Equal(t, 1, Compare(c, a))
}

func TestSizeErrorMessage(t *testing.T) {
	err := New[int](2).Resize(3)
	require.Error(t, err)
	assert.Equal(t, "buffer size limit exceeded: size 3 exceeds maximum 2", err.Error())
	assert.False(t, errors.Is(err, errors.New("other")))
}
