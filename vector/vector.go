// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements growable sequences with enforced maximum sizes.
//
// Every operation which could grow a Vector checks the resulting length
// against the maximum before touching any element.  A failed operation
// returns a SizeError and leaves the vector, and any source operand, exactly
// as they were.
package vector

import (
	"cmp"
	"math"
	"slices"
)

// NoLimit as the maximum size makes a vector behave like an ordinary
// growable slice.
const NoLimit = math.MaxInt

// Vector is a contiguously stored sequence of elements with a maximum
// length.  The zero value is an empty vector that cannot grow.
//
// Vectors are not safe for concurrent mutation.
type Vector[T any] struct {
	elems []T
	max   int
}

// Make a vector with a maximum size.
//
// This function can be used in field initializer expressions.  The
// initialized field must not be copied.
func Make[T any](maxSize int) Vector[T] {
	return Vector[T]{max: maxSize}
}

// New vector with a maximum size.
func New[T any](maxSize int) *Vector[T] {
	v := Make[T](maxSize)
	return &v
}

// NewSized vector holding n zero-valued elements.
func NewSized[T any](n, maxSize int) (*Vector[T], error) {
	var zero T
	return NewFilled(n, zero, maxSize)
}

// NewFilled vector holding n copies of fill.
func NewFilled[T any](n int, fill T, maxSize int) (*Vector[T], error) {
	v := New[T](maxSize)
	if err := v.check(n); err != nil {
		return nil, err
	}
	v.elems = make([]T, n)
	for i := range v.elems {
		v.elems[i] = fill
	}
	return v, nil
}

// FromSlice copies the elements of s into a new vector.
func FromSlice[T any](s []T, maxSize int) (*Vector[T], error) {
	v := New[T](maxSize)
	if err := v.check(len(s)); err != nil {
		return nil, err
	}
	v.elems = make([]T, len(s))
	copy(v.elems, s)
	return v, nil
}

// Wrap adopts s as the backing storage of a new vector without copying.  On
// failure s remains valid and unreferenced.
func Wrap[T any](s []T, maxSize int) (*Vector[T], error) {
	v := New[T](maxSize)
	if err := v.check(len(s)); err != nil {
		return nil, err
	}
	v.elems = s
	return v, nil
}

func (v *Vector[T]) check(n int) error {
	if n > v.max || n < 0 {
		return &SizeError{Attempted: n, Max: v.max}
	}
	return nil
}

// Len doesn't panic.
func (v *Vector[T]) Len() int {
	return len(v.elems)
}

// Cap doesn't panic.
func (v *Vector[T]) Cap() int {
	return cap(v.elems)
}

// MaxSize doesn't panic.
func (v *Vector[T]) MaxSize() int {
	return v.max
}

// At panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	return v.elems[i]
}

// Set panics if i is out of range.  It never changes the length.
func (v *Vector[T]) Set(i int, value T) {
	v.elems[i] = value
}

// Slice returns the backing storage.  Appending to it doesn't affect the
// vector, but element mutations are visible through it.
func (v *Vector[T]) Slice() []T {
	return v.elems
}

// Push appends one element.  It fails iff the vector is already at its
// maximum size.
func (v *Vector[T]) Push(value T) error {
	if err := v.check(len(v.elems) + 1); err != nil {
		return err
	}
	v.extend(1)[0] = value
	return nil
}

// Insert one element before index i.  It fails iff the vector is already at
// its maximum size.  Insert panics if i is out of range; i may equal Len().
func (v *Vector[T]) Insert(i int, value T) error {
	if err := v.check(len(v.elems) + 1); err != nil {
		return err
	}
	v.openGap(i, 1)[0] = value
	return nil
}

// InsertN inserts n copies of fill before index i.  The check is
// all-or-nothing: either all n elements fit or nothing is inserted.
// InsertN panics if n is negative.
func (v *Vector[T]) InsertN(i, n int, fill T) error {
	if n < 0 {
		panic("vector: negative insertion count")
	}
	if err := v.check(len(v.elems) + n); err != nil {
		return err
	}
	gap := v.openGap(i, n)
	for j := range gap {
		gap[j] = fill
	}
	return nil
}

// InsertSlice inserts a copy of s before index i.  The check is
// all-or-nothing.
func (v *Vector[T]) InsertSlice(i int, s []T) error {
	if err := v.check(len(v.elems) + len(s)); err != nil {
		return err
	}
	copy(v.openGap(i, len(s)), s)
	return nil
}

// Assign replaces the contents with a copy of other's elements.  On failure
// the vector keeps its prior contents.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	return v.AssignSlice(other.elems)
}

// AssignSlice replaces the contents with a copy of s.  On failure the vector
// keeps its prior contents.
func (v *Vector[T]) AssignSlice(s []T) error {
	if err := v.check(len(s)); err != nil {
		return err
	}
	if cap(v.elems) < len(s) {
		elems := make([]T, len(s))
		copy(elems, s)
		v.elems = elems
	} else {
		// s may alias the backing storage, so copy before clearing
		// the abandoned tail.
		v.elems = v.elems[:len(s)]
		copy(v.elems, s)
		clear(v.elems[len(s):cap(v.elems)])
	}
	return nil
}

// AssignFilled replaces the contents with n copies of fill.
func (v *Vector[T]) AssignFilled(n int, fill T) error {
	if err := v.check(n); err != nil {
		return err
	}
	if cap(v.elems) < n {
		v.elems = make([]T, n)
	} else {
		v.elems = v.elems[:n]
	}
	for i := range v.elems {
		v.elems[i] = fill
	}
	return nil
}

// Adopt replaces the backing storage with s without copying.  On failure the
// vector keeps its prior contents and s remains valid.
func (v *Vector[T]) Adopt(s []T) error {
	if err := v.check(len(s)); err != nil {
		return err
	}
	v.elems = s
	return nil
}

// Resize the vector to exactly n elements.  New elements are zero values.
// It fails iff n exceeds the maximum size.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFilled(n, zero)
}

// ResizeFilled resizes the vector to exactly n elements.  New elements are
// copies of fill.
func (v *Vector[T]) ResizeFilled(n int, fill T) error {
	if err := v.check(n); err != nil {
		return err
	}
	if n <= len(v.elems) {
		v.Truncate(n)
		return nil
	}
	old := len(v.elems)
	v.extend(n - old)
	for i := old; i < n; i++ {
		v.elems[i] = fill
	}
	return nil
}

// Reserve capacity for n elements.  It fails iff n exceeds the maximum size,
// even though the length never changes.
func (v *Vector[T]) Reserve(n int) error {
	if err := v.check(n); err != nil {
		return err
	}
	if n > cap(v.elems) {
		s := make([]T, len(v.elems), n)
		copy(s, v.elems)
		v.elems = s
	}
	return nil
}

// Truncate the vector to n elements if it is longer than that.  It cannot
// fail; truncation never violates the size limit.
func (v *Vector[T]) Truncate(n int) {
	if n < len(v.elems) {
		clear(v.elems[n:])
		v.elems = v.elems[:n]
	}
}

// extend grows the length by n.  Size limit must have been checked.
func (v *Vector[T]) extend(n int) []T {
	offset := len(v.elems)

	if size := offset + n; size <= cap(v.elems) {
		v.elems = v.elems[:size]
	} else {
		v.grow(n)
	}

	return v.elems[offset:]
}

// openGap makes room for n elements before index i, shifting the tail.  The
// returned slice is the gap; the caller overwrites every element of it.
func (v *Vector[T]) openGap(i, n int) []T {
	old := len(v.elems)
	if i < 0 || i > old {
		panic("vector: insert index out of range")
	}
	v.extend(n)
	copy(v.elems[i+n:], v.elems[i:old])
	return v.elems[i : i+n]
}

func (v *Vector[T]) grow(n int) {
	newLen := len(v.elems) + n

	newCap := cap(v.elems)*2 + n
	if newCap < cap(v.elems) { // Check for overflow
		newCap = newLen
	}

	if newCap > v.max && v.max >= newLen {
		newCap = v.max
	}

	s := make([]T, newLen, newCap)
	copy(s, v.elems)
	v.elems = s
}

// Equal reports whether two vectors hold the same elements in the same
// order.  Maximum sizes are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.elems {
		if x != b.elems[i] {
			return false
		}
	}
	return true
}

// Compare vectors lexicographically.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.elems, b.elems)
}
