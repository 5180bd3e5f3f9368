// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer implements byte buffers with enforced maximum sizes.
package buffer

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"gate.computer/bytebuf/hex"
	"gate.computer/bytebuf/vector"
)

// NoLimit as the maximum size makes a buffer behave like an ordinary byte
// slice.
const NoLimit = vector.NoLimit

// Buffer is a resizable byte sequence with a maximum length.  The zero
// value is an empty buffer that cannot grow.
type Buffer struct {
	vec vector.Vector[byte]
}

// Make a buffer with a maximum size.
//
// This function can be used in field initializer expressions.  The
// initialized field must not be copied.
func Make(maxSize int) Buffer {
	return Buffer{vec: vector.Make[byte](maxSize)}
}

// New buffer without a size limit.
func New() *Buffer {
	return NewLimited(NoLimit)
}

// NewLimited buffer with a maximum size.
func NewLimited(maxSize int) *Buffer {
	b := Make(maxSize)
	return &b
}

// FromBytes copies data into a new buffer without a size limit.
func FromBytes(data []byte) *Buffer {
	b := New()
	b.vec.AssignSlice(data)
	return b
}

// FromString copies the raw bytes of s into a new buffer.
func FromString(s string) *Buffer {
	return Wrap([]byte(s))
}

// Wrap adopts data as the backing storage of a new buffer without copying.
func Wrap(data []byte) *Buffer {
	b := New()
	b.vec.Adopt(data)
	return b
}

// FromHex decodes a hex string without "0x" prefix into a new buffer.
func FromHex(s string) (*Buffer, error) {
	data, err := hex.Decode(s)
	if err != nil {
		return nil, err
	}
	return Wrap(data), nil
}

// FromHex0x decodes a hex string which must begin with "0x".
func FromHex0x(s string) (*Buffer, error) {
	data, err := hex.Decode0x(s)
	if err != nil {
		return nil, err
	}
	return Wrap(data), nil
}

// Len doesn't panic.
func (b *Buffer) Len() int {
	return b.vec.Len()
}

// Cap doesn't panic.
func (b *Buffer) Cap() int {
	return b.vec.Cap()
}

// MaxSize doesn't panic.
func (b *Buffer) MaxSize() int {
	return b.vec.MaxSize()
}

// Bytes returns the backing storage.  Element mutations are visible through
// it; appending to it doesn't affect the buffer.
func (b *Buffer) Bytes() []byte {
	return b.vec.Slice()
}

// At panics if i is out of range.
func (b *Buffer) At(i int) byte {
	return b.vec.At(i)
}

// Set panics if i is out of range.
func (b *Buffer) Set(i int, value byte) {
	b.vec.Set(i, value)
}

// PutByte appends one byte.  It fails iff the buffer is already full.
func (b *Buffer) PutByte(value byte) error {
	return b.vec.Push(value)
}

// PutUint32 appends a big-endian 32-bit integer.  The check is
// all-or-nothing: either all 4 bytes fit or nothing is appended.
func (b *Buffer) PutUint32(i uint32) error {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], i)
	return b.Put(tmp[:])
}

// PutUint64 appends a big-endian 64-bit integer.
func (b *Buffer) PutUint64(i uint64) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], i)
	return b.Put(tmp[:])
}

// Put appends a copy of data.  The check is all-or-nothing.
func (b *Buffer) Put(data []byte) error {
	return b.vec.InsertSlice(b.vec.Len(), data)
}

// PutString appends the raw bytes of s.
func (b *Buffer) PutString(s string) error {
	return b.Put([]byte(s))
}

// Insert one byte before index i.  Position only affects where the byte
// lands, never whether the operation is permitted.
func (b *Buffer) Insert(i int, value byte) error {
	return b.vec.Insert(i, value)
}

// InsertBytes inserts a copy of data before index i.
func (b *Buffer) InsertBytes(i int, data []byte) error {
	return b.vec.InsertSlice(i, data)
}

// Assign replaces the contents with a copy of other's bytes.  On failure
// the buffer keeps its prior contents.
func (b *Buffer) Assign(other *Buffer) error {
	return b.vec.AssignSlice(other.Bytes())
}

// AssignBytes replaces the contents with a copy of data.
func (b *Buffer) AssignBytes(data []byte) error {
	return b.vec.AssignSlice(data)
}

// Adopt replaces the backing storage with data without copying.  On failure
// the buffer keeps its prior contents and data remains valid.
func (b *Buffer) Adopt(data []byte) error {
	return b.vec.Adopt(data)
}

// AssignHex replaces the contents with decoded hex text.  Decoding is
// limited by the buffer's maximum size; on any error the buffer keeps its
// prior contents.
func (b *Buffer) AssignHex(s string, mode hex.Mode) error {
	data, err := hex.DecodeMode(s, mode, b.MaxSize())
	if err != nil {
		return err
	}
	return b.vec.Adopt(data)
}

// Resize the buffer to exactly n bytes.  New bytes are zero.
func (b *Buffer) Resize(n int) error {
	return b.vec.Resize(n)
}

// ResizeFill resizes the buffer to exactly n bytes.  New bytes are copies
// of fill.
func (b *Buffer) ResizeFill(n int, fill byte) error {
	return b.vec.ResizeFilled(n, fill)
}

// Reserve capacity for n bytes without changing the length.
func (b *Buffer) Reserve(n int) error {
	return b.vec.Reserve(n)
}

// Truncate the buffer to n bytes if it is longer than that.
func (b *Buffer) Truncate(n int) {
	b.vec.Truncate(n)
}

// View of the whole buffer.  The view aliases the buffer's storage.
func (b *Buffer) View() View {
	return View(b.Bytes())
}

// Sub copies bytes [off,end) into a new buffer with the same maximum size.
func (b *Buffer) Sub(off, end int) *Buffer {
	sub := NewLimited(b.MaxSize())
	sub.vec.AssignSlice(b.Bytes()[off:end])
	return sub
}

// Equal reports whether two buffers hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.View().Equal(other.View())
}

// Compare buffers lexicographically.
func (b *Buffer) Compare(other *Buffer) int {
	return b.View().Compare(other.View())
}

// Hex returns the full lowercase encoding without prefix.
func (b *Buffer) Hex() string {
	return b.View().Hex()
}

// Format encodes the contents according to a hex format spec.
func (b *Buffer) Format(spec string) (string, error) {
	return hex.Format(b.Bytes(), spec)
}

// String returns the abbreviated "0x" form.
func (b *Buffer) String() string {
	return b.View().String()
}

// Hash returns a 64-bit content hash.
func (b *Buffer) Hash() uint64 {
	return xxhash.Sum64(b.Bytes())
}
