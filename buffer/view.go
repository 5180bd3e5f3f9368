// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"gate.computer/bytebuf/hex"
)

// View is a read-only window over a byte sequence.  Methods never modify
// the underlying bytes; sub-views alias the same storage.
type View []byte

// Len doesn't panic.
func (v View) Len() int {
	return len(v)
}

// Empty doesn't panic.
func (v View) Empty() bool {
	return len(v) == 0
}

// Bytes returns a copy of the viewed bytes.
func (v View) Bytes() []byte {
	return append([]byte(nil), v...)
}

// First n bytes.  It panics if n exceeds the length.
func (v View) First(n int) View {
	return v[:n]
}

// Last n bytes.  It panics if n exceeds the length.
func (v View) Last(n int) View {
	return v[len(v)-n:]
}

// DropFirst returns the view without its first n bytes.
func (v View) DropFirst(n int) View {
	return v[n:]
}

// DropLast returns the view without its last n bytes.
func (v View) DropLast(n int) View {
	return v[:len(v)-n]
}

// StartsWith reports whether the view begins with prefix.
func (v View) StartsWith(prefix View) bool {
	return bytes.HasPrefix(v, prefix)
}

// Equal reports whether two views hold the same bytes.
func (v View) Equal(other View) bool {
	return bytes.Equal(v, other)
}

// Compare views lexicographically.
func (v View) Compare(other View) int {
	return bytes.Compare(v, other)
}

// Hex returns the full lowercase encoding without prefix.
func (v View) Hex() string {
	return hex.Encode(v, hex.Options{Full: true})
}

// RawString reinterprets the bytes as a string.
func (v View) RawString() string {
	return string(v)
}

// String returns the abbreviated "0x" form.
func (v View) String() string {
	return hex.Encode(v, hex.Options{Prefix: true})
}

// Hash returns a 64-bit content hash.
func (v View) Hash() uint64 {
	return xxhash.Sum64(v)
}
