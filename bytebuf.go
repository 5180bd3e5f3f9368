// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"gate.computer/bytebuf/hex"
)

// MustHex decodes a hex literal without "0x" prefix.  It panics on invalid
// input; it is intended for initializing well-known values.
func MustHex(s string) []byte {
	data, err := hex.Decode(s)
	if err != nil {
		panic(err)
	}
	return data
}

// MustHex0x decodes a hex literal with or without "0x" prefix, panicking on
// invalid input.
func MustHex0x(s string) []byte {
	data, err := hex.DecodeAny(s)
	if err != nil {
		panic(err)
	}
	return data
}
