// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"strings"

	"gate.computer/bytebuf/internal/pan"
)

// MaxDecodeSize is the default limit on decoded output.
const MaxDecodeSize = 64 * 1024 * 1024

// Mode of "0x" prefix handling during decode.
type Mode int

const (
	PrefixForbidden Mode = iota
	PrefixOptional
	PrefixRequired
)

// DecodedLen returns the number of bytes that s would decode to, ignoring
// any "0x" prefix and trailing odd digit.
func DecodedLen(s string) int {
	s = strings.TrimPrefix(s, "0x")
	return len(s) / 2
}

// Decode a hex string without prefix.  A "0x" prefix is a distinct error
// from malformed digits.
func Decode(s string) ([]byte, error) {
	return DecodeMode(s, PrefixForbidden, MaxDecodeSize)
}

// Decode0x decodes a hex string which must begin with "0x".
func Decode0x(s string) ([]byte, error) {
	return DecodeMode(s, PrefixRequired, MaxDecodeSize)
}

// DecodeAny decodes a hex string with or without a "0x" prefix.
func DecodeAny(s string) ([]byte, error) {
	return DecodeMode(s, PrefixOptional, MaxDecodeSize)
}

// DecodeMode decodes a hex string with explicit prefix handling and output
// size limit.  On any validation error no bytes are returned: the input is
// checked in full before the result is materialized.
func DecodeMode(s string, mode Mode, maxSize int) (data []byte, err error) {
	defer func() { err = pan.Error(recover()) }()

	s = stripPrefix(s, mode)
	if len(s)%2 != 0 {
		pan.Panic(ErrOddLength)
	}
	if len(s)/2 > maxSize {
		pan.Panic(ErrMaxSize)
	}

	return decodeDigits(make([]byte, len(s)/2), s), nil
}

// DecodeFixed decodes a hex string into a fixed-length destination.  The
// decoded byte count must match len(dst) exactly.  On failure dst is left
// unmodified.
func DecodeFixed(dst []byte, s string, mode Mode) (err error) {
	defer func() { err = pan.Error(recover()) }()

	s = stripPrefix(s, mode)
	if len(s)%2 != 0 {
		pan.Panic(ErrOddLength)
	}
	switch n := len(s) / 2; {
	case n < len(dst):
		pan.Panic(ErrTooShort)
	case n > len(dst):
		pan.Panic(ErrTooLong)
	}

	// Digits are validated into a scratch buffer so that dst is untouched
	// if one of them is malformed.
	copy(dst, decodeDigits(make([]byte, len(dst)), s))
	return nil
}

func stripPrefix(s string, mode Mode) string {
	if strings.HasPrefix(s, "0x") {
		if mode == PrefixForbidden {
			pan.Panic(ErrUnexpectedPrefix)
		}
		return s[2:]
	}
	if mode == PrefixRequired {
		pan.Panic(ErrMissingPrefix)
	}
	return s
}

func decodeDigits(dst []byte, s string) []byte {
	for i := range dst {
		dst[i] = nibble(s[2*i])<<4 | nibble(s[2*i+1])
	}
	return dst
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	pan.Panic(ErrNonHex)
	return 0
}
