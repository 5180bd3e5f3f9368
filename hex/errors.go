// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

// decodeError values implement interface{ DecodeError() string }.
type decodeError string

func (s decodeError) Error() string       { return string(s) }
func (s decodeError) PublicError() string { return string(s) }
func (s decodeError) DecodeError() string { return string(s) }

// Decode validation errors.  Each failure mode is a distinct value so that
// callers can react differently (e.g. strip a prefix and retry).
var (
	ErrUnexpectedPrefix = decodeError(`string should not begin with "0x"`)
	ErrMissingPrefix    = decodeError(`expected prefix "0x"`)
	ErrOddLength        = decodeError("string length is not divisible by 2")
	ErrTooShort         = decodeError("input too short for fixed-size target")
	ErrTooLong          = decodeError("input too long for fixed-size target")
	ErrMaxSize          = decodeError("decoded size would exceed maximum")
	ErrNonHex           = decodeError("contains non-hexadecimal characters")
)

// FormatError is returned by ParseFormat for a malformed format spec.
type FormatError struct {
	Spec string
}

func (e *FormatError) Error() string {
	return "invalid hex format spec: \"" + e.Spec + "\""
}

func (e *FormatError) PublicError() string { return e.Error() }
