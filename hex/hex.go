// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hex converts byte sequences to and from hexadecimal text.
//
// Encoding renders each byte as exactly two hex digits, with optional "0x"
// prefix, upper or lower case, and an abbreviated form which shows only the
// leading and trailing bytes of long sequences joined by an ellipsis.
// Decoding is strict: the whole input is validated before any byte is
// produced, and each failure mode is a distinct error value.
package hex

// Rendering options.  The zero value renders abbreviated lowercase digits
// without a prefix.
type Options struct {
	Prefix bool // Emit literal "0x" before the digits.
	Upper  bool // Use digits A-F instead of a-f.
	Full   bool // Never abbreviate.
}

// Abbreviated output shows abbrevHead leading and abbrevTail trailing bytes.
// Sequences which fit entirely within the head and tail are always rendered
// in full; abbreviating them wouldn't make the output shorter.
const (
	abbrevHead = 2
	abbrevTail = 2

	ellipsis = "…"
	empty    = "<empty>"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Encode bytes as text.  The result is a pure function of the arguments.
func Encode(data []byte, o Options) string {
	return string(AppendEncode(nil, data, o))
}

// AppendEncode appends the encoding of data to dst and returns the extended
// slice.
func AppendEncode(dst, data []byte, o Options) []byte {
	if o.Prefix {
		dst = append(dst, "0x"...)
	} else if len(data) == 0 {
		// Without a prefix an empty encoding would be ambiguous.
		return append(dst, empty...)
	}

	digits := lowerDigits
	if o.Upper {
		digits = upperDigits
	}

	if o.Full || len(data) <= abbrevHead+abbrevTail {
		return appendDigits(dst, data, digits)
	}

	dst = appendDigits(dst, data[:abbrevHead], digits)
	dst = append(dst, ellipsis...)
	return appendDigits(dst, data[len(data)-abbrevTail:], digits)
}

func appendDigits(dst, data []byte, digits string) []byte {
	for _, b := range data {
		dst = append(dst, digits[b>>4], digits[b&0x0f])
	}
	return dst
}

// ParseFormat parses a format spec into rendering options.
//
// The spec mini-language:
//
//	""     abbreviated lowercase
//	"x"    abbreviated lowercase
//	"xx"   full lowercase
//	"X"    abbreviated uppercase
//	"XX"   full uppercase
//	"0"    abbreviated lowercase with "0x" prefix
//	"0x"   abbreviated lowercase with "0x" prefix
//	"0xx"  full lowercase with "0x" prefix
//	"0X"   abbreviated uppercase with "0x" prefix
//	"0XX"  full uppercase with "0x" prefix
//
// Anything else is a configuration error, reported at parse time.
func ParseFormat(spec string) (Options, error) {
	var o Options

	s := spec
	if len(s) > 0 && s[0] == '0' {
		o.Prefix = true
		s = s[1:]
	}

	switch s {
	case "":
	case "x":
	case "xx":
		o.Full = true
	case "X":
		o.Upper = true
	case "XX":
		o.Upper = true
		o.Full = true
	default:
		return Options{}, &FormatError{Spec: spec}
	}

	return o, nil
}

// Format encodes bytes according to a format spec.
func Format(data []byte, spec string) (string, error) {
	o, err := ParseFormat(spec)
	if err != nil {
		return "", err
	}
	return Encode(data, o), nil
}
