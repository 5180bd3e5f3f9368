// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errordata helps with error serialization.
package errordata

import (
	"errors"

	werrors "gate.computer/bytebuf/errors"
	"gate.computer/bytebuf/hex"
	"gate.computer/bytebuf/vector"
)

// Internal details of an error.
type Internal struct {
	Error  string  `json:"error,omitempty"` // Omitted if same as public error.
	Public *Public `json:"public,omitempty"`
}

// Deconstruct an error on best-effort basis.
func Deconstruct(err error) *Internal {
	if pub := deconstructDecode(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructResourceLimit(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructPublic(err); pub != nil { // Must be last.
		return newInternalWithPublic(err, pub)
	}

	return &Internal{
		Error: err.Error(),
	}
}

func newInternalWithPublic(err error, pub *Public) *Internal {
	x := &Internal{
		Public: pub,
	}
	if s := err.Error(); s != pub.Error {
		x.Error = s
	}
	return x
}

// GetPublic representation which is well-formed even if there are no public
// details.
func (x *Internal) GetPublic() *Public {
	if x.Public != nil {
		return x.Public
	}

	return &Public{
		Error: "internal error",
	}
}

// Reconstruct an error.
func (x *Internal) Reconstruct() error {
	if x.Public == nil {
		return errors.New(x.Error)
	}

	s := x.Public.Error
	if x.Error != "" {
		s = x.Error
	}
	return reconstructError(s, x.Public)
}

// Public details of an error.
type Public struct {
	Error         string         `json:"error"`
	Decode        *Decode        `json:"decode,omitempty"`
	ResourceLimit *ResourceLimit `json:"resource_limit,omitempty"`
}

func deconstructPublic(err error) *Public {
	var e werrors.PublicError
	if !errors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
	}
}

// Reconstruct an error without internal details.
func (x *Public) Reconstruct() error {
	return reconstructError(x.Error, x)
}

// Decode error details.
type Decode struct {
	Kind string `json:"kind,omitempty"`
}

var decodeKinds = map[string]error{
	"unexpected_prefix": hex.ErrUnexpectedPrefix,
	"missing_prefix":    hex.ErrMissingPrefix,
	"odd_length":        hex.ErrOddLength,
	"too_short":         hex.ErrTooShort,
	"too_long":          hex.ErrTooLong,
	"max_size":          hex.ErrMaxSize,
	"non_hex":           hex.ErrNonHex,
}

func deconstructDecode(err error) *Public {
	var e werrors.DecodeError
	if !errors.As(err, &e) {
		return nil
	}

	pub := &Public{
		Error:  e.PublicError(),
		Decode: new(Decode),
	}
	for kind, sentinel := range decodeKinds {
		if errors.Is(err, sentinel) {
			pub.Decode.Kind = kind
			break
		}
	}
	return pub
}

// ResourceLimit error details.
type ResourceLimit struct {
	BufferSizeExceeded bool `json:"buffer_size_exceeded,omitempty"`
	Attempted          int  `json:"attempted,omitempty"`
	Max                int  `json:"max,omitempty"`
}

func deconstructResourceLimit(err error) *Public {
	var e werrors.BufferSizeLimit
	if !errors.As(err, &e) {
		return nil
	}

	pub := &Public{
		Error: e.PublicError(),
		ResourceLimit: &ResourceLimit{
			BufferSizeExceeded: errors.Is(err, vector.ErrSizeLimit),
		},
	}

	var size *vector.SizeError
	if errors.As(err, &size) && size.Attempted >= 0 {
		pub.ResourceLimit.Attempted = size.Attempted
		pub.ResourceLimit.Max = size.Max
	}
	return pub
}

func reconstructError(s string, x *Public) error {
	if x.Decode != nil {
		return newDecodeError(s, x)
	}
	if x.ResourceLimit != nil {
		return newResourceLimit(s, x)
	}
	return newPublicError(s, x)
}

type publicError struct {
	s       string
	public  string
	wrapped error
}

var _ werrors.PublicError = (*publicError)(nil)

func (e *publicError) Error() string       { return e.s }
func (e *publicError) PublicError() string { return e.public }
func (e *publicError) Unwrap() error       { return e.wrapped }

func newPublicError(s string, x *Public) error {
	return &publicError{
		s:      s,
		public: x.Error,
	}
}

type decodeError struct {
	publicError
}

func (e *decodeError) DecodeError() string { return e.public }

var _ werrors.DecodeError = (*decodeError)(nil)

func newDecodeError(s string, x *Public) error {
	e := &decodeError{publicError{
		s:      s,
		public: x.Error,
	}}
	if sentinel, found := decodeKinds[x.Decode.Kind]; found {
		e.wrapped = sentinel
	}
	return e
}

type resourceLimit struct {
	publicError
}

func (e *resourceLimit) BufferSizeLimit() string { return e.public }

var _ werrors.BufferSizeLimit = (*resourceLimit)(nil)

func newResourceLimit(s string, x *Public) error {
	e := &resourceLimit{publicError{
		s:      s,
		public: x.Error,
	}}
	if x.ResourceLimit.BufferSizeExceeded {
		e.wrapped = &vector.SizeError{
			Attempted: x.ResourceLimit.Attempted,
			Max:       x.ResourceLimit.Max,
		}
		if x.ResourceLimit.Attempted == 0 && x.ResourceLimit.Max == 0 {
			e.wrapped = vector.ErrSizeLimit
		}
	}
	return e
}
