// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports common error types without unnecessary
// dependencies.
package errors

// PublicError has a message which can be shown to untrusted parties.
type PublicError interface {
	error
	PublicError() string
}

// BufferSizeLimit indicates that data doesn't fit within a buffer's maximum
// size.
type BufferSizeLimit interface {
	PublicError
	BufferSizeLimit() string
}

// DecodeError indicates that hex input failed validation.
type DecodeError interface {
	PublicError
	DecodeError() string
}
