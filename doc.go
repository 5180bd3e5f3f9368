// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytebuf provides byte containers with enforced maximum sizes and a
// hexadecimal text codec.
//
// The vector package implements the generic size-limited sequence, and the
// buffer package specializes it for bytes with hex conversions, views and
// integer appends.  The hex package converts between byte sequences and
// hexadecimal text with a small format mini-language.
//
// # Errors
//
// Marker interfaces for the error taxonomy are accessible via the errors
// subpackage.  Operations which would grow a container beyond its maximum
// size return an error implementing BufferSizeLimit; hex decoding failures
// implement DecodeError, with a distinct value per failure mode.  All
// failures leave destinations unmodified.
package bytebuf
