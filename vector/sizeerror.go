// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"fmt"
)

// SizeError is returned by operations which would grow a vector beyond its
// maximum size.  Attempted is the length that the operation would have
// produced, and Max is the configured maximum.
type SizeError struct {
	Attempted int
	Max       int
}

func (e *SizeError) Error() string {
	if e.Attempted < 0 {
		return "buffer size limit exceeded"
	}
	return fmt.Sprintf("buffer size limit exceeded: size %d exceeds maximum %d", e.Attempted, e.Max)
}

func (e *SizeError) PublicError() string     { return e.Error() }
func (e *SizeError) BufferSizeLimit() string { return e.Error() }

// Is makes all SizeError values match ErrSizeLimit.
func (e *SizeError) Is(target error) bool {
	_, ok := target.(*SizeError)
	return ok
}

// ErrSizeLimit is a size limit error without details about the operation
// which caused it.  errors.Is reports true for any SizeError against it.
var ErrSizeLimit = &SizeError{Attempted: -1}
