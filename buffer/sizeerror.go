// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"gate.computer/bytebuf/vector"
)

// SizeError implements interface{ BufferSizeLimit() string }.
type SizeError = vector.SizeError

// ErrSizeLimit matches any SizeError via errors.Is.
var ErrSizeLimit = vector.ErrSizeLimit
