// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"os"

	"github.com/pkg/errors"
)

// ReadFile reads a whole file into a new buffer with the given maximum
// size.  A file larger than maxSize causes a SizeError.
func ReadFile(path string, maxSize int) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	b := NewLimited(maxSize)
	if err := b.Adopt(data); err != nil {
		return nil, err
	}
	return b, nil
}
