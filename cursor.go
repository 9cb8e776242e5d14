// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package blackrock

import (
	"encoding"
	"fmt"
	"io"
)

// Record is a fixed-size structure stored verbatim in a file.
type Record interface {
	encoding.BinaryUnmarshaler
	Size() int
}

// Cursor reads fixed-size records from a byte stream and keeps track of the
// number of bytes consumed.
type Cursor struct {
	r   io.Reader
	off int64
}

// NewCursor returns a cursor positioned at the current position of r.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: r}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int64 {
	return c.off
}

// Read fills rec with exactly rec.Size() bytes from the stream. A partial
// read is not rewound and fails with ErrShortRead.
func (c *Cursor) Read(rec Record) error {
	b := make([]byte, rec.Size())
	n, err := io.ReadFull(c.r, b)
	c.off += int64(n)
	if err != nil {
		return fmt.Errorf("%w: got %d of %d bytes: %w", ErrShortRead, n, len(b), err)
	}

	return rec.UnmarshalBinary(b)
}
