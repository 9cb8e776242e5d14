// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"bufio"
	"bytes"
	"io"

	"github.com/DataDog/zstd"
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// openInput returns a reader over the file contents, decompressing zstd
// compressed recordings on the fly.
func openInput(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	// Files shorter than the magic are passed through, the header read
	// reports them.
	magic, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}

	if bytes.Equal(magic, zstdMagic) {
		return zstd.NewReader(br), nil
	}

	return io.NopCloser(br), nil
}
