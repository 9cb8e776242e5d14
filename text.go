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
	"bytes"
	"fmt"
)

// FixedText returns the bytes of a fixed width text field as a string,
// including any NUL padding.
func FixedText(b []byte) string {
	return string(b)
}

// TrimmedText returns a fixed width text field up to its first NUL byte.
func TrimmedText(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// FormatVersion renders a packed file specification version. The major
// number is the value shifted right by seven, the minor number its low byte.
func FormatVersion(v uint16) string {
	return fmt.Sprintf("v%d.%d", v>>7, v&0xFF)
}

// String renders the timestamp as "2006-01-02 15:04:05.000". The year is not
// padded.
func (t SystemTime) String() string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d.%03d",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Milliseconds)
}
