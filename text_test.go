// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package blackrock_test

import (
	"testing"

	"github.com/OpenPSG/blackrock"
	"github.com/stretchr/testify/assert"
)

func TestFixedText(t *testing.T) {
	s := blackrock.FixedText([]byte("AB\x00\x00"))
	assert.Len(t, s, 4)
	assert.Equal(t, "AB\x00\x00", s)

	assert.Equal(t, "AB", blackrock.TrimmedText([]byte("AB\x00\x00")))
	assert.Equal(t, "ABCD", blackrock.TrimmedText([]byte("ABCD")))
	assert.Equal(t, "", blackrock.TrimmedText([]byte("\x00AB")))
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "v2.0", blackrock.FormatVersion(0x0100))
	assert.Equal(t, "v1.129", blackrock.FormatVersion(0x81))
	assert.Equal(t, "v4.3", blackrock.FormatVersion(0x0203))
	assert.Equal(t, "v0.0", blackrock.FormatVersion(0))
}

func TestSystemTimeString(t *testing.T) {
	assert.Equal(t, "2024-03-05 07:08:09.012", testTime.String())

	tm := blackrock.SystemTime{Year: 99, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Milliseconds: 999}
	assert.Equal(t, "99-12-31 23:59:59.999", tm.String())
}
