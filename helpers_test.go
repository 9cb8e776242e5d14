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
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenPSG/blackrock"
	"github.com/stretchr/testify/require"
)

func tag(s string) (b [8]byte) {
	copy(b[:], s)
	return
}

func text16(s string) (b [16]byte) {
	copy(b[:], s)
	return
}

func text24(s string) (b [24]byte) {
	copy(b[:], s)
	return
}

func text256(s string) (b [256]byte) {
	copy(b[:], s)
	return
}

var testTime = blackrock.SystemTime{
	Year: 2024, Month: 3, DayOfWeek: 2, Day: 5,
	Hour: 7, Minute: 8, Second: 9, Milliseconds: 12,
}

func testNEVHeader() blackrock.NEVBasicHeader {
	return blackrock.NEVBasicHeader{
		FileType:               tag("NEURALEV"),
		FileSpec:               256,
		Application:            text16("Central"),
		Time:                   testTime,
		GlobalTimeResolution:   30000,
		WaveformTimeResolution: 30000,
		Comment:                text256("test recording"),
	}
}

func testNSXHeader() blackrock.NSXBasicHeader {
	return blackrock.NSXBasicHeader{
		FileType:       tag("NEURALCD"),
		FileSpec:       256,
		Label:          text16("30 kS/s"),
		Time:           testTime,
		SamplingPeriod: 1,
		TimeResolution: 30000,
	}
}

func testChannel(id uint16) blackrock.NSXExtensionHeader {
	return blackrock.NSXExtensionHeader{
		Type:       [2]byte{'C', 'C'},
		ID:         id,
		Label:      text16("chan3"),
		Bank:       2,
		Pin:        5,
		MinDigital: -32764,
		MaxDigital: 32764,
		MinAnalog:  -8191,
		MaxAnalog:  8191,
		Unit:       text16("uV"),
		Highpass:   blackrock.Filter{Corner: 300, Order: 1, Type: 1},
		Lowpass:    blackrock.Filter{Corner: 7500000, Order: 3, Type: 1},
	}
}

func createFile(t *testing.T, name string) *os.File {
	f, err := os.OpenFile(filepath.Join(t.TempDir(), name), os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	return f
}

func marshal(t *testing.T, recs ...interface{ MarshalBinary() ([]byte, error) }) []byte {
	var b []byte
	for _, rec := range recs {
		data, err := rec.MarshalBinary()
		require.NoError(t, err)
		b = append(b, data...)
	}
	return b
}
