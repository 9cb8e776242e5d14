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
	"strings"
	"testing"

	"github.com/OpenPSG/blackrock"
	"github.com/stretchr/testify/assert"
)

func TestRenderNEVBasicHeader(t *testing.T) {
	hdr := testNEVHeader()

	want := "NEURALEV v2.0 created with 'Central' on 2024-03-05 07:08:09.012\n" +
		"  time resolution: 30000 samples/second\n" +
		"  waveform resolution: 30000 samples/second\n" +
		"  comment: 'test recording'\n\n"
	assert.Equal(t, want, blackrock.Renderer{}.NEVBasicHeader(&hdr))

	// Verbatim output keeps the NUL padding
	out := blackrock.Renderer{Verbatim: true}.NEVBasicHeader(&hdr)
	assert.Contains(t, out, "'Central\x00")
	assert.Equal(t, 16-len("Central")+256-len("test recording"), strings.Count(out, "\x00"))
}

func TestRenderNeuralWaveform(t *testing.T) {
	w := &blackrock.NeuralWaveform{
		ID:            1,
		Bank:          1,
		Pin:           12,
		Factor:        250,
		HighThreshold: 800,
		LowThreshold:  -800,
		SampleSize:    2,
		Width:         48,
	}
	x := blackrock.NewNEVExtension(w)

	want := "Extension Header 'NEUEVWAV':\n" +
		"  electrode id: 1 (A12)\n" +
		"  digitization factor: 250 nV/LSB\n" +
		"  energy threshold: none\n" +
		"  high threshold: 800 uV\n" +
		"  low  threshold: -800 uV\n" +
		"  unit count: classification disabled\n" +
		"  spike waveform: 48 samples of 2 bytes\n\n"
	assert.Equal(t, want, blackrock.Renderer{}.NEVExtension(&x))

	w.EnergyThreshold = 5
	w.Units = 3
	w.SampleSize = 0
	x = blackrock.NewNEVExtension(w)

	out := blackrock.Renderer{}.NEVExtension(&x)
	assert.Contains(t, out, "  energy threshold: 5\n")
	assert.Contains(t, out, "  unit count: 3\n")
	assert.Contains(t, out, "  spike waveform: 48 samples of 1 bytes\n")
	assert.NotContains(t, out, "none")
	assert.NotContains(t, out, "classification disabled")
}

func TestRenderFilter(t *testing.T) {
	tests := []struct {
		typ  uint16
		want string
	}{
		{0, "300 mHz, 1. order, none"},
		{1, "300 mHz, 1. order, butterworth"},
		{255, "300 mHz, 1. order, butterworth"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, blackrock.FormatFilter(blackrock.Filter{Corner: 300, Order: 1, Type: tt.typ}))
	}

	x := blackrock.NewNEVExtension(&blackrock.NeuralFilter{
		ID:       4,
		Highpass: blackrock.Filter{Corner: 250000, Order: 4, Type: 1},
		Lowpass:  blackrock.Filter{Corner: 7500000, Order: 3},
	})
	want := "Extension Header 'NEUEVFLT':\n" +
		"  electrode id: 4\n" +
		"  high pass filter: 250000 mHz, 4. order, butterworth\n" +
		"  low  pass filter: 7500000 mHz, 3. order, none\n\n"
	assert.Equal(t, want, blackrock.Renderer{}.NEVExtension(&x))
}

func TestRenderNEVExtensions(t *testing.T) {
	tests := []struct {
		ext  blackrock.Extension
		want string
	}{
		{
			&blackrock.TextExtension{Type: blackrock.ArrayNameExtension, Text: text24("Utah array")},
			"Extension Header 'ARRAYNME':\n  electrode array name: Utah array\n\n",
		},
		{
			&blackrock.TextExtension{Type: blackrock.ContinuedCommentExtension, Text: text24("more")},
			"Extension Header 'CCOMMENT':\n  continued comment: more\n\n",
		},
		{
			&blackrock.TextExtension{Type: blackrock.MapFileExtension, Text: text24("utah.cmp")},
			"Extension Header 'MAPFILE\x00':\n  map file name: utah.cmp\n\n",
		},
		{
			&blackrock.NeuralLabel{ID: 7, Label: text16("elec7")},
			"Extension Header 'NEUEVLBL':\n  electrode id: 7\n  label: elec7\n\n",
		},
		{
			&blackrock.DigitalLabel{Label: text16("digin")},
			"Extension Header 'DIGLABEL':\n  serial port label: digin\n\n",
		},
		{
			&blackrock.DigitalLabel{Label: text16("digin"), Mode: 1},
			"Extension Header 'DIGLABEL':\n  parallel port label: digin\n\n",
		},
		{
			&blackrock.VideoSync{ID: 2, Name: text16("camera"), FrameRate: 29.97},
			"Extension Header 'VIDEOSYN':\n  source id: 2\n  name: camera\n  fps: 29.97\n\n",
		},
		{
			&blackrock.TrackableObject{Type: 1, ID: 9, PointCount: 4, Name: text16("head")},
			"Extension Header 'TRACKOBJ':\n  type: 2D body tracking with markers\n  trackable id: 9\n  point count: 4\n  name: head\n\n",
		},
	}

	for _, tt := range tests {
		x := blackrock.NewNEVExtension(tt.ext)
		assert.Equal(t, tt.want, blackrock.Renderer{}.NEVExtension(&x))
	}
}

func TestRenderUnknownExtension(t *testing.T) {
	x := blackrock.NEVExtensionHeader{ID: tag("BOGUSTAG"), Data: text24("whatever")}

	want := "Extension Header 'BOGUSTAG':\n  Could not parse data: Unknown extension header.\n\n"
	assert.Equal(t, want, blackrock.Renderer{}.NEVExtension(&x))
}

func TestRenderNSX(t *testing.T) {
	hdr := testNSXHeader()
	hdr.ChannelCount = 2
	hdr.HeaderSize = 436

	want := "NEURALCD v2.0 '30 kS/s' (2024-03-05 07:08:09.012)\n" +
		"Comment: ''\n" +
		"30000 sample/sec and 30000 counts/sec for 2 channels\n" +
		"Data starts at 436\n\n"
	assert.Equal(t, want, blackrock.Renderer{}.NSXBasicHeader(&hdr))

	hdr.SamplingPeriod = 7
	assert.Contains(t, blackrock.Renderer{}.NSXBasicHeader(&hdr), "\n4285.71 sample/sec")

	hdr.SamplingPeriod = 0
	assert.Contains(t, blackrock.Renderer{}.NSXBasicHeader(&hdr), "\nunknown sample/sec")

	ch := testChannel(3)
	want = "CC of 'chan3' connected to B5 (id 3)\n" +
		"-8191 - 8191 uV (-32764 - 32764)\n" +
		"high pass filter: 300 mHz, 1. order, butterworth\n" +
		"low pass filter: 7500000 mHz, 3. order, butterworth\n\n"
	assert.Equal(t, want, blackrock.Renderer{}.NSXExtension(&ch))

	dh := blackrock.NSXDataHeader{Kind: 1, Length: 100, Timestamp: 5}
	assert.Equal(t, "type 1 of length 100 starting at 5 counts\n\n", blackrock.Renderer{}.NSXDataHeader(&dh))
}

func TestFormatConnector(t *testing.T) {
	assert.Equal(t, "A12", blackrock.FormatConnector(1, 12))
	assert.Equal(t, "@0", blackrock.FormatConnector(0, 0))

	// Bank letters past the alphabet stay a single byte and wrap around
	assert.Equal(t, "\x083", blackrock.FormatConnector(200, 3))
	assert.Equal(t, "\xbf1", blackrock.FormatConnector(127, 1))
}
