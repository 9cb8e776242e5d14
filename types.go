// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package blackrock

// ClockRate is the fixed system clock of the acquisition hardware, in Hz.
const ClockRate = 30000

// Sizes of the fixed-layout records, in bytes.
const (
	SystemTimeSize         = 16
	NEVBasicHeaderSize     = 314
	NEVExtensionHeaderSize = 32
	NEVExtensionDataSize   = 24
	NSXBasicHeaderSize     = 312
	NSXExtensionHeaderSize = 62
	NSXDataHeaderSize      = 9
)

// SystemTime is the calendar timestamp stored in file headers.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16 // 0 is Sunday, not rendered
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// NEVBasicHeader represents the leading header of an event (.nev) file.
type NEVBasicHeader struct {
	FileType               [8]byte    // File type identifier (usually "NEURALEV")
	FileSpec               uint16     // Packed file specification version
	Application            [16]byte   // Application that created the file
	Time                   SystemTime // Time the file was created
	HeaderSize             uint32     // Number of bytes in all headers, informational only
	GlobalTimeResolution   uint32     // Time stamp resolution in samples/second
	WaveformTimeResolution uint32     // Waveform sample resolution in samples/second
	ExtensionCount         uint32     // Number of extension headers following the basic header
	Comment                [256]byte  // Free text comment
}

// NEVExtensionHeader is a tagged extension record of an event file. The
// interpretation of Data depends on ID, see Kind and Decode.
type NEVExtensionHeader struct {
	ID   [8]byte
	Data [NEVExtensionDataSize]byte
}

// NSXBasicHeader represents the leading header of a continuous signal (.nsx) file.
type NSXBasicHeader struct {
	FileType       [8]byte    // File type identifier (usually "NEURALCD")
	FileSpec       uint16     // Packed file specification version
	Label          [16]byte   // Label of the sampling group (e.g. "30 kS/s")
	Comment        [256]byte  // Free text comment
	Time           SystemTime // Time the file was created
	HeaderSize     uint32     // Number of bytes in all headers, informational only
	SamplingPeriod uint32     // Sampling period in ticks of ClockRate
	TimeResolution uint32     // Time stamp resolution in counts/second
	ChannelCount   uint16     // Number of channel extension headers
}

// SamplingRate returns the sampling rate in samples/second, or zero if the
// sampling period is unset.
func (h *NSXBasicHeader) SamplingRate() float64 {
	if h.SamplingPeriod == 0 {
		return 0
	}
	return float64(ClockRate) / float64(h.SamplingPeriod)
}

// NSXExtensionHeader describes a single channel of a continuous signal file.
type NSXExtensionHeader struct {
	Type       [2]byte  // Record type (usually "CC")
	ID         uint16   // Electrode id
	Label      [16]byte // Channel label
	Bank       uint8    // Front-end bank, 1 is 'A'
	Pin        uint8    // Connector pin
	MinDigital int16    // Minimum digital value
	MaxDigital int16    // Maximum digital value
	MinAnalog  int16    // Minimum analog value, in Unit
	MaxAnalog  int16    // Maximum analog value, in Unit
	Unit       [16]byte // Physical unit (e.g. "uV")
	Highpass   Filter
	Lowpass    Filter
}

// NSXDataHeader marks the start of a data packet in a continuous signal file.
type NSXDataHeader struct {
	Kind      uint8  // Header kind, 1 for a data packet
	Length    uint32 // Number of data points
	Timestamp uint32 // Start of the packet in clock counts
}

// Filter describes an analog filter stage.
type Filter struct {
	Corner uint32 // Corner frequency in mHz
	Order  uint32 // Filter order, zero when disabled
	Type   uint16 // Zero for none, anything else is butterworth
}

// TypeName returns the name of the filter type.
func (f Filter) TypeName() string {
	if f.Type == 0 {
		return "none"
	}
	return "butterworth"
}
