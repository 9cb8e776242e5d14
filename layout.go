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
	"encoding/binary"
	"fmt"
	"math"
)

// decoder reads little-endian fields at consecutive fixed offsets.
type decoder struct {
	b   []byte
	off int
}

func (d *decoder) u8() uint8 {
	v := d.b[d.off]
	d.off++
	return v
}

func (d *decoder) u16() uint16 {
	v := binary.LittleEndian.Uint16(d.b[d.off:])
	d.off += 2
	return v
}

func (d *decoder) i16() int16 {
	return int16(d.u16())
}

func (d *decoder) u32() uint32 {
	v := binary.LittleEndian.Uint32(d.b[d.off:])
	d.off += 4
	return v
}

func (d *decoder) f32() float32 {
	return math.Float32frombits(d.u32())
}

func (d *decoder) bytes(dst []byte) {
	d.off += copy(dst, d.b[d.off:d.off+len(dst)])
}

func (d *decoder) systemTime() SystemTime {
	return SystemTime{
		Year:         d.u16(),
		Month:        d.u16(),
		DayOfWeek:    d.u16(),
		Day:          d.u16(),
		Hour:         d.u16(),
		Minute:       d.u16(),
		Second:       d.u16(),
		Milliseconds: d.u16(),
	}
}

// encoder is the inverse of decoder.
type encoder struct {
	b []byte
}

func newEncoder(size int) *encoder {
	return &encoder{b: make([]byte, 0, size)}
}

func (e *encoder) u8(v uint8) {
	e.b = append(e.b, v)
}

func (e *encoder) u16(v uint16) {
	e.b = binary.LittleEndian.AppendUint16(e.b, v)
}

func (e *encoder) i16(v int16) {
	e.u16(uint16(v))
}

func (e *encoder) u32(v uint32) {
	e.b = binary.LittleEndian.AppendUint32(e.b, v)
}

func (e *encoder) f32(v float32) {
	e.u32(math.Float32bits(v))
}

func (e *encoder) bytes(src []byte) {
	e.b = append(e.b, src...)
}

func (e *encoder) zero(n int) {
	e.b = append(e.b, make([]byte, n)...)
}

func (e *encoder) systemTime(t SystemTime) {
	for _, v := range []uint16{t.Year, t.Month, t.DayOfWeek, t.Day, t.Hour, t.Minute, t.Second, t.Milliseconds} {
		e.u16(v)
	}
}

func checkSize(what string, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("%s: expected %d bytes, got %d", what, want, len(b))
	}
	return nil
}

// Size returns the encoded size of the record.
func (NEVBasicHeader) Size() int { return NEVBasicHeaderSize }

// MarshalBinary encodes the header in its on-disk layout.
func (h NEVBasicHeader) MarshalBinary() ([]byte, error) {
	e := newEncoder(NEVBasicHeaderSize)
	e.bytes(h.FileType[:])
	e.u16(h.FileSpec)
	e.bytes(h.Application[:])
	e.systemTime(h.Time)
	e.u32(h.HeaderSize)
	e.u32(h.GlobalTimeResolution)
	e.u32(h.WaveformTimeResolution)
	e.u32(h.ExtensionCount)
	e.bytes(h.Comment[:])
	return e.b, nil
}

// UnmarshalBinary decodes the header from its on-disk layout.
func (h *NEVBasicHeader) UnmarshalBinary(b []byte) error {
	if err := checkSize("nev basic header", b, NEVBasicHeaderSize); err != nil {
		return err
	}
	d := &decoder{b: b}
	d.bytes(h.FileType[:])
	h.FileSpec = d.u16()
	d.bytes(h.Application[:])
	h.Time = d.systemTime()
	h.HeaderSize = d.u32()
	h.GlobalTimeResolution = d.u32()
	h.WaveformTimeResolution = d.u32()
	h.ExtensionCount = d.u32()
	d.bytes(h.Comment[:])
	return nil
}

func (NEVExtensionHeader) Size() int { return NEVExtensionHeaderSize }

func (x NEVExtensionHeader) MarshalBinary() ([]byte, error) {
	e := newEncoder(NEVExtensionHeaderSize)
	e.bytes(x.ID[:])
	e.bytes(x.Data[:])
	return e.b, nil
}

func (x *NEVExtensionHeader) UnmarshalBinary(b []byte) error {
	if err := checkSize("nev extension header", b, NEVExtensionHeaderSize); err != nil {
		return err
	}
	d := &decoder{b: b}
	d.bytes(x.ID[:])
	d.bytes(x.Data[:])
	return nil
}

func (NSXBasicHeader) Size() int { return NSXBasicHeaderSize }

func (h NSXBasicHeader) MarshalBinary() ([]byte, error) {
	e := newEncoder(NSXBasicHeaderSize)
	e.bytes(h.FileType[:])
	e.u16(h.FileSpec)
	e.bytes(h.Label[:])
	e.bytes(h.Comment[:])
	e.systemTime(h.Time)
	e.u32(h.HeaderSize)
	e.u32(h.SamplingPeriod)
	e.u32(h.TimeResolution)
	e.u16(h.ChannelCount)
	return e.b, nil
}

func (h *NSXBasicHeader) UnmarshalBinary(b []byte) error {
	if err := checkSize("nsx basic header", b, NSXBasicHeaderSize); err != nil {
		return err
	}
	d := &decoder{b: b}
	d.bytes(h.FileType[:])
	h.FileSpec = d.u16()
	d.bytes(h.Label[:])
	d.bytes(h.Comment[:])
	h.Time = d.systemTime()
	h.HeaderSize = d.u32()
	h.SamplingPeriod = d.u32()
	h.TimeResolution = d.u32()
	h.ChannelCount = d.u16()
	return nil
}

func (NSXExtensionHeader) Size() int { return NSXExtensionHeaderSize }

// MarshalBinary encodes the channel record. Filter orders are stored in
// two bytes, larger values are truncated.
func (x NSXExtensionHeader) MarshalBinary() ([]byte, error) {
	e := newEncoder(NSXExtensionHeaderSize)
	e.bytes(x.Type[:])
	e.u16(x.ID)
	e.bytes(x.Label[:])
	e.u8(x.Bank)
	e.u8(x.Pin)
	e.i16(x.MinDigital)
	e.i16(x.MaxDigital)
	e.i16(x.MinAnalog)
	e.i16(x.MaxAnalog)
	e.bytes(x.Unit[:])
	for _, f := range []Filter{x.Highpass, x.Lowpass} {
		e.u32(f.Corner)
		e.u16(uint16(f.Order))
		e.u16(f.Type)
	}
	return e.b, nil
}

func (x *NSXExtensionHeader) UnmarshalBinary(b []byte) error {
	if err := checkSize("nsx extension header", b, NSXExtensionHeaderSize); err != nil {
		return err
	}
	d := &decoder{b: b}
	d.bytes(x.Type[:])
	x.ID = d.u16()
	d.bytes(x.Label[:])
	x.Bank = d.u8()
	x.Pin = d.u8()
	x.MinDigital = d.i16()
	x.MaxDigital = d.i16()
	x.MinAnalog = d.i16()
	x.MaxAnalog = d.i16()
	d.bytes(x.Unit[:])
	for _, f := range []*Filter{&x.Highpass, &x.Lowpass} {
		f.Corner = d.u32()
		f.Order = uint32(d.u16())
		f.Type = d.u16()
	}
	return nil
}

func (NSXDataHeader) Size() int { return NSXDataHeaderSize }

func (h NSXDataHeader) MarshalBinary() ([]byte, error) {
	e := newEncoder(NSXDataHeaderSize)
	e.u8(h.Kind)
	e.u32(h.Length)
	e.u32(h.Timestamp)
	return e.b, nil
}

func (h *NSXDataHeader) UnmarshalBinary(b []byte) error {
	if err := checkSize("nsx data header", b, NSXDataHeaderSize); err != nil {
		return err
	}
	d := &decoder{b: b}
	h.Kind = d.u8()
	h.Length = d.u32()
	h.Timestamp = d.u32()
	return nil
}
