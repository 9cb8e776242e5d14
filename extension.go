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

// ExtensionKind identifies the interpretation of an event file extension header.
type ExtensionKind int

const (
	UnknownExtension ExtensionKind = iota
	ArrayNameExtension
	ExtraCommentExtension
	ContinuedCommentExtension
	MapFileExtension
	NeuralWaveformExtension
	NeuralLabelExtension
	NeuralFilterExtension
	DigitalLabelExtension
	VideoSyncExtension
	TrackableObjectExtension
)

var extensionTags = map[ExtensionKind]string{
	ArrayNameExtension:        "ARRAYNME",
	ExtraCommentExtension:     "ECOMMENT",
	ContinuedCommentExtension: "CCOMMENT",
	MapFileExtension:          "MAPFILE",
	NeuralWaveformExtension:   "NEUEVWAV",
	NeuralLabelExtension:      "NEUEVLBL",
	NeuralFilterExtension:     "NEUEVFLT",
	DigitalLabelExtension:     "DIGLABEL",
	VideoSyncExtension:        "VIDEOSYN",
	TrackableObjectExtension:  "TRACKOBJ",
}

var extensionKinds = func() map[[8]byte]ExtensionKind {
	kinds := make(map[[8]byte]ExtensionKind, len(extensionTags))
	for kind := range extensionTags {
		kinds[kind.Tag()] = kind
	}
	return kinds
}()

// Tag returns the 8 byte identifier of the kind, NUL padded.
func (k ExtensionKind) Tag() [8]byte {
	var tag [8]byte
	copy(tag[:], extensionTags[k])
	return tag
}

func (k ExtensionKind) String() string {
	switch k {
	case ArrayNameExtension:
		return "array name"
	case ExtraCommentExtension:
		return "extra comment"
	case ContinuedCommentExtension:
		return "continued comment"
	case MapFileExtension:
		return "map file"
	case NeuralWaveformExtension:
		return "neural waveform"
	case NeuralLabelExtension:
		return "neural label"
	case NeuralFilterExtension:
		return "neural filter"
	case DigitalLabelExtension:
		return "digital label"
	case VideoSyncExtension:
		return "video sync"
	case TrackableObjectExtension:
		return "trackable object"
	default:
		return "unknown"
	}
}

// Kind looks up the extension kind from the identifier tag. Bytes following
// the first NUL of the tag are not significant.
func (x *NEVExtensionHeader) Kind() ExtensionKind {
	key := x.ID
	if i := bytes.IndexByte(key[:], 0); i >= 0 {
		clear(key[i:])
	}
	return extensionKinds[key]
}

// Decode reinterprets the payload according to the identifier tag.
func (x *NEVExtensionHeader) Decode() (Extension, error) {
	d := &decoder{b: x.Data[:]}

	switch kind := x.Kind(); kind {
	case ArrayNameExtension, ExtraCommentExtension, ContinuedCommentExtension, MapFileExtension:
		return &TextExtension{Type: kind, Text: x.Data}, nil
	case NeuralWaveformExtension:
		return &NeuralWaveform{
			ID:              d.u16(),
			Bank:            d.u8(),
			Pin:             d.u8(),
			Factor:          d.u16(),
			EnergyThreshold: d.u16(),
			HighThreshold:   d.i16(),
			LowThreshold:    d.i16(),
			Units:           d.u8(),
			SampleSize:      d.u8(),
			Width:           d.u16(),
		}, nil
	case NeuralLabelExtension:
		ext := &NeuralLabel{ID: d.u16()}
		d.bytes(ext.Label[:])
		return ext, nil
	case NeuralFilterExtension:
		ext := &NeuralFilter{ID: d.u16()}
		for _, f := range []*Filter{&ext.Highpass, &ext.Lowpass} {
			f.Corner = d.u32()
			f.Order = d.u32()
			f.Type = d.u16()
		}
		return ext, nil
	case DigitalLabelExtension:
		ext := &DigitalLabel{}
		d.bytes(ext.Label[:])
		ext.Mode = d.u8()
		return ext, nil
	case VideoSyncExtension:
		ext := &VideoSync{ID: d.u16()}
		d.bytes(ext.Name[:])
		ext.FrameRate = d.f32()
		return ext, nil
	case TrackableObjectExtension:
		ext := &TrackableObject{
			Type:       TrackingType(d.u16()),
			ID:         d.u16(),
			PointCount: d.u16(),
		}
		d.bytes(ext.Name[:])
		return ext, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedExtension, x.ID[:])
	}
}

// NewNEVExtension encodes a typed extension into a tagged extension header.
func NewNEVExtension(ext Extension) NEVExtensionHeader {
	e := newEncoder(NEVExtensionDataSize)
	ext.encode(e)
	e.zero(NEVExtensionDataSize - len(e.b))

	x := NEVExtensionHeader{ID: ext.Kind().Tag()}
	copy(x.Data[:], e.b)
	return x
}

// Extension is the decoded payload of an event file extension header.
type Extension interface {
	Kind() ExtensionKind
	encode(e *encoder)
}

// TextExtension holds the payload of the free text extension kinds.
type TextExtension struct {
	Type ExtensionKind
	Text [NEVExtensionDataSize]byte
}

func (t *TextExtension) Kind() ExtensionKind { return t.Type }

func (t *TextExtension) encode(e *encoder) {
	e.bytes(t.Text[:])
}

// NeuralWaveform describes the spike waveforms recorded for an electrode.
type NeuralWaveform struct {
	ID              uint16 // Electrode id
	Bank            uint8  // Front-end bank, 1 is 'A'
	Pin             uint8  // Connector pin
	Factor          uint16 // Digitization factor in nV/LSB
	EnergyThreshold uint16 // Zero if not used
	HighThreshold   int16  // High threshold in uV
	LowThreshold    int16  // Low threshold in uV
	Units           uint8  // Number of sorted units, zero if classification is disabled
	SampleSize      uint8  // Bytes per waveform sample, zero means one
	Width           uint16 // Samples per waveform
}

func (*NeuralWaveform) Kind() ExtensionKind { return NeuralWaveformExtension }

func (w *NeuralWaveform) encode(e *encoder) {
	e.u16(w.ID)
	e.u8(w.Bank)
	e.u8(w.Pin)
	e.u16(w.Factor)
	e.u16(w.EnergyThreshold)
	e.i16(w.HighThreshold)
	e.i16(w.LowThreshold)
	e.u8(w.Units)
	e.u8(w.SampleSize)
	e.u16(w.Width)
}

// NeuralLabel assigns a label to an electrode.
type NeuralLabel struct {
	ID    uint16
	Label [16]byte
}

func (*NeuralLabel) Kind() ExtensionKind { return NeuralLabelExtension }

func (l *NeuralLabel) encode(e *encoder) {
	e.u16(l.ID)
	e.bytes(l.Label[:])
}

// NeuralFilter describes the filters applied to an electrode.
type NeuralFilter struct {
	ID       uint16
	Highpass Filter
	Lowpass  Filter
}

func (*NeuralFilter) Kind() ExtensionKind { return NeuralFilterExtension }

func (f *NeuralFilter) encode(e *encoder) {
	e.u16(f.ID)
	for _, flt := range []Filter{f.Highpass, f.Lowpass} {
		e.u32(flt.Corner)
		e.u32(flt.Order)
		e.u16(flt.Type)
	}
}

// DigitalLabel labels the digital input port.
type DigitalLabel struct {
	Label [16]byte
	Mode  uint8 // Zero for serial, anything else is parallel
}

func (*DigitalLabel) Kind() ExtensionKind { return DigitalLabelExtension }

func (l *DigitalLabel) encode(e *encoder) {
	e.bytes(l.Label[:])
	e.u8(l.Mode)
}

// Parallel reports whether the port is in parallel mode.
func (l *DigitalLabel) Parallel() bool {
	return l.Mode != 0
}

// VideoSync describes a video source synchronized to the recording.
type VideoSync struct {
	ID        uint16
	Name      [16]byte
	FrameRate float32 // Frames per second
}

func (*VideoSync) Kind() ExtensionKind { return VideoSyncExtension }

func (v *VideoSync) encode(e *encoder) {
	e.u16(v.ID)
	e.bytes(v.Name[:])
	e.f32(v.FrameRate)
}

// TrackingType is the kind of a trackable object.
type TrackingType uint16

func (t TrackingType) String() string {
	switch t {
	case 0:
		return "undefined"
	case 1:
		return "2D body tracking with markers"
	case 2:
		return "2D body tracking with blobs"
	case 3:
		return "3D body tracking with markers"
	case 4:
		return "2D boundary tracking"
	default:
		return "unknown"
	}
}

// TrackableObject describes an object followed by a video tracking system.
type TrackableObject struct {
	Type       TrackingType
	ID         uint16
	PointCount uint16
	Name       [16]byte
}

func (*TrackableObject) Kind() ExtensionKind { return TrackableObjectExtension }

func (o *TrackableObject) encode(e *encoder) {
	e.u16(uint16(o.Type))
	e.u16(o.ID)
	e.u16(o.PointCount)
	e.bytes(o.Name[:])
}
