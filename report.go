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
	"fmt"
	"strconv"
	"strings"
)

// Renderer formats decoded headers as human readable text. Each method
// returns the complete text of one record, terminated by a blank line.
type Renderer struct {
	// Verbatim keeps the NUL padding of fixed width text fields instead of
	// cutting them at the first NUL.
	Verbatim bool
}

func (rr Renderer) text(b []byte) string {
	if rr.Verbatim {
		return FixedText(b)
	}
	return TrimmedText(b)
}

// NEVBasicHeader renders the basic header of an event file.
func (rr Renderer) NEVBasicHeader(h *NEVBasicHeader) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s created with '%s' on %s\n", FixedText(h.FileType[:]), FormatVersion(h.FileSpec), rr.text(h.Application[:]), h.Time)
	fmt.Fprintf(&sb, "  time resolution: %d samples/second\n", h.GlobalTimeResolution)
	fmt.Fprintf(&sb, "  waveform resolution: %d samples/second\n", h.WaveformTimeResolution)
	fmt.Fprintf(&sb, "  comment: '%s'\n", rr.text(h.Comment[:]))
	sb.WriteString("\n")
	return sb.String()
}

// NEVExtension renders an extension header of an event file. Unknown tags
// produce a notice instead of the decoded fields.
func (rr Renderer) NEVExtension(x *NEVExtensionHeader) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Extension Header '%s':\n", FixedText(x.ID[:]))

	ext, err := x.Decode()
	if err != nil {
		sb.WriteString("  Could not parse data: Unknown extension header.\n\n")
		return sb.String()
	}

	switch ext := ext.(type) {
	case *TextExtension:
		fmt.Fprintf(&sb, "  %s: %s\n", textExtensionLabel(ext.Type), rr.text(ext.Text[:]))
	case *NeuralWaveform:
		rr.neuralWaveform(&sb, ext)
	case *NeuralLabel:
		fmt.Fprintf(&sb, "  electrode id: %d\n", ext.ID)
		fmt.Fprintf(&sb, "  label: %s\n", rr.text(ext.Label[:]))
	case *NeuralFilter:
		fmt.Fprintf(&sb, "  electrode id: %d\n", ext.ID)
		fmt.Fprintf(&sb, "  high pass filter: %s\n", FormatFilter(ext.Highpass))
		fmt.Fprintf(&sb, "  low  pass filter: %s\n", FormatFilter(ext.Lowpass))
	case *DigitalLabel:
		mode := "serial"
		if ext.Parallel() {
			mode = "parallel"
		}
		fmt.Fprintf(&sb, "  %s port label: %s\n", mode, rr.text(ext.Label[:]))
	case *VideoSync:
		fmt.Fprintf(&sb, "  source id: %d\n", ext.ID)
		fmt.Fprintf(&sb, "  name: %s\n", rr.text(ext.Name[:]))
		fmt.Fprintf(&sb, "  fps: %.6g\n", ext.FrameRate)
	case *TrackableObject:
		fmt.Fprintf(&sb, "  type: %s\n", ext.Type)
		fmt.Fprintf(&sb, "  trackable id: %d\n", ext.ID)
		fmt.Fprintf(&sb, "  point count: %d\n", ext.PointCount)
		fmt.Fprintf(&sb, "  name: %s\n", rr.text(ext.Name[:]))
	}

	sb.WriteString("\n")
	return sb.String()
}

func (rr Renderer) neuralWaveform(sb *strings.Builder, w *NeuralWaveform) {
	fmt.Fprintf(sb, "  electrode id: %d (%s)\n", w.ID, FormatConnector(w.Bank, w.Pin))
	fmt.Fprintf(sb, "  digitization factor: %d nV/LSB\n", w.Factor)

	threshold := "none"
	if w.EnergyThreshold != 0 {
		threshold = fmt.Sprint(w.EnergyThreshold)
	}
	fmt.Fprintf(sb, "  energy threshold: %s\n", threshold)
	fmt.Fprintf(sb, "  high threshold: %d uV\n", w.HighThreshold)
	fmt.Fprintf(sb, "  low  threshold: %d uV\n", w.LowThreshold)

	units := "classification disabled"
	if w.Units != 0 {
		units = fmt.Sprint(w.Units)
	}
	fmt.Fprintf(sb, "  unit count: %s\n", units)

	size := w.SampleSize
	if size == 0 {
		size = 1
	}
	fmt.Fprintf(sb, "  spike waveform: %d samples of %d bytes\n", w.Width, size)
}

func textExtensionLabel(kind ExtensionKind) string {
	switch kind {
	case ArrayNameExtension:
		return "electrode array name"
	case MapFileExtension:
		return "map file name"
	default:
		return kind.String()
	}
}

// NSXBasicHeader renders the basic header of a continuous signal file.
func (rr Renderer) NSXBasicHeader(h *NSXBasicHeader) string {
	rate := "unknown"
	if h.SamplingPeriod != 0 {
		rate = fmt.Sprintf("%.6g", h.SamplingRate())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s '%s' (%s)\n", FixedText(h.FileType[:]), FormatVersion(h.FileSpec), rr.text(h.Label[:]), h.Time)
	fmt.Fprintf(&sb, "Comment: '%s'\n", rr.text(h.Comment[:]))
	fmt.Fprintf(&sb, "%s sample/sec and %d counts/sec for %d channels\n", rate, h.TimeResolution, h.ChannelCount)
	fmt.Fprintf(&sb, "Data starts at %d\n", h.HeaderSize)
	sb.WriteString("\n")
	return sb.String()
}

// NSXExtension renders a channel header of a continuous signal file.
func (rr Renderer) NSXExtension(x *NSXExtensionHeader) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s of '%s' connected to %s (id %d)\n", FixedText(x.Type[:]), rr.text(x.Label[:]), FormatConnector(x.Bank, x.Pin), x.ID)
	fmt.Fprintf(&sb, "%d - %d %s (%d - %d)\n", x.MinAnalog, x.MaxAnalog, rr.text(x.Unit[:]), x.MinDigital, x.MaxDigital)
	fmt.Fprintf(&sb, "high pass filter: %s\n", FormatFilter(x.Highpass))
	fmt.Fprintf(&sb, "low pass filter: %s\n", FormatFilter(x.Lowpass))
	sb.WriteString("\n")
	return sb.String()
}

// NSXDataHeader renders the data header of a continuous signal file.
func (rr Renderer) NSXDataHeader(h *NSXDataHeader) string {
	return fmt.Sprintf("type %d of length %d starting at %d counts\n\n", h.Kind, h.Length, h.Timestamp)
}

// FormatConnector renders a front-end bank and pin, e.g. "A12". The bank
// letter is a single byte, wrapping around past 255.
func FormatConnector(bank, pin uint8) string {
	return string([]byte{'@' + bank}) + strconv.Itoa(int(pin))
}

// FormatFilter renders a filter stage, e.g. "300 mHz, 1. order, butterworth".
func FormatFilter(f Filter) string {
	return fmt.Sprintf("%d mHz, %d. order, %s", f.Corner, f.Order, f.TypeName())
}
