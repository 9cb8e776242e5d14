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
	"errors"
	"fmt"
	"io"
)

// ErrDataHeaderWritten is returned when a channel header is written after the data header.
var ErrDataHeaderWritten = errors.New("data header already written")

// NEVWriter writes the headers of an event file.
type NEVWriter struct {
	w          io.WriteSeeker
	hdr        *NEVBasicHeader
	extensions uint32 // Number of extension headers written so far.
}

// CreateNEV creates a new event file writer that writes to the given writer.
func CreateNEV(w io.WriteSeeker, hdr NEVBasicHeader) (*NEVWriter, error) {
	hdr.ExtensionCount = 0 // Not known yet.

	nw := &NEVWriter{w: w, hdr: &hdr}

	// Write the initial header
	if err := nw.writeHeader(); err != nil {
		return nil, fmt.Errorf("error writing header: %w", err)
	}

	return nw, nil
}

// WriteExtension appends an extension header.
func (nw *NEVWriter) WriteExtension(ext NEVExtensionHeader) error {
	if err := writeRecord(nw.w, ext); err != nil {
		return fmt.Errorf("error writing extension header: %w", err)
	}

	nw.extensions++
	return nil
}

// Close finalizes the file by updating the basic header with the number of
// extension headers and the total header length.
func (nw *NEVWriter) Close() error {
	nw.hdr.ExtensionCount = nw.extensions
	nw.hdr.HeaderSize = NEVBasicHeaderSize + nw.extensions*NEVExtensionHeaderSize
	if err := nw.writeHeader(); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	_, err := nw.w.Seek(0, io.SeekEnd)
	return err
}

func (nw *NEVWriter) writeHeader() error {
	// Rewind to the beginning of the file.
	if _, err := nw.w.Seek(0, io.SeekStart); err != nil {
		return err
	}

	return writeRecord(nw.w, nw.hdr)
}

// NSXWriter writes the headers of a continuous signal file.
type NSXWriter struct {
	w        io.WriteSeeker
	hdr      *NSXBasicHeader
	channels uint16 // Number of channel headers written so far.
	data     bool   // Whether the data header has been written.
}

// CreateNSX creates a new continuous signal file writer that writes to the given writer.
func CreateNSX(w io.WriteSeeker, hdr NSXBasicHeader) (*NSXWriter, error) {
	hdr.ChannelCount = 0

	nw := &NSXWriter{w: w, hdr: &hdr}

	if err := nw.writeHeader(); err != nil {
		return nil, fmt.Errorf("error writing header: %w", err)
	}

	return nw, nil
}

// WriteChannel appends a channel header. Channel headers must precede the data header.
func (nw *NSXWriter) WriteChannel(ext NSXExtensionHeader) error {
	if nw.data {
		return ErrDataHeaderWritten
	}
	if nw.channels == 0xFFFF {
		return fmt.Errorf("too many channels, max is %d", 0xFFFF)
	}

	if err := writeRecord(nw.w, ext); err != nil {
		return fmt.Errorf("error writing channel header: %w", err)
	}

	nw.channels++
	return nil
}

// WriteDataHeader appends the data header that follows the channel headers.
func (nw *NSXWriter) WriteDataHeader(dh NSXDataHeader) error {
	if err := writeRecord(nw.w, dh); err != nil {
		return fmt.Errorf("error writing data header: %w", err)
	}

	nw.data = true
	return nil
}

// Close finalizes the file by updating the basic header with the number of
// channels and the total header length.
func (nw *NSXWriter) Close() error {
	nw.hdr.ChannelCount = nw.channels
	nw.hdr.HeaderSize = NSXBasicHeaderSize + uint32(nw.channels)*NSXExtensionHeaderSize
	if err := nw.writeHeader(); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	_, err := nw.w.Seek(0, io.SeekEnd)
	return err
}

func (nw *NSXWriter) writeHeader() error {
	if _, err := nw.w.Seek(0, io.SeekStart); err != nil {
		return err
	}

	return writeRecord(nw.w, nw.hdr)
}

func writeRecord(w io.Writer, rec encoding.BinaryMarshaler) error {
	b, err := rec.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
