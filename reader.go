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
	"io"
)

// NEVReader reads the headers of an event (.nev) file.
type NEVReader struct {
	cur  *Cursor
	hdr  *NEVBasicHeader
	read uint32 // Number of extension headers read so far
	err  error
}

// OpenNEV reads the basic header of an event file. The extension headers
// are read one at a time with Next.
func OpenNEV(r io.Reader) (*NEVReader, error) {
	cur := NewCursor(r)

	hdr := &NEVBasicHeader{}
	if err := cur.Read(hdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeaderRead, err)
	}

	return &NEVReader{
		cur: cur,
		hdr: hdr,
	}, nil
}

// Header returns the basic header.
func (nr *NEVReader) Header() *NEVBasicHeader {
	return nr.hdr
}

// Offset returns the number of bytes read from the file so far.
func (nr *NEVReader) Offset() int64 {
	return nr.cur.Offset()
}

// Next reads the next extension header. It returns io.EOF once all the
// extension headers declared in the basic header have been read. A failed
// read is terminal, later calls return the same error.
func (nr *NEVReader) Next() (*NEVExtensionHeader, error) {
	if nr.err != nil {
		return nil, nr.err
	}
	if nr.read >= nr.hdr.ExtensionCount {
		return nil, io.EOF
	}

	ext := &NEVExtensionHeader{}
	if err := nr.cur.Read(ext); err != nil {
		nr.err = fmt.Errorf("%w %d of %d: %w", ErrExtensionRead, nr.read+1, nr.hdr.ExtensionCount, err)
		return nil, nr.err
	}
	nr.read++

	return ext, nil
}

// NSXReader reads the headers of a continuous signal (.nsx) file.
type NSXReader struct {
	cur  *Cursor
	hdr  *NSXBasicHeader
	read uint16 // Number of channel headers read so far
	err  error
}

// OpenNSX reads the basic header of a continuous signal file. The channel
// headers are read one at a time with Next.
func OpenNSX(r io.Reader) (*NSXReader, error) {
	cur := NewCursor(r)

	hdr := &NSXBasicHeader{}
	if err := cur.Read(hdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeaderRead, err)
	}

	return &NSXReader{
		cur: cur,
		hdr: hdr,
	}, nil
}

// Header returns the basic header.
func (nr *NSXReader) Header() *NSXBasicHeader {
	return nr.hdr
}

// Offset returns the number of bytes read from the file so far.
func (nr *NSXReader) Offset() int64 {
	return nr.cur.Offset()
}

// Next reads the next channel header. It returns io.EOF once ChannelCount
// headers have been read. A failed read is terminal.
func (nr *NSXReader) Next() (*NSXExtensionHeader, error) {
	if nr.err != nil {
		return nil, nr.err
	}
	if nr.read >= nr.hdr.ChannelCount {
		return nil, io.EOF
	}

	ext := &NSXExtensionHeader{}
	if err := nr.cur.Read(ext); err != nil {
		nr.err = fmt.Errorf("%w %d of %d: %w", ErrExtensionRead, nr.read+1, nr.hdr.ChannelCount, err)
		return nil, nr.err
	}
	nr.read++

	return ext, nil
}

// ReadDataHeader reads the data header following the channel headers. All
// channel headers must have been read first.
func (nr *NSXReader) ReadDataHeader() (*NSXDataHeader, error) {
	if nr.err != nil {
		return nil, nr.err
	}
	if nr.read < nr.hdr.ChannelCount {
		return nil, fmt.Errorf("%w: %d channel headers left unread", ErrDataHeaderRead, nr.hdr.ChannelCount-nr.read)
	}

	dh := &NSXDataHeader{}
	if err := nr.cur.Read(dh); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataHeaderRead, err)
	}

	return dh, nil
}
