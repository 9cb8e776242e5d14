// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package blackrock

import "errors"

var (
	// ErrShortRead is returned when fewer bytes than a record's size are available.
	ErrShortRead = errors.New("short read")
	// ErrHeaderRead is returned when the basic header of a file cannot be read.
	ErrHeaderRead = errors.New("could not read basic header")
	// ErrExtensionRead is returned when an extension or channel header cannot be read.
	ErrExtensionRead = errors.New("could not read extension header")
	// ErrDataHeaderRead is returned when the data header of a signal file cannot be read.
	ErrDataHeaderRead = errors.New("could not read data header")
	// ErrUnrecognizedExtension is returned when decoding an extension with an unknown tag.
	ErrUnrecognizedExtension = errors.New("unknown extension header")
)
