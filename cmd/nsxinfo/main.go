// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Command nsxinfo prints the headers of a Blackrock nsx file.
package main

import (
	"os"

	"github.com/OpenPSG/blackrock/internal/cli"
)

func main() {
	os.Exit(cli.NSXInfo.Run(os.Args[1:], os.Stdout, os.Stderr))
}
