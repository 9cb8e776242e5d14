// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package cli implements the nevinfo and nsxinfo commands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/OpenPSG/blackrock"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

type options struct {
	raw   bool // Print fixed text fields verbatim
	check bool // Compare the declared header length with the bytes read
	data  bool // Print the data header following the channel headers
}

// Command is a header inspection tool for one file kind.
type Command struct {
	Name     string // Program name used in messages
	FileHint string // Example file name for the usage message
	dataFlag bool
	run      func(r io.Reader, stdout io.Writer, logger *log.Logger, opts options) error
}

// NEVInfo prints the headers of event files.
var NEVInfo = &Command{
	Name:     "nevinfo",
	FileHint: "filename.nev",
	run:      reportNEV,
}

// NSXInfo prints the headers of continuous signal files.
var NSXInfo = &Command{
	Name:     "nsxinfo",
	FileHint: "filename.nsx",
	dataFlag: true,
	run:      reportNSX,
}

// Run executes the command with the given arguments (excluding the program
// name) and returns the process exit code. The report is written to stdout,
// failures to stderr.
func (c *Command) Run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.raw, "raw", false, "print fixed width text fields verbatim, including NUL padding")
	fs.BoolVar(&opts.check, "check", false, "warn if the declared header length differs from the bytes read")
	if c.dataFlag {
		fs.BoolVar(&opts.data, "data", false, "also print the data header following the channel headers")
	}
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] %s\n", c.Name, c.FileHint)
		fmt.Fprintf(stderr, "flags must precede the file name\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitFailure
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return ExitFailure
	}
	// Flags after the file name are not parsed, refuse them rather than
	// ignoring them.
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "%s: unexpected arguments after %s: %v\n", c.Name, fs.Arg(0), fs.Args()[1:])
		fs.Usage()
		return ExitFailure
	}

	logger := log.New(stderr, c.Name+": ", 0)

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		logger.Printf("Could not open file: %s", path)
		return ExitFailure
	}
	defer f.Close()

	r, err := openInput(f)
	if err != nil {
		logger.Printf("Could not open file: %s: %v", path, err)
		return ExitFailure
	}
	defer r.Close()

	if err := c.run(r, stdout, logger, opts); err != nil {
		logger.Print(err)
		return ExitFailure
	}

	return ExitSuccess
}

func reportNEV(r io.Reader, stdout io.Writer, logger *log.Logger, opts options) error {
	rr := blackrock.Renderer{Verbatim: opts.raw}

	nr, err := blackrock.OpenNEV(r)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(stdout, rr.NEVBasicHeader(nr.Header())); err != nil {
		return err
	}

	for {
		ext, err := nr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if _, err := io.WriteString(stdout, rr.NEVExtension(ext)); err != nil {
			return err
		}
	}

	if opts.check {
		checkHeaderSize(logger, nr.Header().HeaderSize, nr.Offset())
	}

	return nil
}

func reportNSX(r io.Reader, stdout io.Writer, logger *log.Logger, opts options) error {
	rr := blackrock.Renderer{Verbatim: opts.raw}

	nr, err := blackrock.OpenNSX(r)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(stdout, rr.NSXBasicHeader(nr.Header())); err != nil {
		return err
	}

	for {
		ext, err := nr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if _, err := io.WriteString(stdout, rr.NSXExtension(ext)); err != nil {
			return err
		}
	}

	// The data header starts where the declared header length ends, so the
	// check has to happen before it is consumed.
	if opts.check {
		checkHeaderSize(logger, nr.Header().HeaderSize, nr.Offset())
	}

	if opts.data {
		dh, err := nr.ReadDataHeader()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, rr.NSXDataHeader(dh)); err != nil {
			return err
		}
	}

	return nil
}

func checkHeaderSize(logger *log.Logger, declared uint32, read int64) {
	if int64(declared) != read {
		logger.Printf("warning: header declares %d bytes but %d were read", declared, read)
	}
}
