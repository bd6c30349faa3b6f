package cmd

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"os"
	"os/signal"
	"path"
	"runtime/pprof"
	"syscall"
)

import "github.com/timtadh/data-structures/errors"

var ErrorCodes = map[string]int{
	"usage": 0,
	"opts":  3,
	"input": 4,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func AssertFileExists(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil {
		fmt.Fprintf(os.Stderr, "File '%s' does not exist!\n", fname)
		Usage(ErrorCodes["opts"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["opts"])
	}
	return fname
}

// AssertFile tolerates a not-yet-existing path, unlike AssertFileExists,
// since it is used for output/profile destinations this process creates.
func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		Usage(ErrorCodes["opts"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["opts"])
	}
	return fname
}

// CPUProfile stops and closes the profile on SIGINT/SIGTERM before
// re-panicking with the signal, so a killed run still leaves a
// readable profile file.
func CPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	stopOnce := func() {
		errors.Logf("DEBUG", "closing cpu profile")
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}
	}
	go func() {
		select {
		case sig := <-sigs:
			stopOnce()
			panic(errors.Errorf("caught signal: %v", sig))
		case <-done:
		}
	}()
	return func() {
		close(done)
		stopOnce()
	}, nil
}
