package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2016, Tim Henderson, Case Western Reserve University
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
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/subiso/backtrack"
	"github.com/timtadh/subiso/cmd"
	"github.com/timtadh/subiso/dag"
	"github.com/timtadh/subiso/graphio"
	"github.com/timtadh/subiso/sink"
)

func init() {
	cmd.UsageMessage = "subiso --help"
	cmd.ExtendedMessage = `
subiso -d <data.graph> -q <query.graph> -c <candidates.txt> [-o <output>]

Enumerates every subgraph isomorphism embedding of the query graph into
the data graph, guided by a precomputed candidate set, and writes one
line per embedding.
`
}

func main() {
	os.Exit(run())
}

func run() int {
	_, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hd:q:c:o:",
		[]string{
			"help",
			"data=",
			"query=",
			"candidates=",
			"output=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	var dataPath, queryPath, candidatesPath, outputPath, cpuProfile string
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-d", "--data":
			dataPath = cmd.AssertFileExists(oa.Arg())
		case "-q", "--query":
			queryPath = cmd.AssertFileExists(oa.Arg())
		case "-c", "--candidates":
			candidatesPath = cmd.AssertFileExists(oa.Arg())
		case "-o", "--output":
			outputPath = cmd.AssertFile(oa.Arg())
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if dataPath == "" || queryPath == "" || candidatesPath == "" {
		fmt.Fprintf(os.Stderr, "You must supply -d, -q, and -c\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		stop, err := cmd.CPUProfile(cpuProfile)
		if err != nil {
			errors.Logf("ERROR", "%v", err)
			return cmd.ErrorCodes["input"]
		}
		defer stop()
	}

	errors.Logf("INFO", "loading data graph %v", dataPath)
	data, remap, err := graphio.LoadDataGraph(dataPath)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		return cmd.ErrorCodes["input"]
	}

	errors.Logf("INFO", "loading query graph %v", queryPath)
	query, err := graphio.LoadQueryGraph(queryPath, remap)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		return cmd.ErrorCodes["input"]
	}

	errors.Logf("INFO", "loading candidate set %v", candidatesPath)
	cs, err := graphio.LoadCandidateSet(candidatesPath, query.N())
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		return cmd.ErrorCodes["input"]
	}

	errors.Logf("INFO", "building DAG for query with %v vertices", query.N())
	d, err := dag.Build(query, cs)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		return cmd.ErrorCodes["input"]
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			errors.Logf("ERROR", "%v", err)
			return cmd.ErrorCodes["input"]
		}
		defer f.Close()
		out = f
	}
	w := sink.New(out)
	if err := w.WriteHeader(query.N()); err != nil {
		errors.Logf("ERROR", "%v", err)
		return cmd.ErrorCodes["input"]
	}

	errors.Logf("INFO", "enumerating embeddings")
	if err := backtrack.Enumerate(data, d, cs, w); err != nil {
		errors.Logf("ERROR", "%v", err)
		return cmd.ErrorCodes["input"]
	}
	if err := w.Flush(); err != nil {
		errors.Logf("ERROR", "%v", err)
		return cmd.ErrorCodes["input"]
	}

	errors.Logf("INFO", "done")
	return 0
}
