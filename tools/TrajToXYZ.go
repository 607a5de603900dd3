// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// global variables
var (
	sites  [][3]float64 // [nsites] fixed site coordinates, read once from the header
	times  []float64    // [nframes]
	steps  []int64      // [nframes]
	types  [][]string   // [nframes][nsites]
	dirout string
	fnkey  string
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	var trajfn string
	trajfn, fnkey = io.ArgToFilename(0, "data/traj", ".kmctraj", true)
	io.Pf("\n%s\n", io.ArgsTable(
		"lattice trajectory filename", "trajfn", trajfn,
	))
	dirout = "/tmp/gokmc"

	// read and parse
	read_lattice_traj(trajfn)

	// write xyz frames
	var buf bytes.Buffer
	write_xyz(&buf)
	io.WriteFile(io.Sf("%s/%s.xyz", dirout, fnkey), &buf)
}

var siteLineRe = regexp.MustCompile(`^sites=\[(.*)\]$`)
var coordRe = regexp.MustCompile(`\[\s*([^,\[\]]+),\s*([^,\[\]]+),\s*([^,\[\]]+)\s*\]`)
var timesAppendRe = regexp.MustCompile(`^times\.append\((.+)\)$`)
var stepsAppendRe = regexp.MustCompile(`^steps\.append\((.+)\)$`)
var typesAppendRe = regexp.MustCompile(`^types\.append\(\[(.*)\]\)$`)

// read_lattice_traj parses the text format written by out.LatticeTraj: a
// `sites=[[x,y,z], ...]` header line, then one `times.append`/
// `steps.append`/`types.append` triple per frame.
func read_lattice_traj(fn string) {
	f, err := os.Open(fn)
	if err != nil {
		chk.Panic("cannot open trajectory file %q:\n%v", fn, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case siteLineRe.MatchString(line):
			m := siteLineRe.FindStringSubmatch(line)
			for _, c := range coordRe.FindAllStringSubmatch(m[1], -1) {
				x := parse_float(c[1])
				y := parse_float(c[2])
				z := parse_float(c[3])
				sites = append(sites, [3]float64{x, y, z})
			}
		case timesAppendRe.MatchString(line):
			m := timesAppendRe.FindStringSubmatch(line)
			times = append(times, parse_float(m[1]))
		case stepsAppendRe.MatchString(line):
			m := stepsAppendRe.FindStringSubmatch(line)
			v, err := strconv.ParseInt(strings.TrimSpace(m[1]), 10, 64)
			if err != nil {
				chk.Panic("cannot parse step count %q:\n%v", m[1], err)
			}
			steps = append(steps, v)
		case typesAppendRe.MatchString(line):
			m := typesAppendRe.FindStringSubmatch(line)
			var row []string
			for _, tok := range strings.Split(m[1], ",") {
				row = append(row, strings.Trim(strings.TrimSpace(tok), `"`))
			}
			types = append(types, row)
		}
	}
	if err := scanner.Err(); err != nil {
		chk.Panic("error scanning trajectory file %q:\n%v", fn, err)
	}
}

func parse_float(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		chk.Panic("cannot parse float %q:\n%v", s, err)
	}
	return v
}

// write_xyz emits one STEP/TIME/atom-lines block per frame. Since the
// lattice format carries no atom_id/displacement bookkeeping, each site's
// fixed coordinate stands in for its atom position and the site index
// doubles as its atom_id.
func write_xyz(buf *bytes.Buffer) {
	io.Ff(buf, "2013.10.15\n")
	for fi := range times {
		io.Ff(buf, "STEP %d\n", steps[fi])
		io.Ff(buf, "%d\n", len(sites))
		io.Ff(buf, "TIME %.10e\n", times[fi])
		for i, p := range sites {
			io.Ff(buf, "%s %.10e %.10e %.10e %d\n", types[fi][i], p[0], p[1], p[2], i)
		}
	}
}
