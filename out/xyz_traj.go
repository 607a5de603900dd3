// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"

	"github.com/cpmech/gokmc/kmc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// XYZTraj is a kmc.TrajectorySink writing the xyz-format trajectory: a
// fixed preamble (format version, cell vectors, repetitions, periodicity)
// followed by one `STEP`/count/`TIME`/atom-lines block per frame, with
// per-atom coordinates taken directly from the configuration's absolute
// atom_id coordinates. Grounded on tools/Msh2vtu.go's buffer-building idiom
// and fem/fileio.go's buffer-then-flush discipline.
type XYZTraj struct {
	Path    string
	Lattice *kmc.LatticeMap
	Species SpeciesNamer

	A, B, C           kmc.Coord
	PeriodicA         bool
	PeriodicB         bool
	PeriodicC         bool

	buf          bytes.Buffer
	preambleDone bool
}

// NewXYZTraj builds an XYZTraj writing to path; a, b, c are the lattice's
// cell vectors.
func NewXYZTraj(path string, lat *kmc.LatticeMap, species SpeciesNamer, a, b, c kmc.Coord, periodicA, periodicB, periodicC bool) *XYZTraj {
	return &XYZTraj{Path: path, Lattice: lat, Species: species, A: a, B: b, C: c,
		PeriodicA: periodicA, PeriodicB: periodicB, PeriodicC: periodicC}
}

// EmitFrame implements kmc.TrajectorySink.
func (o *XYZTraj) EmitFrame(step int64, time float64, cfg *kmc.Configuration, affected []int) error {
	if !o.preambleDone {
		o.writePreamble()
		o.preambleDone = true
	}
	types := cfg.Elements()
	atomIDs := cfg.AtomIDElements()
	coords := cfg.AtomIDCoordinates()
	n := len(types)

	io.Ff(&o.buf, "STEP %d\n", step)
	io.Ff(&o.buf, "%d\n", n)
	io.Ff(&o.buf, "TIME %.10e\n", time)
	for gidx := 0; gidx < n; gidx++ {
		id := atomIDs[gidx]
		p := coords[id]
		io.Ff(&o.buf, "%s %.10e %.10e %.10e %d\n", o.nameOf(types[gidx]), p.X, p.Y, p.Z, id)
	}
	return nil
}

func (o *XYZTraj) nameOf(code int) string {
	if o.Species == nil {
		return "?"
	}
	return o.Species.Name(code)
}

func (o *XYZTraj) writePreamble() {
	io.Ff(&o.buf, "2013.10.15\n")
	io.Ff(&o.buf, "%.10e %.10e %.10e\n", o.A.X, o.A.Y, o.A.Z)
	io.Ff(&o.buf, "%.10e %.10e %.10e\n", o.B.X, o.B.Y, o.B.Z)
	io.Ff(&o.buf, "%.10e %.10e %.10e\n", o.C.X, o.C.Y, o.C.Z)
	io.Ff(&o.buf, "REPETITIONS %d %d %d\n", o.Lattice.NA, o.Lattice.NB, o.Lattice.NC)
	io.Ff(&o.buf, "PERIODICITY %s %s %s\n", boolWord(o.PeriodicA), boolWord(o.PeriodicB), boolWord(o.PeriodicC))
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Flush implements kmc.TrajectorySink.
func (o *XYZTraj) Flush() error {
	f, err := os.Create(o.Path)
	if err != nil {
		return chk.Err("cannot create xyz trajectory file %q:\n%v", o.Path, err)
	}
	defer f.Close()
	_, err = f.Write(o.buf.Bytes())
	if err != nil {
		return chk.Err("cannot write xyz trajectory file %q:\n%v", o.Path, err)
	}
	return nil
}
