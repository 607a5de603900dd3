// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cpmech/gokmc/kmc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SpeciesNamer maps a configuration's integer species codes back to the
// names a trajectory file records. inp.SpeciesTable satisfies this.
type SpeciesNamer interface {
	Name(code int) string
}

// LatticeTraj is a kmc.TrajectorySink writing the lattice-format
// trajectory: a `sites=[[x,y,z], ...]` header emitted once from the
// lattice's fixed site coordinates, followed by `times`, `steps` and
// `types` arrays each grown by one `.append(...)` call per frame. Grounded
// on fem/fileio.go's buffer-then-flush discipline (SaveSol/SaveIvs: encode
// into a bytes.Buffer, then one file write via save_file).
type LatticeTraj struct {
	Path    string
	Lattice *kmc.LatticeMap
	Species SpeciesNamer

	buf        bytes.Buffer
	headerDone bool
}

// NewLatticeTraj builds a LatticeTraj writing to path.
func NewLatticeTraj(path string, lat *kmc.LatticeMap, species SpeciesNamer) *LatticeTraj {
	return &LatticeTraj{Path: path, Lattice: lat, Species: species}
}

// EmitFrame implements kmc.TrajectorySink.
func (o *LatticeTraj) EmitFrame(step int64, time float64, cfg *kmc.Configuration, affected []int) error {
	if !o.headerDone {
		o.writeHeader()
		o.headerDone = true
	}
	io.Ff(&o.buf, "times.append(%.10e)\n", time)
	io.Ff(&o.buf, "steps.append(%d)\n", step)
	io.Ff(&o.buf, "types.append([")
	types := cfg.Elements()
	for i, t := range types {
		if i > 0 {
			io.Ff(&o.buf, ", ")
		}
		io.Ff(&o.buf, "%q", o.nameOf(t))
	}
	io.Ff(&o.buf, "])\n")
	return nil
}

func (o *LatticeTraj) nameOf(code int) string {
	if o.Species == nil {
		return fmt.Sprintf("%d", code)
	}
	return o.Species.Name(code)
}

func (o *LatticeTraj) writeHeader() {
	io.Ff(&o.buf, "sites=[")
	n := o.Lattice.NSites()
	for i := 0; i < n; i++ {
		if i > 0 {
			io.Ff(&o.buf, ", ")
		}
		c := o.Lattice.WorldCoord(i)
		io.Ff(&o.buf, "[%.10e, %.10e, %.10e]", c.X, c.Y, c.Z)
	}
	io.Ff(&o.buf, "]\n")
	io.Ff(&o.buf, "times=[]\n")
	io.Ff(&o.buf, "steps=[]\n")
	io.Ff(&o.buf, "types=[]\n")
}

// Flush implements kmc.TrajectorySink: writes the accumulated buffer to
// Path in one shot, mirroring fem/fileio.go's save_file.
func (o *LatticeTraj) Flush() error {
	f, err := os.Create(o.Path)
	if err != nil {
		return chk.Err("cannot create lattice trajectory file %q:\n%v", o.Path, err)
	}
	defer f.Close()
	_, err = f.Write(o.buf.Bytes())
	if err != nil {
		return chk.Err("cannot write lattice trajectory file %q:\n%v", o.Path, err)
	}
	return nil
}
