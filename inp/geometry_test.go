// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_geometry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry01: SetDefault gives a valid single-cell periodic lattice")

	var g Geometry
	g.SetDefault()
	if err := g.Validate(); err != nil {
		tst.Fatalf("default geometry should validate: %v", err)
	}
	lat := g.ToLatticeMap()
	chk.IntAssert(lat.NSites(), 1)
}

func Test_geometry02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry02: Validate rejects non-positive repetitions and empty basis")

	var g Geometry
	g.SetDefault()
	g.NA = 0
	if err := g.Validate(); err == nil {
		tst.Errorf("expected a ValidationError for NA <= 0")
	}

	var g2 Geometry
	g2.SetDefault()
	g2.Basis = nil
	if err := g2.Validate(); err == nil {
		tst.Errorf("expected a ValidationError for an empty basis")
	}
}

func Test_geometry03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry03: WorldCoord agrees with the constructed LatticeMap")

	var g Geometry
	g.A = [3]float64{2, 0, 0}
	g.B = [3]float64{0, 1, 0}
	g.C = [3]float64{0, 0, 1}
	g.Basis = [][3]float64{{0, 0, 0}, {1, 0, 0}}
	g.NA, g.NB, g.NC = 3, 2, 1
	g.PeriodicA, g.PeriodicB, g.PeriodicC = true, true, true

	lat := g.ToLatticeMap()
	for a := 0; a < g.NA; a++ {
		for b := 0; b < g.NB; b++ {
			for i := 0; i < len(g.Basis); i++ {
				gidx := lat.GlobalIndex(a, b, 0, i)
				want := g.WorldCoord(a, b, 0, i)
				got := lat.WorldCoord(gidx)
				if !got.Close(want) {
					tst.Errorf("WorldCoord(%d,%d,0,%d): got %+v, want %+v", a, b, i, got, want)
				}
			}
		}
	}
}
