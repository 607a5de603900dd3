// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_lattice01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lattice01: GlobalIndex / CellOf round trip")

	lat := NewLatticeMap(3, 4, 2, 2, true, true, true,
		Coord{X: 1, Y: 0, Z: 0}, Coord{X: 0, Y: 1, Z: 0}, Coord{X: 0, Y: 0, Z: 1},
		[]Coord{{X: 0, Y: 0, Z: 0}, {X: 0.5, Y: 0.5, Z: 0.5}})

	chk.IntAssert(lat.NSites(), 3*4*2*2)

	for a := 0; a < lat.NA; a++ {
		for b := 0; b < lat.NB; b++ {
			for c := 0; c < lat.NC; c++ {
				for i := 0; i < lat.NBasis; i++ {
					gidx := lat.GlobalIndex(a, b, c, i)
					a2, b2, c2, i2 := lat.CellOf(gidx)
					if a2 != a || b2 != b || c2 != c || i2 != i {
						tst.Errorf("round trip failed: (%d,%d,%d,%d) -> %d -> (%d,%d,%d,%d)", a, b, c, i, gidx, a2, b2, c2, i2)
					}
				}
			}
		}
	}
}

func Test_lattice02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lattice02: periodic wrap vs aperiodic boundary")

	latPeriodic := NewLatticeMap(2, 2, 1, 1, true, true, true,
		Coord{X: 1, Y: 0, Z: 0}, Coord{X: 0, Y: 1, Z: 0}, Coord{X: 0, Y: 0, Z: 1},
		[]Coord{{X: 0, Y: 0, Z: 0}})

	// (0,0,0) shifted by (-1,0,0) must wrap to (1,0,0)
	gidx := latPeriodic.GlobalIndex(0, 0, 0, 0)
	n, ok := latPeriodic.Neighbor(gidx, CellOffset{Da: -1})
	if !ok {
		tst.Errorf("periodic neighbor should always resolve")
	}
	want := latPeriodic.GlobalIndex(1, 0, 0, 0)
	chk.IntAssert(n, want)

	latAperiodic := NewLatticeMap(2, 2, 1, 1, false, false, true,
		Coord{X: 1, Y: 0, Z: 0}, Coord{X: 0, Y: 1, Z: 0}, Coord{X: 0, Y: 0, Z: 1},
		[]Coord{{X: 0, Y: 0, Z: 0}})
	gidx = latAperiodic.GlobalIndex(0, 0, 0, 0)
	_, ok = latAperiodic.Neighbor(gidx, CellOffset{Da: -1})
	if ok {
		tst.Errorf("aperiodic axis must never produce a wrapped neighbor")
	}
}

func Test_lattice03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lattice03: WorldCoord uses cell transform and basis offset")

	lat := NewLatticeMap(2, 2, 2, 2, true, true, true,
		Coord{X: 2, Y: 0, Z: 0}, Coord{X: 0, Y: 2, Z: 0}, Coord{X: 0, Y: 0, Z: 2},
		[]Coord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}})

	gidx := lat.GlobalIndex(1, 1, 0, 1)
	want := Coord{X: 2 + 1, Y: 2 + 1, Z: 0 + 1}
	got := lat.WorldCoord(gidx)
	if !got.Close(want) {
		tst.Errorf("WorldCoord mismatch: got %+v, want %+v", got, want)
	}
}
