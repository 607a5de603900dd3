// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_configuration01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("configuration01: AtomIDCoord starts at each atom's own site, absolute, not relative")

	lat := simpleChainLattice()
	cfg := NewConfiguration(lat, []int{1, 2, 1, 2})
	for gidx := 0; gidx < lat.NSites(); gidx++ {
		if !cfg.AtomIDCoord[gidx].Close(lat.WorldCoord(gidx)) {
			tst.Errorf("atom %d should start at its own site's world coordinate", gidx)
		}
	}
}

func Test_configuration02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("configuration02: PerformMove lands a swapped atom exactly on its destination's world coordinate")

	lat := simpleChainLattice()
	p := abSwapProcess(tst, lat)
	cfg := NewConfiguration(lat, []int{1, 2, 1, 2})

	changed := cfg.PerformMove(lat, p, 0, nil)
	if len(changed) != 2 {
		tst.Errorf("expected 2 sites rewritten, got %d", len(changed))
	}
	chk.IntAssert(cfg.Types[0], 2)
	chk.IntAssert(cfg.Types[1], 1)

	// atom_id 0 started at gidx 0 and swapped into gidx 1: its absolute
	// coordinate must land exactly on gidx 1's world coordinate, not be
	// offset from it.
	want := lat.WorldCoord(1)
	if !cfg.AtomIDCoord[0].Close(want) {
		tst.Errorf("atom_id 0 should be at %+v, got %+v", want, cfg.AtomIDCoord[0])
	}
	want0 := lat.WorldCoord(0)
	if !cfg.AtomIDCoord[1].Close(want0) {
		tst.Errorf("atom_id 1 should be at %+v, got %+v", want0, cfg.AtomIDCoord[1])
	}
}
