// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// countPerBox tallies species counts in each sub-box of a (sa,sb,sc) split,
// used to check that SplitRandomDistributor conserves per-box multisets.
func countPerBox(lat *LatticeMap, cfg *Configuration, sa, sb, sc int) map[[3]int]map[int]int {
	wa, wb, wc := lat.NA/sa, lat.NB/sb, lat.NC/sc
	counts := make(map[[3]int]map[int]int)
	for a := 0; a < lat.NA; a++ {
		for b := 0; b < lat.NB; b++ {
			for c := 0; c < lat.NC; c++ {
				box := [3]int{a / wa, b / wb, c / wc}
				if counts[box] == nil {
					counts[box] = make(map[int]int)
				}
				for i := 0; i < lat.NBasis; i++ {
					gidx := lat.GlobalIndex(a, b, c, i)
					counts[box][cfg.Types[gidx]]++
				}
			}
		}
	}
	return counts
}

func Test_redistribute01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("redistribute01: split-box shuffle preserves per-box species counts")

	lat := NewLatticeMap(4, 4, 4, 2, true, true, true,
		Coord{X: 1, Y: 0, Z: 0}, Coord{X: 0, Y: 1, Z: 0}, Coord{X: 0, Y: 0, Z: 1},
		[]Coord{{X: 0, Y: 0, Z: 0}, {X: 0.5, Y: 0, Z: 0}})
	n := lat.NSites()
	types := make([]int, n)
	for i := range types {
		types[i] = 3 // vacancy (fast species)
	}
	// place 2 A's and 2 B's, rest vacancy
	types[0] = 1
	types[1] = 1
	types[2] = 2
	types[3] = 2

	cfg := NewConfiguration(lat, types)
	sites := NewSitesMap(lat, make([]int, n))
	inter, err := NewInteractions(lat, cfg, sites, nil, nil)
	if err != nil {
		tst.Fatalf("NewInteractions failed: %v", err)
	}

	before := countPerBox(lat, cfg, 2, 2, 2)

	dist := &SplitRandomDistributor{NSplitsA: 2, NSplitsB: 2, NSplitsC: 2, FastSpecies: map[int]bool{3: true}}
	rng, err := NewPRNG(MT, 99)
	if err != nil {
		tst.Fatalf("NewPRNG failed: %v", err)
	}
	if _, err := dist.Redistribute(lat, cfg, sites, inter, rng); err != nil {
		tst.Fatalf("Redistribute failed: %v", err)
	}

	after := countPerBox(lat, cfg, 2, 2, 2)

	for box, wantCounts := range before {
		gotCounts := after[box]
		for species, wantN := range wantCounts {
			if gotCounts[species] != wantN {
				tst.Errorf("box %v species %d: want count %d, got %d", box, species, wantN, gotCounts[species])
			}
		}
	}

	// non-fast species (A, B) must not have moved at all, since only
	// species marked fast are eligible for shuffling.
	if cfg.Types[0] != 1 || cfg.Types[1] != 1 {
		tst.Errorf("non-fast species A unexpectedly moved: Types[0]=%d Types[1]=%d", cfg.Types[0], cfg.Types[1])
	}
}

func Test_redistribute02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("redistribute02: process-random distributor approaches target density")

	lat := NewLatticeMap(6, 6, 1, 1, true, true, true,
		Coord{X: 1, Y: 0, Z: 0}, Coord{X: 0, Y: 1, Z: 0}, Coord{X: 0, Y: 0, Z: 1},
		[]Coord{{X: 0, Y: 0, Z: 0}})
	n := lat.NSites()
	types := make([]int, n) // all vacant (species 2; 0 is the wildcard)
	for i := range types {
		types[i] = 2
	}

	cfg := NewConfiguration(lat, types)
	sites := NewSitesMap(lat, make([]int, n))

	// deposit process: empty (2) -> species 1, matches any vacant site
	entries, err := BuildMatchList(NewBuildInput([]Coord{{X: 0, Y: 0, Z: 0}}, []int{2}, []int{1}, nil, nil))
	if err != nil {
		tst.Fatalf("BuildMatchList failed: %v", err)
	}
	p, err := NewProcess(lat, "deposit", entries, map[int]bool{0: true}, 1.0, false, true, Wildcard)
	if err != nil {
		tst.Fatalf("NewProcess failed: %v", err)
	}

	inter, err := NewInteractions(lat, cfg, sites, []*Process{p}, nil)
	if err != nil {
		tst.Fatalf("NewInteractions failed: %v", err)
	}

	dist := &ProcessRandomDistributor{EmptyElement: 2, TargetDensity: 0.5}
	rng, err := NewPRNG(MT, 7)
	if err != nil {
		tst.Fatalf("NewPRNG failed: %v", err)
	}
	if _, err := dist.Redistribute(lat, cfg, sites, inter, rng); err != nil {
		tst.Fatalf("Redistribute failed: %v", err)
	}

	occ := 0
	for _, t := range cfg.Types {
		if t != 2 {
			occ++
		}
	}
	density := float64(occ) / float64(n)
	if density < 0.49 {
		tst.Errorf("density %v did not reach target 0.5 within max attempts", density)
	}
}
