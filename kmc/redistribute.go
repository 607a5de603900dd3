// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "sort"

// SplitRandomDistributor partitions the lattice into nsplits equal
// sub-boxes and, within each, shuffles the positions of species in
// FastSpecies (skipping any site SlowIndices marks excluded), preserving
// per-sub-box species counts exactly. This is the default distributor_type.
type SplitRandomDistributor struct {
	NSplitsA, NSplitsB, NSplitsC int
	FastSpecies                  map[int]bool
	SlowIndices                  func(lat *LatticeMap) map[int]bool // optional
}

// Redistribute implements Redistributor.
func (d *SplitRandomDistributor) Redistribute(lat *LatticeMap, cfg *Configuration, sites *SitesMap, inter *Interactions, rng PRNG) ([]int, error) {
	sa, sb, sc := d.NSplitsA, d.NSplitsB, d.NSplitsC
	if sa <= 0 {
		sa = 1
	}
	if sb <= 0 {
		sb = 1
	}
	if sc <= 0 {
		sc = 1
	}
	if lat.NA%sa != 0 || lat.NB%sb != 0 || lat.NC%sc != 0 {
		return nil, NewValidationError("nsplits (%d,%d,%d) must evenly divide lattice repetitions (%d,%d,%d)", sa, sb, sc, lat.NA, lat.NB, lat.NC)
	}
	wa, wb, wc := lat.NA/sa, lat.NB/sb, lat.NC/sc

	var excluded map[int]bool
	if d.SlowIndices != nil {
		excluded = d.SlowIndices(lat)
	}

	var affected []int
	var positions, species []int
	for boxA := 0; boxA < sa; boxA++ {
		for boxB := 0; boxB < sb; boxB++ {
			for boxC := 0; boxC < sc; boxC++ {
				positions = positions[:0]
				species = species[:0]
				for a := boxA * wa; a < (boxA+1)*wa; a++ {
					for b := boxB * wb; b < (boxB+1)*wb; b++ {
						for c := boxC * wc; c < (boxC+1)*wc; c++ {
							for i := 0; i < lat.NBasis; i++ {
								gidx := lat.GlobalIndex(a, b, c, i)
								if excluded != nil && excluded[gidx] {
									continue
								}
								if !d.FastSpecies[cfg.Types[gidx]] {
									continue
								}
								positions = append(positions, gidx)
								species = append(species, cfg.Types[gidx])
							}
						}
					}
				}
				shuffleInts(species, rng)
				for k, gidx := range positions {
					cfg.Types[gidx] = species[k]
				}
				affected = append(affected, positions...)
			}
		}
	}
	sort.Ints(affected)
	if err := inter.RebuildAll(); err != nil {
		return affected, err
	}
	return affected, nil
}

// shuffleInts performs a Fisher-Yates shuffle of vals in place using rng.
func shuffleInts(vals []int, rng PRNG) {
	for k := len(vals) - 1; k > 0; k-- {
		j := int(rng.Float64() * float64(k+1))
		if j > k {
			j = k
		}
		vals[k], vals[j] = vals[j], vals[k]
	}
}

// ProcessRandomDistributor randomly applies processes marked Redist at
// vacant (EmptyElement) sites until the occupied fraction of the lattice
// reaches TargetDensity. Species conservation is not required: the target
// density, not a fixed multiset, is the stopping criterion (§4.9's
// "designated density target", made concrete here; see DESIGN.md).
type ProcessRandomDistributor struct {
	EmptyElement  int
	TargetDensity float64
	// MaxAttempts bounds the random-probe loop if the target is
	// unreachable (e.g. no redist process ever matches); default is
	// 10 * lattice site count.
	MaxAttempts int
}

// Redistribute implements Redistributor.
func (d *ProcessRandomDistributor) Redistribute(lat *LatticeMap, cfg *Configuration, sites *SitesMap, inter *Interactions, rng PRNG) ([]int, error) {
	var redistProcs []*Process
	for _, p := range inter.Processes() {
		if p.Redist {
			redistProcs = append(redistProcs, p)
		}
	}
	if len(redistProcs) == 0 {
		return nil, nil
	}
	maxAttempts := d.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 10 * lat.NSites()
	}

	density := func() float64 {
		occ := 0
		for _, t := range cfg.Types {
			if t != d.EmptyElement {
				occ++
			}
		}
		return float64(occ) / float64(len(cfg.Types))
	}

	affectedSet := make(map[int]bool)
	buf := newNeighborBuf(8)
	for attempt := 0; attempt < maxAttempts && density() < d.TargetDensity; attempt++ {
		p := redistProcs[pickIndex(len(redistProcs), rng)]
		gidx := pickIndex(lat.NSites(), rng)
		if lat.BasisOf(gidx) < 0 || !p.BasisSites[lat.BasisOf(gidx)] {
			continue
		}
		if cfg.Types[gidx] != d.EmptyElement {
			continue // empty_element gate: only apply where currently vacant
		}
		if !p.MatchesAt(lat, cfg, sites, gidx) {
			continue
		}
		changed := cfg.PerformMove(lat, p, gidx, buf)
		affectedSet[gidx] = true
		for _, c := range changed {
			affectedSet[c] = true
		}
	}

	affected := make([]int, 0, len(affectedSet))
	for g := range affectedSet {
		affected = append(affected, g)
	}
	sort.Ints(affected)
	if err := inter.RebuildAll(); err != nil {
		return affected, err
	}
	return affected, nil
}

func pickIndex(n int, rng PRNG) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
