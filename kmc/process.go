// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

// Process is one elementary rewrite rule: an ordered local match list, the
// basis sites it may apply at, a base rate, redistribution/fast flags, and
// the set of sites at which it currently matches.
//
// Processes are owned by Interactions in a contiguous slice; nothing else
// keeps a Process by value, so external code refers to a process only by
// its integer id (see Interactions.ProcessByID).
type Process struct {
	id            int
	Name          string
	MatchList     []MatchListEntry
	BasisSites    map[int]bool
	Rate          float64
	Fast          bool
	Redist        bool
	RedistSpecies int // species code; meaningful only if Redist

	Available *AvailableSet // sites where this process currently matches

	// cellOffsets[b] is the per-entry resolved CellOffset for MatchList
	// when the process is centered on basis b; nil if b is not in
	// BasisSites. Precomputed once at construction, so MatchesAt/
	// PerformMove never solve geometry on the hot path.
	cellOffsets [][]CellOffset

	// invCellOffsets[b][k] is the negation of cellOffsets[b][k]: added to a
	// changed site's gidx, it yields the candidate center from which entry k
	// (when centered on basis b) would have reached that site. Interactions
	// walks this table to find every process/center pair that might need
	// re-evaluation after a site changes, without rescanning the lattice.
	invCellOffsets [][]CellOffset
}

// NewProcess validates rate/basis and geometrically resolves matchList
// against lat for every basis site in basisSites.
func NewProcess(lat *LatticeMap, name string, matchList []MatchListEntry, basisSites map[int]bool, rate float64, fast, redist bool, redistSpecies int) (*Process, error) {
	if rate <= 0 {
		return nil, NewValidationError("process %q: rate must be > 0, got %v", name, rate)
	}
	if len(basisSites) == 0 {
		return nil, NewValidationError("process %q: basis_sites must not be empty", name)
	}
	offsets := make([][]CellOffset, lat.NBasis)
	invOffsets := make([][]CellOffset, lat.NBasis)
	for b := range basisSites {
		if b < 0 || b >= lat.NBasis {
			return nil, NewValidationError("process %q: basis site %d out of range [0,%d)", name, b, lat.NBasis)
		}
		row := make([]CellOffset, len(matchList))
		invRow := make([]CellOffset, len(matchList))
		for k, e := range matchList {
			co, ok := resolveCellOffset(lat, b, e.Offset)
			if !ok {
				return nil, NewValidationError("process %q: offset %+v unreachable from basis %d", name, e.Offset, b)
			}
			row[k] = co
			invRow[k] = CellOffset{Da: -co.Da, Db: -co.Db, Dc: -co.Dc, Di: -co.Di}
		}
		offsets[b] = row
		invOffsets[b] = invRow
	}
	return &Process{
		Name: name, MatchList: matchList, BasisSites: basisSites, Rate: rate,
		Fast: fast, Redist: redist, RedistSpecies: redistSpecies,
		cellOffsets: offsets, invCellOffsets: invOffsets,
	}, nil
}

// ID returns this process's stable integer identifier, assigned once by
// Interactions at construction time and never reused.
func (p *Process) ID() int { return p.id }

// offsetsFor returns the per-entry CellOffset row for centering this
// process on basis b, or nil if b is not one of its basis sites.
func (p *Process) offsetsFor(b int) []CellOffset {
	if b < 0 || b >= len(p.cellOffsets) {
		return nil
	}
	return p.cellOffsets[b]
}

// candidateCentersInto appends to out every gidx' from which this process,
// centered there, could have an entry that reaches the changed site gidx —
// the set of centers whose match status might now differ. Duplicates are
// possible (distinct entries landing on the same center) and harmless: the
// caller's Available.Add/Remove are idempotent.
func (p *Process) candidateCentersInto(lat *LatticeMap, gidx int, out []int) []int {
	for b, row := range p.invCellOffsets {
		if row == nil {
			continue
		}
		for _, inv := range row {
			c, ok := lat.Neighbor(gidx, inv)
			if ok && lat.BasisOf(c) == b {
				out = append(out, c)
			}
		}
	}
	return out
}

// Neighbors resolves every match-list neighbor of this process when
// centered at gidx, in match-list order, for callers (e.g. a
// RateCalculator) that need the local configuration without reaching into
// unexported geometry. An entry is -1 where the neighbor falls outside an
// aperiodic boundary.
func (p *Process) Neighbors(lat *LatticeMap, gidx int) []int {
	row := p.offsetsFor(lat.BasisOf(gidx))
	if row == nil {
		return nil
	}
	out := make([]int, len(row))
	for k, off := range row {
		if n, ok := lat.Neighbor(gidx, off); ok {
			out[k] = n
		} else {
			out[k] = -1
		}
	}
	return out
}

// MatchesAt walks p's match list starting at gidx and reports whether every
// entry matches the current configuration and sites map.
func (p *Process) MatchesAt(lat *LatticeMap, cfg *Configuration, sites *SitesMap, gidx int) bool {
	row := p.offsetsFor(lat.BasisOf(gidx))
	if row == nil {
		return false
	}
	for k, e := range p.MatchList {
		nidx, ok := lat.Neighbor(gidx, row[k])
		if !ok {
			return false
		}
		if e.MatchType != Wildcard && e.MatchType != cfg.Types[nidx] {
			return false
		}
		if e.SiteType != Wildcard && e.SiteType != sites.Type(nidx) {
			return false
		}
	}
	return true
}
