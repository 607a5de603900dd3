// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "github.com/cpmech/gosl/chk"

// CellOffset is a relative (Δa, Δb, Δc, Δi) stencil offset: Δa/Δb/Δc shift
// unit cells along each lattice axis, Δi shifts the basis index within a
// cell.
type CellOffset struct {
	Da, Db, Dc, Di int
}

// LatticeMap is the immutable, periodic index of the lattice: global index
// (gidx) in [0, NA*NB*NC*NBasis) under the layout (a,b,c,i) with i fastest.
// It is built once from a frozen geometry provider and never mutated.
type LatticeMap struct {
	NA, NB, NC, NBasis             int
	PeriodicA, PeriodicB, PeriodicC bool
	CellA, CellB, CellC             Coord // cell (lattice) vectors
	BasisCoords                     []Coord // [NBasis] offsets within a cell
}

// NewLatticeMap builds a LatticeMap. It panics with a ValidationError if the
// repetitions or basis are inconsistent.
func NewLatticeMap(na, nb, nc, nbasis int, periodicA, periodicB, periodicC bool, cellA, cellB, cellC Coord, basis []Coord) *LatticeMap {
	if na <= 0 || nb <= 0 || nc <= 0 || nbasis <= 0 {
		chk.Panic("%v", NewValidationError("lattice repetitions and basis size must be positive: na=%d nb=%d nc=%d nbasis=%d", na, nb, nc, nbasis))
	}
	if len(basis) != nbasis {
		chk.Panic("%v", NewValidationError("basis has %d entries but nbasis=%d", len(basis), nbasis))
	}
	return &LatticeMap{
		NA: na, NB: nb, NC: nc, NBasis: nbasis,
		PeriodicA: periodicA, PeriodicB: periodicB, PeriodicC: periodicC,
		CellA: cellA, CellB: cellB, CellC: cellC,
		BasisCoords: append([]Coord(nil), basis...),
	}
}

// NSites returns the total number of sites NA*NB*NC*NBasis.
func (o *LatticeMap) NSites() int { return o.NA * o.NB * o.NC * o.NBasis }

// GlobalIndex computes the dense index for cell (a,b,c) and basis i.
func (o *LatticeMap) GlobalIndex(a, b, c, i int) int {
	return ((a*o.NB)+b)*o.NC*o.NBasis + c*o.NBasis + i
}

// CellOf is the inverse of GlobalIndex.
func (o *LatticeMap) CellOf(gidx int) (a, b, c, i int) {
	i = gidx % o.NBasis
	rest := gidx / o.NBasis
	c = rest % o.NC
	rest /= o.NC
	b = rest % o.NB
	a = rest / o.NB
	return
}

// IndicesFromCell returns the NBasis global indices belonging to cell (a,b,c).
func (o *LatticeMap) IndicesFromCell(a, b, c int) []int {
	out := make([]int, o.NBasis)
	for i := 0; i < o.NBasis; i++ {
		out[i] = o.GlobalIndex(a, b, c, i)
	}
	return out
}

// BasisOf returns the basis index of gidx (fourth coordinate, fastest axis).
func (o *LatticeMap) BasisOf(gidx int) int { return gidx % o.NBasis }

// WorldCoord returns the Cartesian coordinate of gidx using the cell
// transform and the basis offsets.
func (o *LatticeMap) WorldCoord(gidx int) Coord {
	a, b, c, i := o.CellOf(gidx)
	return o.CellA.Scale(float64(a)).Add(o.CellB.Scale(float64(b))).Add(o.CellC.Scale(float64(c))).Add(o.BasisCoords[i])
}

// wrap wraps v into [0, n) if periodic is true; otherwise it returns
// (v, true) only when v is already in range, (0, false) otherwise.
func wrap(v, n int, periodic bool) (int, bool) {
	if periodic {
		v %= n
		if v < 0 {
			v += n
		}
		return v, true
	}
	if v < 0 || v >= n {
		return 0, false
	}
	return v, true
}

// Neighbor resolves the neighbor of gidx under offset, honoring periodicity
// per axis. ok is false when an aperiodic axis would leave the box (or the
// basis offset leaves [0, NBasis)); no selection is made in that case.
func (o *LatticeMap) Neighbor(gidx int, off CellOffset) (nidx int, ok bool) {
	a, b, c, i := o.CellOf(gidx)
	na, okA := wrap(a+off.Da, o.NA, o.PeriodicA)
	nb, okB := wrap(b+off.Db, o.NB, o.PeriodicB)
	nc, okC := wrap(c+off.Dc, o.NC, o.PeriodicC)
	ni, okI := wrap(i+off.Di, o.NBasis, false)
	if !okA || !okB || !okC || !okI {
		return 0, false
	}
	return o.GlobalIndex(na, nb, nc, ni), true
}

// NeighborsInto resolves a whole stencil of offsets for gidx into the
// caller-supplied buffers (reused across calls so the hot path allocates
// nothing). idxs and oks must have len(offsets) capacity.
func (o *LatticeMap) NeighborsInto(gidx int, offsets []CellOffset, idxs []int, oks []bool) {
	for k, off := range offsets {
		idxs[k], oks[k] = o.Neighbor(gidx, off)
	}
}
