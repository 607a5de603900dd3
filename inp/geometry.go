// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a (.kmc) JSON control
// file: lattice geometry, control parameters, and process definitions.
package inp

import (
	"github.com/cpmech/gokmc/kmc"
	"github.com/cpmech/gosl/chk"
)

// Geometry is the frozen, JSON-decodable description of a lattice, read
// once from a control file before a kmc.LatticeMap is built from it.
type Geometry struct {
	A, B, C    [3]float64   `json:"a_b_c"` // cell vectors
	Basis      [][3]float64 `json:"basis"` // basis point offsets within a cell
	NA, NB, NC int          `json:"repetitions"`
	PeriodicA  bool         `json:"periodic_a"`
	PeriodicB  bool         `json:"periodic_b"`
	PeriodicC  bool         `json:"periodic_c"`
}

// SetDefault assigns a single-cell, fully periodic 1x1x1 default, matching
// inp.Data's own SetDefault idiom.
func (o *Geometry) SetDefault() {
	o.A = [3]float64{1, 0, 0}
	o.B = [3]float64{0, 1, 0}
	o.C = [3]float64{0, 0, 1}
	o.Basis = [][3]float64{{0, 0, 0}}
	o.NA, o.NB, o.NC = 1, 1, 1
	o.PeriodicA, o.PeriodicB, o.PeriodicC = true, true, true
}

// Validate checks internal consistency, mirroring SolverData.PostProcess's
// post-read validation role.
func (o *Geometry) Validate() error {
	if o.NA <= 0 || o.NB <= 0 || o.NC <= 0 {
		return kmc.NewValidationError("geometry: repetitions must be positive, got (%d,%d,%d)", o.NA, o.NB, o.NC)
	}
	if len(o.Basis) == 0 {
		return kmc.NewValidationError("geometry: basis must have at least one point")
	}
	return nil
}

// ToLatticeMap builds the immutable kmc.LatticeMap the core consumes.
func (o *Geometry) ToLatticeMap() *kmc.LatticeMap {
	if err := o.Validate(); err != nil {
		chk.Panic("%v", err)
	}
	basis := make([]kmc.Coord, len(o.Basis))
	for i, b := range o.Basis {
		basis[i] = kmc.Coord{X: b[0], Y: b[1], Z: b[2]}
	}
	return kmc.NewLatticeMap(o.NA, o.NB, o.NC, len(o.Basis),
		o.PeriodicA, o.PeriodicB, o.PeriodicC,
		kmc.Coord{X: o.A[0], Y: o.A[1], Z: o.A[2]},
		kmc.Coord{X: o.B[0], Y: o.B[1], Z: o.B[2]},
		kmc.Coord{X: o.C[0], Y: o.C[1], Z: o.C[2]},
		basis)
}

// WorldCoord computes the Cartesian coordinate of cell (a,b,c), basis i,
// directly from the raw geometry fields — usable before any LatticeMap
// exists (e.g. while still validating a control file). kmc.LatticeMap.
// WorldCoord is the post-construction equivalent used on the hot path.
func (o *Geometry) WorldCoord(a, b, c, i int) kmc.Coord {
	cellA := kmc.Coord{X: o.A[0], Y: o.A[1], Z: o.A[2]}
	cellB := kmc.Coord{X: o.B[0], Y: o.B[1], Z: o.B[2]}
	cellC := kmc.Coord{X: o.C[0], Y: o.C[1], Z: o.C[2]}
	basis := kmc.Coord{X: o.Basis[i][0], Y: o.Basis[i][1], Z: o.Basis[i][2]}
	return cellA.Scale(float64(a)).Add(cellB.Scale(float64(b))).Add(cellC.Scale(float64(c))).Add(basis)
}
