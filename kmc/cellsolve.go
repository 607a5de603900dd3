// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "math"

// solve3x3 solves M*x = rhs for a 3x3 matrix M given as three column
// vectors (colA, colB, colC), using Cramer's rule. ok is false when M is
// singular (det ~ 0).
func solve3x3(colA, colB, colC, rhs Coord) (x, y, z float64, ok bool) {
	det := det3(colA, colB, colC)
	if math.Abs(det) < 1e-13 {
		return 0, 0, 0, false
	}
	x = det3(rhs, colB, colC) / det
	y = det3(colA, rhs, colC) / det
	z = det3(colA, colB, rhs) / det
	return x, y, z, true
}

// det3 returns the determinant of the 3x3 matrix whose columns are c1,c2,c3.
func det3(c1, c2, c3 Coord) float64 {
	return c1.X*(c2.Y*c3.Z-c2.Z*c3.Y) -
		c2.X*(c1.Y*c3.Z-c1.Z*c3.Y) +
		c3.X*(c1.Y*c2.Z-c1.Z*c2.Y)
}

// resolveCellOffset finds the integer stencil offset (Da,Db,Dc,Di) that
// reproduces the world-space offset vector from centerBasis, by trying every
// candidate target basis point and solving for integer cell repetitions.
// It is the geometric inverse of LatticeMap.Neighbor/WorldCoord.
func resolveCellOffset(lat *LatticeMap, centerBasis int, offset Coord) (CellOffset, bool) {
	for i2 := 0; i2 < lat.NBasis; i2++ {
		target := offset.Sub(lat.BasisCoords[i2]).Add(lat.BasisCoords[centerBasis])
		da, db, dc, ok := solve3x3(lat.CellA, lat.CellB, lat.CellC, target)
		if !ok {
			continue
		}
		rda, rdb, rdc := math.Round(da), math.Round(db), math.Round(dc)
		if math.Abs(da-rda) > 1e-6 || math.Abs(db-rdb) > 1e-6 || math.Abs(dc-rdc) > 1e-6 {
			continue
		}
		got := lat.CellA.Scale(rda).Add(lat.CellB.Scale(rdb)).Add(lat.CellC.Scale(rdc))
		if !got.Close(target) {
			continue
		}
		return CellOffset{Da: int(rda), Db: int(rdb), Dc: int(rdc), Di: i2 - centerBasis}, true
	}
	return CellOffset{}, false
}
