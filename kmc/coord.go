// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kmc implements the lattice kinetic Monte Carlo simulation kernel
package kmc

import "math"

// Tol is the tolerance used when comparing Coord values for equality.
const Tol = 1e-8

// Coord is a point or offset in world (or cell) space.
type Coord struct {
	X, Y, Z float64
}

// Add returns a+b.
func (a Coord) Add(b Coord) Coord {
	return Coord{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b.
func (a Coord) Sub(b Coord) Coord {
	return Coord{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Coord) Scale(s float64) Coord {
	return Coord{a.X * s, a.Y * s, a.Z * s}
}

// Norm returns the Euclidean length of a.
func (a Coord) Norm() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Close reports whether a and b are equal within Tol.
func (a Coord) Close(b Coord) bool {
	return math.Abs(a.X-b.X) < Tol && math.Abs(a.Y-b.Y) < Tol && math.Abs(a.Z-b.Z) < Tol
}

// Less implements the canonical tiebreak order on (x, y, z); used to break
// ties between match-list entries at the same distance from the center.
func (a Coord) Less(b Coord) bool {
	if math.Abs(a.X-b.X) >= Tol {
		return a.X < b.X
	}
	if math.Abs(a.Y-b.Y) >= Tol {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
