// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

// TwoStateFlip is the closed-form detailed-balance prediction for a
// single-site two-species flip (A<->B, no neighbor dependence): at
// equilibrium the forward and backward fluxes balance,
// nA*rateAB == nB*rateBA, so the equilibrium fraction of A is
// rateBA/(rateAB+rateBA). It states in closed form the "rate calculator
// returning a constant c behaves like rescaling the base rates by c"
// invariant; only this package's own tests use it. Grounded on
// pressurised_cylinder.go's role: a closed-form
// reference a test compares a numerical result against.
type TwoStateFlip struct {
	RateAB float64 // rate of A -> B
	RateBA float64 // rate of B -> A
}

// FractionA returns the equilibrium fraction of sites occupied by A.
func (o TwoStateFlip) FractionA() float64 {
	return o.RateBA / (o.RateAB + o.RateBA)
}

// FractionB returns the equilibrium fraction of sites occupied by B.
func (o TwoStateFlip) FractionB() float64 {
	return o.RateAB / (o.RateAB + o.RateBA)
}

// Scale returns the equivalent flip with both rates scaled by c,
// predicting the same equilibrium fractions (only the approach speed
// changes) -- the closed form behind the "constant rate-calculator
// factor" testable property.
func (o TwoStateFlip) Scale(c float64) TwoStateFlip {
	return TwoStateFlip{RateAB: o.RateAB * c, RateBA: o.RateBA * c}
}
