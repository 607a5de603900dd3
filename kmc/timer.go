// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "math"

// Timer holds the continuous simulation clock and the last time increment.
type Timer struct {
	Time  float64
	LastDt float64
}

// NewTimer returns a Timer starting at startTime.
func NewTimer(startTime float64) *Timer {
	return &Timer{Time: startTime}
}

// Advance draws u from rng and advances time by δt = -ln(u)/totalRate. It
// panics if totalRate <= 0: callers must check Interactions.TotalRate()
// first and raise NoAvailableProcessError themselves, since only the driver
// knows the current step number to attach to that error.
func (o *Timer) Advance(totalRate float64, rng PRNG) float64 {
	if totalRate <= 0 {
		panic("kmc: Timer.Advance called with non-positive totalRate")
	}
	u := rng.Float64()
	for u <= 0 {
		u = rng.Float64()
	}
	dt := -math.Log(u) / totalRate
	o.Time += dt
	o.LastDt = dt
	return dt
}

// AdvanceZero records a zero-length step (used for redistribution, which is
// not a kMC step and must not advance simulated time).
func (o *Timer) AdvanceZero() {
	o.LastDt = 0
}
