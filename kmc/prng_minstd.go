// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

// minstdPRNG implements the Park-Miller "minimal standard" Lehmer
// generator: x_{n+1} = a*x_n mod m, with a=16807, m=2^31-1. No ecosystem Go
// package implements this exact generator (it appears in no example repo in
// the retrieval pack), so it is hand-written here; see DESIGN.md.
type minstdPRNG struct {
	state uint64
}

const (
	minstdA = 16807
	minstdM = 2147483647 // 2^31 - 1
)

func (o *minstdPRNG) Float64() float64 {
	o.state = (o.state * minstdA) % minstdM
	return float64(o.state) / float64(minstdM)
}

func init() {
	prngAllocators[MINSTD] = func(seed int64) (PRNG, error) {
		s := uint64(seed) % minstdM
		if s == 0 {
			s = 1 // the Lehmer generator's fixed point at 0 never advances
		}
		return &minstdPRNG{state: s}, nil
	}
}
