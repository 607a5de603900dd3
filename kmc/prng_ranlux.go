// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

// ranluxPRNG implements Lüscher's RANLUX generator (subtract-with-borrow
// lagged Fibonacci with luxury skipping), after F. James, "RANLUX: A
// Fortran implementation of the high-quality pseudorandom number generator
// of Lüscher", Comp. Phys. Commun. 79 (1994). RANLUX24 and RANLUX48 share
// this implementation, differing only in word size (bits). No ecosystem Go
// package implements RANLUX to the bit-exactness this spec's reproducible-
// trajectory requirement wants, so it is hand-written; see DESIGN.md.
type ranluxPRNG struct {
	seeds    [24]int64
	carry    int64
	i24, j24 int
	base     int64
	scale    float64
	// luxury level 3: after every 24 useful numbers, skip until a total of
	// luxP numbers (useful + skipped) have been generated.
	luxP  int
	count int
}

const ranluxLuxuryP = 223 // luxury level 3

func newRanlux(seed int64, bits uint) *ranluxPRNG {
	o := &ranluxPRNG{base: 1 << bits, luxP: ranluxLuxuryP}
	o.scale = 1.0 / float64(o.base)
	o.seed(seed)
	return o
}

// seed follows James's congruential seeding routine, generalized to the
// generator's own word size instead of the paper's fixed 24-bit words.
func (o *ranluxPRNG) seed(seedIn int64) {
	const icons = 2147483563
	j := seedIn % icons
	if j < 0 {
		j += icons
	}
	for i := 0; i < 24; i++ {
		k := j / 53668
		j = 40014*(j-k*53668) - k*12211
		if j < 0 {
			j += icons
		}
		o.seeds[i] = j % o.base
	}
	if o.seeds[23] == 0 {
		o.carry = 1
	} else {
		o.carry = 0
	}
	o.i24, o.j24 = 23, 9
	o.count = 0
}

// next produces one raw subtract-with-borrow word.
func (o *ranluxPRNG) next() int64 {
	uni := o.seeds[o.j24] - o.seeds[o.i24] - o.carry
	if uni < 0 {
		uni += o.base
		o.carry = 1
	} else {
		o.carry = 0
	}
	o.seeds[o.i24] = uni
	o.i24--
	if o.i24 < 0 {
		o.i24 = 23
	}
	o.j24--
	if o.j24 < 0 {
		o.j24 = 23
	}
	return uni
}

// Float64 returns the next uniform deviate in [0,1), applying the luxury
// skip after every 24 useful draws.
func (o *ranluxPRNG) Float64() float64 {
	if o.count == 24 {
		for k := 24; k < o.luxP; k++ {
			o.next()
		}
		o.count = 0
	}
	v := o.next()
	o.count++
	return float64(v) * o.scale
}

func init() {
	prngAllocators[RANLUX24] = func(seed int64) (PRNG, error) { return newRanlux(seed, 24), nil }
	prngAllocators[RANLUX48] = func(seed int64) (PRNG, error) { return newRanlux(seed, 48), nil }
}
