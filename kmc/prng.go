// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

// PRNG is the uniform random source the Timer and Interactions draw from.
// Implementations must return values in [0,1).
type PRNG interface {
	Float64() float64
}

// PRNGKind names one of the five seedable generators §4.10 requires.
type PRNGKind string

const (
	MT       PRNGKind = "MT"
	MINSTD   PRNGKind = "MINSTD"
	RANLUX24 PRNGKind = "RANLUX24"
	RANLUX48 PRNGKind = "RANLUX48"
	DEVICE   PRNGKind = "DEVICE"
)

// prngAllocators is a registry of PRNG constructors, the same
// init()-populated allocator-map idiom used by ratemodel for rate models.
var prngAllocators = make(map[PRNGKind]func(seed int64) (PRNG, error))

// NewPRNG builds the requested generator, seeded deterministically except
// for DEVICE (which draws from OS entropy and ignores seed). A given
// (kind, seed) pair must reproduce the same sequence across runs on the
// same platform.
func NewPRNG(kind PRNGKind, seed int64) (PRNG, error) {
	alloc, ok := prngAllocators[kind]
	if !ok {
		return nil, NewValidationError("unknown PRNG kind %q", kind)
	}
	p, err := alloc(seed)
	if err != nil {
		return nil, &UnsupportedPRNGError{Kind: string(kind), Err: err}
	}
	return p, nil
}
