// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import (
	"crypto/rand"
	"encoding/binary"
)

// devicePRNG draws uniform deviates from the OS entropy source. It is not
// reproducible across runs; the seed passed to NewPRNG is ignored.
type devicePRNG struct{}

func (o *devicePRNG) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read on a supported OS only fails when the entropy
		// source itself is gone; NewPRNG already validated availability at
		// construction time, so this is unrecoverable.
		panic("kmc: DEVICE prng: OS entropy source failed: " + err.Error())
	}
	// 53 bits of entropy, matching the precision of a float64 mantissa.
	v := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(v) / float64(uint64(1)<<53)
}

func init() {
	prngAllocators[DEVICE] = func(seed int64) (PRNG, error) {
		var probe [1]byte
		if _, err := rand.Read(probe[:]); err != nil {
			return nil, err
		}
		return &devicePRNG{}, nil
	}
}
