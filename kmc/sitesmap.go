// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "github.com/cpmech/gosl/chk"

// SitesMap holds the static per-site site type, fixed at construction and
// never mutated during a run; the driver only ever reads it.
type SitesMap struct {
	Types []int // [NSites] site type per gidx
}

// NewSitesMap builds a SitesMap from a dense per-gidx site-type array.
func NewSitesMap(lat *LatticeMap, types []int) *SitesMap {
	if len(types) != lat.NSites() {
		chk.Panic("%v", NewValidationError("sites map has %d entries but lattice has %d sites", len(types), lat.NSites()))
	}
	return &SitesMap{Types: append([]int(nil), types...)}
}

// Type returns the site type at gidx.
func (o *SitesMap) Type(gidx int) int { return o.Types[gidx] }
