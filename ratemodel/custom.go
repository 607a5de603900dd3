// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratemodel

import "github.com/cpmech/gokmc/kmc"

// CustomFunc mirrors §4.6's rate-calculator hook signature: given the
// local stencil (relative offsets, species before and after the process's
// own rewrite), the process's base rate and id, and the site's world
// coordinate, return the effective rate. It must have no side effects
// observable to the core; it may memoize internally.
type CustomFunc func(localOffsets []kmc.Coord, typesBefore, typesAfter []int, baseRate float64, processID int, worldCoord kmc.Coord) float64

// Custom wraps a user-supplied CustomFunc. Cutoff restricts the local-
// neighborhood radius passed to Fn; the default 1.0 means "use the
// process's own stencil extent" (every match-list entry is passed,
// unfiltered).
type Custom struct {
	Fn     CustomFunc
	Cutoff float64
}

func init() {
	allocators["custom"] = func() Model { return &Custom{} }
}

// NewCustom builds a Custom model directly (registry construction can't
// carry a Go func through a parameter map).
func NewCustom(fn CustomFunc, cutoff float64) *Custom {
	if cutoff <= 0 {
		cutoff = 1.0
	}
	return &Custom{Fn: fn, Cutoff: cutoff}
}

// Init accepts an optional "cutoff" parameter; Fn must be set afterward via
// NewCustom or direct field assignment; a zero-value Custom with Fn nil
// degrades to Fixed-like behavior (p.Rate), not an error, so it is safe to
// register by name in a control file even before Fn is wired up in code.
func (o *Custom) Init(prms map[string]float64) error {
	o.Cutoff = 1.0
	if v, ok := prms["cutoff"]; ok {
		if v <= 0 {
			return kmc.NewValidationError("ratemodel.Custom: cutoff must be > 0, got %v", v)
		}
		o.Cutoff = v
	}
	return nil
}

// Rate implements kmc.RateCalculator.
func (o *Custom) Rate(lat *kmc.LatticeMap, cfg *kmc.Configuration, sites *kmc.SitesMap, p *kmc.Process, gidx int) float64 {
	if o.Fn == nil {
		return p.Rate
	}
	neighbors := p.Neighbors(lat, gidx)
	n := len(p.MatchList)
	offsets := make([]kmc.Coord, n)
	before := make([]int, n)
	after := make([]int, n)
	for k, e := range p.MatchList {
		if o.Cutoff < 1.0 && e.Distance > o.Cutoff*stencilRadius(p) {
			continue
		}
		offsets[k] = e.Offset
		after[k] = e.UpdateType
		if neighbors != nil && neighbors[k] >= 0 {
			before[k] = cfg.Types[neighbors[k]]
		}
	}
	return o.Fn(offsets, before, after, p.Rate, p.ID(), lat.WorldCoord(gidx))
}

// stencilRadius is the distance of a process's farthest match-list entry,
// i.e. its own stencil extent (the Cutoff=1.0 default radius).
func stencilRadius(p *kmc.Process) float64 {
	r := 0.0
	for _, e := range p.MatchList {
		if e.Distance > r {
			r = e.Distance
		}
	}
	return r
}
