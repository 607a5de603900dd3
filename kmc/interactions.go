// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "math"

// RateCalculator lets a process's rate depend on the local configuration
// around the site it would apply at, instead of a single fixed constant.
// It is defined here, not in the ratemodel package, so kmc itself has no
// dependency on ratemodel; ratemodel imports kmc and provides
// implementations of this interface.
type RateCalculator interface {
	// Rate returns the effective rate of process p applying at gidx.
	// Negative values are treated as 0; NaN or +/-Inf is a
	// RateCalculatorReturnError (§4.6).
	Rate(lat *LatticeMap, cfg *Configuration, sites *SitesMap, p *Process, gidx int) float64
}

// clampRate implements §4.6's "negative returns are treated as 0" rule and
// rejects non-finite returns outright.
func clampRate(p *Process, gidx int, r float64) (float64, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &RateCalculatorReturnError{ProcessID: p.id, Gidx: gidx, Value: r}
	}
	if r < 0 {
		return 0, nil
	}
	return r, nil
}

// Interactions is the simulation kernel's single mutable hub: it owns every
// Process by stable id, the Configuration and SitesMap they act on, and the
// two-level selection structure the BKL algorithm needs — a top-level
// Fenwick tree over processes, and (per process) an AvailableSet of sites,
// itself optionally Fenwick-weighted when a RateCalculator is attached.
type Interactions struct {
	Lattice *LatticeMap
	Config  *Configuration
	Sites   *SitesMap
	Calc    RateCalculator

	procs    []*Process
	rateTree *Fenwick // one slot per process id

	buf       *neighborBuf
	centerBuf []int // scratch for candidateCentersInto, reused across calls
}

// NewInteractions assigns stable ids to procs, builds each process's
// AvailableSet by scanning the whole lattice once, and builds the top-level
// rate tree. procs must not be reused across more than one Interactions.
func NewInteractions(lat *LatticeMap, cfg *Configuration, sites *SitesMap, procs []*Process, calc RateCalculator) (*Interactions, error) {
	weighted := calc != nil
	for id, p := range procs {
		p.id = id
		p.Available = NewAvailableSet(weighted, lat.NSites())
	}
	maxMatchLen := 0
	for _, p := range procs {
		if len(p.MatchList) > maxMatchLen {
			maxMatchLen = len(p.MatchList)
		}
	}
	o := &Interactions{
		Lattice: lat, Config: cfg, Sites: sites, Calc: calc,
		procs:    procs,
		rateTree: NewFenwick(len(procs)),
		buf:      newNeighborBuf(maxMatchLen),
	}
	for gidx := 0; gidx < lat.NSites(); gidx++ {
		b := lat.BasisOf(gidx)
		for _, p := range procs {
			if !p.BasisSites[b] {
				continue
			}
			if p.MatchesAt(lat, cfg, sites, gidx) {
				if err := o.addAvailable(p, gidx); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, p := range procs {
		o.rateTree.Set(p.id, o.processWeight(p))
	}
	return o, nil
}

// addAvailable inserts gidx into p's available set, evaluating and
// validating the rate calculator's return value when one is attached.
func (o *Interactions) addAvailable(p *Process, gidx int) error {
	if !p.Available.Add(gidx) {
		return nil
	}
	if o.Calc != nil {
		r, err := clampRate(p, gidx, o.Calc.Rate(o.Lattice, o.Config, o.Sites, p, gidx))
		if err != nil {
			return err
		}
		p.Available.SetWeight(gidx, r)
	}
	return nil
}

// processWeight is process p's contribution to the top-level rate tree:
// rate * site count when fixed, or the sum of per-site rates when a
// calculator is attached.
func (o *Interactions) processWeight(p *Process) float64 {
	if o.Calc == nil {
		return p.Rate * float64(p.Available.Len())
	}
	return p.Available.TotalWeight()
}

// ProcessByID returns the process with the given stable id.
func (o *Interactions) ProcessByID(id int) *Process { return o.procs[id] }

// Processes returns a read-only view of every process, in id order.
func (o *Interactions) Processes() []*Process { return o.procs }

// TotalRate returns the sum of every process's contribution. A zero value
// means no process can currently apply anywhere.
func (o *Interactions) TotalRate() float64 { return o.rateTree.Total() }

// Pick selects (processID, gidx) under the n-fold way / BKL scheme: a
// process is drawn proportional to its total rate contribution, then a site
// is drawn from that process's available set — uniformly if rates are
// fixed, proportional to per-site rate otherwise. TotalRate() must be > 0.
func (o *Interactions) Pick(rng PRNG) (processID, gidx int) {
	total := o.rateTree.Total()
	pid := o.rateTree.FindByWeight(rng.Float64() * total)
	p := o.procs[pid]
	if o.Calc == nil {
		return pid, p.Available.PickUniform(rng.Float64())
	}
	return pid, p.Available.PickWeighted(rng.Float64() * p.Available.TotalWeight())
}

// Apply performs process pid at gidx and incrementally re-evaluates every
// site whose match status could have changed, keeping every AvailableSet
// and the rate tree consistent. It returns the atom_ids displaced by the
// move, for trajectory emission.
func (o *Interactions) Apply(pid, gidx int) ([]int, error) {
	p := o.procs[pid]
	if m := len(p.MatchList); o.buf == nil || cap(o.buf.idx) < m {
		o.buf = newNeighborBuf(m)
	}
	changed := o.Config.PerformMove(o.Lattice, p, gidx, o.buf)
	moved := append([]int(nil), o.Config.MovedAtomIDs...)
	for _, site := range changed {
		if err := o.UpdateAffected(site); err != nil {
			return moved, err
		}
	}
	return moved, nil
}

// RebuildAll discards every process's available set and rescans the whole
// lattice from scratch, then rebuilds the rate tree. Redistribution (§4.9)
// requires this: a bulk rewrite can touch so much of the lattice that
// incremental UpdateAffected calls would cost more than a fresh scan.
func (o *Interactions) RebuildAll() error {
	weighted := o.Calc != nil
	for _, p := range o.procs {
		p.Available = NewAvailableSet(weighted, o.Lattice.NSites())
	}
	for gidx := 0; gidx < o.Lattice.NSites(); gidx++ {
		b := o.Lattice.BasisOf(gidx)
		for _, p := range o.procs {
			if !p.BasisSites[b] {
				continue
			}
			if p.MatchesAt(o.Lattice, o.Config, o.Sites, gidx) {
				if err := o.addAvailable(p, gidx); err != nil {
					return err
				}
			}
		}
	}
	for _, p := range o.procs {
		o.rateTree.Set(p.id, o.processWeight(p))
	}
	return nil
}

// UpdateAffected re-evaluates every (process, center) pair that could be
// newly matching or no-longer-matching now that gidx's state changed,
// using each process's precomputed inverse stencil instead of a full
// lattice rescan.
func (o *Interactions) UpdateAffected(gidx int) error {
	for _, p := range o.procs {
		o.centerBuf = o.centerBuf[:0]
		o.centerBuf = p.candidateCentersInto(o.Lattice, gidx, o.centerBuf)
		// gidx itself is a candidate center too: it may itself be a match
		// origin whose own neighbors are unaffected, but whose own site
		// type/species just changed.
		o.centerBuf = append(o.centerBuf, gidx)
		touched := false
		for _, c := range o.centerBuf {
			b := o.Lattice.BasisOf(c)
			if !p.BasisSites[b] {
				continue
			}
			matches := p.MatchesAt(o.Lattice, o.Config, o.Sites, c)
			was := p.Available.Contains(c)
			switch {
			case matches && !was:
				if err := o.addAvailable(p, c); err != nil {
					return err
				}
				touched = true
			case !matches && was:
				p.Available.Remove(c)
				touched = true
			case matches && was && o.Calc != nil:
				r, err := clampRate(p, c, o.Calc.Rate(o.Lattice, o.Config, o.Sites, p, c))
				if err != nil {
					return err
				}
				p.Available.SetWeight(c, r)
				touched = true
			}
		}
		if touched {
			o.rateTree.Set(p.id, o.processWeight(p))
		}
	}
	return nil
}
