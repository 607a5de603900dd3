// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "github.com/cpmech/gosl/chk"

// Configuration holds the mutable, per-site state of the lattice: current
// species, stable atom identity (for trajectory tracking), and each atom's
// absolute world coordinate. Only the Driver, through Interactions, ever
// mutates it.
type Configuration struct {
	Types        []int    // [NSites] species code per gidx; 0 is the wildcard "*"
	AtomID       []int    // [NSites] stable identity per gidx
	AtomIDCoord  []Coord  // [NAtoms] absolute world coordinate per atom_id
	MovedAtomIDs []int    // atom_ids displaced by the last applied move
}

// NewConfiguration builds a Configuration from a dense per-gidx species
// array. Atom ids are assigned 0..N-1 in gidx order, each seeded at its
// starting site's world coordinate, so AtomIDCoord is always an absolute
// position rather than a displacement a caller must re-add a site
// coordinate to. This is sugar over the "construction-time" duck-typed
// short/long input formats (see inp package): the core itself only ever
// consumes this dense array form.
func NewConfiguration(lat *LatticeMap, types []int) *Configuration {
	if len(types) != lat.NSites() {
		chk.Panic("%v", NewValidationError("configuration has %d entries but lattice has %d sites", len(types), lat.NSites()))
	}
	n := len(types)
	o := &Configuration{
		Types:       append([]int(nil), types...),
		AtomID:      make([]int, n),
		AtomIDCoord: make([]Coord, n),
	}
	for i := range o.AtomID {
		o.AtomID[i] = i
		o.AtomIDCoord[i] = lat.WorldCoord(i)
	}
	return o
}

// Elements returns a read-only snapshot of the per-site species array.
func (o *Configuration) Elements() []int {
	return append([]int(nil), o.Types...)
}

// AtomIDElements returns a read-only snapshot of the per-site atom_id array.
func (o *Configuration) AtomIDElements() []int {
	return append([]int(nil), o.AtomID...)
}

// AtomIDCoordinates returns a read-only snapshot of each atom's absolute
// world coordinate, indexed by atom_id.
func (o *Configuration) AtomIDCoordinates() []Coord {
	return append([]Coord(nil), o.AtomIDCoord...)
}

// neighborBuf is scratch space reused by PerformMove/matches to avoid
// allocating on the hot path.
type neighborBuf struct {
	idx []int
	ok  []bool
}

func newNeighborBuf(cap int) *neighborBuf {
	return &neighborBuf{idx: make([]int, cap), ok: make([]bool, cap)}
}

// PerformMove applies process p, centered at gidx, to the configuration:
// every match-list entry with a non-wildcard update type writes its species
// at the resolved neighbor, and every entry with a move vector swaps
// atom_id with the site its Δ points to and accumulates Δ onto that atom's
// absolute coordinate. It is O(len(p.MatchList)).
func (o *Configuration) PerformMove(lat *LatticeMap, p *Process, gidx int, buf *neighborBuf) (changed []int) {
	m := len(p.MatchList)
	if buf == nil || cap(buf.idx) < m {
		buf = newNeighborBuf(m)
	}
	idx, ok := buf.idx[:m], buf.ok[:m]
	row := p.offsetsFor(lat.BasisOf(gidx))
	for k := range p.MatchList {
		idx[k], ok[k] = lat.Neighbor(gidx, row[k])
	}

	o.MovedAtomIDs = o.MovedAtomIDs[:0]
	for k, e := range p.MatchList {
		if !ok[k] {
			continue
		}
		if e.UpdateType != Wildcard {
			o.Types[idx[k]] = e.UpdateType
			changed = append(changed, idx[k])
		}
	}
	// Moves come in reciprocal pairs (k -> kd and kd -> k) describing the
	// same physical swap from each atom's point of view; execute the
	// underlying array swap exactly once per pair (when k < kd), crediting
	// each atom's own move vector onto its own absolute coordinate.
	for k, e := range p.MatchList {
		if !e.HasMove || !ok[k] {
			continue
		}
		destOff := e.Offset.Add(e.MoveVector)
		kd := -1
		for k2, e2 := range p.MatchList {
			if ok[k2] && e2.Offset.Close(destOff) {
				kd = k2
				break
			}
		}
		if kd < 0 || kd <= k {
			continue
		}
		from, to := idx[k], idx[kd]
		movedFrom, movedTo := o.AtomID[from], o.AtomID[to]
		o.AtomID[from], o.AtomID[to] = o.AtomID[to], o.AtomID[from]
		o.AtomIDCoord[movedFrom] = o.AtomIDCoord[movedFrom].Add(e.MoveVector)
		if other := p.MatchList[kd]; other.HasMove {
			o.AtomIDCoord[movedTo] = o.AtomIDCoord[movedTo].Add(other.MoveVector)
		}
		o.MovedAtomIDs = append(o.MovedAtomIDs, movedFrom, movedTo)
	}
	return changed
}
