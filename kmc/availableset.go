// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

// AvailableSet is a process's "available sites" collection: an
// insertion-ordered set of global indices with O(1) membership test, O(1)
// insert/delete (swap-with-last), and O(1) indexed random access by
// insertion ordinal. When weighted, it additionally maintains a Fenwick
// tree keyed by ordinal so a site can be drawn proportional to a per-site
// effective rate in O(log n); this is the secondary tree §4.6 describes,
// built once at construction (eagerly rather than strictly on first use,
// which keeps Add/Remove/SetWeight a single coherent unit instead of
// threading a dirty flag through three call sites -- see DESIGN.md).
type AvailableSet struct {
	items    []int
	pos      map[int]int // gidx => index in items
	weighted bool
	fen      *Fenwick // only non-nil if weighted; capacity == lattice site count
}

// NewAvailableSet returns an empty AvailableSet. If weighted, cap must be an
// upper bound on how many sites could ever be members (the lattice's site
// count): the backing Fenwick tree never resizes.
func NewAvailableSet(weighted bool, cap int) *AvailableSet {
	o := &AvailableSet{pos: make(map[int]int), weighted: weighted}
	if weighted {
		o.fen = NewFenwick(cap)
	}
	return o
}

// Len returns the number of elements.
func (o *AvailableSet) Len() int { return len(o.items) }

// Contains reports whether gidx is a member.
func (o *AvailableSet) Contains(gidx int) bool {
	_, ok := o.pos[gidx]
	return ok
}

// Add inserts gidx with initial weight 0 (meaningless unless weighted),
// a no-op if already present. Returns true if it was actually inserted.
func (o *AvailableSet) Add(gidx int) bool {
	if _, ok := o.pos[gidx]; ok {
		return false
	}
	i := len(o.items)
	o.pos[gidx] = i
	o.items = append(o.items, gidx)
	if o.weighted {
		o.fen.Set(i, 0)
	}
	return true
}

// Remove deletes gidx via swap-with-last, a no-op if absent. Returns true
// if it was actually removed.
func (o *AvailableSet) Remove(gidx int) bool {
	i, ok := o.pos[gidx]
	if !ok {
		return false
	}
	last := len(o.items) - 1
	moved := o.items[last]
	o.items[i] = moved
	o.pos[moved] = i
	if o.weighted {
		o.fen.Set(i, o.fen.Get(last))
		o.fen.Set(last, 0)
	}
	o.items = o.items[:last]
	delete(o.pos, gidx)
	return true
}

// SetWeight assigns the per-site effective rate for gidx, which must
// already be a member of a weighted set.
func (o *AvailableSet) SetWeight(gidx int, w float64) {
	o.fen.Set(o.pos[gidx], w)
}

// Weight returns the current per-site weight for gidx (0 if unweighted).
func (o *AvailableSet) Weight(gidx int) float64 {
	if !o.weighted {
		return 0
	}
	return o.fen.Get(o.pos[gidx])
}

// TotalWeight returns the sum of all member weights (0 if unweighted).
func (o *AvailableSet) TotalWeight() float64 {
	if !o.weighted {
		return 0
	}
	return o.fen.Total()
}

// At returns the element at insertion ordinal i (0 <= i < Len()).
func (o *AvailableSet) At(i int) int { return o.items[i] }

// Slice returns a read-only view of the current element order. Callers must
// not mutate it.
func (o *AvailableSet) Slice() []int { return o.items }

// PickUniform draws a member uniformly given u in [0,1).
func (o *AvailableSet) PickUniform(u float64) int {
	i := int(u * float64(len(o.items)))
	if i >= len(o.items) {
		i = len(o.items) - 1
	}
	return o.items[i]
}

// PickWeighted draws a member proportional to its weight given target in
// [0, TotalWeight()).
func (o *AvailableSet) PickWeighted(target float64) int {
	return o.items[o.fen.FindByWeight(target)]
}
