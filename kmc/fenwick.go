// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

// Fenwick is a binary-indexed tree over float64 weights, supporting O(log n)
// point updates and O(log n) prefix-sum queries. Interactions uses one
// instance over the process list (weighted by rate_i * |available_i|) and,
// when a custom rate calculator is attached, one instance per process over
// its available set (weighted by per-site effective rate). The per-process
// instances are created together with the available sets and updated on
// every insert and removal, not built on first use.
//
// No library in the retrieved examples implements this exact shape (point
// update + prefix query over floats); gosl/la targets sparse matrix
// assembly, not this. See DESIGN.md.
type Fenwick struct {
	tree  []float64
	vals  []float64 // vals[i] is the current weight at slot i, for Set's delta
	total float64
}

// NewFenwick returns a Fenwick tree with n slots, all zero.
func NewFenwick(n int) *Fenwick {
	return &Fenwick{tree: make([]float64, n+1), vals: make([]float64, n)}
}

// Len returns the number of slots.
func (f *Fenwick) Len() int { return len(f.vals) }

// Total returns the sum of all slots.
func (f *Fenwick) Total() float64 { return f.total }

// Get returns the current weight at slot i.
func (f *Fenwick) Get(i int) float64 { return f.vals[i] }

// Set assigns the weight at slot i (0-based), updating the tree and total.
func (f *Fenwick) Set(i int, v float64) {
	delta := v - f.vals[i]
	if delta == 0 {
		return
	}
	f.vals[i] = v
	f.total += delta
	for j := i + 1; j <= len(f.vals); j += j & (-j) {
		f.tree[j] += delta
	}
}

// PrefixSum returns the sum of slots [0, i) (0-based, exclusive upper bound).
func (f *Fenwick) PrefixSum(i int) float64 {
	var s float64
	for ; i > 0; i -= i & (-i) {
		s += f.tree[i]
	}
	return s
}

// FindByWeight returns the smallest slot i such that PrefixSum(i+1) > target,
// i.e. the slot into whose cumulative-weight bucket target falls. target
// must be in [0, Total()). Used to pick a process or a site proportional to
// weight in O(log n).
func (f *Fenwick) FindByWeight(target float64) int {
	idx := 0
	remaining := len(f.vals)
	// bit-descent over the largest power of two <= len(vals)
	pow := 1
	for pow*2 <= remaining {
		pow *= 2
	}
	for step := pow; step > 0; step /= 2 {
		next := idx + step
		if next <= remaining && f.tree[next] <= target {
			idx = next
			target -= f.tree[next]
		}
	}
	if idx >= len(f.vals) {
		idx = len(f.vals) - 1
	}
	return idx
}
