// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import (
	"fmt"
	"math"
	"sort"
)

// Wildcard is the species/site-type code that matches anything and, as an
// update type, writes nothing.
const Wildcard = 0

// MatchListEntry (MLE) is one entry of a process's ordered local stencil,
// expressed in world coordinates relative to the process's center. The
// world offset is basis-independent on its own; resolving it to an actual
// lattice neighbor (an integer CellOffset) is basis-dependent and done per
// center-basis by resolveCellOffset (see process.go).
type MatchListEntry struct {
	Offset         Coord // relative offset from the center, entry 0 is {0,0,0}
	MatchType      int   // species required before the move; 0 = wildcard
	UpdateType     int   // species written after the move; 0 = no write
	SiteType       int   // required site type; 0 = any
	Distance       float64
	IndexInStencil int // position in the process's own canonical order
	HasMove        bool
	MoveVector     Coord // Δ added to atom_id_coord when this entry's atom moves
}

// MoveSpec is an explicit user-supplied move: the atom found at the entry
// with this Offset (before sorting) travels by Delta.
type MoveSpec struct {
	Offset Coord
	Delta  Coord
}

// BuildInput is the raw, user-facing description of one process's stencil,
// already expanded to a dense array by inp.NewProcFromShort/Long.
type BuildInput struct {
	Offsets      []Coord
	TypesBefore  []int
	TypesAfter   []int
	SiteTypes    []int // may be nil: treated as all-wildcard
	ExplicitMove []MoveSpec
}

// NewBuildInput assembles a BuildInput; explicitMoves may be nil to let
// BuildMatchList reconstruct a move from the unique pair of differing
// species.
func NewBuildInput(offsets []Coord, typesBefore, typesAfter, siteTypes []int, explicitMoves []MoveSpec) BuildInput {
	return BuildInput{
		Offsets: offsets, TypesBefore: typesBefore, TypesAfter: typesAfter,
		SiteTypes: siteTypes, ExplicitMove: explicitMoves,
	}
}

// BuildMatchList validates and canonicalizes one process's stencil,
// independent of any particular lattice or center basis.
func BuildMatchList(in BuildInput) ([]MatchListEntry, error) {
	n := len(in.Offsets)
	if n == 0 {
		return nil, NewValidationError("match list must have at least one entry")
	}
	if len(in.TypesBefore) != n || len(in.TypesAfter) != n {
		return nil, NewValidationError("types_before/types_after must match offsets length")
	}
	if !in.Offsets[0].Close(Coord{}) {
		return nil, NewValidationError("match list entry 0 must be the center at the origin")
	}
	siteTypes := in.SiteTypes
	if siteTypes == nil {
		siteTypes = make([]int, n)
	} else if len(siteTypes) != n {
		return nil, NewValidationError("site_types must match offsets length")
	}

	// wildcards never move: before==0 iff after==0, at the same index
	for k := 0; k < n; k++ {
		if (in.TypesBefore[k] == Wildcard) != (in.TypesAfter[k] == Wildcard) {
			return nil, NewValidationError("wildcard at index %d would move (types_before/after disagree on wildcard)", k)
		}
	}

	moves := in.ExplicitMove
	if moves == nil {
		diff := make([]int, 0, 2)
		for k := 0; k < n; k++ {
			if in.TypesBefore[k] != in.TypesAfter[k] {
				diff = append(diff, k)
			}
		}
		switch len(diff) {
		case 0, 1:
			// no moves: a pure in-place rewrite (a single differing entry
			// has no partner to swap with)
		case 2:
			k1, k2 := diff[0], diff[1]
			if in.TypesBefore[k1] != in.TypesAfter[k2] || in.TypesBefore[k2] != in.TypesAfter[k1] {
				return nil, NewValidationError("cannot reconstruct move vectors: entries %d,%d do not swap species; supply explicit moves", k1, k2)
			}
			moves = []MoveSpec{
				{Offset: in.Offsets[k1], Delta: in.Offsets[k2].Sub(in.Offsets[k1])},
				{Offset: in.Offsets[k2], Delta: in.Offsets[k1].Sub(in.Offsets[k2])},
			}
		default:
			return nil, NewValidationError("move_vectors absent and %d entries differ (expected exactly 2 for an implicit swap); supply explicit moves", len(diff))
		}
	}

	// validate explicit (or reconstructed) moves reproduce types_after
	hasMove := make([]bool, n)
	moveVec := make([]Coord, n)
	for _, mv := range moves {
		from := indexOfOffset(in.Offsets, mv.Offset)
		if from < 0 {
			return nil, NewValidationError("move vector references an offset not present in the match list: %+v", mv.Offset)
		}
		dest := mv.Offset.Add(mv.Delta)
		to := indexOfOffset(in.Offsets, dest)
		if to < 0 {
			return nil, NewValidationError("move vector destination %+v is not present in the match list", dest)
		}
		if in.TypesBefore[from] != in.TypesAfter[to] {
			return nil, NewValidationError("move vectors do not reproduce types_after: species at %d does not land on the species expected at %d", from, to)
		}
		hasMove[from] = true
		moveVec[from] = mv.Delta
	}

	entries := make([]MatchListEntry, n)
	for k := 0; k < n; k++ {
		entries[k] = MatchListEntry{
			Offset:     in.Offsets[k],
			MatchType:  in.TypesBefore[k],
			UpdateType: in.TypesAfter[k],
			SiteType:   siteTypes[k],
			Distance:   in.Offsets[k].Norm(),
			HasMove:    hasMove[k],
			MoveVector: moveVec[k],
		}
	}

	sortMatchList(entries)
	for k := range entries {
		entries[k].IndexInStencil = k
	}
	return entries, nil
}

// indexOfOffset returns the index of off in offsets (within Tol), or -1.
func indexOfOffset(offsets []Coord, off Coord) int {
	for k, o := range offsets {
		if o.Close(off) {
			return k
		}
	}
	return -1
}

// sortMatchList sorts entries by distance ascending, with a stable tiebreak
// on (offset.x, offset.y, offset.z), guaranteeing canonical order across
// processes and configuration neighborhoods.
func sortMatchList(entries []MatchListEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Distance != entries[j].Distance {
			return entries[i].Distance < entries[j].Distance
		}
		return entries[i].Offset.Less(entries[j].Offset)
	})
}

// offsetKey quantizes a Coord to a hashable key at Tol-scale resolution, so
// world offsets can be deduplicated/union'd across independently built
// match lists.
type offsetKey string

func keyOf(c Coord) offsetKey {
	return offsetKey(fmt.Sprintf("%.8f|%.8f|%.8f", math.Round(c.X/Tol)*Tol, math.Round(c.Y/Tol)*Tol, math.Round(c.Z/Tol)*Tol))
}

// unionOffsets computes the union, in world coordinates, of every match
// list's stencil offsets.
func unionOffsets(lists [][]MatchListEntry) []Coord {
	seen := make(map[offsetKey]bool)
	var out []Coord
	for _, list := range lists {
		for _, e := range list {
			k := keyOf(e.Offset)
			if !seen[k] {
				seen[k] = true
				out = append(out, e.Offset)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ApplyImplicitWildcards pads every match list in lists with wildcard
// entries for every offset that appears in another list's stencil but is
// missing from its own, so every process in a shared implicit-wildcards
// group ends up with the same stencil length: the full union of
// everyone's offsets.
func ApplyImplicitWildcards(lists [][]MatchListEntry) [][]MatchListEntry {
	union := unionOffsets(lists)
	out := make([][]MatchListEntry, len(lists))
	for i, l := range lists {
		out[i] = padWithImplicitWildcards(l, union)
	}
	return out
}

// padWithImplicitWildcards inserts wildcard entries (match_type=0,
// update_type=0) into entries for every offset in union missing from it.
// This is the pre-expansion form of implicit wildcards: done once at
// construction time, never at match time.
func padWithImplicitWildcards(entries []MatchListEntry, union []Coord) []MatchListEntry {
	have := make(map[offsetKey]bool, len(entries))
	for _, e := range entries {
		have[keyOf(e.Offset)] = true
	}
	out := append([]MatchListEntry(nil), entries...)
	for _, off := range union {
		if have[keyOf(off)] {
			continue
		}
		dist := off.Norm()
		out = append(out, MatchListEntry{
			Offset:     off,
			MatchType:  Wildcard,
			UpdateType: Wildcard,
			Distance:   dist,
		})
	}
	sortMatchList(out)
	for k := range out {
		out[k].IndexInStencil = k
	}
	return out
}
