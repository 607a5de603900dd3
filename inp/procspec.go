// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gokmc/kmc"

// MoveSpec is the JSON-facing form of an explicit move: the atom at Offset
// travels by Delta.
type MoveSpec struct {
	Offset [3]float64 `json:"offset"`
	Delta  [3]float64 `json:"delta"`
}

// ProcSpec is the user-facing, JSON-decodable description of one process.
// It accepts either the short form (Coords/TypesBefore/TypesAfter, no
// explicit site types or moves — everything else inferred) or the long
// form (SiteTypes and/or Moves supplied explicitly). Exactly one of the
// two is construction-time sugar over kmc.BuildMatchList's kmc.BuildInput.
type ProcSpec struct {
	Name          string       `json:"name"`
	Form          string       `json:"form,omitempty"` // "short" (default) or "long"
	Coords        [][3]float64 `json:"coords"`
	TypesBefore   []string     `json:"types_before"`
	TypesAfter    []string     `json:"types_after"`
	SiteTypes     []int        `json:"site_types,omitempty"`
	Moves         []MoveSpec   `json:"moves,omitempty"`
	BasisSites    []int        `json:"basis_sites"`
	Rate          float64      `json:"rate"`
	Fast          bool         `json:"fast,omitempty"`
	Redist        bool         `json:"redist,omitempty"`
	RedistSpecies string       `json:"redist_species,omitempty"`
}

// NewProcFromShort builds a kmc.Process from the short form: coordinates
// and before/after species names only, with move vectors reconstructed
// from the unique pair of species that differ (kmc.BuildMatchList's
// implicit-swap inference) and no site-type restriction.
func NewProcFromShort(lat *kmc.LatticeMap, species *SpeciesTable, spec ProcSpec) (*kmc.Process, error) {
	return buildProc(lat, species, spec, false)
}

// NewProcFromLong builds a kmc.Process from the long form: explicit site
// types and/or explicit move vectors are honored instead of inferred.
func NewProcFromLong(lat *kmc.LatticeMap, species *SpeciesTable, spec ProcSpec) (*kmc.Process, error) {
	return buildProc(lat, species, spec, true)
}

// NewProc dispatches on spec.Form ("long" selects NewProcFromLong;
// anything else, including the empty string, selects NewProcFromShort).
func NewProc(lat *kmc.LatticeMap, species *SpeciesTable, spec ProcSpec) (*kmc.Process, error) {
	return buildProc(lat, species, spec, spec.Form == "long")
}

func buildProc(lat *kmc.LatticeMap, species *SpeciesTable, spec ProcSpec, long bool) (*kmc.Process, error) {
	entries, err := buildEntries(species, spec, long)
	if err != nil {
		return nil, err
	}
	return finishProc(lat, species, spec, entries)
}

// buildEntries runs just the species-resolution and kmc.BuildMatchList
// half of buildProc, so a caller can collect every process's entries
// before deciding whether to pad them with BuildProcs' implicit-wildcards
// pass.
func buildEntries(species *SpeciesTable, spec ProcSpec, long bool) ([]kmc.MatchListEntry, error) {
	offsets := make([]kmc.Coord, len(spec.Coords))
	for i, c := range spec.Coords {
		offsets[i] = kmc.Coord{X: c[0], Y: c[1], Z: c[2]}
	}
	before, err := species.CodesOf(spec.TypesBefore)
	if err != nil {
		return nil, err
	}
	after, err := species.CodesOf(spec.TypesAfter)
	if err != nil {
		return nil, err
	}

	var siteTypes []int
	var moves []kmc.MoveSpec
	if long {
		siteTypes = spec.SiteTypes
		for _, m := range spec.Moves {
			moves = append(moves, kmc.MoveSpec{
				Offset: kmc.Coord{X: m.Offset[0], Y: m.Offset[1], Z: m.Offset[2]},
				Delta:  kmc.Coord{X: m.Delta[0], Y: m.Delta[1], Z: m.Delta[2]},
			})
		}
	}

	return kmc.BuildMatchList(kmc.NewBuildInput(offsets, before, after, siteTypes, moves))
}

// finishProc builds the kmc.Process from already-built match-list entries
// (possibly implicit-wildcard-padded by BuildProcs), resolving the
// remaining spec fields that don't feed into BuildMatchList.
func finishProc(lat *kmc.LatticeMap, species *SpeciesTable, spec ProcSpec, entries []kmc.MatchListEntry) (*kmc.Process, error) {
	basisSites := make(map[int]bool, len(spec.BasisSites))
	for _, b := range spec.BasisSites {
		basisSites[b] = true
	}

	redistSpecies := kmc.Wildcard
	if spec.RedistSpecies != "" {
		var err error
		redistSpecies, err = species.Code(spec.RedistSpecies)
		if err != nil {
			return nil, err
		}
	}

	return kmc.NewProcess(lat, spec.Name, entries, basisSites, spec.Rate, spec.Fast, spec.Redist, redistSpecies)
}

// BuildProcs builds every process in specs, optionally padding all of
// their match lists to the union of their stencils first (§4's implicit
// wildcards feature: a narrower-radius process gains wildcard entries for
// offsets a wider-radius sibling process matches on, so every process in
// the group shares one canonical stencil length).
func BuildProcs(lat *kmc.LatticeMap, species *SpeciesTable, specs []ProcSpec, implicitWildcards bool) ([]*kmc.Process, error) {
	entriesList := make([][]kmc.MatchListEntry, len(specs))
	for i, spec := range specs {
		e, err := buildEntries(species, spec, spec.Form == "long")
		if err != nil {
			return nil, err
		}
		entriesList[i] = e
	}
	if implicitWildcards {
		entriesList = kmc.ApplyImplicitWildcards(entriesList)
	}
	procs := make([]*kmc.Process, len(specs))
	for i, spec := range specs {
		p, err := finishProc(lat, species, spec, entriesList[i])
		if err != nil {
			return nil, err
		}
		procs[i] = p
	}
	return procs, nil
}
