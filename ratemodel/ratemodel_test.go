// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratemodel

import (
	"math"
	"testing"

	"github.com/cpmech/gokmc/kmc"
	"github.com/cpmech/gosl/chk"
)

func simpleLatticeAndProc(tst *testing.T, rate float64) (*kmc.LatticeMap, *kmc.Process) {
	lat := kmc.NewLatticeMap(4, 1, 1, 1, true, true, true,
		kmc.Coord{X: 1, Y: 0, Z: 0}, kmc.Coord{X: 0, Y: 1, Z: 0}, kmc.Coord{X: 0, Y: 0, Z: 1},
		[]kmc.Coord{{X: 0, Y: 0, Z: 0}})
	entries, err := kmc.BuildMatchList(kmc.NewBuildInput(
		[]kmc.Coord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, []int{1, 2}, []int{1, 2}, nil, nil))
	if err != nil {
		tst.Fatalf("BuildMatchList failed: %v", err)
	}
	p, err := kmc.NewProcess(lat, "noop", entries, map[int]bool{0: true}, rate, false, false, kmc.Wildcard)
	if err != nil {
		tst.Fatalf("NewProcess failed: %v", err)
	}
	return lat, p
}

func Test_fixed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fixed01: Fixed returns the process's own base rate")

	lat, p := simpleLatticeAndProc(tst, 3.5)
	cfg := kmc.NewConfiguration(lat, []int{1, 2, 1, 2})
	sites := kmc.NewSitesMap(lat, make([]int, lat.NSites()))

	m, err := New("fixed", nil)
	if err != nil {
		tst.Fatalf("New(fixed) failed: %v", err)
	}
	chk.Scalar(tst, "fixed rate", 1e-12, m.Rate(lat, cfg, sites, p, 0), 3.5)
}

func Test_arrhenius01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrhenius01: coordination lowers the effective barrier")

	lat, _ := simpleLatticeAndProc(tst, 1.0)
	// a process on a species-1 center with wildcard neighbors on both sides,
	// so neighbors of species 2 are counted toward coordination
	entries, err := kmc.BuildMatchList(kmc.NewBuildInput(
		[]kmc.Coord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}},
		[]int{1, kmc.Wildcard, kmc.Wildcard}, []int{1, kmc.Wildcard, kmc.Wildcard}, nil, nil))
	if err != nil {
		tst.Fatalf("BuildMatchList failed: %v", err)
	}
	p, err := kmc.NewProcess(lat, "coord", entries, map[int]bool{0: true}, 1.0, false, false, kmc.Wildcard)
	if err != nil {
		tst.Fatalf("NewProcess failed: %v", err)
	}

	m, err := New("arrhenius", map[string]float64{
		"prefactor": 1e13, "activation_energy": 0.5, "temperature": 300,
		"coordination_species": 2, "coordination_scale": 0.1,
	})
	if err != nil {
		tst.Fatalf("New(arrhenius) failed: %v", err)
	}

	// 2 neighbors of species 2 on an A B A B chain at gidx 0
	cfgBoth := kmc.NewConfiguration(lat, []int{1, 2, 1, 2})
	sites := kmc.NewSitesMap(lat, make([]int, lat.NSites()))
	rHighCoord := m.Rate(lat, cfgBoth, sites, p, 0)

	// 0 neighbors of species 2 at gidx 0 (all species 1 elsewhere)
	cfgNone := kmc.NewConfiguration(lat, []int{1, 1, 1, 1})
	rLowCoord := m.Rate(lat, cfgNone, sites, p, 0)

	if rHighCoord <= rLowCoord {
		tst.Errorf("higher coordination with the target species should raise the rate: got %v <= %v", rHighCoord, rLowCoord)
	}
}

func Test_arrhenius02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrhenius02: rejects non-positive prefactor or temperature")

	if _, err := New("arrhenius", map[string]float64{"prefactor": 0, "activation_energy": 0.1, "temperature": 300}); err == nil {
		tst.Errorf("expected a validation error for prefactor <= 0")
	}
	if _, err := New("arrhenius", map[string]float64{"prefactor": 1, "activation_energy": 0.1, "temperature": 0}); err == nil {
		tst.Errorf("expected a validation error for temperature <= 0")
	}
}

func Test_custom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("custom01: Fn receives the local stencil and base rate")

	lat, p := simpleLatticeAndProc(tst, 7.0)
	cfg := kmc.NewConfiguration(lat, []int{1, 2, 1, 2})
	sites := kmc.NewSitesMap(lat, make([]int, lat.NSites()))

	var gotBase float64
	var gotBefore []int
	fn := func(offsets []kmc.Coord, before, after []int, baseRate float64, processID int, worldCoord kmc.Coord) float64 {
		gotBase = baseRate
		gotBefore = before
		return baseRate * 2
	}
	m := NewCustom(fn, 0)
	rate := m.Rate(lat, cfg, sites, p, 0)

	chk.Scalar(tst, "doubled base rate", 1e-12, rate, 14.0)
	chk.Scalar(tst, "Fn saw the base rate", 1e-12, gotBase, 7.0)
	if gotBefore == nil {
		tst.Errorf("Fn should have received the before-species slice")
	}
}

func Test_custom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("custom02: nil Fn degrades to the process's own rate")

	lat, p := simpleLatticeAndProc(tst, 4.2)
	cfg := kmc.NewConfiguration(lat, []int{1, 2, 1, 2})
	sites := kmc.NewSitesMap(lat, make([]int, lat.NSites()))

	m := &Custom{}
	chk.Scalar(tst, "degrades to p.Rate", 1e-12, m.Rate(lat, cfg, sites, p, 0), 4.2)
}

func Test_newmodel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newmodel01: unknown model name is rejected")

	_, err := New("not-a-model", nil)
	if err == nil {
		tst.Errorf("expected an error for an unregistered model name")
	}
}

func Test_arrhenius03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrhenius03: matches the closed-form Arrhenius rate with zero coordination")

	lat, p := simpleLatticeAndProc(tst, 1.0)
	cfg := kmc.NewConfiguration(lat, []int{1, 1, 1, 1})
	sites := kmc.NewSitesMap(lat, make([]int, lat.NSites()))

	m, err := New("arrhenius", map[string]float64{
		"prefactor": 1e12, "activation_energy": 1.0, "temperature": 500,
		"coordination_species": 9, "coordination_scale": 0.2, // species 9 never present
	})
	if err != nil {
		tst.Fatalf("New(arrhenius) failed: %v", err)
	}
	want := 1e12 * math.Exp(-1.0/(boltzmannEV*500))
	chk.Scalar(tst, "closed-form rate", 1e-6, m.Rate(lat, cfg, sites, p, 0), want)
}
