// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratemodel

import (
	"math"

	"github.com/cpmech/gokmc/kmc"
)

// boltzmannEV is the Boltzmann constant in eV/K, the default unit system
// for ActivationEnergy/Temperature.
const boltzmannEV = 8.617333262e-5

// Arrhenius is a coordination-number-dependent rate: the discrete-lattice
// analogue of the teacher's stress-dependent yield-surface models (the
// bond count around a site plays the role their models give the stress
// invariants). Effective activation energy drops linearly with the number
// of match-list sites (the center included) whose species equals
// CoordinationSpecies, so processes at highly coordinated sites get a
// higher rate than processes at low-coordination sites.
type Arrhenius struct {
	Prefactor           float64
	ActivationEnergy     float64 // eV
	Temperature          float64 // K
	BoltzmannConstant    float64 // eV/K; defaults to boltzmannEV
	CoordinationSpecies  int
	CoordinationScale    float64 // eV removed from the barrier per matched neighbor
}

func init() {
	allocators["arrhenius"] = func() Model { return &Arrhenius{} }
}

// Init reads prefactor, activation_energy, temperature, boltzmann_constant
// (optional), coordination_species, coordination_scale from prms.
func (o *Arrhenius) Init(prms map[string]float64) error {
	o.Prefactor = prms["prefactor"]
	o.ActivationEnergy = prms["activation_energy"]
	o.Temperature = prms["temperature"]
	o.BoltzmannConstant = boltzmannEV
	if v, ok := prms["boltzmann_constant"]; ok {
		o.BoltzmannConstant = v
	}
	o.CoordinationSpecies = int(prms["coordination_species"])
	o.CoordinationScale = prms["coordination_scale"]
	if o.Prefactor <= 0 {
		return kmc.NewValidationError("ratemodel.Arrhenius: prefactor must be > 0")
	}
	if o.Temperature <= 0 {
		return kmc.NewValidationError("ratemodel.Arrhenius: temperature must be > 0")
	}
	return nil
}

// Rate implements kmc.RateCalculator.
func (o *Arrhenius) Rate(lat *kmc.LatticeMap, cfg *kmc.Configuration, sites *kmc.SitesMap, p *kmc.Process, gidx int) float64 {
	coord := 0
	for _, n := range p.Neighbors(lat, gidx) {
		if n >= 0 && cfg.Types[n] == o.CoordinationSpecies {
			coord++
		}
	}
	ea := o.ActivationEnergy - o.CoordinationScale*float64(coord)
	if ea < 0 {
		ea = 0
	}
	return o.Prefactor * math.Exp(-ea/(o.BoltzmannConstant*o.Temperature))
}
