// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gokmc/kmc"
)

// IntervalSpec is the JSON-facing (start, end, interval) firing window.
type IntervalSpec struct {
	Enabled  bool  `json:"enabled,omitempty"`
	Start    int64 `json:"start"`
	End      int64 `json:"end"`
	Interval int64 `json:"interval"`
}

func (o IntervalSpec) toKMC() kmc.IntervalSpec {
	return kmc.IntervalSpec{Enabled: o.Enabled, Start: o.Start, End: o.End, Interval: o.Interval}
}

// ControlParameters is the top-level run configuration read from a control
// file's "control" section. Mirrors inp.SolverData: JSON-decodable, with
// SetDefault/Validate, translated into a kmc.DriverConfig before a run.
type ControlParameters struct {
	NumberOfSteps     int64          `json:"number_of_steps"`
	TimeLimit         float64        `json:"time_limit"`
	DumpInterval      int64          `json:"dump_interval"`
	AnalysisInterval  IntervalSpec   `json:"analysis_interval"`
	StartTime         float64        `json:"start_time"`
	Seed              int64          `json:"seed"`
	RNGType           string         `json:"rng_type"`
	ExtraTraj         IntervalSpec   `json:"extra_traj"`
	ImplicitWildcards bool           `json:"implicit_wildcards,omitempty"`

	DoRedistribution       bool     `json:"do_redistribution"`
	RedistributionInterval int64    `json:"redistribution_interval"`
	RedistDumpInterval     int64    `json:"redist_dump_interval"`
	FastSpecies            []string `json:"fast_species,omitempty"`
	NSplits                [3]int   `json:"nsplits"`
	DistributorType        string   `json:"distributor_type"`
	EmptyElement           string   `json:"empty_element,omitempty"`
	TargetDensity          float64  `json:"target_density,omitempty"`
}

// SetDefault assigns the spec's documented defaults.
func (o *ControlParameters) SetDefault() {
	o.TimeLimit = math.Inf(1)
	o.DumpInterval = 1
	o.NSplits = [3]int{1, 1, 1}
	o.RedistributionInterval = 10
	o.DistributorType = "SplitRandomDistributor"
	o.RNGType = string(kmc.MT)
}

// Validate raises ValidationError for the documented constraints.
func (o *ControlParameters) Validate() error {
	if o.DoRedistribution && o.RedistributionInterval < 1 {
		return kmc.NewValidationError("redistribution_interval must be >= 1, got %d", o.RedistributionInterval)
	}
	if o.DoRedistribution && o.DistributorType == "ProcessRandomDistributor" && o.EmptyElement == "" {
		return kmc.NewValidationError("empty_element is required when distributor_type is ProcessRandomDistributor")
	}
	switch o.DistributorType {
	case "SplitRandomDistributor", "ProcessRandomDistributor":
	default:
		return kmc.NewValidationError("unknown distributor_type %q", o.DistributorType)
	}
	return nil
}

// ToDriverConfig translates these control parameters into the runtime
// kmc.DriverConfig, resolving species names against species and building
// the requested Redistributor (nil if DoRedistribution is false).
func (o *ControlParameters) ToDriverConfig(species *SpeciesTable) (kmc.DriverConfig, error) {
	dc := kmc.DriverConfig{
		NumberOfSteps:          o.NumberOfSteps,
		TimeLimit:              o.TimeLimit,
		DumpInterval:           o.DumpInterval,
		StartTime:              o.StartTime,
		ExtraTraj:              o.ExtraTraj.toKMC(),
		DoRedistribution:       o.DoRedistribution,
		RedistributionInterval: o.RedistributionInterval,
		RedistDumpInterval:     o.RedistDumpInterval,
	}
	if !o.DoRedistribution {
		return dc, nil
	}
	switch o.DistributorType {
	case "ProcessRandomDistributor":
		empty, err := species.Code(o.EmptyElement)
		if err != nil {
			return dc, err
		}
		dc.Redistributor = &kmc.ProcessRandomDistributor{EmptyElement: empty, TargetDensity: o.TargetDensity}
	default:
		fast := make(map[int]bool, len(o.FastSpecies))
		for _, name := range o.FastSpecies {
			c, err := species.Code(name)
			if err != nil {
				return dc, err
			}
			fast[c] = true
		}
		dc.Redistributor = &kmc.SplitRandomDistributor{
			NSplitsA: o.NSplits[0], NSplitsB: o.NSplits[1], NSplitsC: o.NSplits[2],
			FastSpecies: fast,
		}
	}
	return dc, nil
}
