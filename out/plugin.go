// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gokmc/kmc"

// SpeciesCountPlugin is a kmc.AnalysisPlugin recording, at every interval
// it fires, the step/time pair and a per-species occupation count;
// grounded on fem/summary.go's incremental OutTimes
// append-log (RegisterStep plays the role of SaveDomains).
type SpeciesCountPlugin struct {
	PluginName string
	Tracked    []int // species codes to count; nil counts every code seen

	Steps  []int64
	Times  []float64
	Counts []map[int]int
}

// NewSpeciesCountPlugin builds a plugin tracking the given species codes
// (nil tracks everything seen).
func NewSpeciesCountPlugin(name string, tracked []int) *SpeciesCountPlugin {
	return &SpeciesCountPlugin{PluginName: name, Tracked: tracked}
}

// Name implements kmc.AnalysisPlugin.
func (o *SpeciesCountPlugin) Name() string { return o.PluginName }

// Setup implements kmc.AnalysisPlugin: nothing to prepare.
func (o *SpeciesCountPlugin) Setup(lat *kmc.LatticeMap, cfg *kmc.Configuration, sites *kmc.SitesMap) error {
	return nil
}

// RegisterStep implements kmc.AnalysisPlugin.
func (o *SpeciesCountPlugin) RegisterStep(step int64, time float64, cfg *kmc.Configuration, inter *kmc.Interactions) error {
	counts := make(map[int]int)
	for _, t := range cfg.Elements() {
		if o.Tracked != nil && !containsInt(o.Tracked, t) {
			continue
		}
		counts[t]++
	}
	o.Steps = append(o.Steps, step)
	o.Times = append(o.Times, time)
	o.Counts = append(o.Counts, counts)
	return nil
}

// Finalize implements kmc.AnalysisPlugin: nothing to release.
func (o *SpeciesCountPlugin) Finalize() error { return nil }

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
