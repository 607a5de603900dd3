// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mreten

import (
	"github.com/cpmech/gokmc/kmc"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// SpeciesNamer maps a species code back to its display name; out.SpeciesNamer
// and inp.SpeciesTable both satisfy it.
type SpeciesNamer interface {
	Name(code int) string
}

// SpeciesFractionPlot is a kmc.AnalysisPlugin recording, at every interval
// it fires, the occupied fraction of each tracked species and plotting the
// resulting time series on Finalize. Grounded on plot.go's Plot/PlotEnd
// (utl.LinSpace-driven curve + axis dressing), repurposed from a retention
// curve's (pc, sl) pair to a (time, fraction) time series per species.
type SpeciesFractionPlot struct {
	PluginName string
	Tracked    []int
	Species    SpeciesNamer
	Args       string // matplotlib-style plot args, e.g. "'b-'"

	times     []float64
	fractions map[int][]float64
	nsites    int
}

// NewSpeciesFractionPlot builds a plugin tracking the given species codes.
func NewSpeciesFractionPlot(name string, tracked []int, species SpeciesNamer, args string) *SpeciesFractionPlot {
	return &SpeciesFractionPlot{PluginName: name, Tracked: tracked, Species: species, Args: args,
		fractions: make(map[int][]float64, len(tracked))}
}

// Name implements kmc.AnalysisPlugin.
func (o *SpeciesFractionPlot) Name() string { return o.PluginName }

// Setup implements kmc.AnalysisPlugin.
func (o *SpeciesFractionPlot) Setup(lat *kmc.LatticeMap, cfg *kmc.Configuration, sites *kmc.SitesMap) error {
	o.nsites = lat.NSites()
	return nil
}

// RegisterStep implements kmc.AnalysisPlugin.
func (o *SpeciesFractionPlot) RegisterStep(step int64, time float64, cfg *kmc.Configuration, inter *kmc.Interactions) error {
	counts := make(map[int]int, len(o.Tracked))
	for _, t := range cfg.Elements() {
		counts[t]++
	}
	o.times = append(o.times, time)
	for _, code := range o.Tracked {
		frac := 0.0
		if o.nsites > 0 {
			frac = float64(counts[code]) / float64(o.nsites)
		}
		o.fractions[code] = append(o.fractions[code], frac)
	}
	return nil
}

// Finalize implements kmc.AnalysisPlugin: plots one curve per tracked
// species, each labelled with its name, then closes out the axes.
func (o *SpeciesFractionPlot) Finalize() error {
	for _, code := range o.Tracked {
		label := o.nameOf(code)
		plt.Plot(o.times, o.fractions[code], io.Sf("%s, label='%s', clip_on=0", o.Args, label))
	}
	plt.Gll("$t$", "fraction", "")
	return nil
}

func (o *SpeciesFractionPlot) nameOf(code int) string {
	if o.Species == nil {
		return io.Sf("%d", code)
	}
	return o.Species.Name(code)
}
