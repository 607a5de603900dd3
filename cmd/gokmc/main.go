// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gokmc/inp"
	"github.com/cpmech/gokmc/kmc"
	"github.com/cpmech/gokmc/out"
	"github.com/cpmech/gokmc/ratemodel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// controlFile is the top-level JSON document a .kmc control file decodes
// into: everything inp's per-concern types need, assembled in one place.
// Mirrors inp.SimData's role of gathering Data/SolverData/LinSolData under
// one root object.
type controlFile struct {
	Species      []string          `json:"species"`
	Geometry     inp.Geometry      `json:"geometry"`
	InitialTypes []string          `json:"initial_types"`
	Processes    []inp.ProcSpec    `json:"processes"`
	Control      inp.ControlParameters `json:"control"`
	RateModel    rateModelSpec     `json:"rate_model,omitempty"`

	LatticeTrajPath string `json:"lattice_traj_path,omitempty"`
	XYZTrajPath     string `json:"xyz_traj_path,omitempty"`
}

type rateModelSpec struct {
	Type   string             `json:"type"`
	Params map[string]float64 `json:"params"`
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	ctrlfn, _ := io.ArgToFilename(0, "", ".kmc", true)
	verbose := io.ArgToBool(1, true)
	dryRun := io.ArgToBool(2, false)

	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGoKMC -- Go Kinetic Monte Carlo engine\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"control filename", "ctrlfn", ctrlfn,
			"show messages", "verbose", verbose,
			"dry run (validate only)", "dryRun", dryRun,
		))
	}

	cf := readControlFile(ctrlfn)

	if dryRun {
		validateControlFile(&cf)
		if verbose {
			io.PfGreen("control file %q is valid\n", ctrlfn)
		}
		return
	}

	run(&cf, verbose)
}

func readControlFile(fn string) (cf controlFile) {
	f, err := os.Open(fn)
	if err != nil {
		chk.Panic("cannot open control file %q:\n%v", fn, err)
	}
	defer f.Close()
	cf.Control.SetDefault()
	cf.Geometry.SetDefault()
	if err := json.NewDecoder(f).Decode(&cf); err != nil {
		chk.Panic("cannot decode control file %q:\n%v", fn, err)
	}
	return cf
}

func validateControlFile(cf *controlFile) {
	if err := cf.Geometry.Validate(); err != nil {
		chk.Panic("%v", err)
	}
	if err := cf.Control.Validate(); err != nil {
		chk.Panic("%v", err)
	}
	species := inp.NewSpeciesTable(cf.Species)
	lat := cf.Geometry.ToLatticeMap()
	if len(cf.InitialTypes) != lat.NSites() {
		chk.Panic("initial_types has %d entries but the lattice has %d sites", len(cf.InitialTypes), lat.NSites())
	}
	if _, err := species.CodesOf(cf.InitialTypes); err != nil {
		chk.Panic("%v", err)
	}
	if _, err := inp.BuildProcs(lat, species, cf.Processes, cf.Control.ImplicitWildcards); err != nil {
		chk.Panic("%v", err)
	}
}

func run(cf *controlFile, verbose bool) {

	species := inp.NewSpeciesTable(cf.Species)
	lat := cf.Geometry.ToLatticeMap()

	initialCodes, err := species.CodesOf(cf.InitialTypes)
	if err != nil {
		chk.Panic("%v", err)
	}
	siteTypeCodes := make([]int, lat.NSites())
	cfg := kmc.NewConfiguration(lat, initialCodes)
	sites := kmc.NewSitesMap(lat, siteTypeCodes)

	procs, err := inp.BuildProcs(lat, species, cf.Processes, cf.Control.ImplicitWildcards)
	if err != nil {
		chk.Panic("%v", err)
	}

	var calc kmc.RateCalculator
	if cf.RateModel.Type != "" && cf.RateModel.Type != "fixed" {
		m, err := ratemodel.New(cf.RateModel.Type, cf.RateModel.Params)
		if err != nil {
			chk.Panic("%v", err)
		}
		calc = m
	}

	inter, err := kmc.NewInteractions(lat, cfg, sites, procs, calc)
	if err != nil {
		chk.Panic("%v", err)
	}

	rngKind := kmc.PRNGKind(cf.Control.RNGType)
	rng, err := kmc.NewPRNG(rngKind, cf.Control.Seed)
	if err != nil {
		chk.Panic("%v", err)
	}
	timer := kmc.NewTimer(cf.Control.StartTime)

	dcfg, err := cf.Control.ToDriverConfig(species)
	if err != nil {
		chk.Panic("%v", err)
	}

	var sinks multiSink
	if cf.LatticeTrajPath != "" {
		sinks = append(sinks, out.NewLatticeTraj(cf.LatticeTrajPath, lat, species))
	}
	if cf.XYZTrajPath != "" {
		sinks = append(sinks, out.NewXYZTraj(cf.XYZTrajPath, lat, species,
			lat.CellA, lat.CellB, lat.CellC, lat.PeriodicA, lat.PeriodicB, lat.PeriodicC))
	}

	driver := kmc.NewDriver(lat, cfg, sites, inter, timer, rng, sinks, nil, dcfg)
	driver.Verbose = verbose

	if err := driver.Run(); err != nil {
		chk.Panic("run failed:\n%v", err)
	}
	if verbose && mpi.Rank() == 0 {
		io.PfGreen("\nfinished: time=%.6e\n", timer.Time)
	}
}

// multiSink fans a single kmc.TrajectorySink call out to every configured
// sink (lattice and/or xyz), mirroring how the driver expects exactly one
// sink while a control file may request more than one output format.
type multiSink []kmc.TrajectorySink

func (o multiSink) EmitFrame(step int64, time float64, cfg *kmc.Configuration, affected []int) error {
	for _, s := range o {
		if err := s.EmitFrame(step, time, cfg, affected); err != nil {
			return err
		}
	}
	return nil
}

func (o multiSink) Flush() error {
	for _, s := range o {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return nil
}
