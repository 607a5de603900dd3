// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "github.com/cpmech/gosl/io"

// TrajectorySink receives one frame per emission point. affected is nil for
// the initial frame and for ordinary kMC steps (the sink finds the atoms
// moved by the step via cfg.MovedAtomIDs); redistribution frames pass the
// full list of sites the redistributor touched.
type TrajectorySink interface {
	EmitFrame(step int64, time float64, cfg *Configuration, affected []int) error
	Flush() error
}

// AnalysisPlugin observes the run at its own cadence. Setup is called once
// before stepping begins, Finalize exactly once when the run ends (success
// or failure), and RegisterStep whenever its IntervalSpec fires.
type AnalysisPlugin interface {
	Name() string
	Setup(lat *LatticeMap, cfg *Configuration, sites *SitesMap) error
	RegisterStep(step int64, time float64, cfg *Configuration, inter *Interactions) error
	Finalize() error
}

// IntervalSpec fires for step in [Start, End] with step % Interval == 0.
// The zero value never fires.
type IntervalSpec struct {
	Enabled       bool
	Start, End    int64
	Interval      int64
}

func (s IntervalSpec) fires(step int64) bool {
	if !s.Enabled || s.Interval <= 0 {
		return false
	}
	return step >= s.Start && step <= s.End && step%s.Interval == 0
}

// AnalysisBinding pairs a plugin with the cadence at which the driver
// notifies it.
type AnalysisBinding struct {
	Plugin   AnalysisPlugin
	Interval IntervalSpec
}

// Redistributor implements one of the two §4.9 strategies.
type Redistributor interface {
	Redistribute(lat *LatticeMap, cfg *Configuration, sites *SitesMap, inter *Interactions, rng PRNG) (affected []int, err error)
}

// DriverConfig is the runtime control surface the Driver consumes. It is
// the superset struct §9 calls for; inp.ControlParameters (JSON-decodable,
// carrying SetDefault/Validate) is translated into one of these before a
// run starts.
type DriverConfig struct {
	NumberOfSteps int64
	TimeLimit     float64
	DumpInterval  int64
	StartTime     float64
	ExtraTraj     IntervalSpec

	DoRedistribution       bool
	RedistributionInterval int64
	RedistDumpInterval     int64
	Redistributor          Redistributor
}

// Driver runs the §4.8 step loop to completion.
type Driver struct {
	Lattice  *LatticeMap
	Config   *Configuration
	Sites    *SitesMap
	Inter    *Interactions
	Timer    *Timer
	RNG      PRNG
	Sink     TrajectorySink
	Analysis []AnalysisBinding
	Cfg      DriverConfig
	Verbose  bool

	// DebugStep, if set, is invoked once per completed kMC step (never for
	// redistribution steps), mirroring the teacher's DebugKb hook.
	DebugStep func(step int64, processID, gidx int)

	redistCount int64
}

// NewDriver wires the components together; it performs no I/O itself.
func NewDriver(lat *LatticeMap, cfg *Configuration, sites *SitesMap, inter *Interactions, timer *Timer, rng PRNG, sink TrajectorySink, analysis []AnalysisBinding, dcfg DriverConfig) *Driver {
	return &Driver{
		Lattice: lat, Config: cfg, Sites: sites, Inter: inter, Timer: timer,
		RNG: rng, Sink: sink, Analysis: analysis, Cfg: dcfg,
	}
}

// Run executes the loop described in §4.8. On any error it still flushes
// the trajectory sink and finalizes every plugin before returning, via its
// own deferred cleanup rather than relying on a caller's recover.
func (d *Driver) Run() (err error) {
	defer func() {
		if ferr := d.Sink.Flush(); ferr != nil && err == nil {
			err = &TrajectoryIOError{Err: ferr}
		}
		for _, b := range d.Analysis {
			if ferr := b.Plugin.Finalize(); ferr != nil && err == nil {
				err = &AnalysisPluginError{Plugin: b.Plugin.Name(), Err: ferr}
			}
		}
	}()

	d.Timer.Time = d.Cfg.StartTime
	if d.Verbose {
		io.Pf("kmc: starting run: %d steps, time_limit=%v\n", d.Cfg.NumberOfSteps, d.Cfg.TimeLimit)
	}
	if err = d.emitFrame(0, nil); err != nil {
		return err
	}
	for _, b := range d.Analysis {
		if serr := b.Plugin.Setup(d.Lattice, d.Config, d.Sites); serr != nil {
			return &AnalysisPluginError{Plugin: b.Plugin.Name(), Err: serr}
		}
	}

	// number_of_steps defaults to 0, meaning "do not start" (spec §6): the
	// bound is checked as the loop's entry condition, before a step (kMC or
	// redistribution) is attempted, not only after one has already run.
	var step int64
	for step < d.Cfg.NumberOfSteps {
		step++
		if d.Cfg.DoRedistribution && d.Cfg.RedistributionInterval > 0 && step%d.Cfg.RedistributionInterval == 0 {
			step-- // redistribution is not a kMC step
			affected, rerr := d.Cfg.Redistributor.Redistribute(d.Lattice, d.Config, d.Sites, d.Inter, d.RNG)
			if rerr != nil {
				return rerr
			}
			d.Timer.AdvanceZero()
			d.redistCount++
			if d.Cfg.RedistDumpInterval <= 0 || d.redistCount%d.Cfg.RedistDumpInterval == 0 {
				if err = d.emitFrame(step, affected); err != nil {
					return err
				}
			}
			if d.Timer.Time > d.Cfg.TimeLimit {
				return nil
			}
			continue
		}

		total := d.Inter.TotalRate()
		if total <= 0 {
			return &NoAvailableProcessError{Step: step}
		}
		pid, gidx := d.Inter.Pick(d.RNG)
		if _, aerr := d.Inter.Apply(pid, gidx); aerr != nil {
			return aerr
		}
		d.Timer.Advance(total, d.RNG)
		if d.DebugStep != nil {
			d.DebugStep(step, pid, gidx)
		}

		if d.Cfg.DumpInterval > 0 && step%d.Cfg.DumpInterval == 0 {
			if err = d.emitFrame(step, nil); err != nil {
				return err
			}
		}
		if d.Cfg.ExtraTraj.fires(step) {
			if err = d.emitFrame(step, nil); err != nil {
				return err
			}
		}
		for _, b := range d.Analysis {
			if b.Interval.fires(step) {
				if serr := b.Plugin.RegisterStep(step, d.Timer.Time, d.Config, d.Inter); serr != nil {
					return &AnalysisPluginError{Plugin: b.Plugin.Name(), Err: serr}
				}
			}
		}

		if d.Timer.Time > d.Cfg.TimeLimit {
			return nil
		}
	}
	return nil
}

func (d *Driver) emitFrame(step int64, affected []int) error {
	if err := d.Sink.EmitFrame(step, d.Timer.Time, d.Config, affected); err != nil {
		return &TrajectoryIOError{Err: err}
	}
	return nil
}
