// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import "github.com/cpmech/gosl/io"

// ValidationError reports inconsistent user input at construction time:
// e.g. a move that doesn't reproduce types_after, a wildcard that would
// move, or a non-positive rate.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(msg string, args ...interface{}) *ValidationError {
	return &ValidationError{io.Sf(msg, args...)}
}

// NoAvailableProcessError reports that the total rate became zero while the
// driver was stepping. It names the step at which this happened.
type NoAvailableProcessError struct {
	Step int64
}

func (e *NoAvailableProcessError) Error() string {
	return io.Sf("NoAvailableProcess: total rate is zero at step %d", e.Step)
}

// UnsupportedPRNGError reports that a requested PRNG kind could not be
// initialised on this system (e.g. DEVICE with no working entropy source).
type UnsupportedPRNGError struct {
	Kind string
	Err  error
}

func (e *UnsupportedPRNGError) Error() string {
	return io.Sf("UnsupportedPRNG: %s: %v", e.Kind, e.Err)
}

func (e *UnsupportedPRNGError) Unwrap() error { return e.Err }

// RateCalculatorReturnError reports a NaN or infinite rate returned by a
// user rate calculator (negative returns are clamped to zero, not errors).
type RateCalculatorReturnError struct {
	ProcessID int
	Gidx      int
	Value     float64
}

func (e *RateCalculatorReturnError) Error() string {
	return io.Sf("RateCalculatorReturnError: process %d at site %d returned %v", e.ProcessID, e.Gidx, e.Value)
}

// TrajectoryIOError wraps a failed trajectory write. The driver does not
// retry: the simulation is reproducible, so failures are deterministic.
type TrajectoryIOError struct {
	Err error
}

func (e *TrajectoryIOError) Error() string {
	return io.Sf("TrajectoryIOError: %v", e.Err)
}

func (e *TrajectoryIOError) Unwrap() error { return e.Err }

// AnalysisPluginError wraps an error returned by an analysis plugin; a
// panic inside a plugin is not recovered. Finalize() is still invoked for
// every plugin registered so far.
type AnalysisPluginError struct {
	Plugin string
	Err    error
}

func (e *AnalysisPluginError) Error() string {
	return io.Sf("AnalysisPluginError: plugin %q: %v", e.Plugin, e.Err)
}

func (e *AnalysisPluginError) Unwrap() error { return e.Err }
