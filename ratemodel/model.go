// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratemodel provides kmc.RateCalculator implementations, selected
// and configured through the same init()-registered allocator map msolid
// uses for its constitutive models.
package ratemodel

import "github.com/cpmech/gokmc/kmc"

// Model is a named, registry-constructible rate calculator: the
// per-site-rate analogue of msolid.Model (Init from named parameters, then
// queried many times).
type Model interface {
	kmc.RateCalculator
	Init(prms map[string]float64) error
}

// allocators is populated by each model file's init(), mirroring msolid's
// own allocators map.
var allocators = make(map[string]func() Model)

// New builds the named model and initializes it with prms.
func New(name string, prms map[string]float64) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, kmc.NewValidationError("ratemodel: unknown model %q", name)
	}
	m := alloc()
	if err := m.Init(prms); err != nil {
		return nil, err
	}
	return m, nil
}
