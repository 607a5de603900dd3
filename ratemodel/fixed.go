// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratemodel

import "github.com/cpmech/gokmc/kmc"

// Fixed returns each process's own base rate unchanged: the explicit,
// named form of "no rate calculator attached". Kept as a Model (rather than
// just leaving Interactions.Calc nil) so a control file can name it like
// any other model and swap it for Custom or Arrhenius without touching
// driver wiring.
type Fixed struct{}

func init() {
	allocators["fixed"] = func() Model { return &Fixed{} }
}

// Init accepts and ignores any parameters.
func (o *Fixed) Init(prms map[string]float64) error { return nil }

// Rate returns p.Rate, the process's own configured constant.
func (o *Fixed) Rate(lat *kmc.LatticeMap, cfg *kmc.Configuration, sites *kmc.SitesMap, p *kmc.Process, gidx int) float64 {
	return p.Rate
}
