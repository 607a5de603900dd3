// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mreten

import (
	"testing"

	"github.com/cpmech/gokmc/kmc"
	"github.com/cpmech/gosl/chk"
)

func Test_speciesplot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("speciesplot01: RegisterStep records the occupied fraction per tracked species")

	lat := kmc.NewLatticeMap(4, 1, 1, 1, true, true, true,
		kmc.Coord{X: 1, Y: 0, Z: 0}, kmc.Coord{X: 0, Y: 1, Z: 0}, kmc.Coord{X: 0, Y: 0, Z: 1},
		[]kmc.Coord{{X: 0, Y: 0, Z: 0}})
	cfg := kmc.NewConfiguration(lat, []int{1, 1, 2, 2})
	sites := kmc.NewSitesMap(lat, make([]int, lat.NSites()))

	plugin := NewSpeciesFractionPlot("frac", []int{1, 2}, nil, "'b-'")
	if err := plugin.Setup(lat, cfg, sites); err != nil {
		tst.Fatalf("Setup failed: %v", err)
	}
	if err := plugin.RegisterStep(0, 0.0, cfg, nil); err != nil {
		tst.Fatalf("RegisterStep failed: %v", err)
	}

	chk.Scalar(tst, "species 1 fraction", 1e-12, plugin.fractions[1][0], 0.5)
	chk.Scalar(tst, "species 2 fraction", 1e-12, plugin.fractions[2][0], 0.5)
	chk.IntAssert(len(plugin.times), 1)
}

func Test_speciesplot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("speciesplot02: fraction tracks configuration changes across steps")

	lat := kmc.NewLatticeMap(4, 1, 1, 1, true, true, true,
		kmc.Coord{X: 1, Y: 0, Z: 0}, kmc.Coord{X: 0, Y: 1, Z: 0}, kmc.Coord{X: 0, Y: 0, Z: 1},
		[]kmc.Coord{{X: 0, Y: 0, Z: 0}})
	cfg := kmc.NewConfiguration(lat, []int{1, 1, 1, 2})
	sites := kmc.NewSitesMap(lat, make([]int, lat.NSites()))

	plugin := NewSpeciesFractionPlot("frac", []int{1}, nil, "'b-'")
	plugin.Setup(lat, cfg, sites)
	plugin.RegisterStep(0, 0.0, cfg, nil)

	cfg.Types[0] = 2 // one fewer species-1 site
	plugin.RegisterStep(1, 0.1, cfg, nil)

	chk.Scalar(tst, "first fraction", 1e-12, plugin.fractions[1][0], 0.75)
	chk.Scalar(tst, "second fraction", 1e-12, plugin.fractions[1][1], 0.5)
}
