// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_control01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control01: SetDefault gives an infinite time limit and a valid distributor type")

	var c ControlParameters
	c.SetDefault()
	if err := c.Validate(); err != nil {
		tst.Fatalf("default control parameters should validate: %v", err)
	}
	if !math.IsInf(c.TimeLimit, 1) {
		tst.Errorf("default TimeLimit should be +Inf, got %v", c.TimeLimit)
	}
	chk.IntAssert(int(c.DumpInterval), 1)
}

func Test_control02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control02: Validate enforces redistribution constraints")

	var c ControlParameters
	c.SetDefault()
	c.DoRedistribution = true
	c.RedistributionInterval = 0
	if err := c.Validate(); err == nil {
		tst.Errorf("expected a ValidationError for redistribution_interval < 1")
	}

	var c2 ControlParameters
	c2.SetDefault()
	c2.DoRedistribution = true
	c2.DistributorType = "ProcessRandomDistributor"
	c2.EmptyElement = ""
	if err := c2.Validate(); err == nil {
		tst.Errorf("expected a ValidationError for missing empty_element with ProcessRandomDistributor")
	}

	var c3 ControlParameters
	c3.SetDefault()
	c3.DistributorType = "NotARealDistributor"
	if err := c3.Validate(); err == nil {
		tst.Errorf("expected a ValidationError for an unknown distributor_type")
	}
}

func Test_control03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control03: ToDriverConfig builds a SplitRandomDistributor by default")

	species := NewSpeciesTable([]string{"A", "B", "V"})
	var c ControlParameters
	c.SetDefault()
	c.DoRedistribution = true
	c.FastSpecies = []string{"V"}
	c.NSplits = [3]int{2, 2, 1}

	dc, err := c.ToDriverConfig(species)
	if err != nil {
		tst.Fatalf("ToDriverConfig failed: %v", err)
	}
	if dc.Redistributor == nil {
		tst.Fatalf("expected a non-nil Redistributor")
	}
	chk.IntAssert(int(dc.NumberOfSteps), 0)
}

func Test_control04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control04: ToDriverConfig resolves empty_element for ProcessRandomDistributor")

	species := NewSpeciesTable([]string{"A", "B", "V"})
	var c ControlParameters
	c.SetDefault()
	c.DoRedistribution = true
	c.DistributorType = "ProcessRandomDistributor"
	c.EmptyElement = "V"
	c.TargetDensity = 0.7

	dc, err := c.ToDriverConfig(species)
	if err != nil {
		tst.Fatalf("ToDriverConfig failed: %v", err)
	}
	if dc.Redistributor == nil {
		tst.Fatalf("expected a non-nil Redistributor")
	}
}

func Test_control05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control05: ToDriverConfig is nil Redistributor when redistribution is off")

	species := NewSpeciesTable([]string{"A"})
	var c ControlParameters
	c.SetDefault()
	c.DoRedistribution = false

	dc, err := c.ToDriverConfig(species)
	if err != nil {
		tst.Fatalf("ToDriverConfig failed: %v", err)
	}
	if dc.Redistributor != nil {
		tst.Errorf("expected a nil Redistributor when redistribution is disabled")
	}
}
