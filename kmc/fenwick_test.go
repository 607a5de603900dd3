// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fenwick01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fenwick01: prefix sums match a direct running total")

	f := NewFenwick(6)
	weights := []float64{3, 0, 5, 2, 0, 7}
	for i, w := range weights {
		f.Set(i, w)
	}
	var want float64
	for i := 0; i <= len(weights); i++ {
		got := f.PrefixSum(i)
		chk.Scalar(tst, "prefix sum", 1e-12, got, want)
		if i < len(weights) {
			want += weights[i]
		}
	}
	chk.Scalar(tst, "total", 1e-12, f.Total(), 17)
}

func Test_fenwick02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fenwick02: Set updates delta and total correctly")

	f := NewFenwick(4)
	f.Set(0, 1)
	f.Set(1, 2)
	f.Set(2, 3)
	f.Set(3, 4)
	chk.Scalar(tst, "total after initial sets", 1e-12, f.Total(), 10)

	f.Set(1, 10) // was 2, now 10: delta +8
	chk.Scalar(tst, "total after update", 1e-12, f.Total(), 18)
	chk.Scalar(tst, "Get reflects the update", 1e-12, f.Get(1), 10)
}

func Test_fenwick03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fenwick03: FindByWeight selects the bucket target falls into")

	f := NewFenwick(3)
	f.Set(0, 1) // [0, 1)
	f.Set(1, 2) // [1, 3)
	f.Set(2, 3) // [3, 6)

	cases := []struct {
		target float64
		want   int
	}{
		{0.0, 0}, {0.99, 0}, {1.0, 1}, {2.99, 1}, {3.0, 2}, {5.99, 2},
	}
	for _, c := range cases {
		got := f.FindByWeight(c.target)
		if got != c.want {
			tst.Errorf("FindByWeight(%v) = %d, want %d", c.target, got, c.want)
		}
	}
}
