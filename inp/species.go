// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gokmc/kmc"

// SpeciesTable maps between the string species names a control file uses
// and the dense integer codes kmc.Configuration stores. "*" always maps to
// kmc.Wildcard (0) and is never listed in Names.
type SpeciesTable struct {
	Names   []string       // [code-1] name; code 0 is always "*"
	byName  map[string]int
}

// NewSpeciesTable builds a table from an ordered, deduplicated name list.
// Names are assigned codes 1..len(names) in the order given.
func NewSpeciesTable(names []string) *SpeciesTable {
	o := &SpeciesTable{Names: append([]string(nil), names...), byName: make(map[string]int, len(names))}
	for i, n := range names {
		o.byName[n] = i + 1
	}
	return o
}

// Code returns the integer code for name ("*" returns kmc.Wildcard).
func (o *SpeciesTable) Code(name string) (int, error) {
	if name == "*" {
		return kmc.Wildcard, nil
	}
	c, ok := o.byName[name]
	if !ok {
		return 0, kmc.NewValidationError("unknown species name %q", name)
	}
	return c, nil
}

// Name returns the string name for code (kmc.Wildcard returns "*").
func (o *SpeciesTable) Name(code int) string {
	if code == kmc.Wildcard {
		return "*"
	}
	if code < 1 || code > len(o.Names) {
		return "?"
	}
	return o.Names[code-1]
}

// CodesOf maps a slice of names to codes, failing on the first unknown name.
func (o *SpeciesTable) CodesOf(names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, n := range names {
		c, err := o.Code(n)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
