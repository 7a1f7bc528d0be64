// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements a database of binary-interaction and structural
// parameters for the activity-coefficient models. Lookups are keyed by an
// unordered pair of component identities; the stored coefficients are
// directional, thus a reversed lookup swaps a12 and a21. Absence of a record
// is a valid outcome ("unavailable"), not an error.
package par

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NRTLParams holds one NRTL binary record: tau12 = A12/T, tau21 = A21/T,
// G = exp(-Alpha*tau). A12 and A21 are in Kelvin.
type NRTLParams struct {
	A12   float64 `json:"a12"`
	A21   float64 `json:"a21"`
	Alpha float64 `json:"alpha"`
}

// UNIQUACParams holds one UNIQUAC binary record: tau12 = exp(-A12/T),
// tau21 = exp(-A21/T). A12 and A21 are in Kelvin.
type UNIQUACParams struct {
	A12 float64 `json:"a12"`
	A21 float64 `json:"a21"`
}

// Structural holds the relative molecular volume (R) and surface area (Q)
// of one component, as required by UNIQUAC
type Structural struct {
	R float64 `json:"r"`
	Q float64 `json:"q"`
}

// pair is the unordered lookup key (stored in the order given at load time)
type pair struct {
	a, b string
}

// Database implements the parameter provider. Built-in tables are loaded at
// construction; ReadJSON extends them. The maps must not be mutated after
// concurrent use begins.
type Database struct {
	nrtl       map[pair]NRTLParams
	uniquac    map[pair]UNIQUACParams
	structural map[string]Structural
	groups     map[string][]GroupCount
	subgroups  map[int]Subgroup
	maininter  map[pair2]float64
}

// pair2 keys the UNIFAC main-group interaction matrix (directional)
type pair2 struct {
	m, n int
}

// NewDatabase returns a database loaded with the built-in parameter tables
func NewDatabase() (o *Database) {
	o = NewEmptyDatabase()
	for k, v := range nrtlTable {
		o.nrtl[k] = v
	}
	for k, v := range uniquacTable {
		o.uniquac[k] = v
	}
	for k, v := range structuralTable {
		o.structural[k] = v
	}
	for k, v := range moleculeGroups {
		o.groups[k] = v
	}
	for k, v := range subgroupTable {
		o.subgroups[k] = v
	}
	for k, v := range mainInteraction {
		o.maininter[k] = v
	}
	return
}

// NewEmptyDatabase returns a database with no records; useful for tests and
// for loading parameter sets exclusively from files
func NewEmptyDatabase() (o *Database) {
	o = new(Database)
	o.nrtl = make(map[pair]NRTLParams)
	o.uniquac = make(map[pair]UNIQUACParams)
	o.structural = make(map[string]Structural)
	o.groups = make(map[string][]GroupCount)
	o.subgroups = make(map[int]Subgroup)
	o.maininter = make(map[pair2]float64)
	return
}

// NRTL returns the NRTL record for the (ci,cj) pair, with a12/a21 swapped
// when the record is stored in the reversed order. found==false means the
// pair is unavailable; callers degrade to a no-interaction pair.
func (o *Database) NRTL(ci, cj string) (p NRTLParams, found bool) {
	a, b := strings.ToLower(ci), strings.ToLower(cj)
	if p, found = o.nrtl[pair{a, b}]; found {
		return
	}
	if q, ok := o.nrtl[pair{b, a}]; ok {
		return NRTLParams{A12: q.A21, A21: q.A12, Alpha: q.Alpha}, true
	}
	return
}

// UNIQUAC returns the UNIQUAC binary record for the (ci,cj) pair, swapping
// coefficients on reversed lookup
func (o *Database) UNIQUAC(ci, cj string) (p UNIQUACParams, found bool) {
	a, b := strings.ToLower(ci), strings.ToLower(cj)
	if p, found = o.uniquac[pair{a, b}]; found {
		return
	}
	if q, ok := o.uniquac[pair{b, a}]; ok {
		return UNIQUACParams{A12: q.A21, A21: q.A12}, true
	}
	return
}

// StructuralOf returns the r,q record of a component. Absence is a hard
// precondition failure for UNIQUAC/UNIFAC; the caller decides.
func (o *Database) StructuralOf(c string) (s Structural, found bool) {
	s, found = o.structural[strings.ToLower(c)]
	return
}

// SetNRTL stores an NRTL record (used by file loading and tests)
func (o *Database) SetNRTL(ci, cj string, p NRTLParams) {
	o.nrtl[pair{strings.ToLower(ci), strings.ToLower(cj)}] = p
}

// SetUNIQUAC stores a UNIQUAC record
func (o *Database) SetUNIQUAC(ci, cj string, p UNIQUACParams) {
	o.uniquac[pair{strings.ToLower(ci), strings.ToLower(cj)}] = p
}

// SetStructural stores a structural record
func (o *Database) SetStructural(c string, s Structural) {
	o.structural[strings.ToLower(c)] = s
}

// fileFormat is the JSON layout of a parameter-override file
type fileFormat struct {
	NRTL []struct {
		C1 string `json:"c1"`
		C2 string `json:"c2"`
		NRTLParams
	} `json:"nrtl"`
	UNIQUAC []struct {
		C1 string `json:"c1"`
		C2 string `json:"c2"`
		UNIQUACParams
	} `json:"uniquac"`
	Structural []struct {
		Name string `json:"name"`
		Structural
	} `json:"structural"`
}

// ReadJSON extends the database with binary and structural records from a
// JSON file
func (o *Database) ReadJSON(dir, fn string) (err error) {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}
	var f fileFormat
	err = json.Unmarshal(b, &f)
	if err != nil {
		return chk.Err("cannot parse parameter file %q: %v", fn, err)
	}
	for _, r := range f.NRTL {
		if r.C1 == "" || r.C2 == "" {
			return chk.Err("parameter file %q has NRTL entry with empty component name", fn)
		}
		o.SetNRTL(r.C1, r.C2, r.NRTLParams)
	}
	for _, r := range f.UNIQUAC {
		if r.C1 == "" || r.C2 == "" {
			return chk.Err("parameter file %q has UNIQUAC entry with empty component name", fn)
		}
		o.SetUNIQUAC(r.C1, r.C2, r.UNIQUACParams)
	}
	for _, r := range f.Structural {
		if r.Name == "" {
			return chk.Err("parameter file %q has structural entry with empty component name", fn)
		}
		o.SetStructural(r.Name, r.Structural)
	}
	return
}
