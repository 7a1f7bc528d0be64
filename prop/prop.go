// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements a database of pure-component properties used by the
// phase-equilibrium solvers: Antoine saturation pressures, normal boiling
// points (root-finding seeds) and static constants. The database is
// constructor-injected into the solvers; it is never reached for as a global.
//  References:
//   [1] Poling BE, Prausnitz JM and O'Connell JP (2001) The Properties of
//       Gases and Liquids, 5th ed, McGraw-Hill
package prop

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// mmHg2Pa converts the Antoine correlation output to Pascal
const mmHg2Pa = 133.322

// Component holds static pure-component data. Units are absolute SI
// throughout: Kelvin, Pascal, J/mol, g/mol.
type Component struct {
	Name    string  `json:"name"`    // lowercase identity used in lookups
	Formula string  `json:"formula"` // chemical formula
	MW      float64 `json:"mw"`      // molecular weight [g/mol]
	Tb      float64 `json:"tb"`      // normal boiling point [K]
	Tc      float64 `json:"tc"`      // critical temperature [K]
	Pc      float64 `json:"pc"`      // critical pressure [Pa]
	Omega   float64 `json:"omega"`   // acentric factor
	Tfus    float64 `json:"tfus"`    // fusion (melting) temperature [K]; 0 if unknown
	Hfus    float64 `json:"hfus"`    // enthalpy of fusion [J/mol]; 0 if unknown

	// Antoine correlation: log10(Psat [mmHg]) = A - B/(T[K] + C)
	AntA float64 `json:"antA"`
	AntB float64 `json:"antB"`
	AntC float64 `json:"antC"`
}

// VaporPressure computes the saturation pressure [Pa] at T [K]
func (o *Component) VaporPressure(T float64) float64 {
	return mmHg2Pa * math.Pow(10.0, o.AntA-o.AntB/(T+o.AntC))
}

// Database implements the property provider. The cache of components is
// populated at construction (and optionally extended via ReadJSON) and must
// not be mutated after concurrent use begins; all reads are then safe to
// share across goroutines.
type Database struct {
	components map[string]*Component
}

// NewDatabase returns a database loaded with the built-in component table
func NewDatabase() (o *Database) {
	o = new(Database)
	o.Reset()
	return
}

// Reset discards any loaded data and restores the built-in table. This is
// the explicit invalidation operation of the cache.
func (o *Database) Reset() {
	o.components = make(map[string]*Component)
	for i := range builtin {
		c := builtin[i]
		o.components[c.Name] = &c
	}
}

// ReadJSON extends (or overrides) the database with components from a JSON
// file holding a list of Component records
func (o *Database) ReadJSON(dir, fn string) (err error) {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}
	var extra []Component
	err = json.Unmarshal(b, &extra)
	if err != nil {
		return chk.Err("cannot parse component file %q: %v", fn, err)
	}
	for i := range extra {
		c := extra[i]
		c.Name = strings.ToLower(c.Name)
		if c.Name == "" {
			return chk.Err("component file %q has entry with empty name", fn)
		}
		o.components[c.Name] = &c
	}
	return
}

// Has tells whether a component is present
func (o *Database) Has(name string) bool {
	_, ok := o.components[strings.ToLower(name)]
	return ok
}

// Get returns component data. A missing component is a precondition failure
// for any calculation that needs it.
func (o *Database) Get(name string) (*Component, error) {
	c, ok := o.components[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("component %q is not available in properties database", name)
	}
	return c, nil
}

// VaporPressure returns the saturation pressure [Pa] of a component at T [K]
func (o *Database) VaporPressure(name string, T float64) (psat float64, err error) {
	c, err := o.Get(name)
	if err != nil {
		return
	}
	if T <= 0 {
		return 0, chk.Err("vapor pressure of %q requested at non-positive temperature %g", name, T)
	}
	return c.VaporPressure(T), nil
}

// BoilingPoint returns the normal boiling point [K]; used by the solvers
// only as a root-finding seed
func (o *Database) BoilingPoint(name string) (Tb float64, err error) {
	c, err := o.Get(name)
	if err != nil {
		return
	}
	return c.Tb, nil
}
