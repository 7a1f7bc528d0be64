// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/Edu176w/plataforma-equilibrio-sub000/eqm"
	"github.com/Edu176w/plataforma-equilibrio-sub000/par"
	"github.com/Edu176w/plataforma-equilibrio-sub000/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for calculations. Temperatures are given in Celsius
// and pressures in kPa; the conversion to Kelvin and Pascal happens here at
// the input boundary and nowhere else.
type Data struct {
	Desc     string `json:"desc"`     // description of calculation
	Matfile  string `json:"matfile"`  // extra interaction parameters file path; optional
	Propfile string `json:"propfile"` // extra component properties file path; optional
}

// CalcData defines one equilibrium calculation
type CalcData struct {
	Kind  string    `json:"kind"`  // "bubblep", "bubblet", "dewp", "dewt", "flash", "llflash", "binodal", "solubility", "eutectic", "pxy", "txy", "xy", "ternary"
	Model string    `json:"model"` // activity model name: "ideal", "nrtl", "uniquac", "unifac"
	Comps []string  `json:"comps"` // component identities
	Z     []float64 `json:"z"`     // feed/known composition
	TdegC float64   `json:"t"`     // temperature [C]
	PkPa  float64   `json:"p"`     // pressure [kPa]
	Np    int       `json:"np"`    // number of diagram points
}

// Simulation holds one input file: global data, solver tuning and the list
// of calculations to run
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global data
	Calcs  []CalcData `json:"calcs"`  // calculations to run
	Tuning fun.Prms   `json:"tuning"` // solver tuning parameters

	// derived
	Key   string         // simulation key = filename without extension
	Props *prop.Database // property database with extras loaded
	Pars  *par.Database  // parameter database with extras loaded
}

// Kelvin converts a Celsius input temperature
func Kelvin(TdegC float64) float64 { return TdegC + 273.15 }

// Pascal converts a kPa input pressure
func Pascal(PkPa float64) float64 { return PkPa * 1000.0 }

// ReadSim reads a simulation input file. Built-in property and parameter
// tables are always loaded; the optional matfile and propfile entries extend
// or override them.
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q: %v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// databases
	o.Props = prop.NewDatabase()
	if o.Data.Propfile != "" {
		err = o.Props.ReadJSON(dir, o.Data.Propfile)
		if err != nil {
			return nil, err
		}
	}
	o.Pars = par.NewDatabase()
	if o.Data.Matfile != "" {
		err = o.Pars.ReadJSON(dir, o.Data.Matfile)
		if err != nil {
			return nil, err
		}
	}

	// validate calculations
	if len(o.Calcs) == 0 {
		return nil, chk.Err("ReadSim: simulation file %q defines no calculations", simfilepath)
	}
	for i, c := range o.Calcs {
		if c.Model == "" {
			o.Calcs[i].Model = "ideal"
		}
		if len(c.Comps) < 2 {
			return nil, chk.Err("ReadSim: calculation #%d needs at least 2 components", i)
		}
	}
	return
}

// Solver builds an equilibrium solver for calculation number idx, with the
// file's tuning applied
func (o *Simulation) Solver(idx int) (sv *eqm.Solver, err error) {
	if idx < 0 || idx >= len(o.Calcs) {
		return nil, chk.Err("calculation index %d is out of range", idx)
	}
	c := o.Calcs[idx]
	sv, err = eqm.NewSolver(c.Comps, c.Model, o.Props, o.Pars)
	if err != nil {
		return
	}
	if len(o.Tuning) > 0 {
		sv.SetPrms(o.Tuning)
	}
	return
}
