// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eqm implements phase equilibrium calculations for low-pressure
// multicomponent mixtures using the gamma-phi formulation with an ideal
// vapour phase:
//  y_i * P = x_i * gamma_i * Psat_i(T)
// The solver is built once per mixture: component identities, the activity
// model and the property and parameter databases are fixed at construction
// and the model is resolved a single time, not per call.
package eqm

import (
	"math"

	"github.com/Edu176w/plataforma-equilibrio-sub000/mdl/activity"
	"github.com/Edu176w/plataforma-equilibrio-sub000/par"
	"github.com/Edu176w/plataforma-equilibrio-sub000/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// solver constants
const (
	Tmin  = 200.0 // [K] lower bound of temperature searches
	Tmax  = 600.0 // [K] upper bound of temperature searches
	Pmax  = 1e8   // [Pa] plausibility ceiling for computed pressures
	small = 1e-10 // floor for compositions and denominators
	big   = 1e10  // penalty value for out-of-domain residuals
)

// Result holds the outcome of an equilibrium calculation. T and P are the
// resolved conditions; X and Y the liquid and vapour compositions; Gamma,
// K and Psat the quantities of the last converged iteration. Strategy names
// the method that produced the answer when more than one was tried.
type Result struct {
	T         float64   // temperature [K]
	P         float64   // pressure [Pa]
	X         []float64 // liquid mole fractions
	Y         []float64 // vapour mole fractions
	Gamma     []float64 // activity coefficients at (X, T)
	K         []float64 // distribution ratios y/x
	Psat      []float64 // pure component vapour pressures at T [Pa]
	Beta      float64   // vapour fraction (flash only)
	Converged bool      // whether the tolerance was met
	Strategy  string    // method that produced the result
	Resid     float64   // residual of the last iteration
	It        int       // iterations performed
}

// Solver performs bubble point, dew point, flash and liquid-liquid
// calculations for one fixed mixture
type Solver struct {

	// injected at construction
	Comps []string       // component identities, order fixes vector indices
	Model activity.Model // activity model, resolved once
	Props *prop.Database // pure component properties
	Pars  *par.Database  // binary and group interaction parameters

	// tuning
	tolBub  float64 // bubble/dew fixed point tolerance
	tolRR   float64 // Rachford-Rice root tolerance
	tolK    float64 // flash K-value stabilisation tolerance
	itFlash int     // flash outer iteration cap
	itFix   int     // fixed point sweep cap

	ncp int // number of components
}

// NewSolver builds a solver for the given mixture. The component count must
// be between 2 and 4, every component must exist in the property database,
// and the activity model must resolve and initialise against the parameter
// database. Structural preconditions (UNIQUAC r,q; UNIFAC groups) surface
// here, not during the iterations.
func NewSolver(comps []string, model string, props *prop.Database, pars *par.Database) (o *Solver, err error) {
	if len(comps) < 2 || len(comps) > 4 {
		return nil, chk.Err("solver: the number of components must be between 2 and 4; got %d", len(comps))
	}
	for _, c := range comps {
		if !props.Has(c) {
			return nil, chk.Err("solver: component %q is not in the property database", c)
		}
	}
	o = new(Solver)
	o.ncp = len(comps)
	o.Comps = make([]string, o.ncp)
	copy(o.Comps, comps)
	o.Props = props
	o.Pars = pars
	o.Model, err = activity.New(model)
	if err != nil {
		return nil, err
	}
	err = o.Model.Init(comps, pars)
	if err != nil {
		return nil, err
	}

	// default tuning
	o.tolBub = 1e-8
	o.tolRR = 1e-9
	o.tolK = 1e-6
	o.itFlash = 20
	o.itFix = 50
	return
}

// SetPrms overrides solver tuning parameters
func (o *Solver) SetPrms(prms fun.Prms) {
	for _, p := range prms {
		switch p.N {
		case "tolbub":
			o.tolBub = p.V
		case "tolrr":
			o.tolRR = p.V
		case "tolk":
			o.tolK = p.V
		case "itflash":
			o.itFlash = int(p.V)
		case "itfix":
			o.itFix = int(p.V)
		}
	}
}

// newResult allocates a result with vectors sized for this mixture
func (o *Solver) newResult() (r *Result) {
	r = new(Result)
	r.X = make([]float64, o.ncp)
	r.Y = make([]float64, o.ncp)
	r.Gamma = make([]float64, o.ncp)
	r.K = make([]float64, o.ncp)
	r.Psat = make([]float64, o.ncp)
	return
}

// psats fills psat with the pure component vapour pressures at T
func (o *Solver) psats(psat []float64, T float64) (err error) {
	for i, c := range o.Comps {
		psat[i], err = o.Props.VaporPressure(c, T)
		if err != nil {
			return
		}
	}
	return
}

// checkComposition returns an error unless x has the right length, all
// entries non-negative and the sum within tol of one
func (o *Solver) checkComposition(x []float64) error {
	if len(x) != o.ncp {
		return chk.Err("composition vector has %d entries; the mixture has %d components", len(x), o.ncp)
	}
	var sum float64
	for i, v := range x {
		if v < 0 {
			return chk.Err("mole fraction of component %q is negative: %g", o.Comps[i], v)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return chk.Err("mole fractions sum to %g; must sum to one", sum)
	}
	return nil
}

// pressureErr builds the standard error for an implausible pressure
func (o *Solver) pressureErr(P float64) error {
	return chk.Err("pressure %g Pa is outside the plausible range (0, %g]", P, Pmax)
}

// clampNormalize floors entries at small and renormalises to unit sum
func clampNormalize(x []float64) {
	var sum float64
	for i := range x {
		if x[i] < small {
			x[i] = small
		}
		sum += x[i]
	}
	for i := range x {
		x[i] /= sum
	}
}

// maxAbsDiff returns the infinity norm of a-b
func maxAbsDiff(a, b []float64) (d float64) {
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > d {
			d = v
		}
	}
	return
}
