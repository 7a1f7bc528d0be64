// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// Rgas is the universal gas constant [J/(mol.K)]
const Rgas = 8.314

// Solubility computes the mole fraction of the solute (the first component)
// dissolved in the remaining components at temperature T, from the van't
// Hoff expression
//  ln(x1 * gamma1) = -(Hfus/R) * (1/T - 1/Tfus)
// The ideal solubility is the seed; the activity correction is resolved by
// substitution. When the substitution stalls the ideal value is returned
// with Converged set to false. The solute must carry fusion data.
func (o *Solver) Solubility(T float64) (res *Result, err error) {
	solute, err := o.Props.Get(o.Comps[0])
	if err != nil {
		return
	}
	if solute.Tfus <= 0 || solute.Hfus <= 0 {
		return nil, chk.Err("solubility: component %q has no fusion data (Tfus=%g, Hfus=%g)", solute.Name, solute.Tfus, solute.Hfus)
	}
	if T <= 0 || T >= solute.Tfus {
		return nil, chk.Err("solubility: temperature %g K must be positive and below the melting point %g K", T, solute.Tfus)
	}
	res = o.newResult()
	res.T = T

	// ideal solubility
	lnxg := -(solute.Hfus / Rgas) * (1.0/T - 1.0/solute.Tfus)
	xid := math.Exp(lnxg)
	if xid > 1 {
		xid = 1
	}

	// activity correction by substitution; the solvent takes the balance
	// split evenly among the remaining components
	x := res.X
	setSolution := func(x1 float64) {
		x[0] = x1
		for i := 1; i < o.ncp; i++ {
			x[i] = (1.0 - x1) / float64(o.ncp-1)
		}
	}
	x1 := xid
	for it := 0; it < o.itFix; it++ {
		res.It = it + 1
		setSolution(x1)
		o.Model.Gamma(res.Gamma, x, T)
		x1new := math.Exp(lnxg) / res.Gamma[0]
		if x1new > 1 {
			x1new = 1
		}
		if math.IsNaN(x1new) || x1new <= 0 {
			break
		}
		if math.Abs(x1new-x1) < o.tolBub {
			res.Converged = true
			res.Strategy = "fixpoint"
			x1 = x1new
			break
		}
		x1 = x1new
	}
	if !res.Converged {
		x1 = xid
		res.Strategy = "ideal"
	}
	setSolution(x1)
	o.Model.Gamma(res.Gamma, x, T)
	return
}

// Eutectic locates the eutectic point of a binary system, the temperature
// where the two ideal van't Hoff solubility branches intersect:
//  x1(T) + x2(T) = 1,  ln x_i = -(Hfus_i/R) * (1/T - 1/Tfus_i)
// Both components must carry fusion data. Activity coefficients at the
// eutectic composition are evaluated for the record.
func (o *Solver) Eutectic() (res *Result, err error) {
	if o.ncp != 2 {
		return nil, chk.Err("eutectic: a binary system is required; got %d components", o.ncp)
	}
	Tf := make([]float64, 2)
	Hf := make([]float64, 2)
	for i := 0; i < 2; i++ {
		c, e := o.Props.Get(o.Comps[i])
		if e != nil {
			return nil, e
		}
		if c.Tfus <= 0 || c.Hfus <= 0 {
			return nil, chk.Err("eutectic: component %q has no fusion data (Tfus=%g, Hfus=%g)", c.Name, c.Tfus, c.Hfus)
		}
		Tf[i] = c.Tfus
		Hf[i] = c.Hfus
	}

	// both branches tend to zero at low T, so the residual passes from
	// negative to positive below the lower melting point
	branch := func(i int, T float64) float64 {
		return math.Exp(-(Hf[i] / Rgas) * (1.0/T - 1.0/Tf[i]))
	}
	ffcn := func(T float64) (float64, error) {
		return branch(0, T) + branch(1, T) - 1.0, nil
	}
	Thi := math.Min(Tf[0], Tf[1]) - 1e-6
	Tlo := 0.3 * Thi
	Ts := utl.LinSpace(Tlo, Thi, 41)
	fa, _ := ffcn(Ts[0])
	for k := 1; k < len(Ts); k++ {
		fb, _ := ffcn(Ts[k])
		if fa*fb <= 0 {
			var brent num.Brent
			brent.Init(ffcn)
			Teut, e := brent.Solve(Ts[k-1], Ts[k], true)
			if e != nil {
				return nil, chk.Err("eutectic: root refinement failed in [%g,%g] K: %v", Ts[k-1], Ts[k], e)
			}
			res = o.newResult()
			res.T = Teut
			res.X[0] = branch(0, Teut)
			res.X[1] = 1.0 - res.X[0]
			o.Model.Gamma(res.Gamma, res.X, Teut)
			res.It = brent.It
			res.Converged = true
			res.Strategy = "brent"
			return
		}
		fa = fb
	}
	return nil, chk.Err("eutectic: no intersection of the solubility branches in [%g,%g] K", Tlo, Thi)
}
