// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// DewP computes the dew pressure and incipient liquid composition for a
// vapour of composition y at temperature T. The liquid composition enters
// the activity coefficients, so the problem is implicit; three strategies
// are tried in order and the one that succeeds is recorded in the result:
//  "nlsolver"        Newton iteration on the n-1 independent liquid fractions
//  "fixpoint"        direct substitution
//  "fixpoint-damped" direct substitution with 0.5 damping
// An error is returned when all strategies fail or the resulting pressure
// is implausible.
func (o *Solver) DewP(y []float64, T float64) (res *Result, err error) {
	err = o.checkComposition(y)
	if err != nil {
		return
	}
	res = o.newResult()
	res.T = T
	copy(res.Y, y)
	clampNormalize(res.Y)
	err = o.psats(res.Psat, T)
	if err != nil {
		return nil, err
	}

	// dewEval computes gamma and P for a candidate liquid composition
	gam := make([]float64, o.ncp)
	dewEval := func(x []float64) (P float64) {
		o.Model.Gamma(gam, x, T)
		var sum float64
		for i := 0; i < o.ncp; i++ {
			sum += res.Y[i] / (gam[i] * res.Psat[i])
		}
		return 1.0 / sum
	}

	// strategy 1: Newton on the independent liquid fractions
	x := make([]float64, o.ncp)
	copy(x, res.Y)
	ok := false
	if o.ncp > 1 {
		neq := o.ncp - 1
		ffcn := func(fx, u []float64) error {
			var last float64 = 1.0
			for i := 0; i < neq; i++ {
				x[i] = u[i]
				last -= u[i]
			}
			x[o.ncp-1] = last
			xc := make([]float64, o.ncp)
			copy(xc, x)
			clampNormalize(xc)
			P := dewEval(xc)
			if P <= 0 || math.IsNaN(P) || math.IsInf(P, 0) {
				for i := 0; i < neq; i++ {
					fx[i] = big
				}
				return nil
			}
			for i := 0; i < neq; i++ {
				fx[i] = u[i] - res.Y[i]*P/(gam[i]*res.Psat[i])
			}
			return nil
		}
		u := make([]float64, neq)
		copy(u, res.Y[:neq])
		var sol num.NlSolver
		sol.Init(neq, ffcn, nil, nil, true, true, nil)
		errNl := sol.Solve(u, true)
		if errNl == nil {
			valid := true
			var sum float64
			for i := 0; i < neq; i++ {
				if u[i] < 0 || u[i] > 1 {
					valid = false
				}
				x[i] = u[i]
				sum += u[i]
			}
			x[o.ncp-1] = 1.0 - sum
			if x[o.ncp-1] < 0 {
				valid = false
			}
			if valid {
				res.Strategy = "nlsolver"
				res.It = sol.It
				ok = true
			}
		}
	}

	// strategies 2 and 3: direct substitution, then damped
	if !ok {
		for _, damp := range []float64{1.0, 0.5} {
			copy(x, res.Y)
			xold := make([]float64, o.ncp)
			for it := 0; it < 4*o.itFix; it++ {
				copy(xold, x)
				P := dewEval(x)
				if P <= 0 || math.IsNaN(P) || math.IsInf(P, 0) {
					break
				}
				for i := 0; i < o.ncp; i++ {
					xi := res.Y[i] * P / (gam[i] * res.Psat[i])
					x[i] = damp*xi + (1.0-damp)*xold[i]
				}
				clampNormalize(x)
				if maxAbsDiff(x, xold) < o.tolBub {
					if damp == 1.0 {
						res.Strategy = "fixpoint"
					} else {
						res.Strategy = "fixpoint-damped"
					}
					res.It = it + 1
					ok = true
					break
				}
			}
			if ok {
				break
			}
		}
	}
	if !ok {
		return nil, chk.Err("dew pressure: all strategies (nlsolver, fixpoint, fixpoint-damped) failed for T=%g K", T)
	}

	clampNormalize(x)
	copy(res.X, x)
	res.P = dewEval(res.X)
	copy(res.Gamma, gam)
	if res.P <= 0 || res.P > Pmax || math.IsNaN(res.P) {
		return nil, o.pressureErr(res.P)
	}
	for i := 0; i < o.ncp; i++ {
		res.K[i] = res.Gamma[i] * res.Psat[i] / res.P
	}
	res.Converged = true
	return
}

// DewT computes the dew temperature for a vapour of composition y at
// pressure P. The outer variable is T, resolved with the same bracket scan
// and Brent iteration used for bubble temperatures; an inner substitution
// loop resolves the liquid composition at each trial temperature.
func (o *Solver) DewT(y []float64, P float64) (res *Result, err error) {
	err = o.checkComposition(y)
	if err != nil {
		return
	}
	if P <= 0 || P > Pmax {
		return nil, o.pressureErr(P)
	}
	yn := make([]float64, o.ncp)
	copy(yn, y)
	clampNormalize(yn)

	// residual: Pdew(T) - P, with the liquid composition resolved by an
	// inner substitution loop
	psat := make([]float64, o.ncp)
	gam := make([]float64, o.ncp)
	x := make([]float64, o.ncp)
	xold := make([]float64, o.ncp)
	ffcn := func(T float64) (float64, error) {
		if T < Tmin || T > Tmax {
			return big, nil
		}
		if err := o.psats(psat, T); err != nil {
			return big, nil
		}
		copy(x, yn)
		var Pd float64
		for it := 0; it < 30; it++ {
			copy(xold, x)
			o.Model.Gamma(gam, x, T)
			var sum float64
			for i := 0; i < o.ncp; i++ {
				sum += yn[i] / (gam[i] * psat[i])
			}
			Pd = 1.0 / sum
			if Pd <= 0 || math.IsNaN(Pd) || math.IsInf(Pd, 0) {
				return big, nil
			}
			for i := 0; i < o.ncp; i++ {
				x[i] = yn[i] * Pd / (gam[i] * psat[i])
			}
			clampNormalize(x)
			if maxAbsDiff(x, xold) < 1e-9 {
				break
			}
		}
		return Pd - P, nil
	}

	Tguess := o.seedT(yn)
	T, it, strategy, converged := o.solveT(ffcn, Tguess)

	// evaluate the residual once more so x, gam and psat match T
	resid, _ := ffcn(T)
	res = o.newResult()
	res.T = T
	res.P = P
	copy(res.Y, yn)
	copy(res.X, x)
	copy(res.Gamma, gam)
	copy(res.Psat, psat)
	for i := 0; i < o.ncp; i++ {
		res.K[i] = res.Gamma[i] * res.Psat[i] / res.P
	}
	res.Strategy = strategy
	res.It = it
	res.Converged = converged
	res.Resid = math.Abs(resid)
	return
}
