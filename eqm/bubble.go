// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqm

import (
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// BubbleP computes the bubble pressure and incipient vapour composition for
// a liquid of composition x at temperature T. The calculation is direct:
//  P = sum_i x_i * gamma_i * Psat_i(T)
func (o *Solver) BubbleP(x []float64, T float64) (res *Result, err error) {
	err = o.checkComposition(x)
	if err != nil {
		return
	}
	res = o.newResult()
	res.T = T
	copy(res.X, x)
	clampNormalize(res.X)
	err = o.psats(res.Psat, T)
	if err != nil {
		return nil, err
	}
	o.Model.Gamma(res.Gamma, res.X, T)
	for i := 0; i < o.ncp; i++ {
		res.P += res.X[i] * res.Gamma[i] * res.Psat[i]
	}
	for i := 0; i < o.ncp; i++ {
		res.K[i] = res.Gamma[i] * res.Psat[i] / res.P
		res.Y[i] = res.X[i] * res.K[i]
	}
	res.Converged = true
	res.Strategy = "direct"
	return
}

// bubbleResidual evaluates sum x_i gamma_i Psat_i - P at temperature T,
// returning a large penalty outside the admissible window
func (o *Solver) bubbleResidual(x []float64, T, P float64) float64 {
	if T < Tmin || T > Tmax {
		return big
	}
	psat := make([]float64, o.ncp)
	if err := o.psats(psat, T); err != nil {
		return big
	}
	gam := make([]float64, o.ncp)
	o.Model.Gamma(gam, x, T)
	var sum float64
	for i := 0; i < o.ncp; i++ {
		sum += x[i] * gam[i] * psat[i]
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return big
	}
	return sum - P
}

// BubbleT computes the bubble temperature for a liquid of composition x at
// pressure P. A coarse scan brackets the root for Brent's method; a secant
// iteration from a boiling point weighted seed is the fallback. The best
// estimate is always returned, with Converged flagging whether the tolerance
// was met.
func (o *Solver) BubbleT(x []float64, P float64) (res *Result, err error) {
	err = o.checkComposition(x)
	if err != nil {
		return
	}
	if P <= 0 {
		return nil, o.pressureErr(P)
	}
	xn := make([]float64, o.ncp)
	copy(xn, x)
	clampNormalize(xn)

	ffcn := func(T float64) (float64, error) {
		return o.bubbleResidual(xn, T, P), nil
	}

	// seed: boiling point weighted by composition
	Tguess := o.seedT(xn)

	// coarse scan to bracket the root
	T, it, strategy, converged := o.solveT(ffcn, Tguess)

	// assemble result at the best estimate
	res, err = o.BubbleP(x, T)
	if err != nil {
		return
	}
	res.Strategy = strategy
	res.It = it
	res.Converged = converged
	res.Resid = math.Abs(res.P - P)
	res.P = P

	// the record echoes the specified pressure, so K and y are rebuilt
	// against it; at convergence the correction is within Resid/P
	for i := 0; i < o.ncp; i++ {
		res.K[i] = res.Gamma[i] * res.Psat[i] / P
		res.Y[i] = res.X[i] * res.K[i]
	}
	clampNormalize(res.Y)
	return
}

// seedT returns a composition weighted normal boiling point, clamped to the
// search window
func (o *Solver) seedT(x []float64) (T float64) {
	for i, c := range o.Comps {
		Tb, err := o.Props.BoilingPoint(c)
		if err != nil {
			Tb = 0.5 * (Tmin + Tmax)
		}
		T += x[i] * Tb
	}
	if T < Tmin {
		T = Tmin
	}
	if T > Tmax {
		T = Tmax
	}
	return
}

// solveT finds the root of ffcn in [Tmin,Tmax]. A coarse scan brackets the
// root for Brent's method; on failure a secant iteration runs from Tguess.
// The best estimate is always returned together with the strategy name and
// a convergence flag.
func (o *Solver) solveT(ffcn func(T float64) (float64, error), Tguess float64) (T float64, it int, strategy string, converged bool) {

	// bracket scan + Brent
	Ts := utl.LinSpace(Tmin, Tmax, 41)
	fa, _ := ffcn(Ts[0])
	for k := 1; k < len(Ts); k++ {
		fb, _ := ffcn(Ts[k])
		if fa == big || fb == big {
			fa = fb
			continue
		}
		if fa*fb <= 0 {
			var brent num.Brent
			brent.Init(ffcn)
			Tsol, err := brent.Solve(Ts[k-1], Ts[k], true)
			if err == nil {
				return Tsol, brent.It, "brent", true
			}
			break
		}
		fa = fb
	}

	// secant fallback
	T0, T1 := Tguess, Tguess+5.0
	if T1 > Tmax {
		T1 = Tguess - 5.0
	}
	f0, _ := ffcn(T0)
	f1, _ := ffcn(T1)
	ftol := 1e-6 * (1.0 + math.Abs(f0))
	for it = 0; it < 100; it++ {
		if math.Abs(f1-f0) < small {
			break
		}
		T2 := T1 - f1*(T1-T0)/(f1-f0)
		clamped := false
		if T2 < Tmin {
			T2 = Tmin
			clamped = true
		}
		if T2 > Tmax {
			T2 = Tmax
			clamped = true
		}
		T0, f0 = T1, f1
		T1 = T2
		f1, _ = ffcn(T1)

		// a small step only counts as a root when the iterate was not
		// clamped to the search window and the residual vanished too;
		// otherwise a root may not exist at all
		if !clamped && math.Abs(T1-T0) < 1e-8 && math.Abs(f1) < ftol {
			return T1, it + 1, "secant", true
		}
	}

	// best estimate, unconverged
	if math.Abs(f1) < math.Abs(f0) {
		return T1, it, "secant", false
	}
	return T0, it, "secant", false
}
