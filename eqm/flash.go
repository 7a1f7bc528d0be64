// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqm

import (
	"github.com/cpmech/gosl/num"
)

// Flash performs an isothermal flash of feed z at temperature T and pressure
// P. K-values are seeded from Raoult's law and stabilised by an outer
// substitution loop; each outer iteration solves the Rachford-Rice equation
//  sum_i z_i (K_i - 1) / (1 + beta (K_i - 1)) = 0
// for the vapour fraction beta with Brent's method. Feeds with all K above
// or all below one short-circuit to superheated vapour (beta=1) or subcooled
// liquid (beta=0). The flash never raises on slow stabilisation: when the
// outer budget runs out, the last estimate is returned with Converged set
// to false. Errors are reserved for bad inputs.
func (o *Solver) Flash(z []float64, T, P float64) (res *Result, err error) {
	err = o.checkComposition(z)
	if err != nil {
		return
	}
	if P <= 0 || P > Pmax {
		return nil, o.pressureErr(P)
	}
	res = o.newResult()
	res.T = T
	res.P = P
	zn := make([]float64, o.ncp)
	copy(zn, z)
	clampNormalize(zn)
	err = o.psats(res.Psat, T)
	if err != nil {
		return nil, err
	}

	// seed K from Raoult's law
	K := res.K
	for i := 0; i < o.ncp; i++ {
		K[i] = res.Psat[i] / P
	}

	Kold := make([]float64, o.ncp)
	x, y, gam := res.X, res.Y, res.Gamma
	for it := 0; it < o.itFlash; it++ {
		res.It = it + 1

		// degenerate feeds: single phase
		allAbove, allBelow := true, true
		for i := 0; i < o.ncp; i++ {
			if K[i] <= 1 {
				allAbove = false
			}
			if K[i] >= 1 {
				allBelow = false
			}
		}
		if allAbove || allBelow {
			res.Beta = 0
			if allAbove {
				res.Beta = 1
			}
			copy(x, zn)
			copy(y, zn)
			o.Model.Gamma(gam, x, T)
			res.Converged = true
			res.Strategy = "single-phase"
			return
		}

		// Rachford-Rice for beta
		rr := func(beta float64) (float64, error) {
			var sum float64
			for i := 0; i < o.ncp; i++ {
				sum += zn[i] * (K[i] - 1.0) / (1.0 + beta*(K[i]-1.0))
			}
			return sum, nil
		}
		var brent num.Brent
		brent.Init(rr)
		res.Beta, err = brent.Solve(1e-8, 1.0-1e-8, true)
		if err != nil {
			// keep iterating from the midpoint
			res.Beta = 0.5
			err = nil
		}

		// phase compositions
		for i := 0; i < o.ncp; i++ {
			x[i] = zn[i] / (1.0 + res.Beta*(K[i]-1.0))
			y[i] = K[i] * x[i]
		}
		clampNormalize(x)
		clampNormalize(y)

		// update K from the activity model
		o.Model.Gamma(gam, x, T)
		copy(Kold, K)
		for i := 0; i < o.ncp; i++ {
			K[i] = gam[i] * res.Psat[i] / P
		}
		res.Resid = maxAbsDiff(K, Kold)
		if res.Resid < o.tolK {
			res.Converged = true
			res.Strategy = "rachford-rice"
			return
		}
	}

	// iteration budget exhausted: the last estimate is still the answer,
	// with the convergence flag down and Resid recording the K drift
	res.Strategy = "rachford-rice"
	return
}
