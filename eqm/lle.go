// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// SplitResult holds the outcome of a liquid-liquid calculation. Phases is 1
// when the feed is a single stable liquid, in which case XI and XII both
// equal the feed. Message carries the reason when a split was suspected but
// could not be resolved.
type SplitResult struct {
	T       float64   // temperature [K]
	Z       []float64 // feed composition
	Phases  int       // number of liquid phases (1 or 2)
	XI      []float64 // composition of liquid phase I
	XII     []float64 // composition of liquid phase II
	GammaI  []float64 // activity coefficients in phase I
	GammaII []float64 // activity coefficients in phase II
	Message string    // diagnostic when the split could not be resolved
}

// Stable reports whether a liquid of composition z at temperature T is
// taken as a single stable phase. The screen is a heuristic: a split is
// suspected only when every activity coefficient exceeds 1.5, which captures
// the strongly non-ideal mixtures this solver targets while never flagging
// near-ideal ones.
func (o *Solver) Stable(z []float64, T float64) (stable bool, gam []float64, err error) {
	err = o.checkComposition(z)
	if err != nil {
		return
	}
	zn := make([]float64, o.ncp)
	copy(zn, z)
	clampNormalize(zn)
	gam = make([]float64, o.ncp)
	o.Model.Gamma(gam, zn, T)
	for i := 0; i < o.ncp; i++ {
		if gam[i] <= 1.5 {
			return true, gam, nil
		}
	}
	return false, gam, nil
}

// LLFlash resolves the liquid-liquid state of feed z at temperature T.
// Stable feeds return a single phase immediately. Suspected splits are
// resolved by Newton iteration on the iso-activity conditions
//  x_i^I gamma_i^I = x_i^II gamma_i^II
// closed by the normalisation of both phases and, for ternary feeds, the
// requirement that the feed lies on the tie line. Mixtures with more than
// three components are not supported.
func (o *Solver) LLFlash(z []float64, T float64) (res *SplitResult, err error) {
	stable, gam, err := o.Stable(z, T)
	if err != nil {
		return
	}
	zn := make([]float64, o.ncp)
	copy(zn, z)
	clampNormalize(zn)
	res = &SplitResult{T: T, Z: zn, Phases: 1}
	res.XI = make([]float64, o.ncp)
	res.XII = make([]float64, o.ncp)
	res.GammaI = make([]float64, o.ncp)
	res.GammaII = make([]float64, o.ncp)
	if stable {
		copy(res.XI, zn)
		copy(res.XII, zn)
		copy(res.GammaI, gam)
		copy(res.GammaII, gam)
		return
	}
	if o.ncp > 3 {
		return nil, chk.Err("liquid-liquid split is only supported for binary and ternary mixtures; got %d components", o.ncp)
	}

	// unknowns: u = [xI..., xII...]; equations: n iso-activity, 2
	// normalisations and, for ternaries, the tie line through the feed
	n := o.ncp
	neq := 2 * n
	gamI, gamII := res.GammaI, res.GammaII
	ffcn := func(fx, u []float64) error {
		xI := make([]float64, n)
		xII := make([]float64, n)
		copy(xI, u[:n])
		copy(xII, u[n:])
		clampNormalize(xI)
		clampNormalize(xII)
		o.Model.Gamma(gamI, xI, T)
		o.Model.Gamma(gamII, xII, T)
		for i := 0; i < n; i++ {
			fx[i] = xI[i]*gamI[i] - xII[i]*gamII[i]
		}
		var sumI, sumII float64
		for i := 0; i < n; i++ {
			sumI += u[i]
			sumII += u[n+i]
		}
		fx[n] = sumI - 1.0
		if n == 2 {
			fx[n+1] = sumII - 1.0
		} else {
			fx[n+1] = sumII - 1.0
			// tie line through the feed: det of the two in-plane
			// difference vectors must vanish
			fx[n+2] = (u[0]-zn[0])*(u[n+1]-zn[1]) - (u[1]-zn[1])*(u[n]-zn[0])
		}
		return nil
	}
	// seed: phase I rich in the first component, phase II in the second
	u := make([]float64, neq)
	seedSplit(u, zn, n)

	var sol num.NlSolver
	sol.Init(neq, ffcn, nil, nil, true, true, nil)
	errNl := sol.Solve(u, true)
	if errNl != nil {
		return nil, chk.Err("liquid-liquid split: iso-activity system failed at T=%g K: %v", T, errNl)
	}

	copy(res.XI, u[:n])
	copy(res.XII, u[n:])
	clampNormalize(res.XI)
	clampNormalize(res.XII)
	o.Model.Gamma(res.GammaI, res.XI, T)
	o.Model.Gamma(res.GammaII, res.XII, T)

	// a trivial solution means the split collapsed onto the feed
	if maxAbsDiff(res.XI, res.XII) <= 0.05 {
		res.Phases = 1
		copy(res.XI, zn)
		copy(res.XII, zn)
		res.Message = "could not resolve a two-phase split; the iso-activity system converged to the trivial solution"
		return
	}

	// residual check of the iso-activity conditions
	for i := 0; i < n; i++ {
		r := math.Abs(res.XI[i]*res.GammaI[i] - res.XII[i]*res.GammaII[i])
		if r > 1e-4 {
			return nil, chk.Err("liquid-liquid split: iso-activity residual %g exceeds tolerance at T=%g K", r, T)
		}
	}
	res.Phases = 2
	return
}

// seedSplit fills u with phase guesses biased to opposite corners
func seedSplit(u, z []float64, n int) {
	if n == 2 {
		u[0], u[1] = 0.95, 0.05
		u[2], u[3] = 0.05, 0.95
		return
	}
	// ternary: perturb the two majority components, keep the third at the
	// feed value
	u[0], u[1], u[2] = 0.90*(1.0-z[2]), 0.10*(1.0-z[2]), z[2]
	u[3], u[4], u[5] = 0.10*(1.0-z[2]), 0.90*(1.0-z[2]), z[2]
}

// Binodal sweeps np feed points across the composition range of the first
// two components and collects the tie lines of the feeds that split. Feeds
// that stay single phase or fail to resolve are skipped.
func (o *Solver) Binodal(T float64, np int) (ties []*SplitResult, err error) {
	if np < 2 {
		return nil, chk.Err("binodal: at least 2 sweep points are required; got %d", np)
	}
	z := make([]float64, o.ncp)
	for k := 0; k < np; k++ {
		w := 0.02 + 0.96*float64(k)/float64(np-1)
		if o.ncp == 2 {
			z[0], z[1] = w, 1.0-w
		} else {
			// ternary sweep at a low solvent loading
			z[2] = 0.05
			z[0] = w * (1.0 - z[2])
			z[1] = (1.0 - w) * (1.0 - z[2])
		}
		res, errLL := o.LLFlash(z, T)
		if errLL != nil || res.Phases != 2 {
			continue
		}
		ties = append(ties, res)
	}
	return
}
