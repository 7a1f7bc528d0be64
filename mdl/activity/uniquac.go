// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package activity

import (
	"math"

	"github.com/Edu176w/plataforma-equilibrio-sub000/par"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// zcoord is the UNIQUAC lattice coordination number
const zcoord = 10.0

// UNIQUAC implements the Abrams-Prausnitz universal quasi-chemical model
// [2], with the usual combinatorial (size/shape) and residual (energetic)
// split. Structural r,q values are required for every component: a missing
// record is a precondition failure at Init. Binary energies a_ij [K] give
// tau_ij = exp(-a_ij/T); a missing pair defaults to a_ij = 0, i.e. tau = 1
// (athermal pair), mirroring the NRTL degrade-gracefully policy.
type UNIQUAC struct {

	// parameters
	comps []string    // ordered component identities
	r     []float64   // relative molecular volumes
	q     []float64   // relative molecular surface areas
	a     [][]float64 // interaction energies a_ij [K]; zero when unavailable
	ncp   int         // number of components
}

// add model to factory
func init() {
	allocators["uniquac"] = func() Model { return new(UNIQUAC) }
}

// Init resolves structural and binary parameters. Missing r,q data fails
// immediately; missing binary pairs degrade to athermal interactions.
func (o *UNIQUAC) Init(comps []string, pars *par.Database) (err error) {
	if len(comps) < 2 {
		return chk.Err("uniquac: at least two components are required; got %d", len(comps))
	}
	o.ncp = len(comps)
	o.comps = make([]string, o.ncp)
	copy(o.comps, comps)
	r := make([]float64, o.ncp)
	q := make([]float64, o.ncp)
	for i, c := range comps {
		s, found := pars.StructuralOf(c)
		if !found {
			return chk.Err("uniquac: structural parameters (r,q) are not available for component %q", c)
		}
		r[i] = s.R
		q[i] = s.Q
	}
	o.r = r
	o.q = q
	o.a = la.MatAlloc(o.ncp, o.ncp)
	for i := 0; i < o.ncp; i++ {
		for j := 0; j < o.ncp; j++ {
			if i == j {
				continue
			}
			if p, found := pars.UNIQUAC(comps[i], comps[j]); found {
				o.a[i][j] = p.A12
			}
		}
	}
	return
}

// Name returns the model name
func (o *UNIQUAC) Name() string { return "uniquac" }

// Gamma computes activity coefficients at (x, T). If Init has not resolved
// structural data (r == nil), the unit vector is returned; callers are
// expected to have validated availability beforehand via Init.
func (o *UNIQUAC) Gamma(gam, x []float64, T float64) {
	if o.r == nil {
		la.VecFill(gam, 1.0)
		return
	}
	n := o.ncp

	// volume and area fractions
	var sumXR, sumXQ float64
	for i := 0; i < n; i++ {
		sumXR += x[i] * o.r[i]
		sumXQ += x[i] * o.q[i]
	}
	phi := make([]float64, n)
	theta := make([]float64, n)
	for i := 0; i < n; i++ {
		if sumXR > small {
			phi[i] = x[i] * o.r[i] / sumXR
		}
		if sumXQ > small {
			theta[i] = x[i] * o.q[i] / sumXQ
		}
	}

	// l parameter and tau matrix at T
	l := make([]float64, n)
	var sumXL float64
	for i := 0; i < n; i++ {
		l[i] = zcoord/2.0*(o.r[i]-o.q[i]) - (o.r[i] - 1.0)
		sumXL += x[i] * l[i]
	}
	tau := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				tau[i][i] = 1.0
				continue
			}
			tau[i][j] = math.Exp(-o.a[i][j] / T)
		}
	}

	// combinatorial and residual terms
	for i := 0; i < n; i++ {

		lnGamC := 0.0
		if x[i] > small && phi[i] > small {
			lnGamC = math.Log(phi[i]/x[i]) + zcoord/2.0*o.q[i]*math.Log(theta[i]/phi[i]) + l[i]
			lnGamC -= phi[i] / x[i] * sumXL
		}

		var sum1 float64
		for j := 0; j < n; j++ {
			sum1 += theta[j] * tau[j][i]
		}
		var sum2 float64
		for j := 0; j < n; j++ {
			var sum3 float64
			for k := 0; k < n; k++ {
				sum3 += theta[k] * tau[k][j]
			}
			if sum3 > small {
				sum2 += theta[j] * tau[i][j] / sum3
			}
		}
		lnGamR := 0.0
		if sum1 > small {
			lnGamR = o.q[i] * (1.0 - math.Log(sum1) - sum2)
		}

		gam[i] = math.Exp(lnGamC + lnGamR)
	}
}
