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

// NRTL implements the Renon-Prausnitz non-random two-liquid model [1].
// Binary energies a_ij [K] give tau_ij = a_ij/T and G_ij = exp(-alpha_ij *
// tau_ij). A pair absent from the parameter database is treated as a
// no-interaction pair (tau=0, G=1); this degrade-gracefully policy is
// deliberate and part of the model contract, so that multicomponent
// calculations with partially known parameter tables still complete.
type NRTL struct {

	// parameters
	comps []string    // ordered component identities
	a     [][]float64 // tau numerators a_ij [K]; zero when pair unavailable
	alpha [][]float64 // non-randomness alpha_ij; zero when pair unavailable
	ncp   int         // number of components
}

// add model to factory
func init() {
	allocators["nrtl"] = func() Model { return new(NRTL) }
}

// Init resolves binary parameters for every ordered pair of the component
// set. Missing pairs do not fail: they default to no interaction.
func (o *NRTL) Init(comps []string, pars *par.Database) (err error) {
	if len(comps) < 2 {
		return chk.Err("nrtl: at least two components are required; got %d", len(comps))
	}
	o.ncp = len(comps)
	o.comps = make([]string, o.ncp)
	copy(o.comps, comps)
	o.a = la.MatAlloc(o.ncp, o.ncp)
	o.alpha = la.MatAlloc(o.ncp, o.ncp)
	for i := 0; i < o.ncp; i++ {
		for j := 0; j < o.ncp; j++ {
			if i == j {
				continue
			}
			if p, found := pars.NRTL(comps[i], comps[j]); found {
				o.a[i][j] = p.A12
				o.alpha[i][j] = p.Alpha
			}
		}
	}
	return
}

// Name returns the model name
func (o *NRTL) Name() string { return "nrtl" }

// Gamma computes activity coefficients at (x, T) using the local-composition
// double-sum formula of [1]. Vanishing denominators (< 1e-10) zero the
// corresponding term instead of raising a division error.
func (o *NRTL) Gamma(gam, x []float64, T float64) {
	n := o.ncp

	// tau and G matrices at T
	tau := la.MatAlloc(n, n)
	G := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				G[i][i] = 1.0
				continue
			}
			tau[i][j] = o.a[i][j] / T
			G[i][j] = math.Exp(-o.alpha[i][j] * tau[i][j])
		}
	}

	for i := 0; i < n; i++ {

		// first term: sum_j x_j tau_ji G_ji / sum_k x_k G_ki
		var sum1, sum2 float64
		for j := 0; j < n; j++ {
			sum1 += x[j] * tau[j][i] * G[j][i]
			sum2 += x[j] * G[j][i]
		}
		term1 := 0.0
		if sum2 > small {
			term1 = sum1 / sum2
		}

		// second term: sum over j of the local-composition correction
		term2 := 0.0
		for j := 0; j < n; j++ {
			var sum3, sum4 float64
			for k := 0; k < n; k++ {
				sum3 += x[k] * tau[k][j] * G[k][j]
				sum4 += x[k] * G[k][j]
			}
			if sum4 > small {
				term2 += (x[j] * G[i][j] / sum4) * (tau[i][j] - sum3/sum4)
			}
		}

		gam[i] = math.Exp(term1 + term2)
	}
}
