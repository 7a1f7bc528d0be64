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

// UNIFAC implements the Fredenslund-Jones-Prausnitz group-contribution
// model [3]. The combinatorial term is the UNIQUAC one with r,q derived from
// subgroup counts; the residual term combines group activity coefficients
// evaluated once for the mixture and once per pure component:
//  ln(gamma_i^res) = sum_k nu_k^(i) * (ln Gk^mix - ln Gk^pure,i)
// Missing group decompositions or subgroup records are precondition failures
// at Init. Any failure during Gamma (numerical blow-up, non-finite or
// non-positive coefficient) makes the whole call fall back to the unit
// vector. The blanket fallback is deliberate: UNIFAC is the most fragile of
// the models and a partial answer would be worse than ideality. The cause of
// the last fallback is kept for diagnostics (see Fallback).
type UNIFAC struct {

	// parameters
	comps []string    // ordered component identities
	subs  []int       // distinct subgroup ids present in the mixture
	main  []int       // main group of each subgroup in subs
	Rk    []float64   // subgroup relative volumes
	Qk    []float64   // subgroup relative surface areas
	nu    [][]float64 // nu[i][m]: count of subgroup m in component i
	r     []float64   // component relative volumes (group-derived)
	q     []float64   // component relative surface areas (group-derived)
	ncp   int         // number of components
	ngr   int         // number of distinct subgroups

	// interaction energies a_mn [K] between subgroups (via main groups)
	aGr [][]float64

	// diagnostics
	fallback string // reason of the last fallback-to-ideal; "" if none
}

// add model to factory
func init() {
	allocators["unifac"] = func() Model { return new(UNIFAC) }
}

// Init resolves the group decomposition of every component and the group
// interaction energies. Missing groups are hard failures here, before any
// equilibrium iteration begins.
func (o *UNIFAC) Init(comps []string, pars *par.Database) (err error) {
	if len(comps) < 2 {
		return chk.Err("unifac: at least two components are required; got %d", len(comps))
	}
	o.ncp = len(comps)
	o.comps = make([]string, o.ncp)
	copy(o.comps, comps)

	// collect decompositions and the distinct subgroup set
	idx := make(map[int]int) // subgroup id -> position in subs
	decomp := make([][]par.GroupCount, o.ncp)
	for i, c := range comps {
		gc, found := pars.GroupsOf(c)
		if !found {
			return chk.Err("unifac: group decomposition is not available for component %q", c)
		}
		decomp[i] = gc
		for _, g := range gc {
			if _, ok := idx[g.Sub]; !ok {
				idx[g.Sub] = len(o.subs)
				o.subs = append(o.subs, g.Sub)
			}
		}
	}
	o.ngr = len(o.subs)

	// subgroup records
	o.main = make([]int, o.ngr)
	o.Rk = make([]float64, o.ngr)
	o.Qk = make([]float64, o.ngr)
	for m, id := range o.subs {
		s, found := pars.SubgroupOf(id)
		if !found {
			return chk.Err("unifac: subgroup %d (used by this mixture) is not in the group table", id)
		}
		o.main[m] = s.Main
		o.Rk[m] = s.Rk
		o.Qk[m] = s.Qk
	}

	// count matrix and derived r,q
	o.nu = la.MatAlloc(o.ncp, o.ngr)
	o.r = make([]float64, o.ncp)
	o.q = make([]float64, o.ncp)
	for i := 0; i < o.ncp; i++ {
		for _, g := range decomp[i] {
			m := idx[g.Sub]
			o.nu[i][m] += float64(g.Count)
			o.r[i] += float64(g.Count) * o.Rk[m]
			o.q[i] += float64(g.Count) * o.Qk[m]
		}
	}

	// group interaction energies via main groups
	o.aGr = la.MatAlloc(o.ngr, o.ngr)
	for m := 0; m < o.ngr; m++ {
		for k := 0; k < o.ngr; k++ {
			if o.main[m] == o.main[k] {
				continue
			}
			o.aGr[m][k] = pars.GroupInteraction(o.main[m], o.main[k])
		}
	}
	return
}

// Name returns the model name
func (o *UNIFAC) Name() string { return "unifac" }

// Fallback returns the reason of the last fallback-to-ideal, or "" when the
// last Gamma call completed normally
func (o *UNIFAC) Fallback() string { return o.fallback }

// Gamma computes activity coefficients at (x, T), falling back to the unit
// vector on any internal failure
func (o *UNIFAC) Gamma(gam, x []float64, T float64) {
	o.fallback = ""
	if o.r == nil {
		o.fallback = "model not initialised"
		la.VecFill(gam, 1.0)
		return
	}
	n := o.ncp

	// clamp composition before logarithms
	xs := make([]float64, n)
	var sumX float64
	for i := 0; i < n; i++ {
		xs[i] = x[i]
		if xs[i] < small {
			xs[i] = small
		}
		sumX += xs[i]
	}
	for i := 0; i < n; i++ {
		xs[i] /= sumX
	}

	// combinatorial term (UNIQUAC form with group-derived r,q)
	var sumXR, sumXQ, sumXL float64
	l := make([]float64, n)
	for i := 0; i < n; i++ {
		sumXR += xs[i] * o.r[i]
		sumXQ += xs[i] * o.q[i]
		l[i] = zcoord/2.0*(o.r[i]-o.q[i]) - (o.r[i] - 1.0)
		sumXL += xs[i] * l[i]
	}
	if sumXR < small || sumXQ < small {
		o.fallback = "vanishing volume or area fraction denominator"
		la.VecFill(gam, 1.0)
		return
	}
	lnGamC := make([]float64, n)
	for i := 0; i < n; i++ {
		phi := xs[i] * o.r[i] / sumXR
		theta := xs[i] * o.q[i] / sumXQ
		lnGamC[i] = math.Log(phi/xs[i]) + zcoord/2.0*o.q[i]*math.Log(theta/phi) + l[i] - phi/xs[i]*sumXL
	}

	// residual term: group activity coefficients in the mixture and in each
	// pure component
	lnGmix, ok := o.groupGamma(xs, T)
	if !ok {
		o.fallback = "group activity coefficients failed for the mixture"
		la.VecFill(gam, 1.0)
		return
	}
	xpure := make([]float64, n)
	for i := 0; i < n; i++ {

		la.VecFill(xpure, 0)
		xpure[i] = 1.0
		lnGpure, okp := o.groupGamma(xpure, T)
		if !okp {
			o.fallback = "group activity coefficients failed for a pure component"
			la.VecFill(gam, 1.0)
			return
		}

		var lnGamR float64
		for m := 0; m < o.ngr; m++ {
			lnGamR += o.nu[i][m] * (lnGmix[m] - lnGpure[m])
		}
		gam[i] = math.Exp(lnGamC[i] + lnGamR)
	}

	// validate: all coefficients must be finite and strictly positive
	for i := 0; i < n; i++ {
		if math.IsNaN(gam[i]) || math.IsInf(gam[i], 0) || gam[i] <= 0 {
			o.fallback = "non-finite or non-positive activity coefficient"
			la.VecFill(gam, 1.0)
			return
		}
	}
}

// groupGamma computes ln(Gamma_k) for all subgroups at composition x. ok is
// false when a denominator vanishes or a value is not finite.
func (o *UNIFAC) groupGamma(x []float64, T float64) (lnG []float64, ok bool) {

	// group mole fractions
	X := make([]float64, o.ngr)
	var sumX float64
	for i := 0; i < o.ncp; i++ {
		for m := 0; m < o.ngr; m++ {
			X[m] += x[i] * o.nu[i][m]
		}
	}
	for m := 0; m < o.ngr; m++ {
		sumX += X[m]
	}
	if sumX < small {
		return nil, false
	}

	// group area fractions
	theta := make([]float64, o.ngr)
	var sumXQ float64
	for m := 0; m < o.ngr; m++ {
		X[m] /= sumX
		sumXQ += X[m] * o.Qk[m]
	}
	if sumXQ < small {
		return nil, false
	}
	for m := 0; m < o.ngr; m++ {
		theta[m] = X[m] * o.Qk[m] / sumXQ
	}

	// psi matrix at T
	psi := la.MatAlloc(o.ngr, o.ngr)
	for m := 0; m < o.ngr; m++ {
		for k := 0; k < o.ngr; k++ {
			psi[m][k] = math.Exp(-o.aGr[m][k] / T)
		}
	}

	// ln(Gamma_m)
	lnG = make([]float64, o.ngr)
	for m := 0; m < o.ngr; m++ {
		var sum1 float64
		for k := 0; k < o.ngr; k++ {
			sum1 += theta[k] * psi[k][m]
		}
		if sum1 < small {
			return nil, false
		}
		var sum2 float64
		for k := 0; k < o.ngr; k++ {
			var sum3 float64
			for j := 0; j < o.ngr; j++ {
				sum3 += theta[j] * psi[j][k]
			}
			if sum3 < small {
				return nil, false
			}
			sum2 += theta[k] * psi[m][k] / sum3
		}
		lnG[m] = o.Qk[m] * (1.0 - math.Log(sum1) - sum2)
		if math.IsNaN(lnG[m]) || math.IsInf(lnG[m], 0) {
			return nil, false
		}
	}
	return lnG, true
}
