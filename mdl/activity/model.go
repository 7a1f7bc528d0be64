// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package activity implements excess-Gibbs-energy models for liquid-phase
// activity coefficients
//  References:
//   [1] Renon H and Prausnitz JM (1968) Local compositions in thermodynamic
//       excess functions for liquid mixtures. AIChE Journal, 14(1), 135-144
//   [2] Abrams DS and Prausnitz JM (1975) Statistical thermodynamics of
//       liquid mixtures. AIChE Journal, 21(1), 116-128
//   [3] Fredenslund A, Jones RL and Prausnitz JM (1975) Group-contribution
//       estimation of activity coefficients in nonideal liquid mixtures.
//       AIChE Journal, 21(6), 1086-1099
package activity

import (
	"github.com/Edu176w/plataforma-equilibrio-sub000/par"
	"github.com/cpmech/gosl/chk"
)

// small is the composition floor applied before logarithms and divisions
const small = 1e-10

// Model implements a liquid-phase activity-coefficient model.
//  Init resolves all parameters for a fixed ordered component set; missing
//  structural data is a hard precondition failure, whereas missing binary
//  pairs degrade to no-interaction defaults (documented per model).
//  Gamma fills gam with one strictly positive coefficient per component; it
//  never fails for admissible numeric input: internal singularities degrade
//  to neutral contributions.
type Model interface {
	Init(comps []string, pars *par.Database) error // resolves parameters for the component set
	Name() string                                  // model name, e.g. "nrtl"
	Gamma(gam, x []float64, T float64)             // computes activity coefficients at (x, T)
}

// New returns a new activity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'activity' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
