// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package activity

import (
	"github.com/Edu176w/plataforma-equilibrio-sub000/par"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Ideal implements Raoult's law: all activity coefficients are one
type Ideal struct {
	ncp int // number of components
}

// add model to factory
func init() {
	allocators["ideal"] = func() Model { return new(Ideal) }
}

// Init initialises model
func (o *Ideal) Init(comps []string, pars *par.Database) (err error) {
	if len(comps) < 2 {
		return chk.Err("ideal: at least two components are required; got %d", len(comps))
	}
	o.ncp = len(comps)
	return
}

// Name returns the model name
func (o *Ideal) Name() string { return "ideal" }

// Gamma computes activity coefficients: the unit vector, unconditionally
func (o *Ideal) Gamma(gam, x []float64, T float64) {
	la.VecFill(gam, 1.0)
}
