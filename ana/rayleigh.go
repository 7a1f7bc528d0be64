// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// BatchStill integrates the Rayleigh equation for a binary batch
// distillation:
//  d(ln L)/dx1 = 1 / (y1(x1) - x1)
// The equilibrium relation y1(x1) is injected, so the still can run on the
// constant-volatility expression or on a full bubble point calculation. The
// numerical solution reparameterises the liquid composition with a pseudo
// variable T in [0,1]:
//  x1(T) = x0 + T (xf - x0)
//  dU/dT = (xf - x0) / (y1(x1) - x1)    with U := ln(L/L0)
type BatchStill struct {
	X0  float64                  // charge composition
	Eq  func(x1 float64) float64 // equilibrium vapour composition
	sol ode.Solver               // ODE solver
}

// Init initialises the still
func (o *BatchStill) Init(x0 float64, eq func(x1 float64) float64) {
	o.X0 = x0
	o.Eq = eq
	silent := true
	o.sol.Init("Radau5", 1, func(f []float64, dT, T float64, u []float64, args ...interface{}) error {
		xf := args[0].(float64)
		x1 := o.X0 + T*(xf-o.X0)
		y1 := o.Eq(x1)
		d := y1 - x1
		if math.Abs(d) < 1e-12 {
			return chk.Err("batch still: equilibrium pinch at x1=%g", x1)
		}
		f[0] = (xf - o.X0) / d
		return nil
	}, nil, nil, nil, silent)
	o.sol.Distr = false
}

// Residue returns the liquid fraction L/L0 remaining when the still
// composition reaches xf
func (o *BatchStill) Residue(xf float64) (L float64, err error) {
	u := []float64{0}
	err = o.sol.Solve(u, 0, 1, 1, false, xf)
	if err != nil {
		return
	}
	return math.Exp(u[0]), nil
}
