// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides analytical solutions used to verify the equilibrium
// solvers
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// RaoultBinary gives closed-form vapour-liquid results for an ideal binary
// mixture, where activity coefficients are one and Raoult's law holds
// exactly:
//  P_bub = x1 Psat1 + x2 Psat2
//  1/P_dew = y1/Psat1 + y2/Psat2
type RaoultBinary struct {
	Psat1 float64 // vapour pressure of component 1 [Pa]
	Psat2 float64 // vapour pressure of component 2 [Pa]
}

// BubbleP returns the bubble pressure and vapour composition for liquid x1
func (o RaoultBinary) BubbleP(x1 float64) (P, y1 float64) {
	P = x1*o.Psat1 + (1.0-x1)*o.Psat2
	y1 = x1 * o.Psat1 / P
	return
}

// DewP returns the dew pressure and liquid composition for vapour y1
func (o RaoultBinary) DewP(y1 float64) (P, x1 float64) {
	P = 1.0 / (y1/o.Psat1 + (1.0-y1)/o.Psat2)
	x1 = y1 * P / o.Psat1
	return
}

// FlashBeta returns the vapour fraction of a feed z1 flashed at pressure P,
// from the analytical solution of the Rachford-Rice equation for two
// components
func (o RaoultBinary) FlashBeta(z1, P float64) (beta float64, err error) {
	K1 := o.Psat1 / P
	K2 := o.Psat2 / P
	if (K1-1.0)*(K2-1.0) >= 0 {
		return 0, chk.Err("flash: K values %g and %g do not straddle one", K1, K2)
	}
	z2 := 1.0 - z1
	beta = -(z1*(K1-1.0) + z2*(K2-1.0)) / ((K1 - 1.0) * (K2 - 1.0))
	return
}

// Alpha returns the relative volatility Psat1/Psat2
func (o RaoultBinary) Alpha() float64 { return o.Psat1 / o.Psat2 }

// EquilibriumY returns the vapour composition in equilibrium with liquid x1
// for constant relative volatility alpha
func EquilibriumY(x1, alpha float64) float64 {
	return alpha * x1 / (1.0 + (alpha-1.0)*x1)
}

// RayleighResidue returns the liquid fraction remaining when a batch still
// charged with composition x0 reaches composition x1, for constant relative
// volatility alpha. This is the closed-form integral of the Rayleigh
// equation:
//  ln(L/L0) = int_{x0}^{x1} dx / (y(x) - x)
func RayleighResidue(x0, x1, alpha float64) float64 {
	f := func(x float64) float64 {
		return 1.0/(alpha-1.0)*math.Log(x/(1.0-x)) - math.Log(1.0-x)
	}
	return math.Exp(f(x1) - f(x0))
}
