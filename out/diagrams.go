// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out generates phase diagram data from converged equilibrium
// calculations. Points that fail to converge or fall outside the physically
// reasonable window are skipped, not interpolated.
package out

import (
	"github.com/Edu176w/plataforma-equilibrio-sub000/eqm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// temperature window for plotted points [K]; outside it the diagram would
// show conditions the Antoine correlations cannot support
const (
	TplotMin = 223.15
	TplotMax = 573.15
)

// PxyData holds an isothermal pressure-composition diagram for a binary
// mixture. X1 is the mole fraction of the first component in the liquid,
// Y1 in the vapour; Pbub and Pdew are in Pa.
type PxyData struct {
	T    float64   // temperature [K]
	X1   []float64 // liquid composition grid
	Y1   []float64 // vapour composition at the bubble points
	Pbub []float64 // bubble pressures [Pa]
	Pdew []float64 // dew pressures [Pa]
}

// TxyData holds an isobaric temperature-composition diagram for a binary
// mixture
type TxyData struct {
	P    float64   // pressure [Pa]
	X1   []float64 // liquid composition grid
	Y1   []float64 // vapour composition at the bubble points
	Tbub []float64 // bubble temperatures [K]
	Tdew []float64 // dew temperatures [K]
}

// XYData holds an isobaric vapour-liquid composition curve y1(x1)
type XYData struct {
	P  float64   // pressure [Pa]
	X1 []float64 // liquid composition grid
	Y1 []float64 // equilibrium vapour composition
}

// TernaryData holds a ternary liquid-liquid diagram at fixed temperature:
// a stability grid plus the tie lines of the feeds that split
type TernaryData struct {
	T        float64            // temperature [K]
	Stable   [][]float64        // feed compositions found stable
	Unstable [][]float64        // feed compositions that split
	Ties     []*eqm.SplitResult // resolved tie lines
}

// Pxy computes an isothermal P-x-y diagram with np composition points.
// Points whose bubble or dew calculation fails are dropped.
func Pxy(sv *eqm.Solver, T float64, np int) (d *PxyData, err error) {
	if len(sv.Comps) != 2 {
		return nil, chk.Err("P-x-y diagrams require a binary mixture; got %d components", len(sv.Comps))
	}
	if np < 2 {
		return nil, chk.Err("P-x-y diagrams require at least 2 points; got %d", np)
	}
	d = &PxyData{T: T}
	for _, x1 := range utl.LinSpace(0.001, 0.999, np) {
		x := []float64{x1, 1.0 - x1}
		bub, errB := sv.BubbleP(x, T)
		if errB != nil || !bub.Converged {
			continue
		}
		dew, errD := sv.DewP(x, T)
		if errD != nil || !dew.Converged {
			continue
		}
		d.X1 = append(d.X1, x1)
		d.Y1 = append(d.Y1, bub.Y[0])
		d.Pbub = append(d.Pbub, bub.P)
		d.Pdew = append(d.Pdew, dew.P)
	}
	if len(d.X1) == 0 {
		return nil, chk.Err("P-x-y diagram: no point converged at T=%g K", T)
	}
	return
}

// Txy computes an isobaric T-x-y diagram with np composition points.
// Unconverged points and temperatures outside the plot window are dropped.
func Txy(sv *eqm.Solver, P float64, np int) (d *TxyData, err error) {
	if len(sv.Comps) != 2 {
		return nil, chk.Err("T-x-y diagrams require a binary mixture; got %d components", len(sv.Comps))
	}
	if np < 2 {
		return nil, chk.Err("T-x-y diagrams require at least 2 points; got %d", np)
	}
	d = &TxyData{P: P}
	for _, x1 := range utl.LinSpace(0.001, 0.999, np) {
		x := []float64{x1, 1.0 - x1}
		bub, errB := sv.BubbleT(x, P)
		if errB != nil || !bub.Converged {
			continue
		}
		dew, errD := sv.DewT(x, P)
		if errD != nil || !dew.Converged {
			continue
		}
		if bub.T < TplotMin || bub.T > TplotMax || dew.T < TplotMin || dew.T > TplotMax {
			continue
		}
		d.X1 = append(d.X1, x1)
		d.Y1 = append(d.Y1, bub.Y[0])
		d.Tbub = append(d.Tbub, bub.T)
		d.Tdew = append(d.Tdew, dew.T)
	}
	if len(d.X1) == 0 {
		return nil, chk.Err("T-x-y diagram: no point converged at P=%g Pa", P)
	}
	return
}

// XY computes an isobaric equilibrium curve y1(x1) with np points
func XY(sv *eqm.Solver, P float64, np int) (d *XYData, err error) {
	if len(sv.Comps) != 2 {
		return nil, chk.Err("x-y curves require a binary mixture; got %d components", len(sv.Comps))
	}
	d = &XYData{P: P}
	for _, x1 := range utl.LinSpace(0.001, 0.999, np) {
		x := []float64{x1, 1.0 - x1}
		bub, errB := sv.BubbleT(x, P)
		if errB != nil || !bub.Converged {
			continue
		}
		d.X1 = append(d.X1, x1)
		d.Y1 = append(d.Y1, bub.Y[0])
	}
	if len(d.X1) == 0 {
		return nil, chk.Err("x-y curve: no point converged at P=%g Pa", P)
	}
	return
}

// Ternary classifies a grid of ternary feeds by liquid stability at
// temperature T and resolves tie lines for a sweep of unstable feeds.
// ng controls the grid density per axis.
func Ternary(sv *eqm.Solver, T float64, ng int) (d *TernaryData, err error) {
	if len(sv.Comps) != 3 {
		return nil, chk.Err("ternary diagrams require a ternary mixture; got %d components", len(sv.Comps))
	}
	if ng < 2 {
		return nil, chk.Err("ternary diagrams require at least 2 grid points per axis; got %d", ng)
	}
	d = &TernaryData{T: T}
	for _, z1 := range utl.LinSpace(0.02, 0.96, ng) {
		for _, z2 := range utl.LinSpace(0.02, 0.96, ng) {
			z3 := 1.0 - z1 - z2
			if z3 < 0.02 {
				continue
			}
			z := []float64{z1, z2, z3}
			stable, _, errS := sv.Stable(z, T)
			if errS != nil {
				continue
			}
			if stable {
				d.Stable = append(d.Stable, z)
			} else {
				d.Unstable = append(d.Unstable, z)
			}
		}
	}
	d.Ties, err = sv.Binodal(T, ng)
	if err != nil {
		return nil, err
	}
	return
}

// SolubilityCurve computes the solubility of the solute (first component)
// over np temperatures between Ta and Tb. Points that fail are dropped.
func SolubilityCurve(sv *eqm.Solver, Ta, Tb float64, np int) (T, x1 []float64, err error) {
	if np < 2 {
		return nil, nil, chk.Err("solubility curves require at least 2 points; got %d", np)
	}
	for _, Tk := range utl.LinSpace(Ta, Tb, np) {
		res, errS := sv.Solubility(Tk)
		if errS != nil {
			continue
		}
		T = append(T, Tk)
		x1 = append(x1, res.X[0])
	}
	if len(T) == 0 {
		return nil, nil, chk.Err("solubility curve: no point converged in [%g,%g] K", Ta, Tb)
	}
	return
}
