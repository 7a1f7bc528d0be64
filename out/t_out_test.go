// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/Edu176w/plataforma-equilibrio-sub000/eqm"
	"github.com/Edu176w/plataforma-equilibrio-sub000/par"
	"github.com/Edu176w/plataforma-equilibrio-sub000/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

func verbose() {
	chk.Verbose = true
}

func newBinary(tst *testing.T, c1, c2, model string) *eqm.Solver {
	sv, err := eqm.NewSolver([]string{c1, c2}, model, prop.NewDatabase(), par.NewDatabase())
	if err != nil {
		tst.Errorf("%v\n", err)
		return nil
	}
	return sv
}

func Test_pxy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pxy01. isothermal diagram of ethanol-water")

	sv := newBinary(tst, "ethanol", "water", "ideal")
	if sv == nil {
		return
	}
	T := 353.15
	d, err := Pxy(sv, T, 11)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if len(d.X1) != len(d.Y1) || len(d.X1) != len(d.Pbub) || len(d.X1) != len(d.Pdew) {
		tst.Errorf("diagram columns have inconsistent lengths\n")
		return
	}
	for k := range d.X1 {

		// the bubble curve lies above the dew curve
		if d.Pbub[k] < d.Pdew[k]-1e-6 {
			tst.Errorf("bubble pressure below dew pressure at x1=%g\n", d.X1[k])
			return
		}

		// the vapour is enriched in the more volatile ethanol
		if d.Y1[k] < d.X1[k] {
			tst.Errorf("vapour not enriched at x1=%g\n", d.X1[k])
			return
		}
	}

	if chk.Verbose {
		plt.SetForEps(1.2, 350)
		PlotPxy(d, "")
		plt.SaveD("/tmp/equilibrio", "fig_pxy01.eps")
	}
}

func Test_txy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("txy01. isobaric diagram of acetone-water")

	sv := newBinary(tst, "acetone", "water", "nrtl")
	if sv == nil {
		return
	}
	d, err := Txy(sv, 101325.0, 11)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	for k := range d.X1 {

		// the dew curve lies above the bubble curve
		if d.Tdew[k] < d.Tbub[k]-1e-6 {
			tst.Errorf("dew temperature below bubble temperature at x1=%g\n", d.X1[k])
			return
		}
		if d.Tbub[k] < TplotMin || d.Tdew[k] > TplotMax {
			tst.Errorf("temperature outside the plot window at x1=%g\n", d.X1[k])
			return
		}
	}

	// boundaries approach the pure component boiling points
	if d.Tbub[0] < 360.0 || d.Tbub[len(d.Tbub)-1] > 335.0 {
		tst.Errorf("boiling point limits are off: T(x1->0)=%g T(x1->1)=%g\n", d.Tbub[0], d.Tbub[len(d.Tbub)-1])
		return
	}
}

func Test_xy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("xy01. equilibrium curve stays inside the unit square")

	sv := newBinary(tst, "ethanol", "water", "ideal")
	if sv == nil {
		return
	}
	d, err := XY(sv, 101325.0, 11)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	for k := range d.X1 {
		if d.Y1[k] < 0 || d.Y1[k] > 1 {
			tst.Errorf("y1=%g outside [0,1]\n", d.Y1[k])
			return
		}
	}
}

func Test_ternary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ternary01. stability grid of benzene-water-ethanol")

	sv, err := eqm.NewSolver([]string{"benzene", "water", "ethanol"}, "nrtl", prop.NewDatabase(), par.NewDatabase())
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	d, err := Ternary(sv, 298.15, 6)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// the system has both a miscibility gap and a stable region
	if len(d.Unstable) == 0 {
		tst.Errorf("the benzene-water gap must show up as unstable feeds\n")
		return
	}
	if len(d.Stable) == 0 {
		tst.Errorf("the ethanol corner must show up as stable feeds\n")
		return
	}
}

func Test_solcurve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solcurve01. solubility curve of naphthalene in benzene")

	sv := newBinary(tst, "naphthalene", "benzene", "ideal")
	if sv == nil {
		return
	}
	T, x1, err := SolubilityCurve(sv, 280.0, 350.0, 8)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if len(T) != len(x1) || len(T) == 0 {
		tst.Errorf("curve columns have inconsistent lengths\n")
		return
	}
	for k := 1; k < len(x1); k++ {
		if x1[k] <= x1[k-1] {
			tst.Errorf("solubility must increase monotonically with temperature\n")
			return
		}
	}
}
