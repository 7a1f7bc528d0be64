// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqm

import (
	"math"
	"testing"

	"github.com/Edu176w/plataforma-equilibrio-sub000/ana"
	"github.com/Edu176w/plataforma-equilibrio-sub000/par"
	"github.com/Edu176w/plataforma-equilibrio-sub000/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func verbose() {
	chk.Verbose = true
}

func Test_bubble01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubble01. ethanol-water at 80 C, ideal solution")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"ethanol", "water"}, "ideal", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	res, err := sv.BubbleP([]float64{0.30, 0.70}, 353.15)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "P", 150.0, res.P, 65570.0)
	chk.Scalar(tst, "y ethanol", 0.005, res.Y[0], 0.4954)

	// the vapour is enriched in the lighter component
	if res.Y[0] <= res.X[0] {
		tst.Errorf("vapour must be enriched in ethanol: y=%g x=%g\n", res.Y[0], res.X[0])
		return
	}

	// closure
	chk.Scalar(tst, "sum y", 1e-6, res.Y[0]+res.Y[1], 1.0)

	// agreement with the analytical Raoult solution
	var ideal ana.RaoultBinary
	ideal.Psat1, _ = props.VaporPressure("ethanol", 353.15)
	ideal.Psat2, _ = props.VaporPressure("water", 353.15)
	P, y1 := ideal.BubbleP(0.30)
	chk.Scalar(tst, "P vs analytical", 1e-8, res.P, P)
	chk.Scalar(tst, "y1 vs analytical", 1e-8, res.Y[0], y1)

	// equimolar feed: P is the mean of the pure pressures
	res, err = sv.BubbleP([]float64{0.50, 0.50}, 353.15)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "P equimolar", 1e-8, res.P, 0.5*(ideal.Psat1+ideal.Psat2))
	if res.Y[0] <= 0.5 {
		tst.Errorf("equimolar vapour must hold more than half ethanol; got %g\n", res.Y[0])
		return
	}
}

func Test_bubble02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubble02. bubble temperature at atmospheric pressure")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"water", "ethanol"}, "ideal", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	res, err := sv.BubbleT([]float64{0.50, 0.50}, 101325.0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("bubble temperature did not converge (strategy %s)\n", res.Strategy)
		return
	}
	chk.Scalar(tst, "T", 0.05, res.T, 359.98)

	// the resolved temperature reproduces the pressure
	back, err := sv.BubbleP([]float64{0.50, 0.50}, res.T)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "P roundtrip", 50.0, back.P, 101325.0)

	// K and y are consistent with the echoed pressure
	for i := 0; i < 2; i++ {
		chk.Scalar(tst, "K = gamma*Psat/P", 1e-12, res.K[i], res.Gamma[i]*res.Psat[i]/res.P)
	}
	chk.Scalar(tst, "sum(y)", 1e-10, res.Y[0]+res.Y[1], 1.0)
}

func Test_bubble03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubble03. unreachable pressure keeps the convergence flag down")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"water", "ethanol"}, "ideal", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// 50 MPa is above the bubble pressure anywhere in the search window,
	// so there is no root; the best estimate must carry Converged=false
	res, err := sv.BubbleT([]float64{0.50, 0.50}, 5e7)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if res.Converged {
		tst.Errorf("no bubble temperature exists at 50 MPa; Converged must be false (T=%g, resid=%g)\n", res.T, res.Resid)
		return
	}
	if res.Resid < 1e6 {
		tst.Errorf("residual must expose the unreachable pressure: %g\n", res.Resid)
		return
	}
}

func Test_dew01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dew01. bubble-dew round trip with a non-ideal pair")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"acetone", "water"}, "nrtl", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	T := 330.0
	x := []float64{0.40, 0.60}
	bub, err := sv.BubbleP(x, T)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// the dew calculation at the bubble vapour must recover the liquid
	dew, err := sv.DewP(bub.Y, T)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Vector(tst, "x roundtrip", 1e-3, dew.X, bub.X)
	chk.Scalar(tst, "P roundtrip", 1e-3*bub.P, dew.P, bub.P)

	// same round trip through the temperature solvers
	bubT, err := sv.BubbleT(x, bub.P)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "T bubble", 0.05, bubT.T, T)
	dewT, err := sv.DewT(bub.Y, bub.P)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !dewT.Converged {
		tst.Errorf("dew temperature did not converge (strategy %s)\n", dewT.Strategy)
		return
	}
	chk.Scalar(tst, "T dew", 0.1, dewT.T, T)
	chk.Vector(tst, "x from dew T", 2e-3, dewT.X, bub.X)
}

func Test_dew02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dew02. implausible pressures are rejected")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"water", "ethanol"}, "ideal", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if _, err := sv.DewT([]float64{0.5, 0.5}, -100.0); err == nil {
		tst.Errorf("negative pressure must be rejected\n")
		return
	}
	if _, err := sv.DewT([]float64{0.5, 0.5}, 1e9); err == nil {
		tst.Errorf("pressure above the plausibility ceiling must be rejected\n")
		return
	}
	if _, err := sv.BubbleT([]float64{0.5, 0.5}, 0.0); err == nil {
		tst.Errorf("zero pressure must be rejected\n")
		return
	}
}

func Test_flash01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash01. two-phase flash against the analytical solution")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"water", "ethanol"}, "ideal", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	T, P := 360.0, 95000.0
	z := []float64{0.50, 0.50}
	res, err := sv.Flash(z, T, P)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("flash did not converge\n")
		return
	}

	// analytical vapour fraction
	var ideal ana.RaoultBinary
	ideal.Psat1, _ = props.VaporPressure("water", T)
	ideal.Psat2, _ = props.VaporPressure("ethanol", T)
	beta, err := ideal.FlashBeta(0.50, P)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "beta", 1e-4, res.Beta, beta)

	// mass balance: z = beta*y + (1-beta)*x
	for i := 0; i < 2; i++ {
		zi := res.Beta*res.Y[i] + (1.0-res.Beta)*res.X[i]
		if math.Abs(zi-z[i]) > 1e-4 {
			tst.Errorf("mass balance violated for component %d: %g vs %g\n", i, zi, z[i])
			return
		}
	}

	// closure of both phases
	chk.Scalar(tst, "sum x", 1e-6, res.X[0]+res.X[1], 1.0)
	chk.Scalar(tst, "sum y", 1e-6, res.Y[0]+res.Y[1], 1.0)
}

func Test_flash02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash02. degenerate feeds short-circuit to a single phase")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"water", "ethanol"}, "ideal", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	z := []float64{0.50, 0.50}

	// hot: all K > 1, superheated vapour
	res, err := sv.Flash(z, 390.0, 101325.0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "beta hot", 1e-15, res.Beta, 1.0)
	chk.Vector(tst, "y=z hot", 1e-15, res.Y, z)

	// cold: all K < 1, subcooled liquid
	res, err = sv.Flash(z, 330.0, 101325.0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "beta cold", 1e-15, res.Beta, 0.0)
	chk.Vector(tst, "x=z cold", 1e-15, res.X, z)
}

func Test_flash03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash03. exhausted iteration budget still yields an estimate")

	props := prop.NewDatabase()
	pars := par.NewDatabase()
	sv, err := NewSolver([]string{"acetone", "water"}, "nrtl", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// one outer iteration cannot stabilise the K-values of this pair
	sv.SetPrms(fun.Prms{&fun.Prm{N: "itflash", V: 1}})
	res, err := sv.Flash([]float64{0.50, 0.50}, 343.15, 95000.0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if res == nil {
		tst.Errorf("the last estimate must be returned when the budget runs out\n")
		return
	}
	if res.Converged {
		tst.Errorf("a single outer iteration cannot report convergence\n")
		return
	}
	chk.IntAssert(res.It, 1)
	if res.Beta <= 0 || res.Beta >= 1 {
		tst.Errorf("two-phase vapour fraction out of range: %g\n", res.Beta)
		return
	}
	if res.Resid < 1e-3 {
		tst.Errorf("residual must record the K drift: %g\n", res.Resid)
		return
	}
	chk.Scalar(tst, "sum(x)", 1e-10, res.X[0]+res.X[1], 1.0)
	chk.Scalar(tst, "sum(y)", 1e-10, res.Y[0]+res.Y[1], 1.0)

	// the default budget converges from the same feed
	sv2, err := NewSolver([]string{"acetone", "water"}, "nrtl", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	full, err := sv2.Flash([]float64{0.50, 0.50}, 343.15, 95000.0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !full.Converged {
		tst.Errorf("the default budget must stabilise the K-values\n")
		return
	}
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. construction preconditions")

	props := prop.NewDatabase()
	pars := par.NewDatabase()

	// component count limits
	if _, err := NewSolver([]string{"water"}, "ideal", props, pars); err == nil {
		tst.Errorf("a single component must be rejected\n")
		return
	}
	if _, err := NewSolver([]string{"water", "ethanol", "acetone", "benzene", "toluene"}, "ideal", props, pars); err == nil {
		tst.Errorf("five components must be rejected\n")
		return
	}

	// unknown component
	if _, err := NewSolver([]string{"water", "unobtainium"}, "ideal", props, pars); err == nil {
		tst.Errorf("an unknown component must be rejected\n")
		return
	}

	// unknown model
	if _, err := NewSolver([]string{"water", "ethanol"}, "margules", props, pars); err == nil {
		tst.Errorf("an unknown model must be rejected\n")
		return
	}

	// structural preconditions surface at construction
	if _, err := NewSolver([]string{"water", "ethanol"}, "uniquac", props, par.NewEmptyDatabase()); err == nil {
		tst.Errorf("missing structural data must be rejected at construction\n")
		return
	}

	// bad compositions are rejected by the operations
	sv, err := NewSolver([]string{"water", "ethanol"}, "ideal", props, pars)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if _, err := sv.BubbleP([]float64{0.5, 0.6}, 350.0); err == nil {
		tst.Errorf("a composition not summing to one must be rejected\n")
		return
	}
	if _, err := sv.BubbleP([]float64{-0.1, 1.1}, 350.0); err == nil {
		tst.Errorf("a negative mole fraction must be rejected\n")
		return
	}
	if _, err := sv.BubbleP([]float64{1.0}, 350.0); err == nil {
		tst.Errorf("a short composition vector must be rejected\n")
		return
	}
}
