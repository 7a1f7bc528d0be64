// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. reading a simulation file")

	sim, err := ReadSim("data/bubble.sim")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if sim.Key != "bubble" {
		tst.Errorf("key %q is wrong\n", sim.Key)
		return
	}
	chk.IntAssert(len(sim.Calcs), 2)
	if sim.Calcs[0].Kind != "bubblet" || sim.Calcs[0].Model != "nrtl" {
		tst.Errorf("first calculation was decoded wrongly: %+v\n", sim.Calcs[0])
		return
	}
	chk.Scalar(tst, "p", 1e-15, sim.Calcs[0].PkPa, 101.325)
	chk.Vector(tst, "z", 1e-15, sim.Calcs[0].Z, []float64{0.30, 0.70})

	// tuning parameters
	chk.IntAssert(len(sim.Tuning), 1)
	if sim.Tuning[0].N != "itfix" {
		tst.Errorf("tuning parameter was decoded wrongly\n")
		return
	}

	// solvers can be built for every calculation
	for i := range sim.Calcs {
		if _, err := sim.Solver(i); err != nil {
			tst.Errorf("solver %d: %v\n", i, err)
			return
		}
	}
	if _, err := sim.Solver(5); err == nil {
		tst.Errorf("an out-of-range index must be rejected\n")
		return
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. extra parameter files and unit conversion")

	sim, err := ReadSim("data/flash.sim")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// the matfile was loaded into the parameter database
	if _, found := sim.Pars.NRTL("acetone", "water"); !found {
		tst.Errorf("pair from the matfile is missing\n")
		return
	}

	// the boundary conversions
	chk.Scalar(tst, "70 C", 1e-15, Kelvin(70.0), 343.15)
	chk.Scalar(tst, "95 kPa", 1e-15, Pascal(95.0), 95000.0)

	// a flash at these conditions runs
	sv, err := sim.Solver(0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	c := sim.Calcs[0]
	res, err := sv.Flash(c.Z, Kelvin(c.TdegC), Pascal(c.PkPa))
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("flash from file input did not converge\n")
		return
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. failures")

	if _, err := ReadSim("data/missing.sim"); err == nil {
		tst.Errorf("a missing file must be rejected\n")
		return
	}
}
