// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Edu176w/plataforma-equilibrio-sub000/eqm"
	"github.com/Edu176w/plataforma-equilibrio-sub000/inp"
	"github.com/Edu176w/plataforma-equilibrio-sub000/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nPlataforma-Equilibrio -- Multicomponent Phase Equilibrium\n")
		io.Pf("Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read simulation file
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	if verbose {
		io.Pf("\n%s: %s\n", sim.Key, sim.Data.Desc)
	}

	// run calculations
	for idx, c := range sim.Calcs {
		sv, err := sim.Solver(idx)
		if err != nil {
			chk.Panic("cannot build solver for calculation #%d:\n%v", idx, err)
		}
		T := inp.Kelvin(c.TdegC)
		P := inp.Pascal(c.PkPa)
		np := c.Np
		if np < 2 {
			np = 21
		}
		io.Pf("\ncalculation #%d: %s / %s / %v\n", idx, c.Kind, sv.Model.Name(), c.Comps)
		switch c.Kind {

		case "bubblep":
			res, err := sv.BubbleP(c.Z, T)
			if err != nil {
				chk.Panic("bubble pressure failed:\n%v", err)
			}
			printVLE(res)

		case "bubblet":
			res, err := sv.BubbleT(c.Z, P)
			if err != nil {
				chk.Panic("bubble temperature failed:\n%v", err)
			}
			printVLE(res)

		case "dewp":
			res, err := sv.DewP(c.Z, T)
			if err != nil {
				chk.Panic("dew pressure failed:\n%v", err)
			}
			printVLE(res)

		case "dewt":
			res, err := sv.DewT(c.Z, P)
			if err != nil {
				chk.Panic("dew temperature failed:\n%v", err)
			}
			printVLE(res)

		case "flash":
			res, err := sv.Flash(c.Z, T, P)
			if err != nil {
				chk.Panic("flash failed:\n%v", err)
			}
			printVLE(res)
			io.Pf("  beta = %g\n", res.Beta)

		case "llflash":
			res, err := sv.LLFlash(c.Z, T)
			if err != nil {
				chk.Panic("liquid-liquid flash failed:\n%v", err)
			}
			io.Pf("  phases = %d\n", res.Phases)
			if res.Phases == 2 {
				io.Pf("  xI  = %v\n  xII = %v\n", res.XI, res.XII)
			} else if res.Message != "" {
				io.Pf("  %s\n", res.Message)
			}

		case "binodal":
			ties, err := sv.Binodal(T, np)
			if err != nil {
				chk.Panic("binodal failed:\n%v", err)
			}
			io.Pf("  %d tie lines\n", len(ties))
			for _, tie := range ties {
				io.Pf("  xI = %v  xII = %v\n", tie.XI, tie.XII)
			}

		case "solubility":
			res, err := sv.Solubility(T)
			if err != nil {
				chk.Panic("solubility failed:\n%v", err)
			}
			io.Pf("  x_solute = %g  (strategy: %s)\n", res.X[0], res.Strategy)

		case "eutectic":
			res, err := sv.Eutectic()
			if err != nil {
				chk.Panic("eutectic point failed:\n%v", err)
			}
			io.Pf("  T_eut = %g K  (%g degC)   x = %v\n", res.T, res.T-273.15, res.X)

		case "pxy":
			d, err := out.Pxy(sv, T, np)
			if err != nil {
				chk.Panic("P-x-y diagram failed:\n%v", err)
			}
			io.Pf("  %d points at T = %g C\n", len(d.X1), c.TdegC)

		case "txy":
			d, err := out.Txy(sv, P, np)
			if err != nil {
				chk.Panic("T-x-y diagram failed:\n%v", err)
			}
			io.Pf("  %d points at P = %g kPa\n", len(d.X1), c.PkPa)

		case "xy":
			d, err := out.XY(sv, P, np)
			if err != nil {
				chk.Panic("x-y curve failed:\n%v", err)
			}
			io.Pf("  %d points at P = %g kPa\n", len(d.X1), c.PkPa)

		case "ternary":
			d, err := out.Ternary(sv, T, np)
			if err != nil {
				chk.Panic("ternary diagram failed:\n%v", err)
			}
			io.Pf("  %d stable, %d unstable, %d tie lines\n", len(d.Stable), len(d.Unstable), len(d.Ties))

		default:
			chk.Panic("calculation kind %q is not available", c.Kind)
		}
	}
}

// printVLE prints one vapour-liquid result in both unit systems
func printVLE(res *eqm.Result) {
	io.Pf("  T = %.3f K (%.2f C)\n", res.T, res.T-273.15)
	io.Pf("  P = %.1f Pa (%.3f kPa)\n", res.P, res.P/1000.0)
	io.Pf("  x = %v\n  y = %v\n", res.X, res.Y)
	io.Pf("  gamma = %v\n  K = %v\n", res.Gamma, res.K)
	io.Pf("  converged = %v (strategy: %s, %d iterations)\n", res.Converged, res.Strategy, res.It)
}
