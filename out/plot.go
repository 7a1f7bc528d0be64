// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotPxy plots a P-x-y diagram in kPa
//  args -- plot arguments; e.g. "'b-'". if args == "", "'b-'" is used
func PlotPxy(d *PxyData, args string) {
	if args == "" {
		args = "'b-'"
	}
	pb := make([]float64, len(d.Pbub))
	pd := make([]float64, len(d.Pdew))
	for i := range d.Pbub {
		pb[i] = d.Pbub[i] / 1000.0
		pd[i] = d.Pdew[i] / 1000.0
	}
	plt.Plot(d.X1, pb, io.Sf("%s, label='bubble', clip_on=0", args))
	plt.Plot(d.X1, pd, io.Sf("'r-', label='dew', clip_on=0"))
	plt.Gll("$x_1,\\;y_1$", io.Sf("$P$ [kPa] at T=%g K", d.T), "")
}

// PlotTxy plots a T-x-y diagram in K
func PlotTxy(d *TxyData, args string) {
	if args == "" {
		args = "'b-'"
	}
	plt.Plot(d.X1, d.Tbub, io.Sf("%s, label='bubble', clip_on=0", args))
	plt.Plot(d.X1, d.Tdew, io.Sf("'r-', label='dew', clip_on=0"))
	plt.Gll("$x_1,\\;y_1$", io.Sf("$T$ [K] at P=%g kPa", d.P/1000.0), "")
}

// PlotXY plots an equilibrium curve y1(x1) together with the diagonal
func PlotXY(d *XYData, args string) {
	if args == "" {
		args = "'b-'"
	}
	plt.Plot(d.X1, d.Y1, io.Sf("%s, label='equilibrium', clip_on=0", args))
	plt.Plot([]float64{0, 1}, []float64{0, 1}, "'k--', label='diagonal'")
	plt.Gll("$x_1$", "$y_1$", "")
}
