// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotIsotherms adds pressure-density isotherms of mdl to the current figure,
// one curve per temperature in temps, with npts points from rhoa to rhob
func PlotIsotherms(mdl Model, temps []float64, rhoa, rhob float64, npts int, lambda []float64) {
	R := utl.LinSpace(rhoa, rhob, npts)
	P := make([]float64, npts)
	for _, temp := range temps {
		for i, r := range R {
			P[i] = mdl.PressureFromDensityTemperature(r, temp, lambda)
		}
		plt.Plot(R, P, &plt.A{L: io.Sf("T=%g", temp)})
	}
}

// PlotEnd finishes the figure, showing it or saving it to dirout/fnkey
func PlotEnd(dirout, fnkey string, show bool) {
	plt.Gll("$\\rho$", "$P$", nil)
	if show {
		plt.Show()
		return
	}
	plt.Save(dirout, fnkey)
}
