// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/parikshitbajpai/singularity-eos/eos"
	"github.com/parikshitbajpai/singularity-eos/inp"
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
	simfilepath, _ := io.ArgToFilename(0, "inp/data/isotherms", ".sim", true)
	alias := io.ArgToString(1, "")
	verbose := io.ArgToBool(2, true)
	erasePrev := io.ArgToBool(3, true)
	doplot := io.ArgToBool(4, false)
	ncpu := io.ArgToInt(5, 0)

	// message
	if verbose {
		io.PfWhite("\nSingularity-EOS -- equations of state for materials\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename", "simfilepath", simfilepath,
			"alias to append to simulation key", "alias", alias,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"plot isotherms", "doplot", doplot,
			"overwrite number of goroutines", "ncpu", ncpu,
		))
	}

	// read simulation file
	sim, err := inp.ReadSim(simfilepath, alias, erasePrev, doplot)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	if ncpu < 1 {
		ncpu = sim.Data.Ncpu
	}
	if verbose {
		io.Pf("\n%v\n", sim)
	}

	// for all sweeps
	for isw, swp := range sim.Sweeps {
		if swp.Skip {
			continue
		}
		mdl := swp.Mdl
		if verbose {
			io.Pf("\nSWEEP %d: %s\n", isw, swp.Desc)
			io.Pf("%v\n", mdl)

			// reference state
			s, dpde, dvdt := mdl.ValuesAtReferenceState(swp.Lambda)
			io.Pf("\n%v\n", io.ArgsTable("REFERENCE STATE",
				"density", "rho", s.Rho,
				"temperature", "temp", s.Temp,
				"specific internal energy", "sie", s.Sie,
				"pressure", "press", s.Press,
				"specific heat", "cv", s.Cv,
				"bulk modulus", "bmod", s.Bmod,
				"dP/de at constant density", "dpde", dpde,
				"dV/dT at constant pressure", "dvdt", dvdt,
			))
		}

		// driver
		var drv eos.Driver
		drv.Init(mdl)
		drv.Ncpu = ncpu

		// extra state per point
		var lambdas [][]float64
		if swp.Lambda != nil {
			lambdas = make([][]float64, swp.Npts)
			for i := 0; i < swp.Npts; i++ {
				lambdas[i] = swp.Lambda
			}
		}

		// for all isotherms
		for _, temp := range swp.Temps {

			// evaluate along the density axis
			R := utl.LinSpace(swp.RhoMin, swp.RhoMax, swp.Npts)
			T := make([]float64, swp.Npts)
			E := make([]float64, swp.Npts)
			P := make([]float64, swp.Npts)
			Cv := make([]float64, swp.Npts)
			B := make([]float64, swp.Npts)
			for i := 0; i < swp.Npts; i++ {
				T[i] = temp
				E[i] = mdl.InternalEnergyFromDensityTemperature(R[i], temp, swp.Lambda)
			}
			err = drv.FillArray(R, T, E, P, Cv, B, eos.Pressure|eos.SpecificHeat|eos.BulkModulus, lambdas)
			if err != nil {
				chk.Panic("sweep %d failed at T=%g:\n%v", isw, temp, err)
			}
			if verbose {
				io.Pf("\n%s: ISOTHERM AT T = %g\n", swp.Mat, temp)
				io.Pf("%14s%16s%16s%14s%16s\n", "rho", "sie", "press", "cv", "bmod")
				for i := 0; i < swp.Npts; i++ {
					io.Pf("%14.6g%16.8g%16.8g%14.6g%16.8g\n", R[i], E[i], P[i], Cv[i], B[i])
				}
			}

			// invert the isotherm back to densities
			if sim.Data.RoundTrip {
				Rback := make([]float64, swp.Npts)
				Eback := make([]float64, swp.Npts)
				err = drv.DensityEnergyArray(P, T, Rback, Eback, lambdas, nil)
				if err != nil {
					chk.Panic("inversion of sweep %d failed at T=%g:\n%v", isw, temp, err)
				}
				maxdiff := 0.0
				for i := 0; i < swp.Npts; i++ {
					diff := math.Abs(Rback[i]-R[i]) / R[i]
					if diff > maxdiff {
						maxdiff = diff
					}
				}
				if verbose {
					io.Pf("\nmax relative drift of densities after inversion = %g\n", maxdiff)
				}
				if maxdiff > 1e-4 {
					chk.Panic("inversion drift of sweep %d at T=%g is too large: %g", isw, temp, maxdiff)
				}
			}
		}

		// figure
		if doplot {
			plt.Reset(false, nil)
			eos.PlotIsotherms(mdl, swp.Temps, swp.RhoMin, swp.RhoMax, 101, swp.Lambda)
			eos.PlotEnd(sim.DirOut, io.Sf("fig_%s_%s", sim.Key, swp.Mat), false)
		}
	}
}
