// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_electrons01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("electrons01. ionised helium")

	mdl, err := New("ideal-electrons")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	// fully ionised helium: Abar = 4, Zbar = 2
	lambda := []float64{4.0, 2.0}
	rs := lambda[LambdaZbar] / lambda[LambdaAbar] * kBoltzmann / atomicMassUnit
	io.Pforan("R* = %v J/(kg·K)\n", rs)
	chk.IntAssert(mdl.Nlambda(), 2)
	chk.IntAssert(int(mdl.PreferredInput()), int(Density|Temperature))

	for _, rho := range []float64{1e-3, 0.1, 10.0} {
		for _, temp := range []float64{300.0, 1e4, 1e6} {

			// gas law and caloric relation
			pt := mdl.PressureFromDensityTemperature(rho, temp, lambda)
			chk.Scalar(tst, "P == ρ R* T", 1e-12*pt, pt, rho*rs*temp)
			sie := mdl.InternalEnergyFromDensityTemperature(rho, temp, lambda)
			chk.Scalar(tst, "e == (3/2) R* T", 1e-12*sie, sie, 1.5*rs*temp)

			// round trips
			chk.Scalar(tst, "T(ρ,e)", 1e-12*temp, mdl.TemperatureFromDensityInternalEnergy(rho, sie, lambda), temp)
			chk.Scalar(tst, "P(ρ,e)", 1e-12*pt, mdl.PressureFromDensityInternalEnergy(rho, sie, lambda), pt)

			// monatomic relations
			chk.Scalar(tst, "cv", 1e-12*1.5*rs, mdl.SpecificHeatFromDensityTemperature(rho, temp, lambda), 1.5*rs)
			chk.Scalar(tst, "B == (5/3) P", 1e-12*pt, mdl.BulkModulusFromDensityTemperature(rho, temp, lambda), 5.0/3.0*pt)
			chk.Scalar(tst, "Γ == 2/3", 1e-15, mdl.GruneisenParamFromDensityTemperature(rho, temp, lambda), 2.0/3.0)

			// closed-form inversion
			rhoBack, sieBack, err := mdl.DensityEnergyFromPressureTemperature(pt, temp, lambda, 0)
			if err != nil {
				tst.Errorf("inversion failed: %v\n", err)
				return
			}
			chk.Scalar(tst, "ρ recovered", 1e-14*rho, rhoBack, rho)
			chk.Scalar(tst, "e recovered", 1e-14*sie, sieBack, sie)
		}
	}

	// entropy is not available
	chk.Scalar(tst, "entropy sentinel", 1e-17, mdl.EntropyFromDensityTemperature(0.1, 1e4, lambda), 1.0)
}

func Test_electrons02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("electrons02. reference state and lambda handling")

	mdl, err := New("ideal-electrons")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	lambda := []float64{4.0, 2.0}
	rs := lambda[LambdaZbar] / lambda[LambdaAbar] * kBoltzmann / atomicMassUnit

	s, dpde, dvdt := mdl.ValuesAtReferenceState(lambda)
	chk.Scalar(tst, "temp", 1e-17, s.Temp, RoomTemperature)
	chk.Scalar(tst, "press", 1e-17, s.Press, AtmosphericPressure)
	chk.Scalar(tst, "rho", 1e-12*s.Rho, s.Rho, AtmosphericPressure/(rs*RoomTemperature))
	chk.Scalar(tst, "sie", 1e-12*s.Sie, s.Sie, 1.5*rs*RoomTemperature)
	chk.Scalar(tst, "cv", 1e-12*s.Cv, s.Cv, 1.5*rs)
	chk.Scalar(tst, "bmod", 1e-12*s.Bmod, s.Bmod, 5.0/3.0*AtmosphericPressure)
	chk.Scalar(tst, "dpde", 1e-12*dpde, dpde, 2.0/3.0*s.Rho)
	chk.Scalar(tst, "dvdt", 1e-12*dvdt, dvdt, rs/AtmosphericPressure)

	// the gas law holds at the reference state
	chk.Scalar(tst, "P0 == ρ0 R* T0", 1e-9, mdl.PressureFromDensityTemperature(s.Rho, s.Temp, lambda), AtmosphericPressure)

	// different compositions give different pressures
	p1 := mdl.PressureFromDensityTemperature(0.1, 1e4, []float64{4.0, 2.0})
	p2 := mdl.PressureFromDensityTemperature(0.1, 1e4, []float64{4.0, 1.0})
	chk.Scalar(tst, "half ionisation halves P", 1e-12*p1, p1, 2.0*p2)

	// parameters are rejected
	var mdl2 IdealElectrons
	err = mdl2.Init(dbf.Params{&dbf.P{N: "Cv", V: 1.0}})
	if err == nil {
		tst.Errorf("initialisation with parameters must fail\n")
		return
	}
	io.Pforan("expected failure: %v", err)
}
