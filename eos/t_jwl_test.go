// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_jwl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jwl01. TNT detonation products. round trips")

	mdl, err := New("jwl")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mdl)

	rho0 := 1630.0
	R := utl.LinSpace(0.2*rho0, 2.0*rho0, 7)
	T := []float64{200.0, 298.15, 500.0, 1000.0, 2000.0}
	for _, rho := range R {
		for _, temp := range T {

			// temperature and energy invert each other
			sie := mdl.InternalEnergyFromDensityTemperature(rho, temp, nil)
			tback := mdl.TemperatureFromDensityInternalEnergy(rho, sie, nil)
			chk.Float64(tst, io.Sf("T(ρ,e(ρ,T)) @ %.0f,%.0f", rho, temp), 1e-10*temp, tback, temp)

			// both input pairs give the same pressure and bulk modulus
			pt := mdl.PressureFromDensityTemperature(rho, temp, nil)
			pe := mdl.PressureFromDensityInternalEnergy(rho, sie, nil)
			chk.Float64(tst, "P(ρ,T) == P(ρ,e)", 1e-17, pt, pe)
			bt := mdl.BulkModulusFromDensityTemperature(rho, temp, nil)
			be := mdl.BulkModulusFromDensityInternalEnergy(rho, sie, nil)
			chk.Float64(tst, "B(ρ,T) == B(ρ,e)", 1e-17, bt, be)

			// constant specific heat and Grüneisen parameter
			chk.Float64(tst, "cv(ρ,T)", 1e-17, mdl.SpecificHeatFromDensityTemperature(rho, temp, nil), 1000.0)
			chk.Float64(tst, "cv(ρ,e)", 1e-17, mdl.SpecificHeatFromDensityInternalEnergy(rho, sie, nil), 1000.0)
			chk.Float64(tst, "Γ(ρ,T)", 1e-17, mdl.GruneisenParamFromDensityTemperature(rho, temp, nil), 0.3)
			chk.Float64(tst, "Γ(ρ,e)", 1e-17, mdl.GruneisenParamFromDensityInternalEnergy(rho, sie, nil), 0.3)
		}
	}

	chk.IntAssert(mdl.Nlambda(), 0)
	chk.IntAssert(int(mdl.PreferredInput()), int(Density|SpecificInternalEnergy))
	chk.IntAssert(mdl.ScratchSize("DensityEnergyFromPressureTemperature", 100), 0)
	chk.IntAssert(mdl.MaxScratchSize(100), 0)

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotIsotherms(mdl, []float64{200, 298.15, 500, 1000}, 0.2*rho0, 2.0*rho0, 101, nil)
		PlotEnd("/tmp/eos", "fig_jwl_isotherms", false)
	}
}

func Test_jwl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jwl02. cold curve")

	mdl, err := New("jwl")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	A, B := 3.712e11, 3.21e9
	R1, R2 := 4.15, 0.95
	rho0 := 1630.0
	for _, rho := range utl.LinSpace(0.3*rho0, 2.0*rho0, 9) {
		x := rho0 / rho
		pref := A*math.Exp(-R1*x) + B*math.Exp(-R2*x)
		eref := A/(rho0*R1)*math.Exp(-R1*x) + B/(rho0*R2)*math.Exp(-R2*x)

		// at zero temperature the energy sits on the cold curve
		sie := mdl.InternalEnergyFromDensityTemperature(rho, 0, nil)
		chk.Float64(tst, io.Sf("e(ρ,0) @ %.0f", rho), 1e-10*eref, sie, eref)

		// with the cold-curve energy the pressure sits on the cold curve
		press := mdl.PressureFromDensityInternalEnergy(rho, eref, nil)
		chk.Float64(tst, io.Sf("P(ρ,eref) @ %.0f", rho), 1e-10*pref, press, pref)

		// and the temperature is zero
		temp := mdl.TemperatureFromDensityInternalEnergy(rho, eref, nil)
		chk.Float64(tst, io.Sf("T(ρ,eref) @ %.0f", rho), 1e-13*eref/1000.0, temp, 0)
	}
}

func Test_jwl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jwl03. pressure derivatives")

	mdl, err := New("jwl")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	rho0, w := 1630.0, 0.3
	for _, rho := range []float64{0.5 * rho0, rho0, 1.5 * rho0} {
		sie := mdl.InternalEnergyFromDensityTemperature(rho, 500, nil)
		press := mdl.PressureFromDensityInternalEnergy(rho, sie, nil)
		bmod := mdl.BulkModulusFromDensityInternalEnergy(rho, sie, nil)

		// Bs = ρ ∂P/∂ρ + (P/ρ) ∂P/∂e  with  ∂P/∂e = w ρ
		dpdrho := (bmod - w*press) / rho
		chk.DerivScaSca(tst, io.Sf("∂P/∂ρ @ %.0f", rho), 1.0, dpdrho, rho, 1e-3, chk.Verbose, func(x float64) (float64, error) {
			return mdl.PressureFromDensityInternalEnergy(x, sie, nil), nil
		})
		chk.DerivScaSca(tst, io.Sf("∂P/∂e @ %.0f", rho), 1e-1, w*rho, sie, 1e-3, chk.Verbose, func(x float64) (float64, error) {
			return mdl.PressureFromDensityInternalEnergy(rho, x, nil), nil
		})
	}
}

func Test_jwl04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jwl04. fill selected quantities")

	mdl, err := New("jwl")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	rho0 := 1630.0
	sie := mdl.InternalEnergyFromDensityTemperature(rho0, 400, nil)

	s := State{Rho: rho0, Sie: sie, Temp: -123, Press: -123, Cv: -123, Bmod: -123}
	mdl.FillEos(&s, Pressure|SpecificHeat, nil)
	chk.Float64(tst, "press filled", 1e-17, s.Press, mdl.PressureFromDensityInternalEnergy(rho0, sie, nil))
	chk.Float64(tst, "cv filled", 1e-17, s.Cv, 1000.0)
	chk.Float64(tst, "temp untouched", 1e-17, s.Temp, -123)
	chk.Float64(tst, "bmod untouched", 1e-17, s.Bmod, -123)

	mdl.FillEos(&s, None, nil)
	chk.Float64(tst, "temp still untouched", 1e-17, s.Temp, -123)

	mdl.FillEos(&s, AllValues, nil)
	chk.Float64(tst, "temp filled", 1e-17, s.Temp, 400)
	chk.Float64(tst, "bmod filled", 1e-17, s.Bmod, mdl.BulkModulusFromDensityInternalEnergy(rho0, sie, nil))
	chk.Float64(tst, "rho kept", 1e-17, s.Rho, rho0)
	chk.Float64(tst, "sie kept", 1e-17, s.Sie, sie)
}

func Test_jwl05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jwl05. reference state")

	mdl, err := New("jwl")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	A, B := 3.712e11, 3.21e9
	R1, R2, w := 4.15, 0.95, 0.3
	rho0, cv := 1630.0, 1000.0

	s, dpde, dvdt := mdl.ValuesAtReferenceState(nil)
	chk.Float64(tst, "rho", 1e-17, s.Rho, rho0)
	chk.Float64(tst, "temp", 1e-17, s.Temp, RoomTemperature)
	chk.Float64(tst, "press", 1e-17, s.Press, AtmosphericPressure)
	chk.Float64(tst, "cv", 1e-17, s.Cv, cv)
	chk.Float64(tst, "sie", 1e-17, s.Sie, mdl.InternalEnergyFromDensityTemperature(rho0, RoomTemperature, nil))
	chk.Float64(tst, "bmod", 1e-17, s.Bmod, mdl.BulkModulusFromDensityInternalEnergy(rho0, s.Sie, nil))
	chk.Float64(tst, "dpde", 1e-12, dpde, w*rho0)

	// isothermal modulus at the reference point
	slope := A*R1*math.Exp(-R1) + B*R2*math.Exp(-R2)
	bt := slope + w*rho0*cv*RoomTemperature
	chk.Float64(tst, "dvdt", 1e-12*dvdt, dvdt, w*cv/bt)

	// numerical check along the isobar through the reference point
	pref := mdl.PressureFromDensityTemperature(rho0, RoomTemperature, nil)
	chk.DerivScaSca(tst, "dvdt numeric", 5e-11, dvdt, RoomTemperature, 10.0, chk.Verbose, func(x float64) (float64, error) {
		r, _, e := mdl.DensityEnergyFromPressureTemperature(pref, x, nil, 0)
		return 1.0 / r, e
	})
	chk.DerivScaSca(tst, "dpde numeric", 1e-1, dpde, s.Sie, 1e-3, chk.Verbose, func(x float64) (float64, error) {
		return mdl.PressureFromDensityInternalEnergy(rho0, x, nil), nil
	})
}

func Test_jwl06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jwl06. density-energy from pressure-temperature")

	mdl, err := New("jwl")
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	rho0 := 1630.0
	for _, rhoStar := range []float64{0.5 * rho0, rho0, 2.0 * rho0} {
		for _, tempStar := range []float64{250.0, 298.15, 600.0} {
			press := mdl.PressureFromDensityTemperature(rhoStar, tempStar, nil)
			sieStar := mdl.InternalEnergyFromDensityTemperature(rhoStar, tempStar, nil)

			// default guess
			rho, sie, err := mdl.DensityEnergyFromPressureTemperature(press, tempStar, nil, 0)
			if err != nil {
				tst.Errorf("inversion failed @ %.0f,%.0f: %v\n", rhoStar, tempStar, err)
				return
			}
			chk.Float64(tst, io.Sf("ρ @ %.0f,%.0f", rhoStar, tempStar), 1e-5*rhoStar, rho, rhoStar)
			chk.Float64(tst, io.Sf("e @ %.0f,%.0f", rhoStar, tempStar), 1e-5*math.Abs(sieStar), sie, sieStar)

			// explicit guess
			rho, sie, err = mdl.DensityEnergyFromPressureTemperature(press, tempStar, nil, rhoStar)
			if err != nil {
				tst.Errorf("inversion with guess failed @ %.0f,%.0f: %v\n", rhoStar, tempStar, err)
				return
			}
			chk.Float64(tst, io.Sf("ρ guessed @ %.0f,%.0f", rhoStar, tempStar), 1e-5*rhoStar, rho, rhoStar)
			chk.Float64(tst, io.Sf("e guessed @ %.0f,%.0f", rhoStar, tempStar), 1e-5*math.Abs(sieStar), sie, sieStar)
		}
	}

	// negative pressure cannot be bracketed
	_, _, err = mdl.DensityEnergyFromPressureTemperature(-1e9, 298.15, nil, 0)
	if err == nil {
		tst.Errorf("inversion with negative pressure must fail\n")
		return
	}
	io.Pforan("expected failure: %v\n", err)

	// entropy is not available and yields the sentinel
	chk.Float64(tst, "entropy sentinel (ρ,T)", 1e-17, mdl.EntropyFromDensityTemperature(rho0, 298.15, nil), 1.0)
	chk.Float64(tst, "entropy sentinel (ρ,e)", 1e-17, mdl.EntropyFromDensityInternalEnergy(rho0, 3e5, nil), 1.0)
}
