// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/parikshitbajpai/singularity-eos/root1d"
)

// JWL implements the Jones-Wilkins-Lee model for the products of detonation
// of high explosives
//  P(ρ,e) = Pref(ρ) + w ρ (e - eref(ρ))
//  e(ρ,T) = eref(ρ) + Cv T
// with the reference curves, using x := ρ0/ρ,
//  Pref(ρ) = A exp(-R1 x) + B exp(-R2 x)
//  eref(ρ) = A/(ρ0 R1) exp(-R1 x) + B/(ρ0 R2) exp(-R2 x)
//  References:
//   [1] Lee EL, Hornig HC, Kury JW (1968) Adiabatic expansion of high
//       explosive detonation products. Lawrence Radiation Laboratory,
//       UCRL-50422
//   [2] Menikoff R (2015) JWL equation of state. Los Alamos National
//       Laboratory, LA-UR-15-29536
type JWL struct {
	// parameters
	a    float64 // A: amplitude of the first exponential term
	b    float64 // B: amplitude of the second exponential term
	r1   float64 // R1: decay rate of the first exponential term
	r2   float64 // R2: decay rate of the second exponential term
	w    float64 // w: Grüneisen parameter
	rho0 float64 // ρ0: reference density
	cv   float64 // Cv: specific heat at constant volume
}

// add model to factory
func init() {
	allocators["jwl"] = func() Model { return new(JWL) }
}

// Init initialises model
func (o *JWL) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a":
			o.a = p.V
		case "b":
			o.b = p.V
		case "r1":
			o.r1 = p.V
		case "r2":
			o.r2 = p.V
		case "w":
			o.w = p.V
		case "rho0":
			o.rho0 = p.V
		case "cv":
			o.cv = p.V
		default:
			return chk.Err("jwl: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.rho0 <= 0 || o.cv <= 0 || o.r1 <= 0 || o.r2 <= 0 {
		return chk.Err("jwl: parameters rho0, Cv, R1 and R2 must be positive")
	}
	return
}

// GetPrms gets (an example of) parameters
func (o JWL) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // TNT [SI units]
			&dbf.P{N: "A", V: 3.712e11}, // [Pa]
			&dbf.P{N: "B", V: 3.21e9},   // [Pa]
			&dbf.P{N: "R1", V: 4.15},    // [-]
			&dbf.P{N: "R2", V: 0.95},    // [-]
			&dbf.P{N: "w", V: 0.3},      // [-]
			&dbf.P{N: "rho0", V: 1630},  // [kg/m³]
			&dbf.P{N: "Cv", V: 1000},    // [J/(kg·K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "A", V: o.a},
		&dbf.P{N: "B", V: o.b},
		&dbf.P{N: "R1", V: o.r1},
		&dbf.P{N: "R2", V: o.r2},
		&dbf.P{N: "w", V: o.w},
		&dbf.P{N: "rho0", V: o.rho0},
		&dbf.P{N: "Cv", V: o.cv},
	}
}

// EosType returns the name of this model kind
func (o JWL) EosType() string { return "JWL" }

// String renders the parameters for logging
func (o JWL) String() string {
	return io.Sf("JWL Params: A:%e B:%e R1:%e R2:%e w:%e rho0:%e Cv:%e", o.a, o.b, o.r1, o.r2, o.w, o.rho0, o.cv)
}

// Nlambda returns the required length of lambda
func (o JWL) Nlambda() int { return 0 }

// PreferredInput returns the natural pair of independent variables
func (o JWL) PreferredInput() uint { return Density | SpecificInternalEnergy }

// referencePressure computes the cold-curve pressure Pref(ρ)
func (o JWL) referencePressure(rho float64) float64 {
	x := o.rho0 / rho
	return o.a*math.Exp(-o.r1*x) + o.b*math.Exp(-o.r2*x)
}

// referenceEnergy computes the cold-curve specific internal energy eref(ρ)
func (o JWL) referenceEnergy(rho float64) float64 {
	x := o.rho0 / rho
	return o.a/(o.rho0*o.r1)*math.Exp(-o.r1*x) + o.b/(o.rho0*o.r2)*math.Exp(-o.r2*x)
}

// referencePressureSlope computes ρ dPref/dρ = x (A R1 exp(-R1 x) + B R2 exp(-R2 x))
func (o JWL) referencePressureSlope(rho float64) float64 {
	x := o.rho0 / rho
	return x * (o.a*o.r1*math.Exp(-o.r1*x) + o.b*o.r2*math.Exp(-o.r2*x))
}

// TemperatureFromDensityInternalEnergy computes temperature
func (o JWL) TemperatureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return (sie - o.referenceEnergy(rho)) / o.cv
}

// InternalEnergyFromDensityTemperature computes specific internal energy
func (o JWL) InternalEnergyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.referenceEnergy(rho) + o.cv*temp
}

// PressureFromDensityInternalEnergy computes pressure
func (o JWL) PressureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.referencePressure(rho) + o.w*rho*(sie-o.referenceEnergy(rho))
}

// PressureFromDensityTemperature computes pressure
func (o JWL) PressureFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.PressureFromDensityInternalEnergy(rho, o.InternalEnergyFromDensityTemperature(rho, temp, lambda), lambda)
}

// EntropyFromDensityTemperature is not available for this model
func (o JWL) EntropyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	NotEnabled("JWL", "entropy")
	return SentinelValue
}

// EntropyFromDensityInternalEnergy is not available for this model
func (o JWL) EntropyFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	NotEnabled("JWL", "entropy")
	return SentinelValue
}

// SpecificHeatFromDensityTemperature computes specific heat
func (o JWL) SpecificHeatFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.cv
}

// SpecificHeatFromDensityInternalEnergy computes specific heat
func (o JWL) SpecificHeatFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.cv
}

// BulkModulusFromDensityInternalEnergy computes the isentropic bulk modulus
//  Bs = (w+1) w ρ (e - eref) + ρ dPref/dρ
func (o JWL) BulkModulusFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return (o.w+1.0)*o.w*rho*(sie-o.referenceEnergy(rho)) + o.referencePressureSlope(rho)
}

// BulkModulusFromDensityTemperature computes the isentropic bulk modulus
func (o JWL) BulkModulusFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.BulkModulusFromDensityInternalEnergy(rho, o.InternalEnergyFromDensityTemperature(rho, temp, lambda), lambda)
}

// GruneisenParamFromDensityTemperature returns the Grüneisen parameter
func (o JWL) GruneisenParamFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.w
}

// GruneisenParamFromDensityInternalEnergy returns the Grüneisen parameter
func (o JWL) GruneisenParamFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.w
}

// FillEos computes the quantities selected by output from s.Rho and s.Sie
func (o JWL) FillEos(s *State, output uint, lambda []float64) {
	if output&Pressure != 0 {
		s.Press = o.PressureFromDensityInternalEnergy(s.Rho, s.Sie, lambda)
	}
	if output&Temperature != 0 {
		s.Temp = o.TemperatureFromDensityInternalEnergy(s.Rho, s.Sie, lambda)
	}
	if output&SpecificHeat != 0 {
		s.Cv = o.SpecificHeatFromDensityInternalEnergy(s.Rho, s.Sie, lambda)
	}
	if output&BulkModulus != 0 {
		s.Bmod = o.BulkModulusFromDensityInternalEnergy(s.Rho, s.Sie, lambda)
	}
}

// ValuesAtReferenceState returns the ambient state and response derivatives.
// The isochoric derivative is dP/de = w ρ; the isobaric one follows from the
// isothermal bulk modulus BT = ρ dPref/dρ + w ρ (e - eref) as dV/dT = w Cv / BT
func (o JWL) ValuesAtReferenceState(lambda []float64) (s State, dpde, dvdt float64) {
	s.Rho = o.rho0
	s.Temp = RoomTemperature
	s.Sie = o.InternalEnergyFromDensityTemperature(s.Rho, s.Temp, lambda)
	s.Press = AtmosphericPressure
	s.Cv = o.cv
	s.Bmod = o.BulkModulusFromDensityInternalEnergy(s.Rho, s.Sie, lambda)
	bt := o.referencePressureSlope(s.Rho) + o.w*s.Rho*(s.Sie-o.referenceEnergy(s.Rho))
	dpde = o.w * s.Rho
	dvdt = o.w * o.cv / bt
	return
}

// DensityEnergyFromPressureTemperature computes density and specific internal
// energy for a given pressure and temperature. The (P,T) pair has no closed
// form inverse for this model; the density solves
//  Cv T ρ w + Pref(ρ) = P
// with the false-position method on [1e-5 g, 1e3 g], g being the guess, and
// the energy then follows from density and temperature
func (o JWL) DensityEnergyFromPressureTemperature(press, temp float64, lambda []float64, rhoGuess float64) (rho, sie float64, err error) {
	g := rhoGuess
	if g < 1e-8 {
		g = o.rho0
	}
	f := func(r float64) float64 {
		return o.cv*temp*r*o.w + o.referencePressure(r)
	}
	rho, nit, status := root1d.RegulaFalsi(f, press, 1e-5*g, 1e3*g, 1e-8, 1e-8)
	if status != root1d.Success {
		return 0, 0, chk.Err("jwl: DensityEnergyFromPressureTemperature failed with P=%g, T=%g (guess=%g): %v after %d iterations", press, temp, g, status, nit)
	}
	sie = o.InternalEnergyFromDensityTemperature(rho, temp, lambda)
	return
}

// ScratchSize returns the scratch bytes needed by the named method for
// nelements simultaneous evaluations (none for this model)
func (o JWL) ScratchSize(method string, nelements int) int { return 0 }

// MaxScratchSize returns the largest ScratchSize over all methods
func (o JWL) MaxScratchSize(nelements int) int { return 0 }
