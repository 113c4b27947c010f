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
)

// IdealGas implements the calorically perfect gas
//  P(ρ,e) = (γ-1) ρ e
//  e(ρ,T) = Cv T
// parametrised by gm1 := γ-1 and Cv. The reference density rho0 and
// temperature T0 fix the zero point of the entropy
//  s(ρ,T) = Cv ln(T/T0) + (γ-1) Cv ln(ρ0/ρ)
type IdealGas struct {
	// parameters
	gm1  float64 // γ-1: Grüneisen parameter
	cv   float64 // Cv: specific heat at constant volume
	rho0 float64 // ρ0: reference density
	t0   float64 // T0: reference temperature
}

// add model to factory
func init() {
	allocators["ideal-gas"] = func() Model { return new(IdealGas) }
}

// Init initialises model
func (o *IdealGas) Init(prms dbf.Params) (err error) {
	o.rho0 = 1.0
	o.t0 = RoomTemperature
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "gm1":
			o.gm1 = p.V
		case "cv":
			o.cv = p.V
		case "rho0":
			o.rho0 = p.V
		case "t0":
			o.t0 = p.V
		default:
			return chk.Err("ideal-gas: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.gm1 <= 0 || o.cv <= 0 || o.rho0 <= 0 || o.t0 <= 0 {
		return chk.Err("ideal-gas: parameters gm1, Cv, rho0 and T0 must be positive")
	}
	return
}

// GetPrms gets (an example of) parameters
func (o IdealGas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // air [SI units]
			&dbf.P{N: "gm1", V: 0.4},     // [-]
			&dbf.P{N: "Cv", V: 717.6},    // [J/(kg·K)]
			&dbf.P{N: "rho0", V: 1.225},  // [kg/m³]
			&dbf.P{N: "T0", V: 288.15},   // [K]
		}
	}
	return dbf.Params{
		&dbf.P{N: "gm1", V: o.gm1},
		&dbf.P{N: "Cv", V: o.cv},
		&dbf.P{N: "rho0", V: o.rho0},
		&dbf.P{N: "T0", V: o.t0},
	}
}

// EosType returns the name of this model kind
func (o IdealGas) EosType() string { return "IdealGas" }

// String renders the parameters for logging
func (o IdealGas) String() string {
	return io.Sf("IdealGas Params: gm1:%e Cv:%e rho0:%e T0:%e", o.gm1, o.cv, o.rho0, o.t0)
}

// Nlambda returns the required length of lambda
func (o IdealGas) Nlambda() int { return 0 }

// PreferredInput returns the natural pair of independent variables
func (o IdealGas) PreferredInput() uint { return Density | SpecificInternalEnergy }

// TemperatureFromDensityInternalEnergy computes temperature
func (o IdealGas) TemperatureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return sie / o.cv
}

// InternalEnergyFromDensityTemperature computes specific internal energy
func (o IdealGas) InternalEnergyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.cv * temp
}

// PressureFromDensityInternalEnergy computes pressure
func (o IdealGas) PressureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.gm1 * rho * sie
}

// PressureFromDensityTemperature computes pressure
func (o IdealGas) PressureFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.PressureFromDensityInternalEnergy(rho, o.InternalEnergyFromDensityTemperature(rho, temp, lambda), lambda)
}

// EntropyFromDensityInternalEnergy computes specific entropy
func (o IdealGas) EntropyFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.cv*math.Log(sie/(o.cv*o.t0)) + o.gm1*o.cv*math.Log(o.rho0/rho)
}

// EntropyFromDensityTemperature computes specific entropy
func (o IdealGas) EntropyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.EntropyFromDensityInternalEnergy(rho, o.InternalEnergyFromDensityTemperature(rho, temp, lambda), lambda)
}

// SpecificHeatFromDensityTemperature computes specific heat
func (o IdealGas) SpecificHeatFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.cv
}

// SpecificHeatFromDensityInternalEnergy computes specific heat
func (o IdealGas) SpecificHeatFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.cv
}

// BulkModulusFromDensityInternalEnergy computes the isentropic bulk modulus
//  Bs = γ P = (γ-1+1)(γ-1) ρ e
func (o IdealGas) BulkModulusFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return (o.gm1 + 1.0) * o.gm1 * rho * sie
}

// BulkModulusFromDensityTemperature computes the isentropic bulk modulus
func (o IdealGas) BulkModulusFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.BulkModulusFromDensityInternalEnergy(rho, o.InternalEnergyFromDensityTemperature(rho, temp, lambda), lambda)
}

// GruneisenParamFromDensityTemperature returns the Grüneisen parameter
func (o IdealGas) GruneisenParamFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.gm1
}

// GruneisenParamFromDensityInternalEnergy returns the Grüneisen parameter
func (o IdealGas) GruneisenParamFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.gm1
}

// FillEos computes the quantities selected by output from s.Rho and s.Sie
func (o IdealGas) FillEos(s *State, output uint, lambda []float64) {
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

// ValuesAtReferenceState returns the state at (ρ0, T0) and the response
// derivatives dP/de = (γ-1) ρ0 and dV/dT = (γ-1) Cv / P0
func (o IdealGas) ValuesAtReferenceState(lambda []float64) (s State, dpde, dvdt float64) {
	s.Rho = o.rho0
	s.Temp = o.t0
	s.Sie = o.cv * o.t0
	s.Press = o.gm1 * o.rho0 * s.Sie
	s.Cv = o.cv
	s.Bmod = (o.gm1 + 1.0) * s.Press
	dpde = o.gm1 * o.rho0
	dvdt = o.gm1 * o.cv / s.Press
	return
}

// DensityEnergyFromPressureTemperature computes density and specific internal
// energy from the closed form ρ = P / ((γ-1) Cv T). rhoGuess is not needed
func (o IdealGas) DensityEnergyFromPressureTemperature(press, temp float64, lambda []float64, rhoGuess float64) (rho, sie float64, err error) {
	if press <= 0 || temp <= 0 {
		return 0, 0, chk.Err("ideal-gas: DensityEnergyFromPressureTemperature requires positive inputs, got P=%g, T=%g", press, temp)
	}
	rho = press / (o.gm1 * o.cv * temp)
	sie = o.cv * temp
	return
}

// ScratchSize returns the scratch bytes needed by the named method for
// nelements simultaneous evaluations (none for this model)
func (o IdealGas) ScratchSize(method string, nelements int) int { return 0 }

// MaxScratchSize returns the largest ScratchSize over all methods
func (o IdealGas) MaxScratchSize(nelements int) int { return 0 }
