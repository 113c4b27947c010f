// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// physical constants [SI]
const (
	kBoltzmann     = 1.380649e-23      // Boltzmann constant [J/K]
	atomicMassUnit = 1.66053906660e-27 // atomic mass unit [kg]
)

// lambda components consumed by IdealElectrons
const (
	LambdaAbar = iota // mean atomic mass [amu]
	LambdaZbar        // mean ionisation state [-]
)

// IdealElectrons implements an ideal gas of the free electrons in a partially
// ionised material
//  P(ρ,e) = ρ R* T      R* := (Z̄/Ā) kB/mu
//  e(ρ,T) = (3/2) R* T
// The mean atomic mass Ā and mean ionisation Z̄ vary per material point, so
// they travel in lambda rather than in the parameters
type IdealElectrons struct{}

// add model to factory
func init() {
	allocators["ideal-electrons"] = func() Model { return new(IdealElectrons) }
}

// Init initialises model. All physics is fixed by constants and lambda, so no
// parameters are accepted
func (o *IdealElectrons) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("ideal-electrons: parameter named %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o IdealElectrons) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// EosType returns the name of this model kind
func (o IdealElectrons) EosType() string { return "IdealElectrons" }

// String renders the parameters for logging
func (o IdealElectrons) String() string {
	return io.Sf("IdealElectrons Params: (none; Abar and Zbar come in lambda)")
}

// Nlambda returns the required length of lambda
func (o IdealElectrons) Nlambda() int { return 2 }

// PreferredInput returns the natural pair of independent variables
func (o IdealElectrons) PreferredInput() uint { return Density | Temperature }

// rgas computes the specific gas constant R* of the electron gas [J/(kg·K)]
func (o IdealElectrons) rgas(lambda []float64) float64 {
	return lambda[LambdaZbar] / lambda[LambdaAbar] * kBoltzmann / atomicMassUnit
}

// TemperatureFromDensityInternalEnergy computes temperature
func (o IdealElectrons) TemperatureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return sie / (1.5 * o.rgas(lambda))
}

// InternalEnergyFromDensityTemperature computes specific internal energy
func (o IdealElectrons) InternalEnergyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return 1.5 * o.rgas(lambda) * temp
}

// PressureFromDensityTemperature computes pressure
func (o IdealElectrons) PressureFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return rho * o.rgas(lambda) * temp
}

// PressureFromDensityInternalEnergy computes pressure
func (o IdealElectrons) PressureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.PressureFromDensityTemperature(rho, o.TemperatureFromDensityInternalEnergy(rho, sie, lambda), lambda)
}

// EntropyFromDensityTemperature is not available for this model
func (o IdealElectrons) EntropyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	NotEnabled("IdealElectrons", "entropy")
	return SentinelValue
}

// EntropyFromDensityInternalEnergy is not available for this model
func (o IdealElectrons) EntropyFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	NotEnabled("IdealElectrons", "entropy")
	return SentinelValue
}

// SpecificHeatFromDensityTemperature computes specific heat
func (o IdealElectrons) SpecificHeatFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return 1.5 * o.rgas(lambda)
}

// SpecificHeatFromDensityInternalEnergy computes specific heat
func (o IdealElectrons) SpecificHeatFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return 1.5 * o.rgas(lambda)
}

// BulkModulusFromDensityTemperature computes the isentropic bulk modulus
//  Bs = (5/3) P
func (o IdealElectrons) BulkModulusFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return 5.0 / 3.0 * o.PressureFromDensityTemperature(rho, temp, lambda)
}

// BulkModulusFromDensityInternalEnergy computes the isentropic bulk modulus
func (o IdealElectrons) BulkModulusFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.BulkModulusFromDensityTemperature(rho, o.TemperatureFromDensityInternalEnergy(rho, sie, lambda), lambda)
}

// GruneisenParamFromDensityTemperature returns the Grüneisen parameter
func (o IdealElectrons) GruneisenParamFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return 2.0 / 3.0
}

// GruneisenParamFromDensityInternalEnergy returns the Grüneisen parameter
func (o IdealElectrons) GruneisenParamFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return 2.0 / 3.0
}

// FillEos computes the quantities selected by output from s.Rho and s.Sie
func (o IdealElectrons) FillEos(s *State, output uint, lambda []float64) {
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

// ValuesAtReferenceState returns the state of the electron gas at room
// temperature and atmospheric pressure for the composition in lambda
func (o IdealElectrons) ValuesAtReferenceState(lambda []float64) (s State, dpde, dvdt float64) {
	rs := o.rgas(lambda)
	s.Temp = RoomTemperature
	s.Press = AtmosphericPressure
	s.Rho = s.Press / (rs * s.Temp)
	s.Sie = 1.5 * rs * s.Temp
	s.Cv = 1.5 * rs
	s.Bmod = 5.0 / 3.0 * s.Press
	dpde = 2.0 / 3.0 * s.Rho
	dvdt = rs / s.Press
	return
}

// DensityEnergyFromPressureTemperature computes density and specific internal
// energy from the closed form ρ = P / (R* T). rhoGuess is not needed
func (o IdealElectrons) DensityEnergyFromPressureTemperature(press, temp float64, lambda []float64, rhoGuess float64) (rho, sie float64, err error) {
	if press <= 0 || temp <= 0 {
		return 0, 0, chk.Err("ideal-electrons: DensityEnergyFromPressureTemperature requires positive inputs, got P=%g, T=%g", press, temp)
	}
	rs := o.rgas(lambda)
	rho = press / (rs * temp)
	sie = 1.5 * rs * temp
	return
}

// ScratchSize returns the scratch bytes needed by the named method for
// nelements simultaneous evaluations (none for this model)
func (o IdealElectrons) ScratchSize(method string, nelements int) int { return 0 }

// MaxScratchSize returns the largest ScratchSize over all methods
func (o IdealElectrons) MaxScratchSize(nelements int) int { return 0 }
