// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Shifted wraps another model, displacing the zero point of the specific
// internal energy
//  e = e' + shift
// where e' is the energy seen by the inner model. Useful to line up the
// energy origins of different materials, e.g. around a reaction enthalpy.
// M must be set before any query
type Shifted struct {
	// wrapped model
	M Model

	// parameters
	shift float64 // displacement of the energy zero point
}

// add model to factory
func init() {
	allocators["shifted"] = func() Model { return new(Shifted) }
}

// NewShifted wraps mdl, displacing its energy zero point by shift
func NewShifted(mdl Model, shift float64) *Shifted {
	return &Shifted{M: mdl, shift: shift}
}

// Init initialises modifier parameters. The wrapped model is attached
// separately, either with NewShifted or by setting M
func (o *Shifted) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "shift":
			o.shift = p.V
		default:
			return chk.Err("shifted: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Shifted) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "shift", V: 1e6}, // [J/kg]
		}
	}
	return dbf.Params{
		&dbf.P{N: "shift", V: o.shift},
	}
}

// EosType returns the name of this model kind
func (o Shifted) EosType() string {
	return io.Sf("Shifted(%s)", o.M.EosType())
}

// String renders the parameters for logging
func (o Shifted) String() string {
	return io.Sf("Shifted Params: shift:%e; inner: %v", o.shift, o.M)
}

// Nlambda returns the required length of lambda
func (o Shifted) Nlambda() int { return o.M.Nlambda() }

// PreferredInput returns the natural pair of independent variables
func (o Shifted) PreferredInput() uint { return o.M.PreferredInput() }

// TemperatureFromDensityInternalEnergy computes temperature
func (o Shifted) TemperatureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.M.TemperatureFromDensityInternalEnergy(rho, sie-o.shift, lambda)
}

// InternalEnergyFromDensityTemperature computes specific internal energy
func (o Shifted) InternalEnergyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.M.InternalEnergyFromDensityTemperature(rho, temp, lambda) + o.shift
}

// PressureFromDensityTemperature computes pressure
func (o Shifted) PressureFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.M.PressureFromDensityTemperature(rho, temp, lambda)
}

// PressureFromDensityInternalEnergy computes pressure
func (o Shifted) PressureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.M.PressureFromDensityInternalEnergy(rho, sie-o.shift, lambda)
}

// EntropyFromDensityTemperature computes specific entropy
func (o Shifted) EntropyFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.M.EntropyFromDensityTemperature(rho, temp, lambda)
}

// EntropyFromDensityInternalEnergy computes specific entropy
func (o Shifted) EntropyFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.M.EntropyFromDensityInternalEnergy(rho, sie-o.shift, lambda)
}

// SpecificHeatFromDensityTemperature computes specific heat
func (o Shifted) SpecificHeatFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.M.SpecificHeatFromDensityTemperature(rho, temp, lambda)
}

// SpecificHeatFromDensityInternalEnergy computes specific heat
func (o Shifted) SpecificHeatFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.M.SpecificHeatFromDensityInternalEnergy(rho, sie-o.shift, lambda)
}

// BulkModulusFromDensityTemperature computes the isentropic bulk modulus
func (o Shifted) BulkModulusFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.M.BulkModulusFromDensityTemperature(rho, temp, lambda)
}

// BulkModulusFromDensityInternalEnergy computes the isentropic bulk modulus
func (o Shifted) BulkModulusFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.M.BulkModulusFromDensityInternalEnergy(rho, sie-o.shift, lambda)
}

// GruneisenParamFromDensityTemperature returns the Grüneisen parameter
func (o Shifted) GruneisenParamFromDensityTemperature(rho, temp float64, lambda []float64) float64 {
	return o.M.GruneisenParamFromDensityTemperature(rho, temp, lambda)
}

// GruneisenParamFromDensityInternalEnergy returns the Grüneisen parameter
func (o Shifted) GruneisenParamFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64 {
	return o.M.GruneisenParamFromDensityInternalEnergy(rho, sie-o.shift, lambda)
}

// FillEos computes the quantities selected by output from s.Rho and s.Sie
func (o Shifted) FillEos(s *State, output uint, lambda []float64) {
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

// ValuesAtReferenceState returns the inner reference state with the energy
// re-expressed in the outer zero point. The derivatives are unaffected by a
// constant shift
func (o Shifted) ValuesAtReferenceState(lambda []float64) (s State, dpde, dvdt float64) {
	s, dpde, dvdt = o.M.ValuesAtReferenceState(lambda)
	s.Sie += o.shift
	return
}

// DensityEnergyFromPressureTemperature computes density and specific internal
// energy, re-expressing the energy in the outer zero point
func (o Shifted) DensityEnergyFromPressureTemperature(press, temp float64, lambda []float64, rhoGuess float64) (rho, sie float64, err error) {
	rho, sie, err = o.M.DensityEnergyFromPressureTemperature(press, temp, lambda, rhoGuess)
	if err != nil {
		return
	}
	sie += o.shift
	return
}

// ScratchSize returns the scratch bytes needed by the named method for
// nelements simultaneous evaluations
func (o Shifted) ScratchSize(method string, nelements int) int {
	return o.M.ScratchSize(method, nelements)
}

// MaxScratchSize returns the largest ScratchSize over all methods
func (o Shifted) MaxScratchSize(nelements int) int {
	return o.M.MaxScratchSize(nelements)
}
