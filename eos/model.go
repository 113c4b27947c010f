// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equations of state for materials used in physics
// simulation codes. A model relates density, temperature, specific internal
// energy and pressure; two of these are independent inputs and the operation
// name encodes which pair. Models are immutable after Init and all query
// operations are pure, so one instance may serve any number of concurrent
// evaluations
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// nominal ambient conditions [SI]
const (
	RoomTemperature     = 298.15   // [K]
	AtmosphericPressure = 101325.0 // [Pa]
)

// flags identifying thermodynamic quantities within FillEos output masks and
// PreferredInput pairs
const (
	Density uint = 1 << iota
	SpecificInternalEnergy
	Pressure
	Temperature
	SpecificHeat
	BulkModulus
)

// None and AllValues are the empty and the complete quantity masks
const (
	None      uint = 0
	AllValues      = Density | SpecificInternalEnergy | Pressure | Temperature | SpecificHeat | BulkModulus
)

// State holds one thermodynamic state point. Two fields are the independent
// inputs (which two is encoded by the operation or by PreferredInput); the
// remaining fields are derived
type State struct {
	Rho   float64 // 1 density
	Temp  float64 // 2 temperature
	Sie   float64 // 3 specific internal energy
	Press float64 // 4 pressure
	Cv    float64 // 5 specific heat at constant volume
	Bmod  float64 // 6 bulk modulus
}

// GetCopy returns a copy of State
func (o State) GetCopy() *State {
	return &State{
		o.Rho,   // 1
		o.Temp,  // 2
		o.Sie,   // 3
		o.Press, // 4
		o.Cv,    // 5
		o.Bmod,  // 6
	}
}

// Set sets this State with another State
func (o *State) Set(s *State) {
	o.Rho = s.Rho     // 1
	o.Temp = s.Temp   // 2
	o.Sie = s.Sie     // 3
	o.Press = s.Press // 4
	o.Cv = s.Cv       // 5
	o.Bmod = s.Bmod   // 6
}

// Model defines the interface for equation-of-state models.
//
// Every query operation is a pure function of the (immutable) parameters and
// its arguments: no internal state, no allocation, safe for concurrent calls.
// The lambda argument carries the extra state some models require per point
// (length Nlambda); nil is valid whenever Nlambda() == 0.
//
// Density must be positive and temperature/energy finite on entry. These
// preconditions are not re-validated inside the hot operations.
//
// A model may have no formulation for a quantity (e.g. entropy for detonation
// products). Such operations report the condition once and return the fixed
// SentinelValue, which carries no physical meaning
type Model interface {
	Init(prms dbf.Params) error      // initialises model with parameters
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	EosType() string                 // returns the name of this model kind
	String() string                  // renders the parameters for logging
	Nlambda() int                    // returns the required length of lambda
	PreferredInput() uint            // returns the natural pair of independent variables

	TemperatureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64
	InternalEnergyFromDensityTemperature(rho, temp float64, lambda []float64) float64
	PressureFromDensityTemperature(rho, temp float64, lambda []float64) float64
	PressureFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64
	EntropyFromDensityTemperature(rho, temp float64, lambda []float64) float64
	EntropyFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64
	SpecificHeatFromDensityTemperature(rho, temp float64, lambda []float64) float64
	SpecificHeatFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64
	BulkModulusFromDensityTemperature(rho, temp float64, lambda []float64) float64
	BulkModulusFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64
	GruneisenParamFromDensityTemperature(rho, temp float64, lambda []float64) float64
	GruneisenParamFromDensityInternalEnergy(rho, sie float64, lambda []float64) float64

	// FillEos computes exactly the quantities selected by output, reading
	// s.Rho and s.Sie and leaving unselected fields untouched
	FillEos(s *State, output uint, lambda []float64)

	// ValuesAtReferenceState returns the state at the nominal ambient
	// condition plus dP/de at constant density and dV/dT at constant pressure
	ValuesAtReferenceState(lambda []float64) (s State, dpde, dvdt float64)

	// DensityEnergyFromPressureTemperature inverts the model for the (P,T)
	// pair. rhoGuess seeds the search when no closed form exists; values
	// below 1e-8 select the model's reference density. Failures to bracket
	// or to converge come back as errors naming the operation and inputs
	DensityEnergyFromPressureTemperature(press, temp float64, lambda []float64, rhoGuess float64) (rho, sie float64, err error)

	ScratchSize(method string, nelements int) int // scratch bytes needed by method for nelements points
	MaxScratchSize(nelements int) int             // largest ScratchSize over all methods
}

// New returns a new equation-of-state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
