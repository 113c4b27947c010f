// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// PathSeg defines one linear ramp in the density-temperature plane
type PathSeg struct {
	Rho  float64 `json:"rho"`  // density at the end of the segment
	Temp float64 `json:"temp"` // temperature at the end of the segment
	Np   int     `json:"np"`   // number of points along the segment, including both ends; 0 => use default
}

// Path defines a piecewise linear trajectory in the density-temperature
// plane. Points along each segment are equally spaced and junction points are
// not repeated
type Path struct {

	// input data
	Desc  string     `json:"desc"`  // description of path
	Rho0  float64    `json:"rho0"`  // density at the start of the path
	Temp0 float64    `json:"temp0"` // temperature at the start of the path
	Segs  []*PathSeg `json:"segs"`  // segments

	// derived
	Rho  []float64 // density of each point along the path
	Temp []float64 // temperature of each point along the path
}

// ReadJSON reads a path from a JSON file and computes all points
func (o *Path) ReadJSON(filename string) (err error) {
	b, err := io.ReadFile(filename)
	if err != nil {
		return
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return chk.Err("path: cannot unmarshal file %q", filename)
	}
	return o.Expand()
}

// Expand computes the points of all segments
func (o *Path) Expand() (err error) {
	if o.Rho0 <= 0 {
		return chk.Err("path: initial density must be positive. rho0=%g is invalid", o.Rho0)
	}
	if o.Temp0 < 0 {
		return chk.Err("path: initial temperature cannot be negative. temp0=%g is invalid", o.Temp0)
	}
	if len(o.Segs) < 1 {
		return chk.Err("path: at least one segment is required")
	}
	o.Rho = []float64{o.Rho0}
	o.Temp = []float64{o.Temp0}
	rho, temp := o.Rho0, o.Temp0
	for i, seg := range o.Segs {
		if seg.Rho <= 0 {
			return chk.Err("path: density at the end of segment %d must be positive. rho=%g is invalid", i, seg.Rho)
		}
		if seg.Temp < 0 {
			return chk.Err("path: temperature at the end of segment %d cannot be negative. temp=%g is invalid", i, seg.Temp)
		}
		if seg.Np < 2 {
			seg.Np = 11
		}
		R := utl.LinSpace(rho, seg.Rho, seg.Np)
		T := utl.LinSpace(temp, seg.Temp, seg.Np)
		o.Rho = append(o.Rho, R[1:]...)
		o.Temp = append(o.Temp, T[1:]...)
		rho, temp = seg.Rho, seg.Temp
	}
	return
}

// Size returns the number of points along the path
func (o *Path) Size() int {
	return len(o.Rho)
}
