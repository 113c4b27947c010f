// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/parikshitbajpai/singularity-eos/eos"
)

// Data holds global simulation data
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/eos

	// options
	Ncpu      int  `json:"ncpu"`      // number of goroutines for array evaluations
	RoundTrip bool `json:"roundtrip"` // re-derive density and energy from pressure and temperature after each sweep
}

// Sweep requests the evaluation of one family of isotherms
type Sweep struct {

	// input data
	Desc   string    `json:"desc"`   // description of sweep. ex: expansion isotherms
	Mat    string    `json:"mat"`    // material name
	Temps  []float64 `json:"temps"`  // temperature of each isotherm
	RhoMin float64   `json:"rhomin"` // minimum density
	RhoMax float64   `json:"rhomax"` // maximum density
	Npts   int       `json:"npts"`   // number of points along the density axis; 0 => use default
	Lambda []float64 `json:"lambda"` // extra state data passed to the model. ex: [abar, zbar]
	Skip   bool      `json:"skip"`   // do not run sweep

	// derived
	Mdl eos.Model // model of the selected material
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data     `json:"data"`   // stores global simulation data
	Sweeps []*Sweep `json:"sweeps"` // stores all sweeps

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	MatModels *MatDb // materials and models
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/eos/" + fnkey
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// fix number of goroutines
	if o.Data.Ncpu < 1 {
		o.Data.Ncpu = 1
	}

	// read materials database
	if o.Data.Matfile == "" {
		return nil, chk.Err("ReadSim: matfile must be given in %q", simfilepath)
	}
	o.MatModels, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read materials file:\n%v", err)
	}

	// for all sweeps
	for i, swp := range o.Sweeps {

		// get model
		mat := o.MatModels.Get(swp.Mat)
		if mat == nil {
			return nil, chk.Err("ReadSim: cannot find material %q of sweep %d", swp.Mat, i)
		}
		swp.Mdl = mat.Eos

		// fix temperatures
		if len(swp.Temps) == 0 {
			swp.Temps = []float64{eos.RoomTemperature}
		}

		// fix number of points
		if swp.Npts < 2 {
			swp.Npts = 11
		}

		// check density range
		if swp.RhoMin <= 0 || swp.RhoMax <= swp.RhoMin {
			return nil, chk.Err("ReadSim: density range of sweep %d is invalid: [%g, %g]", i, swp.RhoMin, swp.RhoMax)
		}

		// check extra state data
		if swp.Mdl.Nlambda() > len(swp.Lambda) {
			return nil, chk.Err("ReadSim: sweep %d with material %q needs %d lambda values, got %d", i, swp.Mat, swp.Mdl.Nlambda(), len(swp.Lambda))
		}
	}
	return
}

// String prints one sweep
func (o *Sweep) String() string {
	return io.Sf("    {\"mat\":%q, \"temps\":%v, \"rhomin\":%g, \"rhomax\":%g, \"npts\":%d}",
		o.Mat, o.Temps, o.RhoMin, o.RhoMax, o.Npts)
}

// String outputs simulation data
func (o *Simulation) String() string {
	l := io.Sf("{\n  \"data\" : {\"desc\":%q, \"matfile\":%q, \"dirout\":%q, \"ncpu\":%d, \"roundtrip\":%v},\n",
		o.Data.Desc, o.Data.Matfile, o.DirOut, o.Data.Ncpu, o.Data.RoundTrip)
	l += "  \"sweeps\" : [\n"
	for i, swp := range o.Sweeps {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", swp)
	}
	l += "\n  ]\n}"
	return l
}
