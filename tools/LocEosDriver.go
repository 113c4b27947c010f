// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"path"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/parikshitbajpai/singularity-eos/eos"
	"github.com/parikshitbajpai/singularity-eos/inp"
)

type Input struct {
	Dir     string    // directory with .sim and .pat files
	SimFn   string    // simulation filename
	MatName string    // material name
	PathFn  string    // path filename
	Lambda  []float64 // extra state data passed to the model
	FigDir  string    // directory to save figure
	FigShow bool      // show figure instead of saving it

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.FigDir == "" {
		o.FigDir = "/tmp/eos"
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"directory with .sim and .pat files", "Dir", o.Dir,
		"simulation filename", "SimFn", o.SimFn,
		"material name", "MatName", o.MatName,
		"path filename", "PathFn", o.PathFn,
		"extra state data", "Lambda", io.Sf("%v", o.Lambda),
		"fig: directory to save figure", "FigDir", o.FigDir,
		"fig: show figure instead of saving", "FigShow", o.FigShow,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/loceosdrv", ".inp", true)

	// read and parse input data
	b, err := io.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// load simulation
	sim, err := inp.ReadSim(in.Dir+"/"+in.SimFn, "", false, false)
	if err != nil {
		io.PfRed("cannot load simulation:\n%v\n", err)
		return
	}

	// get material data
	mat := sim.MatModels.Get(in.MatName)
	if mat == nil {
		io.PfRed("cannot get material %q\n", in.MatName)
		return
	}
	mdl := mat.Eos
	if mdl.Nlambda() > len(in.Lambda) {
		io.PfRed("material %q needs %d lambda values, got %d\n", in.MatName, mdl.Nlambda(), len(in.Lambda))
		return
	}

	// load path
	var pth eos.Path
	err = pth.ReadJSON(path.Join(in.Dir, in.PathFn))
	if err != nil {
		io.PfRed("cannot read path file: %v\n", err)
		return
	}

	// run
	np := pth.Size()
	E := make([]float64, np)
	P := make([]float64, np)
	var s eos.State
	io.Pf("\n%s: STATES ALONG PATH\n", in.MatName)
	io.Pf("%14s%12s%16s%16s%14s%16s%12s\n", "rho", "temp", "sie", "press", "cv", "bmod", "gruneisen")
	for i := 0; i < np; i++ {
		s.Rho = pth.Rho[i]
		s.Sie = mdl.InternalEnergyFromDensityTemperature(pth.Rho[i], pth.Temp[i], in.Lambda)
		mdl.FillEos(&s, eos.Pressure|eos.SpecificHeat|eos.BulkModulus, in.Lambda)
		gru := mdl.GruneisenParamFromDensityTemperature(pth.Rho[i], pth.Temp[i], in.Lambda)
		E[i], P[i] = s.Sie, s.Press
		io.Pf("%14.6g%12.6g%16.8g%16.8g%14.6g%16.8g%12.6g\n",
			pth.Rho[i], pth.Temp[i], s.Sie, s.Press, s.Cv, s.Bmod, gru)
	}

	// plot pressure along the path
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(pth.Rho, P, &plt.A{C: "b", M: ".", L: in.MatName})
	plt.Gll("$\\rho$", "$P$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(E, P, &plt.A{C: "r", M: ".", L: in.MatName})
	plt.Gll("$e$", "$P$", nil)
	if in.FigShow {
		plt.Show()
		return
	}
	plt.Save(in.FigDir, "loceosdrv_"+io.FnKey(in.PathFn))
}
