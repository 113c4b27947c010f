// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/parikshitbajpai/singularity-eos/eos"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. reading materials file")

	mdb, err := ReadMat("data", "materials.mat")
	if err != nil {
		tst.Errorf("cannot read materials.mat:\n%v", err)
		return
	}
	io.Pforan("materials.mat just read:\n%v\n", mdb)

	chk.IntAssert(len(mdb.Materials), 4)

	tnt := mdb.Get("tnt")
	if tnt == nil {
		tst.Errorf("cannot find material \"tnt\"\n")
		return
	}
	if tnt.Eos == nil {
		tst.Errorf("material \"tnt\" has no model\n")
		return
	}
	if tnt.Eos.EosType() != "JWL" {
		tst.Errorf("wrong model for \"tnt\": %q\n", tnt.Eos.EosType())
		return
	}

	// parameters flow into the model
	var ref eos.JWL
	err = ref.Init(ref.GetPrms(true))
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}
	rho, temp := 1630.0, 298.15
	chk.Float64(tst, "P(ρ0,T0)", 1e-17, tnt.Eos.PressureFromDensityTemperature(rho, temp, nil),
		ref.PressureFromDensityTemperature(rho, temp, nil))

	// the modifier wraps the named material
	sh := mdb.Get("tnt-shifted")
	if sh == nil {
		tst.Errorf("cannot find material \"tnt-shifted\"\n")
		return
	}
	if sh.Eos.EosType() != "Shifted(JWL)" {
		tst.Errorf("wrong model for \"tnt-shifted\": %q\n", sh.Eos.EosType())
		return
	}
	eIn := tnt.Eos.InternalEnergyFromDensityTemperature(rho, temp, nil)
	eOut := sh.Eos.InternalEnergyFromDensityTemperature(rho, temp, nil)
	chk.Float64(tst, "shifted energy", 1e-17, eOut, eIn+5e5)

	// unknown names give nil
	if mdb.Get("nope") != nil {
		tst.Errorf("unknown material must give nil\n")
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. invalid materials files")

	_, err := ReadMat("data", "badwrap.mat")
	if err == nil {
		tst.Errorf("reading badwrap.mat must fail\n")
		return
	}
	io.Pforan("expected failure: %v\n", err)

	_, err = ReadMat("data", "cyclic.mat")
	if err == nil {
		tst.Errorf("reading cyclic.mat must fail\n")
		return
	}
	io.Pforan("expected failure: %v\n", err)

	_, err = ReadMat("data", "does-not-exist.mat")
	if err == nil {
		tst.Errorf("reading a missing file must fail\n")
		return
	}
	io.Pforan("expected failure: %v\n", err)
}
