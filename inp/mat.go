// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from materials files
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/parikshitbajpai/singularity-eos/eos"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "jwl", "ideal-gas"
	Extra string     `json:"extra"` // extra information; modifiers name the wrapped material here
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Eos eos.Model // allocated and initialised model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file. Models are
// allocated and initialised; modifiers such as "shifted" are then attached to
// the material named by their extra field
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// alloc/init
	for _, m := range mdb.Materials {
		if mdb.Get(m.Name) != m {
			err = chk.Err("material name %q is duplicated", m.Name)
			return
		}
		m.Eos, err = eos.New(m.Model)
		if err != nil {
			return
		}
		err = m.Eos.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// attach wrapped materials to modifiers
	for _, m := range mdb.Materials {
		sh, ok := m.Eos.(*eos.Shifted)
		if !ok {
			continue
		}
		name := strings.TrimSpace(m.Extra)
		if name == "" {
			err = chk.Err("material %q (%q) must name the wrapped material in the extra field", m.Name, m.Model)
			return
		}
		inner := mdb.Get(name)
		if inner == nil {
			err = chk.Err("material %q wraps %q which does not exist", m.Name, name)
			return
		}
		sh.M = inner.Eos
	}

	// detect wrapping cycles
	for _, m := range mdb.Materials {
		n := 0
		mdl := m.Eos
		for {
			sh, ok := mdl.(*eos.Shifted)
			if !ok {
				break
			}
			mdl = sh.M
			n++
			if n > len(mdb.Materials) {
				err = chk.Err("material %q has a cyclic wrapping chain", m.Name)
				return
			}
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
