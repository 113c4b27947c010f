// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"sync"

	"github.com/cpmech/gosl/chk"
)

// Driver evaluates one model over arrays of state points, splitting the work
// over Ncpu goroutines. The model is shared read-only by the workers, so any
// Model satisfying the purity contract works unchanged in parallel
type Driver struct {
	// input
	Mdl Model // model to evaluate

	// settings
	Ncpu int // number of concurrent workers; values below 2 mean serial
}

// Init initialises driver
func (o *Driver) Init(mdl Model) (err error) {
	o.Mdl = mdl
	o.Ncpu = 1
	return
}

// split runs process over [0,npts) in contiguous chunks, one per worker
func (o *Driver) split(npts int, process func(lo, hi int)) {
	nw := o.Ncpu
	if nw > npts {
		nw = npts
	}
	if nw < 2 {
		process(0, npts)
		return
	}
	var wg sync.WaitGroup
	csize := npts / nw
	for w := 0; w < nw; w++ {
		lo := w * csize
		hi := lo + csize
		if w == nw-1 {
			hi = npts
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			process(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// FillArray computes, for every point i, the quantities selected by output
// from R[i] and E[i], writing results in place. All six slices must have the
// same length. lambdas may be nil when the model needs no extra state;
// otherwise lambdas[i] is the extra state of point i
func (o *Driver) FillArray(R, T, E, P, Cv, B []float64, output uint, lambdas [][]float64) (err error) {
	npts := len(R)
	if len(T) != npts || len(E) != npts || len(P) != npts || len(Cv) != npts || len(B) != npts {
		return chk.Err("driver: arrays must have the same length; R has %d points", npts)
	}
	if lambdas != nil && len(lambdas) != npts {
		return chk.Err("driver: lambdas must have one entry per point; got %d for %d points", len(lambdas), npts)
	}
	o.split(npts, func(lo, hi int) {
		var s State
		var lam []float64
		for i := lo; i < hi; i++ {
			if lambdas != nil {
				lam = lambdas[i]
			}
			s.Rho, s.Temp, s.Sie = R[i], T[i], E[i]
			s.Press, s.Cv, s.Bmod = P[i], Cv[i], B[i]
			o.Mdl.FillEos(&s, output, lam)
			R[i], T[i], E[i] = s.Rho, s.Temp, s.Sie
			P[i], Cv[i], B[i] = s.Press, s.Cv, s.Bmod
		}
	})
	return
}

// DensityEnergyArray inverts the model for every (P[i], T[i]) pair, writing
// densities and energies to R and E in place. Guesses seed the searches and
// may be nil. The first failure wins the returned error; points after a
// failing one within the same chunk keep their previous contents
func (o *Driver) DensityEnergyArray(P, T, R, E []float64, lambdas [][]float64, guesses []float64) (err error) {
	npts := len(P)
	if len(T) != npts || len(R) != npts || len(E) != npts {
		return chk.Err("driver: arrays must have the same length; P has %d points", npts)
	}
	if lambdas != nil && len(lambdas) != npts {
		return chk.Err("driver: lambdas must have one entry per point; got %d for %d points", len(lambdas), npts)
	}
	if guesses != nil && len(guesses) != npts {
		return chk.Err("driver: guesses must have one entry per point; got %d for %d points", len(guesses), npts)
	}
	var mu sync.Mutex
	o.split(npts, func(lo, hi int) {
		var lam []float64
		for i := lo; i < hi; i++ {
			if lambdas != nil {
				lam = lambdas[i]
			}
			g := 0.0
			if guesses != nil {
				g = guesses[i]
			}
			rho, sie, e := o.Mdl.DensityEnergyFromPressureTemperature(P[i], T[i], lam, g)
			if e != nil {
				mu.Lock()
				if err == nil {
					err = chk.Err("driver: point %d: %v", i, e)
				}
				mu.Unlock()
				return
			}
			R[i], E[i] = rho, sie
		}
	})
	return
}
