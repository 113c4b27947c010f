// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root1d

import "github.com/cpmech/gosl/io"

// CountsNbins is the number of bins held by Counts. Solves needing CountsNbins-1
// iterations or more all fall into the last bin
const CountsNbins = 15

// Counts records a histogram of the number of iterations spent by root solves.
// The zero value is ready for use. Counts is not safe for concurrent updates:
// give each worker its own instance and Merge afterwards
type Counts struct {
	bins [CountsNbins]int
}

// Register adds the outcome of one solve with the given iteration count
func (o *Counts) Register(nit int) {
	if nit < 0 {
		return
	}
	if nit >= CountsNbins {
		nit = CountsNbins - 1
	}
	o.bins[nit]++
}

// Total returns the number of solves registered so far
func (o *Counts) Total() (tot int) {
	for _, n := range o.bins {
		tot += n
	}
	return
}

// Merge adds all entries of c into this histogram
func (o *Counts) Merge(c *Counts) {
	for i, n := range c.bins {
		o.bins[i] += n
	}
}

// String returns a table with the percentage of solves per iteration count
func (o *Counts) String() (l string) {
	tot := o.Total()
	if tot == 0 {
		return "Counts: empty\n"
	}
	l = io.Sf("Counts: %d solves\n", tot)
	for i, n := range o.bins {
		if n == 0 {
			continue
		}
		label := io.Sf("%d", i)
		if i == CountsNbins-1 {
			label = io.Sf("%d+", i)
		}
		l += io.Sf("  %3s iterations: %6.2f%% (%d)\n", label, 100.0*float64(n)/float64(tot), n)
	}
	return
}
