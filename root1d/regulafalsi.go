// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package root1d implements bracketed root-finding methods for scalar equations
//  References:
//   [1] Press WH, Teukolsky SA, Vetterling WT and Flannery BP (2007) Numerical Recipes:
//       the Art of Scientific Computing. Third Edition. Cambridge University Press, 1235p
package root1d

import "math"

// NmaxIt is the iteration budget shared by all solvers in this package
const NmaxIt = 1000

// Status indicates how a solver call has terminated
type Status int

// termination status
const (
	Success      Status = iota // converged on both the x and the y criteria
	NotBracketed               // initial interval does not contain a sign change
	MaxItReached               // iteration budget exhausted before convergence
)

// String returns a human readable version of Status
func (o Status) String() string {
	switch o {
	case Success:
		return "success"
	case NotBracketed:
		return "root is not bracketed"
	case MaxItReached:
		return "maximum number of iterations reached"
	}
	return "unknown status"
}

// RegulaFalsi (false position method) finds xroot in [xa, xb] such that
// f(xroot) = ytarget, for continuous f
//  Input:
//   f       -- scalar function
//   ytarget -- target value of f
//   xa, xb  -- bracket: f(xa)-ytarget and f(xb)-ytarget must have opposite signs
//   xtol    -- tolerance on x, applied as |dx| <= xtol*(1+|x|)
//   ytol    -- tolerance on the residual, applied as |f(x)-ytarget| <= ytol*(1+|ytarget|)
//  Output:
//   xroot  -- estimate of the root
//   nit    -- number of iterations (= residual evaluations within the loop)
//   status -- Success, NotBracketed or MaxItReached
//  Notes:
//   1) convergence requires the x and the y criteria simultaneously
//   2) the next estimate is the secant point between the bracket ends; the end whose
//      residual has the same sign as the new point is replaced (no bisection steps)
//   3) this function holds no state and may be called concurrently with independent
//      brackets and functions
func RegulaFalsi(f func(x float64) float64, ytarget, xa, xb, xtol, ytol float64) (xroot float64, nit int, status Status) {

	// residuals at bracket ends
	a, b := xa, xb
	ya := f(a) - ytarget
	yb := f(b) - ytarget

	// root sitting on an end of the bracket
	if ya == 0 {
		return a, 0, Success
	}
	if yb == 0 {
		return b, 0, Success
	}

	// missing sign change
	if ya*yb > 0 {
		return 0, 0, NotBracketed
	}

	// false-position iterations
	xold := a
	for nit = 1; nit <= NmaxIt; nit++ {

		// secant point between bracket ends
		xroot = (a*yb - b*ya) / (yb - ya)
		ynew := f(xroot) - ytarget

		// replace the end with the same residual sign
		if ynew*ya > 0 {
			a, ya = xroot, ynew
		} else {
			b, yb = xroot, ynew
		}

		// check convergence on x and y
		if math.Abs(xroot-xold) <= xtol*(1.0+math.Abs(xroot)) {
			if math.Abs(ynew) <= ytol*(1.0+math.Abs(ytarget)) {
				return xroot, nit, Success
			}
		}
		xold = xroot
	}
	return xroot, NmaxIt, MaxItReached
}
