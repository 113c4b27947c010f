// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"sync"

	"github.com/cpmech/gosl/io"
)

// SentinelValue is returned by operations on quantities a model does not
// provide. It carries no physical meaning
const SentinelValue = 1.0

// notEnabledSeen remembers model/quantity pairs already reported
var notEnabledSeen sync.Map

// NotEnabled reports, once per model/quantity pair, that a model has no
// formulation for the requested quantity. Callers return SentinelValue after
// this instead of failing, so mixed-material loops keep running
func NotEnabled(model, quantity string) {
	key := model + "/" + quantity
	if _, seen := notEnabledSeen.LoadOrStore(key, true); !seen {
		io.Pfred("%s: %s is not enabled for this model; returning sentinel value\n", model, quantity)
	}
}
