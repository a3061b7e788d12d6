// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"strconv"
)

// minmax returns the bounds of the finite values in xs. ok is false
// if there are none.
func minmax(xs []float64) (min, max float64, ok bool) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if !ok {
			min, max, ok = x, x, true
			continue
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// formatLabel formats a tick value as the shortest decimal that
// round-trips through a float32, never in exponent form.
func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}
