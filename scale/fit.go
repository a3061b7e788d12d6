// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// FitLinear returns the smallest Max for a linear scale with the
// given number of major divisions that covers every value in values,
// such that each division is 1, 2 or 5 times a power of ten.
func FitLinear(values []float64, divisions int) (float64, error) {
	if divisions < 1 {
		return 0, configErrorf("major divisions", "%d is less than 1", divisions)
	}
	_, hi, ok := minmax(values)
	if !ok {
		return 0, configErrorf("max value", "no data to fit")
	}
	if hi <= 0 {
		// Nothing is above the origin. Use unit divisions.
		return float64(divisions), nil
	}

	n := float64(divisions)
	for exp := math.Floor(math.Log10(hi / n)); ; exp++ {
		p := math.Pow(10, exp)
		for _, m := range []float64{1, 2, 5} {
			if w := n * m * p; w >= hi {
				return w, nil
			}
		}
	}
}

// FitLog returns the tightest exponent range [from, to] in base such
// that base^from <= v <= base^to for every positive value v in
// values. Non-positive values cannot appear on a logarithmic axis and
// are ignored.
func FitLog(values []float64, base float64) (from, to int, err error) {
	if !(base > 1) {
		return 0, 0, configErrorf("log base", "%v is not greater than 1", base)
	}
	var pos []float64
	for _, v := range values {
		if v > 0 {
			pos = append(pos, v)
		}
	}
	lo, hi, ok := minmax(pos)
	if !ok {
		return 0, 0, configErrorf("exponent range", "no positive data to fit")
	}

	// Allow a little slack so values that are exact powers of base
	// don't round out to the next decade.
	const slack = 1e-9
	from = int(math.Floor(logb(lo, base) + slack))
	to = int(math.Ceil(logb(hi, base) - slack))
	return from, to, nil
}
