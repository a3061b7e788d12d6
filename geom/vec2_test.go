// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"
)

func TestArith(t *testing.T) {
	a, b := V(6, 8), V(2, -4)
	for _, test := range []struct {
		name      string
		got, want Vec2
	}{
		{"Add", a.Add(b), V(8, 4)},
		{"Sub", a.Sub(b), V(4, 12)},
		{"Mul", a.Mul(b), V(12, -32)},
		{"Div", a.Div(b), V(3, -2)},
		{"Scale", a.Scale(0.5), V(3, 4)},
		{"Log", V(100, 0.001).Log(10), V(2, -3)},
	} {
		if math.Abs(test.got.X-test.want.X) > 1e-12 || math.Abs(test.got.Y-test.want.Y) > 1e-12 {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if got := V(3, 4).Abs(); got != 5 {
		t.Errorf("V(3, 4).Abs() = %v, want 5", got)
	}
	if got := V(0, 0).Abs(); got != 0 {
		t.Errorf("V(0, 0).Abs() = %v, want 0", got)
	}
}

func TestFinite(t *testing.T) {
	if !V(1, -1).Finite() {
		t.Errorf("V(1, -1) should be finite")
	}
	if V(0, 0).Log(10).Finite() {
		t.Errorf("log of zero should not be finite")
	}
	if V(math.NaN(), 1).Finite() {
		t.Errorf("NaN component should not be finite")
	}
}

func TestString(t *testing.T) {
	if got, want := V(0.47, 0.05).String(), "(0.47, 0.05)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
