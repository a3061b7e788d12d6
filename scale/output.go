// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "github.com/aclements/go-graphpaper/geom"

// OutputScale maps the unit interval onto the chart-space interval
// [Min, Max].
type OutputScale struct {
	Min, Max float64

	// If Flip is true, 0 maps to Max and 1 maps to Min.
	Flip bool
}

func (s OutputScale) Of(u float64) float64 {
	if s.Flip {
		return s.Max - u*(s.Max-s.Min)
	}
	return s.Min + u*(s.Max-s.Min)
}

// Frame is the chart-space geometry that scales map onto: a chart of
// Size with the plotting area inset by Margin on every side.
type Frame struct {
	Size   geom.Vec2
	Margin float64

	MajorTickLength, MinorTickLength float64
}

// Drawable returns the size of the plotting area.
func (f Frame) Drawable() geom.Vec2 {
	return f.Size.Sub(geom.V(2*f.Margin, 2*f.Margin))
}

// Output returns the output scale of axis a. The vertical axis is
// flipped so that data values grow upward.
func (f Frame) Output(a Axis) OutputScale {
	if a == Vertical {
		return OutputScale{f.Margin, f.Size.Y - f.Margin, true}
	}
	return OutputScale{f.Margin, f.Size.X - f.Margin, false}
}

// tick returns a tick at chart-space coordinate c along axis a.
// Horizontal ticks rise from the bottom edge of the plotting area;
// vertical ticks extend right from its left edge.
func (f Frame) tick(a Axis, c float64, major bool) Tick {
	length := f.MinorTickLength
	if major {
		length = f.MajorTickLength
	}
	t := Tick{Axis: a, Major: major}
	if a == Vertical {
		t.At = geom.V(f.Margin, c)
		t.End = t.At.Add(geom.V(length, 0))
	} else {
		t.At = geom.V(c, f.Size.Y-f.Margin)
		t.End = t.At.Sub(geom.V(0, length))
	}
	return t
}
