// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data-space values onto a chart and computes the
// tick marks of a chart axis.
//
// A scale drives one axis of a chart. It maps a data value to a
// chart-space coordinate along that axis, with chart-space measured
// in output units from the top-left corner of the chart, y growing
// downward. Vertical scales therefore flip orientation: larger data
// values map to smaller chart y coordinates.
//
// The chart geometry a scale maps onto is passed explicitly as a
// Frame, so scales are plain values that can be shared between charts
// and goroutines.
package scale // import "github.com/aclements/go-graphpaper/scale"

import "github.com/aclements/go-graphpaper/geom"

// A scale satisfies Interface if it maps data values onto one axis of
// a Frame and can produce the ticks of that axis.
type Interface interface {
	// Of maps data value x to a chart-space coordinate along the
	// scale's axis of f.
	Of(f Frame, x float64) float64

	// Ticks returns the tick marks of the scale's axis of f in
	// drawing order.
	Ticks(f Frame) []Tick

	// Axis returns the chart dimension this scale drives.
	Axis() Axis

	// Validate reports whether the scale's parameters describe a
	// drawable axis.
	Validate() error
}

// MaxTicks is the largest number of ticks a valid scale may produce
// on one axis.
const MaxTicks = 10000

// Axis is a chart dimension.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "Axis(?)"
}

// A Tick is a single axis mark. It runs from At, on the edge of the
// chart frame, to End, inside the frame. Major ticks carry a label;
// minor ticks never do.
type Tick struct {
	Axis    Axis
	At, End geom.Vec2
	Value   float64
	Label   string
	Major   bool
}

// Transform maps data-space points to chart-space through a
// horizontal and a vertical scale.
type Transform struct {
	Frame Frame
	X, Y  Interface
}

// Of maps data point p to chart space.
func (t Transform) Of(p geom.Vec2) geom.Vec2 {
	return geom.V(t.X.Of(t.Frame, p.X), t.Y.Of(t.Frame, p.Y))
}
