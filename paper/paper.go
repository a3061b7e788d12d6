// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paper draws the scale-independent parts of a chart: the
// border around the plotting area, the title and the point markers,
// plus the markup for ticks computed by a scale.
//
// All methods are free of side effects. They return SVG fragments
// for an svg.Document.
package paper // import "github.com/aclements/go-graphpaper/paper"

import (
	"github.com/aclements/go-graphpaper/geom"
	"github.com/aclements/go-graphpaper/scale"
	"github.com/aclements/go-graphpaper/svg"
)

// A4 is the size of a landscape A4 sheet in chart units.
var A4 = geom.V(2970, 2100)

// PointRadius is the radius of a plotted point marker.
const PointRadius = 10

// TitleFontSize and LabelFontSize are in points.
const (
	TitleFontSize = 20
	LabelFontSize = 20
)

// Paper is a sheet of graph paper.
type Paper struct {
	// Name is the chart title.
	Name string

	Size   geom.Vec2
	Margin float64

	// Points are plotted in order, in data-space units.
	Points []geom.Vec2

	StrokeWidth                      float64
	MajorTickLength, MinorTickLength float64
}

// New returns an A4 sheet with the default margin, stroke width and
// tick lengths.
func New(name string, points []geom.Vec2) *Paper {
	return &Paper{
		Name:            name,
		Size:            A4,
		Margin:          100,
		Points:          points,
		StrokeWidth:     3,
		MajorTickLength: 50,
		MinorTickLength: 25.5,
	}
}

// Validate returns a *scale.ConfigError if p has no drawable area.
func (p *Paper) Validate() error {
	switch {
	case !p.Size.Finite() || p.Size.X <= 0 || p.Size.Y <= 0:
		return &scale.ConfigError{Field: "size", Msg: p.Size.String() + " is not a positive size"}
	case !(p.Margin >= 0):
		return &scale.ConfigError{Field: "margin", Msg: "margin must not be negative"}
	case 2*p.Margin >= p.Size.X || 2*p.Margin >= p.Size.Y:
		return &scale.ConfigError{Field: "margin", Msg: "margin leaves no drawable area in " + p.Size.String()}
	case p.StrokeWidth < 0 || p.MajorTickLength < 0 || p.MinorTickLength < 0:
		return &scale.ConfigError{Field: "stroke", Msg: "stroke width and tick lengths must not be negative"}
	}
	return nil
}

// Frame returns the chart-space geometry scales map onto.
func (p *Paper) Frame() scale.Frame {
	return scale.Frame{
		Size:            p.Size,
		Margin:          p.Margin,
		MajorTickLength: p.MajorTickLength,
		MinorTickLength: p.MinorTickLength,
	}
}

// BorderRect returns the top-left and bottom-right corners of the
// plotting area.
func (p *Paper) BorderRect() (min, max geom.Vec2) {
	m := geom.V(p.Margin, p.Margin)
	return m, p.Size.Sub(m)
}

// Border returns the rectangle around the plotting area.
func (p *Paper) Border() string {
	min, max := p.BorderRect()
	d := max.Sub(min)
	return svg.Rect(min.X, min.Y, d.X, d.Y, p.StrokeWidth)
}

// TitleAnchor returns where the title is drawn: centered on the
// bottom edge of the sheet, sitting on it.
func (p *Paper) TitleAnchor() (geom.Vec2, svg.TextOpts) {
	return geom.V(p.Size.X/2, p.Size.Y), svg.TextOpts{
		Anchor:   svg.AnchorMiddle,
		Baseline: svg.BaselineAuto,
		FontSize: TitleFontSize,
	}
}

// Title returns the chart title.
func (p *Paper) Title() string {
	at, opts := p.TitleAnchor()
	return svg.Text(at.X, at.Y, opts, p.Name)
}

// Placed returns the chart-space position of each point of p mapped
// through t. Points that do not map to a finite coordinate, such as
// non-positive values on a logarithmic axis, are skipped.
func (p *Paper) Placed(t scale.Transform) []geom.Vec2 {
	var out []geom.Vec2
	for _, pt := range p.Points {
		if c := t.Of(pt); c.Finite() {
			out = append(out, c)
		}
	}
	return out
}

// PlotPoints returns a marker for each point Placed returns.
func (p *Paper) PlotPoints(t scale.Transform) []string {
	var out []string
	for _, c := range p.Placed(t) {
		out = append(out, svg.Circle(c.X, c.Y, PointRadius))
	}
	return out
}
