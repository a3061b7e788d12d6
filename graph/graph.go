// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph composes a sheet of graph paper with a horizontal and
// a vertical scale into a chart.
package graph // import "github.com/aclements/go-graphpaper/graph"

import (
	"errors"
	"fmt"

	"github.com/aclements/go-graphpaper/paper"
	"github.com/aclements/go-graphpaper/scale"
	"github.com/aclements/go-graphpaper/svg"
)

// Graph is a chart: a paper plus a scale for each axis.
type Graph struct {
	Paper *paper.Paper
	X, Y  scale.Interface
}

// ErrNoPoints is returned by Validate for a graph with nothing to
// plot.
var ErrNoPoints = errors.New("no points to plot")

// Validate checks the paper, its points and both scales. Document and
// Serialize assume g is valid.
func (g *Graph) Validate() error {
	if err := g.Paper.Validate(); err != nil {
		return err
	}
	if len(g.Paper.Points) == 0 {
		return ErrNoPoints
	}
	for _, s := range []struct {
		name string
		sc   scale.Interface
		want scale.Axis
	}{{"x", g.X, scale.Horizontal}, {"y", g.Y, scale.Vertical}} {
		if s.sc == nil {
			return &scale.ConfigError{Field: s.name + " scale", Msg: "missing"}
		}
		if s.sc.Axis() != s.want {
			return &scale.ConfigError{Field: s.name + " scale", Msg: fmt.Sprintf("is %s, want %s", s.sc.Axis(), s.want)}
		}
		if err := s.sc.Validate(); err != nil {
			return fmt.Errorf("%s scale: %w", s.name, err)
		}
	}
	return nil
}

// Transform returns the mapping from data space to chart space.
func (g *Graph) Transform() scale.Transform {
	return scale.Transform{Frame: g.Paper.Frame(), X: g.X, Y: g.Y}
}

// Document lays out the chart. Fragments are ordered border, title,
// points, vertical ticks, then horizontal ticks, so ticks are drawn
// over points.
func (g *Graph) Document() *svg.Document {
	p := g.Paper
	f := p.Frame()
	d := svg.New(p.Size.X, p.Size.Y)
	d.Add(p.Border(), p.Title())
	d.Add(p.PlotPoints(g.Transform())...)
	d.Add(p.Ticks(g.Y.Ticks(f))...)
	d.Add(p.Ticks(g.X.Ticks(f))...)
	return d
}

// Serialize returns the chart as an SVG document.
func (g *Graph) Serialize() string {
	return g.Document().String()
}
