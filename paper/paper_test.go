// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paper

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-graphpaper/geom"
	"github.com/aclements/go-graphpaper/scale"
)

func TestBorderAndTitle(t *testing.T) {
	p := New("a < b", nil)
	assert.Equal(t,
		`<rect width="2770" height="1900" fill="none" opacity="1" stroke="black" x="100" y="100" stroke-width="3" />`,
		p.Border())
	assert.Equal(t,
		`<text x="1485" y="2100" font-size="20pt" dominant-baseline="auto" text-anchor="middle">a &lt; b</text>`,
		p.Title())
}

func TestValidate(t *testing.T) {
	require.NoError(t, New("", nil).Validate())

	for name, mod := range map[string]func(p *Paper){
		"negative margin": func(p *Paper) { p.Margin = -1 },
		"NaN margin":      func(p *Paper) { p.Margin = math.NaN() },
		"wide margin":     func(p *Paper) { p.Margin = 1050 },
		"zero size":       func(p *Paper) { p.Size = geom.V(0, 100) },
		"infinite size":   func(p *Paper) { p.Size = geom.V(math.Inf(1), 100) },
		"negative stroke": func(p *Paper) { p.StrokeWidth = -3 },
	} {
		p := New("", nil)
		mod(p)
		var cerr *scale.ConfigError
		assert.True(t, errors.As(p.Validate(), &cerr), name)
	}
}

func TestPlotPoints(t *testing.T) {
	p := New("", []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 1}, {X: 5, Y: 5}})
	tr := scale.Transform{
		Frame: p.Frame(),
		X:     &scale.Log{Dim: scale.Horizontal, Base: 10, From: 0, To: 1},
		Y:     &scale.Linear{Dim: scale.Vertical, MajorDivisions: 10, MinorDivisions: 5, Max: 10},
	}
	got := p.PlotPoints(tr)
	// Points at x=0 cannot be placed on a log axis.
	require.Len(t, got, 2)
	assert.Equal(t, `<circle r="10" cx="2870" cy="100" />`, got[0])
	assert.True(t, strings.HasPrefix(got[1], `<circle r="10" cx="`))
}

func TestTicks(t *testing.T) {
	p := New("", nil)
	x := &scale.Linear{Dim: scale.Horizontal, MajorDivisions: 2, MinorDivisions: 2, Max: 10}
	frags := p.Ticks(x.Ticks(p.Frame()))
	require.Len(t, frags, 5)
	assert.Equal(t,
		"<line stroke=\"black\" x1=\"100\" y1=\"2000\" x2=\"100\" y2=\"1950\" stroke-width=\"3\" />\n"+
			"\t<text x=\"100\" y=\"2000\" font-size=\"20pt\" dominant-baseline=\"hanging\" text-anchor=\"start\">0</text>",
		frags[0])
	assert.Equal(t,
		`<line stroke="black" x1="792.5" y1="2000" x2="792.5" y2="1974.5" stroke-width="3" />`,
		frags[1])
	assert.Contains(t, frags[4], ">10</text>")

	y := &scale.Linear{Dim: scale.Vertical, MajorDivisions: 1, MinorDivisions: 1, Max: 1}
	frags = p.Ticks(y.Ticks(p.Frame()))
	require.Len(t, frags, 2)
	assert.Contains(t, frags[1], `<text x="100" y="100" font-size="20pt" dominant-baseline="auto" text-anchor="end">1</text>`)
}

func TestGeometryHelpers(t *testing.T) {
	p := New("t", nil)
	lo, hi := p.BorderRect()
	assert.Equal(t, geom.V(100, 100), lo)
	assert.Equal(t, geom.V(2870, 2000), hi)

	at, opts := p.TitleAnchor()
	assert.Equal(t, geom.V(1485, 2100), at)
	assert.Equal(t, float64(TitleFontSize), opts.FontSize)
}

func TestPlacedSkipsUnplaceable(t *testing.T) {
	p := New("", []geom.Vec2{geom.V(1, 1), geom.V(0, 1), geom.V(-1, 1), geom.V(10, 1)})
	tr := scale.Transform{
		Frame: p.Frame(),
		X:     &scale.Log{Dim: scale.Horizontal, Base: 10, From: 0, To: 1},
		Y:     &scale.Linear{Dim: scale.Vertical, MajorDivisions: 1, MinorDivisions: 1, Max: 1},
	}
	placed := p.Placed(tr)
	require.Len(t, placed, 2)
	assert.Equal(t, geom.V(100, 100), placed[0])
	assert.Equal(t, geom.V(2870, 100), placed[1])
	// One marker per placed point, so fewer fragments than points.
	assert.Len(t, p.PlotPoints(tr), len(placed))
}
