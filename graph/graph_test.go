// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-graphpaper/geom"
	"github.com/aclements/go-graphpaper/paper"
	"github.com/aclements/go-graphpaper/scale"
)

func testGraph() *Graph {
	pts := []geom.Vec2{{X: 1, Y: 0.5}, {X: 3, Y: 2}, {X: 9.5, Y: 70}}
	return &Graph{
		Paper: paper.New("test", pts),
		X:     &scale.Linear{Dim: scale.Horizontal, MajorDivisions: 10, MinorDivisions: 5, Max: 10},
		Y:     &scale.Log{Dim: scale.Vertical, Base: 10, From: -1, To: 2},
	}
}

func TestDocument(t *testing.T) {
	g := testGraph()
	require.NoError(t, g.Validate())

	d := g.Document()
	// Border, title, 3 points, 28 log ticks and 51 linear ticks.
	assert.Equal(t, 2+3+28+51, d.Len())

	frags := d.Fragments()
	assert.True(t, strings.HasPrefix(frags[0], "<rect "))
	assert.True(t, strings.HasPrefix(frags[1], "<text "))
	for _, f := range frags[2:5] {
		assert.True(t, strings.HasPrefix(f, "<circle "), f)
	}
	// Vertical ticks come first and start at the bottom-left corner.
	assert.True(t, strings.HasPrefix(frags[5], `<line stroke="black" x1="100" y1="2000" x2="150" y2="2000"`), frags[5])
	// The last linear tick is labeled in units of major divisions.
	assert.Contains(t, frags[len(frags)-1], ">5</text>")
}

func TestSerializeParses(t *testing.T) {
	out := testGraph().Serialize()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="2970" height="2100">`+"\n"))
	assert.True(t, strings.HasSuffix(out, "</svg>"))

	counts := map[string]int{}
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if se, ok := tok.(xml.StartElement); ok {
			counts[se.Name.Local]++
		}
	}
	// Text is the title, 4 log labels and 6 linear labels.
	assert.Equal(t, map[string]int{
		"svg":    1,
		"rect":   1,
		"circle": 3,
		"line":   28 + 51,
		"text":   1 + 4 + 6,
	}, counts)
}

func TestValidate(t *testing.T) {
	g := testGraph()
	g.X, g.Y = g.Y, g.X
	var cerr *scale.ConfigError
	assert.True(t, errors.As(g.Validate(), &cerr))

	g = testGraph()
	g.Y = &scale.Log{Dim: scale.Vertical, Base: 1, From: 0, To: 1}
	err := g.Validate()
	require.Error(t, err)
	assert.True(t, errors.As(err, &cerr))
	assert.Contains(t, err.Error(), "y scale")

	g = testGraph()
	g.Paper.Margin = 2000
	assert.Error(t, g.Validate())

	g = testGraph()
	g.X = nil
	assert.Error(t, g.Validate())

	g = testGraph()
	g.Paper.Points = nil
	assert.ErrorIs(t, g.Validate(), ErrNoPoints)
}

func TestDocumentSkipsUnplaceable(t *testing.T) {
	g := testGraph()
	g.X = &scale.Log{Dim: scale.Horizontal, Base: 10, From: -1, To: 2}
	// Zero and negative x cannot be placed on a log axis.
	g.Paper.Points = append(g.Paper.Points, geom.V(0, 1), geom.V(-3, 1))
	require.NoError(t, g.Validate())

	d := g.Document()
	// Border, title, the 3 placeable points and 28 ticks per axis.
	assert.Equal(t, 2+3+28+28, d.Len())
	assert.Equal(t, 3, strings.Count(g.Serialize(), "<circle "))
}
