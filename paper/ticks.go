// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paper

import (
	"github.com/aclements/go-graphpaper/scale"
	"github.com/aclements/go-graphpaper/svg"
)

// LabelOpts returns the text options for tick labels on axis a.
// Horizontal labels hang below and to the right of their tick;
// vertical labels sit above and to the left.
func LabelOpts(a scale.Axis) svg.TextOpts {
	if a == scale.Vertical {
		return svg.TextOpts{Anchor: svg.AnchorEnd, Baseline: svg.BaselineAuto, FontSize: LabelFontSize}
	}
	return svg.TextOpts{Anchor: svg.AnchorStart, Baseline: svg.BaselineHanging, FontSize: LabelFontSize}
}

// Ticks returns one fragment per tick. A major tick's fragment holds
// both its mark and its label.
func (p *Paper) Ticks(ticks []scale.Tick) []string {
	out := make([]string, 0, len(ticks))
	for _, t := range ticks {
		line := svg.Line(t.At.X, t.At.Y, t.End.X, t.End.Y, p.StrokeWidth)
		if !t.Major {
			out = append(out, line)
			continue
		}
		label := svg.Text(t.At.X, t.At.Y, LabelOpts(t.Axis), t.Label)
		out = append(out, line+"\n\t"+label)
	}
	return out
}
