// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Rect returns a stroked, unfilled rectangle with its top-left corner
// at (x, y).
func Rect(x, y, w, h, strokeWidth float64) string {
	return fmt.Sprintf("<rect width=\"%v\" height=\"%v\" fill=\"none\" opacity=\"1\" stroke=\"black\" x=\"%v\" y=\"%v\" stroke-width=\"%v\" />",
		Length(w), Length(h), Length(x), Length(y), Length(strokeWidth))
}

// Line returns a black line from (x1, y1) to (x2, y2).
func Line(x1, y1, x2, y2, strokeWidth float64) string {
	return fmt.Sprintf("<line stroke=\"black\" x1=\"%v\" y1=\"%v\" x2=\"%v\" y2=\"%v\" stroke-width=\"%v\" />",
		Length(x1), Length(y1), Length(x2), Length(y2), Length(strokeWidth))
}

// Circle returns a filled circle of radius r centered at (cx, cy).
func Circle(cx, cy, r float64) string {
	return fmt.Sprintf("<circle r=\"%v\" cx=\"%v\" cy=\"%v\" />", Length(r), Length(cx), Length(cy))
}

// Anchor is the horizontal alignment of text relative to its anchor
// point.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline is the vertical alignment of text relative to its anchor
// point.
type Baseline int

const (
	// BaselineAuto puts the anchor point on the alphabetic
	// baseline, so the text sits above it.
	BaselineAuto Baseline = iota
	// BaselineHanging hangs the text below the anchor point.
	BaselineHanging
	BaselineMiddle
)

type TextOpts struct {
	Anchor   Anchor
	Baseline Baseline
	// FontSize is in points. Zero omits the attribute.
	FontSize float64
}

func (o TextOpts) attrs() string {
	var parts []string
	if o.FontSize != 0 {
		parts = append(parts, fmt.Sprintf("font-size=\"%vpt\"", Length(o.FontSize)))
	}
	parts = append(parts, "dominant-baseline=\""+map[Baseline]string{
		BaselineAuto:    "auto",
		BaselineHanging: "hanging",
		BaselineMiddle:  "middle",
	}[o.Baseline]+"\"")
	parts = append(parts, "text-anchor=\""+map[Anchor]string{
		AnchorStart:  "start",
		AnchorMiddle: "middle",
		AnchorEnd:    "end",
	}[o.Anchor]+"\"")
	return strings.Join(parts, " ")
}

// Text returns a text element anchored at (x, y). text is escaped, so
// it may contain markup characters.
func Text(x, y float64, opts TextOpts, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<text x=\"%v\" y=\"%v\" %s>", Length(x), Length(y), opts.attrs())
	xml.EscapeText(&b, []byte(text))
	b.WriteString("</text>")
	return b.String()
}
