// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws a graph into an image, for previews of the SVG
// output in tools that cannot display SVG.
package raster // import "github.com/aclements/go-graphpaper/raster"

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype"
	ftraster "github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/aclements/go-graphpaper/geom"
	"github.com/aclements/go-graphpaper/graph"
	"github.com/aclements/go-graphpaper/paper"
	"github.com/aclements/go-graphpaper/scale"
	"github.com/aclements/go-graphpaper/svg"
)

// dpi converts font sizes in points to pixels the same way an SVG
// viewer does, with one chart unit per pixel.
const dpi = 96

var (
	fontOnce sync.Once
	ttf      *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		ttf, fontErr = freetype.ParseFont(goregular.TTF)
	})
	return ttf, fontErr
}

// canvas is an image with a vector rasterizer and a text context.
type canvas struct {
	img     *image.RGBA
	r       *ftraster.Rasterizer
	painter *ftraster.RGBAPainter
	ctx     *freetype.Context
	font    *truetype.Font
}

func newCanvas(width, height int) (*canvas, error) {
	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	painter := ftraster.NewRGBAPainter(img)
	painter.SetColor(color.Black)

	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(f)
	ctx.SetSrc(image.Black)
	ctx.SetDst(img)
	ctx.SetClip(img.Bounds())

	return &canvas{img, ftraster.NewRasterizer(width, height), painter, ctx, f}, nil
}

func pt(p geom.Vec2) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(p.X * 64)), Y: fixed.Int26_6(math.Round(p.Y * 64))}
}

// stroke draws the polyline through ps.
func (c *canvas) stroke(width float64, ps ...geom.Vec2) {
	if len(ps) < 2 {
		return
	}
	var path ftraster.Path
	path.Start(pt(ps[0]))
	for _, p := range ps[1:] {
		path.Add1(pt(p))
	}
	c.r.Clear()
	c.r.AddStroke(path, fixed.Int26_6(width*64), ftraster.ButtCapper, ftraster.BevelJoiner)
	c.r.Rasterize(c.painter)
}

// disc fills a circle of radius r centered at p.
func (c *canvas) disc(p geom.Vec2, r float64) {
	const n = 32
	c.r.Clear()
	c.r.Start(pt(p.Add(geom.V(r, 0))))
	for i := 1; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / n
		c.r.Add1(pt(p.Add(geom.V(r*math.Cos(theta), r*math.Sin(theta)))))
	}
	c.r.Rasterize(c.painter)
}

// text draws s anchored at p the way an SVG viewer would for opts.
func (c *canvas) text(p geom.Vec2, opts svg.TextOpts, s string) error {
	size := opts.FontSize
	if size == 0 {
		size = 12
	}
	face := truetype.NewFace(c.font, &truetype.Options{Size: size, DPI: dpi})
	defer face.Close()

	x, y := p.X, p.Y
	w := float64(font.MeasureString(face, s)) / 64
	switch opts.Anchor {
	case svg.AnchorMiddle:
		x -= w / 2
	case svg.AnchorEnd:
		x -= w
	}
	m := face.Metrics()
	switch opts.Baseline {
	case svg.BaselineHanging:
		y += float64(m.Ascent) / 64
	case svg.BaselineMiddle:
		y += float64(m.Ascent-m.Descent) / 128
	}

	c.ctx.SetFontSize(size)
	_, err := c.ctx.DrawString(s, pt(geom.V(x, y)))
	return err
}

// Render draws g. The image is one pixel per chart unit, and the
// drawing matches g.Serialize: border, title, points, then ticks.
func Render(g *graph.Graph) (*image.RGBA, error) {
	p := g.Paper
	c, err := newCanvas(int(math.Ceil(p.Size.X)), int(math.Ceil(p.Size.Y)))
	if err != nil {
		return nil, err
	}

	lo, hi := p.BorderRect()
	c.stroke(p.StrokeWidth, lo, geom.V(hi.X, lo.Y), hi, geom.V(lo.X, hi.Y), lo)

	// Anything at y >= Size.Y is outside the image, so only
	// descenders of the title are visible, as in a viewer.
	at, opts := p.TitleAnchor()
	if err := c.text(at, opts, p.Name); err != nil {
		return nil, err
	}

	for _, q := range p.Placed(g.Transform()) {
		c.disc(q, paper.PointRadius)
	}

	f := p.Frame()
	for _, ticks := range [][]scale.Tick{g.Y.Ticks(f), g.X.Ticks(f)} {
		for _, t := range ticks {
			c.stroke(p.StrokeWidth, t.At, t.End)
			if !t.Major {
				continue
			}
			if err := c.text(t.At, paper.LabelOpts(t.Axis), t.Label); err != nil {
				return nil, err
			}
		}
	}
	return c.img, nil
}

// WritePNG renders g and writes it to w as a PNG.
func WritePNG(w io.Writer, g *graph.Graph) error {
	img, err := Render(g)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
