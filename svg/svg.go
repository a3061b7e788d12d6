// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg builds SVG documents out of markup fragments.
//
// A Document is an append-only, ordered list of fragments wrapped in
// a single root element that carries the pixel width and height of
// the drawing. The element builders in this package (Rect, Line,
// Circle, Text) produce those fragments.
package svg // import "github.com/aclements/go-graphpaper/svg"

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Document is an ordered sequence of markup fragments.
type Document struct {
	width, height float64
	elements      []string
}

// New returns an empty document of the given size.
func New(width, height float64) *Document {
	return &Document{width: width, height: height}
}

// Add appends fragments to d in order and returns d.
func (d *Document) Add(fragments ...string) *Document {
	d.elements = append(d.elements, fragments...)
	return d
}

// Len returns the number of fragments in d.
func (d *Document) Len() int {
	return len(d.elements)
}

// Fragments returns a copy of the fragments in d.
func (d *Document) Fragments() []string {
	return append([]string(nil), d.elements...)
}

// Size returns the width and height of the root element.
func (d *Document) Size() (width, height float64) {
	return d.width, d.height
}

func (d *Document) String() string {
	var b strings.Builder
	d.WriteTo(&b)
	return b.String()
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	sw := &writer{w: w}
	sw.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%v\" height=\"%v\">\n", Length(d.width), Length(d.height))
	for _, el := range d.elements {
		sw.fprintf("\t%s\n", el)
	}
	sw.fprintf("</svg>")
	return sw.n, sw.err
}

// writer is an io.Writer wrapper with a sticky error.
type writer struct {
	w   io.Writer
	n   int64
	err error
}

func (s *writer) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	n, err := fmt.Fprintf(s.w, format, a...)
	s.n += int64(n)
	s.err = err
}

// Length is an SVG length or coordinate. It formats as the shortest
// decimal that round-trips through a float32.
type Length float64

func (v Length) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
