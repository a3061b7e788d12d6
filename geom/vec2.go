// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the 2-D point type shared by the chart
// packages.
package geom // import "github.com/aclements/go-graphpaper/geom"

import (
	"fmt"
	"math"
)

// Vec2 is a 2-D point or vector. Arithmetic on Vec2 is componentwise:
// Mul and Div are not dot or cross products.
type Vec2 struct {
	X, Y float64
}

// V returns the Vec2 (x, y).
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Div divides a by b componentwise. The caller must ensure neither
// component of b is zero.
func (a Vec2) Div(b Vec2) Vec2 {
	return Vec2{a.X / b.X, a.Y / b.Y}
}

// Scale multiplies both components of a by k.
func (a Vec2) Scale(k float64) Vec2 {
	return Vec2{a.X * k, a.Y * k}
}

// Abs returns the magnitude of a.
func (a Vec2) Abs() float64 {
	return math.Hypot(a.X, a.Y)
}

// Log returns the base-base logarithm of each component of a.
func (a Vec2) Log(base float64) Vec2 {
	lb := math.Log(base)
	return Vec2{math.Log(a.X) / lb, math.Log(a.Y) / lb}
}

// Finite reports whether both components are neither infinite nor NaN.
func (a Vec2) Finite() bool {
	return !math.IsInf(a.X, 0) && !math.IsNaN(a.X) &&
		!math.IsInf(a.Y, 0) && !math.IsNaN(a.Y)
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", a.X, a.Y)
}
