// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// Log maps [Base^From, Base^To] logarithmically onto an axis.
type Log struct {
	Dim Axis

	Base     float64
	From, To int

	// Subticks is the configured sub-tick count. It is carried
	// for configuration round-tripping only: sub-ticks are always
	// placed at the integer multiples of each decade.
	Subticks int
}

// *Log is a scale.
var _ Interface = &Log{}

// NewLog returns a new logarithmic scale for axis dim, or a
// *ConfigError if the parameters do not describe a drawable axis.
//
// from == to is allowed and describes an axis with a single major
// tick.
func NewLog(dim Axis, base float64, from, to int) (*Log, error) {
	s := &Log{Dim: dim, Base: base, From: from, To: to}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Log) Validate() error {
	if !(s.Base > 1) || math.IsInf(s.Base, 1) {
		return configErrorf("log base", "%v is not greater than 1", s.Base)
	}
	if s.To < s.From {
		return configErrorf("exponent range", "to %d is less than from %d", s.To, s.From)
	}
	lo, hi := math.Pow(s.Base, float64(s.From)), math.Pow(s.Base, float64(s.To))
	if lo == 0 || math.IsInf(hi, 1) {
		return configErrorf("exponent range", "%v^%d to %v^%d is not representable", s.Base, s.From, s.Base, s.To)
	}
	if n := s.tickCount(); n > MaxTicks {
		return configErrorf("log base", "base %v over exponents %d to %d needs %.0f ticks, more than %d", s.Base, s.From, s.To, n, MaxTicks)
	}
	return nil
}

// tickCount returns the number of ticks Ticks will produce. It is
// computed in floating point so huge bases do not overflow.
func (s *Log) tickCount() float64 {
	decades := float64(s.To) - float64(s.From)
	minors := math.Max(0, math.Floor(s.Base)-2)
	return decades + 1 + minors*decades
}

func (s *Log) Axis() Axis {
	return s.Dim
}

// input maps exponents onto [0, 1]. A single-decade scale maps
// everything to the middle of the axis.
func (s *Log) input() mscale.Linear {
	return mscale.Linear{Min: float64(s.From), Max: float64(s.To)}
}

func (s *Log) Of(f Frame, x float64) float64 {
	return f.Output(s.Dim).Of(s.input().Map(logb(x, s.Base)))
}

// Ticks returns a labeled major tick at Base^i for each i in
// [From, To]. Each decade below To is followed by unlabeled minor
// ticks at j*Base^i for 2 <= j < ⌊Base⌋.
func (s *Log) Ticks(f Frame) []Tick {
	var ticks []Tick
	add := func(v float64, major bool) {
		t := f.tick(s.Dim, s.Of(f, v), major)
		t.Value = v
		if major {
			t.Label = formatLabel(v)
		}
		ticks = append(ticks, t)
	}

	for i := s.From; i <= s.To; i++ {
		decade := math.Pow(s.Base, float64(i))
		add(decade, true)
		if i == s.To {
			break
		}
		for j := 2; j < int(s.Base); j++ {
			add(float64(j)*decade, false)
		}
	}
	return ticks
}

func logb(x, b float64) float64 {
	return math.Log(x) / math.Log(b)
}
