// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// Linear maps [0, Max] evenly onto an axis. The axis is split into
// MajorDivisions labeled intervals, each of which is split into
// MinorDivisions intervals.
type Linear struct {
	Dim Axis

	MajorDivisions, MinorDivisions int
	Max                            float64
}

// *Linear is a scale.
var _ Interface = &Linear{}

// NewLinear returns a new linear scale for axis dim, or a
// *ConfigError if the parameters do not describe a drawable axis.
func NewLinear(dim Axis, major, minor int, max float64) (*Linear, error) {
	s := &Linear{Dim: dim, MajorDivisions: major, MinorDivisions: minor, Max: max}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Linear) Validate() error {
	switch {
	case s.MajorDivisions < 1:
		return configErrorf("major divisions", "%d is less than 1", s.MajorDivisions)
	case s.MinorDivisions < 1:
		return configErrorf("minor divisions", "%d is less than 1", s.MinorDivisions)
	case !(s.Max > 0) || math.IsInf(s.Max, 1):
		return configErrorf("max value", "%v is not a positive number", s.Max)
	case float64(s.MajorDivisions)*float64(s.MinorDivisions)+1 > MaxTicks:
		return configErrorf("divisions", "%d major by %d minor divisions is more than %d ticks", s.MajorDivisions, s.MinorDivisions, MaxTicks)
	}
	return nil
}

func (s *Linear) Axis() Axis {
	return s.Dim
}

func (s *Linear) input() mscale.Linear {
	return mscale.Linear{Min: 0, Max: s.Max}
}

func (s *Linear) Of(f Frame, x float64) float64 {
	return f.Output(s.Dim).Of(s.input().Map(x))
}

// Ticks returns MajorDivisions*MinorDivisions+1 evenly spaced ticks
// covering [0, Max].
//
// Tick i is major if i is a multiple of MajorDivisions, and is
// labeled (Max/MajorDivisions) * (i/MajorDivisions). The stride
// and the label both count in major divisions over the combined
// tick index, so they only line up with the minor subdivision when
// MajorDivisions == MinorDivisions.
func (s *Linear) Ticks(f Frame) []Tick {
	total := s.MajorDivisions * s.MinorDivisions
	values := vec.Linspace(0, s.Max, total+1)
	pos := vec.Map(func(x float64) float64 { return s.Of(f, x) }, values)

	step := s.Max / float64(s.MajorDivisions)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		major := i%s.MajorDivisions == 0
		t := f.tick(s.Dim, pos[i], major)
		t.Value = v
		if major {
			t.Label = formatLabel(step * (float64(i) / float64(s.MajorDivisions)))
		}
		ticks[i] = t
	}
	return ticks
}
