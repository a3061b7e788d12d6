// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-graphpaper/geom"
)

// Pair selects an x column and a y column by zero-based index.
type Pair struct {
	X, Y int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// ParsePair parses a pair written "x:y", such as "0:1".
func ParsePair(s string) (Pair, error) {
	xs, ys, ok := strings.Cut(s, ":")
	if !ok {
		return Pair{}, fmt.Errorf("column pair %q: want x:y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Pair{}, fmt.Errorf("column pair %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Pair{}, fmt.Errorf("column pair %q: %w", s, err)
	}
	if x < 0 || y < 0 {
		return Pair{}, fmt.Errorf("column pair %q: negative column", s)
	}
	return Pair{x, y}, nil
}

// ColumnError reports a column pair that refers to columns the table
// does not have.
type ColumnError struct {
	Pair    Pair
	Missing []int
	Columns int
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column pair %v: no column %s in a table of %d columns",
		e.Pair, strings.Trim(fmt.Sprint(e.Missing), "[]"), e.Columns)
}

// Series is the points read from one column pair.
type Series struct {
	Pair   Pair
	Points []geom.Vec2
	// Skipped is the number of rows dropped because a cell did
	// not parse as a finite number.
	Skipped int
}

// Series returns the points of column pair p. Rows where either cell
// is not a finite number are dropped.
func (t *Table) Series(p Pair) (*Series, error) {
	var missing []int
	for _, c := range []int{p.X, p.Y} {
		if c < 0 || c >= len(t.Columns) {
			missing = append(missing, c)
		}
	}
	if missing != nil {
		return nil, &ColumnError{Pair: p, Missing: missing, Columns: len(t.Columns)}
	}

	s := &Series{Pair: p}
	xs, ys := t.Columns[p.X], t.Columns[p.Y]
	for i := range xs {
		x, okx := parseCell(xs[i])
		y, oky := parseCell(ys[i])
		if !okx || !oky {
			s.Skipped++
			continue
		}
		s.Points = append(s.Points, geom.V(x, y))
	}
	return s, nil
}

// Points returns the points of all pairs in order. A pair that
// cannot be read does not stop the others. The returned error joins
// the errors of every failed pair.
func (t *Table) Points(pairs []Pair) ([]*Series, []geom.Vec2, error) {
	var all []*Series
	var pts []geom.Vec2
	var errs []error
	for _, p := range pairs {
		s, err := t.Series(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		all = append(all, s)
		pts = append(pts, s.Points...)
	}
	return all, pts, errors.Join(errs...)
}

func parseCell(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
