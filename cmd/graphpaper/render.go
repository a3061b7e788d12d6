// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/aclements/go-graphpaper/graph"
	"github.com/aclements/go-graphpaper/internal/config"
	"github.com/aclements/go-graphpaper/raster"
	"github.com/aclements/go-graphpaper/table"
)

// runRender plots the configured column pairs of input. If some pairs
// cannot be read, the chart is still written from the others and
// runRender returns their errors.
func runRender(c *config.Config, input string) error {
	pairs, err := c.Pairs()
	if err != nil {
		return err
	}
	tab, err := table.Load(input, c.Sheet)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"input":   input,
		"columns": len(tab.Columns),
		"rows":    tab.Rows(),
	}).Debug("Loaded table")

	series, points, dataErr := tab.Points(pairs)
	for _, s := range series {
		l := log.WithFields(log.Fields{
			"series":  s.Pair.String(),
			"points":  len(s.Points),
			"skipped": s.Skipped,
		})
		if s.Skipped > 0 {
			l.Info("Skipped non-numeric rows")
		} else {
			l.Debug("Read series")
		}
	}
	if dataErr != nil {
		log.WithError(dataErr).Error("Some column pairs could not be read")
	}

	g, err := c.Graph(points)
	if err != nil {
		return errors.Join(dataErr, err)
	}

	out := c.Output
	if out == "" {
		out = defaultOutput(c.Title, input)
	}
	if err := writeFile(out, func(w io.Writer) error {
		_, err := g.Document().WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	if c.PNG != "" {
		if err := writeFile(c.PNG, func(w io.Writer) error {
			return raster.WritePNG(w, g)
		}); err != nil {
			return err
		}
	}
	logChart(g)
	return dataErr
}

// defaultOutput names the SVG after the chart title, or after the
// input file if the chart is untitled.
func defaultOutput(title, input string) string {
	if title != "" {
		return title + ".svg"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
}

// writeFile creates path and fills it with write. The file is closed
// on every path.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	cw := &countWriter{w: f}
	err = write(cw)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"file":  path,
		"bytes": humanize.Bytes(uint64(cw.n)),
	}).Info("Wrote chart")
	return nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func logChart(g *graph.Graph) {
	log.WithFields(log.Fields{
		"points": len(g.Paper.Points),
		"x":      fmt.Sprintf("%+v", g.X),
		"y":      fmt.Sprintf("%+v", g.Y),
	}).Debug("Chart scales")
}
