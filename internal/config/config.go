// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the graphpaper command configuration.
//
// Settings come, in decreasing priority, from command line flags,
// GRAPHPAPER_* environment variables, an optional configuration file
// and the defaults below. Axis settings are nested under "x" and "y",
// so the x axis kind is the flag --x-kind, the environment variable
// GRAPHPAPER_X_KIND and the key kind in the [x] table of a TOML file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aclements/go-graphpaper/geom"
	"github.com/aclements/go-graphpaper/graph"
	"github.com/aclements/go-graphpaper/paper"
	"github.com/aclements/go-graphpaper/scale"
	"github.com/aclements/go-graphpaper/table"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GRAPHPAPER"

// Axis kinds.
const (
	Linear = "linear"
	Log    = "log"
)

// Axis configures one chart axis.
type Axis struct {
	Kind string `mapstructure:"kind" toml:"kind"`

	// Fit derives Max (linear) or From and To (log) from the data.
	Fit bool `mapstructure:"fit" toml:"fit"`

	MajorDivisions int     `mapstructure:"major-divisions" toml:"major-divisions"`
	MinorDivisions int     `mapstructure:"minor-divisions" toml:"minor-divisions"`
	Max            float64 `mapstructure:"max" toml:"max"`

	Base     float64 `mapstructure:"base" toml:"base"`
	From     int     `mapstructure:"from" toml:"from"`
	To       int     `mapstructure:"to" toml:"to"`
	Subticks int     `mapstructure:"subticks" toml:"subticks"`
}

// Config is the complete configuration of a render.
type Config struct {
	Title       string   `mapstructure:"title" toml:"title"`
	Width       float64  `mapstructure:"width" toml:"width"`
	Height      float64  `mapstructure:"height" toml:"height"`
	Margin      float64  `mapstructure:"margin" toml:"margin"`
	StrokeWidth float64  `mapstructure:"stroke-width" toml:"stroke-width"`
	MajorTick   float64  `mapstructure:"major-tick" toml:"major-tick"`
	MinorTick   float64  `mapstructure:"minor-tick" toml:"minor-tick"`
	Columns     []string `mapstructure:"columns" toml:"columns"`
	Sheet       string   `mapstructure:"sheet" toml:"sheet"`
	Output      string   `mapstructure:"output" toml:"output"`
	PNG         string   `mapstructure:"png" toml:"png"`
	Verbose     bool     `mapstructure:"verbose" toml:"verbose"`

	X Axis `mapstructure:"x" toml:"x"`
	Y Axis `mapstructure:"y" toml:"y"`
}

func defaultAxis() Axis {
	return Axis{
		Kind:           Linear,
		MajorDivisions: 10,
		MinorDivisions: 5,
		Max:            10,
		Base:           10,
		From:           -1,
		To:             2,
		Subticks:       10,
	}
}

// Default returns the default configuration: an A4 sheet with a
// 10x5 linear scale from 0 to 10 on both axes.
func Default() Config {
	return Config{
		Width:       paper.A4.X,
		Height:      paper.A4.Y,
		Margin:      100,
		StrokeWidth: 3,
		MajorTick:   50,
		MinorTick:   25.5,
		Columns:     []string{"0:1"},
		X:           defaultAxis(),
		Y:           defaultAxis(),
	}
}

// New returns a viper instance seeded with the defaults and reading
// GRAPHPAPER_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("title", d.Title)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("margin", d.Margin)
	v.SetDefault("stroke-width", d.StrokeWidth)
	v.SetDefault("major-tick", d.MajorTick)
	v.SetDefault("minor-tick", d.MinorTick)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("sheet", d.Sheet)
	v.SetDefault("output", d.Output)
	v.SetDefault("png", d.PNG)
	v.SetDefault("verbose", d.Verbose)
	for _, name := range []string{"x", "y"} {
		a := defaultAxis()
		v.SetDefault(name+".kind", a.Kind)
		v.SetDefault(name+".fit", a.Fit)
		v.SetDefault(name+".major-divisions", a.MajorDivisions)
		v.SetDefault(name+".minor-divisions", a.MinorDivisions)
		v.SetDefault(name+".max", a.Max)
		v.SetDefault(name+".base", a.Base)
		v.SetDefault(name+".from", a.From)
		v.SetDefault(name+".to", a.To)
		v.SetDefault(name+".subticks", a.Subticks)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// AddFlags registers the render flags on fs and binds them to v.
func AddFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	d := Default()
	fs.String("title", d.Title, "chart `title`")
	fs.Float64("width", d.Width, "chart width in chart units")
	fs.Float64("height", d.Height, "chart height in chart units")
	fs.Float64("margin", d.Margin, "margin around the plotting area")
	fs.Float64("stroke-width", d.StrokeWidth, "line stroke width")
	fs.Float64("major-tick", d.MajorTick, "major tick length")
	fs.Float64("minor-tick", d.MinorTick, "minor tick length")
	fs.StringSlice("columns", d.Columns, "column `pairs` to plot, as x:y")
	fs.String("sheet", d.Sheet, "workbook `sheet` to read (default first sheet)")
	fs.StringP("output", "o", d.Output, "write SVG to `file` (default <title>.svg)")
	fs.String("png", d.PNG, "also write a PNG preview to `file`")

	keys := []string{"title", "width", "height", "margin", "stroke-width",
		"major-tick", "minor-tick", "columns", "sheet", "output", "png"}
	for _, name := range []string{"x", "y"} {
		a := defaultAxis()
		fs.String(name+"-kind", a.Kind, name+" axis kind, linear or log")
		fs.Bool(name+"-fit", a.Fit, "fit the "+name+" axis range to the data")
		fs.Int(name+"-major-divisions", a.MajorDivisions, name+" axis major divisions (linear)")
		fs.Int(name+"-minor-divisions", a.MinorDivisions, name+" axis minor divisions per major division (linear)")
		fs.Float64(name+"-max", a.Max, name+" axis maximum value (linear)")
		fs.Float64(name+"-base", a.Base, name+" axis logarithm base (log)")
		fs.Int(name+"-from", a.From, name+" axis lowest exponent (log)")
		fs.Int(name+"-to", a.To, name+" axis highest exponent (log)")
		fs.Int(name+"-subticks", a.Subticks, name+" axis sub-tick count (log)")
		for _, k := range []string{"kind", "fit", "major-divisions", "minor-divisions", "max", "base", "from", "to", "subticks"} {
			if err := v.BindPFlag(name+"."+k, fs.Lookup(name+"-"+k)); err != nil {
				return err
			}
		}
	}
	for _, k := range keys {
		if err := v.BindPFlag(k, fs.Lookup(k)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the configuration file at path, if path is not "", and
// returns the merged configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &c, nil
}

// WriteTOML writes c to w in the configuration file format.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Pairs parses the configured column pairs.
func (c *Config) Pairs() ([]table.Pair, error) {
	var pairs []table.Pair
	for _, s := range c.Columns {
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f == "" {
				continue
			}
			p, err := table.ParsePair(f)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no column pairs")
	}
	return pairs, nil
}

// Paper returns the sheet described by c, holding points.
func (c *Config) Paper(points []geom.Vec2) *paper.Paper {
	return &paper.Paper{
		Name:            c.Title,
		Size:            geom.V(c.Width, c.Height),
		Margin:          c.Margin,
		Points:          points,
		StrokeWidth:     c.StrokeWidth,
		MajorTickLength: c.MajorTick,
		MinorTickLength: c.MinorTick,
	}
}

// Scale returns the scale for axis dim described by a. values are the
// data coordinates along that axis, used when a.Fit is set.
func (a Axis) Scale(dim scale.Axis, values []float64) (scale.Interface, error) {
	switch strings.ToLower(a.Kind) {
	case Linear:
		hi := a.Max
		if a.Fit {
			var err error
			if hi, err = scale.FitLinear(values, a.MajorDivisions); err != nil {
				return nil, err
			}
		}
		s, err := scale.NewLinear(dim, a.MajorDivisions, a.MinorDivisions, hi)
		if err != nil {
			return nil, err
		}
		return s, nil
	case Log:
		from, to := a.From, a.To
		if a.Fit {
			var err error
			if from, to, err = scale.FitLog(values, a.Base); err != nil {
				return nil, err
			}
		}
		s, err := scale.NewLog(dim, a.Base, from, to)
		if err != nil {
			return nil, err
		}
		s.Subticks = a.Subticks
		return s, nil
	}
	return nil, &scale.ConfigError{Field: "axis kind", Msg: fmt.Sprintf("%q is not %s or %s", a.Kind, Linear, Log)}
}

// Graph builds and validates the chart of points described by c.
func (c *Config) Graph(points []geom.Vec2) (*graph.Graph, error) {
	if len(points) == 0 {
		return nil, graph.ErrNoPoints
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	x, err := c.X.Scale(scale.Horizontal, xs)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	y, err := c.Y.Scale(scale.Vertical, ys)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	g := &graph.Graph{Paper: c.Paper(points), X: x, Y: y}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
