// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command graphpaper plots columns of a CSV file or Excel workbook as
// a scatter chart on graph paper and writes it as SVG.
//
// Usage:
//
//	graphpaper render [flags] input.csv
//	graphpaper config [flags]
//	graphpaper version
//
// Each --columns pair x:y selects a column of x coordinates and a
// column of y coordinates, counted from 0. Rows whose cells are not
// numbers are skipped. Either axis may be linear or logarithmic; see
// "graphpaper render --help" for the axis flags. All flags may also
// be set in a TOML configuration file (--config) or in GRAPHPAPER_*
// environment variables.
package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aclements/go-graphpaper/internal/config"
)

var version = "devel"

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the graphpaper command tree. Command output other
// than logging goes to stdout.
func newRootCmd(stdout io.Writer) *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "graphpaper",
		Short:         "Plot tabular data on graph paper as SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if v.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.SetOut(stdout)
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "read settings from TOML, YAML or JSON `file`")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debugging detail")
	v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	if err := config.AddFlags(v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	load := func() (*config.Config, error) {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			return nil, err
		}
		if cfgFile != "" {
			log.WithField("file", v.ConfigFileUsed()).Debug("Using config file")
		}
		return c, nil
	}

	render := &cobra.Command{
		Use:   "render [flags] input",
		Short: "Render a chart from a CSV file or workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			return runRender(c, args[0])
		},
	}

	cfg := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			return c.WriteTOML(cmd.OutOrStdout())
		},
	}

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the graphpaper version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("graphpaper", version)
		},
	}

	root.AddCommand(render, cfg, ver)
	return root
}
