// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command iconsheet builds themed icon sprite sheets from a master SVG
// document exported from Illustrator.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/iconsheet/base/logx"
	"cogentcore.org/iconsheet/config"
	"cogentcore.org/iconsheet/sprite"
	"github.com/spf13/cobra"
)

// Exit codes, as in sysexits.h.
const (
	exitDataErr = 65
	exitNoInput = 66
	exitIOErr   = 74
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var pe *os.PathError
	switch {
	case errors.Is(err, sprite.ErrNoIcons):
		return exitNoInput
	case errors.Is(err, sprite.ErrPackOverflow):
		return exitDataErr
	case errors.As(err, &pe):
		return exitIOErr
	}
	return 1
}

// flags are the command line flags. Only flags that were set
// override the values of the config file.
type flags struct {
	config        string
	ratios        []int
	strict        bool
	blend         string
	margin        float32
	maxAreaFactor int
	workers       int
	vv, v, q      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	def := config.New()
	root := &cobra.Command{
		Use:           "iconsheet",
		Short:         "iconsheet builds themed icon sprite sheets from a master SVG document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(f.vv, f.v, f.q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "TOML config file; flags and arguments override its values")
	pf.IntSliceVar(&f.ratios, "ratio", def.Ratios, "pixel ratios to build sprite sheets for")
	pf.BoolVar(&f.strict, "strict", def.Strict, "fail on invalid icon artwork instead of skipping the icon")
	pf.StringVar(&f.blend, "blend", def.Blend, "color blend mode: channel or luminance")
	pf.Float32Var(&f.margin, "margin", def.Margin, "margin around the artwork of each icon")
	pf.IntVar(&f.maxAreaFactor, "max-area-factor", def.MaxAreaFactor, "maximum sheet area as a multiple of the sprite area")
	pf.IntVar(&f.workers, "workers", def.Workers, "number of icons rendered concurrently (0 means the number of CPUs)")
	pf.BoolVar(&f.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&f.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&f.q, "quiet", "q", false, "only show errors")

	root.AddCommand(&cobra.Command{
		Use:   "build [input.svg theme output-prefix]",
		Short: "Build sprite sheets and indexes for every pixel ratio",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return build(cmd.Context(), c)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "extract [input.svg theme output-dir]",
		Short: "Write the themed icon SVG documents to a directory",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return extractTo(c)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "watch [input.svg theme output-prefix]",
		Short: "Build, and rebuild whenever the input or theme changes",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return watch(cmd.Context(), c)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "config [file]",
		Short: "Write a config file with the default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fname := "iconsheet.toml"
			if len(args) > 0 {
				fname = args[0]
			}
			if _, err := os.Stat(fname); err == nil {
				return fmt.Errorf("config file %q already exists", fname)
			}
			if err := config.New().Save(fname); err != nil {
				return err
			}
			logx.PrintlnWarn("wrote", fname)
			return nil
		},
	})
	return root
}

// loadConfig returns the config from the defaults, the config file,
// the positional arguments and the flags that were set, in that order
// of precedence from lowest to highest.
func loadConfig(cmd *cobra.Command, f *flags, args []string) (*config.Config, error) {
	c := config.New()
	if f.config != "" {
		if err := c.Open(f.config); err != nil {
			return nil, err
		}
	}
	for i, p := range []*string{&c.Input, &c.Theme, &c.Output} {
		if i < len(args) {
			*p = args[i]
		}
	}
	fl := cmd.Flags()
	if fl.Changed("ratio") {
		c.Ratios = f.ratios
	}
	if fl.Changed("strict") {
		c.Strict = f.strict
	}
	if fl.Changed("blend") {
		c.Blend = f.blend
	}
	if fl.Changed("margin") {
		c.Margin = f.margin
	}
	if fl.Changed("max-area-factor") {
		c.MaxAreaFactor = f.maxAreaFactor
	}
	if fl.Changed("workers") {
		c.Workers = f.workers
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
