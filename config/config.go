// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the iconsheet tool.
package config

import (
	"fmt"
	"io"
	"time"

	"cogentcore.org/iconsheet/base/errors"
	"cogentcore.org/iconsheet/base/iox"
	"cogentcore.org/iconsheet/base/reflectx"
	"cogentcore.org/iconsheet/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of the iconsheet tool. It can be read
// from a TOML file, and command line flags override it.
type Config struct {

	// Input is the master SVG document.
	Input string `toml:"input"`

	// Theme is the theme file (JSON, TOML or YAML).
	Theme string `toml:"theme"`

	// Output is the output file prefix for build, and the output
	// directory for extract.
	Output string `toml:"output" default:"sprite"`

	// Ratios are the pixel ratios to build sprite sheets for.
	Ratios []int `toml:"ratios" default:"[1, 2]"`

	// Strict makes any invalid icon artwork an error.
	// Otherwise invalid icons are skipped with a warning.
	Strict bool `toml:"strict" default:"true"`

	// Blend is the color blend mode: channel or luminance.
	Blend string `toml:"blend" default:"channel"`

	// Margin is added around the artwork of each icon.
	Margin float32 `toml:"margin" default:"0.5"`

	// Ignore are group ids and names that are never icons.
	// If empty, the default helper layers are ignored.
	Ignore []string `toml:"ignore,omitempty"`

	// Renames maps resolved icon names to exported names.
	// If empty, the default renames are used.
	Renames map[string]string `toml:"renames,omitempty"`

	// MaxAreaFactor limits the sprite sheet area, as a multiple of
	// the summed area of the sprites.
	MaxAreaFactor int `toml:"max_area_factor" default:"50"`

	// Workers is the number of icons rendered concurrently.
	// 0 means the number of CPUs.
	Workers int `toml:"workers" default:"0"`

	// Debounce is how long watch waits for changes to settle
	// before rebuilding.
	Debounce Duration `toml:"debounce" default:"250ms"`
}

// Duration is a [time.Duration] written as a string like "250ms" in config files.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// New returns a new config with default values.
func New() *Config {
	c := &Config{}
	SetFromDefaults(c)
	return c
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(c *Config) error {
	return errors.Log(reflectx.SetFromDefaultTags(c))
}

var (
	tomlDecoder = iox.NewDecoderFunc(func(r io.Reader) *toml.Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	})
	tomlEncoder = iox.NewEncoderFunc(toml.NewEncoder)
)

// Open reads the given TOML config file into the config,
// overwriting only the values set in the file.
func (c *Config) Open(filename string) error {
	if err := iox.Open(c, filename, tomlDecoder); err != nil {
		return fmt.Errorf("config.Open %s: %w", filename, err)
	}
	return nil
}

// Save writes the config to the given TOML file.
func (c *Config) Save(filename string) error {
	return iox.Save(c, filename, tomlEncoder)
}

// BlendMode returns the parsed [Config.Blend].
func (c *Config) BlendMode() (colors.BlendMode, error) {
	var m colors.BlendMode
	err := m.SetString(c.Blend)
	return m, err
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("no input file"))
	}
	if c.Theme == "" {
		errs = append(errs, errors.New("no theme file"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("no output"))
	}
	if len(c.Ratios) == 0 {
		errs = append(errs, errors.New("no pixel ratios"))
	}
	for _, r := range c.Ratios {
		if r < 1 {
			errs = append(errs, fmt.Errorf("invalid pixel ratio %d", r))
		}
	}
	if _, err := c.BlendMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Margin < 0 {
		errs = append(errs, fmt.Errorf("negative margin %g", c.Margin))
	}
	if c.MaxAreaFactor < 1 {
		errs = append(errs, fmt.Errorf("invalid max area factor %d", c.MaxAreaFactor))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("invalid number of workers %d", c.Workers))
	}
	return errors.Join(errs...)
}
