// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/iconsheet/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "sprite", c.Output)
	assert.Equal(t, []int{1, 2}, c.Ratios)
	assert.True(t, c.Strict)
	assert.Equal(t, "channel", c.Blend)
	assert.Equal(t, float32(0.5), c.Margin)
	assert.Equal(t, 50, c.MaxAreaFactor)
	assert.Equal(t, 0, c.Workers)
	assert.Equal(t, Duration(250*time.Millisecond), c.Debounce)
	assert.Nil(t, c.Ignore)

	// input and theme have no defaults
	assert.ErrorContains(t, c.Validate(), "no input file")
	c.Input, c.Theme = "master.svg", "theme.json"
	assert.NoError(t, c.Validate())
}

func TestOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "iconsheet.toml")
	require.NoError(t, os.WriteFile(fname, []byte(`
input = "master.svg"
theme = "theme.yaml"
ratios = [1, 2, 3]
blend = "luminance"
ignore = ["guides"]
debounce = "1s"

[renames]
capital-s = "capital"
`), 0666))

	c := New()
	require.NoError(t, c.Open(fname))
	assert.Equal(t, "master.svg", c.Input)
	assert.Equal(t, "theme.yaml", c.Theme)
	assert.Equal(t, "sprite", c.Output)
	assert.Equal(t, []int{1, 2, 3}, c.Ratios)
	assert.Equal(t, []string{"guides"}, c.Ignore)
	assert.Equal(t, map[string]string{"capital-s": "capital"}, c.Renames)
	assert.Equal(t, Duration(time.Second), c.Debounce)
	m, err := c.BlendMode()
	assert.NoError(t, err)
	assert.Equal(t, colors.LuminanceBlend, m)
	assert.NoError(t, c.Validate())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	c := New()
	assert.Error(t, c.Open(filepath.Join(dir, "missing.toml")))

	fname := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fname, []byte(`unknown_key = 1`), 0666))
	assert.Error(t, c.Open(fname))

	require.NoError(t, os.WriteFile(fname, []byte(`debounce = "soon"`), 0666))
	assert.Error(t, c.Open(fname))
}

func TestSaveRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "iconsheet.toml")
	c := New()
	c.Input = "in.svg"
	c.Renames = map[string]string{"a": "b"}
	require.NoError(t, c.Save(fname))
	d := &Config{}
	require.NoError(t, d.Open(fname))
	assert.Equal(t, c, d)
}

func TestValidate(t *testing.T) {
	c := New()
	c.Input, c.Theme = "a", "b"
	c.Ratios = []int{0}
	c.Blend = "overlay"
	c.Margin = -1
	c.MaxAreaFactor = 0
	c.Workers = -2
	err := c.Validate()
	for _, s := range []string{"pixel ratio 0", "overlay", "negative margin", "max area factor", "workers"} {
		assert.ErrorContains(t, err, s)
	}
}
