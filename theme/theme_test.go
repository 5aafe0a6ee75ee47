// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/iconsheet/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const themeJSON = `{
	"flavors": {"water": ["#102030", "#a0c0e0"], "land": ["#000", "#fff"]},
	"icons": {"lake": "water", "capital": "land", "townspot": "land"}
}`

const themeTOML = `
[flavors]
water = ["#102030", "#a0c0e0"]
land = ["#000", "#fff"]

[icons]
lake = "water"
capital = "land"
townspot = "land"
`

const themeYAML = `
flavors:
  water: ["#102030", "#a0c0e0"]
  land: ["#000", "#fff"]
icons:
  lake: water
  capital: land
  townspot: land
`

func checkRegistry(t *testing.T, reg *Registry) {
	t.Helper()
	assert.Equal(t, []string{"capital", "lake", "townspot"}, reg.Names())
	assert.True(t, reg.Has("lake"))
	assert.False(t, reg.Has("ocean"))

	key, ok := reg.Flavor("lake")
	assert.True(t, ok)
	assert.Equal(t, "water", key)

	p, ok, err := reg.Pair("lake")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, colors.Pair{Shade: colors.MustFromHex("#102030"), Tint: colors.MustFromHex("#a0c0e0")}, p)

	p, ok, err = reg.Pair("capital")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", colors.AsHex(p.Tint))

	_, ok, err = reg.Pair("ocean")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestReadFormats(t *testing.T) {
	for format, data := range map[Format]string{JSON: themeJSON, TOML: themeTOML, YAML: themeYAML} {
		reg, err := Read(strings.NewReader(data), format)
		require.NoError(t, err, format.String())
		checkRegistry(t, reg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{"theme.json": themeJSON, "theme.toml": themeTOML, "theme.yml": themeYAML, "theme.YAML": themeYAML} {
		fname := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fname, []byte(data), 0666))
		reg, err := Load(fname)
		require.NoError(t, err, name)
		checkRegistry(t, reg)
	}

	_, err := Load(filepath.Join(dir, "theme.ini"))
	assert.ErrorContains(t, err, "unsupported")
	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"flavors": `), 0666))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := ReadBytes([]byte(`{"flavors": {"water": ["#102030", "#zzz"]}, "icons": {}}`), JSON)
	var ce *ColorError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "water", ce.Flavor)
	assert.ErrorIs(t, err, colors.ErrInvalidHex)
	assert.Contains(t, err.Error(), `"#zzz"`)

	_, err = ReadBytes([]byte(`{"flavors": {"water": ["#102030"]}}`), JSON)
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "expected 2 colors, got 1")

	_, err = ReadBytes([]byte(`{"flavors": {"water": ["#000", "#fff", "#888"]}}`), JSON)
	require.ErrorAs(t, err, &ce)

	_, err = ReadBytes([]byte(`{"flavors": {"water": ["#000", "#fff"]}, "icons": {"lake": "lava"}}`), JSON)
	assert.ErrorIs(t, err, ErrUnknownFlavor)
	assert.Contains(t, err.Error(), `"lava"`)
}

func TestPairUnknownFlavor(t *testing.T) {
	reg := &Registry{Flavors: map[string]colors.Pair{}, Icons: map[string]string{"lake": "water"}}
	_, ok, err := reg.Pair("lake")
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrUnknownFlavor)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/c.TOML")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)
	assert.Equal(t, "toml", f.String())
	_, err = FormatFromPath("noext")
	assert.Error(t, err)
	assert.Equal(t, "Format(9)", Format(9).String())
}
