// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/iconsheet/base/iox"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a theme file encoding.
type Format int32

const (
	// JSON is the original theme file format.
	JSON Format = iota
	TOML
	YAML
)

var formatNames = []string{"json", "toml", "yaml"}

// String returns the lowercase name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int32(f))
	}
	return formatNames[f]
}

// FormatFromPath returns the format for the extension of the given path:
// .json, .toml, .yaml or .yml.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("theme: unsupported theme file extension %q", filepath.Ext(path))
}

func (f Format) decoder() iox.DecoderFunc {
	switch f {
	case TOML:
		return iox.NewDecoderFunc(toml.NewDecoder)
	case YAML:
		return iox.NewDecoderFunc(yaml.NewDecoder)
	default:
		return iox.NewDecoderFunc(json.NewDecoder)
	}
}

// Load reads and validates the theme file at the given path, with the
// format selected by its extension.
func Load(path string) (*Registry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f := &File{}
	if err := iox.Open(f, path, format.decoder()); err != nil {
		return nil, fmt.Errorf("theme.Load %s: %w", path, err)
	}
	reg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme.Load %s: %w", path, err)
	}
	return reg, nil
}

// Read reads and validates a theme in the given format.
func Read(r io.Reader, format Format) (*Registry, error) {
	f := &File{}
	if err := iox.Read(f, r, format.decoder()); err != nil {
		return nil, fmt.Errorf("theme.Read: %w", err)
	}
	return Parse(f)
}

// ReadBytes reads and validates a theme in the given format from bytes.
func ReadBytes(b []byte, format Format) (*Registry, error) {
	f := &File{}
	if err := iox.ReadBytes(f, b, format.decoder()); err != nil {
		return nil, fmt.Errorf("theme.ReadBytes: %w", err)
	}
	return Parse(f)
}
