// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the theme registry that maps icon names to
// color flavors, and the flavors to their (shade, tint) color pairs.
// Theme files can be JSON, TOML or YAML, all with the same shape:
//
//	{
//		"flavors": {"water": ["#102030", "#a0c0e0"]},
//		"icons": {"lake": "water"}
//	}
package theme

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/iconsheet/colors"
)

// ErrUnknownFlavor is returned when an icon refers to a flavor
// that the registry does not define.
var ErrUnknownFlavor = errors.New("unknown flavor")

// File is the serialized form of a theme.
type File struct {

	// Flavors maps a flavor key to its [shade, tint] hex colors.
	Flavors map[string][]string `json:"flavors" toml:"flavors" yaml:"flavors"`

	// Icons maps an icon name to its flavor key.
	Icons map[string]string `json:"icons" toml:"icons" yaml:"icons"`
}

// ColorError is returned for a flavor whose colors are not a valid
// pair of hex colors.
type ColorError struct {
	// Flavor is the flavor key.
	Flavor string

	// Value is the offending value, or the whole list when the
	// number of colors is wrong.
	Value string

	// Err is the underlying error.
	Err error
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("flavor %q: color %s: %v", e.Flavor, e.Value, e.Err)
}

func (e *ColorError) Unwrap() error { return e.Err }

// Registry is a validated theme: every flavor has a parsed color pair
// and every icon refers to an existing flavor.
type Registry struct {
	// Flavors maps a flavor key to its color pair.
	Flavors map[string]colors.Pair

	// Icons maps an icon name to its flavor key.
	Icons map[string]string
}

// Parse validates the given theme file and returns its registry.
// Every flavor must have exactly two colors that parse as hex colors,
// otherwise a [*ColorError] is returned. Every icon must refer to a
// defined flavor, otherwise an error wrapping [ErrUnknownFlavor] is returned.
func Parse(f *File) (*Registry, error) {
	reg := &Registry{
		Flavors: make(map[string]colors.Pair, len(f.Flavors)),
		Icons:   make(map[string]string, len(f.Icons)),
	}
	for _, key := range sortedKeys(f.Flavors) {
		cs := f.Flavors[key]
		if len(cs) != 2 {
			return nil, &ColorError{Flavor: key, Value: fmt.Sprintf("%q", cs), Err: fmt.Errorf("expected 2 colors, got %d", len(cs))}
		}
		shade, err := colors.FromHex(cs[0])
		if err != nil {
			return nil, &ColorError{Flavor: key, Value: fmt.Sprintf("%q", cs[0]), Err: err}
		}
		tint, err := colors.FromHex(cs[1])
		if err != nil {
			return nil, &ColorError{Flavor: key, Value: fmt.Sprintf("%q", cs[1]), Err: err}
		}
		reg.Flavors[key] = colors.Pair{Shade: shade, Tint: tint}
	}
	for _, name := range sortedKeys(f.Icons) {
		key := f.Icons[name]
		if _, ok := reg.Flavors[key]; !ok {
			return nil, fmt.Errorf("theme.Parse: icon %q: %w %q", name, ErrUnknownFlavor, key)
		}
		reg.Icons[name] = key
	}
	return reg, nil
}

// Has returns whether the given icon name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Icons[name]
	return ok
}

// Flavor returns the flavor key of the given icon, and whether it is registered.
func (r *Registry) Flavor(name string) (string, bool) {
	key, ok := r.Icons[name]
	return key, ok
}

// Pair returns the color pair of the given icon's flavor. It returns
// false if the icon is not registered, and an error wrapping
// [ErrUnknownFlavor] if its flavor is not defined.
func (r *Registry) Pair(name string) (colors.Pair, bool, error) {
	key, ok := r.Icons[name]
	if !ok {
		return colors.Pair{}, false, nil
	}
	p, ok := r.Flavors[key]
	if !ok {
		return colors.Pair{}, true, fmt.Errorf("theme.Registry.Pair: icon %q: %w %q", name, ErrUnknownFlavor, key)
	}
	return p, true, nil
}

// Names returns the registered icon names, sorted.
func (r *Registry) Names() []string {
	return sortedKeys(r.Icons)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
