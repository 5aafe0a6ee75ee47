// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"cogentcore.org/iconsheet/math32"
)

// ParseViewBox parses a viewBox attribute value of the form
// "min-x min-y width height" into a box. Width and height must
// not be negative.
func ParseViewBox(s string) (math32.Box2, error) {
	vals, err := math32.ParseFloats(s)
	if err != nil {
		return math32.Box2{}, fmt.Errorf("svg.ParseViewBox: %w", err)
	}
	if len(vals) != 4 {
		return math32.Box2{}, fmt.Errorf("svg.ParseViewBox: expected 4 numbers, got %d in %q", len(vals), s)
	}
	if vals[2] < 0 || vals[3] < 0 {
		return math32.Box2{}, fmt.Errorf("svg.ParseViewBox: negative size in %q", s)
	}
	return math32.B2(vals[0], vals[1], vals[0]+vals[2], vals[1]+vals[3]), nil
}
