// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the hex color model used to recolor
// icon styles: hex parsing and formatting, linear channel mixing,
// and in-place rewriting of every hex color in a block of style text.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by [FromHex] for strings that are not
// 3 or 6 hexadecimal digits.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses exactly 3 or 6 hexadecimal digits, without a leading #,
// into an opaque color. In the 3 digit form each digit is duplicated,
// so "f80" is "ff8800". Any other length or a non-hex digit returns false.
func ParseHex(hex string) (color.RGBA, bool) {
	var r, g, b uint8
	var ok bool
	switch len(hex) {
	case 3:
		if r, ok = parseByte(hex[0:1] + hex[0:1]); !ok {
			return color.RGBA{}, false
		}
		if g, ok = parseByte(hex[1:2] + hex[1:2]); !ok {
			return color.RGBA{}, false
		}
		if b, ok = parseByte(hex[2:3] + hex[2:3]); !ok {
			return color.RGBA{}, false
		}
	case 6:
		if r, ok = parseByte(hex[0:2]); !ok {
			return color.RGBA{}, false
		}
		if g, ok = parseByte(hex[2:4]); !ok {
			return color.RGBA{}, false
		}
		if b, ok = parseByte(hex[4:6]); !ok {
			return color.RGBA{}, false
		}
	default:
		return color.RGBA{}, false
	}
	return color.RGBA{r, g, b, 255}, true
}

func parseByte(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// FromHex parses the given hex color string, which may have a leading #,
// and returns the resulting color. It returns an error wrapping
// [ErrInvalidHex] if the string is not a 3 or 6 digit hex color;
// see [MustFromHex] for a version that panics.
func FromHex(hex string) (color.RGBA, error) {
	c, ok := ParseHex(strings.TrimPrefix(hex, "#"))
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w: %q", ErrInvalidHex, hex)
	}
	return c, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// AsHex returns the color as a lowercase #rrggbb string, ignoring alpha.
func AsHex(c color.RGBA) string {
	return RGBHex(c.R, c.G, c.B)
}

// RGBHex returns the given channels as a lowercase #rrggbb string.
func RGBHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
