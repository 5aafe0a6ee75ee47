// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/iconsheet/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Mix linearly interpolates between a and b: round((1-t)*a + t*b).
// The result is clamped to [0, 255]; t itself is not clamped, so
// values outside [0, 1] extrapolate until they hit the clamp.
func Mix(a, b uint8, t float32) uint8 {
	v := math32.Round((1-t)*float32(a) + t*float32(b))
	if math32.IsNaN(v) {
		return 0
	}
	return uint8(math32.Clamp(v, 0, 255))
}

// Pair is the (shade, tint) pair of extreme colors of a theme flavor,
// used as the endpoints when recoloring an icon.
type Pair struct {
	// Shade is the dark endpoint, reached by a channel value of 0.
	Shade color.RGBA

	// Tint is the light endpoint, reached by a channel value of 255.
	Tint color.RGBA
}

// BlendMode determines how a [Shader] maps a source color onto its [Pair].
type BlendMode int32

const (
	// ChannelBlend interpolates each channel independently, using that
	// channel's own value / 255 as the fraction between the same channel
	// of the shade and tint. This is the mode existing sprite output
	// was produced with.
	ChannelBlend BlendMode = iota

	// LuminanceBlend computes a single relative luminance fraction from
	// the source color and blends the whole shade toward the tint by it.
	LuminanceBlend
)

var blendModeNames = []string{"channel", "luminance"}

// String returns the lowercase name of the blend mode.
func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendModeNames) {
		return fmt.Sprintf("BlendMode(%d)", int32(m))
	}
	return blendModeNames[m]
}

// SetString sets the blend mode from its name.
func (m *BlendMode) SetString(s string) error {
	for i, nm := range blendModeNames {
		if strings.EqualFold(nm, s) {
			*m = BlendMode(i)
			return nil
		}
	}
	return fmt.Errorf("colors.BlendMode.SetString: unknown blend mode %q (valid: %s)", s, strings.Join(blendModeNames, ", "))
}

// Shader recolors colors onto a [Pair] using a [BlendMode].
type Shader struct {
	Pair
	Mode BlendMode
}

// NewShader returns a [ChannelBlend] shader for the given pair.
func NewShader(p Pair) *Shader {
	return &Shader{Pair: p}
}

// Modify returns the #rrggbb replacement for the given source channels.
// It is a [Modifier].
func (s *Shader) Modify(r, g, b uint8) string {
	if s.Mode == LuminanceBlend {
		return s.luminance(r, g, b)
	}
	nr := Mix(s.Shade.R, s.Tint.R, float32(r)/255)
	ng := Mix(s.Shade.G, s.Tint.G, float32(g)/255)
	nb := Mix(s.Shade.B, s.Tint.B, float32(b)/255)
	return RGBHex(nr, ng, nb)
}

func (s *Shader) luminance(r, g, b uint8) string {
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := src.LinearRgb()
	t := 0.2126*lr + 0.7152*lg + 0.0722*lb
	shade, _ := colorful.MakeColor(s.Shade)
	tint, _ := colorful.MakeColor(s.Tint)
	nr, ng, nb := shade.BlendRgb(tint, t).Clamped().RGB255()
	return RGBHex(nr, ng, nb)
}

// Apply rewrites every hex color in the given style text with [Shader.Modify].
func (s *Shader) Apply(style string) string {
	return ProcessHex(style, s.Modify)
}
