// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"000", color.RGBA{0, 0, 0, 255}, true},
		{"f80", color.RGBA{0xff, 0x88, 0x00, 255}, true},
		{"FfF", color.RGBA{255, 255, 255, 255}, true},
		{"12ab9F", color.RGBA{0x12, 0xab, 0x9f, 255}, true},
		{"", color.RGBA{}, false},
		{"#fff", color.RGBA{}, false},
		{"ffff", color.RGBA{}, false},
		{"fffffff", color.RGBA{}, false},
		{"gg0000", color.RGBA{}, false},
		{"+f0", color.RGBA{}, false},
		{"-10000", color.RGBA{}, false},
	}
	for _, tt := range tests {
		c, ok := ParseHex(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, s := range []string{"000000", "ffffff", "0a0b0c", "ABCDEF", "7f8081", "d1e2f3"} {
		c, ok := ParseHex(s)
		assert.True(t, ok, s)
		assert.Equal(t, "#"+strings.ToLower(s), fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	for v := 0; v < 256; v += 5 {
		s := fmt.Sprintf("%02x%02x%02x", v, 255-v, v/2)
		c, ok := ParseHex(s)
		assert.True(t, ok, s)
		assert.Equal(t, "#"+s, AsHex(c))
	}
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#0f0")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, c)

	c, err = FromHex("336699")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 255}, c)

	_, err = FromHex("#12345")
	assert.ErrorIs(t, err, ErrInvalidHex)

	assert.Panics(t, func() { MustFromHex("nope") })
}

func TestMix(t *testing.T) {
	for a := 0; a < 256; a += 15 {
		for b := 0; b < 256; b += 17 {
			assert.Equal(t, uint8(a), Mix(uint8(a), uint8(b), 0))
			assert.Equal(t, uint8(b), Mix(uint8(a), uint8(b), 1))
		}
	}
	prev := Mix(10, 200, 0)
	for i := 1; i <= 100; i++ {
		v := Mix(10, 200, float32(i)/100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Equal(t, uint8(128), Mix(0, 255, 128.0/255))
	assert.Equal(t, uint8(255), Mix(0, 255, 1.5))
	assert.Equal(t, uint8(0), Mix(0, 255, -0.5))
	assert.Equal(t, uint8(0), Mix(100, 200, -2))
}

func TestProcessHex(t *testing.T) {
	black := func(r, g, b uint8) string { return "#000000" }

	in := ".cls-1{stroke-width:2px;}"
	assert.Equal(t, in, ProcessHex(in, black))
	assert.Equal(t, "", ProcessHex("", black))

	assert.Equal(t, "prefix #000000 suffix", ProcessHex("prefix #ff0000 suffix", black))
	assert.Equal(t, "#000000#000000", ProcessHex("#abc#ABCDEF", black))
	assert.Equal(t, "a#000000f b", ProcessHex("a#ffff b", black), "3 digit match leaves the 4th digit")
	assert.Equal(t, "# #zz #000000", ProcessHex("# #zz #123", black))
}

func TestProcessHexNoRescan(t *testing.T) {
	calls := 0
	mod := func(r, g, b uint8) string {
		calls++
		return "#fff#fff"
	}
	assert.Equal(t, "x#fff#fffy", ProcessHex("x#000y", mod))
	assert.Equal(t, 1, calls)
}

func TestProcessHexChannels(t *testing.T) {
	var got []color.RGBA
	ProcessHex("fill:#102030;stroke:#fa0", func(r, g, b uint8) string {
		got = append(got, color.RGBA{r, g, b, 255})
		return ""
	})
	assert.Equal(t, []color.RGBA{{0x10, 0x20, 0x30, 255}, {0xff, 0xaa, 0x00, 255}}, got)
}

func TestShader(t *testing.T) {
	sh := NewShader(Pair{Shade: MustFromHex("#000000"), Tint: MustFromHex("#ffffff")})
	assert.Equal(t, "#808080", sh.Modify(0x80, 0x80, 0x80))
	assert.Equal(t, "#000000", sh.Modify(0, 0, 0))
	assert.Equal(t, "#ffffff", sh.Modify(255, 255, 255))

	// each channel uses its own value as the fraction
	sh = NewShader(Pair{Shade: MustFromHex("#204060"), Tint: MustFromHex("#a0c0e0")})
	assert.Equal(t, "#20c060", sh.Modify(0, 255, 0))
	assert.Equal(t, "#a040e0", sh.Modify(255, 0, 255))

	st := ".a{fill:#fff}.b{fill:#000;stroke:#00ff00}"
	assert.Equal(t, ".a{fill:#a0c0e0}.b{fill:#204060;stroke:#20c060}", sh.Apply(st))
	assert.Equal(t, sh.Apply(st), sh.Apply(st))
}

func TestShaderLuminance(t *testing.T) {
	sh := &Shader{Pair: Pair{Shade: MustFromHex("#000"), Tint: MustFromHex("#fff")}, Mode: LuminanceBlend}
	assert.Equal(t, "#000000", sh.Modify(0, 0, 0))
	assert.Equal(t, "#ffffff", sh.Modify(255, 255, 255))
	// pure green is much brighter than pure blue
	g, b := sh.Modify(0, 255, 0), sh.Modify(0, 0, 255)
	assert.Greater(t, g, b)
}

func TestBlendModeString(t *testing.T) {
	var m BlendMode
	assert.NoError(t, m.SetString("Luminance"))
	assert.Equal(t, LuminanceBlend, m)
	assert.Equal(t, "luminance", m.String())
	assert.Error(t, m.SetString("hsl"))
	assert.Equal(t, "BlendMode(7)", BlendMode(7).String())
}

func ExampleMix() {
	fmt.Println(Mix(0, 255, 0.5), Mix(40, 80, 0.25))
	// Output: 128 50
}

func ExampleProcessHex() {
	sh := NewShader(Pair{Shade: MustFromHex("#102030"), Tint: MustFromHex("#f0f0f0")})
	fmt.Println(ProcessHex(".cls-1{fill:#fff;stroke:#000;}", sh.Modify))
	// Output: .cls-1{fill:#f0f0f0;stroke:#102030;}
}
