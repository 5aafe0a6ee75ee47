// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/iconsheet/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func assertBox(t *testing.T, want, got math32.Box2, msg ...any) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, tol, msg...)
	assert.InDelta(t, want.Min.Y, got.Min.Y, tol, msg...)
	assert.InDelta(t, want.Max.X, got.Max.X, tol, msg...)
	assert.InDelta(t, want.Max.Y, got.Max.Y, tol, msg...)
}

func TestPathCommands(t *testing.T) {
	p := Path{}
	assert.True(t, p.Empty())
	p.MoveTo(1, 2)
	p.MoveTo(3, 4)
	assert.Equal(t, Path{MoveTo, 3, 4, MoveTo}, p)
	assert.True(t, p.Empty())

	p.LineTo(3, 4) // zero length
	assert.True(t, p.Empty())
	p.LineTo(5, 4)
	p.LineTo(5, 6)
	p.Close()
	assert.False(t, p.Empty())
	assert.Equal(t, math32.Vec2(3, 4), p.Pos())
	assert.Equal(t, math32.Vec2(3, 4), p.StartPos())

	// drawing after a close starts a new subpath at the close point
	p.LineTo(0, 0)
	assert.Equal(t, Path{
		MoveTo, 3, 4, MoveTo,
		LineTo, 5, 4, LineTo,
		LineTo, 5, 6, LineTo,
		Close, 3, 4, Close,
		MoveTo, 3, 4, MoveTo,
		LineTo, 0, 0, LineTo,
	}, p)

	q := p.Clone()
	q[1] = 100
	assert.Equal(t, float32(3), p[1])
}

func TestParseSVGPath(t *testing.T) {
	tests := []struct {
		d    string
		want math32.Box2
	}{
		{"M10 5 L20 5 L20 15 L10 15 Z", math32.B2(10, 5, 20, 15)},
		{"M10,5 H20 V15 H10 z", math32.B2(10, 5, 20, 15)},
		{"m10 5 10 0 0 10 -10 0z", math32.B2(10, 5, 20, 15)},
		{"M10 5h10v10h-10Z", math32.B2(10, 5, 20, 15)},
		{"M0 0L-1.5-2.5", math32.B2(-1.5, -2.5, 0, 0)},
		{"M.5.5L1e1 1E1", math32.B2(0.5, 0.5, 10, 10)},
		// the quad peaks at y=5, half way to its control point
		{"M0 0 Q5 10 10 0", math32.B2(0, 0, 10, 5)},
		// symmetric cubic peaks at 3/4 of its control height
		{"M0 0 C0 8 10 8 10 0", math32.B2(0, 0, 10, 6)},
		// smooth continuation mirrors the control point
		{"M0 0 C0 8 10 8 10 0 S20 -8 20 0", math32.B2(0, -6, 20, 6)},
		{"M0 0 Q5 10 10 0 T20 0", math32.B2(0, -5, 20, 5)},
		// half circle of radius 5 bulging downwards
		{"M0 0 A5 5 0 0 0 10 0", math32.B2(0, 0, 10, 5)},
		{"M0 0 A5 5 0 0 1 10 0", math32.B2(0, -5, 10, 0)},
		{"M0 0a5 5 0 1010 0", math32.B2(0, 0, 10, 5)},
		// radii too small are scaled up
		{"M0 0 A1 1 0 0 1 10 0", math32.B2(0, -5, 10, 0)},
		// zero radius is a line
		{"M0 0 A0 5 0 0 1 10 0", math32.B2(0, 0, 10, 0)},
	}
	for _, tt := range tests {
		p, err := ParseSVGPath(tt.d)
		require.NoError(t, err, tt.d)
		assertBox(t, tt.want, p.Bounds(), tt.d)
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	p, err := ParseSVGPath("")
	assert.NoError(t, err)
	assert.True(t, p.Empty())

	p, err = ParseSVGPath("  \n ")
	assert.NoError(t, err)
	assert.True(t, p.Empty())

	for _, d := range []string{"10 10", "M10", "M10 10 L", "M0 0 A5 5 0 2 0 10 0", "M0 0 Z 5", "M0 0 X 5 5"} {
		_, err := ParseSVGPath(d)
		assert.Error(t, err, d)
	}
	assert.Panics(t, func() { MustParseSVGPath("L") })
}

func TestShapesBounds(t *testing.T) {
	tests := []struct {
		name string
		p    *Path
		want math32.Box2
	}{
		{"rect", (&Path{}).Rectangle(10, 5, 10, 10), math32.B2(10, 5, 20, 15)},
		{"rounded", (&Path{}).RoundedRectangle(10, 5, 10, 10, 2, 3), math32.B2(10, 5, 20, 15)},
		{"rounded clamp", (&Path{}).RoundedRectangle(0, 0, 4, 2, 10, 10), math32.B2(0, 0, 4, 2)},
		{"circle", (&Path{}).Circle(15, 10, 5), math32.B2(10, 5, 20, 15)},
		{"ellipse", (&Path{}).Ellipse(0, 0, 4, 2), math32.B2(-4, -2, 4, 2)},
		{"line", (&Path{}).Line(1, 2, 3, -4), math32.B2(1, -4, 3, 2)},
		{"polyline", (&Path{}).Polyline(math32.Vec2(0, 0), math32.Vec2(5, 7), math32.Vec2(-1, 3)), math32.B2(-1, 0, 5, 7)},
		{"polygon", (&Path{}).Polygon(math32.Vec2(0, 0), math32.Vec2(5, 7), math32.Vec2(-1, 3)), math32.B2(-1, 0, 5, 7)},
	}
	for _, tt := range tests {
		assertBox(t, tt.want, tt.p.Bounds(), tt.name)
	}

	assert.True(t, (&Path{}).Rectangle(0, 0, 0, 10).Empty())
	assert.True(t, (&Path{}).Circle(0, 0, 0).Empty())
	b := Path{}.Bounds()
	assert.True(t, b.IsEmpty())
}

func TestTransform(t *testing.T) {
	p := MustParseSVGPath("M0 0 L10 0 L10 10 Z")
	p = p.Transform(math32.Translate2D(10, 5))
	assertBox(t, math32.B2(10, 5, 20, 15), p.Bounds())

	p = p.Scale(2, 0.5)
	assertBox(t, math32.B2(20, 2.5, 40, 7.5), p.Bounds())

	p = MustParseSVGPath("M0 0 L10 0")
	p = p.Transform(math32.Rotate2D(math32.Pi / 2))
	assertBox(t, math32.B2(0, 0, 0, 10), p.Bounds())

	// transforming a curve keeps the bounds tight
	p = MustParseSVGPath("M0 0 Q5 10 10 0").Translate(1, 1)
	assertBox(t, math32.B2(1, 1, 11, 6), p.Bounds())
}

func TestParsePoints(t *testing.T) {
	pts, err := ParsePoints("0,0 5,7\n-1 3 9")
	assert.NoError(t, err)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 5, Y: 7}, {X: -1, Y: 3}}, pts)

	_, err = ParsePoints("1,x")
	assert.Error(t, err)
}
