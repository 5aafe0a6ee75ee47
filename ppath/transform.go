// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/iconsheet/math32"
)

// Transform transforms the path by the given transformation matrix
// and returns it. It modifies the path in place.
func (p Path) Transform(m math32.Matrix2) Path {
	if m.IsIdentity() {
		return p
	}
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		for j := i + 1; j+1 < i+n-1; j += 2 {
			pt := m.MulVector2AsPoint(math32.Vec2(p[j], p[j+1]))
			p[j] = pt.X
			p[j+1] = pt.Y
		}
		i += n
	}
	return p
}

// Translate translates the path by (x,y) and returns it.
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale scales the path by (x,y) and returns it.
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}

// Bounds returns the exact bounding box of the path: the extent of
// all segment end points, plus the extrema of each Bézier curve found
// at the roots of its derivative. Control points only count where the
// curve actually passes through them. An empty path returns an empty box.
func (p Path) Bounds() math32.Box2 {
	b := math32.B2Empty()
	if p.Empty() {
		return b
	}
	s := p.Scanner()
	for s.Scan() {
		cmd := s.Cmd()
		if cmd == MoveTo {
			continue
		}
		start, end := s.Start(), s.End()
		b.ExpandByPoint(start)
		b.ExpandByPoint(end)
		switch cmd {
		case QuadTo:
			cp := s.CP1()
			for _, t := range quadraticExtrema(start, cp, end) {
				b.ExpandByPoint(quadraticBezierPos(start, cp, end, t))
			}
		case CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			for _, t := range cubicExtrema(start, cp1, cp2, end) {
				b.ExpandByPoint(cubicBezierPos(start, cp1, cp2, end, t))
			}
		}
	}
	return b
}

// quadraticExtrema returns the parameters in (0,1) at which the
// quadratic Bézier has a horizontal or vertical tangent.
func quadraticExtrema(p0, p1, p2 math32.Vector2) []float32 {
	var ts []float32
	add := func(a, b, c float32) {
		den := a - 2.0*b + c
		if Equal(den, 0.0) {
			return
		}
		if t := (a - b) / den; 0.0 < t && t < 1.0 {
			ts = append(ts, t)
		}
	}
	add(p0.X, p1.X, p2.X)
	add(p0.Y, p1.Y, p2.Y)
	return ts
}

// cubicExtrema returns the parameters in (0,1) at which the
// cubic Bézier has a horizontal or vertical tangent.
func cubicExtrema(p0, p1, p2, p3 math32.Vector2) []float32 {
	var ts []float32
	add := func(a, b, c, d float32) {
		// derivative / 3 = qa*t^2 + qb*t + qc
		qa := -a + 3.0*b - 3.0*c + d
		qb := 2.0 * (a - 2.0*b + c)
		qc := b - a
		t1, t2, n := solveQuadraticFormula(qa, qb, qc)
		if 0 < n && 0.0 < t1 && t1 < 1.0 {
			ts = append(ts, t1)
		}
		if 1 < n && 0.0 < t2 && t2 < 1.0 {
			ts = append(ts, t2)
		}
	}
	add(p0.X, p1.X, p2.X, p3.X)
	add(p0.Y, p1.Y, p2.Y, p3.Y)
	return ts
}
