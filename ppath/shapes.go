// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/iconsheet/math32"
)

// Line adds a line segment of from (x1,y1) to (x2,y2).
func (p *Path) Line(x1, y1, x2, y2 float32) *Path {
	if Equal(x1, x2) && Equal(y1, y2) {
		return p
	}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Polyline adds multiple connected lines, with no final Close.
func (p *Path) Polyline(points ...math32.Vector2) *Path {
	sz := len(points)
	if sz < 2 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < sz; i++ {
		p.LineTo(points[i].X, points[i].Y)
	}
	return p
}

// Polygon adds multiple connected lines with a final Close.
func (p *Path) Polygon(points ...math32.Vector2) *Path {
	p.Polyline(points...)
	p.Close()
	return p
}

// Rectangle adds a rectangle of width w and height h.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangle adds a rectangle of width w and height h with
// elliptical corners of radii rx and ry, as an SVG rect element does.
// The radii are limited to half the width and height respectively.
func (p *Path) RoundedRectangle(x, y, w, h, rx, ry float32) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	rx = math32.Min(math32.Abs(rx), w/2.0)
	ry = math32.Min(math32.Abs(ry), h/2.0)
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return p.Rectangle(x, y, w, h)
	}

	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.ArcTo(rx, ry, 0.0, false, true, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.ArcTo(rx, ry, 0.0, false, true, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.ArcTo(rx, ry, 0.0, false, true, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.ArcTo(rx, ry, 0.0, false, true, x+rx, y)
	p.Close()
	return p
}

// Circle adds a circle at given center coordinates of radius r.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse at given center coordinates of radii rx and ry.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return p
	}
	p.MoveTo(cx+rx, cy)
	p.ArcTo(rx, ry, 0.0, false, true, cx-rx, cy)
	p.ArcTo(rx, ry, 0.0, false, true, cx+rx, cy)
	p.Close()
	return p
}
