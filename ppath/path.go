// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

// Package ppath provides float32 path data: MoveTo, LineTo, QuadTo,
// CubeTo and Close commands, parsing of SVG path data, basic shapes,
// affine transforms, and tight bounding boxes.
package ppath

import (
	"cogentcore.org/iconsheet/math32"
)

// Path is a collection of MoveTo, LineTo, QuadTo, CubeTo, and Close
// commands, each followed by the float32 coordinate data for it.
// The command verb is also added to the end of the coordinate data,
// so that the path can be scanned in both directions.
// The last two coordinate values are the end point position of the pen
// after the action (x,y). QuadTo defines one control point (x,y) in between,
// CubeTo defines two control points.
// Arcs are converted to cubic Béziers when they are added.
// Only valid commands are appended, so that LineTo has a non-zero length.
type Path []float32

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	QuadTo float32 = 2
	CubeTo float32 = 3
	Close  float32 = 4
)

var cmdLens = [5]int{4, 4, 6, 8, 4}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Empty returns true if p is an empty path or consists of only MoveTos.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	q := make(Path, len(p))
	copy(q, p)
	return q
}

// Pos returns the current position of the path,
// which is the end point of the last command.
func (p Path) Pos() math32.Vector2 {
	if 0 < len(p) {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath,
// i.e. it returns the position of the last MoveTo command.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// MoveTo moves the path to (x,y) without connecting the path.
// It starts a new independent subpath. Consecutive MoveTos collapse
// into the last one.
func (p *Path) MoveTo(x, y float32) {
	if 0 < len(*p) && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// ensureStart makes sure a drawing command has a subpath to extend:
// an empty path starts at the origin, and a command after a Close
// starts again from the closed subpath's start point.
func (p *Path) ensureStart() {
	if len(*p) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
}

// LineTo adds a linear path to (x,y).
func (p *Path) LineTo(x, y float32) {
	start := p.Pos()
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) {
		return
	}
	p.ensureStart()
	*p = append(*p, LineTo, end.X, end.Y, LineTo)
}

// QuadTo adds a quadratic Bézier path with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float32) {
	start := p.Pos()
	cp := math32.Vec2(cpx, cpy)
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) && EqualPoint(start, cp) {
		return
	}
	p.ensureStart()
	*p = append(*p, QuadTo, cp.X, cp.Y, end.X, end.Y, QuadTo)
}

// CubeTo adds a cubic Bézier path with control points
// (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float32) {
	start := p.Pos()
	cp1 := math32.Vec2(cpx1, cpy1)
	cp2 := math32.Vec2(cpx2, cpy2)
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) && EqualPoint(start, cp1) && EqualPoint(start, cp2) {
		return
	}
	p.ensureStart()
	*p = append(*p, CubeTo, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y, CubeTo)
}

// ArcTo adds an arc with radii rx and ry, with rot the rotation with
// respect to the coordinate system in radians, large and sweep booleans
// (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs),
// and (x,y) the end position of the pen. The arc is stored as a sequence
// of cubic Béziers, each spanning at most a quarter turn.
func (p *Path) ArcTo(rx, ry, rot float32, large, sweep bool, x, y float32) {
	start := p.Pos()
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) {
		return
	}
	if Equal(rx, 0.0) || math32.IsInf(rx, 0) || Equal(ry, 0.0) || math32.IsInf(ry, 0) {
		p.LineTo(end.X, end.Y)
		return
	}
	rx = math32.Abs(rx)
	ry = math32.Abs(ry)

	// scale ellipse if rx and ry are too small
	lambda := EllipseRadiiCorrection(start, rx, ry, rot, end)
	if lambda > 1.0 {
		rx *= lambda
		ry *= lambda
	}
	p.ensureStart()
	for _, bezier := range ellipseToCubicBeziers(start, rx, ry, rot, large, sweep, end) {
		p.CubeTo(bezier[1].X, bezier[1].Y, bezier[2].X, bezier[2].Y, bezier[3].X, bezier[3].Y)
	}
}

// ArcToDeg is a version of [Path.ArcTo] with the rotation in degrees.
func (p *Path) ArcToDeg(rx, ry, rot float32, large, sweep bool, x, y float32) {
	p.ArcTo(rx, ry, math32.DegToRad(rot), large, sweep, x, y)
}

// Close closes a (sub)path with a LineTo to the start of the path
// (the most recent MoveTo command).
func (p *Path) Close() {
	if len(*p) == 0 || (*p)[len(*p)-1] == Close {
		// already closed or empty
		return
	} else if (*p)[len(*p)-1] == MoveTo {
		// remove MoveTo + Close
		*p = (*p)[:len(*p)-CmdLen(MoveTo)]
		return
	}
	end := p.StartPos()
	*p = append(*p, Close, end.X, end.Y, Close)
}
