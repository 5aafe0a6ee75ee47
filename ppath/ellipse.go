// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/iconsheet/math32"
)

// EllipsePos returns the position on the ellipse centered at (cx,cy)
// with radii rx, ry and rotation phi, at angle theta.
func EllipsePos(rx, ry, phi, cx, cy, theta float32) math32.Vector2 {
	sintheta, costheta := math32.Sincos(theta)
	sinphi, cosphi := math32.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return math32.Vec2(x, y)
}

// ellipseDeriv returns the derivative of [EllipsePos] with respect to theta.
func ellipseDeriv(rx, ry, phi, theta float32) math32.Vector2 {
	sintheta, costheta := math32.Sincos(theta)
	sinphi, cosphi := math32.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	return math32.Vec2(dx, dy)
}

// EllipseRadiiCorrection calculates the factor by which the radii
// need to be scaled so that an ellipse through start and end exists.
// A factor of at most 1 means no correction is needed.
func EllipseRadiiCorrection(start math32.Vector2, rx, ry, phi float32, end math32.Vector2) float32 {
	sinphi, cosphi := math32.Sincos(phi)
	dx := (start.X - end.X) / 2.0
	dy := (start.Y - end.Y) / 2.0
	x1p := cosphi*dx + sinphi*dy
	y1p := -sinphi*dx + cosphi*dy
	return math32.Sqrt(x1p*x1p/rx/rx + y1p*y1p/ry/ry)
}

// ellipseToCenter converts the endpoint parameterization of an
// elliptical arc to its center parameterization, returning the center
// (cx,cy), the start angle theta and the angular span dtheta, which is
// positive for sweep and negative otherwise. The radii must already be
// corrected with [EllipseRadiiCorrection].
// See https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func ellipseToCenter(x1, y1, rx, ry, phi float32, large, sweep bool, x2, y2 float32) (cx, cy, theta, dtheta float32) {
	if Equal(x1, x2) && Equal(y1, y2) {
		return x1, y1, 0.0, 0.0
	}
	sinphi, cosphi := math32.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	sq := float32(0.0)
	if Epsilon < num && !Equal(den, 0.0) {
		sq = num / den
	}
	coef := math32.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx = cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy = sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry
	theta = math32.Atan2(uy, ux)
	dtheta = AngleNorm(math32.Atan2(vy, vx) - theta)
	if !sweep && 0.0 < dtheta {
		dtheta -= 2.0 * math32.Pi
	}
	return
}

// ellipseToCubicBeziers converts the elliptical arc from start to end
// into cubic Béziers of at most 90 degrees each. Every returned segment
// holds its start point, two control points and end point.
func ellipseToCubicBeziers(start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2) [][4]math32.Vector2 {
	cx, cy, theta0, dtheta := ellipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
	if Equal(dtheta, 0.0) {
		return nil
	}
	n := int(math32.Ceil(math32.Abs(dtheta) / (math32.Pi / 2.0) * (1.0 - Epsilon)))
	if n < 1 {
		n = 1
	}
	da := dtheta / float32(n)
	kappa := 4.0 / 3.0 * math32.Tan(da/4.0)

	beziers := make([][4]math32.Vector2, 0, n)
	p0 := start
	for i := 0; i < n; i++ {
		t0 := theta0 + float32(i)*da
		t1 := t0 + da
		p3 := EllipsePos(rx, ry, phi, cx, cy, t1)
		if i == n-1 {
			p3 = end
		}
		p1 := p0.Add(ellipseDeriv(rx, ry, phi, t0).MulScalar(kappa))
		p2 := p3.Sub(ellipseDeriv(rx, ry, phi, t1).MulScalar(kappa))
		beziers = append(beziers, [4]math32.Vector2{p0, p1, p2, p3})
		p0 = p3
	}
	return beziers
}
