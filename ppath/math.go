// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/iconsheet/math32"
)

// Epsilon is the smallest number below which we assume the value to be zero.
// This is to avoid numerical floating point issues.
var Epsilon = float32(1e-5)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if both coordinates of a and b are [Equal].
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// AngleNorm returns the angle theta in the range [0,2PI).
func AngleNorm(theta float32) float32 {
	theta = math32.Mod(theta, 2.0*math32.Pi)
	if theta < 0.0 {
		theta += 2.0 * math32.Pi
	}
	return theta
}

// solveQuadraticFormula returns the real roots of a*x^2 + b*x + c = 0,
// in increasing order. A zero a falls back to the linear solution.
func solveQuadraticFormula(a, b, c float32) (float32, float32, int) {
	if Equal(a, 0.0) {
		if Equal(b, 0.0) {
			return 0.0, 0.0, 0
		}
		return -c / b, 0.0, 1
	}
	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return 0.0, 0.0, 0
	} else if Equal(discriminant, 0.0) {
		return -b / (2.0 * a), 0.0, 1
	}
	sqrt := math32.Sqrt(discriminant)
	x1 := (-b + sqrt) / (2.0 * a)
	x2 := (-b - sqrt) / (2.0 * a)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2, 2
}

// quadraticBezierPos returns the point at t on the quadratic Bézier p0,p1,p2.
func quadraticBezierPos(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	p0 = p0.MulScalar(1.0 - 2.0*t + t*t)
	p1 = p1.MulScalar(2.0*t - 2.0*t*t)
	p2 = p2.MulScalar(t * t)
	return p0.Add(p1).Add(p2)
}

// cubicBezierPos returns the point at t on the cubic Bézier p0,p1,p2,p3.
func cubicBezierPos(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	p0 = p0.MulScalar(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.MulScalar(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.MulScalar(3.0*t*t - 3.0*t*t*t)
	p3 = p3.MulScalar(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}
