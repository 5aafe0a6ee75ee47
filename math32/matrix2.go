// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Matrix2 is a 3x2 matrix for 2D affine transforms, in the order
// of the SVG matrix(a, b, c, d, e, f) function. A point is transformed as
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 scaling matrix by given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
// This uses the standard graphics convention where increasing Y goes _down_ instead
// of up, in contrast with the mathematical coordinate system where Y is up.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Skew2D returns a Matrix2 2D matrix with given skew angles in radians.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{
		1, Tan(y),
		Tan(x), 1,
		0, 0,
	}
}

// IsIdentity returns true if this is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a*b: the result applies b first and then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Det returns the determinant of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	return Matrix2{
		XX: a.YY / det,
		YX: -a.YX / det,
		XY: -a.XY / det,
		YY: a.XX / det,
		X0: (a.XY*a.Y0 - a.YY*a.X0) / det,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) / det,
	}
}

var errTransformSyntax = errors.New("invalid transform syntax")

// SetString processes the standard SVG-style transform strings,
// e.g. "translate(10, 5) rotate(45)", composing each function in
// order into the matrix. An empty string or "none" is the identity.
// On error the matrix is set to the identity.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.TrimSpace(str)
	if str == "" || str == "none" {
		return nil
	}
	res := Identity2()
	rest := str
	for {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if rest == "" {
			break
		}
		op, after, ok := strings.Cut(rest, "(")
		if !ok {
			return fmt.Errorf("math32.Matrix2.SetString: %w: %q", errTransformSyntax, str)
		}
		args, tail, ok := strings.Cut(after, ")")
		if !ok {
			return fmt.Errorf("math32.Matrix2.SetString: %w: %q", errTransformSyntax, str)
		}
		rest = tail
		vals, err := ParseFloats(args)
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %w", err)
		}
		m, err := transformFunc(strings.TrimSpace(op), vals)
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %w", err)
		}
		res = res.Mul(m)
	}
	*a = res
	return nil
}

// transformFunc returns the matrix for one SVG transform function.
func transformFunc(op string, v []float32) (Matrix2, error) {
	n := len(v)
	switch strings.ToLower(op) {
	case "matrix":
		if n == 6 {
			return Matrix2{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
		}
	case "translate":
		if n == 1 {
			return Translate2D(v[0], 0), nil
		}
		if n == 2 {
			return Translate2D(v[0], v[1]), nil
		}
	case "translatex":
		if n == 1 {
			return Translate2D(v[0], 0), nil
		}
	case "translatey":
		if n == 1 {
			return Translate2D(0, v[0]), nil
		}
	case "scale":
		if n == 1 {
			return Scale2D(v[0], v[0]), nil
		}
		if n == 2 {
			return Scale2D(v[0], v[1]), nil
		}
	case "rotate":
		if n == 1 {
			return Rotate2D(DegToRad(v[0])), nil
		}
		if n == 3 {
			return Translate2D(v[1], v[2]).Mul(Rotate2D(DegToRad(v[0]))).Mul(Translate2D(-v[1], -v[2])), nil
		}
	case "skewx":
		if n == 1 {
			return Skew2D(DegToRad(v[0]), 0), nil
		}
	case "skewy":
		if n == 1 {
			return Skew2D(0, DegToRad(v[0])), nil
		}
	default:
		return Identity2(), fmt.Errorf("%w: unknown function %q", errTransformSyntax, op)
	}
	return Identity2(), fmt.Errorf("%w: %s takes a different number of arguments than %d", errTransformSyntax, op, n)
}

// ParseFloats parses a list of numbers separated by whitespace and/or
// commas, as used in SVG attributes such as points and viewBox.
// Numbers may also run together when the next one starts with a sign
// or a second decimal point, e.g. "1-2.5.5".
func ParseFloats(s string) ([]float32, error) {
	b := []byte(s)
	var vals []float32
	for i := 0; i < len(b); {
		c := b[i]
		if c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return vals, fmt.Errorf("invalid number at %q", s[i:])
		}
		vals = append(vals, float32(f))
		i += n
	}
	return vals, nil
}

// String returns the XML-based string representation of the transform
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 { // no rotation, emit scale and translate
		str := ""
		if a.X0 != 0 || a.Y0 != 0 {
			str += fmt.Sprintf("translate(%s,%s)", FormatFloat(a.X0), FormatFloat(a.Y0))
		}
		if a.XX != 1 || a.YY != 1 {
			if str != "" {
				str += " "
			}
			str += fmt.Sprintf("scale(%s,%s)", FormatFloat(a.XX), FormatFloat(a.YY))
		}
		return str
	}
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", FormatFloat(a.XX), FormatFloat(a.YX), FormatFloat(a.XY), FormatFloat(a.YY), FormatFloat(a.X0), FormatFloat(a.Y0))
}
