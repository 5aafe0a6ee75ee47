// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func tolAssertEqualVector(t *testing.T, vt, va Vector2) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, standardTol)
	assert.InDelta(t, vt.Y, va.Y, standardTol)
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity2().MulVector2AsPoint(vy))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, v0, Translate2D(1, 1).MulVector2AsVector(v0))

	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))  // left
	tolAssertEqualVector(t, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy)) // right
	tolAssertEqualVector(t, vxy.Normal(), Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))

	tolAssertEqualVector(t, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))
	tolAssertEqualVector(t, vxy, Translate2D(3, 4).Inverse().MulVector2AsPoint(Vec2(4, 5)))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	tolAssertEqualVector(t, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))
}

func TestMatrix2SetString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    Matrix2
	}{
		{
			str:  "none",
			want: Identity2(),
		},
		{
			str:  "",
			want: Identity2(),
		},
		{
			str:  "matrix(1, 2, 3, 4, 5, 6)",
			want: Matrix2{1, 2, 3, 4, 5, 6},
		},
		{
			str:  "translate(1, 2)",
			want: Matrix2{XX: 1, YX: 0, XY: 0, YY: 1, X0: 1, Y0: 2},
		},
		{
			str:  "translate(7)",
			want: Translate2D(7, 0),
		},
		{
			str:  "scale(3)",
			want: Scale2D(3, 3),
		},
		{
			str:  "translate(1 2) scale(2,3)",
			want: Matrix2{XX: 2, YY: 3, X0: 1, Y0: 2},
		},
		{
			str:  "translate(1-2)",
			want: Translate2D(1, -2),
		},
		{
			str:     "invalid(1, 2)",
			wantErr: true,
			want:    Identity2(),
		},
		{
			str:     "translate(1, 2",
			wantErr: true,
			want:    Identity2(),
		},
		{
			str:     "rotate(1, 2)",
			wantErr: true,
			want:    Identity2(),
		},
	}

	for _, tt := range tests {
		a := &Matrix2{}
		err := a.SetString(tt.str)
		if tt.wantErr {
			assert.Error(t, err, tt.str)
		} else {
			assert.NoError(t, err, tt.str)
		}
		assert.Equal(t, tt.want, *a, tt.str)
	}
}

func TestMatrix2RotateAbout(t *testing.T) {
	var m Matrix2
	assert.NoError(t, m.SetString("rotate(90 10 10)"))
	tolAssertEqualVector(t, Vec2(10, 10), m.MulVector2AsPoint(Vec2(10, 10)))
	tolAssertEqualVector(t, Vec2(10, 11), m.MulVector2AsPoint(Vec2(11, 10)))
}

func TestMatrix2String(t *testing.T) {
	tests := []struct {
		matrix Matrix2
		want   string
	}{
		{
			matrix: Identity2(),
			want:   "none",
		},
		{
			matrix: Matrix2{XX: 1, YX: 2, XY: 3, YY: 4, X0: 5, Y0: 6},
			want:   "matrix(1,2,3,4,5,6)",
		},
		{
			matrix: Matrix2{XX: 2, XY: 0, YX: 0, YY: 2, X0: 0, Y0: 0},
			want:   "scale(2,2)",
		},
		{
			matrix: Matrix2{XX: 1, XY: 0, YX: 0, YY: 1, X0: 1, Y0: 2},
			want:   "translate(1,2)",
		},
		{
			matrix: Matrix2{XX: 2, XY: 0, YX: 0, YY: 2, X0: 1, Y0: 2},
			want:   "translate(1,2) scale(2,2)",
		},
	}

	for _, tt := range tests {
		got := tt.matrix.String()
		assert.Equal(t, tt.want, got)
	}
}

func TestParseFloats(t *testing.T) {
	vals, err := ParseFloats("0,0 10.5 -3e1\t.5.5")
	assert.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 10.5, -30, 0.5, 0.5}, vals)

	_, err = ParseFloats("1 x 2")
	assert.Error(t, err)
}
