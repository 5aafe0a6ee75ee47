// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)

	v.SetMin(Vec2(2, 10))
	assert.Equal(t, Vector2{2, 8.5}, v)
	v.SetMax(Vec2(3, 0))
	assert.Equal(t, Vector2{3, 8.5}, v)

	assert.Equal(t, Vector2{4, 6}, Vec2(1, 2).Add(Vec2(3, 4)))
	assert.Equal(t, Vector2{-2, -2}, Vec2(1, 2).Sub(Vec2(3, 4)))
	assert.Equal(t, float32(11), Vec2(1, 2).Dot(Vec2(3, 4)))
	assert.Equal(t, float32(-2), Vec2(1, 2).Cross(Vec2(3, 4)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, Vector2{0.6, 0.8}, Vec2(3, 4).Normal())
	assert.Equal(t, Vector2{}, Vector2{}.Normal())

	assert.Equal(t, image.Pt(11, 3), Vec2(10.2, 3).ToPointCeil())
}
