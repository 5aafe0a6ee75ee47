// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec2(10, 5))
	b.ExpandByPoint(Vec2(20, 15))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(10, 5, 20, 15), b)
	assert.Equal(t, Vec2(10, 10), b.Size())

	u := b.Union(B2(-1, 7, 3, 30))
	assert.Equal(t, B2(-1, 5, 20, 30), u)

	b.ExpandByScalar(0.5)
	assert.Equal(t, B2(9.5, 4.5, 20.5, 15.5), b)
	assert.Equal(t, "9.5 4.5 11 11", b.ViewBox())
}

func TestBox2MulMatrix2(t *testing.T) {
	b := B2(0, 0, 2, 1)
	assert.Equal(t, B2(5, 5, 7, 6), b.MulMatrix2(Translate2D(5, 5)))
	assert.Equal(t, B2(0, 0, 4, 3), b.MulMatrix2(Scale2D(2, 3)))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "11", FormatFloat(11))
	assert.Equal(t, "-0.5", FormatFloat(-0.5))
	assert.Equal(t, "0.1", FormatFloat(0.1))
	assert.Equal(t, "1000000", FormatFloat(1e6))
}
