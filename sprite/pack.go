// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"errors"
	"image"
	"math"
	"slices"
)

// DefaultMaxAreaFactor is the default limit on the sheet area,
// as a multiple of the summed area of the sprites.
const DefaultMaxAreaFactor = 50

// ErrPackOverflow is returned when the sprites cannot be packed within
// the maximum sheet area.
var ErrPackOverflow = errors.New("could not pack the sprites within the maximum sheet area")

// Pack places rectangles of the given sizes into a square bin with
// shelf packing: tallest first, left to right in rows. The side of the
// bin starts at the smallest square that could hold the total area and
// grows until everything fits, up to a bin area of maxAreaFactor times
// the total area. It returns the top-left position of each rectangle,
// in the order of sizes, and the extent actually used.
func Pack(sizes []image.Point, maxAreaFactor int) ([]image.Point, image.Point, error) {
	if len(sizes) == 0 {
		return nil, image.Point{}, nil
	}
	if maxAreaFactor < 1 {
		maxAreaFactor = DefaultMaxAreaFactor
	}
	area, maxDim := 0, 0
	for _, s := range sizes {
		area += s.X * s.Y
		maxDim = max(maxDim, s.X, s.Y)
	}
	order := make([]int, len(sizes))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if sizes[a].Y != sizes[b].Y {
			return sizes[b].Y - sizes[a].Y
		}
		return sizes[b].X - sizes[a].X
	})

	side := max(int(math.Ceil(math.Sqrt(float64(area)))), maxDim)
	pos := make([]image.Point, len(sizes))
	for side*side <= maxAreaFactor*area {
		if extent, ok := shelves(sizes, order, side, pos); ok {
			return pos, extent, nil
		}
		side += max(1, side/8)
	}
	return nil, image.Point{}, ErrPackOverflow
}

// shelves tries to pack into a square of the given side, setting pos.
func shelves(sizes []image.Point, order []int, side int, pos []image.Point) (image.Point, bool) {
	var x, y, shelf int
	var extent image.Point
	for _, i := range order {
		s := sizes[i]
		if x+s.X > side {
			y += shelf
			x, shelf = 0, 0
		}
		if x+s.X > side || y+s.Y > side {
			return image.Point{}, false
		}
		pos[i] = image.Pt(x, y)
		x += s.X
		shelf = max(shelf, s.Y)
		extent.X = max(extent.X, x)
		extent.Y = max(extent.Y, y+s.Y)
	}
	return extent, true
}
