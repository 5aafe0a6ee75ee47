// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"slices"

	"cogentcore.org/iconsheet/math32"
	"cogentcore.org/iconsheet/svg"
	"cogentcore.org/iconsheet/xmltree"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrNoViewBox is returned by [Rasterize] for documents without a valid viewBox.
var ErrNoViewBox = errors.New("document has no valid viewBox")

// Size returns the pixel size of an icon with the given viewBox size at
// the given pixel ratio: the size rounded up, times the ratio.
func Size(size math32.Vector2, ratio int) image.Point {
	return image.Pt(int(math32.Ceil(size.X))*ratio, int(math32.Ceil(size.Y))*ratio)
}

// Rasterize renders the given SVG document at the given pixel ratio,
// with the viewBox mapped onto the whole image (see [Size]).
// Rules of style elements are inlined first and the style elements
// removed, as the rasterizer only understands simple class rules.
func Rasterize(data []byte, ratio int) (*image.RGBA, error) {
	if ratio < 1 {
		return nil, fmt.Errorf("sprite.Rasterize: invalid pixel ratio %d", ratio)
	}
	root, err := xmltree.ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("sprite.Rasterize: %w", err)
	}
	vb := root.Attr("viewBox")
	if _, err := svg.ParseViewBox(vb); err != nil {
		return nil, fmt.Errorf("sprite.Rasterize: %w: %w", ErrNoViewBox, err)
	}
	vals, _ := math32.ParseFloats(vb)
	// width and height as written, not max - min
	sz := Size(math32.Vec2(vals[2], vals[3]), ratio)
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, fmt.Errorf("sprite.Rasterize: %w: empty size %v", ErrNoViewBox, sz)
	}
	if err := svg.InlineStyles(root); err != nil {
		return nil, fmt.Errorf("sprite.Rasterize: %w", err)
	}
	removeStyles(root)

	icon, err := oksvg.ReadIconStream(bytes.NewReader(root.Bytes()), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("sprite.Rasterize: %w", err)
	}
	icon.SetTarget(0, 0, float64(sz.X), float64(sz.Y))
	img := image.NewRGBA(image.Rectangle{Max: sz})
	scanner := rasterx.NewScannerGV(sz.X, sz.Y, img, img.Bounds())
	raster := rasterx.NewDasher(sz.X, sz.Y, scanner)
	icon.Draw(raster, 1)
	return img, nil
}

func removeStyles(e *xmltree.Element) {
	e.Children = slices.DeleteFunc(e.Children, func(n xmltree.Node) bool {
		ce, ok := n.(*xmltree.Element)
		return ok && ce.Name == "style"
	})
	for _, ch := range e.ChildElements() {
		removeStyles(ch)
	}
}
