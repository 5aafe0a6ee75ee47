// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg builds drawable trees from SVG documents and computes the
bounding boxes of their painted geometry.

Supported elements are path, rect, circle, ellipse, line, polyline,
polygon, g, a, switch and use. The transform and display properties
are applied. Bounds are of the geometry, whatever its paint or
visibility, and do not include stroke widths.
Style sheet rules of style elements with class, type and id selectors
are honored. Text and image elements are kept in the tree but add
nothing to the bounds. Content of defs and other non-rendered containers
is only drawn through use references.

The tree is not a renderer: rasterization is done by the sprite package.
*/
package svg
