// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"errors"

	"cogentcore.org/iconsheet/math32"
)

// ErrNoDrawable is returned by [Union] when there are no boxes,
// i.e. when a document has nothing drawable.
var ErrNoDrawable = errors.New("no drawable paths")

// BBoxes appends the bounding box of every path under the given node
// to boxes, in document order. A path contributes its tight bounding
// box in absolute coordinates, a group recurses into its children,
// and every other node kind is ignored.
func BBoxes(n Node, boxes *[]math32.Box2) {
	switch nd := n.(type) {
	case *Path:
		*boxes = append(*boxes, nd.Data.Bounds())
	case *Group:
		for _, ch := range nd.Children {
			BBoxes(ch, boxes)
		}
	}
}

// Union returns the smallest box containing all of the given boxes.
// It returns [ErrNoDrawable] for an empty slice.
func Union(boxes []math32.Box2) (math32.Box2, error) {
	if len(boxes) == 0 {
		return math32.Box2{}, ErrNoDrawable
	}
	u := boxes[0]
	for _, b := range boxes[1:] {
		u = u.Union(b)
	}
	return u, nil
}

// BBox returns the union of the bounding boxes of all paths in the tree.
func (tr *Tree) BBox() (math32.Box2, error) {
	var boxes []math32.Box2
	BBoxes(tr.Root, &boxes)
	return Union(boxes)
}
