// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/iconsheet/math32"
	"cogentcore.org/iconsheet/ppath"
)

// Node is the interface for all nodes of a drawable [Tree].
type Node interface {
	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to the base-level data without type switches.
	AsNodeBase() *NodeBase

	// SVGName returns the SVG element name the node was built from
	// (e.g., "rect", "path", "g" etc).
	SVGName() string
}

// NodeBase is the base type for all nodes of a drawable [Tree].
type NodeBase struct {
	// ID is the id attribute of the source element, if any.
	ID string

	// Element is the name of the source element.
	Element string

	// Transform is the absolute transform from the node's local
	// coordinates to the document's user space.
	Transform math32.Matrix2
}

// AsNodeBase returns the node base itself.
func (nb *NodeBase) AsNodeBase() *NodeBase { return nb }

// SVGName returns the source element name.
func (nb *NodeBase) SVGName() string { return nb.Element }

// Group is a container of drawable children: the root svg element,
// g, a, switch, nested svg, and the instantiation of a use element.
type Group struct {
	NodeBase

	// Children are the drawable children, in document order.
	Children []Node
}

// Path is a drawable shape. All of the basic shapes (rect, circle,
// ellipse, line, polyline, polygon) become paths.
type Path struct {
	NodeBase

	// Data is the path geometry, already transformed into
	// absolute user space coordinates.
	Data ppath.Path
}

// Image is an image element. It is kept in the tree but does not
// contribute to bounding boxes.
type Image struct {
	NodeBase

	// Rect is the image rectangle in local coordinates.
	Rect math32.Box2

	// Href is the image reference.
	Href string
}

// Text is a text element with its character content.
// It does not contribute to bounding boxes.
type Text struct {
	NodeBase

	// Text is the concatenated character content.
	Text string
}
