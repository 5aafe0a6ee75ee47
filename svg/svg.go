// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"cogentcore.org/iconsheet/math32"
	"cogentcore.org/iconsheet/xmltree"
)

// Tree is a drawable tree built from an SVG document.
type Tree struct {
	// Root is the group for the root svg element.
	Root *Group

	// ViewBox is the root viewBox, if it has one.
	ViewBox math32.Box2

	// HasViewBox is whether the root element has a valid viewBox.
	HasViewBox bool
}

// Read parses the given SVG document bytes and builds its drawable tree.
func Read(data []byte) (*Tree, error) {
	root, err := xmltree.ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("svg.Read: %w", err)
	}
	tr, err := ReadElement(root)
	if err != nil {
		return nil, fmt.Errorf("svg.Read: %w", err)
	}
	return tr, nil
}

// ReadElement builds the drawable tree for the given root svg element.
// Rules of any style elements are applied to a copy of the document,
// so the given element is not modified.
// It returns an error if the root is not an svg element, or if any
// drawable element has invalid geometry or an invalid transform.
func ReadElement(root *xmltree.Element) (*Tree, error) {
	if root.Name != "svg" {
		return nil, fmt.Errorf("root element is <%s>, not <svg>", root.Name)
	}
	if hasStyle(root) {
		root = root.Clone()
		if err := InlineStyles(root); err != nil {
			return nil, err
		}
	}
	b := &builder{root: root}
	st := state{xf: math32.Identity2()}
	st, ok, err := b.inherit(root, st)
	if err != nil {
		return nil, err
	}
	tr := &Tree{Root: &Group{NodeBase: NodeBase{ID: root.Attr("id"), Element: root.Name, Transform: st.xf}}}
	if vb, has := root.AttrTry("viewBox"); has {
		if box, err := ParseViewBox(vb); err == nil {
			tr.ViewBox = box
			tr.HasViewBox = true
		}
	}
	if !ok {
		return tr, nil
	}
	tr.Root.Children, err = b.children(root, st)
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// hasStyle returns whether there is a style element anywhere in the subtree.
func hasStyle(e *xmltree.Element) bool {
	found := false
	walkElements(e, func(e *xmltree.Element) {
		found = found || e.Name == "style"
	})
	return found
}
