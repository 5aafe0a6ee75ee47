// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmltree provides a small mutable XML element tree that keeps
// attribute order, used to slice a master SVG document into standalone
// icon documents: parse, clone, strip text, look up children, and write.
package xmltree

import (
	"slices"

	"cogentcore.org/iconsheet/base/ordmap"
)

// Node is an item in an [Element]'s children: either an [*Element]
// or a [*CharData].
type Node interface {
	// CloneNode returns a deep copy of the node.
	CloneNode() Node
}

// CharData is a run of character data (text or CDATA content).
type CharData struct {
	Text string
}

// CloneNode returns a copy of the char data.
func (cd *CharData) CloneNode() Node {
	return &CharData{Text: cd.Text}
}

// Element is an XML element with ordered attributes and children.
// Namespace prefixes are kept as part of names, so an
// xlink:href attribute is named "xlink:href".
type Element struct {
	// Name is the tag name, including any namespace prefix.
	Name string

	// Attrs are the attributes in document order.
	Attrs ordmap.Map[string, string]

	// Children are the child elements and char data in document order.
	Children []Node
}

// NewElement returns a new element with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// CloneNode returns a deep copy of the element as a [Node].
func (e *Element) CloneNode() Node {
	return e.Clone()
}

// Clone returns a deep copy of the element and its entire subtree.
// The copy shares nothing with the original.
func (e *Element) Clone() *Element {
	c := &Element{Name: e.Name}
	c.Attrs = *e.Attrs.Clone()
	if len(e.Children) > 0 {
		c.Children = make([]Node, len(e.Children))
		for i, ch := range e.Children {
			c.Children[i] = ch.CloneNode()
		}
	}
	return c
}

// Attr returns the value of the given attribute, or "" if it is not set.
func (e *Element) Attr(name string) string {
	return e.Attrs.ValueByKey(name)
}

// AttrTry returns the value of the given attribute and whether it is set.
func (e *Element) AttrTry(name string) (string, bool) {
	return e.Attrs.ValueByKeyTry(name)
}

// SetAttr sets the given attribute, keeping its position if it already exists.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attrs.Add(name, value)
	return e
}

// RemoveAttr removes the given attribute, returning false if it was not set.
func (e *Element) RemoveAttr(name string) bool {
	return e.Attrs.DeleteByKey(name)
}

// AddChild appends the given node to the children.
func (e *Element) AddChild(n Node) *Element {
	e.Children = append(e.Children, n)
	return e
}

// AddText appends a char data child with the given text.
func (e *Element) AddText(text string) *Element {
	return e.AddChild(&CharData{Text: text})
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, ch := range e.Children {
		if ce, ok := ch.(*Element); ok && ce.Name == name {
			return ce
		}
	}
	return nil
}

// ChildElements returns the child elements, skipping char data.
func (e *Element) ChildElements() []*Element {
	var els []*Element
	for _, ch := range e.Children {
		if ce, ok := ch.(*Element); ok {
			els = append(els, ce)
		}
	}
	return els
}

// FirstText returns the first char data child, or nil if there is none.
func (e *Element) FirstText() *CharData {
	for _, ch := range e.Children {
		if cd, ok := ch.(*CharData); ok {
			return cd
		}
	}
	return nil
}

// Text returns the concatenated text of the direct char data children.
func (e *Element) Text() string {
	s := ""
	for _, ch := range e.Children {
		if cd, ok := ch.(*CharData); ok {
			s += cd.Text
		}
	}
	return s
}

// StripText removes all char data nodes from the element and,
// recursively, from all of its descendants. Elements are kept.
func (e *Element) StripText() {
	e.Children = slices.DeleteFunc(e.Children, func(n Node) bool {
		_, ok := n.(*CharData)
		return ok
	})
	for _, ch := range e.Children {
		ch.(*Element).StripText()
	}
}

// FindID returns the first element in the subtree, in document order,
// whose id attribute is the given id, or nil.
func (e *Element) FindID(id string) *Element {
	if v, ok := e.AttrTry("id"); ok && v == id {
		return e
	}
	for _, ch := range e.Children {
		if ce, ok := ch.(*Element); ok {
			if f := ce.FindID(id); f != nil {
				return f
			}
		}
	}
	return nil
}
