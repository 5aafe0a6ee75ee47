// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"cogentcore.org/iconsheet/math32"
	"cogentcore.org/iconsheet/ppath"
	"cogentcore.org/iconsheet/xmltree"
	"github.com/tdewolff/parse/v2/strconv"
)

// maxUseDepth limits nested use references, which also stops cycles.
const maxUseDepth = 32

// nonDrawable are the elements whose content is never rendered directly.
var nonDrawable = map[string]bool{
	"defs": true, "clipPath": true, "mask": true, "symbol": true, "style": true,
	"title": true, "desc": true, "metadata": true, "linearGradient": true,
	"radialGradient": true, "pattern": true, "filter": true, "marker": true,
	"script": true, "font": true, "font-face": true,
}

// state is the inherited state while building the tree.
type state struct {
	xf    math32.Matrix2
	depth int
}

// builder converts an element tree into a drawable [Tree].
type builder struct {
	root *xmltree.Element
}

// display returns the display property of the element, from its
// attribute overridden by its inline style.
func display(e *xmltree.Element) string {
	v := strings.TrimSpace(e.Attr("display"))
	for _, d := range parseDeclarations(e.Attr("style")) {
		if d.Property == "display" {
			v = strings.TrimSpace(d.Value)
		}
	}
	return v
}

// inherit applies the element's transform to the parent state.
// It returns false if the element is not displayed.
func (b *builder) inherit(e *xmltree.Element, st state) (state, bool, error) {
	if display(e) == "none" {
		return st, false, nil
	}
	if tr, ok := e.AttrTry("transform"); ok {
		var m math32.Matrix2
		if err := m.SetString(tr); err != nil {
			return st, false, fmt.Errorf("<%s> transform: %w", e.Name, err)
		}
		st.xf = st.xf.Mul(m)
	}
	return st, true, nil
}

// children converts the child elements of e into nodes.
func (b *builder) children(e *xmltree.Element, st state) ([]Node, error) {
	var nodes []Node
	for _, ce := range e.ChildElements() {
		n, err := b.node(ce, st)
		if err != nil {
			return nil, err
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// node converts one element, returning nil for anything not drawable.
func (b *builder) node(e *xmltree.Element, st state) (Node, error) {
	if nonDrawable[e.Name] {
		return nil, nil
	}
	st, ok, err := b.inherit(e, st)
	if err != nil || !ok {
		return nil, err
	}
	nb := NodeBase{ID: e.Attr("id"), Element: e.Name, Transform: st.xf}
	switch e.Name {
	case "g", "a", "switch":
		return b.group(e, nb, st)
	case "svg":
		x, y, err := xy(e)
		if err != nil {
			return nil, err
		}
		st.xf = st.xf.Mul(math32.Translate2D(x, y))
		nb.Transform = st.xf
		return b.group(e, nb, st)
	case "use":
		return b.use(e, nb, st)
	case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
		p, err := shape(e)
		if err != nil {
			return nil, err
		}
		if p.Empty() {
			return nil, nil
		}
		return &Path{NodeBase: nb, Data: p.Transform(st.xf)}, nil
	case "image":
		vals, err := lengths(e, "x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		href := e.Attr("href")
		if href == "" {
			href = e.Attr("xlink:href")
		}
		return &Image{NodeBase: nb, Rect: math32.B2(vals[0], vals[1], vals[0]+vals[2], vals[1]+vals[3]), Href: href}, nil
	case "text":
		return &Text{NodeBase: nb, Text: allText(e)}, nil
	}
	return nil, nil
}

func (b *builder) group(e *xmltree.Element, nb NodeBase, st state) (Node, error) {
	kids, err := b.children(e, st)
	if err != nil {
		return nil, err
	}
	return &Group{NodeBase: nb, Children: kids}, nil
}

// use instantiates the referenced element as a group translated by x, y.
// References to missing elements are ignored, as in browsers.
func (b *builder) use(e *xmltree.Element, nb NodeBase, st state) (Node, error) {
	href := e.Attr("href")
	if href == "" {
		href = e.Attr("xlink:href")
	}
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	if !ok || id == "" {
		return nil, nil
	}
	ref := b.root.FindID(id)
	if ref == nil {
		return nil, nil
	}
	if st.depth >= maxUseDepth {
		return nil, fmt.Errorf("<use> of %q: references nested too deeply or cyclic", id)
	}
	x, y, err := xy(e)
	if err != nil {
		return nil, err
	}
	st.xf = st.xf.Mul(math32.Translate2D(x, y))
	st.depth++
	nb.Transform = st.xf
	var kids []Node
	if ref.Name == "symbol" {
		sst, ok, err := b.inherit(ref, st)
		if err != nil || !ok {
			return nil, err
		}
		kids, err = b.children(ref, sst)
		if err != nil {
			return nil, err
		}
	} else {
		n, err := b.node(ref, st)
		if err != nil {
			return nil, err
		}
		if n != nil {
			kids = []Node{n}
		}
	}
	return &Group{NodeBase: nb, Children: kids}, nil
}

// shape returns the path geometry of a shape element in local coordinates.
func shape(e *xmltree.Element) (ppath.Path, error) {
	p := ppath.Path{}
	switch e.Name {
	case "path":
		d, err := ppath.ParseSVGPath(e.Attr("d"))
		if err != nil {
			return nil, fmt.Errorf("<path> d: %w", err)
		}
		return d, nil
	case "rect":
		v, err := lengths(e, "x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		rx, hasRx, err := optLength(e, "rx")
		if err != nil {
			return nil, err
		}
		ry, hasRy, err := optLength(e, "ry")
		if err != nil {
			return nil, err
		}
		if !hasRx {
			rx = ry
		}
		if !hasRy {
			ry = rx
		}
		if v[2] <= 0 || v[3] <= 0 {
			return p, nil
		}
		p.RoundedRectangle(v[0], v[1], v[2], v[3], rx, ry)
	case "circle":
		v, err := lengths(e, "cx", "cy", "r")
		if err != nil {
			return nil, err
		}
		if v[2] > 0 {
			p.Circle(v[0], v[1], v[2])
		}
	case "ellipse":
		v, err := lengths(e, "cx", "cy", "rx", "ry")
		if err != nil {
			return nil, err
		}
		if v[2] > 0 && v[3] > 0 {
			p.Ellipse(v[0], v[1], v[2], v[3])
		}
	case "line":
		v, err := lengths(e, "x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		p.MoveTo(v[0], v[1])
		p.LineTo(v[2], v[3])
	case "polyline", "polygon":
		pts, err := ppath.ParsePoints(e.Attr("points"))
		if err != nil {
			return nil, fmt.Errorf("<%s> points: %w", e.Name, err)
		}
		if e.Name == "polygon" {
			p.Polygon(pts...)
		} else {
			p.Polyline(pts...)
		}
	}
	return p, nil
}

// lengths returns the values of the given length attributes, with
// missing attributes being 0.
func lengths(e *xmltree.Element, names ...string) ([]float32, error) {
	vals := make([]float32, len(names))
	for i, nm := range names {
		v, _, err := optLength(e, nm)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// xy returns the x and y length attributes.
func xy(e *xmltree.Element) (x, y float32, err error) {
	v, err := lengths(e, "x", "y")
	if err != nil {
		return 0, 0, err
	}
	return v[0], v[1], nil
}

func optLength(e *xmltree.Element, name string) (float32, bool, error) {
	s, ok := e.AttrTry(name)
	if !ok || strings.TrimSpace(s) == "" {
		return 0, false, nil
	}
	v, err := ParseLength(s)
	if err != nil {
		return 0, false, fmt.Errorf("<%s> %s: %w", e.Name, name, err)
	}
	return v, true, nil
}

// unitFactors converts absolute units to user units (px) at 96 dpi.
var unitFactors = map[string]float32{
	"": 1, "px": 1, "pt": 96.0 / 72.0, "pc": 16, "mm": 96.0 / 25.4, "cm": 96.0 / 2.54, "in": 96,
}

// ParseLength parses an SVG length in user units. Absolute units are
// converted at 96 dpi; percentages and font-relative units are not
// supported and return an error.
func ParseLength(s string) (float32, error) {
	b := []byte(strings.TrimSpace(s))
	f, n := strconv.ParseFloat(b)
	if n == 0 {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	fac, ok := unitFactors[string(b[n:])]
	if !ok {
		return 0, fmt.Errorf("unsupported length unit in %q", s)
	}
	return float32(f) * fac, nil
}

func allText(e *xmltree.Element) string {
	var sb strings.Builder
	for _, ch := range e.Children {
		switch n := ch.(type) {
		case *xmltree.CharData:
			sb.WriteString(n.Text)
		case *xmltree.Element:
			sb.WriteString(allText(n))
		}
	}
	return sb.String()
}
