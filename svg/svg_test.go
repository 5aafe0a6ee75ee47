// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"cogentcore.org/iconsheet/math32"
	"cogentcore.org/iconsheet/xmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func doc(body string) []byte {
	return []byte(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">` + body + `</svg>`)
}

func bbox(t *testing.T, body string) math32.Box2 {
	t.Helper()
	tr, err := Read(doc(body))
	require.NoError(t, err, body)
	b, err := tr.BBox()
	require.NoError(t, err, body)
	return b
}

func assertBox(t *testing.T, want, got math32.Box2, msg ...any) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, tol, msg...)
	assert.InDelta(t, want.Min.Y, got.Min.Y, tol, msg...)
	assert.InDelta(t, want.Max.X, got.Max.X, tol, msg...)
	assert.InDelta(t, want.Max.Y, got.Max.Y, tol, msg...)
}

func TestBBoxShapes(t *testing.T) {
	want := math32.B2(10, 5, 20, 15)
	for _, body := range []string{
		`<g id="icon-a"><path d="M10 5 L20 15"/></g>`,
		`<path d="M10 5 H20 V15 H10 Z"/>`,
		`<rect x="10" y="5" width="10" height="10"/>`,
		`<rect x="10" y="5" width="10" height="10" rx="3"/>`,
		`<rect x="10px" y="5px" width="10px" height="10px"/>`,
		`<circle cx="15" cy="10" r="5"/>`,
		`<ellipse cx="15" cy="10" rx="5" ry="5"/>`,
		`<line x1="10" y1="5" x2="20" y2="15" stroke="#000"/>`,
		`<polyline points="10,5 20,10 15,15"/>`,
		`<polygon points="10 5 20 5 20 15 10 15"/>`,
		`<g><path d="M10 5 L12 7"/><g><path d="M18 13 L20 15"/></g></g>`,
	} {
		assertBox(t, want, bbox(t, body), body)
	}
}

func TestBBoxTransforms(t *testing.T) {
	want := math32.B2(10, 5, 20, 15)
	for _, body := range []string{
		`<g transform="translate(10,5)"><rect width="10" height="10"/></g>`,
		`<g transform="translate(10 5)"><g transform="scale(2)"><rect width="5" height="5"/></g></g>`,
		`<rect transform="matrix(1 0 0 1 10 5)" width="10" height="10"/>`,
		`<g transform="translate(20,0)"><rect transform="rotate(90)" x="5" y="0" width="10" height="10"/></g>`,
		`<defs><rect id="r" width="10" height="10"/></defs><use xlink:href="#r" x="10" y="5"/>`,
		`<defs><rect id="r" width="5" height="5"/></defs><use href="#r" transform="translate(10,5) scale(2)"/>`,
		`<symbol id="s"><rect width="10" height="10"/></symbol><use xlink:href="#s" x="10" y="5"/>`,
	} {
		assertBox(t, want, bbox(t, body), body)
	}
}

func TestBBoxIgnored(t *testing.T) {
	want := math32.B2(10, 5, 20, 15)
	for _, body := range []string{
		`<defs><rect width="100" height="100"/></defs><rect x="10" y="5" width="10" height="10"/>`,
		`<clipPath><rect width="100" height="100"/></clipPath><rect x="10" y="5" width="10" height="10"/>`,
		`<rect width="100" height="100" display="none"/><rect x="10" y="5" width="10" height="10"/>`,
		`<g style="display:none"><rect width="100" height="100"/></g><rect x="10" y="5" width="10" height="10"/>`,
		`<image width="100" height="100" href="x.png"/><text x="0" y="0">label</text><rect x="10" y="5" width="10" height="10"/>`,
		`<rect width="0" height="100"/><circle r="0"/><rect x="10" y="5" width="10" height="10"/>`,
		`<use xlink:href="#missing"/><rect x="10" y="5" width="10" height="10"/>`,
	} {
		assertBox(t, want, bbox(t, body), body)
	}
}

func TestBBoxStroked(t *testing.T) {
	// the stroke width does not count
	assertBox(t, math32.B2(10, 5, 20, 15), bbox(t, `<path fill="none" stroke="#000" stroke-width="4" d="M10 5 L20 15"/>`))
}

func TestBBoxUnpainted(t *testing.T) {
	// unpainted and hidden shapes are still geometry, such as the frames
	// that pad icons to a common size
	want := math32.B2(0, 0, 30, 30)
	for _, body := range []string{
		`<rect fill="none" width="30" height="30"/><path d="M10 5 L20 15"/>`,
		`<g fill="none"><rect width="30" height="30"/></g><path d="M10 5 L20 15"/>`,
		`<rect style="visibility:hidden" width="30" height="30"/><path d="M10 5 L20 15"/>`,
		`<rect visibility="hidden" width="30" height="30"/><path d="M10 5 L20 15"/>`,
	} {
		assertBox(t, want, bbox(t, body), body)
	}
	assertBox(t, math32.B2(10, 5, 20, 15), bbox(t, `<path fill="none" d="M10 5 L20 15"/>`))
}

func TestBBoxStyleSheet(t *testing.T) {
	body := `<style>.hide{display:none}.clear{fill:none}</style>` +
		`<rect class="hide" width="100" height="100"/>` +
		`<rect class="clear" x="10" y="5" width="10" height="10"/>`
	assertBox(t, math32.B2(10, 5, 20, 15), bbox(t, body))
}

func TestNoDrawable(t *testing.T) {
	for _, body := range []string{
		``,
		`<g id="empty"/>`,
		`<text>only text</text>`,
		`<path d=""/>`,
		`<path d="M10 10"/>`,
	} {
		tr, err := Read(doc(body))
		require.NoError(t, err, body)
		_, err = tr.BBox()
		assert.ErrorIs(t, err, ErrNoDrawable, body)
	}
	_, err := Union(nil)
	assert.ErrorIs(t, err, ErrNoDrawable)
}

func TestReadErrors(t *testing.T) {
	for _, data := range []string{
		`<svg><g></svg>`,
		`<html/>`,
		string(doc(`<path d="M10 L20"/>`)),
		string(doc(`<g transform="translate(a)"><rect width="1" height="1"/></g>`)),
		string(doc(`<rect width="10%" height="1"/>`)),
		string(doc(`<polygon points="1,2,x"/>`)),
	} {
		_, err := Read([]byte(data))
		assert.Error(t, err, data)
	}
	_, err := Read(doc(`<defs><g id="a"><use href="#a"/></g></defs><use href="#a"/>`))
	assert.ErrorContains(t, err, "cyclic")
}

func TestTree(t *testing.T) {
	tr, err := Read([]byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="9.5 4.5 11 11"><g id="icon-a"><path id="p" d="M10 5 L20 15"/><text>hi</text></g></svg>`))
	require.NoError(t, err)
	assert.True(t, tr.HasViewBox)
	assert.Equal(t, math32.B2(9.5, 4.5, 20.5, 15.5), tr.ViewBox)
	require.Len(t, tr.Root.Children, 1)
	g := tr.Root.Children[0].(*Group)
	assert.Equal(t, "icon-a", g.ID)
	assert.Equal(t, "g", g.SVGName())
	require.Len(t, g.Children, 2)
	assert.Equal(t, "p", g.Children[0].AsNodeBase().ID)
	assert.Equal(t, "hi", g.Children[1].(*Text).Text)

	var boxes []math32.Box2
	BBoxes(g, &boxes)
	assert.Len(t, boxes, 1)
	BBoxes(g.Children[1], &boxes)
	assert.Len(t, boxes, 1)
}

func TestReadElementKeepsInput(t *testing.T) {
	root, err := xmltree.ReadBytes(doc(`<style>.a{fill:none}</style><rect class="a" width="1" height="1"/>`))
	require.NoError(t, err)
	_, err = ReadElement(root)
	require.NoError(t, err)
	_, has := root.Child("rect").AttrTry("style")
	assert.False(t, has)
}

func TestUnion(t *testing.T) {
	u, err := Union([]math32.Box2{math32.B2(10, 5, 12, 7), math32.B2(18, 13, 20, 15), math32.B2(11, 6, 11, 6)})
	assert.NoError(t, err)
	assert.Equal(t, math32.B2(10, 5, 20, 15), u)
}

func TestParseLength(t *testing.T) {
	for s, want := range map[string]float32{"10": 10, " 10px ": 10, "1in": 96, "72pt": 96, "2.54cm": 96, "1e1": 10, "-3": -3} {
		v, err := ParseLength(s)
		assert.NoError(t, err, s)
		assert.InDelta(t, want, v, tol, s)
	}
	for _, s := range []string{"", "px", "10%", "1em", "1 0"} {
		_, err := ParseLength(s)
		assert.Error(t, err, s)
	}
}

func TestParseViewBox(t *testing.T) {
	b, err := ParseViewBox("9.5 4.5 11 11")
	assert.NoError(t, err)
	assert.Equal(t, math32.B2(9.5, 4.5, 20.5, 15.5), b)
	b, err = ParseViewBox("0,0,24,24")
	assert.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 24, 24), b)
	for _, s := range []string{"", "0 0 24", "0 0 -1 1", "a b c d"} {
		_, err := ParseViewBox(s)
		assert.Error(t, err, s)
	}
}
