// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract slices a master SVG document, as exported from
// Illustrator, into standalone themed icon documents: one per named
// top-level group that the theme registry knows, cropped to the
// group's artwork and with the shared style recolored to the icon's
// flavor.
package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"cogentcore.org/iconsheet/colors"
	"cogentcore.org/iconsheet/svg"
	"cogentcore.org/iconsheet/theme"
	"cogentcore.org/iconsheet/xmltree"
)

// SVGNamespace is the default namespace of the output documents.
const SVGNamespace = "http://www.w3.org/2000/svg"

// DefaultMargin is the margin added around each icon's artwork.
const DefaultMargin = 0.5

// DefaultIgnore are the helper layers of the master document that are
// never icons. They are matched against both the raw group id and the
// resolved icon name.
var DefaultIgnore = []string{"priority", "guides", "categories", "in_tiles_now", "add_to_tiles"}

// DefaultRenames maps the names of icon variants to the registry name
// they are exported under.
var DefaultRenames = map[string]string{
	"townspot-s-rev": "townspot",
	"capital-s":      "capital",
}

// ErrNoDefs is returned when the master document has no top-level defs element.
var ErrNoDefs = errors.New("master document has no defs element")

// ErrNoRegistry is returned by [Extractor.Extract] without a theme registry.
var ErrNoRegistry = errors.New("no theme registry")

// Icon is one extracted icon.
type Icon struct {
	// Name is the registry name of the icon.
	Name string

	// Data is the standalone SVG document.
	Data []byte
}

// ArtworkError is an error in the artwork of one icon group, such as
// invalid path data or a group with nothing drawable.
type ArtworkError struct {
	// Name is the icon name.
	Name string

	// Err is the underlying error.
	Err error
}

func (e *ArtworkError) Error() string {
	return fmt.Sprintf("icon %q: %v", e.Name, e.Err)
}

func (e *ArtworkError) Unwrap() error { return e.Err }

// Skipped returns whether err only holds the [ArtworkError]s of icons
// that a non-strict [Extractor.Extract] skipped.
func Skipped(err error) bool {
	if err == nil {
		return false
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			if !Skipped(e) {
				return false
			}
		}
		return true
	}
	_, ok := err.(*ArtworkError)
	return ok
}

// Extractor extracts icons from master documents.
type Extractor struct {

	// Registry determines which groups are icons, and their flavors.
	Registry *theme.Registry

	// Ignore are the ids and names of groups that are never icons.
	Ignore []string

	// Renames maps resolved names to the names used for the registry
	// lookup and the output.
	Renames map[string]string

	// Strict makes Extract stop at the first [ArtworkError].
	// Otherwise the icon is logged and skipped, and all such errors
	// are returned joined together with the extracted icons.
	Strict bool

	// Margin is added on every side of the artwork bounding box.
	Margin float32

	// Blend is how the style colors are mapped onto the flavor's pair.
	Blend colors.BlendMode

	// Logger is used for debug and warning messages.
	// If it is nil, [slog.Default] is used.
	Logger *slog.Logger
}

// New returns a new strict extractor for the given registry, with the
// default margin, ignore list and renames.
func New(reg *theme.Registry) *Extractor {
	return &Extractor{
		Registry: reg,
		Ignore:   slices.Clone(DefaultIgnore),
		Renames:  maps.Clone(DefaultRenames),
		Strict:   true,
		Margin:   DefaultMargin,
	}
}

// Extract extracts the icons of the given master document with a
// default [Extractor]; see [New].
func Extract(master *xmltree.Element, reg *theme.Registry) ([]Icon, error) {
	return New(reg).Extract(master)
}

func (x *Extractor) logger() *slog.Logger {
	if x.Logger != nil {
		return x.Logger
	}
	return slog.Default()
}

// ExtractBytes parses the given master document and extracts its icons.
func (x *Extractor) ExtractBytes(data []byte) ([]Icon, error) {
	master, err := xmltree.ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return x.Extract(master)
}

// Name resolves the icon name of a group id: the first character,
// which Illustrator prepends to ids, is dropped and renames applied.
// It returns false if the group is not an icon: its id or name is
// ignored, or the name is not registered.
func (x *Extractor) Name(id string) (string, bool) {
	if x.Registry == nil || id == "" || slices.Contains(x.Ignore, id) {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(id)
	name := id[size:]
	if rn, ok := x.Renames[name]; ok {
		name = rn
	}
	if name == "" || slices.Contains(x.Ignore, name) || !x.Registry.Has(name) {
		return "", false
	}
	return name, true
}

// Extract returns the icons of the given master document, in document
// order. Each top-level g element with an id whose name resolves
// (see [Extractor.Name]) becomes one icon. The master is not modified.
// Errors other than [ArtworkError]s, such as [ErrNoDefs] or a registry
// lookup failure, always stop the extraction.
func (x *Extractor) Extract(master *xmltree.Element) ([]Icon, error) {
	if x.Registry == nil {
		return nil, ErrNoRegistry
	}
	defs := master.Child("defs")
	if defs == nil {
		return nil, ErrNoDefs
	}
	log := x.logger()
	var icons []Icon
	var errs []error
	for _, g := range master.ChildElements() {
		id, has := g.AttrTry("id")
		if g.Name != "g" || !has {
			continue
		}
		name, ok := x.Name(id)
		if !ok {
			log.Debug("skipping group", "id", id)
			continue
		}
		icon, err := x.icon(master, defs, g, name)
		if err != nil {
			var ae *ArtworkError
			if x.Strict || !errors.As(err, &ae) {
				return icons, err
			}
			log.Warn("skipping icon", "name", name, "err", ae.Err)
			errs = append(errs, err)
			continue
		}
		icons = append(icons, icon)
	}
	return icons, errors.Join(errs...)
}

// icon builds the document for one icon group. The bounding box is
// measured on a temporary document holding only the group, so that
// sibling groups never affect it.
func (x *Extractor) icon(master, defs, g *xmltree.Element, name string) (Icon, error) {
	group := g.Clone()
	group.StripText()

	ns := namespaces(master, group, defs)
	tmp := xmltree.NewElement("svg").SetAttr("xmlns", SVGNamespace)
	for _, kv := range ns {
		tmp.SetAttr(kv[0], kv[1])
	}
	tmp.AddChild(group)
	tree, err := svg.Read(tmp.Bytes())
	if err != nil {
		return Icon{}, &ArtworkError{Name: name, Err: err}
	}
	box, err := tree.BBox()
	if err != nil {
		return Icon{}, &ArtworkError{Name: name, Err: err}
	}
	box.ExpandByScalar(x.Margin)
	viewBox := box.ViewBox()

	root := xmltree.NewElement("svg").SetAttr("viewBox", viewBox).SetAttr("xmlns", SVGNamespace)
	for _, kv := range ns {
		root.SetAttr(kv[0], kv[1])
	}
	sdefs := defs.Clone()
	flavor, _ := x.Registry.Flavor(name)
	pair, ok, err := x.Registry.Pair(name)
	if err != nil {
		return Icon{}, err
	}
	if ok {
		if style := sdefs.Child("style"); style != nil {
			if cd := style.FirstText(); cd != nil {
				sh := &colors.Shader{Pair: pair, Mode: x.Blend}
				cd.Text = sh.Apply(cd.Text)
			}
		}
	}
	root.AddChild(sdefs)
	root.AddChild(group)

	x.logger().Debug("extracted icon", "name", name, "flavor", flavor, "viewBox", viewBox)
	return Icon{Name: name, Data: root.Bytes()}, nil
}

// namespaces returns the xmlns:prefix declarations of the master root
// for the prefixes used in the given elements, in master order.
func namespaces(master *xmltree.Element, els ...*xmltree.Element) [][2]string {
	used := map[string]bool{}
	for _, e := range els {
		usedPrefixes(e, used)
	}
	var ns [][2]string
	for _, kv := range master.Attrs.Order {
		prefix, ok := strings.CutPrefix(kv.Key, "xmlns:")
		if ok && used[prefix] {
			ns = append(ns, [2]string{kv.Key, kv.Value})
		}
	}
	return ns
}

func usedPrefixes(e *xmltree.Element, used map[string]bool) {
	if prefix, _, ok := strings.Cut(e.Name, ":"); ok {
		used[prefix] = true
	}
	for _, k := range e.Attrs.Keys() {
		if prefix, _, ok := strings.Cut(k, ":"); ok && prefix != "xmlns" && prefix != "xml" {
			used[prefix] = true
		}
	}
	for _, ch := range e.ChildElements() {
		usedPrefixes(ch, used)
	}
}
