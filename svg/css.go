// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/iconsheet/base/errors"
	"cogentcore.org/iconsheet/xmltree"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// StyleSheet holds the rules of a CSS style sheet that have simple
// selectors: an optional type or *, followed by any number of .class
// and #id parts. Rules with combinators, attribute selectors or pseudo
// classes, and all at-rules, are skipped.
type StyleSheet struct {
	rules []styleRule
}

type selector struct {
	tag     string
	id      string
	classes []string
}

type styleRule struct {
	sel         selector
	specificity int
	order       int
	decls       []*css.Declaration
}

// ParseStyleSheet parses the given CSS text.
func ParseStyleSheet(text string) (*StyleSheet, error) {
	pss, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("svg.ParseStyleSheet: %w", err)
	}
	ss := &StyleSheet{}
	ss.add(pss)
	return ss, nil
}

func (ss *StyleSheet) add(pss *css.Stylesheet) {
	for _, r := range pss.Rules {
		if r.Kind == css.AtRule || len(r.Declarations) == 0 {
			continue // not supported
		}
		for _, s := range r.Selectors {
			sel, ok := parseSelector(s)
			if !ok {
				continue
			}
			ss.rules = append(ss.rules, styleRule{sel: sel, specificity: sel.specificity(), order: len(ss.rules), decls: r.Declarations})
		}
	}
}

// Len returns the number of usable rules.
func (ss *StyleSheet) Len() int {
	return len(ss.rules)
}

func parseSelector(s string) (selector, bool) {
	s = strings.TrimSpace(s)
	var sel selector
	if s == "" || strings.ContainsAny(s, " \t\n>+~:[") {
		return sel, false
	}
	i := strings.IndexAny(s, ".#")
	if i < 0 {
		i = len(s)
	}
	sel.tag = s[:i]
	if sel.tag == "*" {
		sel.tag = ""
	}
	for i < len(s) {
		kind := s[i]
		j := strings.IndexAny(s[i+1:], ".#")
		if j < 0 {
			j = len(s)
		} else {
			j += i + 1
		}
		name := s[i+1 : j]
		if name == "" {
			return sel, false
		}
		if kind == '#' {
			sel.id = name
		} else {
			sel.classes = append(sel.classes, name)
		}
		i = j
	}
	return sel, true
}

func (sel selector) specificity() int {
	sp := 10 * len(sel.classes)
	if sel.id != "" {
		sp += 100
	}
	if sel.tag != "" {
		sp++
	}
	return sp
}

func (sel selector) matches(e *xmltree.Element) bool {
	if sel.tag != "" && sel.tag != e.Name {
		return false
	}
	if sel.id != "" && sel.id != e.Attr("id") {
		return false
	}
	if len(sel.classes) > 0 {
		have := strings.Fields(e.Attr("class"))
		for _, c := range sel.classes {
			if !slices.Contains(have, c) {
				return false
			}
		}
	}
	return true
}

// Declarations returns the declarations of all rules matching the
// element, in cascade order: ascending specificity, then source order.
func (ss *StyleSheet) Declarations(e *xmltree.Element) []*css.Declaration {
	var matched []*styleRule
	for i := range ss.rules {
		if ss.rules[i].sel.matches(e) {
			matched = append(matched, &ss.rules[i])
		}
	}
	slices.SortStableFunc(matched, func(a, b *styleRule) int {
		if a.specificity != b.specificity {
			return a.specificity - b.specificity
		}
		return a.order - b.order
	})
	var decls []*css.Declaration
	for _, r := range matched {
		decls = append(decls, r.decls...)
	}
	return decls
}

// Inline writes the declarations of the rules matching each element of
// the subtree into its style attribute. Existing inline declarations
// keep precedence over the sheet, except for !important sheet
// declarations, which are written after them.
func (ss *StyleSheet) Inline(root *xmltree.Element) {
	if len(ss.rules) == 0 {
		return
	}
	decls := ss.Declarations(root)
	if len(decls) > 0 {
		var normal, important []string
		for _, d := range decls {
			if d.Important {
				important = append(important, d.Property+":"+d.Value)
			} else {
				normal = append(normal, d.Property+":"+d.Value)
			}
		}
		parts := normal
		if inline := strings.TrimSpace(root.Attr("style")); inline != "" {
			parts = append(parts, strings.TrimSuffix(inline, ";"))
		}
		parts = append(parts, important...)
		root.SetAttr("style", strings.Join(parts, ";"))
	}
	for _, ch := range root.ChildElements() {
		ss.Inline(ch)
	}
}

// InlineStyles parses the text of every style element in the document,
// in document order, and inlines the resulting rules into the style
// attributes of all elements. The style elements themselves are kept.
func InlineStyles(root *xmltree.Element) error {
	ss := &StyleSheet{}
	var err error
	walkElements(root, func(e *xmltree.Element) {
		if e.Name != "style" || err != nil {
			return
		}
		var pss *css.Stylesheet
		pss, err = parser.Parse(e.Text())
		if err == nil {
			ss.add(pss)
		}
	})
	if err != nil {
		return fmt.Errorf("svg.InlineStyles: %w", err)
	}
	ss.Inline(root)
	return nil
}

func walkElements(e *xmltree.Element, fun func(e *xmltree.Element)) {
	fun(e)
	for _, ch := range e.ChildElements() {
		walkElements(ch, fun)
	}
}

// parseDeclarations parses an inline style attribute value.
// Invalid styles are logged and ignored.
func parseDeclarations(style string) []*css.Declaration {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil
	}
	// the parser is strict about semicolons, but
	// they aren't needed at the end of inline styles
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if errors.Log(err) != nil {
		return nil
	}
	return decls
}
