// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"strings"

	"cogentcore.org/iconsheet/base/errors"
	"golang.org/x/net/html/charset"
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("no root element")

// entityDecl matches internal DTD entity declarations such as the
// <!ENTITY ns_svg "http://www.w3.org/2000/svg"> that Illustrator emits.
var entityDecl = errors.Must1(regexp.Compile(`<!ENTITY\s+([^\s%]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`))

// Open reads the XML document in the given file and returns its root element.
func Open(fname string) (*Element, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return root, nil
}

// ReadBytes reads the XML document in the given bytes and returns its root element.
func ReadBytes(b []byte) (*Element, error) {
	return Read(bytes.NewReader(b))
}

// Read reads an XML document and returns its root element.
// Namespace prefixes are kept in element and attribute names.
// Whitespace-only char data, comments, processing instructions
// and directives are dropped; other char data, including CDATA
// sections, becomes [CharData] children. Entities declared in an
// internal DOCTYPE subset are expanded, as are the HTML entities.
// Content after the root element is ignored.
func Read(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = maps.Clone(xml.HTMLEntity)

	var stack []*Element
	for {
		t, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree.Read: %w", err)
		}
		switch tt := t.(type) {
		case xml.StartElement:
			el := NewElement(qualName(tt.Name))
			for _, a := range tt.Attr {
				el.SetAttr(qualName(a.Name), a.Value)
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AddChild(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			name := qualName(tt.Name)
			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				return nil, fmt.Errorf("xmltree.Read: unexpected end element </%s> at line %d", name, lineOf(decoder))
			}
			if len(stack) == 1 {
				return stack[0], nil
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 || len(bytes.TrimSpace(tt)) == 0 {
				continue
			}
			stack[len(stack)-1].AddText(string(tt))
		case xml.Directive:
			if len(stack) == 0 {
				addEntities(decoder.Entity, string(tt))
			}
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("xmltree.Read: unexpected end of document inside <%s>", stack[len(stack)-1].Name)
	}
	return nil, fmt.Errorf("xmltree.Read: %w", ErrNoRoot)
}

func lineOf(d *xml.Decoder) int {
	line, _ := d.InputPos()
	return line
}

func qualName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// addEntities adds the entities declared in a DOCTYPE directive.
func addEntities(ents map[string]string, dir string) {
	if !strings.HasPrefix(dir, "DOCTYPE") {
		return
	}
	for _, m := range entityDecl.FindAllStringSubmatch(dir, -1) {
		if m[2] != "" {
			ents[m[1]] = m[2]
		} else {
			ents[m[1]] = m[3]
		}
	}
}
