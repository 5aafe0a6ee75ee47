// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmltree

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// Header is the XML declaration written before the root element.
const Header = `<?xml version="1.0" encoding="UTF-8"?>`

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;")
)

// Write writes the element as a complete XML document, preceded by
// [Header]. Attributes are written in order and char data is written
// as escaped text. Elements without children are self-closed.
// Output is compact: no indentation is added.
func (e *Element) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Header)
	e.write(bw)
	return bw.Flush()
}

// Bytes returns the element written as a complete XML document with [Element.Write].
func (e *Element) Bytes() []byte {
	var b bytes.Buffer
	e.Write(&b) // writes to a bytes.Buffer never fail
	return b.Bytes()
}

// Save writes the element as a complete XML document to the given file.
func (e *Element) Save(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = e.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (e *Element) write(w *bufio.Writer) {
	w.WriteByte('<')
	w.WriteString(e.Name)
	for _, kv := range e.Attrs.Order {
		w.WriteByte(' ')
		w.WriteString(kv.Key)
		w.WriteString(`="`)
		attrEscaper.WriteString(w, kv.Value)
		w.WriteByte('"')
	}
	if len(e.Children) == 0 {
		w.WriteString("/>")
		return
	}
	w.WriteByte('>')
	for _, ch := range e.Children {
		switch n := ch.(type) {
		case *Element:
			n.write(w)
		case *CharData:
			textEscaper.WriteString(w, n.Text)
		}
	}
	w.WriteString("</")
	w.WriteString(e.Name)
	w.WriteByte('>')
}
