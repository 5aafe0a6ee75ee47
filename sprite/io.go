// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"encoding/json"
	"fmt"
	"io"

	"cogentcore.org/iconsheet/base/iox"
	"cogentcore.org/iconsheet/base/iox/imagex"
)

var jsonEncoder = iox.NewEncoderFunc(json.NewEncoder)

// FilePrefix returns the output file prefix for the given pixel ratio:
// the prefix itself for ratio 1, and prefix@<ratio>x otherwise.
func FilePrefix(prefix string, ratio int) string {
	if ratio <= 1 {
		return prefix
	}
	return fmt.Sprintf("%s@%dx", prefix, ratio)
}

// Save writes the sheet image to prefix.png and its index to prefix.json.
func (sh *Sheet) Save(prefix string) error {
	if err := imagex.Save(sh.Image, prefix+".png"); err != nil {
		return fmt.Errorf("sprite.Sheet.Save: %w", err)
	}
	if err := iox.Save(sh.Index, prefix+".json", jsonEncoder); err != nil {
		return fmt.Errorf("sprite.Sheet.Save: %w", err)
	}
	return nil
}

// WriteIndex writes the compact JSON index to the given writer,
// with the icon names sorted.
func (sh *Sheet) WriteIndex(w io.Writer) error {
	return iox.Write(sh.Index, w, jsonEncoder)
}

// OpenIndex reads an index file written by [Sheet.Save].
func OpenIndex(filename string) (Index, error) {
	idx := Index{}
	err := iox.Open(&idx, filename, iox.NewDecoderFunc(json.NewDecoder))
	return idx, err
}
