// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filename returns the file name of the icon: its name with a .svg extension.
func (ic *Icon) Filename() string {
	return ic.Name + ".svg"
}

// Save writes each icon to its [Icon.Filename] in the given directory,
// creating the directory if needed.
func Save(icons []Icon, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i := range icons {
		ic := &icons[i]
		if ic.Name == "" || strings.ContainsAny(ic.Name, `/\`) || ic.Name == "." || ic.Name == ".." {
			return fmt.Errorf("extract.Save: invalid icon name %q", ic.Name)
		}
		if err := os.WriteFile(filepath.Join(dir, ic.Filename()), ic.Data, 0644); err != nil {
			return err
		}
	}
	return nil
}
