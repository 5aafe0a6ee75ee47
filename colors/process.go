// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"regexp"
	"strings"

	"cogentcore.org/iconsheet/base/errors"
)

// hexRegexp matches a # followed by 3 or 6 hex digits, preferring 6.
var hexRegexp = errors.Must1(regexp.Compile(`#([0-9a-fA-F]{3}(?:[0-9a-fA-F]{3})?)`))

// Modifier returns the replacement text, including the leading #,
// for a matched color with the given channels.
type Modifier func(r, g, b uint8) string

// ProcessHex returns a copy of input in which every #rgb or #rrggbb
// token is replaced by the result of calling modifier on its channels.
// Matches are found in one left-to-right pass and do not overlap;
// replacement text is never scanned again, and all text between
// matches is copied through unchanged.
func ProcessHex(input string, modifier Modifier) string {
	locs := hexRegexp.FindAllStringSubmatchIndex(input, -1)
	if len(locs) == 0 {
		return input
	}
	var sb strings.Builder
	sb.Grow(len(input))
	last := 0
	for _, loc := range locs {
		// the regexp guarantees a valid 3 or 6 digit hex group
		c, _ := ParseHex(input[loc[2]:loc[3]])
		sb.WriteString(input[last:loc[0]])
		sb.WriteString(modifier(c.R, c.G, c.B))
		last = loc[1]
	}
	sb.WriteString(input[last:])
	return sb.String()
}
