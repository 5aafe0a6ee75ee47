// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"

	"cogentcore.org/iconsheet/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// number of arguments taken by each SVG path command
var svgArgs = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

func skipCommaWhitespace(path []byte, i int) int {
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

func isSVGCommand(c byte) bool {
	_, ok := svgArgs[c&^0x20]
	return ok && ('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z')
}

// ParseSVGPath parses an SVG path data string (the d attribute of a path
// element) into a Path. Relative commands, implicit repeated commands,
// the smooth curve forms and elliptical arcs are all supported.
// An empty string returns an empty path.
func ParseSVGPath(s string) (Path, error) {
	path := []byte(s)
	i := skipCommaWhitespace(path, 0)
	p := Path{}
	if i == len(path) {
		return p, nil
	}

	var cmd, prevCmd byte
	var f [7]float32
	cpx, cpy := float32(0.0), float32(0.0) // last control point, for S and T
	for i < len(path) {
		if isSVGCommand(path[i]) {
			cmd = path[i]
			i = skipCommaWhitespace(path, i+1)
		} else if cmd == 0 {
			return p, fmt.Errorf("ppath.ParseSVGPath: path must start with a command, at position %d", i)
		} else if cmd == 'M' {
			cmd = 'L' // implicit LineTo after MoveTo
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 'z' || cmd == 'Z' {
			return p, fmt.Errorf("ppath.ParseSVGPath: unexpected value after close command, at position %d", i)
		}

		ucmd := cmd &^ 0x20
		n := svgArgs[ucmd]
		for j := 0; j < n; j++ {
			if ucmd == 'A' && (j == 3 || j == 4) {
				// flags are a single digit and need no separator
				if i >= len(path) || (path[i] != '0' && path[i] != '1') {
					return p, fmt.Errorf("ppath.ParseSVGPath: invalid arc flag for %q command, at position %d", cmd, i)
				}
				f[j] = float32(path[i] - '0')
				i = skipCommaWhitespace(path, i+1)
				continue
			}
			num, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				return p, fmt.Errorf("ppath.ParseSVGPath: expected %d numbers for %q command, got %d, at position %d", n, cmd, j, i)
			}
			f[j] = float32(num)
			i = skipCommaWhitespace(path, i+m)
		}

		pos := p.Pos()
		rel := 'a' <= cmd && cmd <= 'z'
		switch ucmd {
		case 'M':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
			}
			p.MoveTo(f[0], f[1])
		case 'L':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
			}
			p.LineTo(f[0], f[1])
		case 'H':
			if rel {
				f[0] += pos.X
			}
			p.LineTo(f[0], pos.Y)
		case 'V':
			if rel {
				f[0] += pos.Y
			}
			p.LineTo(pos.X, f[0])
		case 'C':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
				f[4] += pos.X
				f[5] += pos.Y
			}
			p.CubeTo(f[0], f[1], f[2], f[3], f[4], f[5])
			cpx, cpy = f[2], f[3]
		case 'S':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
			}
			c1x, c1y := pos.X, pos.Y
			if pc := prevCmd &^ 0x20; pc == 'C' || pc == 'S' {
				c1x, c1y = 2.0*pos.X-cpx, 2.0*pos.Y-cpy
			}
			p.CubeTo(c1x, c1y, f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
		case 'Q':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
			}
			p.QuadTo(f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
		case 'T':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
			}
			cx, cy := pos.X, pos.Y
			if pc := prevCmd &^ 0x20; pc == 'Q' || pc == 'T' {
				cx, cy = 2.0*pos.X-cpx, 2.0*pos.Y-cpy
			}
			p.QuadTo(cx, cy, f[0], f[1])
			cpx, cpy = cx, cy
		case 'A':
			if rel {
				f[5] += pos.X
				f[6] += pos.Y
			}
			p.ArcToDeg(f[0], f[1], f[2], f[3] == 1.0, f[4] == 1.0, f[5], f[6])
		case 'Z':
			p.Close()
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVGPath is a version of [ParseSVGPath] that panics on error.
func MustParseSVGPath(s string) Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePoints parses a points attribute of a polyline or polygon
// element: a list of x,y pairs separated by whitespace and/or commas.
// An odd trailing number is ignored.
func ParsePoints(s string) ([]math32.Vector2, error) {
	vals, err := math32.ParseFloats(s)
	if err != nil {
		return nil, fmt.Errorf("ppath.ParsePoints: %w", err)
	}
	pts := make([]math32.Vector2, 0, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		pts = append(pts, math32.Vec2(vals[i], vals[i+1]))
	}
	return pts, nil
}
