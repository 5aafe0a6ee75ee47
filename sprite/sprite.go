// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sprite renders extracted icons and packs them into a sprite
// sheet image with a JSON index of the sprite positions, in the format
// used by map style sprites.
package sprite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"maps"
	"runtime"
	"slices"

	"cogentcore.org/iconsheet/extract"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrNoIcons is returned by [Build] when there are no icons to pack.
var ErrNoIcons = errors.New("no valid SVGs found")

// Options are the options for [Build].
type Options struct {

	// Workers is the maximum number of icons rasterized concurrently.
	// If it is 0, [runtime.NumCPU] is used.
	Workers int

	// MaxAreaFactor limits the sheet area; see [Pack].
	// If it is 0, [DefaultMaxAreaFactor] is used.
	MaxAreaFactor int

	// Logger is used for debug and warning messages.
	// If it is nil, [slog.Default] is used.
	Logger *slog.Logger
}

// Entry is the index entry of one sprite.
type Entry struct {
	Height     int `json:"height"`
	PixelRatio int `json:"pixelRatio"`
	Width      int `json:"width"`
	X          int `json:"x"`
	Y          int `json:"y"`
}

// Index maps icon names to their sprite entries.
type Index map[string]Entry

// Sheet is a packed sprite sheet.
type Sheet struct {
	// Image is the sheet image.
	Image *image.RGBA

	// Index has the position of every icon in Image.
	// Identical icons share one sprite.
	Index Index

	// Ratio is the pixel ratio the icons were rendered at.
	Ratio int
}

// Build renders the given icons at the given pixel ratio and packs them
// into a sheet. Icons are rendered concurrently. If several icons have
// the same name, the last one wins.
func Build(ctx context.Context, icons []extract.Icon, ratio int, opts Options) (*Sheet, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	byName := map[string]int{}
	for i, ic := range icons {
		if _, dup := byName[ic.Name]; dup {
			log.Warn("duplicate icon name, using the last one", "name", ic.Name)
		}
		byName[ic.Name] = i
	}
	if len(byName) == 0 {
		return nil, ErrNoIcons
	}
	names := slices.Sorted(maps.Keys(byName))

	imgs, err := render(ctx, icons, names, byName, ratio, opts.Workers)
	if err != nil {
		return nil, err
	}

	uniq, of := dedupe(imgs)
	if n := len(imgs) - len(uniq); n > 0 {
		log.Debug("deduplicated sprites", "duplicates", n)
	}
	sizes := make([]image.Point, len(uniq))
	for i, u := range uniq {
		sizes[i] = imgs[u].Bounds().Size()
	}
	pos, extent, err := Pack(sizes, opts.MaxAreaFactor)
	if err != nil {
		return nil, fmt.Errorf("sprite.Build: ratio %d: %w", ratio, err)
	}

	sh := &Sheet{Image: image.NewRGBA(image.Rectangle{Max: extent}), Index: Index{}, Ratio: ratio}
	for i, u := range uniq {
		r := image.Rectangle{Min: pos[i], Max: pos[i].Add(sizes[i])}
		draw.Draw(sh.Image, r, imgs[u], image.Point{}, draw.Src)
	}
	for i, name := range names {
		p, s := pos[of[i]], sizes[of[i]]
		sh.Index[name] = Entry{Height: s.Y, PixelRatio: ratio, Width: s.X, X: p.X, Y: p.Y}
	}
	log.Debug("built sprite sheet", "ratio", ratio, "sprites", len(names), "size", extent)
	return sh, nil
}

// render rasterizes the icons of the given names, in parallel.
func render(ctx context.Context, icons []extract.Icon, names []string, byName map[string]int, ratio, workers int) ([]*image.RGBA, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	imgs := make([]*image.RGBA, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Rasterize(icons[byName[name]].Data, ratio)
			if err != nil {
				return fmt.Errorf("icon %q: %w", name, err)
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

// dedupe finds identical images. It returns the indexes of the unique
// images, and for each image the index in that list of its unique copy.
func dedupe(imgs []*image.RGBA) (uniq []int, of []int) {
	of = make([]int, len(imgs))
	seen := map[uint64][]int{}
	for i, img := range imgs {
		h := xxhash.Sum64(img.Pix)
		found := -1
		for _, u := range seen[h] {
			if same(imgs[uniq[u]], img) {
				found = u
				break
			}
		}
		if found < 0 {
			found = len(uniq)
			uniq = append(uniq, i)
			seen[h] = append(seen[h], found)
		}
		of[i] = found
	}
	return uniq, of
}

func same(a, b *image.RGBA) bool {
	return a.Bounds().Size() == b.Bounds().Size() && bytes.Equal(a.Pix, b.Pix)
}
