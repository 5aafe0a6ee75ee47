// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/iconsheet/base/errors"
	"cogentcore.org/iconsheet/base/logx"
	"cogentcore.org/iconsheet/config"
	"cogentcore.org/iconsheet/extract"
	"cogentcore.org/iconsheet/sprite"
	"cogentcore.org/iconsheet/theme"
	"cogentcore.org/iconsheet/xmltree"
	"github.com/fsnotify/fsnotify"
)

// extractIcons loads the theme and master document of the config and
// extracts the icons. It returns [sprite.ErrNoIcons] if there are none.
func extractIcons(c *config.Config) ([]extract.Icon, error) {
	reg, err := theme.Load(c.Theme)
	if err != nil {
		return nil, err
	}
	master, err := xmltree.Open(c.Input)
	if err != nil {
		return nil, err
	}
	blend, err := c.BlendMode()
	if err != nil {
		return nil, err
	}
	x := extract.New(reg)
	x.Strict = c.Strict
	x.Margin = c.Margin
	x.Blend = blend
	if len(c.Ignore) > 0 {
		x.Ignore = c.Ignore
	}
	if c.Renames != nil {
		x.Renames = c.Renames
	}
	icons, err := x.Extract(master)
	if err != nil && (c.Strict || !extract.Skipped(err)) {
		return nil, err
	}
	if len(icons) == 0 {
		// keep the causes of skipped icons
		return nil, errors.Join(fmt.Errorf("%w in %q", sprite.ErrNoIcons, c.Input), err)
	}
	slog.Info("extracted icons", "count", len(icons), "input", c.Input)
	return icons, nil
}

// build extracts the icons and writes a sprite sheet and index for
// every pixel ratio of the config.
func build(ctx context.Context, c *config.Config) error {
	icons, err := extractIcons(c)
	if err != nil {
		return err
	}
	for _, ratio := range c.Ratios {
		sh, err := sprite.Build(ctx, icons, ratio, sprite.Options{Workers: c.Workers, MaxAreaFactor: c.MaxAreaFactor})
		if err != nil {
			return err
		}
		prefix := sprite.FilePrefix(c.Output, ratio)
		if err := sh.Save(prefix); err != nil {
			return err
		}
		logx.PrintlnInfo("wrote", prefix+".png", "and", prefix+".json")
	}
	return nil
}

// extractTo extracts the icons and writes them to the output directory.
func extractTo(c *config.Config) error {
	icons, err := extractIcons(c)
	if err != nil {
		return err
	}
	if err := extract.Save(icons, c.Output); err != nil {
		return err
	}
	logx.PrintlnInfo("wrote", len(icons), "icons to", c.Output)
	return nil
}

// watch runs build, and then again whenever the input or theme file
// changes, until the context is done. Build errors are logged.
func watch(ctx context.Context, c *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace files, so the directories are watched
	files := map[string]bool{}
	for _, f := range []string{c.Input, c.Theme} {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		files[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	rebuild := func() {
		if err := build(ctx, c); err != nil && ctx.Err() == nil {
			errors.Log(err)
		}
	}
	rebuild()
	logx.PrintlnWarn("watching", c.Input, "and", c.Theme)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !files[event.Name] || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			slog.Debug("file changed", "file", event.Name, "op", event.Op)
			timer.Reset(time.Duration(c.Debounce))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-timer.C:
			rebuild()
		}
	}
}
