// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a default slog logger for command line tools,
// with colored level labels and a user-selected verbosity level.
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// LevelColors are the terminal colors of the level labels.
var LevelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSICyan,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// output is the terminal output used for colors; see [SetOutput].
var output = termenv.NewOutput(os.Stderr)

// SetOutput sets the writer used by [SetDefaultLogger] and the Print
// functions. Color support is detected from the writer, unless a
// profile is given in opts.
func SetOutput(w io.Writer, opts ...termenv.OutputOption) {
	output = termenv.NewOutput(w, opts...)
}

// Handler is a [slog.Handler] that writes records as a colored level
// label followed by the text format of [slog.TextHandler], without time.
// Its level follows [UserLevel].
type Handler struct {
	out  *termenv.Output
	mu   *sync.Mutex
	buf  *bytes.Buffer
	text slog.Handler
}

// NewHandler returns a new [Handler] writing to the given output.
func NewHandler(o *termenv.Output) *Handler {
	buf := &bytes.Buffer{}
	text := slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Handler{out: o, mu: &sync.Mutex{}, buf: buf, text: text}
}

func (h *Handler) Enabled(ctx context.Context, lv slog.Level) bool {
	return h.text.Enabled(ctx, lv)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	_, err := h.out.WriteString(colorize(h.out, r.Level, fmt.Sprintf("%-5s", r.Level.String())) + " " + h.buf.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, mu: h.mu, buf: h.buf, text: h.text.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, mu: h.mu, buf: h.buf, text: h.text.WithGroup(name)}
}

// SetDefaultLogger sets the default [slog] logger to one using
// a [Handler] on the current output.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(output)))
}

// colorize returns s in the color of the given level.
func colorize(o *termenv.Output, lv slog.Level, s string) string {
	c, ok := LevelColors[lv]
	if !ok {
		return s
	}
	return o.String(s).Foreground(c).String()
}

// PrintlnDebug prints the given values separated by spaces and followed
// by a newline, colored as debug messages, if [UserLevel] allows debug messages.
func PrintlnDebug(a ...any) { printLevel(slog.LevelDebug, a...) }

// PrintlnInfo is [PrintlnDebug] for info messages.
func PrintlnInfo(a ...any) { printLevel(slog.LevelInfo, a...) }

// PrintlnWarn is [PrintlnDebug] for warnings.
func PrintlnWarn(a ...any) { printLevel(slog.LevelWarn, a...) }

func printLevel(lv slog.Level, a ...any) {
	if UserLevel > lv {
		return
	}
	s := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	output.WriteString(colorize(output, lv, s) + "\n")
}
