// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for glide built on [log/slog],
// with a colored console handler and a global user-settable level.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// this program. Anything at or above this level is printed.
// It defaults to [slog.LevelInfo]. It is set by [SetLevel] and
// should not be modified directly.
var UserLevel = slog.LevelInfo

// SetLevel sets [UserLevel] and updates the default handler accordingly.
func SetLevel(level slog.Level) {
	UserLevel = level
	SetDefaultLogger()
}

// SetDefaultLogger sets the default logger to a new [Handler]
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func init() {
	SetDefaultLogger()
}

// Handler is a [slog.Handler] whose output is optimized for
// readability in a terminal, with colored level labels. Handlers
// derived via WithAttrs and WithGroup share the parent's output.
type Handler struct {
	shared *handlerShared

	// attrs are accumulated logger attrs, with keys already qualified
	// by the groups open when they were attached.
	attrs []slog.Attr

	// groups are the open group names, qualifying record attr keys.
	groups []string
}

// handlerShared is the output state shared by a handler and its
// derivatives.
type handlerShared struct {
	w   io.Writer
	mu  sync.Mutex
	out termenv.Output
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{shared: &handlerShared{w: w, out: *termenv.NewOutput(w)}}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelLabel returns the colored label for the given level.
func (h *Handler) levelLabel(level slog.Level) string {
	s := h.shared.out.String(level.String() + ":")
	switch {
	case level >= slog.LevelError:
		return s.Foreground(h.shared.out.Color("1")).String() // red
	case level >= slog.LevelWarn:
		return s.Foreground(h.shared.out.Color("3")).String() // yellow
	case level >= slog.LevelInfo:
		return s.Foreground(h.shared.out.Color("4")).String() // blue
	}
	return s.Faint().String()
}

// qualify prefixes the given key with the open group names.
func (h *Handler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(h.levelLabel(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(b, " %s=%v", h.qualify(a.Key), a.Value)
		return true
	})
	b.WriteString("\n")
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	_, err := io.WriteString(h.shared.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{shared: h.shared, groups: h.groups, attrs: slices.Clip(h.attrs)}
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		shared: h.shared,
		attrs:  h.attrs,
		groups: append(slices.Clip(h.groups), name),
	}
}

// PrintlnDebug prints the given arguments at [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	printlnLevel(slog.LevelDebug, a...)
}

// PrintlnInfo prints the given arguments at [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	printlnLevel(slog.LevelInfo, a...)
}

// PrintlnWarn prints the given arguments at [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	printlnLevel(slog.LevelWarn, a...)
}

// PrintlnError prints the given arguments at [slog.LevelError].
func PrintlnError(a ...any) {
	printlnLevel(slog.LevelError, a...)
}

func printlnLevel(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Fprintln(os.Stderr, a...)
}
