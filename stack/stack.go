// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack bridges a declarative page list onto an imperative
// navigation stack. Pages are discovered by parsing a content tree and
// keyed by their structural paths, so rebuilds translate into minimal
// push/pop edits against the host stack, and gesture-driven pops flow
// back out through a depth callback without echoing binding-driven
// changes.
package stack

import (
	"slices"

	"cogentcore.org/glide/base/plan"
	"cogentcore.org/glide/content"
)

// Pager is the narrow interface consumed from the platform's
// imperative navigation stack. Implementations must deliver their
// navigation-settled callback back into [Stack.DidShow] from the host
// main loop.
type Pager interface {

	// Push pushes one page onto the stack.
	Push(page any, animated bool)

	// Pop pops n pages off the stack.
	Pop(n int, animated bool)

	// SetPages replaces the whole page stack.
	SetPages(pages []any, animated bool)
}

// Page is one resolved navigation page with its stable identity.
// Pages are reused across rebuilds when their structural path survives.
type Page struct {

	// View is the opaque page view.
	View any

	// ID is the page's stable identity.
	ID content.Identity

	name string
}

// PlanName returns the string form of the page's structural path.
func (pg *Page) PlanName() string { return pg.name }

// Stack bridges a declarative page list onto one [Pager] instance.
// All state is mutated only from main-loop render and event callbacks.
type Stack struct {

	// Pager is the wrapped imperative stack.
	Pager Pager

	// OnDepthChanged fires when a gesture-driven pop (back swipe or
	// back button) changes the stack depth, echoing the change out to
	// the external binding. Binding-driven changes are not echoed.
	OnDepthChanged func(depth int)

	ids   *content.IdentityGenerator
	pages []*Page

	// valueDriven suppresses the next settle echo while binding-driven
	// navigation is in flight; one-shot.
	valueDriven bool
}

// New returns a new stack bridging the given pager.
func New(pg Pager) *Stack {
	return &Stack{Pager: pg, ids: content.NewIdentityGenerator()}
}

// Pages returns the current resolved pages, in stack order.
func (st *Stack) Pages() []*Page {
	return st.pages
}

// Update rebuilds the page list from the given content tree for one
// recomposition and translates the difference from the previous list
// into imperative edits: a grown list pushes the new suffix, a
// shrunken one pops, and anything else replaces the stack wholesale.
// The host's resulting settle callback is not echoed back out.
func (st *Stack) Update(root *content.Node, animated bool) []*Page {
	outs := content.ParseStable(st.ids, root)
	old := slices.Clone(st.pages)
	var mods bool
	st.pages, mods = plan.Update(st.pages, len(outs),
		func(i int) string { return outs[i].PlanName() },
		func(name string, i int) *Page { return &Page{name: name} }, nil)
	for i, out := range outs {
		st.pages[i].View = out.View
		st.pages[i].ID = out.ID
	}
	if !mods {
		return st.pages
	}
	shared := sharedPrefix(old, st.pages)
	st.valueDriven = true
	switch {
	case shared == len(old):
		for _, pg := range st.pages[shared:] {
			st.Pager.Push(pg.View, animated)
		}
	case shared == len(st.pages):
		st.Pager.Pop(len(old)-shared, animated)
	default:
		views := make([]any, len(st.pages))
		for i, pg := range st.pages {
			views[i] = pg.View
		}
		st.Pager.SetPages(views, animated)
	}
	return st.pages
}

func sharedPrefix(a, b []*Page) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// DidShow reports that the host stack settled at the given depth.
// A settle caused by a binding-driven update is absorbed; a
// gesture-driven settle at a shallower depth truncates the page list
// and echoes the new depth out exactly once.
func (st *Stack) DidShow(depth int) {
	if st.valueDriven {
		st.valueDriven = false
		return
	}
	if depth >= len(st.pages) {
		return
	}
	st.pages = st.pages[:depth]
	if st.OnDepthChanged != nil {
		st.OnDepthChanged(depth)
	}
}
