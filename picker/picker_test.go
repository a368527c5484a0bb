// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glide/content"
	"cogentcore.org/glide/traits"
)

// label is a plain option view with no tag of its own.
type label struct {
	Text string
}

// taggedLabel declares its own selection tag.
type taggedLabel struct {
	Text string
	Tag  any
}

func (tl taggedLabel) OptionTag() any { return tl.Tag }

func stringBinding(v string) (*Binding, *string) {
	cur := v
	return &Binding{
		Get: func() any { return cur },
		Set: func(nv any) { cur = nv.(string) },
	}, &cur
}

func TestDefaultIdentityTags(t *testing.T) {
	sel, _ := stringBinding("b")
	pk := New(sel)
	items := []string{"a", "b", "c"}
	root := content.ForEachID(items, func(s string) string { return s },
		func(s string) *content.Node { return content.View(label{Text: s}) })

	opts := pk.Update(root, traits.NewPass())
	require.Len(t, opts, 3)
	assert.Equal(t, "a", opts[0].Tag)
	assert.Equal(t, "b", opts[1].Tag)
	assert.Equal(t, "c", opts[2].Tag)

	cfg := pk.Config()
	assert.Same(t, opts[1], cfg.SelectedOption())
}

func TestTaggerOverridesDefault(t *testing.T) {
	sel, cur := stringBinding("")
	pk := New(sel)
	root := content.ForEachID([]string{"a", "b"}, func(s string) string { return s },
		func(s string) *content.Node {
			return content.View(taggedLabel{Text: s, Tag: "tag-" + s})
		})

	opts := pk.Update(root, traits.NewPass())
	require.Len(t, opts, 2)
	assert.Equal(t, "tag-a", opts[0].Tag)
	assert.Equal(t, "tag-b", opts[1].Tag)

	pk.Config().Select(opts[1])
	assert.Equal(t, "tag-b", *cur)
}

func TestMismatchedDefaultIdentityDiscarded(t *testing.T) {
	cur := 0
	sel := &Binding{Get: func() any { return cur }, Set: func(v any) { cur = v.(int) }}
	pk := New(sel)
	// string natural identities against an int selection
	root := content.ForEachID([]string{"a", "b"}, func(s string) string { return s },
		func(s string) *content.Node { return content.View(label{Text: s}) })

	opts := pk.Update(root, traits.NewPass())
	require.Len(t, opts, 2)
	assert.Nil(t, opts[0].Tag)
	assert.Nil(t, opts[1].Tag)
}

func TestOptionsReusedAcrossRebuilds(t *testing.T) {
	sel, _ := stringBinding("a")
	pk := New(sel)
	build := func(items []string) *content.Node {
		return content.ForEachID(items, func(s string) string { return s },
			func(s string) *content.Node { return content.View(label{Text: s}) })
	}

	first := pk.Update(build([]string{"a", "b"}), traits.NewPass())
	require.Len(t, first, 2)
	ids := []content.Identity{first[0].ID, first[1].ID}

	// same structure: options and identities survive
	second := pk.Update(build([]string{"a", "b"}), traits.NewPass())
	require.Len(t, second, 2)
	assert.Same(t, first[0], second[0])
	assert.Same(t, first[1], second[1])
	assert.Equal(t, ids, []content.Identity{second[0].ID, second[1].ID})

	// a grown list keeps the surviving prefix and adds fresh options
	third := pk.Update(build([]string{"a", "b", "c"}), traits.NewPass())
	require.Len(t, third, 3)
	assert.Same(t, first[0], third[0])
	assert.NotEqual(t, ids[0], third[2].ID)
	assert.NotEqual(t, ids[1], third[2].ID)
}

func TestConditionalOptions(t *testing.T) {
	sel, _ := stringBinding("x")
	pk := New(sel)
	build := func(extra bool) *content.Node {
		return content.Group(
			content.View(taggedLabel{Text: "x", Tag: "x"}),
			content.If(extra, content.View(taggedLabel{Text: "y", Tag: "y"})),
		)
	}

	opts := pk.Update(build(false), traits.NewPass())
	require.Len(t, opts, 1)
	opts = pk.Update(build(true), traits.NewPass())
	require.Len(t, opts, 2)
	assert.Equal(t, "y", opts[1].Tag)
}

func TestEmptySourcesSelectionPanics(t *testing.T) {
	sel, _ := stringBinding("a")
	pk := New(sel)
	pk.Update(content.New(), traits.NewPass())
	assert.Panics(t, func() { pk.Config().SelectedOption() })
}

func TestUnmatchedSelectionFallsToFirst(t *testing.T) {
	sel, _ := stringBinding("missing")
	pk := New(sel)
	root := content.ForEachID([]string{"a", "b"}, func(s string) string { return s },
		func(s string) *content.Node { return content.View(label{Text: s}) })
	opts := pk.Update(root, traits.NewPass())
	assert.Same(t, opts[0], pk.Config().SelectedOption())
}
