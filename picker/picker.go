// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker provides a customizable selection control over a
// declarative option tree. The options are discovered by parsing the
// content tree, their selection tags flow upward through the trait
// propagation channel, and the resulting type-erased configuration
// (options, selection binding, label) is handed to a pluggable style
// for presentation.
package picker

import (
	"reflect"

	"cogentcore.org/glide/base/logx"
	"cogentcore.org/glide/base/plan"
	"cogentcore.org/glide/content"
	"cogentcore.org/glide/traits"
)

// TagKey is the trait key carrying an option's selection tag upward
// from its subtree. The first tag written from below wins; later
// sibling tags are discarded.
var TagKey = traits.NewKey[any]("picker.tag", nil, func(a, b any) any {
	if a == nil {
		return b
	}
	return a
})

// Tagger is implemented by option views that declare their own
// selection tag. The tag is written into the propagation pass at the
// option's tree position, so a tag written deeper in the subtree
// still dominates.
type Tagger interface {

	// OptionTag returns the option's selection tag value.
	OptionTag() any
}

// Binding is a type-erased two-way selection binding.
type Binding struct {

	// Get returns the current selection value.
	Get func() any

	// Set writes a new selection value.
	Set func(value any)
}

// Option is one selectable option: its view, its resolved selection
// tag, and its stable identity. Options are reused across rebuilds
// when their structural path survives.
type Option struct {

	// View is the opaque option view.
	View any

	// Tag is the option's selection tag: the aggregated tag trait,
	// falling back to the repeat element's natural identity when no
	// tag was written.
	Tag any

	// ID is the option's stable identity.
	ID content.Identity

	name string
}

// PlanName returns the string form of the option's structural path.
func (op *Option) PlanName() string { return op.name }

// Config is the type-erased configuration handed to a custom picker
// style: the resolved options, the selection binding, and the label
// view.
type Config struct {

	// Options are the currently resolved options, in tree order.
	Options []*Option

	// Selection is the selection binding.
	Selection *Binding

	// Label is the opaque label view, or nil.
	Label any
}

// SelectedOption returns the option whose tag equals the current
// selection, or the first option if none matches. Reading a selection
// from empty sources is a programmer contract violation and panics.
func (cfg *Config) SelectedOption() *Option {
	if len(cfg.Options) == 0 {
		panic("picker: selection read with empty sources")
	}
	sel := cfg.Selection.Get()
	for _, op := range cfg.Options {
		if op.Tag == sel {
			return op
		}
	}
	return cfg.Options[0]
}

// Select writes the given option's tag to the selection binding.
func (cfg *Config) Select(op *Option) {
	cfg.Selection.Set(op.Tag)
}

// Picker maintains a stable option list for one selection control,
// rebuilt from a content tree on every recomposition. It owns the
// identity generator joining consecutive generations.
type Picker struct {

	// Label is the opaque label view, or nil.
	Label any

	// Selection is the selection binding.
	Selection *Binding

	ids     *content.IdentityGenerator
	options []*Option
}

// New returns a new picker with the given selection binding.
func New(selection *Binding) *Picker {
	return &Picker{Selection: selection, ids: content.NewIdentityGenerator()}
}

// Update rebuilds the option list from the given content tree for one
// recomposition. Option views implementing [Tagger] have their tags
// written into the pass at their tree position; the pass is then
// resolved, delivering every registered reader its aggregated value.
// Options whose structural path survived the rebuild are reused.
func (pk *Picker) Update(root *content.Node, ps *traits.Pass) []*Option {
	outs := content.ParseStable(pk.ids, root)
	for _, out := range outs {
		if tg, ok := out.View.(Tagger); ok {
			traits.Write(ps, TagKey, out.Path, tg.OptionTag())
		}
	}
	tags := make([]any, len(outs))
	for i, out := range outs {
		i := i
		traits.Read(ps, TagKey, out.Path, func(v any) { tags[i] = v })
	}
	ps.Resolve()

	selType := reflect.TypeOf(pk.Selection.Get())
	pk.options, _ = plan.Update(pk.options, len(outs),
		func(i int) string { return outs[i].PlanName() },
		func(name string, i int) *Option { return &Option{name: name} }, nil)
	for i, out := range outs {
		op := pk.options[i]
		op.View = out.View
		op.ID = out.ID
		op.Tag = tags[i]
		if op.Tag == nil && out.DefaultValue != nil {
			// the natural repeat identity is only a usable tag when it
			// matches the selection's type; mismatches are discarded
			if selType == nil || reflect.TypeOf(out.DefaultValue) == selType {
				op.Tag = out.DefaultValue
			} else {
				logx.PrintlnDebug("picker: discarding mismatched natural identity:", out.DefaultValue)
			}
		}
	}
	return pk.options
}

// Config returns the type-erased configuration for the current
// options, for handing to a custom picker style.
func (pk *Picker) Config() *Config {
	return &Config{Options: pk.options, Selection: pk.Selection, Label: pk.Label}
}
