// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import "fmt"

// Output is one dynamic output of a parse: a leaf view plus its
// structural path plus an optional default identity value drawn from
// the enclosing repeat construct's element identity. Outputs are
// created fresh on every parse and are not persisted.
type Output struct {

	// View is the opaque leaf view value.
	View any

	// Path is the structural path of the leaf in the expanded tree.
	Path Path

	// DefaultValue is the natural identity of the enclosing repeat
	// element, or nil. It is used as a fallback content-derived
	// identity when no explicit identity override is present.
	DefaultValue any

	// ID is the stable identity of the path, assigned when parsing
	// through [ParseStable]; zero for a plain [Parse].
	ID Identity
}

// PlanName returns the string form of the output's structural path,
// for use as a [cogentcore.org/glide/base/plan] key.
func (o *Output) PlanName() string {
	return o.Path.String()
}

// Parse recursively unwraps the builder combinators of the given
// content tree and returns the flat ordered list of dynamic outputs.
// A nil root yields no outputs. A node of an unknown kind is a
// programmer contract violation and panics.
func Parse(root *Node) []Output {
	var outs []Output
	parseNode(root, Path{}, nil, &outs)
	return outs
}

// ParseStable is [Parse] followed by stable identity assignment:
// it generates an identity for every discovered path on the given
// generator and commits the generation, honoring the generator's
// parse-then-commit call discipline.
func ParseStable(ig *IdentityGenerator, root *Node) []Output {
	outs := Parse(root)
	for i := range outs {
		outs[i].ID = ig.Generate(outs[i].Path)
	}
	ig.Commit()
	return outs
}

func parseNode(n *Node, p Path, defaultValue any, outs *[]Output) {
	if n == nil {
		return
	}
	switch n.Kind {
	case Empty:
	case Leaf:
		*outs = append(*outs, Output{View: n.ViewValue, Path: p, DefaultValue: defaultValue})
	case Pair:
		parseNode(n.First, p.Child(Step{Tag: PairFirst}), defaultValue, outs)
		parseNode(n.Second, p.Child(Step{Tag: PairSecond}), defaultValue, outs)
	case Conditional:
		if n.Cond {
			parseNode(n.True, p.Child(Step{Tag: ConditionalTrue}), defaultValue, outs)
		} else {
			parseNode(n.False, p.Child(Step{Tag: ConditionalFalse}), defaultValue, outs)
		}
	case Optional:
		if n.Child != nil {
			parseNode(n.Child, p.Child(Step{Tag: ConditionalTrue}), defaultValue, outs)
		}
	case Repeat:
		for i, el := range n.Elements {
			dv := defaultValue
			if el.Value != nil {
				dv = el.Value
			}
			parseNode(el.Node, p.Child(Step{Tag: RepeatAt, Index: i}), dv, outs)
		}
	default:
		panic(fmt.Sprintf("content.Parse: malformed content tree: unknown node kind %d", n.Kind))
	}
}
