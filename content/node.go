// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

// Kinds is the kind of a content [Node]: either a structural
// combinator that expands into children, a leaf bridging to an opaque
// view value, or an empty placeholder.
type Kinds int32

const (
	// Empty produces no outputs.
	Empty Kinds = iota

	// Leaf is a type-erasing wrapper around an opaque view value;
	// structural descent stops here.
	Leaf

	// Pair is a sequential pair of two children.
	Pair

	// Conditional is one of two children selected by a condition.
	Conditional

	// Optional is a child that may be absent.
	Optional

	// Repeat is an indexed sequence of elements, each optionally
	// carrying a natural identity value.
	Repeat
)

// Node is one node of a composed content tree: a closed tagged
// variant over the builder combinators of the declarative layer.
// Use the builder functions ([View], [NewPair], [If], [IfElse],
// [Maybe], [ForEach], [ForEachID]) to construct nodes.
type Node struct {

	// Kind is the variant tag; it determines which other fields are used.
	Kind Kinds

	// ViewValue is the opaque view for a [Leaf].
	ViewValue any

	// First and Second are the children of a [Pair].
	First  *Node
	Second *Node

	// Cond selects the branch of a [Conditional].
	Cond bool

	// True and False are the branches of a [Conditional]. False may be
	// nil, in which case a false condition produces no outputs.
	True  *Node
	False *Node

	// Child is the child of an [Optional]; nil means absent.
	Child *Node

	// Elements are the children of a [Repeat].
	Elements []RepeatElement
}

// RepeatElement is one element of a [Repeat] construct: a child node
// plus an optional natural identity value, which becomes the default
// content-derived identity of the element's outputs.
type RepeatElement struct {
	Node *Node

	// Value is the element's natural identity, or nil if the repeat
	// construct is purely index-based.
	Value any
}

// New returns an empty content node.
func New() *Node {
	return &Node{Kind: Empty}
}

// View returns a leaf node bridging to the given opaque view value.
func View(v any) *Node {
	return &Node{Kind: Leaf, ViewValue: v}
}

// NewPair returns a sequential pair of the two given children.
// Longer sequences are built by nesting pairs, second-heavy:
// [Group] does this for a slice of children.
func NewPair(first, second *Node) *Node {
	return &Node{Kind: Pair, First: first, Second: second}
}

// Group returns the given children combined into nested pairs,
// preserving order. An empty list yields an empty node.
func Group(children ...*Node) *Node {
	switch len(children) {
	case 0:
		return New()
	case 1:
		return children[0]
	}
	return NewPair(children[0], Group(children[1:]...))
}

// If returns a conditional node with only a true branch: when cond is
// false it produces no outputs.
func If(cond bool, then *Node) *Node {
	return &Node{Kind: Conditional, Cond: cond, True: then}
}

// IfElse returns a conditional node selecting between the two branches.
func IfElse(cond bool, then, els *Node) *Node {
	return &Node{Kind: Conditional, Cond: cond, True: then, False: els}
}

// Maybe returns an optional node wrapping the given child,
// which may be nil to indicate absence.
func Maybe(child *Node) *Node {
	return &Node{Kind: Optional, Child: child}
}

// ForEach returns an index-based repeat node with one child per item,
// with no natural identity values.
func ForEach[E any](items []E, view func(item E) *Node) *Node {
	n := &Node{Kind: Repeat, Elements: make([]RepeatElement, len(items))}
	for i, it := range items {
		n.Elements[i] = RepeatElement{Node: view(it)}
	}
	return n
}

// ForEachID returns an identified repeat node with one child per item,
// using the given function to derive each element's natural identity,
// which becomes the default value of the element's outputs.
func ForEachID[E any, ID comparable](items []E, id func(item E) ID, view func(item E) *Node) *Node {
	n := &Node{Kind: Repeat, Elements: make([]RepeatElement, len(items))}
	for i, it := range items {
		n.Elements[i] = RepeatElement{Node: view(it), Value: id(it)}
	}
	return n
}
