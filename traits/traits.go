// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traits provides a generic upward-aggregation channel for
// declarative content trees: a writer attaches a typed value at a tree
// position, an aggregation rule combines values flowing up from
// multiple children, and a reader subscribes to the fully aggregated
// value at any ancestor position.
//
// Aggregation is an explicit post-order fold over one propagation
// pass: on a single ancestor chain the most deeply nested write
// dominates (writes at ancestors of other writes are dropped), and
// values from sibling subtrees are folded with the key's reduce
// function in child-traversal order, starting from the key's default.
// Trait values are owned transiently by the [Pass] and recomputed on
// every recomposition; there is no persistent storage.
package traits

import "cogentcore.org/glide/content"

// Key declares a trait type: a name for diagnostics, a default value
// observed by readers when nothing is written below them, and a
// reduce function folding sibling-propagated values. Keys are
// compared by pointer identity, so each distinct trait declares
// exactly one package-level key.
type Key[T any] struct {

	// Name identifies the trait in diagnostics.
	Name string

	// Default is the value observed when nothing is written,
	// and the seed of the reduce fold.
	Default T

	// Reduce folds an already-aggregated value a with the next
	// sibling-propagated value b, in child-traversal order.
	// A nil Reduce keeps the last value encountered.
	Reduce func(a, b T) T
}

// NewKey returns a new trait key with the given name, default,
// and reduce function.
func NewKey[T any](name string, def T, reduce func(a, b T) T) *Key[T] {
	return &Key[T]{Name: name, Default: def, Reduce: reduce}
}

// PickFirst returns a reduce function that keeps the first value
// encountered from below, treating the given default as the
// "nothing yet" sentinel and discarding later sibling values.
func PickFirst[T comparable](def T) func(a, b T) T {
	return func(a, b T) T {
		if a == def {
			return b
		}
		return a
	}
}

// Pass is one upward propagation pass, corresponding to one
// recomposition of the host tree. Writers, transformers, and readers
// register during tree evaluation; [Pass.Resolve] then performs the
// post-order fold and delivers each reader its aggregated value
// exactly once. A Pass is single-owner and must not be shared
// between concurrent recompositions.
type Pass struct {
	keys []resolver // in registration order
	byID map[any]resolver
}

// NewPass returns a new empty propagation pass.
func NewPass() *Pass {
	return &Pass{byID: map[any]resolver{}}
}

type resolver interface {
	resolve()
}

type write[T any] struct {
	path  content.Path
	value T
}

type transform[T any] struct {
	path content.Path
	fn   func(v *T)
}

type read[T any] struct {
	path     content.Path
	onChange func(v T)
}

type keyState[T any] struct {
	key        *Key[T]
	writes     []write[T]
	transforms []transform[T]
	reads      []read[T]
}

func stateFor[T any](ps *Pass, key *Key[T]) *keyState[T] {
	if st, has := ps.byID[key]; has {
		return st.(*keyState[T])
	}
	st := &keyState[T]{key: key}
	ps.byID[key] = st
	ps.keys = append(ps.keys, st)
	return st
}

// Write attaches the given value for the key at the given tree
// position. It is dropped at resolve time if a more deeply nested
// write exists below the same position. A write with no corresponding
// read is silently dropped.
func Write[T any](ps *Pass, key *Key[T], at content.Path, value T) {
	st := stateFor(ps, key)
	st.writes = append(st.writes, write[T]{path: at, value: value})
}

// Transform registers a function mutating the aggregated value in
// place at the given position, applied after the write fold in
// traversal order. It is used for incremental accumulation, such as
// combining multiple sibling tag values.
func Transform[T any](ps *Pass, key *Key[T], at content.Path, fn func(v *T)) {
	st := stateFor(ps, key)
	st.transforms = append(st.transforms, transform[T]{path: at, fn: fn})
}

// Read subscribes an ancestor at the given position to the fully
// aggregated value for the key, delivered once per [Pass.Resolve]
// with the aggregate of everything written at or below the position,
// or the key's default if nothing was written there.
func Read[T any](ps *Pass, key *Key[T], at content.Path, onChange func(v T)) {
	st := stateFor(ps, key)
	st.reads = append(st.reads, read[T]{path: at, onChange: onChange})
}

// Resolve performs the post-order fold for every key touched during
// the pass and invokes each reader exactly once. The pass can be
// reused for the next recomposition after calling [Pass.Reset].
func (ps *Pass) Resolve() {
	for _, st := range ps.keys {
		st.resolve()
	}
}

// Reset clears all registrations, preparing the pass for the next
// recomposition.
func (ps *Pass) Reset() {
	ps.keys = nil
	ps.byID = map[any]resolver{}
}

func (st *keyState[T]) resolve() {
	for _, rd := range st.reads {
		rd.onChange(st.aggregate(rd.path))
	}
}

// aggregate computes the folded value visible at the given ancestor
// position.
func (st *keyState[T]) aggregate(at content.Path) T {
	v := st.key.Default
	// surviving writes: those with no deeper write below them
	surviving := make([]write[T], 0, len(st.writes))
	for i, w := range st.writes {
		if !isUnder(w.path, at) {
			continue
		}
		dominated := false
		for j, o := range st.writes {
			if i == j || !isUnder(o.path, at) {
				continue
			}
			if isStrictlyUnder(o.path, w.path) {
				dominated = true
				break
			}
		}
		if !dominated {
			surviving = append(surviving, w)
		}
	}
	sortByTraversal(surviving, func(w write[T]) content.Path { return w.path })
	for _, w := range surviving {
		if st.key.Reduce == nil {
			v = w.value
		} else {
			v = st.key.Reduce(v, w.value)
		}
	}
	trs := make([]transform[T], 0, len(st.transforms))
	for _, tr := range st.transforms {
		if isUnder(tr.path, at) {
			trs = append(trs, tr)
		}
	}
	sortByTraversal(trs, func(tr transform[T]) content.Path { return tr.path })
	for _, tr := range trs {
		tr.fn(&v)
	}
	return v
}
