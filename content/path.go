// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package content provides introspection of declarative content trees:
// it expands builder combinators (pairs, conditionals, optionals,
// indexed repeats) into a flat ordered list of dynamic outputs, each
// identified by its structural path, and assigns stable integer
// identities to those paths across consecutive rebuilds.
package content

import (
	"strconv"
	"strings"
)

// Tags is a branch tag: one step of a structural path, recording
// which branch of a structural combinator a node came from.
type Tags int32

const (
	// PairFirst is the first element of a sequential pair.
	PairFirst Tags = iota

	// PairSecond is the second element of a sequential pair.
	PairSecond

	// ConditionalTrue is the true branch of a conditional.
	// Present optionals also take this tag.
	ConditionalTrue

	// ConditionalFalse is the false branch of a conditional.
	ConditionalFalse

	// RepeatAt is an indexed element of a repeat construct;
	// the index is carried alongside the tag in a [Step].
	RepeatAt
)

func (t Tags) String() string {
	switch t {
	case PairFirst:
		return "first"
	case PairSecond:
		return "second"
	case ConditionalTrue:
		return "true"
	case ConditionalFalse:
		return "false"
	case RepeatAt:
		return "at"
	}
	return "invalid"
}

// Step is one element of a structural [Path]: a branch tag plus,
// for [RepeatAt], the element index.
type Step struct {
	Tag   Tags
	Index int
}

func (s Step) String() string {
	if s.Tag == RepeatAt {
		return strconv.Itoa(s.Index)
	}
	return s.Tag.String()
}

// Path is a structural path: the ordered sequence of branch choices
// identifying a position in an expanded content tree. Paths are
// immutable values; [Path.Child] returns extended copies. Two paths
// are equal exactly when their string forms are equal, so the string
// form is used as the join key between tree generations.
type Path []Step

// Child returns a new path with the given step appended.
// The receiver is not modified and does not share appended storage.
func (p Path) Child(s Step) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, s)
}

// String returns the canonical string form of the path,
// with steps separated by slashes.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}
