// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

// Identity is a stable integer identity for a position in an expanded
// content tree, allocated by an [IdentityGenerator]. Identities are
// never reused for two different live structural paths within the
// same generation.
type Identity int64

// IdentityGenerator assigns monotonically increasing [Identity] values
// to structural paths. An identity persists across rebuilds only if
// its path is requested in two consecutive generations: the generator
// keeps exactly a committed and a pending map and swaps them once per
// generation at [IdentityGenerator.Commit].
//
// Call discipline: every full parse of a dynamic container must call
// [IdentityGenerator.Generate] for every discovered path and then call
// Commit exactly once at the end of that parse. Two parses of the same
// generator must not be interleaved; all access must come from the
// single owning render pass.
type IdentityGenerator struct {
	next      Identity
	committed map[string]Identity
	pending   map[string]Identity
}

// NewIdentityGenerator returns a new [IdentityGenerator].
func NewIdentityGenerator() *IdentityGenerator {
	return &IdentityGenerator{
		committed: map[string]Identity{},
		pending:   map[string]Identity{},
	}
}

// Generate returns the identity associated with the given path in the
// current generation, allocating a new monotonic identity if the path
// was not seen in this generation or the previous one.
func (ig *IdentityGenerator) Generate(p Path) Identity {
	key := p.String()
	if id, has := ig.pending[key]; has {
		return id
	}
	if id, has := ig.committed[key]; has {
		ig.pending[key] = id
		return id
	}
	ig.next++
	id := ig.next
	ig.pending[key] = id
	return id
}

// Commit ends the current generation: everything requested since the
// last Commit becomes the committed map, and the pending set is
// cleared. Paths absent from the new generation silently lose their
// identities; there is no explicit destroy.
func (ig *IdentityGenerator) Commit() {
	ig.committed = ig.pending
	ig.pending = make(map[string]Identity, len(ig.committed))
}
