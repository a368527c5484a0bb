// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"cmp"
	"slices"

	"cogentcore.org/glide/content"
)

// comparePaths orders structural paths in child-traversal order:
// step by step, with an ancestor ordered before its descendants.
func comparePaths(a, b content.Path) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a[i].Tag, b[i].Tag); c != 0 {
			return c
		}
		if c := cmp.Compare(a[i].Index, b[i].Index); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// isUnder reports whether p is at or below the ancestor path.
func isUnder(p, ancestor content.Path) bool {
	if len(p) < len(ancestor) {
		return false
	}
	for i := range ancestor {
		if p[i] != ancestor[i] {
			return false
		}
	}
	return true
}

// isStrictlyUnder reports whether p is strictly below the ancestor path.
func isStrictlyUnder(p, ancestor content.Path) bool {
	return len(p) > len(ancestor) && isUnder(p, ancestor)
}

// sortByTraversal stably sorts the given entries by their structural
// paths in child-traversal order, preserving registration order for
// entries at the same position.
func sortByTraversal[E any](s []E, path func(e E) content.Path) {
	slices.SortStableFunc(s, func(a, b E) int {
		return comparePaths(path(a), path(b))
	})
}
