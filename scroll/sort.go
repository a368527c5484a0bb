// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"cmp"
	"slices"
)

// sortByDistance stably sorts the candidates by anchor-point distance
// to the query target. Stability pins the tie behavior: candidates at
// equal distance keep their registration order.
func sortByDistance(cands []Target, to Target) {
	slices.SortStableFunc(cands, func(a, b Target) int {
		return cmp.Compare(to.DistanceTo(a), to.DistanceTo(b))
	})
}
