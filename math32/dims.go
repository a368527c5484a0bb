// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a dimension (X or Y) in 2D geometry, used to index
// per-axis values such as scroll axes, bounce flags, and offsets.
type Dims int32

const (
	X Dims = iota
	Y
)

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}

// String returns "X" or "Y".
func (d Dims) String() string {
	if d == X {
		return "X"
	}
	return "Y"
}
