// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 vector and bounding-box math
// used by the glide scroll engine. Scalar functions are mostly thin
// wrappers around chewxy/math32, which has optimized implementations.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Mathematical constants.
const (
	Pi = math.Pi

	// Infinity is positive infinity.
	Infinity = float32(math.MaxFloat32)
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Clamp01 clamps x to the unit interval [0, 1].
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Lerp linearly interpolates between a and b by amount t.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// IsNaN reports whether x is a NaN value.
func IsNaN(x float32) bool {
	return x != x
}

// Acos returns the arccosine, in radians, of x.
func Acos(x float32) float32 {
	return math32.Acos(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Sign returns -1 for negative x, 1 for positive x, and 0 for zero x.
func Sign(x float32) float32 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
