// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with both components set to the
// given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{s, s}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vector2{float32(pt.X) / 64, float32(pt.Y) / 64}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets both components to the given scalar value.
func (v *Vector2) SetScalar(s float32) {
	v.X = s
	v.Y = s
}

// Dim returns the value for the given dimension.
func (v Vector2) Dim(d Dims) float32 {
	if d == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the value for the given dimension.
func (v *Vector2) SetDim(d Dims, val float32) {
	if d == X {
		v.X = val
	} else {
		v.Y = val
	}
}

// Add adds the other vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds the scalar to each component and returns the result.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{v.X + s, v.Y + s}
}

// SetAdd adds the other vector to this one, in place.
func (v *Vector2) SetAdd(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts the other vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// SetSub subtracts the other vector from this one, in place.
func (v *Vector2) SetSub(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul multiplies each component by the other vector's and returns the result.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component by the scalar and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// SetMulScalar multiplies each component by the scalar, in place.
func (v *Vector2) SetMulScalar(s float32) {
	v.X *= s
	v.Y *= s
}

// DivScalar divides each component by the scalar and returns the result.
// It returns the zero vector if the scalar is zero.
func (v Vector2) DivScalar(s float32) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return Vector2{v.X / s, v.Y / s}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// SetMin sets each component to the minimum of itself and the other vector's.
func (v *Vector2) SetMin(other Vector2) {
	v.X = Min(v.X, other.X)
	v.Y = Min(v.Y, other.Y)
}

// SetMax sets each component to the maximum of itself and the other vector's.
func (v *Vector2) SetMax(other Vector2) {
	v.X = Max(v.X, other.X)
	v.Y = Max(v.Y, other.Y)
}

// Clamp clamps each component between the corresponding components
// of min and max, in place.
func (v *Vector2) Clamp(min, max Vector2) {
	v.X = Clamp(v.X, min.X, max.X)
	v.Y = Clamp(v.Y, min.Y, max.Y)
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the Euclidean distance to the other vector.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}

// Lerp linearly interpolates from this vector toward the other by amount t
// and returns the result.
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	return Vector2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// ToPointFloor returns an [image.Point] with the floor of each component.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{int(Floor(v.X)), int(Floor(v.Y))}
}

// ToPointCeil returns an [image.Point] with the ceiling of each component.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}

// ToFixed returns a [fixed.Point26_6] version of this vector.
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}
