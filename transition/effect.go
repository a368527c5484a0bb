// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import "cogentcore.org/glide/math32"

// Effect is the animatable representation of a view's visual effects:
// the combinators applied to a view during a scroll transition. Each
// field interpolates linearly and independently.
type Effect struct {

	// Opacity is the view's opacity, 0 to 1.
	Opacity float32

	// BlurRadius is the gaussian blur radius in points.
	BlurRadius float32

	// Scale is the uniform scale factor.
	Scale float32

	// Rotation is the rotation in degrees.
	Rotation float32

	// Grayscale is the grayscale amount, 0 (full color) to 1.
	Grayscale float32

	// Offset is a translation in points.
	Offset math32.Vector2
}

// Identity is the effect that leaves a view unmodified.
var Identity = Effect{Opacity: 1, Scale: 1}

// Lerp linearly interpolates from this effect toward the other by
// amount t and returns the result.
func (e Effect) Lerp(other Effect, t float32) Effect {
	return Effect{
		Opacity:    math32.Lerp(e.Opacity, other.Opacity, t),
		BlurRadius: math32.Lerp(e.BlurRadius, other.BlurRadius, t),
		Scale:      math32.Lerp(e.Scale, other.Scale, t),
		Rotation:   math32.Lerp(e.Rotation, other.Rotation, t),
		Grayscale:  math32.Lerp(e.Grayscale, other.Grayscale, t),
		Offset:     e.Offset.Lerp(other.Offset, t),
	}
}
