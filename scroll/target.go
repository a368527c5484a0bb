// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scroll provides the scroll target, position, and transition
// coordination engine: pluggable target-snapping behaviors, a
// per-surface coordinator reconciling gesture-driven and binding-driven
// position changes, and a bridge translating declarative scroll
// configuration onto an imperative scroll surface.
//
// Everything in this package runs on the host main loop: there is no
// locking, and "waiting" for layout is modeled as explicit ordered
// continuations on a [RunLoop], never as a blocking call.
package scroll

import "cogentcore.org/glide/math32"

// Target describes where a scrollable surface should settle:
// a rectangle in the surface's content coordinate space, plus an
// optional fractional anchor point locating a reference position
// within the rectangle. Target is a pure value, passed by value
// through behavior calls.
type Target struct {

	// Rect is the target rectangle in content coordinates.
	Rect math32.Box2

	// Anchor is the fractional (0-1 per axis) anchor point, or nil,
	// which is treated as top-leading for distance and offset math.
	Anchor *math32.Vector2
}

// NewTarget returns a target with the given rectangle and no anchor.
func NewTarget(rect math32.Box2) Target {
	return Target{Rect: rect}
}

// anchorOrDefault returns the anchor, defaulting to top-leading.
func (t Target) anchorOrDefault() math32.Vector2 {
	if t.Anchor != nil {
		return *t.Anchor
	}
	return math32.Vector2{}
}

// AnchorPoint returns the absolute position of the anchor point
// within the target rectangle.
func (t Target) AnchorPoint() math32.Vector2 {
	return t.Rect.ProjectPoint(t.anchorOrDefault())
}

// DistanceTo returns the Euclidean distance between this target's
// anchor point and the other target's anchor point.
func (t Target) DistanceTo(other Target) float32 {
	return t.AnchorPoint().DistanceTo(other.AnchorPoint())
}

// withOrigin returns a copy of the target translated so that its
// origin along the given dimension is the given value; the size and
// the other dimension are unchanged.
func (t Target) withOrigin(d math32.Dims, origin float32) Target {
	delta := math32.Vector2{}
	delta.SetDim(d, origin-t.Rect.Min.Dim(d))
	t.Rect = t.Rect.Translate(delta)
	return t
}

// Axes is the set of axes along which a surface can scroll.
type Axes struct {
	X bool
	Y bool
}

// Axis set constants.
var (
	Horizontal = Axes{X: true}
	Vertical   = Axes{Y: true}
	Both       = Axes{X: true, Y: true}
)

// Has returns whether the set contains the given dimension.
func (a Axes) Has(d math32.Dims) bool {
	if d == math32.X {
		return a.X
	}
	return a.Y
}

// offsetFor returns the content offset that places the given geometry
// under the given fractional anchor within a container of the given
// size: the geometry's anchor point coincides with the container's
// anchor point.
func offsetFor(geometry math32.Box2, anchor math32.Vector2, containerSize math32.Vector2) math32.Vector2 {
	sz := geometry.Size()
	return math32.Vector2{
		X: geometry.Min.X + anchor.X*(sz.X-containerSize.X),
		Y: geometry.Min.Y + anchor.Y*(sz.Y-containerSize.Y),
	}
}
