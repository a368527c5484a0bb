// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import "cogentcore.org/glide/math32"

// TargetContext carries the geometry and gesture context for one
// [TargetBehavior.UpdateTarget] call. All sizes and positions are in
// the same coordinate space as the container.
type TargetContext struct {

	// OriginalTarget is the target when the current scroll interaction
	// began (or the previously resolved target for a size-change
	// re-validation).
	OriginalTarget Target

	// DragEndTarget is the decelerated target computed by the platform
	// when a drag gesture is releasing; nil when the behavior is
	// invoked to re-validate after a container size change.
	DragEndTarget *Target

	// Velocity is the gesture velocity at release, in points/second.
	Velocity math32.Vector2

	// ContentSize is the total size of the scrollable content.
	ContentSize math32.Vector2

	// ContainerSize is the size of the visible container.
	ContainerSize math32.Vector2

	// Axes is the set of axes free to scroll.
	Axes Axes

	// Coordinator provides registered candidate geometries for
	// view-aligned snapping; may be nil for behaviors that do not
	// need it.
	Coordinator *Coordinator

	// Settings are the engine settings; nil falls back to [TheSettings].
	Settings *Settings
}

func (ctx *TargetContext) settings() *Settings {
	if ctx.Settings != nil {
		return ctx.Settings
	}
	return TheSettings
}

// pinned reports whether the target is pinned at a content edge along
// the given dimension: its origin is at (or within EdgeEpsilon of)
// the leading content edge, or its far edge is at the trailing
// content edge. Pinned axes are never adjusted by the built-in
// behaviors.
func (ctx *TargetContext) pinned(t *Target, d math32.Dims) bool {
	eps := ctx.settings().EdgeEpsilon
	origin := t.Rect.Min.Dim(d)
	if origin <= eps {
		return true
	}
	return origin+t.Rect.Size().Dim(d) >= ctx.ContentSize.Dim(d)-eps
}

// maxOrigin returns the maximum scrollable origin along the given
// dimension, floored at zero.
func (ctx *TargetContext) maxOrigin(d math32.Dims) float32 {
	return math32.Max(0, ctx.ContentSize.Dim(d)-ctx.ContainerSize.Dim(d))
}

// TargetBehavior is a pluggable policy that adjusts a proposed scroll
// target in place, given gesture and geometry context. It is invoked
// when a drag gesture releases with a computed decelerated target
// (context carries a non-nil DragEndTarget) and when the container
// size changes and the previously resolved target must be
// re-validated (DragEndTarget is nil).
type TargetBehavior interface {
	UpdateTarget(t *Target, ctx *TargetContext)
}

// IdentityBehavior leaves the target unmodified.
type IdentityBehavior struct{}

func (IdentityBehavior) UpdateTarget(t *Target, ctx *TargetContext) {}

// PagingBehavior rounds the target's origin to the nearest integer
// multiple of the container size along each axis that is free to
// scroll and not pinned at a content edge. When a drag-end target is
// present and the naive rounding would not move from the original
// page, it advances one page in the gesture's direction of travel.
// An already page-aligned target is a fixed point.
type PagingBehavior struct{}

func (PagingBehavior) UpdateTarget(t *Target, ctx *TargetContext) {
	for d := math32.X; d <= math32.Y; d++ {
		if !ctx.Axes.Has(d) || ctx.pinned(t, d) {
			continue
		}
		container := ctx.ContainerSize.Dim(d)
		if container <= 0 {
			continue
		}
		origin := t.Rect.Min.Dim(d)
		snapped := math32.Round(origin/container) * container
		if ctx.DragEndTarget != nil {
			start := ctx.OriginalTarget.Rect.Min.Dim(d)
			travel := ctx.DragEndTarget.Rect.Min.Dim(d) - start
			if travel != 0 && snapped == math32.Round(start/container)*container {
				snapped += math32.Sign(travel) * container
			}
		}
		snapped = math32.Clamp(snapped, 0, ctx.maxOrigin(d))
		*t = t.withOrigin(d, snapped)
	}
}

// ViewAlignedBehavior snaps the target to the nearest registered
// candidate geometry: it queries the coordinator for the closest
// candidates bucketed into the center and the 8 compass directions
// relative to the proposed target, applies a travel-direction bias
// per axis when a drag-end target is present, and aligns the chosen
// candidate under the target's anchor. Only axes free to scroll and
// not pinned at a content edge are adjusted.
type ViewAlignedBehavior struct{}

func (ViewAlignedBehavior) UpdateTarget(t *Target, ctx *TargetContext) {
	co := ctx.Coordinator
	if co == nil || co.NumCandidates() == 0 {
		return
	}
	targets := co.ClosestScrollTargets(*t)
	chosen := targets.Center
	if chosen == nil {
		return
	}
	if ctx.DragEndTarget != nil {
		var bias math32.Vector2
		for d := math32.X; d <= math32.Y; d++ {
			if !ctx.Axes.Has(d) || ctx.pinned(t, d) {
				continue
			}
			travel := ctx.DragEndTarget.AnchorPoint().Dim(d) - ctx.OriginalTarget.AnchorPoint().Dim(d)
			bias.SetDim(d, math32.Sign(travel))
		}
		if n := targets.Toward(bias); n != nil {
			chosen = n
		}
	}
	origin := offsetFor(chosen.Rect, t.anchorOrDefault(), ctx.ContainerSize)
	for d := math32.X; d <= math32.Y; d++ {
		if !ctx.Axes.Has(d) || ctx.pinned(t, d) {
			continue
		}
		*t = t.withOrigin(d, math32.Clamp(origin.Dim(d), 0, ctx.maxOrigin(d)))
	}
}
