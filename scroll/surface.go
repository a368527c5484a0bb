// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import "cogentcore.org/glide/math32"

// Scroller is the narrow interface the bridge consumes from the
// platform's imperative scroll surface. Implementations must deliver
// their gesture and scroll callbacks back into the owning [Surface]
// ([Surface.DragBegan], [Surface.WillEndDragging], [Surface.DidScroll],
// [Surface.ContainerSizeChanged]) from the host main loop.
type Scroller interface {

	// ContentOffset returns the current scroll offset in content
	// coordinates.
	ContentOffset() math32.Vector2

	// SetContentOffset commands the surface to the given offset,
	// optionally animated. The most recent command always supersedes
	// an earlier one that has not settled.
	SetContentOffset(offset math32.Vector2, animated bool)

	// ContainerSize returns the size of the visible container.
	ContainerSize() math32.Vector2

	// ContentSize returns the measured intrinsic size of the content.
	ContentSize() math32.Vector2

	// ApplyConfig translates the declarative configuration into the
	// surface's imperative settings.
	ApplyConfig(cfg *SurfaceConfig)
}

// Surface bridges a declarative scroll configuration, a target
// behavior, and a coordinator onto one imperative [Scroller] instance.
// It owns the coordinator and the run loop; all state is mutated only
// from main-loop render and event callbacks.
type Surface struct {

	// Scroller is the wrapped imperative surface.
	Scroller Scroller

	// Config is the declarative configuration, reapplied on every
	// update pass.
	Config *SurfaceConfig

	// Behavior is the target-snapping behavior. When nil, the Paging
	// config flag selects [PagingBehavior], otherwise
	// [IdentityBehavior].
	Behavior TargetBehavior

	// Coordinator reconciles gesture-driven and binding-driven
	// position changes for this surface.
	Coordinator *Coordinator

	// Loop defers post-layout geometry reads to subsequent main-loop
	// turns.
	Loop *RunLoop

	// Settings are the engine settings; nil falls back to [TheSettings].
	Settings *Settings

	// OnScroll is called with the visible region on every scroll tick,
	// after the coordinator has been updated; the transition engine
	// hooks in here.
	OnScroll func(visible Target)

	// dragStart is the content offset when the current drag began.
	dragStart math32.Vector2

	lastContainerSize math32.Vector2
}

// NewSurface returns a new surface bridging the given scroller, with
// a fresh coordinator and run loop and a default configuration.
func NewSurface(sc Scroller) *Surface {
	sf := &Surface{
		Scroller:    sc,
		Config:      &SurfaceConfig{Axes: Vertical, Clip: true},
		Coordinator: NewCoordinator(),
		Loop:        &RunLoop{},
	}
	sf.Coordinator.OnScrollRequest = func(offset math32.Vector2, animated bool) {
		sc.SetContentOffset(sf.clampOffset(offset), animated)
	}
	return sf
}

func (sf *Surface) settings() *Settings {
	if sf.Settings != nil {
		return sf.Settings
	}
	return TheSettings
}

func (sf *Surface) effectiveBehavior() TargetBehavior {
	if sf.Behavior != nil {
		return sf.Behavior
	}
	if sf.Config.Paging {
		return PagingBehavior{}
	}
	return IdentityBehavior{}
}

// Update is the declarative update pass: it reapplies the
// configuration to the imperative surface and refreshes the
// coordinator's view of the container geometry. Call it whenever the
// declarative state that produced this surface is re-evaluated.
func (sf *Surface) Update() {
	sf.Scroller.ApplyConfig(sf.Config)
	sf.Coordinator.Anchor = sf.Config.DefaultAnchor
	sf.Coordinator.ContainerSize = sf.Scroller.ContainerSize()
	if sz := sf.Scroller.ContainerSize(); sz != sf.lastContainerSize {
		sf.lastContainerSize = sz
		sf.ContainerSizeChanged()
	}
}

// VisibleTarget returns the currently visible region as a target,
// carrying the configured default anchor.
func (sf *Surface) VisibleTarget() Target {
	off := sf.Scroller.ContentOffset()
	sz := sf.Scroller.ContainerSize()
	return Target{
		Rect:   math32.Box2{Min: off, Max: off.Add(sz)},
		Anchor: sf.Config.DefaultAnchor,
	}
}

func (sf *Surface) context(dragEnd *Target, original Target) *TargetContext {
	return &TargetContext{
		OriginalTarget: original,
		DragEndTarget:  dragEnd,
		ContentSize:    sf.Scroller.ContentSize(),
		ContainerSize:  sf.Scroller.ContainerSize(),
		Axes:           sf.Config.Axes,
		Coordinator:    sf.Coordinator,
		Settings:       sf.settings(),
	}
}

// clampOffset clamps a content offset to the scrollable range,
// honoring content insets.
func (sf *Surface) clampOffset(off math32.Vector2) math32.Vector2 {
	in := sf.Config.ContentInsets
	content := sf.Scroller.ContentSize().Add(in.Size())
	container := sf.Scroller.ContainerSize()
	for d := math32.X; d <= math32.Y; d++ {
		max := math32.Max(0, content.Dim(d)-container.Dim(d))
		off.SetDim(d, math32.Clamp(off.Dim(d), -in.Leading(d), max-in.Leading(d)))
	}
	return off
}

// AlignmentOffset returns the extra per-axis offset applied to content
// placement when the content is smaller than the container along an
// axis: such content is centered (or aligned per the default anchor)
// rather than pinned to the leading edge.
func (sf *Surface) AlignmentOffset() math32.Vector2 {
	content := sf.Scroller.ContentSize()
	container := sf.Scroller.ContainerSize()
	anchor := math32.Vec2(0.5, 0.5)
	if sf.Config.DefaultAnchor != nil {
		anchor = *sf.Config.DefaultAnchor
	}
	var off math32.Vector2
	for d := math32.X; d <= math32.Y; d++ {
		free := container.Dim(d) - content.Dim(d)
		if free > 0 {
			off.SetDim(d, free*anchor.Dim(d))
		}
	}
	return off
}

// DragBegan reports that a drag gesture started. It records the drag
// origin and clears the coordinator's value-driven suppression flag.
func (sf *Surface) DragBegan() {
	sf.dragStart = sf.Scroller.ContentOffset()
	sf.Coordinator.DragBegan()
}

// WillEndDragging intercepts the platform's will-end-dragging
// callback: given the release velocity and the platform's computed
// decelerated target offset, it runs the target behavior and returns
// the snapped offset the surface should settle at.
func (sf *Surface) WillEndDragging(velocity, proposedOffset math32.Vector2) math32.Vector2 {
	container := sf.Scroller.ContainerSize()
	proposed := Target{
		Rect:   math32.Box2{Min: proposedOffset, Max: proposedOffset.Add(container)},
		Anchor: sf.Config.DefaultAnchor,
	}
	original := Target{
		Rect:   math32.Box2{Min: sf.dragStart, Max: sf.dragStart.Add(container)},
		Anchor: sf.Config.DefaultAnchor,
	}
	dragEnd := proposed
	ctx := sf.context(&dragEnd, original)
	ctx.Velocity = velocity
	t := proposed
	sf.effectiveBehavior().UpdateTarget(&t, ctx)
	return sf.clampOffset(t.Rect.Min)
}

// DidScroll intercepts the platform's did-scroll callback: it forwards
// the visible region to the coordinator (which ignores it while a
// value-driven scroll is in flight) and then notifies the transition
// hook.
func (sf *Surface) DidScroll() {
	visible := sf.VisibleTarget()
	sf.Coordinator.ScrollChanged(visible)
	if sf.OnScroll != nil {
		sf.OnScroll(visible)
	}
}

// SetPositionID handles a programmatic write to the external position
// binding, scrolling the identified geometry into view under the
// configured anchor. The scroll is applied no earlier than the next
// main-loop turn, after the render pass that issued the write has
// committed.
func (sf *Surface) SetPositionID(id any, animated bool) {
	sf.Loop.Defer(func() {
		sf.Coordinator.SetPositionID(id, animated)
	})
}

// ContainerSizeChanged re-validates the previously resolved target
// after the container size changes. The geometry read and the derived
// offset write are deferred through the run loop so that they observe
// post-layout geometry: layout commit, then read geometry, then apply
// the derived offset.
func (sf *Surface) ContainerSizeChanged() {
	sf.Loop.Defer(func() {
		current := sf.VisibleTarget()
		t := current
		sf.effectiveBehavior().UpdateTarget(&t, sf.context(nil, current))
		off := sf.clampOffset(t.Rect.Min)
		if off == current.Rect.Min {
			return
		}
		sf.Loop.Defer(func() {
			sf.Scroller.SetContentOffset(off, false)
		})
	})
}
