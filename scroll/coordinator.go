// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"cogentcore.org/glide/base/ordmap"
	"cogentcore.org/glide/math32"
)

// Namespace is an ephemeral registration key for one candidate child
// view under a scroll surface. Namespaces are allocated by
// [Coordinator.NextNamespace] and remain valid until unregistered.
type Namespace int64

// registration is one registered candidate: its geometry in content
// coordinates and its externally visible position identity (nil if
// the child has no identity).
type registration struct {
	Geometry math32.Box2
	ID       any
}

// Compass is one of the 8 compass directions used to bucket
// nearest-candidate queries around the center candidate.
type Compass int32

const (
	North Compass = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// DirectionalTargets is the result of a bucketed nearest-candidate
// query: the nearest candidate overall, plus the nearest candidate
// whose anchor point lies in each compass direction relative to the
// center candidate's anchor point. Absent slots are nil.
type DirectionalTargets struct {
	Center    *Target
	Direction [8]*Target
}

// Toward returns the candidate in the compass direction indicated by
// the per-axis bias signs (-1, 0, or 1 per dimension; y grows
// downward, so a positive y bias is south). It returns nil for a zero
// bias or an empty slot.
func (dt *DirectionalTargets) Toward(bias math32.Vector2) *Target {
	var c Compass
	switch {
	case bias.X > 0 && bias.Y < 0:
		c = Northeast
	case bias.X > 0 && bias.Y > 0:
		c = Southeast
	case bias.X < 0 && bias.Y > 0:
		c = Southwest
	case bias.X < 0 && bias.Y < 0:
		c = Northwest
	case bias.X > 0:
		c = East
	case bias.X < 0:
		c = West
	case bias.Y > 0:
		c = South
	case bias.Y < 0:
		c = North
	default:
		return nil
	}
	return dt.Direction[c]
}

// compassOf buckets the position of pt relative to center into a
// compass direction, returning false if the two coincide on both axes.
func compassOf(pt, center math32.Vector2) (Compass, bool) {
	dx := math32.Sign(pt.X - center.X)
	dy := math32.Sign(pt.Y - center.Y)
	switch {
	case dx > 0 && dy < 0:
		return Northeast, true
	case dx > 0 && dy > 0:
		return Southeast, true
	case dx < 0 && dy > 0:
		return Southwest, true
	case dx < 0 && dy < 0:
		return Northwest, true
	case dx > 0:
		return East, true
	case dx < 0:
		return West, true
	case dy > 0:
		return South, true
	case dy < 0:
		return North, true
	}
	return 0, false
}

// Coordinator is the per-surface mutable state reconciling
// gesture-driven and binding-driven scroll position changes. It owns
// the registered candidate geometries and identities, the last-known
// externally bound position identity, and the callbacks bridging the
// two directions of position flow. A coordinator is owned exclusively
// by one scroll surface and is only mutated from main-loop callbacks;
// its lifetime is the surface's lifetime.
type Coordinator struct {

	// Anchor is the preferred fractional anchor used when scrolling a
	// bound identity into view; nil means top-leading.
	Anchor *math32.Vector2

	// OnPositionIDFromScroll fires when gesture-driven settling changes
	// the nearest visible identity. It is the echo of gesture motion
	// out through the external position binding, and fires exactly
	// once per distinct settle.
	OnPositionIDFromScroll func(id any)

	// OnScrollRequest fires when a write to the external position
	// binding requires the surface to scroll to the given content
	// offset; animated reflects whether the write happened inside an
	// animated transaction.
	OnScrollRequest func(offset math32.Vector2, animated bool)

	// ContainerSize is the current visible container size, maintained
	// by the surface bridge.
	ContainerSize math32.Vector2

	registrations ordmap.Map[Namespace, registration]
	nextNamespace Namespace

	// positionID is the last-known externally bound identity.
	positionID any

	// valueDriven suppresses gesture echo while a binding-driven
	// scroll is in flight; one-shot, cleared on the next drag begin.
	valueDriven bool

	// pendingID is a binding write whose geometry has not registered
	// yet; fulfilled on registration.
	pendingID       any
	pendingAnimated bool
}

// NewCoordinator returns a new coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// NextNamespace allocates a fresh namespace for a child registration.
func (co *Coordinator) NextNamespace() Namespace {
	co.nextNamespace++
	return co.nextNamespace
}

// RegisterGeometry registers or updates the candidate geometry for
// the given namespace. Registration is idempotent: repeated calls
// with the same namespace update the geometry in place and preserve
// the original registration order. If a binding write is pending for
// this candidate's identity, it is fulfilled now.
func (co *Coordinator) RegisterGeometry(ns Namespace, geometry math32.Box2) {
	reg, _ := co.registrations.ValueByKey(ns)
	reg.Geometry = geometry
	co.registrations.Add(ns, reg)
	if co.pendingID != nil && reg.ID == co.pendingID {
		id, animated := co.pendingID, co.pendingAnimated
		co.pendingID = nil
		co.scrollToID(id, animated)
	}
}

// SetIdentity associates the externally visible position identity
// with the given namespace.
func (co *Coordinator) SetIdentity(ns Namespace, id any) {
	reg, _ := co.registrations.ValueByKey(ns)
	reg.ID = id
	co.registrations.Add(ns, reg)
	if co.pendingID != nil && id == co.pendingID {
		pid, animated := co.pendingID, co.pendingAnimated
		co.pendingID = nil
		co.scrollToID(pid, animated)
	}
}

// UnregisterGeometry removes the registration for the given
// namespace. It is idempotent.
func (co *Coordinator) UnregisterGeometry(ns Namespace) {
	co.registrations.DeleteKey(ns)
}

// Geometries calls the given function for each registered candidate
// geometry in registration order, stopping if it returns false.
// The transition engine reads the candidate geometries through here
// on every scroll tick.
func (co *Coordinator) Geometries(fn func(ns Namespace, geometry math32.Box2) bool) {
	for _, kv := range co.registrations.Order {
		if !fn(kv.Key, kv.Value.Geometry) {
			return
		}
	}
}

// NumCandidates returns the number of registered candidates.
func (co *Coordinator) NumCandidates() int {
	return co.registrations.Len()
}

// PositionID returns the last-known externally bound position identity.
func (co *Coordinator) PositionID() any {
	return co.positionID
}

// ClosestTargetID returns the identity of the registered candidate
// whose anchor point minimizes the Euclidean distance to the query
// target's anchor point, or nil if no candidates are registered.
// Ties resolve to the earliest registration: the search iterates in
// registration order with a strict less-than comparison.
func (co *Coordinator) ClosestTargetID(to Target) any {
	best := float32(math32.Infinity)
	var id any
	for _, kv := range co.registrations.Order {
		cand := Target{Rect: kv.Value.Geometry, Anchor: to.Anchor}
		d := to.DistanceTo(cand)
		if d < best {
			best = d
			id = kv.Value.ID
		}
	}
	return id
}

// ClosestScrollTargets returns the nearest registered candidate as
// the center, and, of the remainder, the nearest candidate in each
// compass direction relative to the center candidate's anchor point.
// The underlying sort is stable, so candidates at equal distance
// resolve in registration order.
func (co *Coordinator) ClosestScrollTargets(to Target) DirectionalTargets {
	dt := DirectionalTargets{}
	n := co.registrations.Len()
	if n == 0 {
		return dt
	}
	cands := make([]Target, n)
	for i, kv := range co.registrations.Order {
		cands[i] = Target{Rect: kv.Value.Geometry, Anchor: to.Anchor}
	}
	sortByDistance(cands, to)
	center := cands[0]
	dt.Center = &center
	cpt := center.AnchorPoint()
	for i := 1; i < n; i++ {
		c, ok := compassOf(cands[i].AnchorPoint(), cpt)
		if !ok || dt.Direction[c] != nil {
			continue
		}
		cand := cands[i]
		dt.Direction[c] = &cand
	}
	return dt
}

// anchorOrDefault returns the coordinator's configured anchor,
// defaulting to top-leading.
func (co *Coordinator) anchorOrDefault() math32.Vector2 {
	if co.Anchor != nil {
		return *co.Anchor
	}
	return math32.Vector2{}
}

// SetPositionID handles a programmatic write to the external position
// binding: it computes the content offset that brings the identified
// geometry into view under the coordinator's configured anchor and
// requests the surface apply it. The write is not echoed back as if
// it were gesture-driven. If the identity has no registered geometry
// yet, the request is held until the geometry registers; every write
// supersedes a held one, so only the most recent binding value can
// ever be fulfilled late.
func (co *Coordinator) SetPositionID(id any, animated bool) {
	co.positionID = id
	co.pendingID = nil
	if id == nil {
		return
	}
	co.scrollToID(id, animated)
}

func (co *Coordinator) scrollToID(id any, animated bool) {
	for _, kv := range co.registrations.Order {
		if kv.Value.ID != id {
			continue
		}
		co.valueDriven = true
		if co.OnScrollRequest != nil {
			co.OnScrollRequest(offsetFor(kv.Value.Geometry, co.anchorOrDefault(), co.ContainerSize), animated)
		}
		return
	}
	// geometry not registered yet: no-op until registration
	co.pendingID = id
	co.pendingAnimated = animated
}

// DragBegan clears the value-driven suppression flag: subsequent
// scroll changes are gesture-driven.
func (co *Coordinator) DragBegan() {
	co.valueDriven = false
}

// ScrollChanged reports the current visible region after scroll
// motion. When the motion is gesture-driven (not suppressed by a
// value-driven scroll in flight) and the nearest visible identity
// differs from the bound identity, the new identity is recorded and
// echoed out through OnPositionIDFromScroll exactly once.
func (co *Coordinator) ScrollChanged(visible Target) {
	if co.valueDriven {
		return
	}
	id := co.ClosestTargetID(visible)
	if id == nil || id == co.positionID {
		return
	}
	co.positionID = id
	if co.OnPositionIDFromScroll != nil {
		co.OnPositionIDFromScroll(id)
	}
}
