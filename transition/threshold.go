// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transition interpolates per-view visual effects as a
// function of each view's geometric position relative to a scroll
// surface's visible region, using composable thresholds and either
// discrete or curve-shaped continuous interpolation.
package transition

import "cogentcore.org/glide/math32"

// Threshold is a composable expression determining the scalar content
// offset (the distance between the view's center and the container's
// center along the scroll axis) at which a transition is considered
// complete. Thresholds compose recursively and are evaluated at query
// time, never pre-flattened, since [Inset] and [Mix] nest.
type Threshold interface {

	// ContentOffset returns the threshold's offset value for the given
	// container and content lengths along the scroll axis.
	ContentOffset(container, content float32) float32
}

type centerThreshold struct{}

func (centerThreshold) ContentOffset(container, content float32) float32 {
	return 0
}

// Center returns the threshold crossed when the content and container
// centers coincide.
func Center() Threshold {
	return centerThreshold{}
}

type visibleThreshold struct {
	amount float32
}

func (v visibleThreshold) ContentOffset(container, content float32) float32 {
	// requiring amount of the content length to overlap the container
	return (container - content*(2*v.amount-1)) / 2
}

// Visible returns the threshold crossed when the given fraction of the
// content's length overlaps the container.
func Visible(amount float32) Threshold {
	return visibleThreshold{amount: amount}
}

type insetThreshold struct {
	distance float32
	inner    Threshold
}

func (in insetThreshold) ContentOffset(container, content float32) float32 {
	return math32.Max(0, in.inner.ContentOffset(container, content)-in.distance)
}

// Inset returns the inner threshold's offset reduced by the given
// distance, floored at zero.
func Inset(distance float32, inner Threshold) Threshold {
	return insetThreshold{distance: distance, inner: inner}
}

type mixThreshold struct {
	from   Threshold
	to     Threshold
	amount float32
}

func (m mixThreshold) ContentOffset(container, content float32) float32 {
	return math32.Lerp(m.from.ContentOffset(container, content),
		m.to.ContentOffset(container, content), m.amount)
}

// Mix linearly interpolates between two thresholds' offsets by the
// given amount.
func Mix(from, to Threshold, amount float32) Threshold {
	return mixThreshold{from: from, to: to, amount: amount}
}
