// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"github.com/jinzhu/copier"

	"cogentcore.org/glide/base/errors"
	"cogentcore.org/glide/math32"
)

// Insets are distances inset from each edge of a rectangle, used for
// content and indicator margins.
type Insets struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// NewInsets returns insets with all four edges set to the given value.
func NewInsets(all float32) Insets {
	return Insets{Top: all, Right: all, Bottom: all, Left: all}
}

// Leading returns the leading inset along the given dimension
// (left for X, top for Y).
func (in Insets) Leading(d math32.Dims) float32 {
	if d == math32.X {
		return in.Left
	}
	return in.Top
}

// Trailing returns the trailing inset along the given dimension
// (right for X, bottom for Y).
func (in Insets) Trailing(d math32.Dims) float32 {
	if d == math32.X {
		return in.Right
	}
	return in.Bottom
}

// Size returns the total inset size per dimension.
func (in Insets) Size() math32.Vector2 {
	return math32.Vec2(in.Left+in.Right, in.Top+in.Bottom)
}

// IndicatorVisibility controls whether scroll indicators are shown.
type IndicatorVisibility int32

const (
	// IndicatorsAutomatic shows indicators based on platform defaults.
	IndicatorsAutomatic IndicatorVisibility = iota

	// IndicatorsVisible always shows indicators while scrolling.
	IndicatorsVisible

	// IndicatorsHidden never shows indicators.
	IndicatorsHidden
)

// SurfaceConfig is the declarative configuration of a scroll surface,
// translated onto the imperative surface's settings on every
// declarative update pass. It is a plain value; use [SurfaceConfig.Clone]
// to derive modified copies from a shared prototype.
type SurfaceConfig struct {

	// Axes are the axes along which the surface can scroll.
	Axes Axes

	// Bounce enables bounce-past-edge per axis.
	Bounce Axes

	// Clip clips content to the container bounds.
	Clip bool

	// Disabled disables scrolling entirely while leaving the
	// configuration otherwise intact.
	Disabled bool

	// Paging snaps scrolling to container-size pages; it implies the
	// fast deceleration rate unless Deceleration is set explicitly.
	Paging bool

	// Deceleration is the deceleration rate applied after a drag
	// releases; zero uses the settings default.
	Deceleration float32

	// ContentInsets are the margins applied around the content.
	ContentInsets Insets

	// IndicatorInsets are the margins applied to the scroll indicators.
	IndicatorInsets Insets

	// Indicators controls indicator visibility.
	Indicators IndicatorVisibility

	// DefaultAnchor is the default anchor used for position-binding
	// scrolls and for aligning content smaller than the container;
	// nil is top-leading.
	DefaultAnchor *math32.Vector2
}

// Clone returns a deep copy of the configuration.
func (cfg *SurfaceConfig) Clone() *SurfaceConfig {
	nc := &SurfaceConfig{}
	errors.Must(copier.CopyWithOption(nc, cfg, copier.Option{DeepCopy: true}))
	return nc
}

// DecelerationRate returns the effective deceleration rate under the
// given settings, resolving the zero value to the paging-appropriate
// default.
func (cfg *SurfaceConfig) DecelerationRate(st *Settings) float32 {
	if cfg.Deceleration != 0 {
		return cfg.Deceleration
	}
	if cfg.Paging {
		return st.DecelerationFast
	}
	return st.DecelerationNormal
}
