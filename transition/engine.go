// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"cogentcore.org/glide/curve"
	"cogentcore.org/glide/math32"
	"cogentcore.org/glide/scroll"
)

// Modes are the interpolation modes of a scroll transition.
type Modes int32

const (
	// ModeIdentity leaves views unmodified regardless of position.
	ModeIdentity Modes = iota

	// ModeAnimated steps discretely between the phase and identity
	// effects when a view crosses its threshold; the host animates
	// the resulting change.
	ModeAnimated

	// ModeInteractive ramps continuously between the phase and
	// identity effects as the view moves from fully hidden to its
	// threshold, shaped by the configured curve.
	ModeInteractive
)

// Config is the immutable configuration of a scroll transition for one
// view: the thresholds at which the transition completes on each side
// of the visible region, the interpolation mode, the shaping curve,
// and the effect applied while the view is beyond its threshold.
type Config struct {

	// TopLeading is the threshold for views entering from the top or
	// leading edge; nil means [Center].
	TopLeading Threshold

	// BottomTrailing is the threshold for views entering from the
	// bottom or trailing edge; nil means [Center].
	BottomTrailing Threshold

	// Mode is the interpolation mode.
	Mode Modes

	// Curve shapes the interactive ramp; the zero value is linear.
	Curve curve.Curve

	// Phase is the effect applied to a view that has not yet crossed
	// its threshold.
	Phase Effect

	// Axis is the scroll axis to measure along; nil uses the bound
	// surface's dominant axis.
	Axis *math32.Dims
}

// Engine computes per-view effects as a function of each view's frame
// relative to a scroll surface's visible region. It is recomputed on
// every scroll tick; it holds no per-view state.
type Engine struct {

	// Config is the transition configuration.
	Config Config

	visible math32.Box2
}

// NewEngine returns a new engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{Config: cfg}
}

// SetVisible updates the visible region the engine measures against,
// in content coordinates.
func (en *Engine) SetVisible(visible math32.Box2) {
	en.visible = visible
}

func thresholdOrCenter(th Threshold) Threshold {
	if th != nil {
		return th
	}
	return Center()
}

// ComputeEffects returns the effects for a view with the given frame
// in content coordinates, measured along the given axis: one for the
// top/leading threshold and one for the bottom/trailing threshold.
// A view past its threshold toward the visible center gets the
// identity effect; one fully hidden gets the phase effect.
func (en *Engine) ComputeEffects(frame math32.Box2, axis math32.Dims) (topLeading, bottomTrailing Effect) {
	container := en.visible.Size().Dim(axis)
	content := frame.Size().Dim(axis)
	offset := frame.Center().Dim(axis) - en.visible.Center().Dim(axis)
	topLeading = en.effect(-offset, container, content, thresholdOrCenter(en.Config.TopLeading))
	bottomTrailing = en.effect(offset, container, content, thresholdOrCenter(en.Config.BottomTrailing))
	return
}

// effect computes one side's effect. signedOffset is the view's offset
// from the visible center, oriented so that positive values are beyond
// the threshold on this side.
func (en *Engine) effect(signedOffset, container, content float32, th Threshold) Effect {
	amount := en.amount(signedOffset, container, content, th)
	return en.Config.Phase.Lerp(Identity, amount)
}

// amount is the interpolation amount in [0,1]: 1 at or past the
// threshold toward the center, 0 when fully hidden.
func (en *Engine) amount(signedOffset, container, content float32, th Threshold) float32 {
	if en.Config.Mode == ModeIdentity {
		return 1
	}
	complete := th.ContentOffset(container, content)
	if signedOffset <= complete {
		return 1
	}
	if en.Config.Mode == ModeAnimated {
		return 0
	}
	// fully hidden: the view's near edge coincides with the container edge
	hidden := (container + content) / 2
	if hidden <= complete {
		return 0
	}
	raw := math32.Clamp01((hidden - signedOffset) / (hidden - complete))
	return float32(en.Config.Curve.Value(float64(raw)))
}

// dominantAxis returns the axis a surface predominantly scrolls along.
func dominantAxis(sf *scroll.Surface) math32.Dims {
	if sf.Config.Axes.Has(math32.Y) {
		return math32.Y
	}
	return math32.X
}

// Bind hooks the engine into the surface's scroll tick: on every tick
// it measures each registered candidate geometry against the visible
// region and reports the resulting effects through onEffects. The axis
// is the configured one, or the surface's dominant axis.
func (en *Engine) Bind(sf *scroll.Surface, onEffects func(ns scroll.Namespace, topLeading, bottomTrailing Effect)) {
	sf.OnScroll = func(visible scroll.Target) {
		en.SetVisible(visible.Rect)
		axis := dominantAxis(sf)
		if en.Config.Axis != nil {
			axis = *en.Config.Axis
		}
		sf.Coordinator.Geometries(func(ns scroll.Namespace, geometry math32.Box2) bool {
			tl, bt := en.ComputeEffects(geometry, axis)
			onEffects(ns, tl, bt)
			return true
		})
	}
}
