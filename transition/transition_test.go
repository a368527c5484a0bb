// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glide/curve"
	"cogentcore.org/glide/math32"
	"cogentcore.org/glide/scroll"
)

func TestThresholdValues(t *testing.T) {
	assert.Equal(t, float32(0), Center().ContentOffset(100, 50))

	// half the content visible: its center sits on the container edge
	assert.Equal(t, float32(50), Visible(0.5).ContentOffset(100, 50))
	// fully visible: trailing edge coincides with the container edge
	assert.Equal(t, float32(25), Visible(1).ContentOffset(100, 50))
	assert.Equal(t, float32(75), Visible(0).ContentOffset(100, 50))
}

func TestThresholdMixEndpoints(t *testing.T) {
	a := Visible(1)
	b := Center()
	sizes := [][2]float32{{100, 50}, {300, 100}, {50, 200}}
	for _, sz := range sizes {
		assert.Equal(t, a.ContentOffset(sz[0], sz[1]), Mix(a, b, 0).ContentOffset(sz[0], sz[1]))
		assert.Equal(t, b.ContentOffset(sz[0], sz[1]), Mix(a, b, 1).ContentOffset(sz[0], sz[1]))
	}
	assert.Equal(t, float32(12.5), Mix(a, b, 0.5).ContentOffset(100, 50))
}

func TestThresholdInsetMonotoneAndFloored(t *testing.T) {
	inner := Visible(1) // 25 at container=100, content=50
	last := math32.Infinity
	for _, d := range []float32{0, 10, 25, 40, 1000} {
		v := Inset(d, inner).ContentOffset(100, 50)
		assert.LessOrEqual(t, v, last)
		assert.GreaterOrEqual(t, v, float32(0))
		last = v
	}
	assert.Equal(t, float32(0), Inset(40, inner).ContentOffset(100, 50))

	// composition nests: insetting a mix evaluates the mix first
	assert.Equal(t, float32(2.5), Inset(10, Mix(inner, Center(), 0.5)).ContentOffset(100, 50))
}

func TestEffectLerp(t *testing.T) {
	phase := Effect{Opacity: 0, Scale: 0.5, BlurRadius: 8, Offset: math32.Vec2(0, 20)}
	mid := phase.Lerp(Identity, 0.5)
	assert.Equal(t, float32(0.5), mid.Opacity)
	assert.Equal(t, float32(0.75), mid.Scale)
	assert.Equal(t, float32(4), mid.BlurRadius)
	assert.Equal(t, float32(10), mid.Offset.Y)
	assert.Equal(t, phase, phase.Lerp(Identity, 0))
	assert.Equal(t, Identity, phase.Lerp(Identity, 1))
}

// frameAt returns a 100x50 frame whose vertical center is at y.
func frameAt(y float32) math32.Box2 {
	return math32.B2(0, y-25, 100, y+25)
}

func TestEngineIdentityMode(t *testing.T) {
	en := NewEngine(Config{Mode: ModeIdentity, Phase: Effect{Opacity: 0}})
	en.SetVisible(math32.B2(0, 0, 100, 100))
	tl, bt := en.ComputeEffects(frameAt(-200), math32.Y)
	assert.Equal(t, Identity, tl)
	assert.Equal(t, Identity, bt)
}

func TestEngineAnimatedMode(t *testing.T) {
	en := NewEngine(Config{Mode: ModeAnimated, Phase: Effect{Opacity: 0, Scale: 1}})
	en.SetVisible(math32.B2(0, 0, 100, 100))

	// above the visible center: past the top-leading center threshold
	tl, bt := en.ComputeEffects(frameAt(20), math32.Y)
	assert.Equal(t, float32(0), tl.Opacity)
	assert.Equal(t, Identity, bt)

	// below the visible center: the sides swap
	tl, bt = en.ComputeEffects(frameAt(80), math32.Y)
	assert.Equal(t, Identity, tl)
	assert.Equal(t, float32(0), bt.Opacity)

	// exactly at the center threshold on both sides
	tl, bt = en.ComputeEffects(frameAt(50), math32.Y)
	assert.Equal(t, Identity, tl)
	assert.Equal(t, Identity, bt)
}

func TestEngineInteractiveRamp(t *testing.T) {
	en := NewEngine(Config{Mode: ModeInteractive, Phase: Effect{Opacity: 0, Scale: 1}})
	en.SetVisible(math32.B2(0, 0, 100, 100))

	// halfway between the center threshold (offset 0) and fully
	// hidden (offset (100+50)/2 = 75)
	tl, _ := en.ComputeEffects(frameAt(50-37.5), math32.Y)
	assert.InDelta(t, 0.5, tl.Opacity, 1e-6)

	// fully hidden and beyond clamp to the phase effect
	tl, _ = en.ComputeEffects(frameAt(50-75), math32.Y)
	assert.Equal(t, float32(0), tl.Opacity)
	tl, _ = en.ComputeEffects(frameAt(-400), math32.Y)
	assert.Equal(t, float32(0), tl.Opacity)

	// at the threshold and past it: identity
	tl, _ = en.ComputeEffects(frameAt(50), math32.Y)
	assert.Equal(t, Identity, tl)
	tl, _ = en.ComputeEffects(frameAt(70), math32.Y)
	assert.Equal(t, Identity, tl)
}

func TestEngineInteractiveCurved(t *testing.T) {
	en := NewEngine(Config{Mode: ModeInteractive, Curve: curve.EaseIn, Phase: Effect{Opacity: 0, Scale: 1}})
	en.SetVisible(math32.B2(0, 0, 100, 100))
	tl, _ := en.ComputeEffects(frameAt(50-37.5), math32.Y)
	want := curve.EaseIn.Value(0.5)
	assert.InDelta(t, want, float64(tl.Opacity), 1e-6)
	assert.Less(t, tl.Opacity, float32(0.5)) // ease-in lags linear
}

func TestEngineVisibleThreshold(t *testing.T) {
	en := NewEngine(Config{
		Mode:       ModeAnimated,
		TopLeading: Visible(0.5),
		Phase:      Effect{Opacity: 0, Scale: 1},
	})
	en.SetVisible(math32.B2(0, 0, 100, 100))

	// threshold offset for container=100, content=50 is 50: the view
	// completes as soon as half of it is visible at the top edge
	tl, _ := en.ComputeEffects(frameAt(0), math32.Y) // signed offset 50
	assert.Equal(t, Identity, tl)
	tl, _ = en.ComputeEffects(frameAt(-1), math32.Y)
	assert.Equal(t, float32(0), tl.Opacity)
}

// stubScroller is a minimal scroller for engine binding tests.
type stubScroller struct {
	offset    math32.Vector2
	container math32.Vector2
	content   math32.Vector2
}

func (ss *stubScroller) ContentOffset() math32.Vector2 { return ss.offset }

func (ss *stubScroller) SetContentOffset(offset math32.Vector2, animated bool) { ss.offset = offset }

func (ss *stubScroller) ContainerSize() math32.Vector2 { return ss.container }

func (ss *stubScroller) ContentSize() math32.Vector2 { return ss.content }

func (ss *stubScroller) ApplyConfig(cfg *scroll.SurfaceConfig) {}

func TestEngineBind(t *testing.T) {
	ss := &stubScroller{container: math32.Vec2(100, 100), content: math32.Vec2(100, 1000)}
	sf := scroll.NewSurface(ss)
	ns := sf.Coordinator.NextNamespace()
	sf.Coordinator.RegisterGeometry(ns, math32.B2(0, 120, 100, 170))
	sf.Update()

	en := NewEngine(Config{Mode: ModeAnimated, Phase: Effect{Opacity: 0, Scale: 1}})
	type result struct {
		ns     scroll.Namespace
		tl, bt Effect
	}
	var got []result
	en.Bind(sf, func(ns scroll.Namespace, tl, bt Effect) {
		got = append(got, result{ns, tl, bt})
	})

	sf.DidScroll()
	require.Len(t, got, 1)
	assert.Equal(t, ns, got[0].ns)
	// the candidate sits below the visible region
	assert.Equal(t, Identity, got[0].tl)
	assert.Equal(t, float32(0), got[0].bt.Opacity)

	// scrolled so the candidate is centered: both sides identity
	got = nil
	ss.offset = math32.Vec2(0, 95)
	sf.DidScroll()
	require.Len(t, got, 1)
	assert.Equal(t, Identity, got[0].tl)
	assert.Equal(t, Identity, got[0].bt)
}
