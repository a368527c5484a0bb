// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glide/math32"
)

// fakeScroller is a test double for the platform scroll surface.
type fakeScroller struct {
	offset    math32.Vector2
	container math32.Vector2
	content   math32.Vector2
	applied   []*SurfaceConfig
	animated  []bool
}

func (fs *fakeScroller) ContentOffset() math32.Vector2 { return fs.offset }

func (fs *fakeScroller) SetContentOffset(offset math32.Vector2, animated bool) {
	fs.offset = offset
	fs.animated = append(fs.animated, animated)
}

func (fs *fakeScroller) ContainerSize() math32.Vector2 { return fs.container }

func (fs *fakeScroller) ContentSize() math32.Vector2 { return fs.content }

func (fs *fakeScroller) ApplyConfig(cfg *SurfaceConfig) { fs.applied = append(fs.applied, cfg) }

func newTestSurface() (*Surface, *fakeScroller) {
	fs := &fakeScroller{
		container: math32.Vec2(100, 100),
		content:   math32.Vec2(100, 1000),
	}
	sf := NewSurface(fs)
	return sf, fs
}

func TestUpdateAppliesConfig(t *testing.T) {
	sf, fs := newTestSurface()
	sf.Config.Paging = true
	sf.Update()
	require.Len(t, fs.applied, 1)
	assert.Same(t, sf.Config, fs.applied[0])
	assert.Equal(t, fs.container, sf.Coordinator.ContainerSize)
}

func TestWillEndDraggingPaging(t *testing.T) {
	sf, fs := newTestSurface()
	sf.Config.Paging = true
	sf.Update()

	// decelerating from 400 to 340 snaps back to the 300 page
	fs.offset = math32.Vec2(0, 400)
	sf.DragBegan()
	off := sf.WillEndDragging(math32.Vec2(0, -120), math32.Vec2(0, 340))
	assert.Equal(t, float32(300), off.Y)

	// a short forward fling that rounds back onto the starting page
	// still advances one page in the direction of travel
	fs.offset = math32.Vec2(0, 300)
	sf.DragBegan()
	off = sf.WillEndDragging(math32.Vec2(0, 120), math32.Vec2(0, 340))
	assert.Equal(t, float32(400), off.Y)
}

func TestWillEndDraggingViewAligned(t *testing.T) {
	sf, fs := newTestSurface()
	sf.Behavior = ViewAlignedBehavior{}
	for i, y := range []float32{100, 300, 500} {
		ns := sf.Coordinator.NextNamespace()
		sf.Coordinator.RegisterGeometry(ns, math32.B2(0, y, 100, y+100))
		sf.Coordinator.SetIdentity(ns, i)
	}
	sf.Update()
	fs.offset = math32.Vec2(0, 250)
	sf.DragBegan()
	off := sf.WillEndDragging(math32.Vec2(0, 80), math32.Vec2(0, 320))
	assert.Equal(t, float32(500), off.Y) // biased forward past the center candidate
}

func TestDidScrollDrivesCoordinatorAndHook(t *testing.T) {
	sf, fs := newTestSurface()
	for i, y := range []float32{100, 300, 500} {
		ns := sf.Coordinator.NextNamespace()
		sf.Coordinator.RegisterGeometry(ns, math32.B2(0, y, 100, y+100))
		sf.Coordinator.SetIdentity(ns, i)
	}
	var ticks []Target
	sf.OnScroll = func(visible Target) { ticks = append(ticks, visible) }
	var echoed []any
	sf.Coordinator.OnPositionIDFromScroll = func(id any) { echoed = append(echoed, id) }
	sf.Update()

	sf.DragBegan()
	fs.offset = math32.Vec2(0, 300)
	sf.DidScroll()
	assert.Equal(t, []any{1}, echoed)
	require.Len(t, ticks, 1)
	assert.Equal(t, float32(300), ticks[0].Rect.Min.Y)
}

func TestSetPositionIDDeferredAndSuppressed(t *testing.T) {
	sf, fs := newTestSurface()
	for i, y := range []float32{100, 300, 500} {
		ns := sf.Coordinator.NextNamespace()
		sf.Coordinator.RegisterGeometry(ns, math32.B2(0, y, 100, y+100))
		sf.Coordinator.SetIdentity(ns, i)
	}
	var echoed []any
	sf.Coordinator.OnPositionIDFromScroll = func(id any) { echoed = append(echoed, id) }
	sf.Update()

	sf.SetPositionID(2, true)
	// the write takes effect no earlier than the next main-loop turn
	assert.Equal(t, float32(0), fs.offset.Y)
	sf.Loop.Flush()
	assert.Equal(t, float32(500), fs.offset.Y)
	assert.Equal(t, []bool{true}, fs.animated)

	// resulting scroll motion is not echoed back out
	sf.DidScroll()
	assert.Empty(t, echoed)
}

func TestContainerSizeChangedRevalidates(t *testing.T) {
	sf, fs := newTestSurface()
	sf.Config.Paging = true
	sf.Update()
	fs.offset = math32.Vec2(0, 340)

	sf.ContainerSizeChanged()
	// nothing happens until the deferred continuations run, in order
	assert.Equal(t, float32(340), fs.offset.Y)
	sf.Loop.Flush()
	assert.Equal(t, float32(300), fs.offset.Y)
}

func TestClampOffsetInsets(t *testing.T) {
	sf, _ := newTestSurface()
	sf.Config.ContentInsets = Insets{Top: 10, Bottom: 20}
	off := sf.clampOffset(math32.Vec2(0, -50))
	assert.Equal(t, float32(-10), off.Y)
	off = sf.clampOffset(math32.Vec2(0, 5000))
	// content 1000 + 30 insets - 100 container, relative to -10 leading
	assert.Equal(t, float32(920), off.Y)
}

func TestAlignmentOffsetCentersSmallContent(t *testing.T) {
	sf, fs := newTestSurface()
	fs.content = math32.Vec2(100, 40)
	assert.Equal(t, float32(30), sf.AlignmentOffset().Y)

	leading := math32.Vector2{}
	sf.Config.DefaultAnchor = &leading
	assert.Equal(t, float32(0), sf.AlignmentOffset().Y)
}

func TestSettingsTOML(t *testing.T) {
	st := &Settings{}
	st.Defaults()
	st.EdgeEpsilon = 0.25
	st.WheelSpeed = 3

	fn := filepath.Join(t.TempDir(), "scroll.toml")
	require.NoError(t, st.Save(fn))

	got := &Settings{}
	require.NoError(t, got.Open(fn))
	assert.Equal(t, st, got)
}

func TestConfigClone(t *testing.T) {
	anchor := math32.Vec2(0.5, 0)
	cfg := &SurfaceConfig{Axes: Both, Paging: true, DefaultAnchor: &anchor}
	nc := cfg.Clone()
	assert.Equal(t, cfg, nc)
	nc.DefaultAnchor.X = 1
	assert.Equal(t, float32(0.5), cfg.DefaultAnchor.X) // deep copy
}

func TestConfigDeceleration(t *testing.T) {
	st := TheSettings
	cfg := &SurfaceConfig{}
	assert.Equal(t, st.DecelerationNormal, cfg.DecelerationRate(st))
	cfg.Paging = true
	assert.Equal(t, st.DecelerationFast, cfg.DecelerationRate(st))
	cfg.Deceleration = 0.5
	assert.Equal(t, float32(0.5), cfg.DecelerationRate(st))
}

func TestRunLoopOrder(t *testing.T) {
	rl := &RunLoop{}
	var order []string
	rl.Defer(func() {
		order = append(order, "a")
		rl.Defer(func() { order = append(order, "c") })
	})
	rl.Defer(func() { order = append(order, "b") })
	rl.Flush()
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, rl.Len())
}
