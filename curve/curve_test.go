// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	c := Curve{}
	assert.Equal(t, 0.0, c.Value(0))
	assert.Equal(t, 0.25, c.Value(0.25))
	assert.Equal(t, 1.0, c.Value(1))
	assert.Equal(t, 1.0, c.Value(2)) // clamped
	assert.InDelta(t, 1.0, c.Velocity(0.5), 1e-6)
	assert.Equal(t, c, c.Inverse())
}

func TestBezierEndpoints(t *testing.T) {
	for _, c := range []Curve{Ease, EaseIn, EaseOut, EaseInOut} {
		assert.InDelta(t, 0, c.Value(0), 1e-8)
		assert.InDelta(t, 1, c.Value(1), 1e-8)
	}
}

func TestBezierMonotone(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut.Value(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestBezierRoundTrip(t *testing.T) {
	for _, c := range []Curve{Ease, EaseIn, EaseOut, EaseInOut, CubicBezier(Pt(0.17, 0.67), Pt(0.83, 0.33))} {
		inv := c.Inverse()
		for i := 0; i <= 20; i++ {
			x := float64(i) / 20
			assert.InDelta(t, x, inv.Value(c.Value(x)), 1e-6, "curve %v at %v", c, x)
		}
		assert.Equal(t, c, inv.Inverse())
	}
}

func TestCircular(t *testing.T) {
	assert.InDelta(t, 0, CircularEaseIn.Value(0), 1e-8)
	assert.InDelta(t, 1, CircularEaseIn.Value(1), 1e-8)
	assert.InDelta(t, 0, CircularEaseOut.Value(0), 1e-8)
	assert.InDelta(t, 1, CircularEaseOut.Value(1), 1e-8)
	assert.InDelta(t, 0.5, CircularEaseInOut.Value(0.5), 1e-8)

	// in and out are inverses of each other
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		assert.InDelta(t, x, CircularEaseOut.Value(CircularEaseIn.Value(x)), 1e-6)
		assert.InDelta(t, x, CircularEaseIn.Value(CircularEaseOut.Value(x)), 1e-6)
	}
	assert.Equal(t, CircularEaseOut, CircularEaseIn.Inverse())
	assert.Equal(t, CircularEaseIn, CircularEaseOut.Inverse())
	assert.Equal(t, CircularEaseInOut, CircularEaseInOut.Inverse())
}

func TestVelocity(t *testing.T) {
	// ease-in starts slow and ends fast
	assert.Less(t, EaseIn.Velocity(0.1), EaseIn.Velocity(0.9))
	// ease-out starts fast and ends slow
	assert.Greater(t, EaseOut.Velocity(0.1), EaseOut.Velocity(0.9))
}
