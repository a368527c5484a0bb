// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides normalized [0,1] -> [0,1] easing functions
// (unit curves) used to shape interpolation over scroll progress.
// It supports linear, cubic Bezier, and circular-arc curve kinds,
// with evaluation, derivative estimation, and inversion.
package curve

import "math"

// epsilon is the convergence tolerance for the Bezier parameter solver.
const epsilon = 1e-8

// Kinds is the kind of unit curve function.
type Kinds int32

const (
	// Linear is the identity curve.
	Linear Kinds = iota

	// Bezier is a cubic Bezier curve through (0,0) and (1,1) with
	// two control points.
	Bezier

	// CircularIn is a quarter unit-circle arc that starts slowly.
	CircularIn

	// CircularOut is a quarter unit-circle arc that ends slowly.
	CircularOut

	// CircularInOut is two quarter arcs joined at (0.5, 0.5),
	// starting and ending slowly.
	CircularInOut
)

// Curve is a unit curve: a normalized easing function mapping
// an input progress in [0,1] to an output progress in [0,1].
// The zero value is the linear curve.
type Curve struct {

	// Kind is the kind of curve function.
	Kind Kinds

	// P1 and P2 are the control points for a [Bezier] curve;
	// unused for other kinds.
	P1 Point
	P2 Point
}

// Point is a 2D control point for a [Curve].
type Point struct {
	X float64
	Y float64
}

// Pt returns a new [Point] with the given coordinates.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// CubicBezier returns a cubic Bezier curve with the given control
// points, clamped to the unit square in X so that the curve remains
// a function of its input.
func CubicBezier(p1, p2 Point) Curve {
	p1.X = math.Min(math.Max(p1.X, 0), 1)
	p2.X = math.Min(math.Max(p2.X, 0), 1)
	return Curve{Kind: Bezier, P1: p1, P2: p2}
}

// Standard curves.
var (
	// Ease is the standard ease curve, starting gradually,
	// speeding up, and ending gradually.
	Ease = CubicBezier(Pt(0.25, 0.1), Pt(0.25, 1))

	// EaseIn starts slowly and speeds up toward the end.
	EaseIn = CubicBezier(Pt(0.42, 0), Pt(1, 1))

	// EaseOut starts quickly and slows down toward the end.
	EaseOut = CubicBezier(Pt(0, 0), Pt(0.58, 1))

	// EaseInOut combines EaseIn and EaseOut.
	EaseInOut = CubicBezier(Pt(0.42, 0), Pt(0.58, 1))

	// CircularEaseIn follows a quarter circle arc, starting slowly.
	CircularEaseIn = Curve{Kind: CircularIn}

	// CircularEaseOut follows a quarter circle arc, ending slowly.
	CircularEaseOut = Curve{Kind: CircularOut}

	// CircularEaseInOut follows two quarter circle arcs, starting
	// and ending slowly.
	CircularEaseInOut = Curve{Kind: CircularInOut}
)

// Value returns the output progress of the curve at the given input
// progress, which is clamped to [0,1].
func (c Curve) Value(at float64) float64 {
	t := math.Min(math.Max(at, 0), 1)
	switch c.Kind {
	case Linear:
		return t
	case Bezier:
		return c.sampleY(c.solveX(t))
	case CircularIn:
		return 1 - math.Sqrt(1-t*t)
	case CircularOut:
		return math.Sqrt((2 - t) * t)
	case CircularInOut:
		if t < 0.5 {
			return (1 - math.Sqrt(1-4*t*t)) / 2
		}
		u := 2 - 2*t
		return (math.Sqrt(1-u*u) + 1) / 2
	}
	return t
}

// Velocity returns the first derivative of the curve at the given
// input progress, estimated by central finite difference.
func (c Curve) Velocity(at float64) float64 {
	const h = 10 * epsilon
	lo := math.Min(math.Max(at-h, 0), 1)
	hi := math.Min(math.Max(at+h, 0), 1)
	if hi == lo {
		return 0
	}
	return (c.Value(hi) - c.Value(lo)) / (hi - lo)
}

// Inverse returns a curve that maps this curve's outputs back to its
// inputs: for a curve c, c.Inverse().Value(c.Value(t)) == t within
// solver tolerance. Bezier control points have their x and y swapped;
// the circular in and out variants swap with each other; linear and
// the in-out variants are their own inverse.
func (c Curve) Inverse() Curve {
	switch c.Kind {
	case Bezier:
		return Curve{Kind: Bezier, P1: Pt(c.P1.Y, c.P1.X), P2: Pt(c.P2.Y, c.P2.X)}
	case CircularIn:
		return Curve{Kind: CircularOut}
	case CircularOut:
		return Curve{Kind: CircularIn}
	}
	return c
}

// Cubic Bezier polynomial coefficients for one axis:
// f(t) = ((a*t + b)*t + c)*t with endpoints fixed at 0 and 1.
func coefficients(p1, p2 float64) (a, b, c float64) {
	c = 3 * p1
	b = 3*(p2-p1) - c
	a = 1 - c - b
	return
}

func (c Curve) sampleX(t float64) float64 {
	ax, bx, cx := coefficients(c.P1.X, c.P2.X)
	return ((ax*t+bx)*t + cx) * t
}

func (c Curve) sampleY(t float64) float64 {
	ay, by, cy := coefficients(c.P1.Y, c.P2.Y)
	return ((ay*t+by)*t + cy) * t
}

func (c Curve) sampleDerivativeX(t float64) float64 {
	ax, bx, cx := coefficients(c.P1.X, c.P2.X)
	return (3*ax*t+2*bx)*t + cx
}

// solveX finds the Bezier parameter t such that sampleX(t) == x,
// using up to 8 iterations of Newton-Raphson and falling back to
// bisection when the derivative vanishes or Newton fails to converge.
func (c Curve) solveX(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		err := c.sampleX(t) - x
		if math.Abs(err) < epsilon {
			return t
		}
		d := c.sampleDerivativeX(t)
		if math.Abs(d) < epsilon {
			break
		}
		t -= err / d
	}
	// bisection fallback: sampleX is monotone in t on [0,1]
	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		xt := c.sampleX(t)
		if math.Abs(xt-x) < epsilon {
			return t
		}
		if x > xt {
			lo = t
		} else {
			hi = t
		}
		t = (hi-lo)/2 + lo
	}
	return t
}
