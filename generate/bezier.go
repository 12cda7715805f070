// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import "cogentcore.org/vegravis/math64"

// FlattenSteps is the number of samples taken along each Bézier
// curve, at t = i / FlattenSteps. The end point (t = 1) is not sampled.
const FlattenSteps = 100

// QuadBezier evaluates the quadratic Bézier curve at t.
func QuadBezier(p0, p1, p2 math64.Vector2, t float64) math64.Vector2 {
	mt := 1 - t
	a, b, c := mt*mt, 2*mt*t, t*t
	return p0.MulScalar(a).Add(p1.MulScalar(b)).Add(p2.MulScalar(c))
}

// CubicBezier evaluates the cubic Bézier curve at t.
func CubicBezier(p0, p1, p2, p3 math64.Vector2, t float64) math64.Vector2 {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return p0.MulScalar(a).Add(p1.MulScalar(b)).Add(p2.MulScalar(c)).Add(p3.MulScalar(d))
}

// FlattenQuad samples the quadratic Bézier curve into [FlattenSteps] points.
func FlattenQuad(p0, p1, p2 math64.Vector2) []math64.Vector2 {
	pts := make([]math64.Vector2, FlattenSteps)
	for i := range pts {
		pts[i] = QuadBezier(p0, p1, p2, float64(i)/FlattenSteps)
	}
	return pts
}

// FlattenCubic samples the cubic Bézier curve into [FlattenSteps] points.
func FlattenCubic(p0, p1, p2, p3 math64.Vector2) []math64.Vector2 {
	pts := make([]math64.Vector2, FlattenSteps)
	for i := range pts {
		pts[i] = CubicBezier(p0, p1, p2, p3, float64(i)/FlattenSteps)
	}
	return pts
}
