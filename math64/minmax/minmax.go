// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides min / max ranges used to compute
// the extent of generated polylines.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +Inf, Max to -Inf, suitable for
// iteratively calling FitValInRange.
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// IsValid returns true if Min <= Max
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns point halfway between Min and Max
func (mr *F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range.
// NaN and infinite values are ignored. Returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return false
	}
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Box2 is a pair of X and Y ranges, the bounding box of a set of points.
type Box2 struct {
	X F64
	Y F64
}

// NewBox2 returns an empty (invalid) box ready for FitPoint calls.
func NewBox2() Box2 {
	var b Box2
	b.X.SetInfinity()
	b.Y.SetInfinity()
	return b
}

// FitPoint extends the box to contain the point (x, y).
func (b *Box2) FitPoint(x, y float64) {
	b.X.FitValInRange(x)
	b.Y.FitValInRange(y)
}

// IsValid returns true if at least one point has been fit.
func (b *Box2) IsValid() bool {
	return b.X.IsValid() && b.Y.IsValid()
}
