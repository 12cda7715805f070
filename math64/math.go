// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 is a float64 based vector and matrix package
// for the 2D geometry produced by the drawing language interpreter.
// It mirrors the naming of cogentcore math32, but uses row-major
// 3x3 homogeneous matrices so that user-supplied PUSH_TRANS
// arguments map directly onto matrix entries.
package math64

import "math"

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}
