// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import "fmt"

// Vector2 is a 2D point or vector with X and Y components.
// Two points are the same point only if both components are
// exactly equal; no tolerance is applied.
type Vector2 struct {
	X float64
	Y float64
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float64) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s
// and returns resulting vector.
func (v Vector2) MulScalar(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}
