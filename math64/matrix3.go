// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"fmt"
	"math"
)

// Matrix3 is a 3x3 homogeneous transform matrix, stored row-major:
// m[row][col]. Points are treated as column vectors (x, y, 1),
// so the translation lives in the last column.
type Matrix3 [3][3]float64

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Matrix3FromSlice returns a matrix from the first 9 row-major
// values of the given slice, in the order m00 m01 m02 m10 ... m22.
func Matrix3FromSlice(v []float64) Matrix3 {
	if len(v) < 9 {
		panic(fmt.Sprintf("math64.Matrix3FromSlice: need 9 values, have %d", len(v)))
	}
	return Matrix3{
		{v[0], v[1], v[2]},
		{v[3], v[4], v[5]},
		{v[6], v[7], v[8]},
	}
}

// Scale2D returns a matrix scaling x by sx and y by sy.
func Scale2D(sx, sy float64) Matrix3 {
	return Matrix3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// Rotate2D returns a matrix rotating counter-clockwise
// by the given angle in radians.
func Rotate2D(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Skew2D returns a matrix skewing x by kx*y and y by ky*x.
func Skew2D(kx, ky float64) Matrix3 {
	return Matrix3{
		{1, kx, 0},
		{ky, 1, 0},
		{0, 0, 1},
	}
}

// Translate2D returns a matrix translating by (tx, ty).
func Translate2D(tx, ty float64) Matrix3 {
	return Matrix3{
		{1, 0, tx},
		{0, 1, ty},
		{0, 0, 1},
	}
}

// Mul returns the matrix product a * b.
// Applied to a point, b acts first and a second.
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return r
}

// IsAffine returns true if the last row is (0, 0, 1),
// in which case no perspective division is needed.
func (m Matrix3) IsAffine() bool {
	return m[2][0] == 0 && m[2][1] == 0 && m[2][2] == 1
}

// MulVector2AsPoint multiplies the point (v.X, v.Y, 1) by the matrix,
// dividing by the resulting w component for non-affine matrices.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	x := m[0][0]*v.X + m[0][1]*v.Y + m[0][2]
	y := m[1][0]*v.X + m[1][1]*v.Y + m[1][2]
	if m.IsAffine() {
		return Vector2{x, y}
	}
	w := m[2][0]*v.X + m[2][1]*v.Y + m[2][2]
	return Vector2{x / w, y / w}
}

// Compose returns the product of the stack, starting from the identity
// and right-multiplying each entry in push order.
func Compose(stack []Matrix3) Matrix3 {
	r := Identity3()
	for _, m := range stack {
		r = r.Mul(m)
	}
	return r
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[[%g %g %g] [%g %g %g] [%g %g %g]]",
		m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2], m[2][0], m[2][1], m[2][2])
}
