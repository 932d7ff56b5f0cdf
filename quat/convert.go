// SPDX-License-Identifier: MIT

// Package quat - matrix ↔ quaternion conversions.
//
// Extraction uses the trace-based method: when the matrix trace is
// positive the scalar part dominates and all four components fall out
// of the trace directly. Otherwise the largest diagonal element picks
// which component to recover first — dividing by the largest magnitude
// keeps the remaining components away from catastrophic cancellation.

package quat

import (
	"math"

	"github.com/katalvlaran/linmath/mat"
)

// FromMat3 extracts the rotation of m as a unit quaternion. m must be
// a pure rotation matrix (orthonormal, determinant +1, no scaling).
func FromMat3(m mat.Mat3) Quat {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	var q Quat
	trace := m00 + m11 + m22 + 1

	switch {
	case trace > 0:
		s := 2 * math.Sqrt(trace)
		q.X = (m21 - m12) / s
		q.Y = (m02 - m20) / s
		q.Z = (m10 - m01) / s
		q.W = 0.25 * s
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q.X = 0.25 * s
		q.Y = (m01 + m10) / s
		q.Z = (m20 + m02) / s
		q.W = (m21 - m12) / s
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q.X = (m01 + m10) / s
		q.Y = 0.25 * s
		q.Z = (m12 + m21) / s
		q.W = (m02 - m20) / s
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q.X = (m02 + m20) / s
		q.Y = (m12 + m21) / s
		q.Z = 0.25 * s
		q.W = (m10 - m01) / s
	}

	return q.Normalized()
}

// FromMat4 extracts the rotation of the upper-left 3x3 block of m.
// The block must be a pure rotation.
func FromMat4(m mat.Mat4) Quat {
	return FromMat3(m.Mat3())
}

// FromAffine4 extracts the rotation of the linear part of a.
// The linear part must be a pure rotation.
func FromAffine4(a mat.Affine4) Quat {
	return FromMat3(a.Linear())
}

// Mat3 returns the rotation matrix of q in the column-vector
// convention: q.Rotate(v) == q.Mat3().MulVec(v). q must be a unit
// quaternion.
func (q Quat) Mat3() mat.Mat3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return mat.Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat4 returns the rotation of q embedded in a 4x4 identity frame.
func (q Quat) Mat4() mat.Mat4 {
	return q.Mat3().Mat4()
}

// Affine4 returns the rotation of q as an affine transform with zero
// translation.
func (q Quat) Affine4() mat.Affine4 {
	return mat.RotationAffine4(q.Mat3())
}
