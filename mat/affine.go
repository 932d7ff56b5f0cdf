// SPDX-License-Identifier: MIT

// Package mat - Affine4, the sparse affine 4x4 transform.
//
// Affine4 is a 4x4 matrix that stores only its upper 3x4 block; the
// fourth row is always implicitly (0, 0, 0, 1). This is the usual shape
// of rigid and scaled transforms in 3D scenes, and storing 12 elements
// instead of 16 lets composition and inversion skip the constant row
// entirely.

package mat

import (
	"fmt"

	"github.com/katalvlaran/linmath/vec"
)

// Affine4 stores the upper 3x4 rows of an affine 4x4 matrix, row-major:
// [r0c0, r0c1, r0c2, r0c3, r1c0, ...]. Column 3 holds the translation.
// The implicit fourth row is (0, 0, 0, 1). The zero value has a zero
// 3x4 block (its Mat4 expansion still carries the implicit row).
type Affine4 [12]float64

// IdentityAffine4 returns the affine identity transform.
func IdentityAffine4() Affine4 {
	return Affine4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// TranslationAffine4 returns the transform that translates by t.
func TranslationAffine4(t vec.Vec3) Affine4 {
	return Affine4{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
	}
}

// ScalingAffine4 returns the transform that scales by the factors in s.
func ScalingAffine4(s vec.Vec3) Affine4 {
	return Affine4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
	}
}

// RotationAffine4 returns the transform whose linear part is r and
// whose translation is zero.
func RotationAffine4(r Mat3) Affine4 {
	return Affine4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
	}
}

// TRS composes translation t, rotation r and scaling s into the single
// transform T·R·S (scale first, then rotate, then translate).
func TRS(t vec.Vec3, r Mat3, s vec.Vec3) Affine4 {
	return Affine4{
		r[0] * s.X, r[1] * s.Y, r[2] * s.Z, t.X,
		r[3] * s.X, r[4] * s.Y, r[5] * s.Z, t.Y,
		r[6] * s.X, r[7] * s.Y, r[8] * s.Z, t.Z,
	}
}

// AffineFromMat4 extracts the upper 3x4 block of m.
// Returns ErrNotAffine unless the bottom row of m is exactly
// (0, 0, 0, 1).
func AffineFromMat4(m Mat4) (Affine4, error) {
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		return Affine4{}, fmt.Errorf("AffineFromMat4: %w", ErrNotAffine)
	}
	var out Affine4
	copy(out[:], m[:12])
	return out, nil
}

// At returns the element at row r, column c. Only the stored rows are
// addressable: r must be in [0, 3) and c in [0, 4); the implicit fourth
// row is reachable through Mat4. Returns ErrIndexOutOfBounds otherwise.
func (a Affine4) At(r, c int) (float64, error) {
	if r < 0 || r >= 3 || c < 0 || c >= 4 {
		return 0, fmt.Errorf("Affine4.At(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	return a[r*4+c], nil
}

// Set assigns s to the element at row r, column c. The implicit fourth
// row is not writable; r must be in [0, 3) and c in [0, 4).
func (a *Affine4) Set(r, c int, s float64) error {
	if r < 0 || r >= 3 || c < 0 || c >= 4 {
		return fmt.Errorf("Affine4.Set(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	a[r*4+c] = s
	return nil
}

// Linear returns the upper-left 3x3 block (rotation/scale part).
func (a Affine4) Linear() Mat3 {
	return Mat3{
		a[0], a[1], a[2],
		a[4], a[5], a[6],
		a[8], a[9], a[10],
	}
}

// Translation returns column 3 (the translation part).
func (a Affine4) Translation() vec.Vec3 {
	return vec.Vec3{X: a[3], Y: a[7], Z: a[11]}
}

// Mul returns the affine composition a × b, folding b's implicit
// (0, 0, 0, 1) row into the product.
func (a Affine4) Mul(b Affine4) Affine4 {
	var out Affine4
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] + a[r*4+2]*b[2*4+c]
		}
		// b(3,3) is the implicit 1: a's translation survives.
		out[r*4+3] += a[r*4+3]
	}
	return out
}

// MulPoint transforms the point v (homogeneous w=1), applying the
// linear part and the translation.
func (a Affine4) MulPoint(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: a[0]*v.X + a[1]*v.Y + a[2]*v.Z + a[3],
		Y: a[4]*v.X + a[5]*v.Y + a[6]*v.Z + a[7],
		Z: a[8]*v.X + a[9]*v.Y + a[10]*v.Z + a[11],
	}
}

// MulDir transforms the direction v (homogeneous w=0), applying only
// the linear part.
func (a Affine4) MulDir(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: a[0]*v.X + a[1]*v.Y + a[2]*v.Z,
		Y: a[4]*v.X + a[5]*v.Y + a[6]*v.Z,
		Z: a[8]*v.X + a[9]*v.Y + a[10]*v.Z,
	}
}

// Det returns the determinant of a, which by the implicit row equals
// the determinant of the linear 3x3 part.
func (a Affine4) Det() float64 {
	return a[0]*(a[5]*a[10]-a[6]*a[9]) -
		a[1]*(a[4]*a[10]-a[6]*a[8]) +
		a[2]*(a[4]*a[9]-a[5]*a[8])
}

// Inverse returns a⁻¹, still affine: the linear block is inverted by
// closed-form adjugate and the translation column by the cofactors of
// column 3, with the implicit row untouched.
// Returns ErrSingular when the determinant is exactly zero.
func (a Affine4) Inverse() (Affine4, error) {
	d := a.Det()
	if d == 0 {
		return Affine4{}, fmt.Errorf("Affine4.Inverse: %w", ErrSingular)
	}
	d = 1 / d

	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]

	var inv Affine4
	inv[0] = d * (a11*a22 - a21*a12)
	inv[4] = d * (a12*a20 - a22*a10)
	inv[8] = d * (a10*a21 - a20*a11)
	inv[1] = d * (a21*a02 - a01*a22)
	inv[5] = d * (a22*a00 - a02*a20)
	inv[9] = d * (a20*a01 - a00*a21)
	inv[2] = d * (a01*a12 - a11*a02)
	inv[6] = d * (a02*a10 - a12*a00)
	inv[10] = d * (a00*a11 - a10*a01)
	inv[3] = d * (a01*(a22*a13-a12*a23) + a11*(a02*a23-a22*a03) + a21*(a12*a03-a02*a13))
	inv[7] = d * (a02*(a20*a13-a10*a23) + a12*(a00*a23-a20*a03) + a22*(a10*a03-a00*a13))
	inv[11] = d * (a03*(a20*a11-a10*a21) + a13*(a00*a21-a20*a01) + a23*(a10*a01-a00*a11))

	return inv, nil
}

// Mat4 expands a into a dense 4x4 matrix, materializing the implicit
// bottom row.
func (a Affine4) Mat4() Mat4 {
	return Mat4{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		0, 0, 0, 1,
	}
}

// Transposed returns aᵀ as a dense Mat4: the transpose of an affine
// matrix is generally not affine (the translation moves into row 3).
func (a Affine4) Transposed() Mat4 {
	return Mat4{
		a[0], a[4], a[8], 0,
		a[1], a[5], a[9], 0,
		a[2], a[6], a[10], 0,
		a[3], a[7], a[11], 1,
	}
}

// String implements fmt.Stringer; the implicit row is printed too.
func (a Affine4) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]\n[%g, %g, %g, %g]\n[%g, %g, %g, %g]\n[0, 0, 0, 1]\n",
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11])
}
