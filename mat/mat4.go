// SPDX-License-Identifier: MIT

// Package mat - Mat4 and its closed-form determinant/inverse.
//
// The 4x4 inverse is a direct cofactor expansion; every output element
// is a sum of three 2x2 cross terms scaled by the reciprocal
// determinant. The determinant itself is computed by Laplace expansion
// over complementary 2x2 minors (rows 0-1 against rows 2-3), which
// shares no intermediate state with the inverse and keeps both
// formulas independently checkable.

package mat

import (
	"fmt"

	"github.com/katalvlaran/linmath/vec"
)

// Mat4 is a 4x4 matrix stored row-major: [r0c0, r0c1, ..., r3c3].
// The zero value is the zero matrix.
type Mat4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
// Returns ErrIndexOutOfBounds when r or c is outside [0, 4).
func (m Mat4) At(r, c int) (float64, error) {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		return 0, fmt.Errorf("Mat4.At(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	return m[r*4+c], nil
}

// Set assigns s to the element at row r, column c.
// Returns ErrIndexOutOfBounds when r or c is outside [0, 4).
func (m *Mat4) Set(r, c int, s float64) error {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		return fmt.Errorf("Mat4.Set(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	m[r*4+c] = s
	return nil
}

// Row returns row r as a vector.
func (m Mat4) Row(r int) (vec.Vec4, error) {
	if r < 0 || r >= 4 {
		return vec.Vec4{}, fmt.Errorf("Mat4.Row(%d): %w", r, ErrIndexOutOfBounds)
	}
	return vec.Vec4{X: m[r*4], Y: m[r*4+1], Z: m[r*4+2], W: m[r*4+3]}, nil
}

// Col returns column c as a vector.
func (m Mat4) Col(c int) (vec.Vec4, error) {
	if c < 0 || c >= 4 {
		return vec.Vec4{}, fmt.Errorf("Mat4.Col(%d): %w", c, ErrIndexOutOfBounds)
	}
	return vec.Vec4{X: m[c], Y: m[4+c], Z: m[8+c], W: m[12+c]}, nil
}

// SetRow assigns v to row r.
func (m *Mat4) SetRow(r int, v vec.Vec4) error {
	if r < 0 || r >= 4 {
		return fmt.Errorf("Mat4.SetRow(%d): %w", r, ErrIndexOutOfBounds)
	}
	m[r*4], m[r*4+1], m[r*4+2], m[r*4+3] = v.X, v.Y, v.Z, v.W
	return nil
}

// SetCol assigns v to column c.
func (m *Mat4) SetCol(c int, v vec.Vec4) error {
	if c < 0 || c >= 4 {
		return fmt.Errorf("Mat4.SetCol(%d): %w", c, ErrIndexOutOfBounds)
	}
	m[c], m[4+c], m[8+c], m[12+c] = v.X, v.Y, v.Z, v.W
	return nil
}

// Add returns the component-wise sum m + n.
func (m Mat4) Add(n Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + n[i]
	}
	return out
}

// Sub returns the component-wise difference m - n.
func (m Mat4) Sub(n Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] - n[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat4) Scale(s float64) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m × n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4+0]*n[0*4+c] + m[r*4+1]*n[1*4+c] +
				m[r*4+2]*n[2*4+c] + m[r*4+3]*n[3*4+c]
		}
	}
	return out
}

// MulVec returns m × v, treating v as a column vector.
func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	return vec.Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transposed returns mᵀ.
func (m Mat4) Transposed() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Mat4) Trace() float64 { return m[0] + m[5] + m[10] + m[15] }

// Mat3 returns the upper-left 3x3 block of m.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Det returns the determinant of m, expanded over complementary 2x2
// minors of rows 0-1 and rows 2-3.
func (m Mat4) Det() float64 {
	s0 := m[0]*m[5] - m[1]*m[4]
	s1 := m[0]*m[6] - m[2]*m[4]
	s2 := m[0]*m[7] - m[3]*m[4]
	s3 := m[1]*m[6] - m[2]*m[5]
	s4 := m[1]*m[7] - m[3]*m[5]
	s5 := m[2]*m[7] - m[3]*m[6]

	c5 := m[10]*m[15] - m[11]*m[14]
	c4 := m[9]*m[15] - m[11]*m[13]
	c3 := m[9]*m[14] - m[10]*m[13]
	c2 := m[8]*m[15] - m[11]*m[12]
	c1 := m[8]*m[14] - m[10]*m[12]
	c0 := m[8]*m[13] - m[9]*m[12]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Inverse returns m⁻¹ computed by closed-form cofactor expansion.
// Returns ErrSingular when the determinant is exactly zero.
func (m Mat4) Inverse() (Mat4, error) {
	d := m.Det()
	if d == 0 {
		return Mat4{}, fmt.Errorf("Mat4.Inverse: %w", ErrSingular)
	}
	d = 1 / d

	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	var inv Mat4
	inv[0] = d * (a11*(a22*a33-a32*a23) + a21*(a32*a13-a12*a33) + a31*(a12*a23-a22*a13))
	inv[4] = d * (a12*(a20*a33-a30*a23) + a22*(a30*a13-a10*a33) + a32*(a10*a23-a20*a13))
	inv[8] = d * (a13*(a20*a31-a30*a21) + a23*(a30*a11-a10*a31) + a33*(a10*a21-a20*a11))
	inv[12] = d * (a10*(a31*a22-a21*a32) + a20*(a11*a32-a31*a12) + a30*(a21*a12-a11*a22))
	inv[1] = d * (a21*(a02*a33-a32*a03) + a31*(a22*a03-a02*a23) + a01*(a32*a23-a22*a33))
	inv[5] = d * (a22*(a00*a33-a30*a03) + a32*(a20*a03-a00*a23) + a02*(a30*a23-a20*a33))
	inv[9] = d * (a23*(a00*a31-a30*a01) + a33*(a20*a01-a00*a21) + a03*(a30*a21-a20*a31))
	inv[13] = d * (a20*(a31*a02-a01*a32) + a30*(a01*a22-a21*a02) + a00*(a21*a32-a31*a22))
	inv[2] = d * (a31*(a02*a13-a12*a03) + a01*(a12*a33-a32*a13) + a11*(a32*a03-a02*a33))
	inv[6] = d * (a32*(a00*a13-a10*a03) + a02*(a10*a33-a30*a13) + a12*(a30*a03-a00*a33))
	inv[10] = d * (a33*(a00*a11-a10*a01) + a03*(a10*a31-a30*a11) + a13*(a30*a01-a00*a31))
	inv[14] = d * (a30*(a11*a02-a01*a12) + a00*(a31*a12-a11*a32) + a10*(a01*a32-a31*a02))
	inv[3] = d * (a01*(a22*a13-a12*a23) + a11*(a02*a23-a22*a03) + a21*(a12*a03-a02*a13))
	inv[7] = d * (a02*(a20*a13-a10*a23) + a12*(a00*a23-a20*a03) + a22*(a10*a03-a00*a13))
	inv[11] = d * (a03*(a20*a11-a10*a21) + a13*(a00*a21-a20*a01) + a23*(a10*a01-a00*a11))
	inv[15] = d * (a00*(a11*a22-a21*a12) + a10*(a21*a02-a01*a22) + a20*(a01*a12-a11*a02))

	return inv, nil
}

// String implements fmt.Stringer, one matrix row per line.
func (m Mat4) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]\n[%g, %g, %g, %g]\n[%g, %g, %g, %g]\n[%g, %g, %g, %g]\n",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}
