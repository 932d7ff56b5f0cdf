// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linmath/vec"
)

// Mat3 is a 3x3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// The zero value is the zero matrix.
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationX returns the rotation matrix around the X axis by rad
// (column-vector convention, right-handed).
func RotationX(rad float64) Mat3 {
	s, c := math.Sincos(rad)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotationY returns the rotation matrix around the Y axis by rad.
func RotationY(rad float64) Mat3 {
	s, c := math.Sincos(rad)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotationZ returns the rotation matrix around the Z axis by rad.
func RotationZ(rad float64) Mat3 {
	s, c := math.Sincos(rad)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Scaling3 returns the 3x3 scaling matrix for the factors in s.
func Scaling3(s vec.Vec3) Mat3 {
	return Mat3{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// At returns the element at row r, column c.
// Returns ErrIndexOutOfBounds when r or c is outside [0, 3).
func (m Mat3) At(r, c int) (float64, error) {
	if r < 0 || r >= 3 || c < 0 || c >= 3 {
		return 0, fmt.Errorf("Mat3.At(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	return m[r*3+c], nil
}

// Set assigns s to the element at row r, column c.
// Returns ErrIndexOutOfBounds when r or c is outside [0, 3).
func (m *Mat3) Set(r, c int, s float64) error {
	if r < 0 || r >= 3 || c < 0 || c >= 3 {
		return fmt.Errorf("Mat3.Set(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	m[r*3+c] = s
	return nil
}

// Row returns row r as a vector.
func (m Mat3) Row(r int) (vec.Vec3, error) {
	if r < 0 || r >= 3 {
		return vec.Vec3{}, fmt.Errorf("Mat3.Row(%d): %w", r, ErrIndexOutOfBounds)
	}
	return vec.Vec3{X: m[r*3], Y: m[r*3+1], Z: m[r*3+2]}, nil
}

// Col returns column c as a vector.
func (m Mat3) Col(c int) (vec.Vec3, error) {
	if c < 0 || c >= 3 {
		return vec.Vec3{}, fmt.Errorf("Mat3.Col(%d): %w", c, ErrIndexOutOfBounds)
	}
	return vec.Vec3{X: m[c], Y: m[3+c], Z: m[6+c]}, nil
}

// SetRow assigns v to row r.
func (m *Mat3) SetRow(r int, v vec.Vec3) error {
	if r < 0 || r >= 3 {
		return fmt.Errorf("Mat3.SetRow(%d): %w", r, ErrIndexOutOfBounds)
	}
	m[r*3], m[r*3+1], m[r*3+2] = v.X, v.Y, v.Z
	return nil
}

// SetCol assigns v to column c.
func (m *Mat3) SetCol(c int, v vec.Vec3) error {
	if c < 0 || c >= 3 {
		return fmt.Errorf("Mat3.SetCol(%d): %w", c, ErrIndexOutOfBounds)
	}
	m[c], m[3+c], m[6+c] = v.X, v.Y, v.Z
	return nil
}

// Add returns the component-wise sum m + n.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + n[i]
	}
	return out
}

// Sub returns the component-wise difference m - n.
func (m Mat3) Sub(n Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] - n[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat3) Scale(s float64) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m × n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3+0]*n[0*3+c] + m[r*3+1]*n[1*3+c] + m[r*3+2]*n[2*3+c]
		}
	}
	return out
}

// MulVec returns m × v, treating v as a column vector.
func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transposed returns mᵀ.
func (m Mat3) Transposed() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Mat3) Trace() float64 { return m[0] + m[4] + m[8] }

// Det returns the determinant of m (cofactor expansion along row 0).
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns m⁻¹ computed from the closed-form adjugate.
// Returns ErrSingular when the determinant is exactly zero.
func (m Mat3) Inverse() (Mat3, error) {
	d := m.Det()
	if d == 0 {
		return Mat3{}, fmt.Errorf("Mat3.Inverse: %w", ErrSingular)
	}
	d = 1 / d
	return Mat3{
		d * (m[4]*m[8] - m[5]*m[7]),
		d * (m[2]*m[7] - m[1]*m[8]),
		d * (m[1]*m[5] - m[2]*m[4]),
		d * (m[5]*m[6] - m[3]*m[8]),
		d * (m[0]*m[8] - m[2]*m[6]),
		d * (m[2]*m[3] - m[0]*m[5]),
		d * (m[3]*m[7] - m[4]*m[6]),
		d * (m[1]*m[6] - m[0]*m[7]),
		d * (m[0]*m[4] - m[1]*m[3]),
	}, nil
}

// Mat4 returns m embedded in the upper-left of a 4x4 identity.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// String implements fmt.Stringer, one matrix row per line.
func (m Mat3) String() string {
	return fmt.Sprintf("[%g, %g, %g]\n[%g, %g, %g]\n[%g, %g, %g]\n",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
