// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linmath/vec"
)

// Mat2 is a 2x2 matrix stored row-major: [r0c0, r0c1, r1c0, r1c1].
// The zero value is the zero matrix.
type Mat2 [4]float64

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{
		1, 0,
		0, 1,
	}
}

// Rotation2 returns the 2x2 rotation matrix for angle rad
// (counter-clockwise, column-vector convention).
func Rotation2(rad float64) Mat2 {
	s, c := math.Sincos(rad)
	return Mat2{
		c, -s,
		s, c,
	}
}

// Scaling2 returns the 2x2 scaling matrix for the factors in s.
func Scaling2(s vec.Vec2) Mat2 {
	return Mat2{
		s.X, 0,
		0, s.Y,
	}
}

// At returns the element at row r, column c.
// Returns ErrIndexOutOfBounds when r or c is outside [0, 2).
func (m Mat2) At(r, c int) (float64, error) {
	if r < 0 || r >= 2 || c < 0 || c >= 2 {
		return 0, fmt.Errorf("Mat2.At(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	return m[r*2+c], nil
}

// Set assigns s to the element at row r, column c.
// Returns ErrIndexOutOfBounds when r or c is outside [0, 2).
func (m *Mat2) Set(r, c int, s float64) error {
	if r < 0 || r >= 2 || c < 0 || c >= 2 {
		return fmt.Errorf("Mat2.Set(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	m[r*2+c] = s
	return nil
}

// Row returns row r as a vector.
func (m Mat2) Row(r int) (vec.Vec2, error) {
	if r < 0 || r >= 2 {
		return vec.Vec2{}, fmt.Errorf("Mat2.Row(%d): %w", r, ErrIndexOutOfBounds)
	}
	return vec.Vec2{X: m[r*2], Y: m[r*2+1]}, nil
}

// Col returns column c as a vector.
func (m Mat2) Col(c int) (vec.Vec2, error) {
	if c < 0 || c >= 2 {
		return vec.Vec2{}, fmt.Errorf("Mat2.Col(%d): %w", c, ErrIndexOutOfBounds)
	}
	return vec.Vec2{X: m[c], Y: m[2+c]}, nil
}

// SetRow assigns v to row r.
func (m *Mat2) SetRow(r int, v vec.Vec2) error {
	if r < 0 || r >= 2 {
		return fmt.Errorf("Mat2.SetRow(%d): %w", r, ErrIndexOutOfBounds)
	}
	m[r*2], m[r*2+1] = v.X, v.Y
	return nil
}

// SetCol assigns v to column c.
func (m *Mat2) SetCol(c int, v vec.Vec2) error {
	if c < 0 || c >= 2 {
		return fmt.Errorf("Mat2.SetCol(%d): %w", c, ErrIndexOutOfBounds)
	}
	m[c], m[2+c] = v.X, v.Y
	return nil
}

// Add returns the component-wise sum m + n.
func (m Mat2) Add(n Mat2) Mat2 {
	var out Mat2
	for i := range m {
		out[i] = m[i] + n[i]
	}
	return out
}

// Sub returns the component-wise difference m - n.
func (m Mat2) Sub(n Mat2) Mat2 {
	var out Mat2
	for i := range m {
		out[i] = m[i] - n[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat2) Scale(s float64) Mat2 {
	var out Mat2
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m × n.
func (m Mat2) Mul(n Mat2) Mat2 {
	var out Mat2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r*2+c] = m[r*2+0]*n[0*2+c] + m[r*2+1]*n[1*2+c]
		}
	}
	return out
}

// MulVec returns m × v, treating v as a column vector.
func (m Mat2) MulVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[2]*v.X + m[3]*v.Y,
	}
}

// Transposed returns mᵀ.
func (m Mat2) Transposed() Mat2 {
	return Mat2{
		m[0], m[2],
		m[1], m[3],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Mat2) Trace() float64 { return m[0] + m[3] }

// Det returns the determinant of m.
func (m Mat2) Det() float64 { return m[0]*m[3] - m[1]*m[2] }

// Inverse returns m⁻¹ computed from the closed-form adjugate.
// Returns ErrSingular when the determinant is exactly zero.
func (m Mat2) Inverse() (Mat2, error) {
	d := m.Det()
	if d == 0 {
		return Mat2{}, fmt.Errorf("Mat2.Inverse: %w", ErrSingular)
	}
	d = 1 / d
	return Mat2{
		d * m[3], d * -m[1],
		d * -m[2], d * m[0],
	}, nil
}

// String implements fmt.Stringer, one matrix row per line.
func (m Mat2) String() string {
	return fmt.Sprintf("[%g, %g]\n[%g, %g]\n", m[0], m[1], m[2], m[3])
}
