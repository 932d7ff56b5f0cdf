// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linmath/vec"
)

// Components is the number of components in a Quat.
const Components = 4

// nlerpThreshold switches Slerp to Nlerp when the arc between the
// operands is too small for a stable sin division.
const nlerpThreshold = 1 - 1e-9

// Quat is a quaternion x·i + y·j + z·k + w with the vector part in
// X, Y, Z and the scalar part in W.
//
// Quat has value semantics: methods never mutate the receiver (except
// the pointer-receiver Set) and always return new values.
type Quat struct {
	X, Y, Z, W float64
}

// Identity returns the identity rotation.
func Identity() Quat { return Quat{W: 1} }

// FromAxisAngle returns the rotation of rad radians around axis
// (right-handed). The axis is normalized internally; a zero axis
// yields the identity rotation.
func FromAxisAngle(axis vec.Vec3, rad float64) Quat {
	n := axis.Normalized()
	if n.LengthSq() == 0 {
		return Identity()
	}
	s, c := math.Sincos(rad / 2)
	return Quat{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: c}
}

// FromEuler returns the rotation given by XYZ Euler angles in radians,
// applied in X, then Y, then Z order.
func FromEuler(x, y, z float64) Quat {
	sx, cx := math.Sincos(x / 2)
	sy, cy := math.Sincos(y / 2)
	sz, cz := math.Sincos(z / 2)

	return Quat{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// Add returns the component-wise sum q + r.
func (q Quat) Add(r Quat) Quat {
	return Quat{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

// Sub returns the component-wise difference q - r.
func (q Quat) Sub(r Quat) Quat {
	return Quat{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W}
}

// Scale returns q with every component multiplied by s.
func (q Quat) Scale(s float64) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Neg returns -q, which represents the same rotation as q.
func (q Quat) Neg() Quat { return Quat{-q.X, -q.Y, -q.Z, -q.W} }

// Dot returns the four-dimensional dot product q · r.
func (q Quat) Dot(r Quat) float64 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// LengthSq returns the squared norm of q.
func (q Quat) LengthSq() float64 { return q.Dot(q) }

// Length returns the norm of q.
func (q Quat) Length() float64 { return math.Sqrt(q.LengthSq()) }

// Normalized returns q scaled to unit norm.
// The zero quaternion is returned unchanged.
func (q Quat) Normalized() Quat {
	lsq := q.LengthSq()
	if lsq == 0 {
		return q
	}
	return q.Scale(1 / math.Sqrt(lsq))
}

// Conjugate returns q with the vector part negated. For unit
// quaternions the conjugate is the inverse rotation.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Inverse returns q⁻¹ = conjugate(q) / |q|².
// Returns ErrZeroQuat when the norm is exactly zero.
func (q Quat) Inverse() (Quat, error) {
	lsq := q.LengthSq()
	if lsq == 0 {
		return Quat{}, fmt.Errorf("Quat.Inverse: %w", ErrZeroQuat)
	}
	return q.Conjugate().Scale(1 / lsq), nil
}

// Mul returns the Hamilton product q × r, the rotation that applies
// r first and then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate applies the rotation q to v. q must be a unit quaternion.
func (q Quat) Rotate(v vec.Vec3) vec.Vec3 {
	// v' = v + 2w·(u × v) + 2·(u × (u × v)), u = (X, Y, Z).
	u := vec.Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Lerp returns the component-wise linear interpolation between q and r
// at parameter t. The result is generally not a unit quaternion.
func (q Quat) Lerp(r Quat, t float64) Quat {
	return q.Add(r.Sub(q).Scale(t))
}

// Nlerp returns the normalized linear interpolation between q and r,
// taking the shorter of the two arcs.
func (q Quat) Nlerp(r Quat, t float64) Quat {
	if q.Dot(r) < 0 {
		r = r.Neg()
	}
	return q.Lerp(r, t).Normalized()
}

// Slerp returns the spherical linear interpolation between the unit
// quaternions q and r at parameter t, along the shorter arc. When the
// operands are nearly parallel Slerp falls back to Nlerp, where the
// linear approximation is exact enough and the sin division is not
// stable.
func (q Quat) Slerp(r Quat, t float64) Quat {
	d := q.Dot(r)
	if d < 0 {
		r = r.Neg()
		d = -d
	}
	if d > nlerpThreshold {
		return q.Lerp(r, t).Normalized()
	}

	theta := math.Acos(d)
	sin := math.Sin(theta)
	wq := math.Sin((1-t)*theta) / sin
	wr := math.Sin(t*theta) / sin
	return q.Scale(wq).Add(r.Scale(wr))
}

// At returns the component at index i (0 → X, 1 → Y, 2 → Z, 3 → W).
// Returns ErrIndexOutOfBounds for any other index.
func (q Quat) At(i int) (float64, error) {
	switch i {
	case 0:
		return q.X, nil
	case 1:
		return q.Y, nil
	case 2:
		return q.Z, nil
	case 3:
		return q.W, nil
	}
	return 0, fmt.Errorf("Quat.At(%d): %w", i, ErrIndexOutOfBounds)
}

// Set assigns s to the component at index i (0 → X, 1 → Y, 2 → Z, 3 → W).
// Returns ErrIndexOutOfBounds for any other index.
func (q *Quat) Set(i int, s float64) error {
	switch i {
	case 0:
		q.X = s
	case 1:
		q.Y = s
	case 2:
		q.Z = s
	case 3:
		q.W = s
	default:
		return fmt.Errorf("Quat.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	return nil
}

// String implements fmt.Stringer.
func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
