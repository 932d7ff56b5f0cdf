// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"
	"math"
)

// Components3 is the number of components in a Vec3.
const Components3 = 3

// Vec3 is a 3D vector with components X, Y and Z.
//
// Vec3 has value semantics: methods never mutate the receiver (except
// the pointer-receiver Set) and always return new values.
type Vec3 struct {
	X, Y, Z float64
}

// Splat3 returns a Vec3 with all three components set to s.
func Splat3(s float64) Vec3 { return Vec3{X: s, Y: s, Z: s} }

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Mul returns the component-wise (Hadamard) product v * w.
func (v Vec3) Mul(w Vec3) Vec3 { return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

// Div returns the component-wise quotient v / w.
// Division by a zero component follows IEEE-754 (±Inf or NaN).
func (v Vec3) Div(w Vec3) Vec3 { return Vec3{v.X / w.X, v.Y / w.Y, v.Z / w.Z} }

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Shrink returns v with every component divided by s.
func (v Vec3) Shrink(s float64) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product v · w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSq returns the squared Euclidean length of v.
func (v Vec3) LengthSq() float64 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSq()) }

// DistanceSq returns the squared distance between v and w.
func (v Vec3) DistanceSq(w Vec3) float64 { return w.Sub(v).LengthSq() }

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) float64 { return math.Sqrt(v.DistanceSq(w)) }

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	lsq := v.LengthSq()
	if lsq == 0 {
		return v
	}
	return v.Shrink(math.Sqrt(lsq))
}

// Lerp returns the linear interpolation between v and w at parameter t,
// with t=0 yielding v and t=1 yielding w. t is not clamped.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}

// Angle returns the angle between v and w in radians, in [0, π].
// If either vector has zero length the angle is 0.
func (v Vec3) Angle(w Vec3) float64 {
	d := v.Length() * w.Length()
	if d == 0 {
		return 0
	}
	return math.Acos(clamp(v.Dot(w)/d, -1, 1))
}

// Vec2 returns the X and Y components of v, dropping Z.
func (v Vec3) Vec2() Vec2 { return Vec2{v.X, v.Y} }

// Vec4 returns v extended with the given W component.
func (v Vec3) Vec4(w float64) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// At returns the component at index i (0 → X, 1 → Y, 2 → Z).
// Returns ErrIndexOutOfBounds for any other index.
func (v Vec3) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, fmt.Errorf("Vec3.At(%d): %w", i, ErrIndexOutOfBounds)
}

// Set assigns s to the component at index i (0 → X, 1 → Y, 2 → Z).
// Returns ErrIndexOutOfBounds for any other index.
func (v *Vec3) Set(i int, s float64) error {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		return fmt.Errorf("Vec3.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	return nil
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
