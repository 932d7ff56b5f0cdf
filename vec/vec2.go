// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"
	"math"
)

// Components2 is the number of components in a Vec2.
const Components2 = 2

// Vec2 is a 2D vector with components X and Y.
//
// Vec2 has value semantics: methods never mutate the receiver (except
// the pointer-receiver Set) and always return new values.
type Vec2 struct {
	X, Y float64
}

// Splat2 returns a Vec2 with both components set to s.
func Splat2(s float64) Vec2 { return Vec2{X: s, Y: s} }

// Add returns the component-wise sum v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns the component-wise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Mul returns the component-wise (Hadamard) product v * w.
func (v Vec2) Mul(w Vec2) Vec2 { return Vec2{v.X * w.X, v.Y * w.Y} }

// Div returns the component-wise quotient v / w.
// Division by a zero component follows IEEE-754 (±Inf or NaN).
func (v Vec2) Div(w Vec2) Vec2 { return Vec2{v.X / w.X, v.Y / w.Y} }

// Scale returns v with every component multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Shrink returns v with every component divided by s.
func (v Vec2) Shrink(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns the dot product v · w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// LengthSq returns the squared Euclidean length of v.
func (v Vec2) LengthSq() float64 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSq()) }

// DistanceSq returns the squared distance between v and w.
func (v Vec2) DistanceSq(w Vec2) float64 { return w.Sub(v).LengthSq() }

// Distance returns the Euclidean distance between v and w.
func (v Vec2) Distance(w Vec2) float64 { return math.Sqrt(v.DistanceSq(w)) }

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	lsq := v.LengthSq()
	if lsq == 0 {
		return v
	}
	return v.Shrink(math.Sqrt(lsq))
}

// Lerp returns the linear interpolation between v and w at parameter t,
// with t=0 yielding v and t=1 yielding w. t is not clamped.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return v.Add(w.Sub(v).Scale(t))
}

// Angle returns the angle between v and w in radians, in [0, π].
// If either vector has zero length the angle is 0.
func (v Vec2) Angle(w Vec2) float64 {
	d := v.Length() * w.Length()
	if d == 0 {
		return 0
	}
	return math.Acos(clamp(v.Dot(w)/d, -1, 1))
}

// Vec3 returns v extended with the given Z component.
func (v Vec2) Vec3(z float64) Vec3 { return Vec3{v.X, v.Y, z} }

// At returns the component at index i (0 → X, 1 → Y).
// Returns ErrIndexOutOfBounds for any other index.
func (v Vec2) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, fmt.Errorf("Vec2.At(%d): %w", i, ErrIndexOutOfBounds)
}

// Set assigns s to the component at index i (0 → X, 1 → Y).
// Returns ErrIndexOutOfBounds for any other index.
func (v *Vec2) Set(i int, s float64) error {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	default:
		return fmt.Errorf("Vec2.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	return nil
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// clamp restricts s to [lo, hi].
func clamp(s, lo, hi float64) float64 {
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}
