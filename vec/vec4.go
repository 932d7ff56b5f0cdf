// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"
	"math"
)

// Components4 is the number of components in a Vec4.
const Components4 = 4

// Vec4 is a 4D vector with components X, Y, Z and W, typically used for
// homogeneous coordinates where W=1 marks a point and W=0 a direction.
//
// Vec4 has value semantics: methods never mutate the receiver (except
// the pointer-receiver Set) and always return new values.
type Vec4 struct {
	X, Y, Z, W float64
}

// Splat4 returns a Vec4 with all four components set to s.
func Splat4(s float64) Vec4 { return Vec4{X: s, Y: s, Z: s, W: s} }

// Add returns the component-wise sum v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns the component-wise difference v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Mul returns the component-wise (Hadamard) product v * w.
func (v Vec4) Mul(w Vec4) Vec4 {
	return Vec4{v.X * w.X, v.Y * w.Y, v.Z * w.Z, v.W * w.W}
}

// Div returns the component-wise quotient v / w.
// Division by a zero component follows IEEE-754 (±Inf or NaN).
func (v Vec4) Div(w Vec4) Vec4 {
	return Vec4{v.X / w.X, v.Y / w.Y, v.Z / w.Z, v.W / w.W}
}

// Scale returns v with every component multiplied by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Shrink returns v with every component divided by s.
func (v Vec4) Shrink(s float64) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 { return Vec4{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns the dot product v · w.
func (v Vec4) Dot(w Vec4) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// LengthSq returns the squared Euclidean length of v.
func (v Vec4) LengthSq() float64 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vec4) Length() float64 { return math.Sqrt(v.LengthSq()) }

// DistanceSq returns the squared Euclidean distance between v and w.
func (v Vec4) DistanceSq(w Vec4) float64 { return w.Sub(v).LengthSq() }

// Distance returns the Euclidean distance between v and w.
func (v Vec4) Distance(w Vec4) float64 { return math.Sqrt(v.DistanceSq(w)) }

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec4) Normalized() Vec4 {
	lsq := v.LengthSq()
	if lsq == 0 {
		return v
	}
	return v.Shrink(math.Sqrt(lsq))
}

// Lerp returns the linear interpolation between v and w at parameter t,
// with t=0 yielding v and t=1 yielding w. t is not clamped.
func (v Vec4) Lerp(w Vec4, t float64) Vec4 {
	return v.Add(w.Sub(v).Scale(t))
}

// Vec3 returns the X, Y and Z components of v, dropping W.
func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Dehomogenized returns the X, Y and Z components divided by W.
// A zero W follows IEEE-754 (±Inf or NaN components).
func (v Vec4) Dehomogenized() Vec3 {
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// At returns the component at index i (0 → X, 1 → Y, 2 → Z, 3 → W).
// Returns ErrIndexOutOfBounds for any other index.
func (v Vec4) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, fmt.Errorf("Vec4.At(%d): %w", i, ErrIndexOutOfBounds)
}

// Set assigns s to the component at index i (0 → X, 1 → Y, 2 → Z, 3 → W).
// Returns ErrIndexOutOfBounds for any other index.
func (v *Vec4) Set(i int, s float64) error {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	case 3:
		v.W = s
	default:
		return fmt.Errorf("Vec4.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	return nil
}

// String implements fmt.Stringer.
func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
