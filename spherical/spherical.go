// SPDX-License-Identifier: MIT

package spherical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linmath/vec"
)

// Components is the number of components in a Spherical.
const Components = 3

// Spherical is a point in spherical coordinates: Radius from the
// origin, polar angle Theta from +Z and azimuth Phi from +X.
//
// Spherical has value semantics: methods never mutate the receiver
// (except the pointer-receiver Set) and always return new values.
type Spherical struct {
	Radius, Theta, Phi float64
}

// FromCartesian converts the cartesian coordinate v.
// The zero vector maps to the origin with both angles zero.
func FromCartesian(v vec.Vec3) Spherical {
	r := v.Length()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Acos(v.Z / r),
		Phi:    math.Atan2(v.Y, v.X),
	}
}

// Cartesian converts s back to a cartesian coordinate.
func (s Spherical) Cartesian() vec.Vec3 {
	sinTheta, cosTheta := math.Sincos(s.Theta)
	sinPhi, cosPhi := math.Sincos(s.Phi)
	return vec.Vec3{
		X: s.Radius * sinTheta * cosPhi,
		Y: s.Radius * sinTheta * sinPhi,
		Z: s.Radius * cosTheta,
	}
}

// LengthSq returns the squared length of s, which is Radius².
func (s Spherical) LengthSq() float64 { return s.Radius * s.Radius }

// Length returns the length of s, which is simply Radius.
func (s Spherical) Length() float64 { return s.Radius }

// Normalized returns s with Radius set to 1, keeping both angles.
func (s Spherical) Normalized() Spherical {
	return Spherical{Radius: 1, Theta: s.Theta, Phi: s.Phi}
}

// Resized returns s with Radius set to length, keeping both angles.
func (s Spherical) Resized(length float64) Spherical {
	return Spherical{Radius: length, Theta: s.Theta, Phi: s.Phi}
}

// At returns the component at index i (0 → Radius, 1 → Theta, 2 → Phi).
// Returns ErrIndexOutOfBounds for any other index.
func (s Spherical) At(i int) (float64, error) {
	switch i {
	case 0:
		return s.Radius, nil
	case 1:
		return s.Theta, nil
	case 2:
		return s.Phi, nil
	}
	return 0, fmt.Errorf("Spherical.At(%d): %w", i, ErrIndexOutOfBounds)
}

// Set assigns v to the component at index i
// (0 → Radius, 1 → Theta, 2 → Phi).
// Returns ErrIndexOutOfBounds for any other index.
func (s *Spherical) Set(i int, v float64) error {
	switch i {
	case 0:
		s.Radius = v
	case 1:
		s.Theta = v
	case 2:
		s.Phi = v
	default:
		return fmt.Errorf("Spherical.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	return nil
}

// String implements fmt.Stringer.
func (s Spherical) String() string {
	return fmt.Sprintf("(r=%g, θ=%g, φ=%g)", s.Radius, s.Theta, s.Phi)
}
