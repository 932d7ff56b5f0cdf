// Package spherical implements spherical coordinates
// (radius, theta, phi) and their conversions to and from cartesian
// vectors.
//
// Conventions (physics-style, right-handed, Z up):
//
//   - Radius is the distance from the origin.
//   - Theta is the polar angle measured from the +Z axis, in [0, π].
//   - Phi is the azimuth measured from the +X axis in the XY plane,
//     in (-π, π].
//
// Converting the origin yields radius 0 with both angles 0; converting
// back is exact for that case, so round trips never produce NaN.
//
// Spherical has no component-wise operators. Convert to a vec.Vec3 for
// arithmetic, then convert back.
package spherical
