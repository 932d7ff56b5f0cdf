// Package linmath is a compact toolbox of fixed-size linear algebra for
// 2D/3D graphics and geometry code — vectors, matrices, quaternions and
// spherical coordinates, with closed-form inversion and conversion
// routines.
//
// 🚀 What is linmath?
//
//	A small, value-oriented library that brings together:
//		• Vectors: Vec2 / Vec3 / Vec4 with component-wise arithmetic,
//		  dot & cross products, lengths, normalization and lerp
//		• Matrices: Mat2 / Mat3 / Mat4 (flat, row-major) with products,
//		  transposes, traces, determinants and analytic inverses
//		• Affine transforms: Affine4, a 4x4 matrix stored as 3x4 with an
//		  implicit (0,0,0,1) bottom row — composition, point/direction
//		  transforms and a dedicated closed-form inverse
//		• Quaternions: Hamilton product, slerp, axis-angle & Euler
//		  constructors, and cancellation-safe matrix conversions
//		• Spherical coordinates: radius/theta/phi with exact
//		  cartesian round-trips
//
// ✨ Why choose linmath?
//
//   - Value semantics – every type is a plain struct or array; every
//     operation is pure and allocation-free
//   - Rock-solid failure surface – singular matrices and bad indices
//     come back as sentinel errors, never panics
//   - Pure Go – no cgo, no hidden deps
//   - Predictable numerics – documented conventions for zero-length
//     normalization, zero determinants and trigonometric clamping
//
// Everything is organized under four subpackages:
//
//	vec/       — Vec2, Vec3, Vec4 value types & component arithmetic
//	mat/       — Mat2, Mat3, Mat4, Affine4 & inversion formulas
//	quat/      — Quat rotations & matrix↔quaternion conversions
//	spherical/ — Spherical coordinates & cartesian conversions
//
// Quick ASCII example:
//
//	    +Z
//	     │  θ (theta: polar angle, measured from +Z)
//	     │ ╱
//	     │╱____ +Y
//	    ╱
//	  +X   φ (phi: azimuth, measured from +X in the XY plane)
//
//	maps a cartesian direction onto (radius, theta, phi).
//
// Dive into the examples/ directory for full scenarios: camera orbits,
// transform chains and rotation round-trips.
//
//	go get github.com/katalvlaran/linmath
package linmath
