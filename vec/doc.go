// Package vec provides fixed-size 2D, 3D and 4D vector value types with
// component-wise arithmetic, dot and cross products, lengths,
// normalization and interpolation.
//
// The vec package provides:
//
//   - Vec2, Vec3, Vec4 — plain float64 structs with value semantics;
//     every operation is pure and returns a new value.
//   - Component-wise Add/Sub/Mul/Div plus scalar Scale/Shrink,
//     mirroring the usual operator set of graphics math libraries.
//   - Safe indexed access: At and Set validate the component index and
//     return ErrIndexOutOfBounds instead of panicking.
//   - Size conversions between Vec2, Vec3 and Vec4 for homogeneous
//     coordinate plumbing.
//
// Normalizing the zero vector returns the zero vector unchanged — no
// NaN ever leaks out of this package.
//
// See the examples in this package and mat for usage patterns.
package vec
