// Package quat implements quaternions for representing and composing
// 3D rotations, including conversions to and from rotation matrices.
//
// The quat package provides:
//
//   - Quat — a float64 value type with X, Y, Z (vector part) and W
//     (scalar part); the identity rotation is Quat{W: 1}.
//   - The Hamilton product, conjugation and inversion, plus the usual
//     component arithmetic, dot product and normalization.
//   - Constructors from axis-angle and XYZ Euler angles, and direct
//     rotation of vectors via Rotate.
//   - Interpolation: Lerp, Nlerp and shortest-arc Slerp.
//   - Matrix conversions: FromMat3/FromMat4/FromAffine4 use the
//     trace-based extraction with per-diagonal branch selection to
//     avoid numerical cancellation; Mat3/Mat4/Affine4 emit rotation
//     matrices in the column-vector convention, so
//     q.Rotate(v) == q.Mat3().MulVec(v).
//
// Matrix inputs to the extraction must be pure (unscaled) rotations;
// the result is always normalized.
package quat
