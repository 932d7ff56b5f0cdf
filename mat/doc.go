// Package mat offers fixed-size dense matrices and affine 4x4
// transforms with closed-form determinants and inverses.
//
// The mat package provides:
//
//   - Mat2, Mat3, Mat4 — square matrices backed by flat row-major
//     arrays (offset r*cols + c), with products, transposes, traces,
//     determinants and analytic cofactor inverses.
//   - Affine4 — a "sparse" 4x4 matrix that stores only its upper 3x4
//     block; the fourth row is implicitly (0, 0, 0, 1). It composes,
//     transforms points and directions, and inverts through a dedicated
//     closed form that never touches the implicit row.
//   - Rotation and scaling constructors (RotationX/Y/Z, Rotation2,
//     Scaling3, TranslationAffine4, TRS) for building transforms
//     without hand-writing components.
//
// All matrices follow the column-vector convention: MulVec applies the
// matrix to a column vector, so composed transforms apply right to
// left.
//
// Inverting a matrix whose determinant is exactly zero returns
// ErrSingular; out-of-range indices passed to At/Set/Row/Col return
// ErrIndexOutOfBounds. Nothing in this package panics on user input.
package mat
