// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// mat package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package mat

import "errors"

var (
	// ErrIndexOutOfBounds indicates that a row, column or element index
	// is outside the valid range for the matrix shape. For Affine4 the
	// implicit fourth row is not addressable and row index 3 is out of
	// bounds, matching the sparse storage.
	ErrIndexOutOfBounds = errors.New("mat: index out of bounds")

	// ErrSingular indicates that an inverse was requested for a matrix
	// whose determinant is exactly zero.
	ErrSingular = errors.New("mat: matrix is singular")

	// ErrNotAffine indicates that a Mat4 could not be converted to an
	// Affine4 because its bottom row is not exactly (0, 0, 0, 1).
	ErrNotAffine = errors.New("mat: bottom row is not (0, 0, 0, 1)")
)
