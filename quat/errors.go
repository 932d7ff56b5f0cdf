// SPDX-License-Identifier: MIT
// Package quat: sentinel error set.

package quat

import "errors"

var (
	// ErrZeroQuat indicates that an inverse was requested for the zero
	// quaternion, whose norm admits no reciprocal.
	ErrZeroQuat = errors.New("quat: quaternion has zero norm")

	// ErrIndexOutOfBounds indicates that a component index passed to At
	// or Set is outside [0, 4).
	ErrIndexOutOfBounds = errors.New("quat: component index out of bounds")
)
