// SPDX-License-Identifier: MIT
// Package spherical: sentinel error set.

package spherical

import "errors"

var (
	// ErrIndexOutOfBounds indicates that a component index passed to At
	// or Set is outside [0, 3).
	ErrIndexOutOfBounds = errors.New("spherical: component index out of bounds")
)
