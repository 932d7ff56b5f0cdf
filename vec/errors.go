// SPDX-License-Identifier: MIT
// Package vec: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// vec package. All public accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package vec

import "errors"

var (
	// ErrIndexOutOfBounds indicates that a component index passed to At
	// or Set is outside the valid range for the vector size.
	ErrIndexOutOfBounds = errors.New("vec: component index out of bounds")
)
