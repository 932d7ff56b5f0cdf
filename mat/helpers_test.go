// Package mat_test contains shared helpers for the matrix tests.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/linmath/mat"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// requireMat2InDelta asserts element-wise equality of two Mat2 within eps.
func requireMat2InDelta(t *testing.T, want, got mat.Mat2) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

// requireMat3InDelta asserts element-wise equality of two Mat3 within eps.
func requireMat3InDelta(t *testing.T, want, got mat.Mat3) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

// requireMat4InDelta asserts element-wise equality of two Mat4 within eps.
func requireMat4InDelta(t *testing.T, want, got mat.Mat4) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

// requireAffineInDelta asserts element-wise equality of two Affine4 within eps.
func requireAffineInDelta(t *testing.T, want, got mat.Affine4) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}
