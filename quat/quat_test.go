// Package quat_test contains unit tests for the Quat value type.
package quat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linmath/quat"
	"github.com/katalvlaran/linmath/vec"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// requireQuatInDelta asserts component-wise equality within eps, up to
// the q ≡ -q sign ambiguity of rotation quaternions.
func requireQuatInDelta(t *testing.T, want, got quat.Quat) {
	t.Helper()
	if want.Dot(got) < 0 {
		got = got.Neg()
	}
	require.InDelta(t, want.X, got.X, eps)
	require.InDelta(t, want.Y, got.Y, eps)
	require.InDelta(t, want.Z, got.Z, eps)
	require.InDelta(t, want.W, got.W, eps)
}

// requireVec3InDelta asserts component-wise equality of two Vec3.
func requireVec3InDelta(t *testing.T, want, got vec.Vec3) {
	t.Helper()
	require.InDelta(t, want.X, got.X, eps)
	require.InDelta(t, want.Y, got.Y, eps)
	require.InDelta(t, want.Z, got.Z, eps)
}

// TestIdentity verifies the identity rotation is neutral for Mul and
// leaves vectors untouched.
func TestIdentity(t *testing.T) {
	id := quat.Identity()
	q := quat.FromAxisAngle(vec.Vec3{Z: 1}, 0.7)

	require.Equal(t, q, q.Mul(id))
	require.Equal(t, q, id.Mul(q))

	v := vec.Vec3{X: 1, Y: 2, Z: 3}
	require.Equal(t, v, id.Rotate(v))
	require.InDelta(t, 1.0, id.Length(), eps)
}

// TestFromAxisAngle verifies the quarter-turn around Z and the
// zero-axis guard.
func TestFromAxisAngle(t *testing.T) {
	q := quat.FromAxisAngle(vec.Vec3{Z: 1}, math.Pi/2)
	requireVec3InDelta(t, vec.Vec3{Y: 1}, q.Rotate(vec.Vec3{X: 1}))

	// A non-unit axis is normalized internally.
	q2 := quat.FromAxisAngle(vec.Vec3{Z: 10}, math.Pi/2)
	requireQuatInDelta(t, q, q2)

	// The zero axis cannot define a rotation: identity.
	require.Equal(t, quat.Identity(), quat.FromAxisAngle(vec.Vec3{}, 1.3))
}

// TestMulComposition verifies that the Hamilton product composes
// rotations right to left.
func TestMulComposition(t *testing.T) {
	qx := quat.FromAxisAngle(vec.Vec3{X: 1}, math.Pi/2)
	qz := quat.FromAxisAngle(vec.Vec3{Z: 1}, math.Pi/2)

	v := vec.Vec3{X: 1}
	// Apply qz first, then qx: x → y → z.
	got := qx.Mul(qz).Rotate(v)
	requireVec3InDelta(t, vec.Vec3{Z: 1}, got)
	requireVec3InDelta(t, qx.Rotate(qz.Rotate(v)), got)
}

// TestMulNonCommutative verifies the product order matters.
func TestMulNonCommutative(t *testing.T) {
	qx := quat.FromAxisAngle(vec.Vec3{X: 1}, math.Pi/2)
	qy := quat.FromAxisAngle(vec.Vec3{Y: 1}, math.Pi/2)

	a := qx.Mul(qy).Rotate(vec.Vec3{Z: 1})
	b := qy.Mul(qx).Rotate(vec.Vec3{Z: 1})
	require.Greater(t, a.Distance(b), 0.5)
}

// TestConjugateInverse verifies conjugate and inverse agree for unit
// quaternions, and that Inverse rejects the zero quaternion.
func TestConjugateInverse(t *testing.T) {
	q := quat.FromAxisAngle(vec.Vec3{X: 1, Y: 2, Z: 0.5}, 1.1)

	inv, err := q.Inverse()
	require.NoError(t, err)
	requireQuatInDelta(t, q.Conjugate(), inv)
	requireQuatInDelta(t, quat.Identity(), q.Mul(inv))

	// Inverse undoes the rotation.
	v := vec.Vec3{X: 3, Y: -1, Z: 2}
	requireVec3InDelta(t, v, inv.Rotate(q.Rotate(v)))

	_, err = quat.Quat{}.Inverse()
	require.ErrorIs(t, err, quat.ErrZeroQuat)
}

// TestInverseNonUnit verifies Inverse divides by the squared norm.
func TestInverseNonUnit(t *testing.T) {
	q := quat.Quat{X: 0, Y: 0, Z: 0, W: 2}
	inv, err := q.Inverse()
	require.NoError(t, err)
	requireQuatInDelta(t, quat.Quat{W: 0.5}, inv)
}

// TestNormalized verifies unit scaling and the zero-quaternion rule.
func TestNormalized(t *testing.T) {
	q := quat.Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalized()
	require.InDelta(t, 1.0, q.Length(), eps)
	require.Equal(t, quat.Quat{}, quat.Quat{}.Normalized())
}

// TestFromEuler verifies single-axis Euler angles match axis-angle.
func TestFromEuler(t *testing.T) {
	requireQuatInDelta(t,
		quat.FromAxisAngle(vec.Vec3{X: 1}, 0.8), quat.FromEuler(0.8, 0, 0))
	requireQuatInDelta(t,
		quat.FromAxisAngle(vec.Vec3{Y: 1}, -0.4), quat.FromEuler(0, -0.4, 0))
	requireQuatInDelta(t,
		quat.FromAxisAngle(vec.Vec3{Z: 1}, 1.9), quat.FromEuler(0, 0, 1.9))
	require.Equal(t, quat.Identity(), quat.FromEuler(0, 0, 0))
}

// TestSlerp verifies endpoints, midpoint and constant angular velocity.
func TestSlerp(t *testing.T) {
	a := quat.FromAxisAngle(vec.Vec3{Z: 1}, 0)
	b := quat.FromAxisAngle(vec.Vec3{Z: 1}, math.Pi/2)

	requireQuatInDelta(t, a, a.Slerp(b, 0))
	requireQuatInDelta(t, b, a.Slerp(b, 1))

	// The midpoint of a quarter turn is an eighth turn.
	mid := quat.FromAxisAngle(vec.Vec3{Z: 1}, math.Pi/4)
	requireQuatInDelta(t, mid, a.Slerp(b, 0.5))

	// Slerp output stays unit length.
	require.InDelta(t, 1.0, a.Slerp(b, 0.3).Length(), eps)
}

// TestSlerpShortestArc verifies that antipodal representations take
// the short way around.
func TestSlerpShortestArc(t *testing.T) {
	a := quat.FromAxisAngle(vec.Vec3{Z: 1}, 0.2)
	b := quat.FromAxisAngle(vec.Vec3{Z: 1}, 0.6).Neg() // same rotation, flipped sign

	mid := a.Slerp(b, 0.5)
	requireQuatInDelta(t, quat.FromAxisAngle(vec.Vec3{Z: 1}, 0.4), mid)
}

// TestSlerpNearlyParallel verifies the nlerp fallback produces a
// finite unit result.
func TestSlerpNearlyParallel(t *testing.T) {
	a := quat.FromAxisAngle(vec.Vec3{Z: 1}, 0.5)
	b := quat.FromAxisAngle(vec.Vec3{Z: 1}, 0.5+1e-12)

	got := a.Slerp(b, 0.5)
	require.False(t, math.IsNaN(got.X) || math.IsNaN(got.W))
	require.InDelta(t, 1.0, got.Length(), eps)
}

// TestNlerp verifies endpoints and unit output.
func TestNlerp(t *testing.T) {
	a := quat.FromAxisAngle(vec.Vec3{Y: 1}, 0.3)
	b := quat.FromAxisAngle(vec.Vec3{Y: 1}, 1.3)

	requireQuatInDelta(t, a, a.Nlerp(b, 0))
	requireQuatInDelta(t, b, a.Nlerp(b, 1))
	require.InDelta(t, 1.0, a.Nlerp(b, 0.4).Length(), eps)
}

// TestAtSet verifies indexed access and the out-of-bounds sentinel.
func TestAtSet(t *testing.T) {
	q := quat.Quat{X: 1, Y: 2, Z: 3, W: 4}

	for i, want := range []float64{1, 2, 3, 4} {
		got, err := q.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := q.At(4)
	require.ErrorIs(t, err, quat.ErrIndexOutOfBounds)
	require.ErrorIs(t, q.Set(-1, 0), quat.ErrIndexOutOfBounds)

	require.NoError(t, q.Set(3, 9))
	require.Equal(t, 9.0, q.W)
}

// TestRotatePreservesLength verifies rotations are isometries.
func TestRotatePreservesLength(t *testing.T) {
	q := quat.FromEuler(0.3, -1.2, 2.5)
	v := vec.Vec3{X: 3, Y: 4, Z: 12}

	require.InDelta(t, v.Length(), q.Rotate(v).Length(), eps)
}
