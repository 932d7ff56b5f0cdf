// Package vec_test contains unit tests for the Vec2 value type.
package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linmath/vec"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestVec2Arithmetic verifies the component-wise operator set.
func TestVec2Arithmetic(t *testing.T) {
	a := vec.Vec2{X: 1, Y: -2}
	b := vec.Vec2{X: 3, Y: 5}

	require.Equal(t, vec.Vec2{X: 4, Y: 3}, a.Add(b))
	require.Equal(t, vec.Vec2{X: -2, Y: -7}, a.Sub(b))
	require.Equal(t, vec.Vec2{X: 3, Y: -10}, a.Mul(b))
	require.Equal(t, vec.Vec2{X: 2, Y: -4}, a.Scale(2))
	require.Equal(t, vec.Vec2{X: 0.5, Y: -1}, a.Shrink(2))
	require.Equal(t, vec.Vec2{X: -1, Y: 2}, a.Neg())

	q := a.Div(b)
	require.InDelta(t, 1.0/3.0, q.X, eps)
	require.InDelta(t, -0.4, q.Y, eps)
}

// TestVec2Splat verifies the scalar constructor.
func TestVec2Splat(t *testing.T) {
	require.Equal(t, vec.Vec2{X: 7, Y: 7}, vec.Splat2(7))
}

// TestVec2DotLength verifies dot product, lengths and distances.
func TestVec2DotLength(t *testing.T) {
	a := vec.Vec2{X: 3, Y: 4}

	require.InDelta(t, 25.0, a.LengthSq(), eps)
	require.InDelta(t, 5.0, a.Length(), eps)
	require.InDelta(t, 0.0, a.Dot(vec.Vec2{X: -4, Y: 3}), eps) // perpendicular

	b := vec.Vec2{X: 6, Y: 8}
	require.InDelta(t, 25.0, a.DistanceSq(b), eps)
	require.InDelta(t, 5.0, a.Distance(b), eps)
}

// TestVec2Normalized verifies unit scaling and the zero-vector rule.
func TestVec2Normalized(t *testing.T) {
	n := vec.Vec2{X: 3, Y: 4}.Normalized()
	require.InDelta(t, 0.6, n.X, eps)
	require.InDelta(t, 0.8, n.Y, eps)
	require.InDelta(t, 1.0, n.Length(), eps)

	// The zero vector must come back unchanged, never as NaN.
	z := vec.Vec2{}.Normalized()
	require.Equal(t, vec.Vec2{}, z)
}

// TestVec2Lerp verifies endpoint and midpoint interpolation.
func TestVec2Lerp(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 10}
	b := vec.Vec2{X: 10, Y: 0}

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, vec.Vec2{X: 5, Y: 5}, a.Lerp(b, 0.5))
}

// TestVec2Angle verifies angle computation including the zero-length guard.
func TestVec2Angle(t *testing.T) {
	x := vec.Vec2{X: 1, Y: 0}
	y := vec.Vec2{X: 0, Y: 1}

	require.InDelta(t, math.Pi/2, x.Angle(y), eps)
	require.InDelta(t, 0.0, x.Angle(x.Scale(4)), eps)
	require.InDelta(t, math.Pi, x.Angle(x.Neg()), eps)
	require.Zero(t, x.Angle(vec.Vec2{})) // zero-length operand → 0
}

// TestVec2AtSet verifies indexed access and the out-of-bounds sentinel.
func TestVec2AtSet(t *testing.T) {
	v := vec.Vec2{X: 1, Y: 2}

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	got, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	_, err = v.At(2)
	require.ErrorIs(t, err, vec.ErrIndexOutOfBounds)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vec.ErrIndexOutOfBounds)

	require.NoError(t, v.Set(0, 9))
	require.Equal(t, 9.0, v.X)
	require.ErrorIs(t, v.Set(2, 0), vec.ErrIndexOutOfBounds)
}

// TestVec2Vec3 verifies the size-up conversion.
func TestVec2Vec3(t *testing.T) {
	require.Equal(t, vec.Vec3{X: 1, Y: 2, Z: 3}, vec.Vec2{X: 1, Y: 2}.Vec3(3))
}

// TestVec2String verifies the diagnostic format.
func TestVec2String(t *testing.T) {
	require.Equal(t, "(1.5, -2)", vec.Vec2{X: 1.5, Y: -2}.String())
}
