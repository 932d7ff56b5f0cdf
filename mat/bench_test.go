package mat_test

import (
	"testing"

	"github.com/katalvlaran/linmath/mat"
	"github.com/katalvlaran/linmath/vec"
)

// Benchmark sinks keep the compiler from eliding the measured work.
var (
	sinkMat4   mat.Mat4
	sinkAffine mat.Affine4
	sinkVec3   vec.Vec3
	sinkErr    error
)

// benchMat4 is a well-conditioned input shared by the Mat4 benchmarks.
func benchMat4() mat.Mat4 {
	return mat.Mat4{
		2, 0, 0, 1,
		0, 3, 1, 0,
		0, 1, 2, 0,
		1, 0, 0, 1,
	}
}

// BenchmarkMat4Mul measures the dense 4x4 product.
func BenchmarkMat4Mul(b *testing.B) {
	m := benchMat4()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Mul(m)
	}
}

// BenchmarkMat4Inverse measures the closed-form 4x4 inverse.
func BenchmarkMat4Inverse(b *testing.B) {
	m := benchMat4()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4, sinkErr = m.Inverse()
	}
}

// BenchmarkAffineMul measures sparse affine composition, which skips
// the implicit bottom row of the dense product.
func BenchmarkAffineMul(b *testing.B) {
	a := mat.TRS(
		vec.Vec3{X: 1, Y: 2, Z: 3},
		mat.RotationZ(0.5),
		vec.Vec3{X: 2, Y: 1, Z: 1},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkAffine = a.Mul(a)
	}
}

// BenchmarkAffineInverse measures the sparse closed-form inverse.
func BenchmarkAffineInverse(b *testing.B) {
	a := mat.TRS(
		vec.Vec3{X: 1, Y: 2, Z: 3},
		mat.RotationZ(0.5),
		vec.Vec3{X: 2, Y: 1, Z: 1},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkAffine, sinkErr = a.Inverse()
	}
}

// BenchmarkAffineMulPoint measures a single point transform.
func BenchmarkAffineMulPoint(b *testing.B) {
	a := mat.TranslationAffine4(vec.Vec3{X: 1, Y: 2, Z: 3})
	p := vec.Vec3{X: 4, Y: 5, Z: 6}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec3 = a.MulPoint(p)
	}
}
