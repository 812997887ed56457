// Package matrix_test provides benchmarks for the fixed-shape kernels,
// using deterministic random fill.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
)

// sinks to defeat dead-code elimination
var (
	sink4 matrix.Mat4x4[float64]
	sinkF float64
)

func rand4x4(seed int64) matrix.Mat4x4[float64] {
	var m matrix.Mat4x4[float64]
	fillRand(&m, seed)
	for i := 0; i < 4; i++ {
		m.Set(i, i, m.At(i, i)+50)
	}

	return m
}

func BenchmarkAdd4x4(b *testing.B) {
	x, y := rand4x4(1337), rand4x4(4242)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4 = x.Add(y)
	}
}

func BenchmarkMul4x4(b *testing.B) {
	x, y := rand4x4(1337), rand4x4(4242)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4 = x.Mul4x4(y)
	}
}

func BenchmarkTransposed4x4(b *testing.B) {
	x := rand4x4(1337)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4 = x.Transposed()
	}
}

func BenchmarkInverse4x4(b *testing.B) {
	x := rand4x4(1337)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4 = x.Inverse()
	}
}

func BenchmarkGauss4x4(b *testing.B) {
	x := rand4x4(1337)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := x
		m.Gauss()
		sink4 = m
	}
}

func BenchmarkMagnitude4x1(b *testing.B) {
	v := rand4x4(7).Column(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = v.Magnitude()
	}
}
