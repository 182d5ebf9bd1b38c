// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
)

// mustMat builds an r x c matrix or aborts the benchmark.
func mustMat(b *testing.B, r, c int) *matrix.Matrix[float64] {
	b.Helper()
	m, err := matrix.New[float64](r, c)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// fillRand populates m with deterministic pseudo-random values in (0,1].
// Values stay strictly positive so division benchmarks never hit zero.
func fillRand(b *testing.B, m *matrix.Matrix[float64], seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, 1-rng.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n)
			B := mustMat(b, n, n)
			fillRand(b, A, 1337)
			fillRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAddParallel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n)
			B := mustMat(b, n, n)
			fillRand(b, A, 1337)
			fillRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B, matrix.WithParallel())
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkHadamard(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n)
			B := mustMat(b, n, n)
			fillRand(b, A, 1)
			fillRand(b, B, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Hadamard(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkScale(b *testing.B) {
	b.ReportAllocs()
	const alpha = 1.75
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n)
			fillRand(b, A, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Scale(alpha)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n+8) // rectangular
			fillRand(b, A, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	// Smaller sizes: the triple loop is cubic.
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n)
			B := mustMat(b, n, n)
			fillRand(b, A, 3)
			fillRand(b, B, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkRowEchelon(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n)
			fillRand(b, A, 21)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.RowEchelon()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	// Cofactor expansion is factorial; keep sizes tiny.
	for _, n := range []int{3, 5, 7} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustMat(b, n, n)
			fillRand(b, A, 55)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Det()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
