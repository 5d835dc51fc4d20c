package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
)

// benchmarkRREF reduces a fresh copy of an n×n pseudo-random matrix per iteration.
func benchmarkRREF(b *testing.B, n int) {
	src := RandomDense(b, 7, n, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := src.Clone().(*matrix.Dense)
		b.StartTimer()
		if _, err := matrix.RREF(m); err != nil {
			b.Fatalf("RREF failed: %v", err)
		}
	}
}

// BenchmarkRREF_16 benchmarks a 16×16 reduction.
func BenchmarkRREF_16(b *testing.B) { benchmarkRREF(b, 16) }

// BenchmarkRREF_64 benchmarks a 64×64 reduction.
func BenchmarkRREF_64(b *testing.B) { benchmarkRREF(b, 64) }

// BenchmarkRREF_256 benchmarks a 256×256 reduction.
func BenchmarkRREF_256(b *testing.B) { benchmarkRREF(b, 256) }
