package noise

import (
	"testing"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Benchmarks comparing the lattice noise against the third-party generators
// commonly used for the same job. Keep these honest when touching Noise3.

var benchSink float64

func BenchmarkNoise3(b *testing.B) {
	tab := NewTable(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = tab.Noise3(float64(i)*0.01, 1.3, 2.7)
	}
}

func BenchmarkFBM(b *testing.B) {
	tab := NewTable(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = tab.FBM(float64(i)*0.01, 1.3, 2.7, 4, 2.0, 0.5)
	}
}

func BenchmarkRidgedFBM(b *testing.B) {
	tab := NewTable(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = tab.RidgedFBM(float64(i)*0.01, 1.3, 2.7, 4, 2.0, 0.5)
	}
}

func BenchmarkAquilaxPerlin(b *testing.B) {
	p := perlin.NewPerlin(2, 2, 3, 42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = p.Noise3D(float64(i)*0.01, 1.3, 2.7)
	}
}

func BenchmarkOpenSimplex(b *testing.B) {
	n := opensimplex.New(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = n.Eval3(float64(i)*0.01, 1.3, 2.7)
	}
}
