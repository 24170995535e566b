package scales_test

import (
	"testing"

	"github.com/katalvlaran/dimens/scales"
)

// BenchmarkNew_Explicit benchmarks construction with every base scale
// supplied (no defaulting work).
func BenchmarkNew_Explicit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := scales.New(2.0, scales.WithMass(3.0), scales.WithTime(4.0), scales.WithTemperature(300.0))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Defaulted benchmarks construction with time and
// temperature derived (one sqrt plus the energy monomial).
func BenchmarkNew_Defaulted(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := scales.New(6.371e6, scales.WithDensity(5.514e3))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkSystem_EnergyScale benchmarks the deepest derived query
// (energy recomputes velocity per call).
func BenchmarkSystem_EnergyScale(b *testing.B) {
	sys, err := scales.New(2.0, scales.WithMass(3.0), scales.WithTime(4.0))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = sys.EnergyScale()
	}
	_ = sink
}
