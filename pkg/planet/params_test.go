package planet

import (
	"math/rand"
	"testing"
)

// TestDeriveParametersRanges verifies every field lands in its documented
// interval for a broad sweep of seeds.
func TestDeriveParametersRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	check := func(seed int32, name string, v, lo, hi float64) {
		t.Helper()
		if v < lo || v >= hi {
			t.Errorf("seed %d: %s = %f, expected in [%f,%f)", seed, name, v, lo, hi)
		}
	}
	checkInt := func(seed int32, name string, v, lo, hi int) {
		t.Helper()
		if v < lo || v > hi {
			t.Errorf("seed %d: %s = %d, expected in [%d,%d]", seed, name, v, lo, hi)
		}
	}

	for i := 0; i < 5000; i++ {
		seed := int32(rng.Uint32())
		p := DeriveParameters(seed)

		check(seed, "MacroFreq", p.MacroFreq, 0.03, 0.18)
		checkInt(seed, "MacroOctaves", p.MacroOctaves, 2, 5)
		check(seed, "MacroAmp", p.MacroAmp, 0.6, 1.6)

		check(seed, "MicroFreq", p.MicroFreq, 0.8, 3.0)
		checkInt(seed, "MicroOctaves", p.MicroOctaves, 2, 6)
		check(seed, "MicroAmp", p.MicroAmp, 0.05, 0.5)

		check(seed, "RidgeFreq", p.RidgeFreq, 0.6, 2.5)
		checkInt(seed, "RidgeOctaves", p.RidgeOctaves, 1, 4)
		check(seed, "RidgeAmp", p.RidgeAmp, 0.2, 1.2)

		check(seed, "Lacunarity", p.Lacunarity, 1.8, 2.2)
		check(seed, "Gain", p.Gain, 0.35, 0.6)
	}
}

// TestDeriveParametersDeterministic verifies the same seed derives the same
// record every time.
func TestDeriveParametersDeterministic(t *testing.T) {
	for _, seed := range []int32{0, 1, 42, 1337, -1} {
		a := DeriveParameters(seed)
		b := DeriveParameters(seed)
		if a != b {
			t.Errorf("DeriveParameters(%d) differs across calls: %+v vs %+v", seed, a, b)
		}
	}
}

// TestDeriveParametersSeedSensitivity verifies different seeds derive
// different records.
func TestDeriveParametersSeedSensitivity(t *testing.T) {
	if DeriveParameters(1) == DeriveParameters(2) {
		t.Errorf("DeriveParameters(1) == DeriveParameters(2), seed has no effect")
	}
}
