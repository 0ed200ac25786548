package planet

import "planetgen/pkg/noise"

// Parameters is the full noise recipe for one planet, derived purely from
// the seed. Immutable once derived.
type Parameters struct {
	MacroFreq    float64 // continent scale
	MacroOctaves int
	MacroAmp     float64

	MicroFreq    float64 // surface detail scale
	MicroOctaves int
	MicroAmp     float64

	RidgeFreq    float64 // mountain scale
	RidgeOctaves int
	RidgeAmp     float64

	Lacunarity float64 // shared per-octave frequency multiplier
	Gain       float64 // shared per-octave amplitude multiplier
}

// Salt constants keying each parameter's hash stream. These are part of the
// seed→planet mapping; changing one reshuffles every existing seed.
const (
	saltMacroFreq    = 10
	saltMacroOctaves = 11
	saltMacroAmp     = 12

	saltMicroFreq    = 20
	saltMicroOctaves = 21
	saltMicroAmp     = 22

	saltRidgeFreq    = 30
	saltRidgeOctaves = 31
	saltRidgeAmp     = 32

	saltLacunarity = 40
	saltGain       = 41
)

// DeriveParameters maps a seed to its Parameters. Pure function of the seed;
// every field comes from its own fixed salt so fields never correlate.
func DeriveParameters(seed int32) Parameters {
	s := uint32(seed)
	return Parameters{
		MacroFreq:    noise.Range(s, saltMacroFreq, 0.03, 0.18),
		MacroOctaves: noise.IntRange(s, saltMacroOctaves, 2, 5),
		MacroAmp:     noise.Range(s, saltMacroAmp, 0.6, 1.6),

		MicroFreq:    noise.Range(s, saltMicroFreq, 0.8, 3.0),
		MicroOctaves: noise.IntRange(s, saltMicroOctaves, 2, 6),
		MicroAmp:     noise.Range(s, saltMicroAmp, 0.05, 0.5),

		RidgeFreq:    noise.Range(s, saltRidgeFreq, 0.6, 2.5),
		RidgeOctaves: noise.IntRange(s, saltRidgeOctaves, 1, 4),
		RidgeAmp:     noise.Range(s, saltRidgeAmp, 0.2, 1.2),

		Lacunarity: noise.Range(s, saltLacunarity, 1.8, 2.2),
		Gain:       noise.Range(s, saltGain, 0.35, 0.6),
	}
}
