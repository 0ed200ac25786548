package noise

import "math"

// Fractal combinators over Noise3.

// FBM sums octaves of gradient noise at increasing frequency and decreasing
// amplitude, remapping each octave to [0,1] before weighting and normalizing
// by the accumulated amplitude. The result is in [0,1]; zero octaves or an
// amplitude sum of zero return 0.
func (t *Table) FBM(x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		n := (t.Noise3(x*frequency, y*frequency, z*frequency) + 1) * 0.5
		sum += n * amplitude
		norm += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// RidgedFBM is a ridged-multifractal sum: each octave folds the raw noise
// into a ridge via (1-|n|)^2 and scales it by a weight carried from the
// previous octave. The carry is what connects ridge lines into ranges;
// without it the octaves collapse into isolated peaks. Gain feeds only the
// weight carry; the per-octave amplitude always halves. Result is >= 0,
// typically below ~1.2 for the parameter ranges used here.
func (t *Table) RidgedFBM(x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	weight := 1.0
	sum := 0.0
	for i := 0; i < octaves; i++ {
		n := 1 - math.Abs(t.Noise3(x*frequency, y*frequency, z*frequency))
		n *= n
		n *= weight

		weight = n * gain
		if weight > 1 {
			weight = 1
		} else if weight < 0 {
			weight = 0
		}

		sum += n * amplitude
		amplitude *= 0.5
		frequency *= lacunarity
	}
	return sum
}
