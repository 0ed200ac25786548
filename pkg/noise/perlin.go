package noise

import "math"

// 3D gradient (Perlin-style) lattice noise over a permutation table.

// Gradient lookup tables; the low 4 bits of a corner hash select an
// axis-aligned or edge-diagonal direction.
var (
	gradX = [16]float64{1, -1, 1, -1, 1, -1, 1, -1, 0, 0, 0, 0, 1, 0, -1, 0}
	gradY = [16]float64{1, 1, -1, -1, 0, 0, 0, 0, 1, -1, 1, -1, 1, -1, 1, -1}
	gradZ = [16]float64{0, 0, 0, 0, 1, 1, -1, -1, 1, 1, -1, -1, 0, 1, 0, -1}
)

// fade is the quintic curve 6t^5 - 15t^4 + 10t^3; zero first and second
// derivatives at the cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	i := hash & 15
	return gradX[i]*x + gradY[i]*y + gradZ[i]*z
}

// Noise3 evaluates gradient noise at (x, y, z), approximately in [-1, 1].
// A nil receiver evaluates against the shared seed-0 table.
func (t *Table) Noise3(x, y, z float64) float64 {
	if t == nil {
		t = defaultTable
	}

	// Lattice cell (masked to 0..255) and fractional offsets within it.
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255
	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash the 8 cube corners through the doubled table.
	a := t[X] + Y
	aa := t[a] + Z
	ab := t[a+1] + Z
	b := t[X+1] + Y
	ba := t[b] + Z
	bb := t[b+1] + Z

	return lerp(w,
		lerp(v,
			lerp(u,
				grad(t[aa], x, y, z),
				grad(t[ba], x-1, y, z)),
			lerp(u,
				grad(t[ab], x, y-1, z),
				grad(t[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u,
				grad(t[aa+1], x, y, z-1),
				grad(t[ba+1], x-1, y, z-1)),
			lerp(u,
				grad(t[ab+1], x, y-1, z-1),
				grad(t[bb+1], x-1, y-1, z-1))))
}
