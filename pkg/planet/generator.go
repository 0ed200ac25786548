package planet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"planetgen/pkg/noise"
)

// Height composition weights and thresholds. These are the canonical blend;
// see DESIGN.md for the variants that were rejected.
const (
	seaLevel = 0.45

	macroWeight = 0.65
	microWeight = 0.30
	ridgeWeight = 0.6

	maskLow  = 0.35
	maskHigh = 0.65

	polarLow   = 0.6
	polarHigh  = 0.95
	polarBoost = 0.08
)

// Generator is one planet's generation context: seed, display scale/radius,
// derived parameters and the permutation table. Immutable after New and safe
// for any number of concurrent readers; re-seeding means building a new
// Generator, never mutating an old one.
type Generator struct {
	seed   int32
	scale  float64
	radius float64
	params Parameters
	table  *noise.Table
}

// New builds the generation context for a seed. Scale multiplies the signed
// height; radius is the base sphere radius displaced heights are added to.
func New(seed int32, scale, radius float64) *Generator {
	return &Generator{
		seed:   seed,
		scale:  scale,
		radius: radius,
		params: DeriveParameters(seed),
		table:  noise.NewTable(seed),
	}
}

func (g *Generator) Seed() int32        { return g.seed }
func (g *Generator) Scale() float64     { return g.scale }
func (g *Generator) Radius() float64    { return g.radius }
func (g *Generator) Params() Parameters { return g.params }

// normalizeDir is a zero-safe normalize: the zero vector maps to itself
// instead of NaN, so degenerate directions produce a defined (if
// meaningless) height at the lattice origin.
func normalizeDir(d mgl64.Vec3) mgl64.Vec3 {
	l := d.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return d.Mul(1 / l)
}

// smoothstep is the cubic Hermite blend t²(3-2t) over [edge0, edge1].
func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Height returns the signed elevation for a direction on the sphere.
// Negative values are below sea level. The input need not be normalized.
func (g *Generator) Height(dir mgl64.Vec3) float64 {
	return g.heightUnit(normalizeDir(dir))
}

// heightUnit composes the height for an already-normalized direction.
func (g *Generator) heightUnit(d mgl64.Vec3) float64 {
	p := g.params

	macro := g.table.FBM(d.X()*p.MacroFreq, d.Y()*p.MacroFreq, d.Z()*p.MacroFreq,
		p.MacroOctaves, p.Lacunarity, p.Gain) * p.MacroAmp
	micro := g.table.FBM(d.X()*p.MicroFreq, d.Y()*p.MicroFreq, d.Z()*p.MicroFreq,
		p.MicroOctaves, p.Lacunarity, p.Gain) * p.MicroAmp
	ridge := g.table.RidgedFBM(d.X()*p.RidgeFreq, d.Y()*p.RidgeFreq, d.Z()*p.RidgeFreq,
		p.RidgeOctaves, p.Lacunarity, p.Gain) * p.RidgeAmp

	// Continents gate the ridges: no mountain ranges rising out of ocean
	// basins. The polar term lifts the caps slightly, same at both poles.
	mask := smoothstep(maskLow, maskHigh, macro)
	polar := smoothstep(polarLow, polarHigh, math.Abs(d.Y())) * polarBoost

	h := macro*macroWeight + micro*microWeight + ridge*mask*ridgeWeight + polar - seaLevel
	return h * g.scale
}

// HeightAt is Height over raw components.
func (g *Generator) HeightAt(x, y, z float64) float64 {
	return g.Height(mgl64.Vec3{x, y, z})
}

// FinalPosition displaces a direction onto the terrain surface:
// normalize(dir) * (radius + height).
func (g *Generator) FinalPosition(dir mgl64.Vec3) mgl64.Vec3 {
	d := normalizeDir(dir)
	return d.Mul(g.radius + g.heightUnit(d))
}
