package planet

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// Session is the init/height/finalPosition boundary consumed by the mesh
// layer. Init swaps in a freshly built Generator; readers always see either
// the old context or the new one, never a torn table, so queries may run
// concurrently with re-seeding.
type Session struct {
	ctx atomic.Pointer[Generator]
}

// defaultGenerator serves queries issued before the first Init. Defined
// results beat reading uninitialized state; callers should still Init first.
var defaultGenerator = New(0, 1, 1)

// Init fully replaces the session's generation context. Prior state is
// discarded; calling Init twice with the same arguments resets identically.
func (s *Session) Init(seed int32, scale, radius float64) {
	s.ctx.Store(New(seed, scale, radius))
}

// Generator returns the active context, or the seed-0 default when Init has
// never been called.
func (s *Session) Generator() *Generator {
	if g := s.ctx.Load(); g != nil {
		return g
	}
	return defaultGenerator
}

// Height returns the signed elevation for the direction (x, y, z).
func (s *Session) Height(x, y, z float64) float64 {
	return s.Generator().HeightAt(x, y, z)
}

// FinalPosition returns the displaced surface point for (x, y, z).
func (s *Session) FinalPosition(x, y, z float64) (float64, float64, float64) {
	p := s.Generator().FinalPosition(mgl64.Vec3{x, y, z})
	return p.X(), p.Y(), p.Z()
}

// Displace batch-displaces points with the active context.
func (s *Session) Displace(points []mgl64.Vec3) []mgl64.Vec3 {
	return s.Generator().Displace(points)
}
