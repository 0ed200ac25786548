package planet

import (
	"github.com/dgravesa/go-parallel/parallel"
	"github.com/go-gl/mathgl/mgl64"

	"planetgen/internal/profiling"
)

// Batch displacement over vertex buffers. Both variants are observably
// equivalent to calling FinalPosition once per point in order.

// Displace applies FinalPosition to every point sequentially.
func (g *Generator) Displace(points []mgl64.Vec3) []mgl64.Vec3 {
	defer profiling.Track("planet.Displace")()
	out := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		out[i] = g.FinalPosition(p)
	}
	return out
}

// DisplaceParallel fans the same work out across goroutines. Safe because
// the Generator is immutable and each index writes its own slot.
func (g *Generator) DisplaceParallel(points []mgl64.Vec3) []mgl64.Vec3 {
	defer profiling.Track("planet.DisplaceParallel")()
	out := make([]mgl64.Vec3, len(points))
	parallel.For(len(points), func(i, _ int) {
		out[i] = g.FinalPosition(points[i])
	})
	return out
}
