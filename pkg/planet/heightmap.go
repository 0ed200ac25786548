package planet

import (
	"image"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/go-gl/mathgl/mgl64"
	xdraw "golang.org/x/image/draw"

	"planetgen/internal/profiling"
)

// Heightmap is a size×size equirectangular sampling of a planet's elevation,
// row-major, longitude along x and latitude along y.
type Heightmap struct {
	Size    int
	Heights []float64
}

// sphereDirection maps texture coordinates u,v in [0,1] to a unit direction.
// v runs pole to pole; the y axis is the polar axis.
func sphereDirection(u, v float64) mgl64.Vec3 {
	lon := u * 2 * math.Pi
	lat := v * math.Pi
	return mgl64.Vec3{
		math.Cos(lon) * math.Sin(lat),
		math.Cos(lat),
		math.Sin(lon) * math.Sin(lat),
	}
}

// Heightmap samples the full sphere on a size×size grid. Rows are sampled in
// parallel; evaluation is pure so the result is identical to a sequential
// sweep.
func (g *Generator) Heightmap(size int) *Heightmap {
	defer profiling.Track("planet.Heightmap")()
	hm := &Heightmap{
		Size:    size,
		Heights: make([]float64, size*size),
	}
	parallel.For(size, func(y, _ int) {
		v := (float64(y) + 0.5) / float64(size)
		for x := 0; x < size; x++ {
			u := (float64(x) + 0.5) / float64(size)
			hm.Heights[y*size+x] = g.Height(sphereDirection(u, v))
		}
	})
	return hm
}

// Gray renders the heightmap as an 8-bit grayscale image, min/max normalized
// so the full range is visible regardless of scale.
func (hm *Heightmap) Gray() *image.Gray {
	if len(hm.Heights) == 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	lo, hi := hm.Heights[0], hm.Heights[0]
	for _, h := range hm.Heights {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, hm.Size, hm.Size))
	for i, h := range hm.Heights {
		img.Pix[i] = uint8((h - lo) / span * 255)
	}
	return img
}

// Thumbnail downsamples the rendered heightmap to width w, preserving the
// square aspect.
func (hm *Heightmap) Thumbnail(w int) image.Image {
	src := hm.Gray()
	dst := image.NewGray(image.Rect(0, 0, w, w))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
