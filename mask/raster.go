package mask

import (
	"image"
	"image/draw"

	"github.com/gogpu/hframe/geom"
	"golang.org/x/image/vector"
)

// Rasterize renders the coverage of an artifact into a w×h alpha image:
// 255 where the element shows through, 0 inside holes, and 0 everywhere if
// the artifact hides the element. The artifact is scaled to fit w×h.
//
// Rasterize is meant for previews and tests; the engine never rasterizes.
func Rasterize(a Artifact, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || a.Hidden {
		return dst
	}
	draw.Draw(dst, dst.Bounds(), image.Opaque, image.Point{}, draw.Src)
	if len(a.Holes) == 0 || a.Width <= 0 || a.Height <= 0 {
		return dst
	}

	sx := float64(w) / a.Width
	sy := float64(h) / a.Height

	z := vector.NewRasterizer(w, h)
	for _, hole := range a.Holes {
		scaled := geom.NewRect(hole.X*sx, hole.Y*sy, hole.W*sx, hole.H*sy)
		roundedRect(z, scaled, a.Radius*min(sx, sy))
	}

	covered := image.NewAlpha(dst.Bounds())
	z.Draw(covered, covered.Bounds(), image.Opaque, image.Point{})
	for i, c := range covered.Pix {
		dst.Pix[i] = 255 - c
	}
	return dst
}

// roundedRect adds a closed rounded rectangle to the rasterizer's path.
func roundedRect(z *vector.Rasterizer, r geom.Rect, radius float64) {
	radius = min(radius, r.W/2, r.H/2)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.Right()), float32(r.Bottom())
	rr := float32(radius)

	z.MoveTo(x0+rr, y0)
	z.LineTo(x1-rr, y0)
	z.QuadTo(x1, y0, x1, y0+rr)
	z.LineTo(x1, y1-rr)
	z.QuadTo(x1, y1, x1-rr, y1)
	z.LineTo(x0+rr, y1)
	z.QuadTo(x0, y1, x0, y1-rr)
	z.LineTo(x0, y0+rr)
	z.QuadTo(x0, y0, x0+rr, y0)
	z.ClosePath()
}
