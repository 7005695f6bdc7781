// Package geom provides the rectangle math shared by the composition engine
// and the mask strategies.
//
// All rectangles live in one coordinate space: the host's render surface, with
// the origin at the top-left corner, X growing right and Y growing down.
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromMinMax creates a Rect from two corners.
func FromMinMax(min, max Point) Rect {
	return Rect{X: min.X, Y: min.Y, W: max.X - min.X, H: max.Y - min.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects returns true if two rectangles overlap.
// Rectangles that only share an edge count as intersecting, which matches
// how the host GUI tests overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.IsNaN() || other.IsNaN() {
		return false
	}
	return !(other.X > r.Right() || other.Right() < r.X ||
		other.Y > r.Bottom() || other.Bottom() < r.Y)
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rectangle if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0 || r.IsNaN()
}

// IsZero reports whether r is the zero Rect.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// IsNaN reports whether any component of r is NaN.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X) || math.IsNaN(r.Y) || math.IsNaN(r.W) || math.IsNaN(r.H)
}

// Relative maps r into the local coordinate space of parent, whose top-left
// corner becomes the origin. The size of r is preserved.
func (r Rect) Relative(parent Rect) Rect {
	return FromMinMax(r.Min().Sub(parent.Min()), r.Max().Sub(parent.Min()))
}

// Sanitize returns r with NaN components replaced by zero and negative
// dimensions clipped to zero.
func (r Rect) Sanitize() Rect {
	return Rect{
		X: finite(r.X),
		Y: finite(r.Y),
		W: math.Max(0, finite(r.W)),
		H: math.Max(0, finite(r.H)),
	}
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	if math.IsInf(v, -1) {
		return -math.MaxFloat64
	}
	return v
}
