// Package mask turns the set of rectangles drawn in front of an embedded
// element into a visual mask for that element.
//
// A [Strategy] works in two steps. ComputeMask is a pure function from the
// element rectangle and its occluders to an [Artifact]. Apply writes an
// artifact to the render surface. Splitting the two lets the engine skip the
// surface write when a frame produces the same artifact as the previous one.
//
// Available strategies:
//   - [DataMask]: SVG mask inlined as a data URI in the CSS mask property.
//   - [DocumentMask]: SVG mask definition kept in the document, referenced by id.
//   - [Hide]: hides the element as soon as anything is in front of it.
//   - [Nop]: never masks.
//   - [Auto]: picks DataMask or DocumentMask from the rendering engine.
package mask

import (
	"slices"

	"github.com/gogpu/hframe/dom"
	"github.com/gogpu/hframe/geom"
)

// Meta describes a strategy for diagnostics.
type Meta struct {
	// Name is the strategy name, e.g. "data_mask".
	Name string

	// MayLag is true when a mask written by Apply can show up one frame
	// after the occluder moved. The engine hides elements during drags
	// when the rendering engine cannot update masks synchronously.
	MayLag bool
}

// Target is the embedded element a mask is computed for.
type Target struct {
	// ElementID is the id of the element on the surface.
	ElementID string

	// Rect is where the element is placed, in surface coordinates.
	Rect geom.Rect
}

// Strategy computes and applies masks.
type Strategy interface {
	// Meta describes the strategy.
	Meta() Meta

	// Setup installs strategy-wide resources on the surface.
	Setup(s dom.Surface) error

	// Cleanup removes everything Setup and Apply installed.
	Cleanup(s dom.Surface) error

	// ComputeMask builds the artifact for t given the rectangles in front
	// of it. It must not touch the surface and must return equal artifacts
	// for equal inputs.
	ComputeMask(t Target, occluders []geom.Rect) Artifact

	// Apply writes an artifact to the element of t.
	Apply(s dom.Surface, t Target, a Artifact) error

	// Release drops per-element resources when the element goes away.
	Release(s dom.Surface, elementID string) error
}

// Artifact is the output of ComputeMask.
// The zero Artifact means "no mask needed".
type Artifact struct {
	// Width and Height are the size of the masked element.
	Width, Height float64

	// Holes are the occluded regions, relative to the element's top-left
	// corner and clipped to its bounds.
	Holes []geom.Rect

	// Radius is the corner radius of every hole.
	Radius float64

	// Value is the strategy-specific encoding, such as a data URI or a
	// mask definition.
	Value string

	// Hidden asks the engine to hide the element entirely.
	Hidden bool
}

// IsEmpty reports whether the artifact masks nothing.
func (a Artifact) IsEmpty() bool {
	return len(a.Holes) == 0 && !a.Hidden
}

// Equal reports whether two artifacts are identical.
func (a Artifact) Equal(b Artifact) bool {
	return a.Width == b.Width &&
		a.Height == b.Height &&
		a.Radius == b.Radius &&
		a.Hidden == b.Hidden &&
		a.Value == b.Value &&
		slices.Equal(a.Holes, b.Holes)
}

// holes maps occluders into the local space of target, clipped to its bounds.
// Occluders that only touch the target produce no hole.
func holes(target geom.Rect, occluders []geom.Rect) (frame geom.Rect, out []geom.Rect) {
	frame = target.Relative(target).Sanitize()
	for _, o := range occluders {
		h := o.Relative(target).Sanitize().Intersect(frame)
		if h.IsEmpty() {
			continue
		}
		out = append(out, h)
	}
	return frame, out
}

// clearMask removes mask declarations from an element.
func clearMask(s dom.Surface, id string) error {
	return s.SetStyle(id, dom.Prop("mask", ""), dom.Prop("-webkit-mask", ""))
}

// setMask sets both the standard and the prefixed mask property.
func setMask(s dom.Surface, id, value string) error {
	return s.SetStyle(id, dom.Prop("mask", value), dom.Prop("-webkit-mask", value))
}
