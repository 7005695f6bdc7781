package mask

import (
	"github.com/gogpu/hframe/dom"
	"github.com/gogpu/hframe/geom"
)

// ContainerID is the id of the element holding DocumentMask definitions.
const ContainerID = "hframe-masks"

const containerStyle = "position: absolute; top: 0; left: 0; width: 0; height: 0; overflow: hidden; pointer-events: none;"

// DocumentMask keeps one SVG mask definition per element in the document and
// points the element's CSS mask at it by id.
//
// Updating a definition is cheaper than re-encoding a data URI, but only
// engines that re-render referenced masks when their definition changes
// show the update. Gecko does.
type DocumentMask struct {
	opts options
}

// NewDocumentMask creates a DocumentMask strategy.
func NewDocumentMask(opts ...Option) *DocumentMask {
	return &DocumentMask{opts: buildOptions(opts)}
}

// Meta implements Strategy.
func (m *DocumentMask) Meta() Meta {
	return Meta{Name: "document_mask", MayLag: true}
}

// Setup implements Strategy.
func (m *DocumentMask) Setup(s dom.Surface) error {
	return s.EnsureContainer(ContainerID, containerStyle)
}

// Cleanup implements Strategy.
func (m *DocumentMask) Cleanup(s dom.Surface) error {
	return s.RemoveContainer(ContainerID)
}

// ComputeMask implements Strategy.
func (m *DocumentMask) ComputeMask(t Target, occluders []geom.Rect) Artifact {
	if len(occluders) == 0 {
		return Artifact{}
	}
	frame, hs := holes(t.Rect, occluders)
	if len(hs) == 0 {
		return Artifact{}
	}

	svg := svgMask{
		id:     svgID(t.ElementID),
		class:  "hframe-mask-svg",
		maskID: maskID(t.ElementID),
		frame:  frame,
		holes:  hs,
		radius: m.opts.radius,
	}
	return Artifact{
		Width:  frame.W,
		Height: frame.H,
		Holes:  hs,
		Radius: m.opts.radius,
		Value:  svg.String(),
	}
}

// Apply implements Strategy.
func (m *DocumentMask) Apply(s dom.Surface, t Target, a Artifact) error {
	if a.IsEmpty() {
		if err := s.RemoveDefinition(svgID(t.ElementID)); err != nil {
			return err
		}
		return clearMask(s, t.ElementID)
	}
	if err := s.UpsertDefinition(ContainerID, svgID(t.ElementID), a.Value); err != nil {
		return err
	}
	return setMask(s, t.ElementID, "url(#"+maskID(t.ElementID)+")")
}

// Release implements Strategy.
func (m *DocumentMask) Release(s dom.Surface, elementID string) error {
	return s.RemoveDefinition(svgID(elementID))
}

func svgID(elementID string) string  { return elementID + "-svg" }
func maskID(elementID string) string { return elementID + "-mask" }
