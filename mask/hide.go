package mask

import (
	"github.com/gogpu/hframe/dom"
	"github.com/gogpu/hframe/geom"
)

// Hide hides the element while anything is in front of it.
//
// Simple, fast and supported everywhere, at the cost of never showing host
// content on top of embedded content.
type Hide struct{}

// NewHide creates a Hide strategy.
func NewHide() *Hide { return &Hide{} }

// Meta implements Strategy.
func (*Hide) Meta() Meta { return Meta{Name: "hide"} }

// Setup implements Strategy.
func (*Hide) Setup(dom.Surface) error { return nil }

// Cleanup implements Strategy.
func (*Hide) Cleanup(dom.Surface) error { return nil }

// ComputeMask implements Strategy.
func (*Hide) ComputeMask(_ Target, occluders []geom.Rect) Artifact {
	if len(occluders) == 0 {
		return Artifact{}
	}
	return Artifact{Hidden: true}
}

// Apply implements Strategy. Hiding is done by the engine through the
// element's visibility, so Apply only drops masks left by other strategies.
func (*Hide) Apply(s dom.Surface, t Target, _ Artifact) error {
	return clearMask(s, t.ElementID)
}

// Release implements Strategy.
func (*Hide) Release(dom.Surface, string) error { return nil }

// Nop disables masking.
type Nop struct{}

// NewNop creates a Nop strategy.
func NewNop() *Nop { return &Nop{} }

// Meta implements Strategy.
func (*Nop) Meta() Meta { return Meta{Name: "nop"} }

// Setup implements Strategy.
func (*Nop) Setup(dom.Surface) error { return nil }

// Cleanup implements Strategy.
func (*Nop) Cleanup(dom.Surface) error { return nil }

// ComputeMask implements Strategy.
func (*Nop) ComputeMask(Target, []geom.Rect) Artifact { return Artifact{} }

// Apply implements Strategy.
func (*Nop) Apply(s dom.Surface, t Target, _ Artifact) error {
	return clearMask(s, t.ElementID)
}

// Release implements Strategy.
func (*Nop) Release(dom.Surface, string) error { return nil }
