package mask

import (
	"github.com/gogpu/hframe/dom"
	"github.com/gogpu/hframe/geom"
)

// Auto delegates to the strategy that works best on the current engine.
//
// Gecko hot-reloads referenced mask definitions reliably, so it gets
// DocumentMask. Everything else, including engines the probe cannot
// identify, gets DataMask.
type Auto struct {
	engine Engine
	inner  Strategy
}

// NewAuto probes the engine once and picks a delegate.
// A nil probe is treated as EngineUnknown.
func NewAuto(probe Probe, opts ...Option) *Auto {
	engine := EngineUnknown
	if probe != nil {
		engine = probe()
	}

	var inner Strategy
	switch engine {
	case EngineGecko:
		inner = NewDocumentMask(opts...)
	default:
		inner = NewDataMask(opts...)
	}
	return &Auto{engine: engine, inner: inner}
}

// Engine returns the probed engine.
func (a *Auto) Engine() Engine { return a.engine }

// Delegate returns the strategy Auto forwards to.
func (a *Auto) Delegate() Strategy { return a.inner }

// Meta implements Strategy.
func (a *Auto) Meta() Meta {
	m := a.inner.Meta()
	m.Name += " (auto)"
	return m
}

// Setup implements Strategy.
func (a *Auto) Setup(s dom.Surface) error { return a.inner.Setup(s) }

// Cleanup implements Strategy.
func (a *Auto) Cleanup(s dom.Surface) error { return a.inner.Cleanup(s) }

// ComputeMask implements Strategy.
func (a *Auto) ComputeMask(t Target, occluders []geom.Rect) Artifact {
	return a.inner.ComputeMask(t, occluders)
}

// Apply implements Strategy.
func (a *Auto) Apply(s dom.Surface, t Target, art Artifact) error {
	return a.inner.Apply(s, t, art)
}

// Release implements Strategy.
func (a *Auto) Release(s dom.Surface, elementID string) error {
	return a.inner.Release(s, elementID)
}
