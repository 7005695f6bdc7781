package mask

import (
	"strconv"

	"github.com/gogpu/hframe/dom"
	"github.com/gogpu/hframe/geom"
	"github.com/gogpu/hframe/internal/memo"
)

// uriCacheSize bounds the number of encoded masks a DataMask remembers.
const uriCacheSize = 64

// Option configures the rect-based strategies.
type Option func(*options)

type options struct {
	radius float64
}

func defaultOptions() options {
	return options{radius: DefaultRadius}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRadius sets the corner radius of mask holes.
// Negative values are treated as zero.
func WithRadius(r float64) Option {
	return func(o *options) {
		o.radius = max(0, r)
	}
}

// DataMask produces SVG images encoded as data URIs and sets them as the
// element's CSS mask.
//
// Data URIs are remembered by hole layout, so a window resting over the
// element builds and escapes its SVG once. It has no document side effects
// and works on every engine that supports CSS masks.
type DataMask struct {
	opts options
	uris *memo.Table[string, string]
}

// NewDataMask creates a DataMask strategy.
func NewDataMask(opts ...Option) *DataMask {
	return &DataMask{opts: buildOptions(opts), uris: memo.New[string, string](uriCacheSize)}
}

// Meta implements Strategy.
func (m *DataMask) Meta() Meta {
	return Meta{Name: "data_mask", MayLag: true}
}

// Setup implements Strategy.
func (m *DataMask) Setup(dom.Surface) error { return nil }

// Cleanup implements Strategy. Masks live in element styles, which the engine
// rewrites on the next Apply, so there is nothing to remove.
func (m *DataMask) Cleanup(dom.Surface) error { return nil }

// ComputeMask implements Strategy.
func (m *DataMask) ComputeMask(t Target, occluders []geom.Rect) Artifact {
	if len(occluders) == 0 {
		return Artifact{}
	}
	frame, hs := holes(t.Rect, occluders)
	if len(hs) == 0 {
		return Artifact{}
	}

	uri := m.uris.Get(layoutKey(frame, hs, m.opts.radius), func(string) string {
		svg := svgMask{
			maskID: "mask",
			frame:  frame,
			holes:  hs,
			radius: m.opts.radius,
			paint:  true,
		}
		return dataURI(svg.String())
	})
	return Artifact{
		Width:  frame.W,
		Height: frame.H,
		Holes:  hs,
		Radius: m.opts.radius,
		Value:  uri,
	}
}

// layoutKey identifies a mask by its frame size, holes and corner radius.
func layoutKey(frame geom.Rect, hs []geom.Rect, radius float64) string {
	b := make([]byte, 0, 16*(len(hs)*4+3))
	num := func(v float64) {
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
		b = append(b, ',')
	}
	num(frame.W)
	num(frame.H)
	num(radius)
	for _, h := range hs {
		b = append(b, ';')
		num(h.X)
		num(h.Y)
		num(h.W)
		num(h.H)
	}
	return string(b)
}

// Apply implements Strategy.
func (m *DataMask) Apply(s dom.Surface, t Target, a Artifact) error {
	if a.IsEmpty() {
		return clearMask(s, t.ElementID)
	}
	return setMask(s, t.ElementID, a.Value)
}

// Release implements Strategy.
func (m *DataMask) Release(dom.Surface, string) error { return nil }
