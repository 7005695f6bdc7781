package host

import (
	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/geom"
)

// BareHTML is embedded content placed inside a host layer without a window
// of its own. Like Window it must be reported every frame or its element is
// removed.
type BareHTML struct {
	id      string
	content string
}

// NewBareHTML creates bare content. The id is slugged into the element id.
func NewBareHTML(id string) *BareHTML {
	return &BareHTML{id: Slug(id)}
}

// Content sets the inner HTML.
func (b *BareHTML) Content(html string) *BareHTML {
	b.content = html
	return b
}

// Input is the host input state relevant to bare content.
type Input struct {
	// PointerDown is true while the primary pointer button is held.
	PointerDown bool

	// TopLayer is the layer currently in front of all others.
	TopLayer hframe.LayerID
}

// Report puts the content in layer at rect.
//
// The element only takes pointer events while its layer is on top and no
// button is held, so dragging a host window across it keeps working.
func (b *BareHTML) Report(r Reporter, layer hframe.LayerID, rect geom.Rect, in Input) {
	r.Put(hframe.Area{
		ID:   hframe.AreaID{Layer: layer, Widget: b.id},
		Rect: rect,
		Content: &hframe.Content{
			ElementID:   b.id,
			HTML:        b.content,
			Rect:        rect,
			Visible:     true,
			Interactive: !in.PointerDown && in.TopLayer == layer,
		},
	})
}
