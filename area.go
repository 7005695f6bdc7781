package hframe

import (
	"fmt"

	"github.com/gogpu/hframe/geom"
)

// LayerID identifies a render layer of the host GUI, such as a window.
type LayerID string

// AreaID identifies a tracked area.
//
// An empty Widget names the whole-layer area (the window itself). A non-empty
// Widget names an embedded-content widget placed inside the layer.
type AreaID struct {
	Layer  LayerID
	Widget string
}

// IsLayer reports whether id names a whole-layer area.
func (id AreaID) IsLayer() bool { return id.Widget == "" }

// String implements fmt.Stringer.
func (id AreaID) String() string {
	if id.Widget == "" {
		return string(id.Layer)
	}
	return fmt.Sprintf("%s/%s", id.Layer, id.Widget)
}

// Content is the embedded element an area carries.
type Content struct {
	// ElementID is the id of the element on the render surface.
	ElementID string

	// HTML is the inner markup of the element. The element is only
	// re-rendered when it changes.
	HTML string

	// Rect is where the element is placed. The zero Rect means the
	// area's own Rect.
	Rect geom.Rect

	// Interactive enables pointer events on the element.
	Interactive bool

	// Visible shows the element. Invisible elements stay in the document.
	Visible bool
}

// Area is one rectangle the host rendered this frame.
type Area struct {
	ID   AreaID
	Rect geom.Rect

	// Content is nil for canvas-only areas. Canvas-only areas occlude
	// content areas but are never masked.
	Content *Content
}

// HasContent reports whether the area carries embedded content.
func (a Area) HasContent() bool { return a.Content != nil }

// ContentRect returns where the area's element is placed.
func (a Area) ContentRect() geom.Rect {
	if a.Content == nil || a.Content.Rect.IsZero() {
		return a.Rect
	}
	return a.Content.Rect
}
