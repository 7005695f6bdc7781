// Package hframe composes embedded HTML content with an immediate-mode GUI
// rendered to a canvas.
//
// # Overview
//
// An immediate-mode GUI draws its windows on a canvas every frame. Content
// that cannot be drawn on a canvas, such as video players, iframes or
// third-party widgets, lives in separate document elements placed on top of
// it. hframe keeps those elements aligned with the widgets that host them and
// cuts holes in them wherever a canvas window is drawn in front, so the
// stacking order the user sees matches the GUI's.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/hframe"
//	    "github.com/gogpu/hframe/dom/jsdom"
//	    "github.com/gogpu/hframe/mask"
//	)
//
//	doc := jsdom.New()
//	hc, err := hframe.NewContext(doc, hframe.WithProbe(mask.UserAgent(jsdom.UserAgent())))
//
//	// Every frame, for every window and every embedded widget:
//	hc.Put(hframe.Area{ID: hframe.AreaID{Layer: "player"}, Rect: windowRect})
//	hc.Put(hframe.Area{
//	    ID:   hframe.AreaID{Layer: "player", Widget: "video"},
//	    Rect: widgetRect,
//	    Content: &hframe.Content{ElementID: "video", HTML: videoHTML, Visible: true, Interactive: true},
//	})
//
//	// At the end of the frame:
//	err = hc.Sync(hframe.Frame{Layers: layerOrder, PointerDown: pointerDown})
//
// The host package wraps these calls for common widget shapes.
//
// # Frame Steps
//
// Sync runs four steps in a fixed order:
//   - SetPointer records the pointer state used for drag detection.
//   - ReconcileOrder sorts the areas by the host's layer order.
//   - Purge drops areas that were not put this frame and their elements.
//   - Compose updates every element and its mask.
//
// Compose writes to the surface only what changed since the last frame.
// Areas on layers missing from the order stay in front of the ordered ones,
// and their own content is hidden until the host orders the layer.
//
// # Masks
//
// The mask package computes the masks. The default strategy picks the best
// technique for the rendering engine. When masks may lag a frame behind the
// canvas, elements are hidden while a window in front of them is dragged.
package hframe
