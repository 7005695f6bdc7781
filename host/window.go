package host

import (
	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/geom"
)

// Window is a host window displaying embedded content.
//
// Build one per frame and call Report once the host has laid the window out:
//
//	host.NewWindow("Video Player").
//	    Content(playerHTML).
//	    Open(&playerOpen).
//	    Report(hc, shown)
type Window struct {
	id      string
	title   string
	content string
	open    *bool
}

// NewWindow creates a window. The title must be unique among windows: it
// is slugged into the window id and the element id.
func NewWindow(title string) *Window {
	return &Window{id: Slug(title), title: title}
}

// ID overrides the id derived from the title.
func (w *Window) ID(id string) *Window {
	w.id = id
	return w
}

// Content sets the inner HTML. The element is only re-rendered when the
// content changes between frames.
func (w *Window) Content(html string) *Window {
	w.content = html
	return w
}

// Open ties the window to a flag owned by the host. A closed window reports
// nothing, so its element is removed at the end of the frame.
func (w *Window) Open(open *bool) *Window {
	w.open = open
	return w
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Layer returns the layer id the window reports its areas in.
func (w *Window) Layer() hframe.LayerID { return hframe.LayerID(w.id) }

// IsOpen reports whether the window should be shown this frame.
func (w *Window) IsOpen() bool { return w.open == nil || *w.open }

// Shown is the layout of a window as the host rendered it.
type Shown struct {
	// Frame is the whole window, title bar included.
	Frame geom.Rect

	// Inner is the content region. It is ignored when Collapsed is set.
	Inner geom.Rect

	// Collapsed is true when the window is minimized to its title bar.
	// The element stays in the document but is not shown.
	Collapsed bool
}

// Report puts the window and its content area. It reports whether the
// window was open.
func (w *Window) Report(r Reporter, s Shown) bool {
	if !w.IsOpen() {
		return false
	}

	layer := w.Layer()
	r.Put(hframe.Area{ID: hframe.AreaID{Layer: layer}, Rect: s.Frame})

	inner := s.Inner
	if s.Collapsed {
		inner = geom.Rect{}
	}
	r.Put(hframe.Area{
		ID:   hframe.AreaID{Layer: layer, Widget: ContentWidget},
		Rect: inner,
		Content: &hframe.Content{
			ElementID:   w.id,
			HTML:        w.content,
			Rect:        inner,
			Visible:     !s.Collapsed,
			Interactive: true,
		},
	})
	return true
}
