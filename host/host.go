// Package host reports the widgets of an immediate-mode GUI to a composition
// Context.
//
// The helpers here cover the three shapes hosts usually need: a window with
// embedded content, embedded content placed inline without a window, and
// plain canvas windows that may cover embedded content.
package host

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/geom"
)

// ContentWidget is the widget id given to the content area of a Window.
const ContentWidget = "html"

// Reporter receives the areas of a frame. *hframe.Context implements it.
type Reporter interface {
	Put(a hframe.Area) (prev hframe.Area, replaced bool)
}

var lower = cases.Lower(language.Und)

// Slug turns a title into an element id: lower case, spaces replaced by
// dashes.
func Slug(title string) string {
	return strings.ReplaceAll(lower.String(strings.TrimSpace(title)), " ", "-")
}

// Aware reports a canvas-only window so that content behind it is masked.
// Every host window that can overlap embedded content must be reported.
func Aware(r Reporter, layer hframe.LayerID, rect geom.Rect) {
	r.Put(hframe.Area{ID: hframe.AreaID{Layer: layer}, Rect: rect})
}
