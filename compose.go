package hframe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/hframe/dom"
	"github.com/gogpu/hframe/geom"
	"github.com/gogpu/hframe/mask"
)

// placement is the part of an element's inline style the engine owns.
type placement struct {
	rect        geom.Rect
	visible     bool
	interactive bool
}

func (p placement) props() []dom.Property {
	visibility, events := "hidden", "none"
	if p.visible {
		visibility = "visible"
	}
	if p.interactive {
		events = "auto"
	}
	return []dom.Property{
		dom.Prop("top", dom.Px(p.rect.Y)),
		dom.Prop("left", dom.Px(p.rect.X)),
		dom.Prop("width", dom.Px(p.rect.W)),
		dom.Prop("height", dom.Px(p.rect.H)),
		dom.Prop("visibility", visibility),
		dom.Prop("pointer-events", events),
	}
}

// areaState caches what was last written for one content area, so frames
// that change nothing write nothing.
type areaState struct {
	elementID string
	html      string

	placed    bool
	placement placement

	applied  bool
	artifact mask.Artifact

	// suppressed is set while the element is hidden because the area being
	// dragged is in front of it and masks may lag.
	suppressed bool
}

// invalidate forgets the applied mask and the drag state.
func (st *areaState) invalidate() {
	st.applied = false
	st.artifact = mask.Artifact{}
	st.suppressed = false
}

// Compose brings every content element on the surface in line with the
// current frame: it creates or updates the element, computes its mask from
// the areas in front of it and places it.
//
// Failures on one element do not stop the others. They are joined, logged
// and returned; the next frame retries from the cached state.
func (c *Context) Compose() error {
	if c.closed {
		return ErrClosed
	}

	dragged, dragging := c.DraggedArea()
	meta := c.strategy.Meta()
	hazard := meta.MayLag && !c.engine.SyncMaskUpdates()

	var errs []error
	for _, a := range c.areas {
		if !a.HasContent() {
			if _, ok := c.states[a.ID]; ok {
				errs = append(errs, c.teardown(a))
			}
			continue
		}
		if err := c.composeArea(a, hazard && dragging, dragged.ID); err != nil {
			errs = append(errs, err)
		}
	}
	return c.report(errors.Join(errs...))
}

func (c *Context) composeArea(a Area, dragging bool, dragged AreaID) error {
	content := a.Content
	id := content.ElementID
	if id == "" {
		id = elementIDFor(a.ID)
	}

	st := c.states[a.ID]
	if st != nil && st.elementID != id {
		if err := c.teardown(a); err != nil {
			return err
		}
		st = nil
	}
	known := st != nil && (st.placed || st.applied)
	if st == nil {
		st = &areaState{elementID: id}
		c.states[a.ID] = st
	}

	created, err := c.surface.EnsureElement(id, ElementClass, content.HTML)
	if err != nil {
		return wrap(id, err)
	}

	var errs []error
	switch {
	case created:
		// A new element carries none of the cached state.
		if known {
			c.logger().Error("hframe: element removed outside the engine, recreated",
				"area", a.ID.String(),
				"element", id)
			errs = append(errs, wrap(id, dom.ErrElementNotFound))
		}
		st.html = content.HTML
		st.placed = false
		st.invalidate()
	case st.html != content.HTML:
		if err := c.surface.SetContent(id, content.HTML); err != nil {
			return wrap(id, err)
		}
		st.html = content.HTML
	}

	var (
		occluders []geom.Rect
		inFront   bool
	)
	for o := range c.OccludersOf(a) {
		occluders = append(occluders, o.Rect)
		if dragging && o.ID == dragged {
			inFront = true
		}
	}

	target := mask.Target{ElementID: id, Rect: a.ContentRect()}
	artifact := c.strategy.ComputeMask(target, occluders)

	if inFront != st.suppressed {
		c.logger().Debug("hframe: drag suppression",
			"area", a.ID.String(),
			"suppressed", inFront,
			"dragged", dragged.String())
		st.suppressed = inFront
	}

	if !st.suppressed && (!st.applied || !artifact.Equal(st.artifact)) {
		if err := c.strategy.Apply(c.surface, target, artifact); err != nil {
			errs = append(errs, wrap(id, err))
		} else {
			st.applied = true
			st.artifact = artifact
		}
	}

	// Content on a layer the host did not order has no known depth.
	ordered := c.ordered(a)
	p := placement{
		rect:        target.Rect.Sanitize(),
		visible:     ordered && content.Visible && !artifact.Hidden && !st.suppressed,
		interactive: ordered && content.Interactive && !artifact.Hidden,
	}
	if !st.placed || p != st.placement {
		if err := c.surface.SetStyle(id, p.props()...); err != nil {
			errs = append(errs, wrap(id, err))
		} else {
			st.placed = true
			st.placement = p
		}
	}
	return errors.Join(errs...)
}

// elementIDFor derives an element id for content that did not name one.
func elementIDFor(id AreaID) string {
	clean := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}
	return fmt.Sprintf("hframe-%s--%s",
		strings.Map(clean, string(id.Layer)),
		strings.Map(clean, id.Widget))
}
