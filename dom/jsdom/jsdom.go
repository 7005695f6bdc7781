//go:build js && wasm

// Package jsdom implements [dom.Surface] on top of the browser document
// through syscall/js.
package jsdom

import (
	"fmt"
	"html"
	"syscall/js"

	"github.com/gogpu/hframe/dom"
)

// Document is the browser document seen as a render surface.
type Document struct {
	doc js.Value
}

var _ dom.Surface = (*Document)(nil)

// New returns the surface for the current page's document.
func New() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// UserAgent returns navigator.userAgent, used to probe the rendering engine.
func UserAgent() string {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return ""
	}
	return nav.Get("userAgent").String()
}

func (d *Document) byID(id string) (js.Value, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return js.Value{}, false
	}
	return v, true
}

func (d *Document) mustByID(id string) (js.Value, error) {
	v, ok := d.byID(id)
	if !ok {
		return js.Value{}, fmt.Errorf("%w: %q", dom.ErrElementNotFound, id)
	}
	return v, nil
}

// guard turns a JavaScript exception into an error.
func guard(op string, err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("jsdom: %s: %w", op, jsErr)
			return
		}
		panic(r)
	}
}

// EnsureElement implements dom.Surface.
func (d *Document) EnsureElement(id, class, content string) (created bool, err error) {
	defer guard("ensure element", &err)
	if _, ok := d.byID(id); ok {
		return false, nil
	}
	el := d.doc.Call("createElement", "div")
	el.Set("id", id)
	if class != "" {
		el.Call("setAttribute", "class", class)
	}
	el.Set("innerHTML", content)
	d.doc.Get("body").Call("appendChild", el)
	return true, nil
}

// SetContent implements dom.Surface.
func (d *Document) SetContent(id, content string) (err error) {
	defer guard("set content", &err)
	el, err := d.mustByID(id)
	if err != nil {
		return err
	}
	el.Set("innerHTML", content)
	return nil
}

// SetStyle implements dom.Surface.
func (d *Document) SetStyle(id string, props ...dom.Property) (err error) {
	defer guard("set style", &err)
	el, err := d.mustByID(id)
	if err != nil {
		return err
	}
	style := el.Get("style")
	for _, p := range props {
		if p.Value == "" {
			style.Call("removeProperty", p.Name)
			continue
		}
		style.Call("setProperty", p.Name, p.Value)
	}
	return nil
}

// RemoveElement implements dom.Surface.
func (d *Document) RemoveElement(id string) (err error) {
	defer guard("remove element", &err)
	el, err := d.mustByID(id)
	if err != nil {
		return err
	}
	el.Call("remove")
	return nil
}

// HasElement implements dom.Surface.
func (d *Document) HasElement(id string) bool {
	_, ok := d.byID(id)
	return ok
}

// EnsureContainer implements dom.Surface.
func (d *Document) EnsureContainer(id, style string) (err error) {
	defer guard("ensure container", &err)
	if _, ok := d.byID(id); ok {
		return nil
	}
	el := d.doc.Call("createElement", "div")
	el.Set("id", id)
	if style != "" {
		el.Call("setAttribute", "style", style)
	}
	d.doc.Get("body").Call("appendChild", el)
	return nil
}

// RemoveContainer implements dom.Surface.
func (d *Document) RemoveContainer(id string) (err error) {
	defer guard("remove container", &err)
	if el, ok := d.byID(id); ok {
		el.Call("remove")
	}
	return nil
}

// UpsertDefinition implements dom.Surface.
func (d *Document) UpsertDefinition(container, id, markup string) (err error) {
	defer guard("upsert definition", &err)
	if el, ok := d.byID(id); ok {
		el.Set("outerHTML", markup)
		return nil
	}
	c, ok := d.byID(container)
	if !ok {
		return fmt.Errorf("%w: %q", dom.ErrContainerNotFound, container)
	}
	c.Call("insertAdjacentHTML", "beforeend", markup)
	return nil
}

// RemoveDefinition implements dom.Surface.
func (d *Document) RemoveDefinition(id string) (err error) {
	defer guard("remove definition", &err)
	if el, ok := d.byID(id); ok {
		el.Call("remove")
	}
	return nil
}

// InstallStylesheet implements dom.Surface.
func (d *Document) InstallStylesheet(id, css string) (err error) {
	defer guard("install stylesheet", &err)
	if _, ok := d.byID(id); ok {
		return nil
	}
	head := d.doc.Get("head")
	if head.IsNull() || head.IsUndefined() {
		return fmt.Errorf("jsdom: document has no head element")
	}
	head.Call("insertAdjacentHTML", "beforeend",
		fmt.Sprintf("<style id=\"%s\">%s</style>", html.EscapeString(id), css))
	return nil
}

// RemoveStylesheet implements dom.Surface.
func (d *Document) RemoveStylesheet(id string) (err error) {
	defer guard("remove stylesheet", &err)
	if el, ok := d.byID(id); ok {
		el.Call("remove")
	}
	return nil
}
