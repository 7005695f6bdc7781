// Package memdom implements an in-memory [dom.Surface].
//
// It is used to run the composition engine headless: in tests, in the demo
// command and anywhere a browser is not available. Element content is parsed
// as HTML so malformed markup is caught early, and every write is counted so
// callers can check that the engine does not restyle elements needlessly.
package memdom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/hframe/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a composed element held by a Document.
type Element struct {
	ID    string
	Class string

	html   string
	nodes  []*html.Node
	style  map[string]string
	keys   []string // style declaration order
	writes map[string]int
}

// HTML returns the inner HTML of the element.
func (e *Element) HTML() string { return e.html }

// Style returns the value of an inline style property, or "".
func (e *Element) Style(name string) string { return e.style[name] }

// StyleAttr renders the inline style attribute.
func (e *Element) StyleAttr() string {
	props := make([]dom.Property, 0, len(e.keys))
	for _, k := range e.keys {
		props = append(props, dom.Prop(k, e.style[k]))
	}
	return dom.CSS(props...)
}

// Writes returns how many times a style property was written.
func (e *Element) Writes(name string) int { return e.writes[name] }

// Text returns the text content of the element.
func (e *Element) Text() string {
	var b strings.Builder
	for _, n := range e.nodes {
		collectText(&b, n)
	}
	return b.String()
}

// Hidden reports whether the element is hidden through its visibility.
func (e *Element) Hidden() bool { return e.style["visibility"] == "hidden" }

func (e *Element) setContent(content string) error {
	nodes, err := parseFragment(content)
	if err != nil {
		return fmt.Errorf("memdom: element %q: %w", e.ID, err)
	}
	e.html = content
	e.nodes = nodes
	return nil
}

func (e *Element) setStyle(name, value string) {
	e.writes[name]++
	if value == "" {
		if _, ok := e.style[name]; ok {
			delete(e.style, name)
			e.keys = slices.DeleteFunc(e.keys, func(k string) bool { return k == name })
		}
		return
	}
	if _, ok := e.style[name]; !ok {
		e.keys = append(e.keys, name)
	}
	e.style[name] = value
}

type container struct {
	id    string
	style string
	defs  []string // definition ids in insertion order
}

type definition struct {
	container string
	markup    string
}

// Document is an in-memory render surface.
// A Document is not safe for concurrent use.
type Document struct {
	elements   map[string]*Element
	order      []string
	containers map[string]*container
	corder     []string
	defs       map[string]*definition
	sheets     map[string]string
	sorder     []string
	writes     int
}

var _ dom.Surface = (*Document)(nil)

// New creates an empty document.
func New() *Document {
	return &Document{
		elements:   make(map[string]*Element),
		containers: make(map[string]*container),
		defs:       make(map[string]*definition),
		sheets:     make(map[string]string),
	}
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (*Element, bool) {
	e, ok := d.elements[id]
	return e, ok
}

// Elements returns element ids in creation order.
func (d *Document) Elements() []string {
	return slices.Clone(d.order)
}

// Definition returns the markup of a definition node.
func (d *Document) Definition(id string) (string, bool) {
	def, ok := d.defs[id]
	if !ok {
		return "", false
	}
	return def.markup, true
}

// HasContainer reports whether a container exists.
func (d *Document) HasContainer(id string) bool {
	_, ok := d.containers[id]
	return ok
}

// Stylesheet returns the CSS of an installed stylesheet.
func (d *Document) Stylesheet(id string) (string, bool) {
	css, ok := d.sheets[id]
	return css, ok
}

// Writes returns the total number of mutating calls the document received.
func (d *Document) Writes() int { return d.writes }

// EnsureElement implements dom.Surface.
func (d *Document) EnsureElement(id, class, content string) (bool, error) {
	if _, ok := d.elements[id]; ok {
		return false, nil
	}
	e := newElement(id, class)
	if err := e.setContent(content); err != nil {
		return false, err
	}
	d.writes++
	d.elements[id] = e
	d.order = append(d.order, id)
	return true, nil
}

// SetContent implements dom.Surface.
func (d *Document) SetContent(id, content string) error {
	e, ok := d.elements[id]
	if !ok {
		return fmt.Errorf("%w: %q", dom.ErrElementNotFound, id)
	}
	d.writes++
	return e.setContent(content)
}

// SetStyle implements dom.Surface.
func (d *Document) SetStyle(id string, props ...dom.Property) error {
	e, ok := d.elements[id]
	if !ok {
		return fmt.Errorf("%w: %q", dom.ErrElementNotFound, id)
	}
	d.writes++
	for _, p := range props {
		e.setStyle(p.Name, p.Value)
	}
	return nil
}

// RemoveElement implements dom.Surface.
func (d *Document) RemoveElement(id string) error {
	if _, ok := d.elements[id]; !ok {
		return fmt.Errorf("%w: %q", dom.ErrElementNotFound, id)
	}
	d.writes++
	delete(d.elements, id)
	d.order = slices.DeleteFunc(d.order, func(o string) bool { return o == id })
	return nil
}

// HasElement implements dom.Surface.
func (d *Document) HasElement(id string) bool {
	_, ok := d.elements[id]
	return ok
}

// EnsureContainer implements dom.Surface.
func (d *Document) EnsureContainer(id, style string) error {
	if _, ok := d.containers[id]; ok {
		return nil
	}
	d.writes++
	d.containers[id] = &container{id: id, style: style}
	d.corder = append(d.corder, id)
	return nil
}

// RemoveContainer implements dom.Surface.
func (d *Document) RemoveContainer(id string) error {
	c, ok := d.containers[id]
	if !ok {
		return nil
	}
	d.writes++
	for _, def := range c.defs {
		delete(d.defs, def)
	}
	delete(d.containers, id)
	d.corder = slices.DeleteFunc(d.corder, func(o string) bool { return o == id })
	return nil
}

// UpsertDefinition implements dom.Surface.
func (d *Document) UpsertDefinition(containerID, id, markup string) error {
	c, ok := d.containers[containerID]
	if !ok {
		return fmt.Errorf("%w: %q", dom.ErrContainerNotFound, containerID)
	}
	if _, err := parseFragment(markup); err != nil {
		return fmt.Errorf("memdom: definition %q: %w", id, err)
	}
	d.writes++
	if def, ok := d.defs[id]; ok {
		def.markup = markup
		return nil
	}
	d.defs[id] = &definition{container: containerID, markup: markup}
	c.defs = append(c.defs, id)
	return nil
}

// RemoveDefinition implements dom.Surface.
func (d *Document) RemoveDefinition(id string) error {
	def, ok := d.defs[id]
	if !ok {
		return nil
	}
	d.writes++
	delete(d.defs, id)
	if c, ok := d.containers[def.container]; ok {
		c.defs = slices.DeleteFunc(c.defs, func(o string) bool { return o == id })
	}
	return nil
}

// InstallStylesheet implements dom.Surface.
func (d *Document) InstallStylesheet(id, css string) error {
	if _, ok := d.sheets[id]; ok {
		return nil
	}
	d.writes++
	d.sheets[id] = css
	d.sorder = append(d.sorder, id)
	return nil
}

// RemoveStylesheet implements dom.Surface.
func (d *Document) RemoveStylesheet(id string) error {
	if _, ok := d.sheets[id]; !ok {
		return nil
	}
	d.writes++
	delete(d.sheets, id)
	d.sorder = slices.DeleteFunc(d.sorder, func(o string) bool { return o == id })
	return nil
}

func newElement(id, class string) *Element {
	return &Element{
		ID:     id,
		Class:  class,
		style:  make(map[string]string),
		writes: make(map[string]int),
	}
}

var bodyContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "div",
	DataAtom: atom.Div,
}

func parseFragment(content string) ([]*html.Node, error) {
	return html.ParseFragment(strings.NewReader(content), bodyContext)
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
