// Package dom describes the render surface the composition engine writes to.
//
// The engine never talks to a browser directly. It asks a [Surface] to create,
// restyle and remove elements by id. Implementations live in sub-packages:
// memdom keeps everything in memory, jsdom drives the browser document.
package dom

import (
	"errors"
	"strconv"
	"strings"
)

// ErrElementNotFound is returned when an operation targets an element the
// surface does not have.
var ErrElementNotFound = errors.New("dom: element not found")

// ErrContainerNotFound is returned when a definition is written into a
// container that was never created.
var ErrContainerNotFound = errors.New("dom: container not found")

// Surface is the document the engine composes into.
//
// Every write is expected to be immediate and idempotent. The engine never
// retries a failed call; it reports the error and self-corrects next frame.
type Surface interface {
	// EnsureElement creates a div with the given id, class and inner HTML if
	// none exists. It reports whether the element was created.
	EnsureElement(id, class, html string) (created bool, err error)

	// SetContent replaces the inner HTML of an element.
	SetContent(id, html string) error

	// SetStyle sets individual inline style properties on an element.
	// Properties not named are left untouched.
	SetStyle(id string, props ...Property) error

	// RemoveElement removes an element and its subtree.
	RemoveElement(id string) error

	// HasElement reports whether an element with the given id exists.
	HasElement(id string) bool

	// EnsureContainer creates an out-of-flow container element used to hold
	// definitions, such as SVG masks.
	EnsureContainer(id, style string) error

	// RemoveContainer removes a container and everything inside it.
	RemoveContainer(id string) error

	// UpsertDefinition writes markup into a container, replacing the node
	// with the same id if present.
	UpsertDefinition(container, id, markup string) error

	// RemoveDefinition removes a definition node. Removing a missing
	// definition is not an error.
	RemoveDefinition(id string) error

	// InstallStylesheet adds a <style> element to the document head unless
	// one with the same id exists.
	InstallStylesheet(id, css string) error

	// RemoveStylesheet removes a stylesheet installed by InstallStylesheet.
	RemoveStylesheet(id string) error
}

// Property is a single inline CSS declaration.
// An empty Value removes the declaration.
type Property struct {
	Name  string
	Value string
}

// Prop is a shorthand for building a Property.
func Prop(name, value string) Property {
	return Property{Name: name, Value: value}
}

// Px formats a length in CSS pixels.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// CSS renders properties as an inline style attribute value.
// Properties with empty values are skipped.
func CSS(props ...Property) string {
	var b strings.Builder
	for _, p := range props {
		if p.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteByte(';')
	}
	return b.String()
}
