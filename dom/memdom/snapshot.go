package memdom

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// containerAttr marks container divs in a rendered snapshot.
const containerAttr = "data-hframe-container"

// Render writes the document as a standalone HTML page.
func (d *Document) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("<!DOCTYPE html>\n<html><head>\n")
	for _, id := range d.sorder {
		fmt.Fprintf(bw, "<style id=\"%s\">%s</style>\n", html.EscapeString(id), d.sheets[id])
	}
	bw.WriteString("</head><body>\n")

	for _, id := range d.order {
		e := d.elements[id]
		fmt.Fprintf(bw, "<div id=\"%s\"", html.EscapeString(e.ID))
		if e.Class != "" {
			fmt.Fprintf(bw, " class=\"%s\"", html.EscapeString(e.Class))
		}
		if style := e.StyleAttr(); style != "" {
			fmt.Fprintf(bw, " style=\"%s\"", html.EscapeString(style))
		}
		fmt.Fprintf(bw, ">%s</div>\n", e.html)
	}

	for _, id := range d.corder {
		c := d.containers[id]
		fmt.Fprintf(bw, "<div id=\"%s\" %s=\"\"", html.EscapeString(c.id), containerAttr)
		if c.style != "" {
			fmt.Fprintf(bw, " style=\"%s\"", html.EscapeString(c.style))
		}
		bw.WriteString(">")
		for _, def := range c.defs {
			bw.WriteString(d.defs[def].markup)
		}
		bw.WriteString("</div>\n")
	}

	bw.WriteString("</body></html>\n")
	return bw.Flush()
}

// String renders the document, see Render.
func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b) // strings.Builder never fails
	return b.String()
}

// Parse rebuilds a document from a page written by Render.
// Write counters start at zero.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("memdom: parsing document: %w", err)
	}

	d := New()
	var walkErr error
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if walkErr != nil {
			return
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Style:
				if id := attr(n, "id"); id != "" {
					d.sheets[id] = innerText(n)
					d.sorder = append(d.sorder, id)
				}
				return
			case atom.Div:
				if id := attr(n, "id"); id != "" && n.Parent != nil && n.Parent.DataAtom == atom.Body {
					walkErr = d.readTopLevel(n, id)
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	if walkErr != nil {
		return nil, walkErr
	}
	return d, nil
}

func (d *Document) readTopLevel(n *html.Node, id string) error {
	if hasAttr(n, containerAttr) {
		c := &container{id: id, style: attr(n, "style")}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			defID := attr(child, "id")
			if child.Type != html.ElementNode || defID == "" {
				continue
			}
			markup, err := renderNode(child)
			if err != nil {
				return err
			}
			d.defs[defID] = &definition{container: id, markup: markup}
			c.defs = append(c.defs, defID)
		}
		d.containers[id] = c
		d.corder = append(d.corder, id)
		return nil
	}

	e := newElement(id, attr(n, "class"))
	var inner strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		markup, err := renderNode(child)
		if err != nil {
			return err
		}
		inner.WriteString(markup)
	}
	if err := e.setContent(inner.String()); err != nil {
		return err
	}

	if style := attr(n, "style"); style != "" {
		decls, err := parser.ParseDeclarations(style)
		if err != nil {
			return fmt.Errorf("memdom: element %q style: %w", id, err)
		}
		for _, decl := range decls {
			e.setStyle(decl.Property, decl.Value)
		}
		clear(e.writes)
	}

	d.elements[id] = e
	d.order = append(d.order, id)
	return nil
}

func renderNode(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", fmt.Errorf("memdom: rendering node: %w", err)
	}
	return b.String(), nil
}

func innerText(n *html.Node) string {
	var b strings.Builder
	collectText(&b, n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
