package mask

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gogpu/hframe/geom"
)

// DefaultRadius is the corner radius of mask holes. It matches the rounding
// of host windows.
const DefaultRadius = 5

const svgNS = "http://www.w3.org/2000/svg"

// svgMask describes the markup of a mask image.
type svgMask struct {
	id     string // id attribute of the <svg>, optional
	class  string // class attribute of the <svg>, optional
	maskID string // id of the <mask> element
	frame  geom.Rect
	holes  []geom.Rect
	radius float64
	paint  bool // paint a rect through the mask so the image itself is the mask
}

func (m svgMask) String() string {
	var b strings.Builder
	w, h := num(m.frame.W), num(m.frame.H)

	b.WriteString("<svg")
	if m.id != "" {
		attr(&b, "id", m.id)
	}
	if m.class != "" {
		attr(&b, "class", m.class)
	}
	attr(&b, "xmlns", svgNS)
	attr(&b, "viewBox", "0 0 "+w+" "+h)
	b.WriteString("><defs><mask")
	attr(&b, "id", m.maskID)
	attr(&b, "x", "0")
	attr(&b, "y", "0")
	attr(&b, "width", w)
	attr(&b, "height", h)
	b.WriteString(">")
	rect(&b, geom.NewRect(0, 0, m.frame.W, m.frame.H), 0, "white", "")
	for _, hole := range m.holes {
		rect(&b, hole, m.radius, "black", "")
	}
	b.WriteString("</mask></defs>")
	if m.paint {
		rect(&b, geom.NewRect(0, 0, m.frame.W, m.frame.H), 0, "blue", "url(#"+m.maskID+")")
	}
	b.WriteString("</svg>")
	return b.String()
}

func rect(b *strings.Builder, r geom.Rect, radius float64, fill, mask string) {
	b.WriteString("<rect")
	attr(b, "x", num(r.X))
	attr(b, "y", num(r.Y))
	attr(b, "width", num(r.W))
	attr(b, "height", num(r.H))
	if radius > 0 {
		attr(b, "rx", num(radius))
	}
	attr(b, "fill", fill)
	if mask != "" {
		attr(b, "mask", mask)
	}
	b.WriteString("/>")
}

func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(value)
	b.WriteByte('"')
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// dataURI wraps SVG markup into a CSS url() holding a data URI.
func dataURI(svg string) string {
	return "url(data:image/svg+xml," + url.PathEscape(svg) + ")"
}
