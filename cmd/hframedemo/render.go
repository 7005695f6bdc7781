package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/dom/memdom"
	"github.com/gogpu/hframe/geom"
	"github.com/gogpu/hframe/mask"
)

var (
	background  = color.RGBA{0x1e, 0x22, 0x2a, 0xff}
	windowFill  = color.RGBA{0x3b, 0x42, 0x52, 0xff}
	windowLabel = color.RGBA{0xd8, 0xde, 0xe9, 0xff}
	contentFill = color.RGBA{0x88, 0xc0, 0xd0, 0xff}
	contentText = color.RGBA{0x2e, 0x34, 0x40, 0xff}
)

// render paints the composition back to front. Canvas areas are drawn as
// plain windows, content areas through the mask preview computes for them.
func render(hc *hframe.Context, doc *memdom.Document, preview mask.Strategy, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, a := range hc.Areas() {
		if !a.HasContent() {
			r := bounds(a.Rect)
			draw.Draw(img, r, image.NewUniform(windowFill), image.Point{}, draw.Src)
			label(img, r, a.ID.String(), windowLabel)
			continue
		}

		e, ok := doc.Element(a.Content.ElementID)
		if !ok || e.Hidden() {
			continue
		}

		var occluders []geom.Rect
		for o := range hc.OccludersOf(a) {
			occluders = append(occluders, o.Rect)
		}
		rect := a.ContentRect()
		artifact := preview.ComputeMask(mask.Target{ElementID: e.ID, Rect: rect}, occluders)

		r := bounds(rect)
		m := mask.Rasterize(artifact, r.Dx(), r.Dy())
		draw.DrawMask(img, r, image.NewUniform(contentFill), image.Point{}, m, image.Point{}, draw.Over)
		label(img, r, e.Text(), contentText)
	}
	return img
}

func bounds(r geom.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

// label draws text in the top-left corner of r.
func label(dst draw.Image, r image.Rectangle, text string, c color.Color) {
	if text == "" {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(r.Min.X+6, r.Min.Y+basicfont.Face7x13.Ascent+4),
	}
	d.DrawString(text)
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
