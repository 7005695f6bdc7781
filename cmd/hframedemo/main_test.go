package main

import (
	"testing"

	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/dom/memdom"
	"github.com/gogpu/hframe/mask"
)

func runScript(t *testing.T, e mask.Engine, release bool) (*hframe.Context, *memdom.Document) {
	t.Helper()
	doc := memdom.New()
	hc, err := hframe.NewContext(doc, hframe.WithStrategy(mask.NewDataMask()), hframe.WithEngine(e))
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	s := newScript(4, release)
	for s.next() {
		s.report(hc)
		if err := hc.Sync(s.frame()); err != nil {
			t.Fatalf("Sync() = %v", err)
		}
	}
	return hc, doc
}

func TestRenderMasksContent(t *testing.T) {
	hc, doc := runScript(t, mask.EngineBlink, true)
	img := render(hc, doc, mask.NewDataMask(mask.WithRadius(0)), 640, 400)

	// Settings ends at (240,120 180x200): inside it the window shows, left of
	// it the video content does.
	if got := img.RGBAAt(300, 250); got != windowFill {
		t.Errorf("pixel in front of video = %v, want window fill", got)
	}
	if got := img.RGBAAt(100, 250); got != contentFill {
		t.Errorf("pixel of video = %v, want content fill", got)
	}
}

func TestRenderSkipsSuppressedContent(t *testing.T) {
	hc, doc := runScript(t, mask.EngineGecko, false)
	img := render(hc, doc, mask.NewDataMask(), 640, 400)

	if got := img.RGBAAt(100, 250); got == contentFill {
		t.Errorf("pixel of suppressed video = %v, want it not drawn", got)
	}
	e, ok := doc.Element("video-player")
	if !ok || !e.Hidden() {
		t.Error("video element should be hidden while the settings window is dragged")
	}
}
