// Command hframedemo runs a scripted drag of a canvas window across a window
// with embedded content and saves a preview of the final composition.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/config"
	"github.com/gogpu/hframe/dom/memdom"
	"github.com/gogpu/hframe/geom"
	"github.com/gogpu/hframe/host"
	"github.com/gogpu/hframe/mask"
)

func main() {
	var (
		width    = flag.Int("width", 640, "image width")
		height   = flag.Int("height", 400, "image height")
		output   = flag.String("output", "hframe.png", "output file")
		snapshot = flag.String("html", "", "also write the composed document to this file")
		strategy = flag.String("strategy", "auto", "mask strategy: auto, data_mask, document_mask, hide, nop")
		engine   = flag.String("engine", "blink", "rendering engine: blink, gecko, webkit, unknown")
		cfgPath  = flag.String("config", "", "TOML or YAML settings file, overrides -strategy and -engine")
		frames   = flag.Int("frames", 8, "number of drag frames")
		release  = flag.Bool("release", true, "release the pointer on the last frame")
		verbose  = flag.Bool("v", false, "log every frame")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	hframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.File{Strategy: *strategy, Engine: *engine}
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	opts, err := cfg.Options(mask.Fixed(mask.EngineUnknown), os.Stderr)
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	doc := memdom.New()
	hc, err := hframe.NewContext(doc, opts...)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}

	radius := float64(mask.DefaultRadius)
	if cfg.CornerRadius != nil {
		radius = *cfg.CornerRadius
	}

	s := newScript(*frames, *release)
	for s.next() {
		s.report(hc)
		if err := hc.Sync(s.frame()); err != nil {
			log.Printf("Frame %d: %v", s.n, err)
		}
	}

	img := render(hc, doc, mask.NewDataMask(mask.WithRadius(radius)), *width, *height)
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d), strategy %s\n", *output, *width, *height, hc.Strategy().Name)

	if *snapshot != "" {
		if err := saveHTML(*snapshot, doc); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
		log.Printf("Document saved to %s\n", *snapshot)
	}

	if err := hc.Close(); err != nil {
		log.Fatalf("Failed to close: %v", err)
	}
}

// script moves a settings window from the right edge over a video window.
type script struct {
	n, frames int
	release   bool

	player   *host.Window
	settings hframe.LayerID
	banner   *host.BareHTML
}

func newScript(frames int, release bool) *script {
	return &script{
		n:        -1,
		frames:   max(frames, 1),
		release:  release,
		player:   host.NewWindow("Video Player").Content(`<video src="movie.mp4" controls></video>`),
		settings: "settings",
		banner:   host.NewBareHTML("Banner").Content(`<p>Now playing</p>`),
	}
}

func (s *script) next() bool {
	s.n++
	return s.n < s.frames
}

func (s *script) last() bool { return s.n == s.frames-1 }

func (s *script) settingsRect() geom.Rect {
	t := float64(s.n) / float64(max(s.frames-1, 1))
	return geom.NewRect(460-t*220, 120, 180, 200)
}

func (s *script) report(hc *hframe.Context) {
	s.banner.Report(hc, "background", geom.NewRect(20, 350, 300, 30), host.Input{
		PointerDown: !s.last() || !s.release,
		TopLayer:    s.settings,
	})
	s.player.Report(hc, host.Shown{
		Frame: geom.NewRect(40, 40, 320, 260),
		Inner: geom.NewRect(44, 64, 312, 232),
	})
	host.Aware(hc, s.settings, s.settingsRect())
}

func (s *script) frame() hframe.Frame {
	return hframe.Frame{
		Layers:      []hframe.LayerID{"background", s.player.Layer(), s.settings},
		PointerDown: !s.last() || !s.release,
	}
}

func saveHTML(path string, doc *memdom.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := doc.Render(f); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
