package hframe

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/hframe/dom/memdom"
	"github.com/gogpu/hframe/geom"
	"github.com/gogpu/hframe/mask"
)

// useLogger installs a debug logger writing to a buffer for the test.
func useLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}

	hc, _ := newTestContext(t, mask.NewDataMask(), mask.EngineUnknown)
	runFrame(t, hc, false, video(geom.NewRect(0, 0, 100, 100)))
	runFrame(t, hc, false)
	if buf.Len() != 0 {
		t.Errorf("restored silent logger wrote %q", buf.String())
	}
}

func TestSetLoggerAfterNewContext(t *testing.T) {
	hc, _ := newTestContext(t, mask.NewDataMask(), mask.EngineBlink)
	buf := useLogger(t)

	runFrame(t, hc, false, video(geom.NewRect(0, 0, 100, 100)))
	runFrame(t, hc, false)
	if err := hc.SetStrategy(mask.NewHide()); err != nil {
		t.Fatalf("SetStrategy() = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"hframe: purging area", "area=main/video", "hframe: switched composition strategy"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	global := useLogger(t)

	var own bytes.Buffer
	hc, err := NewContext(memdom.New(),
		WithLogger(slog.New(slog.NewTextHandler(&own, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithEngine(mask.EngineBlink))
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	runFrame(t, hc, false, video(geom.NewRect(0, 0, 100, 100)))
	runFrame(t, hc, false)

	if global.Len() != 0 {
		t.Errorf("package logger received %q", global.String())
	}
	if !strings.Contains(own.String(), "hframe: purging area") {
		t.Errorf("context logger missing purge:\n%s", own.String())
	}
}

func TestSetLoggerDuringFrames(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	hc, _ := newTestContext(t, mask.NewDataMask(), mask.EngineGecko)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				SetLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
				SetLogger(nil)
			}
		}
	}()

	w := video(geom.NewRect(0, 0, 100, 100))
	for i := range 50 {
		runFrame(t, hc, i%2 == 0, w, popup(geom.NewRect(float64(i), 50, 100, 100)))
	}
	close(stop)
	wg.Wait()
}
