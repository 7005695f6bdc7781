package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/dom/memdom"
	"github.com/gogpu/hframe/geom"
	"github.com/gogpu/hframe/mask"
)

type fakeReporter struct {
	areas []hframe.Area
}

func (f *fakeReporter) Put(a hframe.Area) (hframe.Area, bool) {
	f.areas = append(f.areas, a)
	return hframe.Area{}, false
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Video Player", "video-player"},
		{"  Notes ", "notes"},
		{"ÉDITEUR Markdown", "éditeur-markdown"},
		{"already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), "Slug(%q)", tt.in)
	}
}

func TestWindowReport(t *testing.T) {
	r := &fakeReporter{}
	w := NewWindow("Video Player").Content("<video></video>")

	ok := w.Report(r, Shown{
		Frame: geom.NewRect(10, 10, 200, 150),
		Inner: geom.NewRect(12, 40, 196, 118),
	})
	require.True(t, ok)
	require.Len(t, r.areas, 2)

	frame, content := r.areas[0], r.areas[1]
	assert.Equal(t, hframe.AreaID{Layer: "video-player"}, frame.ID)
	assert.False(t, frame.HasContent())
	assert.Equal(t, geom.NewRect(10, 10, 200, 150), frame.Rect)

	assert.Equal(t, hframe.AreaID{Layer: "video-player", Widget: ContentWidget}, content.ID)
	require.NotNil(t, content.Content)
	assert.Equal(t, "video-player", content.Content.ElementID)
	assert.Equal(t, "<video></video>", content.Content.HTML)
	assert.True(t, content.Content.Visible)
	assert.True(t, content.Content.Interactive)
	assert.Equal(t, "Video Player", w.Title())
}

func TestWindowCollapsed(t *testing.T) {
	r := &fakeReporter{}
	NewWindow("Notes").Report(r, Shown{
		Frame:     geom.NewRect(0, 0, 100, 20),
		Inner:     geom.NewRect(0, 20, 100, 80),
		Collapsed: true,
	})

	require.Len(t, r.areas, 2)
	assert.False(t, r.areas[1].Content.Visible)
	assert.True(t, r.areas[1].ContentRect().IsZero())
}

func TestWindowClosed(t *testing.T) {
	r := &fakeReporter{}
	open := false
	w := NewWindow("Notes").ID("custom").Open(&open)

	assert.False(t, w.Report(r, Shown{}))
	assert.Empty(t, r.areas)
	assert.Equal(t, hframe.LayerID("custom"), w.Layer())

	open = true
	assert.True(t, w.Report(r, Shown{}))
	assert.Len(t, r.areas, 2)
}

func TestBareHTMLInteractive(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want bool
	}{
		{"top layer, pointer up", Input{TopLayer: "main"}, true},
		{"top layer, pointer down", Input{TopLayer: "main", PointerDown: true}, false},
		{"covered layer", Input{TopLayer: "popup"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeReporter{}
			NewBareHTML("Map View").Content("<iframe></iframe>").
				Report(r, "main", geom.NewRect(0, 0, 50, 50), tt.in)

			require.Len(t, r.areas, 1)
			a := r.areas[0]
			assert.Equal(t, hframe.AreaID{Layer: "main", Widget: "map-view"}, a.ID)
			assert.Equal(t, tt.want, a.Content.Interactive)
		})
	}
}

func TestAware(t *testing.T) {
	r := &fakeReporter{}
	Aware(r, "settings", geom.NewRect(1, 2, 3, 4))

	require.Len(t, r.areas, 1)
	assert.Equal(t, hframe.AreaID{Layer: "settings"}, r.areas[0].ID)
	assert.Nil(t, r.areas[0].Content)
}

func TestReportIntoContext(t *testing.T) {
	doc := memdom.New()
	hc, err := hframe.NewContext(doc,
		hframe.WithStrategy(mask.NewDataMask()),
		hframe.WithEngine(mask.EngineBlink))
	require.NoError(t, err)

	player := NewWindow("Player").Content("<video></video>")
	player.Report(hc, Shown{
		Frame: geom.NewRect(0, 0, 100, 120),
		Inner: geom.NewRect(0, 20, 100, 100),
	})
	Aware(hc, "settings", geom.NewRect(50, 70, 100, 100))

	require.NoError(t, hc.Sync(hframe.Frame{Layers: []hframe.LayerID{player.Layer(), "settings"}}))

	e, ok := doc.Element("player")
	require.True(t, ok)
	assert.Equal(t, "20px", e.Style("top"))
	assert.Contains(t, e.Style("mask"), "data:image/svg+xml")
}
