package memdom

import (
	"strings"
	"testing"

	"github.com/gogpu/hframe/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureElement(t *testing.T) {
	d := New()

	created, err := d.EnsureElement("w", "hframe-composed-area", "<p>hello</p>")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = d.EnsureElement("w", "hframe-composed-area", "<p>other</p>")
	require.NoError(t, err)
	assert.False(t, created, "second call must not recreate")

	e, ok := d.Element("w")
	require.True(t, ok)
	assert.Equal(t, "<p>hello</p>", e.HTML())
	assert.Equal(t, "hello", e.Text())
	assert.Equal(t, []string{"w"}, d.Elements())
}

func TestSetStyle(t *testing.T) {
	d := New()
	_, err := d.EnsureElement("w", "", "")
	require.NoError(t, err)

	require.NoError(t, d.SetStyle("w", dom.Prop("top", "1px"), dom.Prop("left", "2px")))
	require.NoError(t, d.SetStyle("w", dom.Prop("top", "3px"), dom.Prop("visibility", "hidden")))

	e, _ := d.Element("w")
	assert.Equal(t, "top: 3px; left: 2px; visibility: hidden;", e.StyleAttr())
	assert.Equal(t, 2, e.Writes("top"))
	assert.Equal(t, 1, e.Writes("left"))
	assert.True(t, e.Hidden())

	require.NoError(t, d.SetStyle("w", dom.Prop("visibility", "")))
	assert.False(t, e.Hidden())
	assert.Equal(t, "top: 3px; left: 2px;", e.StyleAttr())
}

func TestMissingElement(t *testing.T) {
	d := New()
	assert.ErrorIs(t, d.SetStyle("nope", dom.Prop("top", "0px")), dom.ErrElementNotFound)
	assert.ErrorIs(t, d.SetContent("nope", "x"), dom.ErrElementNotFound)
	assert.ErrorIs(t, d.RemoveElement("nope"), dom.ErrElementNotFound)
	assert.False(t, d.HasElement("nope"))
}

func TestRemoveElement(t *testing.T) {
	d := New()
	_, _ = d.EnsureElement("a", "", "")
	_, _ = d.EnsureElement("b", "", "")

	require.NoError(t, d.RemoveElement("a"))
	assert.False(t, d.HasElement("a"))
	assert.Equal(t, []string{"b"}, d.Elements())
}

func TestDefinitions(t *testing.T) {
	d := New()

	err := d.UpsertDefinition("masks", "m-svg", "<svg id=\"m-svg\"></svg>")
	assert.ErrorIs(t, err, dom.ErrContainerNotFound)

	require.NoError(t, d.EnsureContainer("masks", "position: absolute;"))
	require.NoError(t, d.UpsertDefinition("masks", "m-svg", "<svg id=\"m-svg\"></svg>"))
	require.NoError(t, d.UpsertDefinition("masks", "m-svg", "<svg id=\"m-svg\"><defs></defs></svg>"))

	markup, ok := d.Definition("m-svg")
	require.True(t, ok)
	assert.Contains(t, markup, "<defs>")

	require.NoError(t, d.RemoveDefinition("m-svg"))
	_, ok = d.Definition("m-svg")
	assert.False(t, ok)
	require.NoError(t, d.RemoveDefinition("m-svg"), "removing twice is fine")

	require.NoError(t, d.UpsertDefinition("masks", "n-svg", "<svg id=\"n-svg\"></svg>"))
	require.NoError(t, d.RemoveContainer("masks"))
	assert.False(t, d.HasContainer("masks"))
	_, ok = d.Definition("n-svg")
	assert.False(t, ok, "definitions go away with their container")
}

func TestStylesheets(t *testing.T) {
	d := New()
	require.NoError(t, d.InstallStylesheet("s", ".a { top: 0; }"))
	require.NoError(t, d.InstallStylesheet("s", ".b { top: 1px; }"))

	css, ok := d.Stylesheet("s")
	require.True(t, ok)
	assert.Equal(t, ".a { top: 0; }", css, "install keeps the first stylesheet")

	require.NoError(t, d.RemoveStylesheet("s"))
	_, ok = d.Stylesheet("s")
	assert.False(t, ok)
}

func TestWritesCounter(t *testing.T) {
	d := New()
	_, _ = d.EnsureElement("w", "", "")
	_, _ = d.EnsureElement("w", "", "")
	_ = d.SetStyle("w", dom.Prop("top", "0px"))
	assert.Equal(t, 2, d.Writes())
}

func TestRenderParseRoundTrip(t *testing.T) {
	d := New()
	require.NoError(t, d.InstallStylesheet("global", ".hframe-composed-area { position: absolute; }"))
	_, err := d.EnsureElement("w", "hframe-composed-area", "<p>hello <b>world</b></p>")
	require.NoError(t, err)
	require.NoError(t, d.SetStyle("w", dom.Prop("top", "10px"), dom.Prop("left", "20px")))
	require.NoError(t, d.EnsureContainer("masks", "position: absolute;"))
	require.NoError(t, d.UpsertDefinition("masks", "w-svg", "<svg id=\"w-svg\"><defs></defs></svg>"))

	page := d.String()
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))

	back, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	e, ok := back.Element("w")
	require.True(t, ok)
	assert.Equal(t, "hframe-composed-area", e.Class)
	assert.Equal(t, "<p>hello <b>world</b></p>", e.HTML())
	assert.Equal(t, "10px", e.Style("top"))
	assert.Equal(t, "20px", e.Style("left"))
	assert.Equal(t, 0, e.Writes("top"))

	css, ok := back.Stylesheet("global")
	require.True(t, ok)
	assert.Contains(t, css, "position: absolute;")

	assert.True(t, back.HasContainer("masks"))
	markup, ok := back.Definition("w-svg")
	require.True(t, ok)
	assert.Contains(t, markup, "w-svg")
}
