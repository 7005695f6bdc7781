package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/dom/memdom"
	"github.com/gogpu/hframe/mask"
)

func TestDecodeTOML(t *testing.T) {
	cfg, err := DecodeTOML(strings.NewReader(`
strategy = "document_mask"
engine = "gecko"
corner_radius = 8
log_level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, "document_mask", cfg.Strategy)
	assert.Equal(t, "gecko", cfg.Engine)
	require.NotNil(t, cfg.CornerRadius)
	assert.Equal(t, 8.0, *cfg.CornerRadius)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestDecodeTOMLUnknownKey(t *testing.T) {
	_, err := DecodeTOML(strings.NewReader(`stratgy = "hide"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stratgy")
}

func TestDecodeYAML(t *testing.T) {
	cfg, err := DecodeYAML(strings.NewReader("strategy: hide\ncorner_radius: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, "hide", cfg.Strategy)
	require.NotNil(t, cfg.CornerRadius)
	assert.Zero(t, *cfg.CornerRadius)
	assert.Empty(t, cfg.Engine)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	cfg, err := DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, File{}, cfg)
}

func TestDecodeYAMLUnknownKey(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("colour: red\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}

	cfg, err := Load(write("hframe.toml", `strategy = "nop"`))
	require.NoError(t, err)
	assert.Equal(t, "nop", cfg.Strategy)

	cfg, err = Load(write("hframe.YML", "engine: blink\n"))
	require.NoError(t, err)
	assert.Equal(t, "blink", cfg.Engine)

	_, err = Load(write("hframe.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLevel(t *testing.T) {
	_, ok, err := File{}.Level()
	require.NoError(t, err)
	assert.False(t, ok)

	level, ok, err := File{LogLevel: "warn"}.Level()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)

	_, _, err = File{LogLevel: "loud"}.Level()
	assert.Error(t, err)
}

func TestOptionsEngineDrivesAuto(t *testing.T) {
	opts, err := File{Engine: "gecko"}.Options(mask.Fixed(mask.EngineBlink), nil)
	require.NoError(t, err)

	hc, err := hframe.NewContext(memdom.New(), opts...)
	require.NoError(t, err)
	assert.Equal(t, "document_mask (auto)", hc.Strategy().Name)
	assert.Equal(t, mask.EngineGecko, hc.Engine())
}

func TestOptionsProbe(t *testing.T) {
	opts, err := File{}.Options(mask.Fixed(mask.EngineBlink), nil)
	require.NoError(t, err)

	hc, err := hframe.NewContext(memdom.New(), opts...)
	require.NoError(t, err)
	assert.Equal(t, "data_mask (auto)", hc.Strategy().Name)
	assert.Equal(t, mask.EngineBlink, hc.Engine())
}

func TestOptionsErrors(t *testing.T) {
	_, err := File{Engine: "trident"}.Options(nil, nil)
	assert.ErrorIs(t, err, ErrUnknownEngine)

	_, err = File{Strategy: "canvas_overlay"}.Options(nil, nil)
	assert.ErrorIs(t, err, mask.ErrUnknownStrategy)

	_, err = File{LogLevel: "loud"}.Options(nil, nil)
	assert.Error(t, err)
}

func TestOptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	opts, err := File{Strategy: "hide", LogLevel: "info"}.Options(nil, &buf)
	require.NoError(t, err)

	_, err = hframe.NewContext(memdom.New(), opts...)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "strategy=hide")
}
