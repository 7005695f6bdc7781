// Package config loads composition settings from TOML or YAML files.
//
// A settings file looks like this in TOML:
//
//	strategy = "document_mask"
//	engine = "gecko"
//	corner_radius = 8
//	log_level = "debug"
//
// Every key is optional. File.Options turns the settings into options for
// hframe.NewContext.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/hframe"
	"github.com/gogpu/hframe/mask"
)

// ErrUnsupportedFormat is returned by Load for files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// ErrUnknownEngine is returned when the engine key names no known engine.
var ErrUnknownEngine = errors.New("config: unknown engine")

// File holds composition settings.
type File struct {
	// Strategy is a mask strategy name, see mask.Names. Empty means auto.
	Strategy string `toml:"strategy" yaml:"strategy"`

	// Engine declares the rendering engine instead of probing it.
	Engine string `toml:"engine" yaml:"engine"`

	// CornerRadius is the corner radius of mask holes. Nil keeps the default.
	CornerRadius *float64 `toml:"corner_radius" yaml:"corner_radius"`

	// LogLevel enables logging at the given slog level name.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Load reads a settings file, picking the decoder from the file extension.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var cfg File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		cfg, err = DecodeTOML(f)
	case ".yaml", ".yml":
		cfg, err = DecodeYAML(f)
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeTOML decodes settings from TOML. Unknown keys are an error.
func DecodeTOML(r io.Reader) (File, error) {
	var cfg File
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return File{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// DecodeYAML decodes settings from YAML. Unknown keys are an error.
func DecodeYAML(r io.Reader) (File, error) {
	var cfg File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. ok is false when no level is set.
func (f File) Level() (level slog.Level, ok bool, err error) {
	if strings.TrimSpace(f.LogLevel) == "" {
		return 0, false, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(f.LogLevel))); err != nil {
		return 0, false, fmt.Errorf("config: log_level: %w", err)
	}
	return level, true, nil
}

// Options converts the settings into Context options.
//
// probe is used when the file does not declare an engine. When a log level
// is set, log records go to logOut as text; a nil logOut disables logging.
func (f File) Options(probe mask.Probe, logOut io.Writer) ([]hframe.Option, error) {
	var opts []hframe.Option

	if f.Engine != "" {
		e, ok := mask.ParseEngine(f.Engine)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, f.Engine)
		}
		probe = mask.Fixed(e)
		opts = append(opts, hframe.WithEngine(e))
	} else if probe != nil {
		opts = append(opts, hframe.WithProbe(probe))
	}

	var maskOpts []mask.Option
	if f.CornerRadius != nil {
		maskOpts = append(maskOpts, mask.WithRadius(*f.CornerRadius))
	}
	s, err := mask.New(f.Strategy, probe, maskOpts...)
	if err != nil {
		return nil, fmt.Errorf("config: strategy: %w", err)
	}
	opts = append(opts, hframe.WithStrategy(s))

	level, ok, err := f.Level()
	if err != nil {
		return nil, err
	}
	if ok && logOut != nil {
		l := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
		opts = append(opts, hframe.WithLogger(l))
	}
	return opts, nil
}
