package hframe

import (
	"log/slog"

	"github.com/gogpu/hframe/mask"
)

// Option configures a Context during creation.
//
// Example:
//
//	// Let the engine pick a strategy for the browser
//	ctx, err := hframe.NewContext(jsdom.New(),
//	    hframe.WithProbe(mask.UserAgent(jsdom.UserAgent())))
//
//	// Force a strategy
//	ctx, err := hframe.NewContext(surface, hframe.WithStrategy(mask.NewHide()))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	strategy mask.Strategy
	probe    mask.Probe
	engine   *mask.Engine
	logger   *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		strategy: nil, // mask.NewAuto(probe) if nil
		probe:    nil, // EngineUnknown if nil
	}
}

// WithStrategy sets the mask strategy. The default is mask.Auto.
func WithStrategy(s mask.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithProbe sets the engine probe. It feeds the default Auto strategy and
// decides whether elements are hidden while occluders are dragged.
func WithProbe(p mask.Probe) Option {
	return func(o *options) {
		o.probe = p
	}
}

// WithEngine declares the rendering engine, bypassing the probe.
func WithEngine(e mask.Engine) Option {
	return func(o *options) {
		o.engine = &e
	}
}

// WithLogger sets a logger for this Context instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
