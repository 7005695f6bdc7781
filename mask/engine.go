package mask

import "strings"

// Engine is the family of the rendering engine running the page.
type Engine int

const (
	// EngineUnknown is used when the engine cannot be told apart.
	EngineUnknown Engine = iota

	// EngineBlink is Chrome, Chromium, Edge and friends.
	EngineBlink

	// EngineGecko is Firefox.
	EngineGecko

	// EngineWebKit is Safari.
	EngineWebKit
)

// String implements fmt.Stringer.
func (e Engine) String() string {
	switch e {
	case EngineBlink:
		return "blink"
	case EngineGecko:
		return "gecko"
	case EngineWebKit:
		return "webkit"
	default:
		return "unknown"
	}
}

// ParseEngine parses the output of Engine.String. Unrecognized names yield
// EngineUnknown and false.
func ParseEngine(s string) (Engine, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blink":
		return EngineBlink, true
	case "gecko":
		return EngineGecko, true
	case "webkit":
		return EngineWebKit, true
	case "unknown", "":
		return EngineUnknown, true
	default:
		return EngineUnknown, false
	}
}

// SyncMaskUpdates reports whether the engine repaints a masked element in
// the same frame its mask changes. Only Blink is known to.
func (e Engine) SyncMaskUpdates() bool {
	return e == EngineBlink
}

// Probe reports the rendering engine. It is called once, when a strategy is
// selected.
type Probe func() Engine

// Fixed returns a Probe that always reports e.
func Fixed(e Engine) Probe {
	return func() Engine { return e }
}

// UserAgent returns a Probe that classifies a user-agent string.
func UserAgent(ua string) Probe {
	return func() Engine { return DetectEngine(ua) }
}

// DetectEngine classifies a user-agent string.
//
// Examples:
//
//	Blink:  Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36
//	Gecko:  Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:123.0) Gecko/20100101 Firefox/123.0
//	WebKit: Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1.2 Safari/605.1.15
func DetectEngine(ua string) Engine {
	ua = strings.ToLower(ua)
	switch {
	case strings.Contains(ua, "chrome"):
		return EngineBlink
	case strings.Contains(ua, "gecko") &&
		!strings.Contains(ua, "like gecko") &&
		!strings.Contains(ua, "webkit") &&
		!strings.Contains(ua, "safari"):
		return EngineGecko
	case strings.Contains(ua, "applewebkit") || strings.Contains(ua, "safari"):
		return EngineWebKit
	default:
		return EngineUnknown
	}
}
