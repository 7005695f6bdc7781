package mask

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by New for names it does not know.
var ErrUnknownStrategy = errors.New("mask: unknown strategy")

// Names lists the strategy names accepted by New.
var Names = []string{"auto", "data_mask", "document_mask", "hide", "nop"}

// New creates a strategy by name. The probe is only consulted for "auto".
func New(name string, probe Probe, opts ...Option) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return NewAuto(probe, opts...), nil
	case "data_mask":
		return NewDataMask(opts...), nil
	case "document_mask":
		return NewDocumentMask(opts...), nil
	case "hide":
		return NewHide(), nil
	case "nop":
		return NewNop(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
