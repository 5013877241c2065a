package seqmatch

import (
	"errors"
	"fmt"
)

// ErrUnknownMatcher indicates a matcher name not registered with [New].
var ErrUnknownMatcher = errors.New("unknown sequence matcher")

// Matcher is the common contract of all sequence matchers.
//
// A matcher owns its inputs for the lifetime of one (a, b) pair; the Set
// methods replace inputs and invalidate prior output. [Matcher.GetOpCodes]
// runs the full annotation and extraction on every call.
//
// A Matcher is not safe for concurrent use. Independent instances on
// disjoint inputs may run in parallel.
type Matcher[T comparable] interface {
	// SetSeq1 replaces the first (old) sequence.
	SetSeq1(a []T)
	// SetSeq2 replaces the second (new) sequence.
	SetSeq2(b []T)
	// SetSeqs replaces both sequences.
	SetSeqs(a, b []T)
	// GetOpCodes returns the ordered opcode list covering both sequences.
	GetOpCodes() ([]OpCode, error)
}

// RatioMatcher extends [Matcher] with string similarity ratios, cheapest
// upper bound first. [Standard] is the provided implementation.
type RatioMatcher interface {
	Matcher[string]

	// Ratio returns the exact similarity of the sequences in [0, 1].
	Ratio() float64
	// QuickRatio returns an upper bound on [RatioMatcher.Ratio] cheaply.
	QuickRatio() float64
	// RealQuickRatio returns an even cheaper upper bound.
	RealQuickRatio() float64
}

// Name identifies a matcher implementation for [New].
type Name string

// [Name] constants.
const (
	// NameStandard selects [Standard].
	NameStandard Name = "standard"
	// NameHeckel selects [Heckel].
	NameHeckel Name = "heckel"
	// NameDisplacement selects [Displacement].
	NameDisplacement Name = "displacement"
)

// config holds settings shared by the move-aware matchers.
type config struct {
	replaceMode bool
}

func newConfig(opts []Option) config {
	cfg := config{replaceMode: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures a matcher constructor.
type Option func(*config)

// WithReplaceMode controls whether consecutive delete/insert pairs are folded
// into a single replace opcode. Enabled by default.
func WithReplaceMode(enabled bool) Option {
	return func(c *config) {
		c.replaceMode = enabled
	}
}

// New creates a string [Matcher] by name, with empty input sequences.
// Use the Set methods to provide inputs. Returns [ErrUnknownMatcher] for
// names other than the [Name] constants.
//
// Options only apply to the move-aware matchers; [Standard] ignores them.
func New(name Name, opts ...Option) (Matcher[string], error) {
	switch name {
	case NameStandard:
		return NewStandard(nil, nil), nil
	case NameHeckel:
		return NewHeckel[string](nil, nil, opts...), nil
	case NameDisplacement:
		return NewDisplacement[string](nil, nil, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, name)
	}
}
