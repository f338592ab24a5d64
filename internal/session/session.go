// Package session ties one masking configuration together: a primary
// format, ordered alternative formats, custom notations, and an
// affinity strategy, compiled once and reused for every edit.
//
// A Session is immutable after New and safe for concurrent use. New
// fails fast on a malformed format: a broken format is a configuration
// bug and must not degrade to unmasked passthrough.
package session

import (
	"github.com/dshills/textmask/internal/mask"
)

// Session is a compiled masking configuration.
type Session struct {
	primary      *mask.Mask
	alternatives []*mask.Mask
	strategy     mask.Strategy
}

type settings struct {
	alternatives []string
	notations    []mask.Notation
	strategy     mask.Strategy
}

// Option configures a Session.
type Option func(*settings)

// WithAlternatives adds alternative format strings, in preference order
// for affinity ties.
func WithAlternatives(formats ...string) Option {
	return func(s *settings) {
		s.alternatives = append(s.alternatives, formats...)
	}
}

// WithNotations adds custom notations available to the primary format
// and every alternative.
func WithNotations(notations ...mask.Notation) Option {
	return func(s *settings) {
		s.notations = append(s.notations, notations...)
	}
}

// WithStrategy sets the affinity strategy used to rank alternatives.
// Defaults to mask.WholeString.
func WithStrategy(strategy mask.Strategy) Option {
	return func(s *settings) {
		s.strategy = strategy
	}
}

// New compiles the primary format and every alternative into a Session.
// Any malformed format fails the whole session with a *mask.FormatError;
// no partial session is ever returned.
func New(format string, opts ...Option) (*Session, error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	primary, err := mask.Compile(format, cfg.notations...)
	if err != nil {
		return nil, err
	}

	alternatives := make([]*mask.Mask, 0, len(cfg.alternatives))
	for _, alt := range cfg.alternatives {
		m, err := mask.Compile(alt, cfg.notations...)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, m)
	}

	strategy := cfg.strategy
	if strategy == nil {
		strategy = mask.WholeString{}
	}

	return &Session{
		primary:      primary,
		alternatives: alternatives,
		strategy:     strategy,
	}, nil
}

// Apply selects the best-fitting mask for the edited text and runs it.
func (s *Session) Apply(input mask.CaretString, autocomplete bool) mask.Result {
	m := mask.Pick(s.primary, s.alternatives, input, s.strategy)
	return m.Apply(input, autocomplete)
}

// Placeholder returns the primary mask's formatted template.
func (s *Session) Placeholder() string {
	return s.primary.Placeholder()
}

// TotalTextLength returns the primary mask's formatted-output capacity.
func (s *Session) TotalTextLength() int {
	return s.primary.TotalTextLength()
}

// AcceptableTextLength returns the primary mask's formatted length up to
// the last mandatory position.
func (s *Session) AcceptableTextLength() int {
	return s.primary.AcceptableTextLength()
}

// TotalValueLength returns the primary mask's value capacity.
func (s *Session) TotalValueLength() int {
	return s.primary.TotalValueLength()
}

// AcceptableValueLength returns the number of mandatory valuable
// positions in the primary mask.
func (s *Session) AcceptableValueLength() int {
	return s.primary.AcceptableValueLength()
}
