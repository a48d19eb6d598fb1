package session

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazestep/generator"
)

// Options configures a Session.
type Options struct {
	// Logger receives lifecycle entries. Nil selects a discarding logger.
	Logger logrus.FieldLogger
	// Mode is the initial maze mode.
	Mode Mode
	// MaxFollowIterations caps the wall follower. Zero selects its default.
	MaxFollowIterations int

	gen []generator.Option
	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns tree mode, a discarding logger, the wall
// follower's default cap and a wall-clock seeded random source.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l, Mode: ModeTree}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.gen = append(o.gen, generator.WithSeed(seed))
	}
}

// WithRand uses r for every maze built by the session.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.gen = append(o.gen, generator.WithRand(r))
	}
}

// WithLogger sets the lifecycle logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMode sets the initial mode. ModeOpen fills the grid in New.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeTree && m != ModeOpen {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithMaxFollowIterations caps the wall follower at n iterations.
// Zero keeps the default; negative n is rejected.
func WithMaxFollowIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFollowIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxFollowIterations = n
	}
}

// resolveRand applies the generator options once so that every maze in the
// session draws from one stream.
func (o Options) resolveRand() *rand.Rand {
	g := generator.DefaultOptions()
	for _, opt := range o.gen {
		opt(&g)
	}
	return g.Rand
}
