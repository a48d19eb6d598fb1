package generator

import (
	"math/rand"
	"time"
)

// Status reports the outcome of one Carver.Step call.
type Status int

const (
	// Progress means one carve or backtrack was performed.
	Progress Status = iota
	// Complete means the stack is empty and the end has been placed.
	Complete
)

// String returns "progress" or "complete".
func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "progress"
}

// OpenWallProbability is the chance that FillOpen turns a cell into Wall.
const OpenWallProbability = 0.3

// Options configures a generator.
type Options struct {
	// Rand is the random source. If nil, a wall-clock seeded source is used.
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// WithSeed fixes the random source to a deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand uses r directly. A nil r is ignored.
// r must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// DefaultOptions returns Options with a wall-clock seeded source.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
