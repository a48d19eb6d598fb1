package wallfollower

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazestep/grid"
)

// DefaultCapFactor multiplies the cell count to get the default iteration cap.
// A right-hand tour of a tree crosses every corridor twice and turns at most
// three times per cell, which stays well under this bound.
const DefaultCapFactor = 16

var (
	// ErrNilMaze is returned when a nil Maze is supplied.
	ErrNilMaze = errors.New("wallfollower: maze is nil")
	// ErrOptionViolation is returned for an invalid Option.
	ErrOptionViolation = errors.New("wallfollower: invalid option supplied")
	// ErrUnboundedTraversal reports that the iteration cap was exceeded
	// before reaching the end.
	ErrUnboundedTraversal = errors.New("wallfollower: iteration cap exceeded")
)

// Maze is the read-only view the walker needs. *grid.Grid implements it.
type Maze interface {
	Rows() int
	Cols() int
	Start() grid.Coord
	End() grid.Coord
	IsPath(c grid.Coord) bool
}

// Outcome is the walker's terminal position.
type Outcome int

const (
	// Walking means the walk has neither reached the end nor hit the cap.
	Walking Outcome = iota
	// Solved means the end was reached.
	Solved
	// Failed means the iteration cap was exceeded.
	Failed
)

// String returns a lowercase name for o.
func (o Outcome) String() string {
	switch o {
	case Walking:
		return "walking"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Options configures a walker.
type Options struct {
	// MaxIterations caps move-or-turn evaluations. Zero selects
	// DefaultCapFactor × rows × cols.
	MaxIterations int
	// Heading is the initial heading.
	Heading grid.Direction

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the automatic cap and a South heading.
func DefaultOptions() Options {
	return Options{MaxIterations: 0, Heading: grid.South}
}

// WithMaxIterations sets the iteration cap.
//
//	n > 0:  cap at n
//	n == 0: automatic cap
//	n < 0:  invalid → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithHeading sets the initial heading.
func WithHeading(d grid.Direction) Option {
	return func(o *Options) {
		if d < grid.South || d > grid.West {
			o.err = fmt.Errorf("%w: unknown heading %d", ErrOptionViolation, int(d))
			return
		}
		o.Heading = d
	}
}

// Result is the outcome of Solve.
type Result struct {
	Outcome    Outcome
	Trail      []grid.Coord // every cell stood on, start first
	Path       []grid.Coord // loop-erased start..end route; nil unless Solved
	Iterations int          // move-or-turn evaluations performed
}
