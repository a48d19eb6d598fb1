package wallfollower

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/mazestep/grid"
	"github.com/katalvlaran/mazestep/metrics"
)

// Walker is a resumable right-hand-rule walk over a Maze.
// Not safe for concurrent use.
type Walker struct {
	maze    Maze
	end     grid.Coord
	pos     grid.Coord
	heading grid.Direction
	limit   int
	iters   int
	outcome Outcome
	err     error

	trail  []grid.Coord
	path   []grid.Coord
	onPath map[grid.Coord]int // index into path
}

// NewWalker places a walker on m's start.
// Returns ErrNilMaze or ErrOptionViolation for bad input.
func NewWalker(m Maze, opts ...Option) (*Walker, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	limit := o.MaxIterations
	if limit == 0 {
		limit = DefaultCapFactor * m.Rows() * m.Cols()
	}

	start := m.Start()
	w := &Walker{
		maze:    m,
		end:     m.End(),
		pos:     start,
		heading: o.Heading,
		limit:   limit,
		trail:   []grid.Coord{start},
		path:    []grid.Coord{start},
		onPath:  map[grid.Coord]int{start: 0},
	}
	if start == w.end {
		w.outcome = Solved
	}

	return w, nil
}

// Next advances until the walker moves, and returns the new cell and true.
// It returns false once the walk is over; Outcome and Err tell why.
// Each move-or-turn evaluation records one Step on m.
func (w *Walker) Next(m *metrics.Counter) (grid.Coord, bool) {
	for w.outcome == Walking {
		if w.iters >= w.limit {
			w.outcome = Failed
			w.err = fmt.Errorf("%w: %d iterations without reaching %v", ErrUnboundedTraversal, w.iters, w.end)
			return grid.Coord{}, false
		}
		w.iters++
		m.Step()

		right := w.heading.Right()
		if next := w.pos.Step(right, 1); w.maze.IsPath(next) {
			w.heading = right
			w.move(next)
			return next, true
		}
		if next := w.pos.Step(w.heading, 1); w.maze.IsPath(next) {
			w.move(next)
			return next, true
		}
		w.heading = w.heading.Left()
	}
	return grid.Coord{}, false
}

// Moves yields each move lazily until the walk ends.
func (w *Walker) Moves(m *metrics.Counter) iter.Seq[grid.Coord] {
	return func(yield func(grid.Coord) bool) {
		for {
			c, ok := w.Next(m)
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// move steps onto c, extends the trail, erases any loop closed by c, and
// checks for the end.
func (w *Walker) move(c grid.Coord) {
	w.pos = c
	w.trail = append(w.trail, c)

	if i, seen := w.onPath[c]; seen {
		for _, dropped := range w.path[i+1:] {
			delete(w.onPath, dropped)
		}
		w.path = w.path[:i+1]
	} else {
		w.onPath[c] = len(w.path)
		w.path = append(w.path, c)
	}

	if c == w.end {
		w.outcome = Solved
	}
}

// Outcome returns Walking, Solved or Failed.
func (w *Walker) Outcome() Outcome { return w.outcome }

// Err returns an ErrUnboundedTraversal-wrapped error after a Failed walk.
func (w *Walker) Err() error { return w.err }

// Iterations returns the number of move-or-turn evaluations so far.
func (w *Walker) Iterations() int { return w.iters }

// Position returns the current cell and heading.
func (w *Walker) Position() (grid.Coord, grid.Direction) { return w.pos, w.heading }

// Trail returns a copy of every cell stood on, start first.
func (w *Walker) Trail() []grid.Coord {
	return append([]grid.Coord(nil), w.trail...)
}

// Path returns a copy of the loop-erased route walked so far.
func (w *Walker) Path() []grid.Coord {
	return append([]grid.Coord(nil), w.path...)
}

// Solve runs a walker over m to completion.
// A Failed outcome is reported in Result, not as an error; the error is
// reserved for invalid input.
func Solve(m Maze, mc *metrics.Counter, opts ...Option) (Result, error) {
	w, err := NewWalker(m, opts...)
	if err != nil {
		return Result{}, err
	}
	for range w.Moves(mc) {
	}

	res := Result{
		Outcome:    w.outcome,
		Trail:      w.Trail(),
		Iterations: w.iters,
	}
	if w.outcome == Solved {
		res.Path = w.Path()
	}
	return res, nil
}
