package session

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazestep/frontier"
	"github.com/katalvlaran/mazestep/generator"
	"github.com/katalvlaran/mazestep/grid"
	"github.com/katalvlaran/mazestep/gridgraph"
	"github.com/katalvlaran/mazestep/metrics"
	"github.com/katalvlaran/mazestep/wallfollower"
)

// Overlay marks used by Frame.
const (
	MarkVisited  = '.'
	MarkTrail    = 'o'
	MarkSolution = '*'
)

// Session is a single maze run. Not safe for concurrent use.
type Session struct {
	id        uuid.UUID
	log       logrus.FieldLogger
	rng       *rand.Rand
	mode      Mode
	phase     Phase
	followCap int

	grid    *grid.Grid
	carver  *generator.Carver
	solver  *frontier.Solver
	counter *metrics.Counter

	solution []grid.Coord
	trail    []grid.Coord
	steps    []grid.Coord // sequence the cursor reveals: trail or solution
	stepMark rune
	cursor   int // revealed prefix of steps
}

// New builds a rows×cols session ready for GenerationStep, or already
// generated when WithMode(ModeOpen) is given.
// Returns grid.ErrInvalidDimension for grids smaller than 3×3 and
// ErrOptionViolation for bad options.
func New(rows, cols int, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	id := uuid.New()
	s := &Session{
		id:        id,
		log:       o.Logger.WithField("session", id.String()),
		rng:       o.resolveRand(),
		mode:      o.Mode,
		followCap: o.MaxFollowIterations,
		grid:      g,
		solver:    frontier.New(g),
		counter:   metrics.NewCounter(),
	}
	s.carver = generator.NewCarver(g, generator.WithRand(s.rng))

	s.log.WithFields(logrus.Fields{"rows": rows, "cols": cols, "mode": s.mode}).Info("session created")
	if s.mode == ModeOpen {
		if err = s.fill(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// GenerationStep performs one carving action. Once carving is complete, and
// always in open mode, it reports generator.Complete without side effects.
func (s *Session) GenerationStep() (generator.Status, error) {
	if s.mode == ModeOpen || s.phase != PhaseGenerating {
		return generator.Complete, nil
	}

	st, err := s.carver.Step(s.counter)
	if err != nil {
		return st, fmt.Errorf("session: generation step: %w", err)
	}
	if st == generator.Complete {
		s.log.WithFields(logrus.Fields{
			"end":    s.grid.End().String(),
			"carved": len(s.carver.Steps()),
		}).Info("generation complete")
		s.setPhase(PhaseGenerated)
	}

	return st, nil
}

// FillOpenMaze discards the current maze and fills a new one at random,
// switching the session to open mode.
func (s *Session) FillOpenMaze() error {
	s.mode = ModeOpen
	return s.fill()
}

// SolverStep performs one frontier expansion and records it on the counters.
// The first call after a reset discards any earlier solution.
func (s *Session) SolverStep() (frontier.Status, error) {
	if err := s.requireGenerated("solver step"); err != nil {
		return frontier.Progress, err
	}
	if s.solver.State() == frontier.StateUninitialized {
		s.clearSolution()
		s.setPhase(PhaseSolving)
	}

	st := s.solver.Step(s.counter)
	switch {
	case st == frontier.Solved && s.phase != PhaseSolved:
		s.solution = s.solver.Path()
		s.steps, s.stepMark = s.solution, MarkSolution
		s.log.WithField("length", len(s.solution)).Info("frontier solved")
		s.setPhase(PhaseSolved)
	case st == frontier.Exhausted && s.phase != PhaseExhausted:
		s.log.WithField("visited", s.solver.ClosedLen()).Info("frontier exhausted")
		s.setPhase(PhaseExhausted)
	}

	return st, nil
}

// SolveWithWallFollower runs the right-hand walk to completion. Frontier
// state is discarded first. A capped walk reports wallfollower.Failed with a
// nil error; the walked trail is still available for animation.
func (s *Session) SolveWithWallFollower() (wallfollower.Outcome, error) {
	if err := s.requireGenerated("wall follower"); err != nil {
		return wallfollower.Walking, err
	}
	s.solver.Reset()
	s.clearSolution()

	w, err := wallfollower.NewWalker(s.grid, wallfollower.WithMaxIterations(s.followCap))
	if err != nil {
		return wallfollower.Walking, fmt.Errorf("session: %w", err)
	}
	for range w.Moves(s.counter) {
	}

	s.trail = w.Trail()
	s.steps, s.stepMark = s.trail, MarkTrail
	entry := s.log.WithFields(logrus.Fields{"iterations": w.Iterations(), "trail": len(s.trail)})
	if w.Outcome() == wallfollower.Solved {
		s.solution = w.Path()
		entry.WithField("length", len(s.solution)).Info("wall follower solved")
		s.setPhase(PhaseSolved)
	} else {
		entry.WithError(w.Err()).Warn("wall follower failed")
		s.setPhase(PhaseFailed)
	}

	return w.Outcome(), nil
}

// ResetMaze discards the maze, both solvers and the counters, and restarts
// generation in the current mode.
func (s *Session) ResetMaze() error {
	if s.mode == ModeOpen {
		return s.fill()
	}
	s.resetAll()
	s.setPhase(PhaseGenerating)

	return nil
}

// ResetSolver discards solver state and the solution but keeps the maze and
// the counters.
func (s *Session) ResetSolver() {
	s.solver.Reset()
	s.clearSolution()
	if s.phase != PhaseGenerating {
		s.setPhase(PhaseGenerated)
	}
}

// SwitchMode toggles between tree and open mode and starts a fresh maze in
// the new mode. Open mode is filled immediately.
func (s *Session) SwitchMode() error {
	if s.mode == ModeTree {
		s.mode = ModeOpen
	} else {
		s.mode = ModeTree
	}
	s.log.WithField("mode", s.mode).Info("mode switched")

	return s.ResetMaze()
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Mode returns the current maze mode.
func (s *Session) Mode() Mode { return s.mode }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Rows returns the grid height.
func (s *Session) Rows() int { return s.grid.Rows() }

// Cols returns the grid width.
func (s *Session) Cols() int { return s.grid.Cols() }

// Grid returns a copy of the cells as [row][col].
func (s *Session) Grid() [][]grid.Kind { return s.grid.Snapshot() }

// Start returns the start coordinate.
func (s *Session) Start() grid.Coord { return s.grid.Start() }

// End returns the end coordinate. During carving it is provisional.
func (s *Session) End() grid.Coord { return s.grid.End() }

// GenerationStack returns a copy of the carving stack.
func (s *Session) GenerationStack() []grid.Coord { return s.carver.Stack() }

// Visited returns the frontier solver's expansion order.
func (s *Session) Visited() []grid.Coord { return s.solver.Visited() }

// Open returns the frontier solver's open set, cheapest first.
func (s *Session) Open() []grid.Coord { return s.solver.Open() }

// Solution returns a copy of the last solution, start..end, or nil.
func (s *Session) Solution() []grid.Coord {
	return append([]grid.Coord(nil), s.solution...)
}

// Trail returns a copy of the last wall-follower walk, or nil.
func (s *Session) Trail() []grid.Coord {
	return append([]grid.Coord(nil), s.trail...)
}

// Animation returns a copy of the sequence the cursor reveals: the walked
// trail after SolveWithWallFollower, the solution after a frontier solve,
// or nil.
func (s *Session) Animation() []grid.Coord {
	return append([]grid.Coord(nil), s.steps...)
}

// Cursor returns how many animation cells have been revealed.
func (s *Session) Cursor() int { return s.cursor }

// AdvanceCursor reveals one more animation cell. It returns false once the
// whole sequence is revealed. The cursor is presentation state and is not
// counted.
func (s *Session) AdvanceCursor() bool {
	if s.cursor >= len(s.steps) {
		return false
	}
	s.cursor++

	return true
}

// Revealed returns the animation prefix up to the cursor.
func (s *Session) Revealed() []grid.Coord {
	return append([]grid.Coord(nil), s.steps[:s.cursor]...)
}

// Graph returns the open cells as a 4-connected graph for analysis.
func (s *Session) Graph() (*gridgraph.GridGraph, error) {
	return gridgraph.New(s.grid)
}

// Metrics returns a snapshot of the counters.
func (s *Session) Metrics() metrics.Snapshot { return s.counter.Snapshot() }

// Snapshot implements metrics.Source.
func (s *Session) Snapshot() metrics.Snapshot { return s.counter.Snapshot() }

// Collector exports the counters under namespace with a "session" label.
// The collector follows resets; register it once per session.
func (s *Session) Collector(namespace string) *metrics.Collector {
	return metrics.NewCollector(s, namespace, prometheus.Labels{"session": s.id.String()})
}

// Frame renders the grid with visited cells, the revealed animation prefix
// and, once the animation is fully revealed, the solution.
func (s *Session) Frame() string {
	overlays := []grid.Overlay{
		{Mark: MarkVisited, Cells: s.solver.Visited()},
		{Mark: s.stepMark, Cells: s.steps[:s.cursor]},
	}
	if s.cursor == len(s.steps) {
		overlays = append(overlays, grid.Overlay{Mark: MarkSolution, Cells: s.solution})
	}
	return s.grid.Render(overlays)
}

// fill resets everything and fills an open maze.
func (s *Session) fill() error {
	s.resetAll()
	if err := generator.FillOpen(s.grid, generator.WithRand(s.rng)); err != nil {
		return fmt.Errorf("session: open fill: %w", err)
	}
	s.log.WithField("path_cells", s.grid.CountPath()).Info("open maze filled")
	s.setPhase(PhaseGenerated)

	return nil
}

func (s *Session) resetAll() {
	s.grid.Reset()
	s.carver.Reset()
	s.solver.Reset()
	s.clearSolution()
	s.counter.Reset()
}

func (s *Session) clearSolution() {
	s.solution = nil
	s.trail = nil
	s.steps = nil
	s.cursor = 0
}

func (s *Session) requireGenerated(op string) error {
	if s.phase == PhaseGenerating {
		return fmt.Errorf("%w: %s requested while %s", ErrGenerationIncomplete, op, s.phase)
	}
	return nil
}

func (s *Session) setPhase(p Phase) {
	if p == s.phase {
		return
	}
	s.log.WithFields(logrus.Fields{"from": s.phase, "to": p}).Debug("phase transition")
	s.phase = p
}
