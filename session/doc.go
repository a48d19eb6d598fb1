// Package session owns one maze run: the grid, the carving generator, both
// solvers, the operation counters and the animation cursor.
//
// A Session moves through phases:
//
//	Generating → Generated → Solving → Solved | Exhausted | Failed
//
// GenerationStep drives carving one action at a time; FillOpenMaze replaces
// carving with an atomic random fill. SolverStep drives the frontier solver
// one expansion at a time; SolveWithWallFollower runs the bounded right-hand
// walk to completion. Asking for a solver before generation has finished
// returns ErrGenerationIncomplete.
//
// ResetMaze, ResetSolver and SwitchMode discard exactly the state they name,
// so no stale frontier, trail or counter survives a reset.
//
// Lifecycle transitions are logged through a logrus.FieldLogger with the
// session ID attached; the default logger discards output. Collector exposes
// the counters to Prometheus.
//
// A Session is not safe for concurrent use; callers poll it from the same
// goroutine that steps it.
package session
