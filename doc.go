// Package mazestep is a steppable maze engine: it carves rectangular mazes
// and solves them one observable step at a time, so a visualizer can poll
// the grid, the frontier, the trail and the operation counters between
// steps.
//
// 🚀 What is mazestep?
//
//	A small, deterministic-when-seeded engine that brings together:
//		• Grid model: walls, paths, start/end markers, ASCII frames
//		• Generation: randomized depth-first carving, one action per step
//		• Open fill: a one-shot random grid with loops and dead zones
//		• Frontier solver: incremental unit-weight Dijkstra, FIFO tie-break
//		• Wall follower: bounded right-hand walk with a lazy iterator
//		• Counters: steps, main writes and aux pushes/pops, Prometheus export
//
// ✨ Properties
//
//   - Reentrant: every algorithm keeps explicit state and can be reset mid-run
//   - Observable: nothing hides work between steps
//   - Bounded: the wall follower always terminates
//
// Packages:
//
//	grid/          cells, coordinates, directions, rendering
//	metrics/       operation counters and the Prometheus collector
//	generator/     depth-first carver and open fill
//	frontier/      incremental shortest-path solver
//	wallfollower/  right-hand-rule solver
//	gridgraph/     connectivity and reference BFS over a grid
//	session/       one maze run: phases, resets, mode switching, logging
//	config/        MAZE_* environment and .env loading
//	cmd/mazestep   headless driver printing frames and counters
//
// Quick start:
//
//	s, _ := session.New(21, 31, session.WithSeed(7))
//	for st, _ := s.GenerationStep(); st != generator.Complete; st, _ = s.GenerationStep() {
//	}
//	for st, _ := s.SolverStep(); st == frontier.Progress; st, _ = s.SolverStep() {
//	}
//	fmt.Print(s.Frame())
//
// None of the types are safe for concurrent use; step and poll from one
// goroutine.
package mazestep
