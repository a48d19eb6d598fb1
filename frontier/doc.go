// Package frontier implements an incremental, unit-weight Dijkstra search
// over a maze grid, advanced one expansion per Step call.
//
// State machine:
//
//	Uninitialized ──Step──▶ Searching ──Step──▶ Solved
//	                            │
//	                            └────Step──▶ Exhausted
//
// Each Step:
//  1. On the first call, seeds the open set with start at cost 0.
//  2. If open is empty, moves to Exhausted (terminal, no path).
//  3. Pops the open member with the lowest cost; ties go to the member
//     that arrived first. Appends it to the visited log.
//  4. If it is the end, rebuilds the path from predecessor links and moves
//     to Solved.
//  5. Otherwise closes it and relaxes each in-bounds Path neighbor that is
//     not closed: unknown neighbors are inserted, known ones are updated only
//     on a strictly better cost.
//
// With unit weights the cost order is breadth-first by layer, and the
// arrival tie-break makes every layer FIFO, so runs are deterministic.
//
// Invariants:
//
//   - A coordinate is in at most one of open and closed.
//   - Every coordinate ever inserted into open has a cost entry.
//   - Terminal states are sticky until Reset.
//
// Complexity (V = Path cells):
//
//   - Step:       O(log V)
//   - Full solve: O(V log V), Memory: O(V)
//
// Metrics (when a counter is passed): one Step per expansion, one Push per
// open insertion, one Pop per extraction. The grid is never written.
package frontier
