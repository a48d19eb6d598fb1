// Package generator produces mazes on a grid.Grid.
//
// Two strategies are provided and only one should drive a grid at a time:
//
//   - Carver: randomized depth-first "recursive backtracker", advanced one
//     action per Step call. State is an explicit stack plus an append-only
//     log of carved cells, so a caller can render between calls and resume
//     later. No recursion is used.
//   - FillOpen: single-shot random obstacle fill (30% Wall). Not steppable,
//     records no metrics.
//
// Carving rules:
//
//  1. Peek the top of the stack.
//  2. Shuffle the four headings uniformly.
//  3. For the first heading whose cell two steps away is strictly interior
//     and still Wall: open the wall between and the destination, record the
//     destination, push it. Two main-memory writes, one push.
//  4. If no heading is viable, pop. One pop.
//  5. When the stack is empty the end moves to the last carved cell and
//     Step reports Complete.
//
// Because carving moves two cells at a time from (1,1), only odd coordinates
// ever become lattice cells, and the border is never touched.
//
// Complexity:
//
//   - Step: O(1)
//   - Full generation: O(L) steps, L = number of odd interior lattice cells
//     (each cell is pushed once and popped once).
//   - FillOpen: O(rows×cols)
//
// Randomness:
//
//	WithSeed makes a run reproducible. Without it the source is seeded from
//	the wall clock, matching the interactive use case.
package generator
