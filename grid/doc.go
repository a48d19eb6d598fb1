// Package grid models a rectangular maze as a matrix of Wall and Path cells.
//
// What:
//
//   - Grid holds rows × cols cells plus a start and an end coordinate.
//   - Construction fills every cell with Wall, then opens start=(1,1) and a
//     provisional end=(rows-1, cols-2). Generators move the end later.
//   - SetCell is the single-cell mutation entry point; each call with a
//     non-nil *metrics.Counter records exactly one main-memory write.
//   - Kind treats out-of-bounds coordinates as Wall, so solvers never need a
//     separate bounds check before asking "can I step there?".
//   - Direction provides the four axis-aligned headings and turn helpers
//     used by the carver and the wall follower.
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols below MinDimension.
//   - ErrOutOfBounds:      SetCell/SetEnd outside the grid.
//
// Complexity:
//
//   - New, Reset, Snapshot, String: O(rows×cols)
//   - Kind, SetCell, InBounds:      O(1)
package grid
