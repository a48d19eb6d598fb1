// Package gridgraph treats the Path cells of a maze grid as a 4-connected
// graph and answers structural questions about it.
//
// What:
//
//   - GridGraph copies a *grid.Grid so later mutations do not affect it.
//   - ConnectedComponents groups Path cells into islands (BFS flood fill).
//   - ShortestPath is a plain breadth-first search between two cells, used
//     as the reference oracle for the incremental frontier solver.
//   - EdgeCount and IsTree check the spanning-tree property of carved mazes:
//     one component and exactly V-1 edges means no cycles.
//
// Why:
//
//   - Verifying generators: a perfect maze is a tree.
//   - Verifying solvers: their path length must match a BFS distance.
//   - Diagnostics for the demo driver.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H), Memory: O(W×H)
//   - ShortestPath:        O(W×H), Memory: O(W×H)
//   - EdgeCount, IsTree:   O(W×H)
//
// Errors:
//
//   - ErrNilGrid:     nil grid passed to New.
//   - ErrOutOfBounds: ShortestPath endpoint outside the grid.
//   - ErrNoPath:      endpoints are not connected through Path cells.
package gridgraph
