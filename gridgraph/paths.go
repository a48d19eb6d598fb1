package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/mazestep/grid"
)

// ShortestPath returns a minimum-length Path-only route from src to dst,
// inclusive of both endpoints, found by breadth-first search.
//
// Behavior:
//  1. Validate both endpoints are in bounds.
//  2. BFS from src over open cells in grid.NeighborOrder.
//  3. Stop when dst is dequeued.
//  4. Reconstruct the route via predecessor links.
//
// Returns ErrOutOfBounds or ErrNoPath (also when either endpoint is Wall).
// Complexity: O(W·H) time and memory.
func (gg *GridGraph) ShortestPath(src, dst grid.Coord) ([]grid.Coord, error) {
	if !gg.InBounds(src) || !gg.InBounds(dst) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, src, dst)
	}
	if !gg.IsOpen(src) || !gg.IsOpen(dst) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, src, dst)
	}

	n := len(gg.open)
	prev := make([]int, n)
	seen := make([]bool, n)
	for i := range prev {
		prev[i] = -1
	}

	si, di := gg.index(src), gg.index(dst)
	queue := make([]int, 0, n)
	queue = append(queue, si)
	seen[si] = true
	found := false

	for qi := 0; qi < len(queue); qi++ {
		ui := queue[qi]
		if ui == di {
			found = true
			break
		}
		u := gg.Coordinate(ui)
		for _, d := range offsets {
			v := u.Add(d)
			if !gg.IsOpen(v) {
				continue
			}
			vi := gg.index(v)
			if seen[vi] {
				continue
			}
			seen[vi] = true
			prev[vi] = ui
			queue = append(queue, vi)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, src, dst)
	}

	// Reconstruct reversed, then flip.
	var path []grid.Coord
	for at := di; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Distance returns the number of moves on a shortest route from src to dst.
func (gg *GridGraph) Distance(src, dst grid.Coord) (int, error) {
	p, err := gg.ShortestPath(src, dst)
	if err != nil {
		return 0, err
	}
	return len(p) - 1, nil
}
