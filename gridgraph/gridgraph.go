package gridgraph

import (
	"github.com/katalvlaran/mazestep/grid"
)

// New snapshots g into a GridGraph.
// Returns ErrNilGrid if g is nil.
// Complexity: O(W×H) time and memory.
func New(g *grid.Grid) (*GridGraph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	gg := &GridGraph{
		Width:  g.Cols(),
		Height: g.Rows(),
		open:   make([]bool, g.Rows()*g.Cols()),
	}
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			gg.open[gg.index(grid.Coord{Row: r, Col: c})] = g.IsPath(grid.Coord{Row: r, Col: c})
		}
	}

	return gg, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c grid.Coord) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// IsOpen reports whether c is an in-bounds Path cell.
func (gg *GridGraph) IsOpen(c grid.Coord) bool {
	return gg.InBounds(c) && gg.open[gg.index(c)]
}

// VertexCount returns the number of Path cells.
func (gg *GridGraph) VertexCount() int {
	n := 0
	for _, ok := range gg.open {
		if ok {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of orthogonally adjacent Path pairs.
// Each pair is counted once by looking only east and south.
func (gg *GridGraph) EdgeCount() int {
	n := 0
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			u := grid.Coord{Row: r, Col: c}
			if !gg.IsOpen(u) {
				continue
			}
			if gg.IsOpen(u.Step(grid.East, 1)) {
				n++
			}
			if gg.IsOpen(u.Step(grid.South, 1)) {
				n++
			}
		}
	}
	return n
}

// IsTree reports whether the Path cells form a single connected, acyclic
// component. An empty grid is not a tree.
func (gg *GridGraph) IsTree() bool {
	v := gg.VertexCount()
	if v == 0 {
		return false
	}
	return len(gg.ConnectedComponents()) == 1 && gg.EdgeCount() == v-1
}

// index maps c to a row-major index: Row*Width + Col.
func (gg *GridGraph) index(c grid.Coord) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row-major index back to a grid.Coord.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) grid.Coord {
	return grid.Coord{Row: idx / gg.Width, Col: idx % gg.Width}
}
