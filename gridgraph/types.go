package gridgraph

import (
	"errors"

	"github.com/katalvlaran/mazestep/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was supplied.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrOutOfBounds indicates a path endpoint outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNoPath indicates no Path-only route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between cells")
)

// GridGraph is an immutable 4-connected view of a grid's Path cells.
// Width and Height define dimensions; open[i] is true for Path cells, where
// i is the row-major index.
type GridGraph struct {
	Width, Height int
	open          []bool
}

// offsets are the orthogonal neighbor deltas in grid.NeighborOrder.
var offsets = func() [4]grid.Coord {
	var out [4]grid.Coord
	for i, d := range grid.NeighborOrder {
		out[i] = d.Delta()
	}
	return out
}()
