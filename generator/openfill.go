package generator

import (
	"github.com/katalvlaran/mazestep/grid"
)

// FillOpen turns every cell of g into Wall with probability
// OpenWallProbability and Path otherwise, then forces start and end back to
// Path. It runs to completion in one call and records no metrics.
// Complexity: O(rows×cols).
func FillOpen(g *grid.Grid, opts ...Option) error {
	o := buildOptions(opts)
	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			k := grid.Path
			if o.Rand.Float64() < OpenWallProbability {
				k = grid.Wall
			}
			if err := g.SetCell(grid.Coord{Row: r, Col: col}, k, nil); err != nil {
				return err
			}
		}
	}
	if err := g.SetCell(g.Start(), grid.Path, nil); err != nil {
		return err
	}
	return g.SetCell(g.End(), grid.Path, nil)
}
