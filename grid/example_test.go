package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazestep/grid"
)

// ExampleGrid_Render shows the initial 5×5 layout with a single overlay cell.
func ExampleGrid_Render() {
	g, _ := grid.New(5, 5)
	_ = g.SetCell(grid.Coord{Row: 2, Col: 1}, grid.Path, nil)

	fmt.Print(g.Render([]grid.Overlay{{Mark: '.', Cells: []grid.Coord{{Row: 2, Col: 1}}}}))
	// Output:
	// #####
	// #S###
	// #.###
	// #####
	// ###E#
}
