package gridgraph

import (
	"github.com/katalvlaran/mazestep/grid"
)

// ConnectedComponents finds all contiguous regions of Path cells under
// 4-connectivity. Components are returned in row-major order of their first
// cell; cells inside a component are in BFS discovery order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]grid.Coord {
	seen := make([]bool, len(gg.open))
	var comps [][]grid.Coord

	for i0, ok := range gg.open {
		if !ok || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []grid.Coord

		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range offsets {
				v := u.Add(d)
				if !gg.IsOpen(v) {
					continue
				}
				vi := gg.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ComponentOf returns the component containing c, or nil if c is not open.
func (gg *GridGraph) ComponentOf(c grid.Coord) []grid.Coord {
	if !gg.IsOpen(c) {
		return nil
	}
	for _, comp := range gg.ConnectedComponents() {
		for _, x := range comp {
			if x == c {
				return comp
			}
		}
	}
	return nil
}
