package grid

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest row or column count that leaves a carvable interior.
const MinDimension = 3

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a grid smaller than MinDimension×MinDimension.
	ErrInvalidDimension = errors.New("grid: rows and cols must be at least 3")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Kind is the state of a single cell.
type Kind uint8

const (
	// Wall blocks movement.
	Wall Kind = iota
	// Path is walkable.
	Path
)

// String returns "wall" or "path".
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Coord is a (row, col) pair. Equality is by value, so Coord works as a map key.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Step returns the coordinate n cells away from c in direction d.
func (c Coord) Step(d Direction, n int) Coord {
	delta := d.Delta()
	return Coord{Row: c.Row + delta.Row*n, Col: c.Col + delta.Col*n}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four axis-aligned headings.
// The numbering is fixed: Right and Left rely on it.
type Direction int

const (
	// South increases Row.
	South Direction = iota
	// East increases Col.
	East
	// North decreases Row.
	North
	// West decreases Col.
	West
)

// Directions lists all headings in numeric order.
var Directions = [4]Direction{South, East, North, West}

// NeighborOrder is the fixed expansion order for neighbor scans: E, S, W, N.
var NeighborOrder = [4]Direction{East, South, West, North}

var deltas = [4]Coord{
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	North: {Row: -1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// Delta returns the unit offset for d.
func (d Direction) Delta() Coord {
	return deltas[d&3]
}

// Right returns the heading 90° clockwise from d.
func (d Direction) Right() Direction {
	return (d + 3) % 4
}

// Left returns the heading 90° counter-clockwise from d.
func (d Direction) Left() Direction {
	return (d + 1) % 4
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case South:
		return "south"
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Grid is a rows × cols matrix of cells with a start and an end.
// It is not safe for concurrent use.
type Grid struct {
	rows, cols int
	cells      []Kind // row-major
	start      Coord
	end        Coord
}
