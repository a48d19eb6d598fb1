package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazestep/metrics"
)

// New builds a rows × cols grid filled with Wall, with start=(1,1) and a
// provisional end=(rows-1, cols-2) opened to Path.
// Returns ErrInvalidDimension if rows or cols is below MinDimension.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Kind, rows*cols),
	}
	g.Reset()

	return g, nil
}

// Reset reinitializes g in place: all Wall, start and provisional end opened.
// It is a bulk reinitialization and records no metrics.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Wall
	}
	g.start = Coord{Row: 1, Col: 1}
	g.end = g.DefaultEnd()
	g.cells[g.index(g.start)] = Path
	g.cells[g.index(g.end)] = Path
}

// DefaultEnd returns the provisional end coordinate (rows-1, cols-2).
func (g *Grid) DefaultEnd() Coord {
	return Coord{Row: g.rows - 1, Col: g.cols - 2}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Height is an alias for Rows.
func (g *Grid) Height() int { return g.rows }

// Width is an alias for Cols.
func (g *Grid) Width() int { return g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Interior reports whether c lies strictly inside the border.
func (g *Grid) Interior(c Coord) bool {
	return c.Row > 0 && c.Row < g.rows-1 && c.Col > 0 && c.Col < g.cols-1
}

// Kind returns the kind of cell c. Coordinates outside the grid read as Wall.
func (g *Grid) Kind(c Coord) Kind {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// IsPath reports whether c is in bounds and walkable.
func (g *Grid) IsPath(c Coord) bool {
	return g.Kind(c) == Path
}

// SetCell sets cell c to k and records one main-memory write on m.
// A nil m makes the write unaccounted (bulk fills, bookkeeping).
// Returns ErrOutOfBounds if c lies outside the grid; nothing is recorded then.
func (g *Grid) SetCell(c Coord, k Kind, m *metrics.Counter) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.cells[g.index(c)] = k
	m.MainWrite(1)

	return nil
}

// SetEnd moves the end marker to c. The cell kind is left untouched.
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: end %v in %dx%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.end = c

	return nil
}

// Snapshot returns a deep copy of the cells as [row][col].
func (g *Grid) Snapshot() [][]Kind {
	out := make([][]Kind, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Kind, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// CountPath returns the number of Path cells.
func (g *Grid) CountPath() int {
	n := 0
	for _, k := range g.cells {
		if k == Path {
			n++
		}
	}
	return n
}

// String renders g as ASCII: '#' wall, ' ' path, 'S' start, 'E' end.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Overlay marks a set of cells with a rune when rendering.
// Later overlays win over earlier ones; start and end markers always win.
type Overlay struct {
	Mark  rune
	Cells []Coord
}

// Render draws g as ASCII with the given overlays applied on top.
// Complexity: O(rows×cols + total overlay cells).
func (g *Grid) Render(overlays []Overlay) string {
	canvas := make([]rune, len(g.cells))
	for i, k := range g.cells {
		if k == Wall {
			canvas[i] = '#'
		} else {
			canvas[i] = ' '
		}
	}
	for _, o := range overlays {
		for _, c := range o.Cells {
			if g.InBounds(c) {
				canvas[g.index(c)] = o.Mark
			}
		}
	}
	canvas[g.index(g.start)] = 'S'
	canvas[g.index(g.end)] = 'E'

	var sb strings.Builder
	sb.Grow(len(canvas) + g.rows)
	for r := 0; r < g.rows; r++ {
		sb.WriteString(string(canvas[r*g.cols : (r+1)*g.cols]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps c to a row-major offset: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}
