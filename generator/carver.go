package generator

import (
	"math/rand"

	"github.com/katalvlaran/mazestep/grid"
	"github.com/katalvlaran/mazestep/metrics"
)

// Carver is a steppable randomized depth-first maze generator.
// It holds the only mutable reference to its grid while generation runs.
// A Carver is not safe for concurrent use.
type Carver struct {
	g           *grid.Grid
	rng         *rand.Rand
	stack       []grid.Coord // frontier path back to start; top is last
	steps       []grid.Coord // carved destinations in order, append-only
	provisional grid.Coord   // end marker placed by the grid before carving
	done        bool
}

// NewCarver returns a Carver over g with its stack seeded with g.Start().
// g should be freshly built or Reset.
func NewCarver(g *grid.Grid, opts ...Option) *Carver {
	o := buildOptions(opts)
	c := &Carver{g: g, rng: o.Rand}
	c.Reset()

	return c
}

// Reset clears the carved log and reseeds the stack with the grid's start.
// It does not touch the grid; callers reset the grid first.
func (c *Carver) Reset() {
	c.stack = append(c.stack[:0], c.g.Start())
	c.steps = c.steps[:0]
	c.provisional = c.g.End()
	c.done = false
}

// Step performs at most one carve or backtrack and records it on m.
// When the stack is already empty it places the end on the last carved cell
// (or on start, if nothing was ever carved) and reports Complete. Further
// calls keep reporting Complete without side effects.
func (c *Carver) Step(m *metrics.Counter) (Status, error) {
	if len(c.stack) == 0 {
		if !c.done {
			if err := c.finish(); err != nil {
				return Complete, err
			}
		}
		return Complete, nil
	}

	// 1) Peek the current cell.
	cur := c.stack[len(c.stack)-1]

	// 2) Try headings in random order; act on the first viable one only.
	for _, d := range shuffledDirections(c.rng) {
		dst := cur.Step(d, 2)
		if !c.g.Interior(dst) || c.g.Kind(dst) != grid.Wall {
			continue
		}
		if err := c.g.SetCell(cur.Step(d, 1), grid.Path, m); err != nil {
			return Progress, err
		}
		if err := c.g.SetCell(dst, grid.Path, m); err != nil {
			return Progress, err
		}
		c.steps = append(c.steps, dst)
		c.stack = append(c.stack, dst)
		m.Push()
		m.Step()

		return Progress, nil
	}

	// 3) Dead end: backtrack.
	c.stack = c.stack[:len(c.stack)-1]
	m.Pop()
	m.Step()

	return Progress, nil
}

// finish moves the end to the carving's natural endpoint and seals the
// provisional border marker so the border stays solid. The seal is grid
// bookkeeping and is not recorded as a main-memory write.
func (c *Carver) finish() error {
	end := c.g.Start()
	if n := len(c.steps); n > 0 {
		end = c.steps[n-1]
	}
	if err := c.g.SetEnd(end); err != nil {
		return err
	}
	if c.provisional != end && !c.g.Interior(c.provisional) {
		if err := c.g.SetCell(c.provisional, grid.Wall, nil); err != nil {
			return err
		}
	}
	c.done = true

	return nil
}

// Done reports whether generation has completed.
func (c *Carver) Done() bool {
	return c.done
}

// Stack returns a copy of the current stack, bottom (start) first.
func (c *Carver) Stack() []grid.Coord {
	return append([]grid.Coord(nil), c.stack...)
}

// Steps returns a copy of the carved destinations in carving order.
func (c *Carver) Steps() []grid.Coord {
	return append([]grid.Coord(nil), c.steps...)
}

// Top returns the cell currently being extended and true, or false once the
// stack is empty.
func (c *Carver) Top() (grid.Coord, bool) {
	if len(c.stack) == 0 {
		return grid.Coord{}, false
	}
	return c.stack[len(c.stack)-1], true
}
