package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazestep/frontier"
	"github.com/katalvlaran/mazestep/generator"
	"github.com/katalvlaran/mazestep/grid"
	"github.com/katalvlaran/mazestep/gridgraph"
	"github.com/katalvlaran/mazestep/metrics"
)

// carveAll runs c to completion and returns the number of Step calls made,
// counting the final Complete call. It fails the test if the limit is hit.
func carveAll(t *testing.T, c *generator.Carver, m *metrics.Counter, limit int) (calls, carves, backtracks int) {
	t.Helper()
	for calls < limit {
		before := len(c.Stack())
		st, err := c.Step(m)
		require.NoError(t, err)
		calls++
		if st == generator.Complete {
			return calls, carves, backtracks
		}
		if len(c.Stack()) > before {
			carves++
		} else {
			backtracks++
		}
	}
	t.Fatalf("carving did not complete within %d calls", limit)
	return
}

func TestCarver_TerminatesAndFormsTree(t *testing.T) {
	sizes := [][2]int{{3, 3}, {4, 4}, {5, 5}, {5, 9}, {7, 7}, {8, 11}, {21, 21}, {35, 35}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := grid.New(sz[0], sz[1])
			require.NoError(t, err)
			c := generator.NewCarver(g, generator.WithSeed(seed))
			m := metrics.NewCounter()

			calls, _, _ := carveAll(t, c, m, sz[0]*sz[1])
			assert.LessOrEqual(t, calls, sz[0]*sz[1], "size %v", sz)
			assert.True(t, c.Done())
			assert.Empty(t, c.Stack())

			gg, err := gridgraph.New(g)
			require.NoError(t, err)
			assert.True(t, gg.IsTree(), "size %v seed %d: carved maze must be a spanning tree\n%s", sz, seed, g)
		}
	}
}

// TestCarver_MetricsAccounting checks writes, pushes and pops against the
// observed carve and backtrack actions.
func TestCarver_MetricsAccounting(t *testing.T) {
	g, _ := grid.New(15, 21)
	c := generator.NewCarver(g, generator.WithSeed(7))
	m := metrics.NewCounter()

	_, carves, backtracks := carveAll(t, c, m, 15*21)
	s := m.Snapshot()

	assert.Equal(t, 2*carves, s.MainMemoryWrites)
	assert.Equal(t, carves, s.Pushes)
	assert.Equal(t, backtracks, s.Pops)
	assert.Equal(t, s.Pushes+s.Pops, s.AuxMemoryWrites)
	assert.Equal(t, carves+backtracks, s.Steps)
	assert.Equal(t, carves, len(c.Steps()))
	// Every lattice cell except start is pushed once; every cell is popped once.
	lattice := 7 * 10
	assert.Equal(t, lattice-1, carves)
	assert.Equal(t, lattice, backtracks)
}

func TestCarver_BorderStaysWall(t *testing.T) {
	g, _ := grid.New(9, 13)
	c := generator.NewCarver(g, generator.WithSeed(3))
	carveAll(t, c, nil, 9*13)

	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			at := grid.Coord{Row: r, Col: col}
			if !g.Interior(at) {
				assert.Equal(t, grid.Wall, g.Kind(at), "border cell %v", at)
			}
		}
	}
}

func TestCarver_EndIsLastCarvedStep(t *testing.T) {
	g, _ := grid.New(11, 11)
	c := generator.NewCarver(g, generator.WithSeed(11))
	carveAll(t, c, nil, 121)

	steps := c.Steps()
	require.NotEmpty(t, steps)
	assert.Equal(t, steps[len(steps)-1], g.End())
	assert.Equal(t, grid.Path, g.Kind(g.End()))
	assert.Equal(t, 1, g.End().Row%2)
	assert.Equal(t, 1, g.End().Col%2)
}

// TestCarver_NoInterior covers grids whose only lattice cell is start.
func TestCarver_NoInterior(t *testing.T) {
	for _, sz := range [][2]int{{3, 3}, {4, 4}, {4, 3}} {
		g, _ := grid.New(sz[0], sz[1])
		c := generator.NewCarver(g, generator.WithSeed(1))
		m := metrics.NewCounter()

		st, err := c.Step(m) // pops start: nothing to carve
		require.NoError(t, err)
		assert.Equal(t, generator.Progress, st)
		st, err = c.Step(m)
		require.NoError(t, err)
		assert.Equal(t, generator.Complete, st)
		assert.Equal(t, g.Start(), g.End(), "size %v: end falls back to start", sz)
		assert.Empty(t, c.Steps())
		assert.Equal(t, 1, m.Snapshot().Pops)
	}
}

func TestCarver_CompleteIsIdempotent(t *testing.T) {
	g, _ := grid.New(7, 7)
	c := generator.NewCarver(g, generator.WithSeed(5))
	m := metrics.NewCounter()
	carveAll(t, c, m, 49)

	before := m.Snapshot()
	end := g.End()
	for i := 0; i < 3; i++ {
		st, err := c.Step(m)
		require.NoError(t, err)
		assert.Equal(t, generator.Complete, st)
	}
	assert.Equal(t, before, m.Snapshot())
	assert.Equal(t, end, g.End())
}

func TestCarver_SeedIsReproducible(t *testing.T) {
	run := func() string {
		g, _ := grid.New(15, 15)
		c := generator.NewCarver(g, generator.WithSeed(99))
		carveAll(t, c, nil, 225)
		return g.String()
	}
	assert.Equal(t, run(), run())
}

func TestCarver_ResetReseeds(t *testing.T) {
	g, _ := grid.New(9, 9)
	c := generator.NewCarver(g, generator.WithSeed(2))
	for i := 0; i < 5; i++ {
		_, err := c.Step(nil)
		require.NoError(t, err)
	}
	g.Reset()
	c.Reset()

	assert.Equal(t, []grid.Coord{g.Start()}, c.Stack())
	assert.Empty(t, c.Steps())
	assert.False(t, c.Done())
	top, ok := c.Top()
	assert.True(t, ok)
	assert.Equal(t, g.Start(), top)
}

// TestCarver_FiveByFive pins the small scenario: four lattice cells, so
// three carves, four backtracks and one completing call.
func TestCarver_FiveByFive(t *testing.T) {
	g, _ := grid.New(5, 5)
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, g.Start())
	c := generator.NewCarver(g, generator.WithSeed(4))
	m := metrics.NewCounter()

	calls, carves, backtracks := carveAll(t, c, m, 25)
	assert.Equal(t, 8, calls)
	assert.Equal(t, 3, carves)
	assert.Equal(t, 4, backtracks)

	gg, _ := gridgraph.New(g)
	d, err := gg.Distance(g.Start(), g.End())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, 2)
	assert.LessOrEqual(t, d, 6)

	// 1) The frontier solver agrees with the reference distance.
	fs := frontier.New(g)
	for fs.Step(nil) == frontier.Progress {
	}
	require.Equal(t, frontier.StateSolved, fs.State())
	path := fs.Path()
	require.Equal(t, d, len(path)-1)

	// 2) Lattice cells on the path are carved cells, in carving order, ending
	// at the last carve; the cells between them are the knocked-out walls.
	steps := c.Steps()
	order := make(map[grid.Coord]int, len(steps))
	for i, at := range steps {
		order[at] = i
	}
	require.Equal(t, g.Start(), path[0])
	require.Equal(t, steps[len(steps)-1], path[len(path)-1])
	prev := -1
	for i := 2; i < len(path); i += 2 {
		idx, carved := order[path[i]]
		require.True(t, carved, "path cell %v was not carved", path[i])
		assert.Greater(t, idx, prev)
		prev = idx

		mid := grid.Coord{Row: (path[i-2].Row + path[i].Row) / 2, Col: (path[i-2].Col + path[i].Col) / 2}
		assert.Equal(t, mid, path[i-1])
	}
}
