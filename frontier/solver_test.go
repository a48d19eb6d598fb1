package frontier_test

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

// fromArt builds a grid from rows of '#' (wall), '.' (path) and 'E' (end).
// Start is always (1,1) and must be open in the art.
func fromArt(t *testing.T, art ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(art), len(art[0]))
	require.NoError(t, err)
	for r, line := range art {
		for c, ch := range line {
			at := grid.Coord{Row: r, Col: c}
			k := grid.Path
			if ch == '#' {
				k = grid.Wall
			}
			require.NoError(t, g.SetCell(at, k, nil))
			if ch == 'E' {
				require.NoError(t, g.SetEnd(at))
			}
		}
	}
	return g
}

// solve steps s until a terminal status, failing after limit calls.
func solve(t *testing.T, s *frontier.Solver, m *metrics.Counter, limit int) frontier.Status {
	t.Helper()
	for i := 0; i < limit; i++ {
		if st := s.Step(m); st != frontier.Progress {
			return st
		}
	}
	t.Fatalf("solver did not terminate within %d steps", limit)
	return frontier.Progress
}

func carved(t *testing.T, rows, cols int, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	c := generator.NewCarver(g, generator.WithSeed(seed))
	for {
		st, err := c.Step(nil)
		require.NoError(t, err)
		if st == generator.Complete {
			return g
		}
	}
}

func TestSolver_Lifecycle(t *testing.T) {
	g := fromArt(t,
		"#####",
		"#..E#",
		"#####",
	)
	s := frontier.New(g)
	assert.Equal(t, frontier.StateUninitialized, s.State())
	assert.Nil(t, s.Path())

	assert.Equal(t, frontier.Progress, s.Step(nil))
	assert.Equal(t, frontier.StateSearching, s.State())
	assert.Equal(t, frontier.Progress, s.Step(nil))
	assert.Equal(t, frontier.Solved, s.Step(nil))
	assert.Equal(t, frontier.StateSolved, s.State())
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}, s.Path())

	// Terminal state is sticky.
	assert.Equal(t, frontier.Solved, s.Step(nil))
	assert.Len(t, s.Visited(), 3)
}

func TestSolver_StartIsEnd(t *testing.T) {
	g := fromArt(t,
		"###",
		"#E#",
		"###",
	)
	s := frontier.New(g)
	assert.Equal(t, frontier.Solved, s.Step(nil))
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, s.Path())
}

// TestSolver_UnreachableEnd walls off the end completely.
func TestSolver_UnreachableEnd(t *testing.T) {
	g := fromArt(t,
		"#######",
		"#...#.#",
		"#...#E#",
		"#######",
	)
	s := frontier.New(g)
	m := metrics.NewCounter()

	st := solve(t, s, m, 100)
	assert.Equal(t, frontier.Exhausted, st)
	assert.Equal(t, frontier.StateExhausted, s.State())
	assert.Zero(t, s.OpenLen())
	assert.Nil(t, s.Path())
	assert.Len(t, s.Visited(), 6)
	assert.Equal(t, frontier.Exhausted, s.Step(m), "exhausted is terminal")

	snap := m.Snapshot()
	assert.Equal(t, 6, snap.Steps)
	assert.Equal(t, 6, snap.Pushes)
	assert.Equal(t, 6, snap.Pops)
	assert.Zero(t, snap.MainMemoryWrites)
}

// TestSolver_FIFOTieBreak checks that equal-cost members expand in arrival
// order, neighbors arriving in E, S, W, N order.
func TestSolver_FIFOTieBreak(t *testing.T) {
	g := fromArt(t,
		"#####",
		"#...#",
		"#...#",
		"#..E#",
		"#####",
	)
	s := frontier.New(g)
	require.Equal(t, frontier.Progress, s.Step(nil))
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 1}}, s.Open())

	require.Equal(t, frontier.Progress, s.Step(nil))
	require.Equal(t, frontier.Progress, s.Step(nil))
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}, s.Visited())
	// Layer two arrives as (1,3), (2,2) from (1,2), then (3,1) from (2,1).
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 3}, {Row: 2, Col: 2}, {Row: 3, Col: 1}}, s.Open())

	st := solve(t, s, nil, 100)
	require.Equal(t, frontier.Solved, st)
	assert.Len(t, s.Path(), 5)
}

// TestSolver_OpenClosedDisjoint checks the membership invariant at every step.
func TestSolver_OpenClosedDisjoint(t *testing.T) {
	g, _ := grid.New(25, 25)
	require.NoError(t, generator.FillOpen(g, generator.WithSeed(17)))
	s := frontier.New(g)

	for i := 0; i < 25*25; i++ {
		st := s.Step(nil)
		for _, c := range s.Open() {
			assert.False(t, s.InClosed(c), "%v in both open and closed", c)
			_, known := s.Cost(c)
			assert.True(t, known, "%v open without a cost", c)
		}
		if st != frontier.Progress {
			break
		}
	}
	assert.NotEqual(t, frontier.StateSearching, s.State())
}

// TestSolver_MatchesReferenceBFS compares path lengths with gridgraph's BFS
// on random open mazes, solvable or not.
func TestSolver_MatchesReferenceBFS(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, _ := grid.New(21, 31)
		require.NoError(t, generator.FillOpen(g, generator.WithSeed(seed)))
		gg, err := gridgraph.New(g)
		require.NoError(t, err)

		s := frontier.New(g)
		st := solve(t, s, nil, 21*31+1)

		want, refErr := gg.Distance(g.Start(), g.End())
		if refErr != nil {
			assert.Equal(t, frontier.Exhausted, st, "seed %d", seed)
			continue
		}
		require.Equal(t, frontier.Solved, st, "seed %d", seed)
		path := s.Path()
		assert.Equal(t, want, len(path)-1, "seed %d", seed)
		assertContiguous(t, g, path)
		cost, _ := s.Cost(g.End())
		assert.Equal(t, want, cost)
	}
}

func TestSolver_CarvedMazeUniquePath(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := carved(t, 31, 41, seed)
		gg, _ := gridgraph.New(g)
		want, err := gg.ShortestPath(g.Start(), g.End())
		require.NoError(t, err)

		s := frontier.New(g)
		require.Equal(t, frontier.Solved, solve(t, s, nil, 31*41))
		assert.Equal(t, want, s.Path(), "seed %d", seed)
	}
}

func TestSolver_ResetClearsEverything(t *testing.T) {
	g := carved(t, 15, 15, 8)
	s := frontier.New(g)
	for i := 0; i < 10; i++ {
		s.Step(nil)
	}
	s.Reset()

	assert.Equal(t, frontier.StateUninitialized, s.State())
	assert.Zero(t, s.OpenLen())
	assert.Zero(t, s.ClosedLen())
	assert.Empty(t, s.Visited())
	assert.Nil(t, s.Path())
	_, known := s.Cost(g.Start())
	assert.False(t, known)

	// A fresh run after reset gives the same answer as a fresh solver.
	require.Equal(t, frontier.Solved, solve(t, s, nil, 225))
	fresh := frontier.New(g)
	require.Equal(t, frontier.Solved, solve(t, fresh, nil, 225))
	assert.Equal(t, fresh.Path(), s.Path())
	assert.Equal(t, fresh.Visited(), s.Visited())
}

// TestSolver_ReadsEndOnFirstStep allows construction before generation ends.
func TestSolver_ReadsEndOnFirstStep(t *testing.T) {
	g := fromArt(t,
		"######",
		"#....#",
		"######",
	)
	s := frontier.New(g)
	require.NoError(t, g.SetEnd(grid.Coord{Row: 1, Col: 4}))
	require.Equal(t, frontier.Solved, solve(t, s, nil, 10))
	assert.Len(t, s.Path(), 4)
}

func assertContiguous(t *testing.T, g *grid.Grid, path []grid.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.End(), path[len(path)-1])
	for i, c := range path {
		assert.True(t, g.IsPath(c), "%v is not path", c)
		if i == 0 {
			continue
		}
		dr, dc := c.Row-path[i-1].Row, c.Col-path[i-1].Col
		assert.Equal(t, 1, dr*dr+dc*dc, "non-adjacent step %v -> %v", path[i-1], c)
	}
}
