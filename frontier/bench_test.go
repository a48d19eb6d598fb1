package frontier_test

import (
	"testing"

	"github.com/katalvlaran/mazestep/frontier"
	"github.com/katalvlaran/mazestep/generator"
	"github.com/katalvlaran/mazestep/grid"
)

// BenchmarkSolve measures a full incremental solve of a carved 151×151 maze.
// Complexity: O(V log V)
func BenchmarkSolve(b *testing.B) {
	g, err := grid.New(151, 151)
	if err != nil {
		b.Fatalf("grid.New: %v", err)
	}
	c := generator.NewCarver(g, generator.WithSeed(42))
	for {
		st, err := c.Step(nil)
		if err != nil {
			b.Fatalf("Step: %v", err)
		}
		if st == generator.Complete {
			break
		}
	}
	s := frontier.New(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset()
		for s.Step(nil) == frontier.Progress {
		}
	}
}
