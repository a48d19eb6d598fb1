package generator

import (
	"math/rand"

	"github.com/katalvlaran/mazestep/grid"
)

// defaultRNGSeed is used when callers pass seed==0 to WithSeed.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// seed==0 maps to defaultRNGSeed; any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffledDirections returns the four headings in a uniformly random order
// using an in-place Fisher–Yates shuffle.
// Complexity: O(1).
func shuffledDirections(rng *rand.Rand) [4]grid.Direction {
	dirs := grid.Directions
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}
