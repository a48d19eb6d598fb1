package frontier

import (
	"github.com/katalvlaran/mazestep/grid"
)

// Maze is the read-only view the solver needs. *grid.Grid implements it.
// IsPath must report false for out-of-bounds coordinates.
type Maze interface {
	Start() grid.Coord
	End() grid.Coord
	IsPath(c grid.Coord) bool
}

// State is the solver's lifecycle position.
type State int

const (
	// StateUninitialized means Step has not run since construction or Reset.
	StateUninitialized State = iota
	// StateSearching means the open set may still reach the end.
	StateSearching
	// StateSolved means the end was expanded and Path is populated.
	StateSolved
	// StateExhausted means the open set emptied without reaching the end.
	StateExhausted
)

// String returns a lowercase name for s.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSearching:
		return "searching"
	case StateSolved:
		return "solved"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Status is the result of one Step call.
type Status int

const (
	// Progress means one expansion happened and the search continues.
	Progress Status = iota
	// Solved means the end was reached; the path is available.
	Solved
	// Exhausted means the open set emptied. It is an outcome, not a fault.
	Exhausted
)

// String returns a lowercase name for s.
func (s Status) String() string {
	switch s {
	case Progress:
		return "progress"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}
