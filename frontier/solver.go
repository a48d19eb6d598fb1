package frontier

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/mazestep/grid"
	"github.com/katalvlaran/mazestep/metrics"
)

// Solver holds the reentrant state of one incremental search.
// It reads the maze but never writes it. Not safe for concurrent use.
type Solver struct {
	maze  Maze
	state State
	start grid.Coord
	end   grid.Coord

	open    openQueue                 // pending expansion
	inOpen  map[grid.Coord]*openItem  // exact open membership
	closed  map[grid.Coord]struct{}   // expanded
	cost    map[grid.Coord]int        // best known cost from start
	prev    map[grid.Coord]grid.Coord // predecessor on best route
	visited []grid.Coord              // expansion log, for animation
	path    []grid.Coord              // start..end once solved
	seq     uint64                    // next arrival number
}

// New returns an uninitialized Solver over m. Start and end are read on the
// first Step, so the maze may still be generating when New is called.
func New(m Maze) *Solver {
	s := &Solver{maze: m}
	s.Reset()

	return s
}

// Reset clears open, closed, cost, predecessor, visited and path, and
// returns the solver to StateUninitialized.
func (s *Solver) Reset() {
	s.state = StateUninitialized
	s.open = s.open[:0]
	s.inOpen = make(map[grid.Coord]*openItem)
	s.closed = make(map[grid.Coord]struct{})
	s.cost = make(map[grid.Coord]int)
	s.prev = make(map[grid.Coord]grid.Coord)
	s.visited = s.visited[:0]
	s.path = nil
	s.seq = 0
}

// Step performs exactly one expansion, or reports a terminal status.
// Calling Step after Solved or Exhausted repeats that status with no work.
func (s *Solver) Step(m *metrics.Counter) Status {
	switch s.state {
	case StateSolved:
		return Solved
	case StateExhausted:
		return Exhausted
	case StateUninitialized:
		s.seed(m)
	}

	// 1) Nothing left to expand: the end is unreachable.
	if s.open.Len() == 0 {
		s.state = StateExhausted
		return Exhausted
	}

	// 2) Take the cheapest, earliest-arrived member.
	item := heap.Pop(&s.open).(*openItem)
	delete(s.inOpen, item.at)
	m.Pop()
	m.Step()
	cur := item.at
	s.visited = append(s.visited, cur)

	// 3) Goal test on extraction, so the cost is final.
	if cur == s.end {
		s.path = s.reconstruct(cur)
		s.state = StateSolved
		return Solved
	}

	// 4) Close and relax neighbors.
	s.closed[cur] = struct{}{}
	s.relax(cur, item.cost, m)

	return Progress
}

// seed records start and end and inserts start at cost 0.
func (s *Solver) seed(m *metrics.Counter) {
	s.start = s.maze.Start()
	s.end = s.maze.End()
	s.state = StateSearching
	s.cost[s.start] = 0
	s.insert(s.start, 0, m)
}

// insert adds c to open with the given cost.
func (s *Solver) insert(c grid.Coord, cost int, m *metrics.Counter) {
	item := &openItem{at: c, cost: cost, seq: s.seq}
	s.seq++
	heap.Push(&s.open, item)
	s.inOpen[c] = item
	m.Push()
}

// relax examines the orthogonal neighbors of u in grid.NeighborOrder.
func (s *Solver) relax(u grid.Coord, costU int, m *metrics.Counter) {
	for _, d := range grid.NeighborOrder {
		v := u.Step(d, 1)
		if !s.maze.IsPath(v) {
			continue
		}
		if _, done := s.closed[v]; done {
			continue
		}
		tentative := costU + 1

		item, pending := s.inOpen[v]
		if pending && tentative >= s.cost[v] {
			continue
		}
		s.prev[v] = u
		s.cost[v] = tentative
		if pending {
			s.open.update(item, tentative)
		} else {
			s.insert(v, tentative, m)
		}
	}
}

// reconstruct walks predecessor links from end back to start and reverses.
func (s *Solver) reconstruct(end grid.Coord) []grid.Coord {
	path := []grid.Coord{end}
	for at := end; at != s.start; {
		p, ok := s.prev[at]
		if !ok {
			break
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// State returns the current lifecycle state.
func (s *Solver) State() State {
	return s.state
}

// Path returns a copy of the solution, start..end inclusive, or nil if the
// search has not succeeded.
func (s *Solver) Path() []grid.Coord {
	if s.path == nil {
		return nil
	}
	return append([]grid.Coord(nil), s.path...)
}

// Visited returns a copy of the expansion log in expansion order.
func (s *Solver) Visited() []grid.Coord {
	return append([]grid.Coord(nil), s.visited...)
}

// Open returns the pending coordinates in extraction order.
// Complexity: O(k log k) for k open members.
func (s *Solver) Open() []grid.Coord {
	items := append(openQueue(nil), s.open...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].cost != items[j].cost {
			return items[i].cost < items[j].cost
		}
		return items[i].seq < items[j].seq
	})
	out := make([]grid.Coord, len(items))
	for i, it := range items {
		out[i] = it.at
	}
	return out
}

// OpenLen returns the number of pending coordinates.
func (s *Solver) OpenLen() int { return s.open.Len() }

// ClosedLen returns the number of expanded, non-goal coordinates.
func (s *Solver) ClosedLen() int { return len(s.closed) }

// InOpen reports whether c is pending expansion.
func (s *Solver) InOpen(c grid.Coord) bool {
	_, ok := s.inOpen[c]
	return ok
}

// InClosed reports whether c has been expanded and closed.
func (s *Solver) InClosed(c grid.Coord) bool {
	_, ok := s.closed[c]
	return ok
}

// Cost returns the best known cost to c and whether c was ever discovered.
func (s *Solver) Cost(c grid.Coord) (int, bool) {
	v, ok := s.cost[c]
	return v, ok
}
