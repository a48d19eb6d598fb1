package metrics

// Counter accumulates step and memory-operation counts for one maze run.
// The zero value is ready to use.
type Counter struct {
	steps      int
	mainWrites int
	pushes     int
	pops       int
}

// NewCounter returns a zeroed Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Step records one algorithm step.
func (c *Counter) Step() {
	if c == nil {
		return
	}
	c.steps++
}

// MainWrite records n grid writes. Non-positive n is ignored so the
// counters stay monotonic.
func (c *Counter) MainWrite(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.mainWrites += n
}

// Push records one insertion into auxiliary memory.
func (c *Counter) Push() {
	if c == nil {
		return
	}
	c.pushes++
}

// Pop records one removal from auxiliary memory.
func (c *Counter) Pop() {
	if c == nil {
		return
	}
	c.pops++
}

// Reset zeroes all counters.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	*c = Counter{}
}

// Snapshot returns the current values. A nil Counter reports zeros.
func (c *Counter) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Steps:            c.steps,
		MainMemoryWrites: c.mainWrites,
		AuxMemoryWrites:  c.pushes + c.pops,
		Pushes:           c.pushes,
		Pops:             c.pops,
	}
}
