package metrics

// Snapshot is a point-in-time copy of a Counter.
// AuxMemoryWrites always equals Pushes + Pops.
type Snapshot struct {
	Steps            int // discrete algorithm steps
	MainMemoryWrites int // grid cell mutations
	AuxMemoryWrites  int // stack/queue operations (Pushes + Pops)
	Pushes           int // insertions into auxiliary memory
	Pops             int // removals from auxiliary memory
}

// Source is anything that can report a Snapshot; *Counter implements it.
type Source interface {
	Snapshot() Snapshot
}
