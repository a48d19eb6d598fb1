// Package metrics counts the work performed by maze generators and solvers.
//
// What:
//
//   - Counter tracks three figures used by the visualizer legend:
//   - Steps:            discrete algorithm steps (carve, backtrack, expansion, move)
//   - MainMemoryWrites: grid cell mutations
//   - AuxMemoryWrites:  pushes and pops against a stack or queue
//   - Snapshot is an immutable copy suitable for polling after every step.
//   - Collector exposes any Source as Prometheus counters.
//
// A nil *Counter is valid and discards every increment, so callers that do
// not care about accounting (open fill, bookkeeping writes) simply pass nil.
//
// Concurrency:
//
//	Counter is not safe for concurrent use. The engine is single-threaded by
//	contract; the Prometheus collector only reads snapshots.
package metrics
