package diag

import "sync/atomic"

// Counters holds the run's monotonic progress counters. Every field uses
// Go's sequentially-consistent atomics; Go's atomic package has no
// weaker, relaxed-ordering primitive to reach for instead (see
// SPEC_FULL.md §5).
type Counters struct {
	ChunksProcessed atomic.Int64
	TilesCompleted  atomic.Int64
	MaxDistance     atomic.Int64
}

// AddChunks adds n to ChunksProcessed.
func (c *Counters) AddChunks(n int64) { c.ChunksProcessed.Add(n) }

// IncTiles increments TilesCompleted by one.
func (c *Counters) IncTiles() { c.TilesCompleted.Add(1) }

// RaiseMaxDistance atomically sets MaxDistance to d if d is greater than
// the current value, via a compare-and-swap retry loop.
func (c *Counters) RaiseMaxDistance(d int64) {
	for {
		cur := c.MaxDistance.Load()
		if d <= cur {
			return
		}
		if c.MaxDistance.CompareAndSwap(cur, d) {
			return
		}
	}
}
