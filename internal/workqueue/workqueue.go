// Package workqueue builds the immutable, distance-ordered partition of
// the search region that the worker pool claims tiles from.
package workqueue

import (
	"sort"
	"sync/atomic"

	"slimechunkfinder/internal/tile"
)

// entry is one queued work unit plus its sort key.
type entry struct {
	unit   tile.Bounds
	distSq int64
}

// Queue is the immutable, distance-ordered sequence of work units. After
// Build returns, a Queue is read-only except for its atomic claim index.
type Queue struct {
	entries []entry
	next    atomic.Int64
}

// Build partitions chunkBounds into tiles of at most tileSize chunks per
// side, tiling the region without overlap starting at the region's
// minimum corner, then sorts the tiles ascending by squared distance of
// their chunk-space center from the origin.
func Build(chunkBounds tile.Bounds, tileSize int64) *Queue {
	q := &Queue{}
	if chunkBounds.Empty() || tileSize <= 0 {
		return q
	}

	for z := chunkBounds.MinCZ; z < chunkBounds.MaxCZ; z += tileSize {
		maxZ := minInt64(z+tileSize, chunkBounds.MaxCZ)
		for x := chunkBounds.MinCX; x < chunkBounds.MaxCX; x += tileSize {
			maxX := minInt64(x+tileSize, chunkBounds.MaxCX)
			unit := tile.Bounds{MinCX: x, MaxCX: maxX, MinCZ: z, MaxCZ: maxZ}
			cx := (unit.MinCX + unit.MaxCX) / 2
			cz := (unit.MinCZ + unit.MaxCZ) / 2
			q.entries = append(q.entries, entry{unit: unit, distSq: cx*cx + cz*cz})
		}
	}

	sort.Slice(q.entries, func(i, j int) bool { return q.entries[i].distSq < q.entries[j].distSq })
	return q
}

// Len reports the total number of work units in the queue.
func (q *Queue) Len() int { return len(q.entries) }

// Claim atomically reserves the next unclaimed work unit. ok is false once
// every unit has been claimed.
func (q *Queue) Claim() (unit tile.Bounds, ok bool) {
	i := q.next.Add(1) - 1
	if i < 0 || int(i) >= len(q.entries) {
		return tile.Bounds{}, false
	}
	return q.entries[i].unit, true
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
