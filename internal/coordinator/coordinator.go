// Package coordinator owns the worker pool and monitor loop: it builds
// the work queue, spawns N workers that claim tiles and merge their
// rectangles into the result set, and runs a periodic monitor that
// snapshots progress to stdout and to the stats file.
package coordinator

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"slimechunkfinder/internal/config"
	"slimechunkfinder/internal/diag"
	"slimechunkfinder/internal/rectfind"
	"slimechunkfinder/internal/report"
	"slimechunkfinder/internal/resultset"
	"slimechunkfinder/internal/tile"
	"slimechunkfinder/internal/workqueue"
)

// Coordinator runs one complete search over a configured region.
type Coordinator struct {
	cfg      config.Config
	queue    *workqueue.Queue
	results  *resultset.Set
	counters diag.Counters
	logger   *diag.Logger
	terminal *diag.Terminal
	snapshot *report.Snapshotter

	pause atomic.Bool
}

// New builds a Coordinator from cfg. The work queue is constructed
// immediately and is immutable for the Coordinator's lifetime, per spec
// §3's lifecycle invariant.
func New(cfg config.Config, logger *diag.Logger, terminal *diag.Terminal, snapshot *report.Snapshotter) *Coordinator {
	chunkBounds := cfg.SearchBounds.ToChunkBounds()
	return &Coordinator{
		cfg:      cfg,
		queue:    workqueue.Build(chunkBounds, cfg.WorkUnitSize),
		results:  resultset.New(),
		logger:   logger,
		terminal: terminal,
		snapshot: snapshot,
	}
}

// Pause sets the pause flag; workers finish their in-progress tile, then
// exit instead of claiming another one.
func (c *Coordinator) Pause() { c.pause.Store(true) }

// Results exposes the underlying result set for callers that want a
// snapshot without waiting on Run (e.g. a --selfcheck harness or tests).
func (c *Coordinator) Results() *resultset.Set { return c.results }

// Counters exposes the run's progress counters.
func (c *Coordinator) Counters() *diag.Counters { return &c.counters }

// QueueLen reports the total number of work units, for progress
// percentage reporting.
func (c *Coordinator) QueueLen() int { return c.queue.Len() }

// Run spawns the worker pool and monitor, blocks until every worker has
// drained the queue (or pause fired), and returns once both have joined.
func (c *Coordinator) Run() {
	n := c.cfg.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
		if n < 1 {
			n = 8
		}
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			c.worker()
		}()
	}

	stopMonitor := make(chan struct{})
	var monWg sync.WaitGroup
	if c.snapshot != nil {
		monWg.Add(1)
		go func() {
			defer monWg.Done()
			c.monitor(stopMonitor)
		}()
	}

	wg.Wait()
	c.pause.Store(true)
	close(stopMonitor)
	monWg.Wait()
}

// worker loops claiming tiles until paused or the queue is exhausted:
// check pause, claim a tile, scan it, extract rectangles, merge, advance
// maxDistanceReached.
func (c *Coordinator) worker() {
	minDim := c.cfg.MinRectDimension
	searchBounds := c.cfg.SearchBounds.ToChunkBounds()

	for {
		if c.pause.Load() {
			return
		}
		unit, ok := c.queue.Claim()
		if !ok {
			return
		}

		t := tile.Scan(unit, searchBounds, minDim, c.cfg.WorldSeed)
		rectfind.Find(t, t.OriginX, t.OriginZ, minDim, c.results)

		c.counters.AddChunks(t.UnpaddedChunks())
		c.counters.IncTiles()

		cx := (unit.MinCX + unit.MaxCX) / 2
		cz := (unit.MinCZ + unit.MaxCZ) / 2
		dist := int64(math.Sqrt(float64(cx*cx + cz*cz)))
		c.counters.RaiseMaxDistance(dist)
	}
}

// monitor runs every StatsIntervalSeconds (default 5) until stop is
// closed, rendering progress to the terminal and rewriting the stats
// file. File I/O errors here are logged and swallowed rather than
// aborting the run.
func (c *Coordinator) monitor(stop <-chan struct{}) {
	interval := time.Duration(c.cfg.StatsIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			c.flush()
			return
		case <-ticker.C:
			c.flush()
		}
	}
}

func (c *Coordinator) flush() {
	rows := c.results.Snapshot()
	chunks := c.counters.ChunksProcessed.Load()
	tiles := c.counters.TilesCompleted.Load()
	dist := c.counters.MaxDistance.Load()

	if c.terminal != nil {
		c.terminal.Progress(tiles, int64(c.queue.Len()), chunks, dist, int64(len(rows)))
	}
	if c.snapshot != nil {
		if err := c.snapshot.Write(chunks, tiles, int64(c.queue.Len()), dist, rows); err != nil && c.logger != nil {
			c.logger.Warn("report", "stats snapshot write failed", err)
		}
	}
}
