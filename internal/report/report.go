// Package report periodically rewrites the stats snapshot file consumed
// by anyone watching a long-running search from outside the process.
package report

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"slimechunkfinder/internal/rectfind"
)

// Snapshotter rewrites the stats file every call, truncating and
// re-emitting the full table. It shares its rotation policy with
// internal/diag's log sink: if the previous snapshot grew past maxMB (a
// pathologically large rectangle table), it is rolled aside via
// lumberjack.v2 before the fresh truncated snapshot is written, instead
// of growing the file unbounded.
type Snapshotter struct {
	path  string
	sink  *lumberjack.Logger
	maxMB int64
}

// NewSnapshotter opens a rotating sink at path with the given rotation
// threshold in megabytes.
func NewSnapshotter(path string, maxMB int) *Snapshotter {
	if maxMB <= 0 {
		maxMB = 10
	}
	return &Snapshotter{
		path:  path,
		sink:  &lumberjack.Logger{Filename: path, MaxSize: maxMB},
		maxMB: int64(maxMB) * 1024 * 1024,
	}
}

// Write rewrites the snapshot: a one-line stats header followed by the
// columns (Area, Width, Height, BlockX, BlockZ, Euclidean, Manhattan)
// for every rectangle in rows, in the order given (the result set's own
// total order). File I/O errors are returned, not panicked — the caller
// (coordinator's monitor loop) logs and swallows them.
func (s *Snapshotter) Write(chunksProcessed, tilesCompleted, totalUnits, maxDistance int64, rows []rectfind.Rectangle) error {
	if fi, err := os.Stat(s.path); err == nil && fi.Size() > s.maxMB {
		if err := s.sink.Rotate(); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "chunksProcessed=%d tilesCompleted=%d totalUnits=%d maxDistanceReached=%d found=%d\n",
		chunksProcessed, tilesCompleted, totalUnits, maxDistance, len(rows))
	fmt.Fprintln(w, "Area\tWidth\tHeight\tBlockX\tBlockZ\tEuclidean\tManhattan")
	for _, r := range rows {
		cbx := r.CenterBlockX()
		cbz := r.CenterBlockZ()
		euclid := int64(math.Sqrt(float64(r.DistanceSquared)))
		manhattan := absInt64(cbx) + absInt64(cbz)
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.Area, r.Width, r.Height, r.BlockX(), r.BlockZ(), euclid, manhattan)
	}
	return w.Flush()
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
