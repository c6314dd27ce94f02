// Package tile materializes a padded boolean grid over a work unit by
// batching the slime predicate.
package tile

import "slimechunkfinder/internal/predicate"

// Bounds is a half-open rectangle in chunk coordinates, [MinCX, MaxCX) x
// [MinCZ, MaxCZ). Both the global search region and individual work units
// use this shape.
type Bounds struct {
	MinCX, MaxCX int64
	MinCZ, MaxCZ int64
}

// Empty reports whether the bounds enclose no chunks.
func (b Bounds) Empty() bool { return b.MaxCX <= b.MinCX || b.MaxCZ <= b.MinCZ }

// Tile is a dense boolean grid covering a padded work unit. Grid is indexed
// [row][col] with row = z - OriginZ, col = x - OriginX, matching the
// row-major (z outer, x inner) fill order of Scan.
type Tile struct {
	Grid           [][]bool
	OriginX        int64
	OriginZ        int64
	width, height  int
	unpaddedChunks int64
}

// Width and Height report the grid dimensions; they implement
// rectfind.Grid alongside At.
func (t *Tile) Width() int  { return t.width }
func (t *Tile) Height() int { return t.height }

// At implements rectfind.Grid.
func (t *Tile) At(row, col int) bool { return t.Grid[row][col] }

// UnpaddedChunks is the chunk count of the original, unpadded work unit —
// the quantity the coordinator adds to the global chunksProcessed counter
// for this tile. Padding chunks are re-scanned by neighboring tiles and must
// not be double-counted.
func (t *Tile) UnpaddedChunks() int64 { return t.unpaddedChunks }

const batchSize = 16

// Scan fills a padded tile for unit, clamped to searchBounds, and streams
// the slime predicate over it in batches of 16 via
// predicate.SlimeBatch16. minDim drives the padding width (minDim-1 on
// every side) so the rectangle finder can discover matches that straddle
// a work-unit border.
func Scan(unit Bounds, searchBounds Bounds, minDim int, seed int64) *Tile {
	pad := int64(minDim - 1)
	if pad < 0 {
		pad = 0
	}

	pMinX := clampInt64(unit.MinCX-pad, searchBounds.MinCX, searchBounds.MaxCX)
	pMaxX := clampInt64(unit.MaxCX+pad, searchBounds.MinCX, searchBounds.MaxCX)
	pMinZ := clampInt64(unit.MinCZ-pad, searchBounds.MinCZ, searchBounds.MaxCZ)
	pMaxZ := clampInt64(unit.MaxCZ+pad, searchBounds.MinCZ, searchBounds.MaxCZ)

	t := &Tile{
		OriginX:        pMinX,
		OriginZ:        pMinZ,
		unpaddedChunks: unpaddedCount(unit),
	}

	w := pMaxX - pMinX
	h := pMaxZ - pMinZ
	if w < int64(minDim) || h < int64(minDim) {
		t.width, t.height = int(maxInt64(w, 0)), int(maxInt64(h, 0))
		t.Grid = make([][]bool, t.height)
		for i := range t.Grid {
			t.Grid[i] = make([]bool, t.width)
		}
		return t
	}

	t.width, t.height = int(w), int(h)
	t.Grid = make([][]bool, t.height)
	for i := range t.Grid {
		t.Grid[i] = make([]bool, t.width)
	}

	var xs, zs [batchSize]int64
	var rows, cols [batchSize]int
	n := 0
	flush := func() {
		if n == 0 {
			return
		}
		var out [batchSize]bool
		predicate.SlimeBatch16(&xs, &zs, seed, &out)
		for i := 0; i < n; i++ {
			t.Grid[rows[i]][cols[i]] = out[i]
		}
		n = 0
	}

	for row, cz := 0, pMinZ; cz < pMaxZ; row, cz = row+1, cz+1 {
		for col, cx := 0, pMinX; cx < pMaxX; col, cx = col+1, cx+1 {
			xs[n], zs[n] = cx, cz
			rows[n], cols[n] = row, col
			n++
			if n == batchSize {
				flush()
			}
		}
	}
	flush()

	return t
}

func unpaddedCount(b Bounds) int64 {
	if b.Empty() {
		return 0
	}
	return (b.MaxCX - b.MinCX) * (b.MaxCZ - b.MinCZ)
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
