package tile

import (
	"testing"

	"slimechunkfinder/internal/predicate"
)

const seed = 413563856

func TestScanMatchesPredicateRowMajor(t *testing.T) {
	unit := Bounds{MinCX: 1490, MaxCX: 1500, MinCZ: 8280, MaxCZ: 8290}
	bounds := Bounds{MinCX: -1000000, MaxCX: 1000000, MinCZ: -1000000, MaxCZ: 1000000}
	tl := Scan(unit, bounds, 3, seed)

	for row := 0; row < tl.Height(); row++ {
		for col := 0; col < tl.Width(); col++ {
			cx := tl.OriginX + int64(col)
			cz := tl.OriginZ + int64(row)
			want := predicate.Slime(cx, cz, seed)
			if tl.At(row, col) != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", cx, cz, tl.At(row, col), want)
			}
		}
	}
}

func TestScanPadsByMinDimMinusOne(t *testing.T) {
	unit := Bounds{MinCX: 0, MaxCX: 10, MinCZ: 0, MaxCZ: 10}
	bounds := Bounds{MinCX: -1000, MaxCX: 1000, MinCZ: -1000, MaxCZ: 1000}
	tl := Scan(unit, bounds, 5, seed)
	if tl.OriginX != -4 || tl.OriginZ != -4 {
		t.Fatalf("expected origin (-4,-4), got (%d,%d)", tl.OriginX, tl.OriginZ)
	}
	if tl.Width() != 18 || tl.Height() != 18 {
		t.Fatalf("expected 18x18 padded tile, got %dx%d", tl.Width(), tl.Height())
	}
}

func TestScanClampsToSearchBounds(t *testing.T) {
	unit := Bounds{MinCX: 0, MaxCX: 5, MinCZ: 0, MaxCZ: 5}
	bounds := Bounds{MinCX: 0, MaxCX: 100, MinCZ: 0, MaxCZ: 100}
	tl := Scan(unit, bounds, 3, seed)
	if tl.OriginX != 0 || tl.OriginZ != 0 {
		t.Fatalf("padding must clamp at the search region edge, got origin (%d,%d)", tl.OriginX, tl.OriginZ)
	}
}

func TestScanEmptyWhenPaddedDimensionTooSmall(t *testing.T) {
	unit := Bounds{MinCX: 0, MaxCX: 1, MinCZ: 0, MaxCZ: 1}
	bounds := Bounds{MinCX: 0, MaxCX: 1, MinCZ: 0, MaxCZ: 1}
	tl := Scan(unit, bounds, 5, seed)
	if tl.Width() != 1 || tl.Height() != 1 {
		t.Fatalf("expected the clamped 1x1 tile, got %dx%d", tl.Width(), tl.Height())
	}
}

func TestScanUnpaddedChunkCount(t *testing.T) {
	unit := Bounds{MinCX: 100, MaxCX: 110, MinCZ: 200, MaxCZ: 203}
	bounds := Bounds{MinCX: -1000, MaxCX: 1000, MinCZ: -1000, MaxCZ: 1000}
	tl := Scan(unit, bounds, 3, seed)
	if got, want := tl.UnpaddedChunks(), int64(10*3); got != want {
		t.Fatalf("UnpaddedChunks() = %d, want %d", got, want)
	}
}
