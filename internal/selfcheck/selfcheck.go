// Package selfcheck runs a reduced-scale in-process replay of the known
// scenarios and invariants behind the --selfcheck CLI flag, the only
// legitimate way this binary exits non-zero outside of a usage error.
package selfcheck

import (
	"fmt"

	"slimechunkfinder/internal/config"
	"slimechunkfinder/internal/coordinator"
	"slimechunkfinder/internal/predicate"
	"slimechunkfinder/internal/rectfind"
)

const seed = 413563856

// Run executes every scenario and returns the failure messages, if any.
// An empty slice means every scenario passed.
func Run() []string {
	var failures []string
	check := func(name string, ok bool, detail string) {
		if !ok {
			failures = append(failures, fmt.Sprintf("%s: %s", name, detail))
		}
	}

	// The nine chunks the known 3x3 rectangle must cover are all slime chunks.
	coords := [][2]int64{
		{1495, 8282}, {1495, 8283}, {1495, 8284},
		{1496, 8282}, {1496, 8283}, {1496, 8284},
		{1497, 8282}, {1497, 8283}, {1497, 8284},
	}
	for _, c := range coords {
		check("known-patch", predicate.Slime(c[0], c[1], seed),
			fmt.Sprintf("slime(%d,%d,%d) expected true", c[0], c[1], seed))
	}

	// Batched and scalar predicates must agree at boundary coordinates.
	boundary := [][2]int64{
		{0, 0}, {-100, -100}, {5000, 5000}, {12345, 67890}, {-12345, -67890},
		{int64(1<<31-1) / 16, int64(1<<31-1) / 16},
		{-(int64(1) << 31) / 16, -(int64(1) << 31) / 16},
	}
	var xs, zs [16]int64
	for i := range xs {
		c := boundary[i%len(boundary)]
		xs[i], zs[i] = c[0], c[1]
	}
	var out [16]bool
	predicate.SlimeBatch16(&xs, &zs, seed, &out)
	for i := range xs {
		want := predicate.Slime(xs[i], zs[i], seed)
		check("batch-scalar-agreement", out[i] == want, fmt.Sprintf("lane %d batch=%v scalar=%v", i, out[i], want))
	}

	// A small region around the known 3x3 patch must surface the
	// {1495, 8282, 3, 3} rectangle.
	cfg := config.Defaults()
	cfg.WorldSeed = seed
	cfg.MinRectDimension = 3
	cfg.WorkUnitSize = 64
	cfg.SearchBounds.MinBX, cfg.SearchBounds.MaxBX = 1200*16, 1600*16
	cfg.SearchBounds.MinBZ, cfg.SearchBounds.MaxBZ = 8100*16, 8500*16
	cfg.StatsIntervalSeconds = 3600
	co := coordinator.New(cfg, nil, nil, nil)
	co.Run()
	want := rectfind.NewRectangle(1495, 8282, 3, 3).Identity()
	found := false
	for _, r := range co.Results().Snapshot() {
		if r.Identity() == want {
			found = true
			break
		}
	}
	check("known-rectangle", found, "expected rectangle {x:1495 z:8282 w:3 h:3} not found")

	// minRectDimension=1 over a single slime chunk returns exactly one
	// area-1 rectangle.
	cfg4 := config.Defaults()
	cfg4.WorldSeed = seed
	cfg4.MinRectDimension = 1
	cfg4.WorkUnitSize = 64
	cfg4.SearchBounds.MinBX, cfg4.SearchBounds.MaxBX = 1495*16, 1496*16
	cfg4.SearchBounds.MinBZ, cfg4.SearchBounds.MaxBZ = 8282*16, 8283*16
	cfg4.StatsIntervalSeconds = 3600
	co4 := coordinator.New(cfg4, nil, nil, nil)
	co4.Run()
	rows4 := co4.Results().Snapshot()
	check("single-chunk-min-dim-1", len(rows4) == 1 && rows4[0].Area == 1,
		fmt.Sprintf("expected exactly one area-1 rectangle, got %d rows", len(rows4)))

	// T=64 vs T=16 over the same region must yield identical result sets
	// (tile-size independence).
	cfgT16 := cfg
	cfgT16.WorkUnitSize = 16
	coT16 := coordinator.New(cfgT16, nil, nil, nil)
	coT16.Run()
	check("tile-size-independence", sameRectangles(co.Results().Snapshot(), coT16.Results().Snapshot()),
		"T=64 and T=16 produced different result sets")

	return failures
}

func sameRectangles(a, b []rectfind.Rectangle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Identity() != b[i].Identity() {
			return false
		}
	}
	return true
}
