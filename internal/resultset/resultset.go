// Package resultset holds the deduplicated, totally-ordered collection of
// found rectangles behind a single mutex.
package resultset

import (
	"sort"
	"sync"

	"slimechunkfinder/internal/rectfind"
)

// Set is safe for concurrent Insert and Snapshot calls. It never evicts;
// results only accumulate for the lifetime of a run.
type Set struct {
	mu   sync.Mutex
	rows []rectfind.Rectangle
	seen map[rectfind.Rectangle]struct{}
}

// New returns an empty result set.
func New() *Set {
	return &Set{seen: make(map[rectfind.Rectangle]struct{})}
}

// Insert adds r if no rectangle with the same identity (X, Z, Width,
// Height) is already present. It reports whether r was new. Insertion is
// atomic with respect to other Insert/Snapshot calls: no caller ever
// observes a partially-applied insert.
func (s *Set) Insert(r rectfind.Rectangle) bool {
	key := r.Identity()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.seen[key]; dup {
		return false
	}
	s.seen[key] = struct{}{}
	i := sort.Search(len(s.rows), func(i int) bool { return !s.rows[i].Less(r) })
	s.rows = append(s.rows, rectfind.Rectangle{})
	copy(s.rows[i+1:], s.rows[i:])
	s.rows[i] = r
	return true
}

// Snapshot returns an ordered copy of every rectangle inserted so far,
// following Rectangle.Less (area desc, distance asc, x asc, z asc). The
// caller may retain the returned slice freely; it never aliases the
// set's internal storage.
func (s *Set) Snapshot() []rectfind.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]rectfind.Rectangle, len(s.rows))
	copy(out, s.rows)
	return out
}

// Len reports the current number of distinct rectangles.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
