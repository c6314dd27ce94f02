package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Terminal renders the single-line progress indicator:
// "[Progress] P.PP% (c/t units) | Chunks: K | Distance: D | Found: F",
// overwritten in place with a carriage return. It is concurrency-safe and
// never panics on a write failure — a broken stdout just disables further
// output.
type Terminal struct {
	w       io.Writer
	enabled bool
	lastLen int
	mu      sync.Mutex
}

// NewTerminal builds a progress terminal writing to w (os.Stdout if nil).
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{w: w, enabled: true}
}

// Progress overwrites the current progress line.
func (t *Terminal) Progress(claimed, total, chunks, distance, found int64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(claimed) / float64(total)
	}
	line := fmt.Sprintf("[Progress] %.2f%% (%d/%d units) | Chunks: %d | Distance: %d | Found: %d",
		pct, claimed, total, chunks, distance, found)
	t.printInline(line)
}

// Done finalizes the line with a trailing newline so subsequent output
// does not collide with the last progress overwrite.
func (t *Terminal) Done() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}
	if _, err := io.WriteString(t.w, "\n"); err != nil {
		t.enabled = false
	}
}

func (t *Terminal) printInline(s string) {
	pad := 0
	if t.lastLen > len(s) {
		pad = t.lastLen - len(s)
	}
	var b strings.Builder
	b.WriteByte('\r')
	b.WriteString(s)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		t.enabled = false
		return
	}
	t.lastLen = len(s)
}
