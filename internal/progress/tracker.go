// Package progress tracks how much of the input has been scanned and draws
// it as a terminal progress bar.
package progress

import (
	"sync/atomic"

	"github.com/MitchellWeg/PGN-Parser/internal/parser"
)

// Tracker sums the bytes scanned by every window. Update may be called
// from any goroutine.
type Tracker struct {
	total   int64
	windows []parser.Window
	scanned []atomic.Int64
	records atomic.Int64
}

// NewTracker creates a tracker for an input of total bytes split into
// windows.
func NewTracker(total int64, windows []parser.Window) *Tracker {
	return &Tracker{
		total:   total,
		windows: windows,
		scanned: make([]atomic.Int64, len(windows)),
	}
}

// Update records that window has been scanned up to offset and one more
// record was found. Its signature matches chunk.Options.OnProgress.
func (t *Tracker) Update(window int, offset int64) {
	if window < 0 || window >= len(t.windows) {
		return
	}
	w := t.windows[window]
	n := offset - w.Min
	if w.Bounded() {
		n = min(n, w.Size())
	}
	t.scanned[window].Store(max(n, 0))
	t.records.Add(1)
}

// Scanned returns the bytes scanned so far.
func (t *Tracker) Scanned() int64 {
	var n int64
	for i := range t.scanned {
		n += t.scanned[i].Load()
	}
	return min(n, t.total)
}

// Total returns the input size.
func (t *Tracker) Total() int64 {
	return t.total
}

// Records returns the number of records reported.
func (t *Tracker) Records() int64 {
	return t.records.Load()
}

// Fraction returns the scanned share of the input in [0, 1].
func (t *Tracker) Fraction() float64 {
	if t.total <= 0 {
		return 1
	}
	return float64(t.Scanned()) / float64(t.total)
}
