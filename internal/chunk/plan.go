// Package chunk partitions a PGN file into byte windows and scans them in
// parallel, one iterator and one file handle per window.
package chunk

import "github.com/MitchellWeg/PGN-Parser/internal/parser"

// Plan splits [0, total) into n contiguous windows of equal size, the last
// one absorbing the remainder. n is clamped to [1, total]. An empty input
// gets a single unbounded window.
func Plan(total int64, n int) []parser.Window {
	if total <= 0 {
		return []parser.Window{parser.WholeFile()}
	}
	if n < 1 {
		n = 1
	}
	if int64(n) > total {
		n = int(total)
	}

	size := total / int64(n)
	windows := make([]parser.Window, n)
	for i := range windows {
		windows[i] = parser.Window{
			Index: i,
			Min:   int64(i) * size,
			Max:   int64(i+1) * size,
		}
	}
	windows[n-1].Max = total
	return windows
}

// Covers reports whether windows tile [0, total) in order with no gaps or
// overlaps.
func Covers(windows []parser.Window, total int64) bool {
	if len(windows) == 0 {
		return false
	}
	var next int64
	for i, w := range windows {
		if w.Index != i || w.Min != next {
			return false
		}
		if !w.Bounded() {
			return i == len(windows)-1
		}
		if w.Max < w.Min {
			return false
		}
		next = w.Max
	}
	return next == total
}
