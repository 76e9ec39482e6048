package chunk

import (
	"testing"

	"github.com/MitchellWeg/PGN-Parser/internal/parser"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		n       int
		windows []parser.Window
	}{
		{
			name:  "even split",
			total: 100,
			n:     4,
			windows: []parser.Window{
				{Index: 0, Min: 0, Max: 25},
				{Index: 1, Min: 25, Max: 50},
				{Index: 2, Min: 50, Max: 75},
				{Index: 3, Min: 75, Max: 100},
			},
		},
		{
			name:  "last window takes the remainder",
			total: 10,
			n:     3,
			windows: []parser.Window{
				{Index: 0, Min: 0, Max: 3},
				{Index: 1, Min: 3, Max: 6},
				{Index: 2, Min: 6, Max: 10},
			},
		},
		{
			name:  "more threads than bytes",
			total: 2,
			n:     8,
			windows: []parser.Window{
				{Index: 0, Min: 0, Max: 1},
				{Index: 1, Min: 1, Max: 2},
			},
		},
		{
			name:    "zero threads",
			total:   5,
			n:       0,
			windows: []parser.Window{{Index: 0, Min: 0, Max: 5}},
		},
		{
			name:    "empty input",
			total:   0,
			n:       4,
			windows: []parser.Window{parser.WholeFile()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.total, tt.n)
			require.Equal(t, tt.windows, got)
			require.True(t, Covers(got, tt.total))
		})
	}
}

func TestPlanCoversWithoutGaps(t *testing.T) {
	for total := int64(1); total <= 64; total++ {
		for n := 1; n <= 12; n++ {
			windows := Plan(total, n)
			require.True(t, Covers(windows, total), "Plan(%d, %d) = %v", total, n, windows)
			require.LessOrEqual(t, int64(len(windows)), total)
		}
	}
}

func TestCovers(t *testing.T) {
	require.False(t, Covers(nil, 10))
	require.False(t, Covers([]parser.Window{{Min: 0, Max: 5}, {Index: 1, Min: 6, Max: 10}}, 10), "gap")
	require.False(t, Covers([]parser.Window{{Min: 0, Max: 6}, {Index: 1, Min: 5, Max: 10}}, 10), "overlap")
	require.False(t, Covers([]parser.Window{{Min: 0, Max: 5}}, 10), "short")
	require.False(t, Covers([]parser.Window{{Min: 0, Max: 5}, {Index: 2, Min: 5, Max: 10}}, 10), "index")
	require.True(t, Covers([]parser.Window{{Min: 0, Max: 5}, {Index: 1, Min: 5}}, 10), "open tail")
}
