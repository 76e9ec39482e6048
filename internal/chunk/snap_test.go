package chunk

import (
	"strings"
	"testing"

	"github.com/MitchellWeg/PGN-Parser/internal/parser"
	"github.com/MitchellWeg/PGN-Parser/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestNextRecordStart(t *testing.T) {
	archive := testutil.TwoGameArchive
	second := int64(len(testutil.FischerBenko) + 1)
	size := int64(len(archive))

	crlf := "[A \"1\"]\r\n\r\n1. e4 *\r\n\r\n[B \"2\"]\r\n\r\n1. d4 *\r\n"

	tests := []struct {
		name  string
		input string
		at    int64
		want  int64
	}{
		{"start of input", archive, 0, 0},
		{"inside the first tag", archive, 1, second},
		{"inside the movetext", archive, second - 20, second},
		{"on the separating blank line", archive, second - 1, second},
		{"on a record start", archive, second, second},
		{"after the last record start", archive, second + 1, size},
		{"end of input", archive, size, size},
		{"crlf record start", crlf, 22, 22},
		{"crlf inside tag", crlf, 3, 22},
		{"crlf on blank line", crlf, 9, 22},
		{"crlf between cr and lf of blank line", crlf, 21, 22},
		{"crlf between cr and lf of first blank line", crlf, 10, 22},
		{"crlf between cr and lf of tag line", crlf, 8, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := strings.NewReader(tt.input)
			got, err := NextRecordStart(r, int64(len(tt.input)), tt.at)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSnap(t *testing.T) {
	archive := strings.Repeat(testutil.TwoGameArchive, 10)
	size := int64(len(archive))

	for _, n := range []int{2, 3, 5, 8, 20, 64} {
		windows, err := Snap(strings.NewReader(archive), size, Plan(size, n))
		require.NoError(t, err)
		require.True(t, Covers(windows, size), "n=%d: %v", n, windows)
		require.LessOrEqual(t, len(windows), n)

		for _, w := range windows[1:] {
			require.True(t, strings.HasPrefix(archive[w.Min:], "[Event "), "n=%d: window %v does not start a record", n, w)
			require.Equal(t, "\n\n", archive[w.Min-2:w.Min])
		}
	}
}

func TestSnapDropsCollapsedWindows(t *testing.T) {
	archive := testutil.TwoGameArchive
	size := int64(len(archive))

	// Every cut inside the first game collapses onto the second.
	windows, err := Snap(strings.NewReader(archive), size, Plan(size, 8))
	require.NoError(t, err)
	require.Equal(t, []parser.Window{
		{Index: 0, Min: 0, Max: int64(len(testutil.FischerBenko) + 1)},
		{Index: 1, Min: int64(len(testutil.FischerBenko) + 1), Max: size},
	}, windows)
}

func TestSnapSingleWindow(t *testing.T) {
	windows := []parser.Window{{Min: 0, Max: 10}}
	got, err := Snap(strings.NewReader("0123456789"), 10, windows)
	require.NoError(t, err)
	require.Equal(t, windows, got)
}
