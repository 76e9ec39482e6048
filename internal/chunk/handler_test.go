package chunk

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"testing"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
	"github.com/MitchellWeg/PGN-Parser/internal/testutil"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, h *Handler) ([]*chess.Game, Report) {
	t.Helper()
	var games []*chess.Game
	report, err := h.Stream(t.Context(), func(g *chess.Game) error {
		games = append(games, g)
		return nil
	})
	require.NoError(t, err)
	return games, report
}

func TestStreamMatchesSingleScan(t *testing.T) {
	archive := strings.Repeat(testutil.TwoGameArchive, 25)
	path := testutil.WriteTempPGN(t, archive)
	want := testutil.MustParseGames(t, archive)
	require.Len(t, want, 50)

	for _, threads := range []int{1, 2, 3, 7, 16} {
		h, err := Open(path, Options{Threads: threads})
		require.NoError(t, err)

		require.Equal(t, int64(len(archive)), h.TotalSize())
		require.True(t, Covers(h.Windows(), h.TotalSize()))
		require.Len(t, h.Chunks(), len(h.Windows()))

		got, report := collect(t, h)
		require.Equal(t, want, got, "threads=%d", threads)
		require.Equal(t, int64(50), report.Records)
		require.Equal(t, int64(50), report.Stats.Records)
		require.Zero(t, report.Stats.Partial)
		require.Len(t, report.Windows, len(h.Windows()))
		for i, res := range report.Windows {
			require.NoError(t, res.Err)
			require.Equal(t, h.Windows()[i], res.Window)
		}
		require.NoError(t, h.Close())
	}
}

func TestChunksInWindowOrder(t *testing.T) {
	archive := strings.Repeat(testutil.TwoGameArchive, 4)
	path := testutil.WriteTempPGN(t, archive)

	h, err := Open(path, Options{Threads: 4})
	require.NoError(t, err)
	defer h.Close()

	var got []*chess.Game
	for _, it := range h.Chunks() {
		games, err := it.ReadAll()
		require.NoError(t, err)
		got = append(got, games...)
	}
	require.Equal(t, testutil.MustParseGames(t, archive), got)
}

func TestStreamLossySeams(t *testing.T) {
	path := testutil.WriteTempPGN(t, testutil.TwoGameArchive)

	h, err := Open(path, Options{Threads: 2, LossySeams: true})
	require.NoError(t, err)
	defer h.Close()

	size := h.TotalSize()
	require.Equal(t, Plan(size, 2), h.Windows())

	// The cut falls inside the first game's movetext: the first window
	// keeps the game but marks it truncated, and the second window starts
	// on the line tail.
	got, report := collect(t, h)
	require.Len(t, got, 3)
	require.True(t, got[0].Partial)
	require.Equal(t, "Robert James Fischer", got[0].White())
	require.Equal(t, testutil.FischerBenkoMoves, got[0].Moves)
	require.Empty(t, got[1].White())
	require.Equal(t, int64(1), report.Stats.Partial)
	require.NotEqual(t, testutil.MustParseGames(t, testutil.TwoGameArchive), got)
}

func TestStreamCallbackError(t *testing.T) {
	path := testutil.WriteTempPGN(t, strings.Repeat(testutil.TwoGameArchive, 20))

	h, err := Open(path, Options{Threads: 4, LaneBuffer: 1})
	require.NoError(t, err)
	defer h.Close()

	stop := stderrors.New("stop")
	var seen int
	report, err := h.Stream(t.Context(), func(*chess.Game) error {
		seen++
		if seen == 4 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 4, seen)
	require.Equal(t, int64(3), report.Records)
}

func TestStreamCancelled(t *testing.T) {
	path := testutil.WriteTempPGN(t, strings.Repeat(testutil.TwoGameArchive, 25))

	h, err := Open(path, Options{Threads: 1, LaneBuffer: 1})
	require.NoError(t, err)
	defer h.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	report, err := h.Stream(ctx, func(*chess.Game) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, report.Records, int64(50))
}

func TestStreamProgress(t *testing.T) {
	path := testutil.WriteTempPGN(t, strings.Repeat(testutil.TwoGameArchive, 10))

	var (
		mu        sync.Mutex
		last      = make(map[int]int64)
		regressed bool
	)
	h, err := Open(path, Options{
		Threads: 3,
		OnProgress: func(window int, offset int64) {
			mu.Lock()
			defer mu.Unlock()
			if offset < last[window] {
				regressed = true
			}
			last[window] = offset
		},
	})
	require.NoError(t, err)
	defer h.Close()

	collect(t, h)
	require.False(t, regressed, "progress offsets went backwards")
	for _, w := range h.Windows() {
		require.Equal(t, w.Max, last[w.Index], "window %v", w)
	}
}

func TestStreamProgressReportsTrailingBytes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"blank lines after the last record", testutil.TwoGameArchive + "\n\n\n\n"},
		{"no records", "\n\n\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				mu   sync.Mutex
				last = make(map[int]int64)
			)
			h, err := Open(testutil.WriteTempPGN(t, tt.content), Options{
				Threads: 1,
				OnProgress: func(window int, offset int64) {
					mu.Lock()
					defer mu.Unlock()
					last[window] = offset
				},
			})
			require.NoError(t, err)
			defer h.Close()

			collect(t, h)
			got, ok := last[0]
			require.True(t, ok, "window 0 reported no progress")
			require.Equal(t, int64(len(tt.content)), got)
		})
	}
}

func TestOpenEmptyFile(t *testing.T) {
	h, err := Open(testutil.WriteTempPGN(t, ""), Options{Threads: 4})
	require.NoError(t, err)
	defer h.Close()

	require.Len(t, h.Windows(), 1)
	got, report := collect(t, h)
	require.Empty(t, got)
	require.Zero(t, report.Records)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(t.TempDir()+"/missing.pgn", Options{})
	require.ErrorIs(t, err, errors.ErrIO)
}
