package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
	"github.com/MitchellWeg/PGN-Parser/internal/parser"
	"github.com/MitchellWeg/PGN-Parser/internal/worker"
)

func TestObserveWindow(t *testing.T) {
	c := New()
	c.ObserveWindow(worker.Result{
		Index:   0,
		Stats:   parser.Stats{Records: 3, Lines: 30, Bytes: 900, Partial: 1, Malformed: 2, UnknownTags: 4},
		Elapsed: 5 * time.Millisecond,
	})
	c.ObserveWindow(worker.Result{
		Index: 1,
		Stats: parser.Stats{Records: 2, Lines: 20, Bytes: 600},
	})

	require.Equal(t, 3.0, promtest.ToFloat64(c.records.WithLabelValues("0")))
	require.Equal(t, 2.0, promtest.ToFloat64(c.records.WithLabelValues("1")))
	require.Equal(t, 900.0, promtest.ToFloat64(c.bytes.WithLabelValues("0")))
	require.Equal(t, 1.0, promtest.ToFloat64(c.partial.WithLabelValues("0")))
	require.Equal(t, 2.0, promtest.ToFloat64(c.malformed.WithLabelValues("0")))
	require.Equal(t, 4.0, promtest.ToFloat64(c.unknownTags.WithLabelValues("0")))
	require.Equal(t, 1, promtest.CollectAndCount(c.scanSeconds))
}

func TestCounters(t *testing.T) {
	c := New()
	c.SetInput(1024, 4)
	c.AddWritten(10)
	c.AddWritten(5)
	c.AddDuplicates(2)

	require.Equal(t, 1024.0, promtest.ToFloat64(c.inputBytes))
	require.Equal(t, 4.0, promtest.ToFloat64(c.windows))
	require.Equal(t, 15.0, promtest.ToFloat64(c.written))
	require.Equal(t, 2.0, promtest.ToFloat64(c.duplicates))
}

func TestWriteTextfile(t *testing.T) {
	c := New()
	c.SetInput(825, 2)
	c.AddWritten(2)

	path := filepath.Join(t.TempDir(), "pgn-parser.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.Contains(text, "pgnparser_records_written_total 2"), text)
	require.True(t, strings.Contains(text, "pgnparser_input_bytes 825"), text)
}

func TestWriteTextfileMissingDir(t *testing.T) {
	err := New().WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.ErrorIs(t, err, errors.ErrIO)
}
