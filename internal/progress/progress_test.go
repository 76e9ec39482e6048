package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/MitchellWeg/PGN-Parser/internal/parser"
	"github.com/MitchellWeg/PGN-Parser/internal/testutil"
)

func TestTrackerUpdate(t *testing.T) {
	windows := []parser.Window{
		{Index: 0, Min: 0, Max: 100},
		{Index: 1, Min: 100, Max: 200},
	}
	tr := NewTracker(200, windows)

	testutil.AssertEqual(t, tr.Fraction(), 0.0)

	tr.Update(0, 50)
	tr.Update(1, 150)
	testutil.AssertEqual(t, tr.Scanned(), int64(100))
	testutil.AssertEqual(t, tr.Fraction(), 0.5)
	testutil.AssertEqual(t, tr.Records(), int64(2))

	// Offsets past the window end are clamped.
	tr.Update(0, 120)
	testutil.AssertEqual(t, tr.Scanned(), int64(150))

	// Unknown windows are ignored.
	tr.Update(5, 10)
	testutil.AssertEqual(t, tr.Records(), int64(3))
}

func TestTrackerEmptyInput(t *testing.T) {
	tr := NewTracker(0, []parser.Window{parser.WholeFile()})
	testutil.AssertEqual(t, tr.Fraction(), 1.0)
}

func TestTrackerConcurrentUpdates(t *testing.T) {
	windows := []parser.Window{
		{Index: 0, Min: 0, Max: 1000},
		{Index: 1, Min: 1000, Max: 2000},
		{Index: 2, Min: 2000, Max: 3000},
	}
	tr := NewTracker(3000, windows)

	var wg sync.WaitGroup
	for _, w := range windows {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for off := w.Min + 10; off <= w.Max; off += 10 {
				tr.Update(w.Index, off)
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, tr.Scanned(), int64(3000))
	testutil.AssertEqual(t, tr.Records(), int64(300))
}

func TestBarRender(t *testing.T) {
	tr := NewTracker(2000, []parser.Window{{Index: 0, Min: 0, Max: 2000}})
	tr.Update(0, 1000)

	var buf bytes.Buffer
	bar := NewBar(&buf, tr)
	line := bar.Render()
	testutil.AssertContains(t, line, "1.0 kB / 2.0 kB")
	testutil.AssertContains(t, line, "1 records")
	testutil.AssertContains(t, line, "50%")

	bar.Start()
	bar.Stop()
	bar.Stop()
	testutil.AssertTrue(t, strings.HasSuffix(buf.String(), "\n"), "Stop should end the line")
}
