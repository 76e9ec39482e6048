package worker

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MitchellWeg/PGN-Parser/internal/parser"
	"github.com/MitchellWeg/PGN-Parser/internal/testutil"
)

func newJob(t *testing.T, index int, pgn string) Job {
	t.Helper()
	it, err := parser.NewIterator(strings.NewReader(pgn), parser.Window{Index: index})
	if err != nil {
		t.Fatalf("NewIterator: %v", err)
	}
	return Job{Index: index, Iterator: it}
}

// drainingProcessFunc reads every record of the job's window.
func drainingProcessFunc(counter *int32) ProcessFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		games, err := job.Iterator.ReadAll()
		return Result{Records: int64(len(games)), Stats: job.Iterator.Stats(), Err: err}
	}
}

// collectResults drains the result channel.
func collectResults(pool *Pool) []Result {
	var results []Result
	for res := range pool.Results() {
		results = append(results, res)
	}
	return results
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := New(drainingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(newJob(t, i, testutil.TwoGameArchive))
	}

	go pool.Close()

	results := collectResults(pool)
	if len(results) != numJobs {
		t.Fatalf("results = %d; want %d", len(results), numJobs)
	}
	if got := atomic.LoadInt32(&processed); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}

	seen := make(map[int]bool)
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("job %d: %v", res.Index, res.Err)
		}
		if res.Records != 2 || res.Stats.Records != 2 {
			t.Errorf("job %d: records = %d (stats %d); want 2", res.Index, res.Records, res.Stats.Records)
		}
		if res.Window.Index != res.Index {
			t.Errorf("job %d reported window %v", res.Index, res.Window)
		}
		seen[res.Index] = true
	}
	if len(seen) != numJobs {
		t.Errorf("distinct job indices = %d; want %d", len(seen), numJobs)
	}
}

func TestPoolSingleWorker(t *testing.T) {
	var processed int32
	pool := New(drainingProcessFunc(&processed), WithBufferSize(5))
	pool.Start()

	for i := 0; i < 5; i++ {
		pool.Submit(newJob(t, i, testutil.FischerBenko))
	}

	go pool.Close()

	// One worker preserves submission order.
	for i, res := range collectResults(pool) {
		if res.Index != i {
			t.Errorf("result %d has index %d", i, res.Index)
		}
	}
}

func TestPoolStopSkipsPendingJobs(t *testing.T) {
	release := make(chan struct{})
	var ran int32
	pool := New(func(job Job) Result {
		atomic.AddInt32(&ran, 1)
		<-release
		return Result{}
	}, WithWorkers(1), WithBufferSize(10))
	pool.Start()

	for i := 0; i < 5; i++ {
		pool.Submit(newJob(t, i, testutil.FischerBenko))
	}
	pool.Stop()
	close(release)

	go pool.Close()

	results := collectResults(pool)
	if len(results) != 5 {
		t.Fatalf("results = %d; want 5", len(results))
	}
	skipped := 0
	for _, res := range results {
		if errors.Is(res.Err, ErrSkipped) {
			skipped++
		}
	}
	if got := int(atomic.LoadInt32(&ran)); got+skipped != 5 || got > 1 {
		t.Errorf("ran = %d, skipped = %d; want at most 1 run and the rest skipped", got, skipped)
	}
	if !pool.IsStopped() {
		t.Error("IsStopped() = false after Stop()")
	}
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 16},
		{"custom", []PoolOption{WithWorkers(8), WithBufferSize(3)}, 8, 3},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-1)}, 1, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := New(func(Job) Result { return Result{} }, tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if cap(pool.jobs) != tt.wantBuffer || cap(pool.results) != tt.wantBuffer {
				t.Errorf("buffer = %d/%d; want %d", cap(pool.jobs), cap(pool.results), tt.wantBuffer)
			}
		})
	}
}
