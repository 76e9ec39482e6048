// Package worker provides a worker pool that scans byte windows of a PGN
// file in parallel.
package worker

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MitchellWeg/PGN-Parser/internal/parser"
)

// Job is one window to scan.
type Job struct {
	Index    int              // Position of the window in the partition
	Iterator *parser.Iterator // Exclusively owned by the worker running the job
}

// Result reports how a job went.
type Result struct {
	Index   int
	Window  parser.Window
	Records int64         // Records handed on by the job
	Stats   parser.Stats  // Scanner counters of the window
	Elapsed time.Duration // Wall time spent on the job
	Err     error
}

// ProcessFunc is the function signature for running a job.
type ProcessFunc func(job Job) Result

// Pool manages a pool of workers running window jobs.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobs        chan Job
	results     chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel buffer size. Submitting
// more jobs than the buffer holds blocks until workers catch up.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// New creates a pool. Default: 1 worker, buffer size of 16.
func New(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  16,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker runs jobs until the job channel is closed. Jobs received after
// Stop are reported as skipped without running.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			p.results <- Result{Index: job.Index, Window: job.Iterator.Window(), Err: ErrSkipped}
			continue
		}
		start := time.Now()
		res := p.processFunc(job)
		res.Index = job.Index
		res.Window = job.Iterator.Window()
		res.Elapsed = time.Since(start)
		p.results <- res
	}
}

// Submit submits a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop signals workers to skip jobs they have not started.
func (p *Pool) Stop() {
	p.stopFlag.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopFlag.Load()
}

// Close closes the job channel and waits for all workers to finish, then
// closes the result channel. Results must be drained concurrently unless
// the buffer holds every result.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
