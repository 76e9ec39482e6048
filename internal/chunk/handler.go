package chunk

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
	"github.com/MitchellWeg/PGN-Parser/internal/parser"
	"github.com/MitchellWeg/PGN-Parser/internal/worker"
)

// Options configures a Handler.
type Options struct {
	// Threads is both the number of windows planned and the number of
	// workers scanning them. Values below 1 mean runtime.NumCPU().
	Threads int

	// LossySeams keeps the raw byte cuts of Plan. Records straddling a cut
	// are truncated in the earlier window and the tail is scanned as a
	// record of its own in the next one.
	LossySeams bool

	// ScanOptions are passed to every iterator.
	ScanOptions []parser.Option

	Logger *slog.Logger

	// LaneBuffer is how many records a window may scan ahead of the
	// consumer. Default 256.
	LaneBuffer int

	// OnProgress is called from worker goroutines after each record with
	// the window index and the offset scanned up to.
	OnProgress func(window int, offset int64)
}

// Report sums up a Stream call.
type Report struct {
	Windows []worker.Result // One per window, in window order
	Records int64           // Records delivered to the callback
	Stats   parser.Stats    // Scanner counters over all windows
}

// Handler owns the windows of one input file and their iterators.
type Handler struct {
	path    string
	size    int64
	windows []parser.Window
	chunks  []*parser.Iterator
	opts    Options
	logger  *slog.Logger
}

// Open partitions the file at path and builds one iterator per window,
// each reading through its own file handle.
func Open(path string, opts Options) (*Handler, error) {
	if opts.Threads < 1 {
		opts.Threads = runtime.NumCPU()
	}
	if opts.LaneBuffer < 1 {
		opts.LaneBuffer = 256
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	first, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.IO(err), "open input")
	}
	info, err := first.Stat()
	if err != nil {
		first.Close()
		return nil, errors.Wrap(errors.IO(err), "stat input")
	}

	size := info.Size()
	windows := Plan(size, opts.Threads)
	if !opts.LossySeams {
		windows, err = Snap(first, size, windows)
		if err != nil {
			first.Close()
			return nil, errors.Wrapf(err, "snap windows of %s", path)
		}
	}

	h := &Handler{
		path:    path,
		size:    size,
		windows: windows,
		opts:    opts,
		logger:  logger,
	}

	scanOpts := append([]parser.Option{parser.WithName(path), parser.WithLogger(logger)}, opts.ScanOptions...)
	for i, w := range windows {
		f := first
		if i > 0 {
			if f, err = os.Open(path); err != nil {
				h.Close()
				return nil, errors.Wrap(errors.IO(err), "open input")
			}
		}
		it, err := parser.NewIterator(f, w, scanOpts...)
		if err != nil {
			f.Close()
			h.Close()
			return nil, err
		}
		h.chunks = append(h.chunks, it)
	}

	logger.Debug("partitioned input",
		"path", path,
		"size", size,
		"windows", len(windows),
		"lossy_seams", opts.LossySeams,
	)
	return h, nil
}

// Chunks returns the iterators, one per window, in window order.
func (h *Handler) Chunks() []*parser.Iterator {
	return h.chunks
}

// Windows returns the partition.
func (h *Handler) Windows() []parser.Window {
	return h.windows
}

// TotalSize returns the input size in bytes at Open time.
func (h *Handler) TotalSize() int64 {
	return h.size
}

// Path returns the input path.
func (h *Handler) Path() string {
	return h.path
}

// Close closes every iterator and returns the first error.
func (h *Handler) Close() error {
	var first error
	for _, it := range h.chunks {
		if err := it.Close(); err != nil && first == nil {
			first = errors.IO(err)
		}
	}
	return first
}

// Stream scans all windows in parallel and calls fn with every record in
// file order. It stops at the first scan error, the first error from fn,
// or when ctx is done. The chunks are consumed; Stream can run once.
func (h *Handler) Stream(ctx context.Context, fn func(*chess.Game) error) (Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := len(h.chunks)
	lanes := make([]chan *chess.Game, n)
	for i := range lanes {
		lanes[i] = make(chan *chess.Game, h.opts.LaneBuffer)
	}
	// errs[i] is written before lanes[i] is closed.
	errs := make([]error, n)

	pool := worker.New(func(job worker.Job) worker.Result {
		defer close(lanes[job.Index])
		res := h.scan(ctx, job, lanes[job.Index])
		errs[job.Index] = res.Err
		return res
	}, worker.WithWorkers(h.opts.Threads), worker.WithBufferSize(max(n, 1)))
	pool.Start()
	for i, it := range h.chunks {
		pool.Submit(worker.Job{Index: i, Iterator: it})
	}

	var (
		report Report
		err    error
	)
consume:
	for i := range lanes {
		for game := range lanes[i] {
			if err = fn(game); err != nil {
				break consume
			}
			report.Records++
		}
		if err = errs[i]; err != nil {
			break
		}
	}
	if err != nil {
		cancel()
		pool.Stop()
	}

	pool.Close()
	report.Windows = make([]worker.Result, n)
	for res := range pool.Results() {
		report.Windows[res.Index] = res
		report.Stats.Add(res.Stats)
	}

	for _, res := range report.Windows {
		h.logger.Debug("window scanned",
			"window", res.Window.String(),
			"records", res.Records,
			"malformed", res.Stats.Malformed,
			"partial", res.Stats.Partial,
			"elapsed", res.Elapsed,
		)
	}
	if h.opts.LossySeams && report.Stats.Partial > 0 {
		h.logger.Warn("records truncated at window seams", "partial", report.Stats.Partial)
	}
	return report, err
}

// scan feeds the records of one window into lane until the window is
// exhausted, an error occurs or ctx is done.
func (h *Handler) scan(ctx context.Context, job worker.Job, lane chan<- *chess.Game) worker.Result {
	var res worker.Result
	it := job.Iterator
	for res.Err == nil {
		game, err := it.Next()
		if err != nil {
			res.Err = err
			break
		}
		if game == nil {
			break
		}
		select {
		case lane <- game:
			res.Records++
			if h.opts.OnProgress != nil {
				h.opts.OnProgress(job.Index, it.Offset())
			}
		case <-ctx.Done():
			res.Err = ctx.Err()
		}
	}
	if h.opts.OnProgress != nil {
		h.opts.OnProgress(job.Index, it.Offset())
	}
	res.Stats = it.Stats()
	return res
}
