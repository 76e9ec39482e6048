package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/chunk"
	"github.com/MitchellWeg/PGN-Parser/internal/config"
	"github.com/MitchellWeg/PGN-Parser/internal/hashing"
	"github.com/MitchellWeg/PGN-Parser/internal/metrics"
	"github.com/MitchellWeg/PGN-Parser/internal/output"
	"github.com/MitchellWeg/PGN-Parser/internal/parser"
	"github.com/MitchellWeg/PGN-Parser/internal/progress"
	"github.com/MitchellWeg/PGN-Parser/internal/worker"
)

// runSummary describes a finished run.
type runSummary struct {
	Input      string
	Output     string
	Size       int64
	Windows    []worker.Result
	Stats      parser.Stats
	Written    int64
	Duplicates int64
	Files      []string
	Elapsed    time.Duration
}

// run extracts every record of input into output. A summary is returned
// whenever scanning started, even if the run failed.
func run(ctx context.Context, cfg *config.Config, input, outPath string, logger *slog.Logger, stderr io.Writer) (*runSummary, error) {
	start := time.Now()

	var tracker *progress.Tracker
	h, err := chunk.Open(input, chunk.Options{
		Threads:     cfg.Threads,
		LossySeams:  cfg.LossySeams,
		ScanOptions: []parser.Option{parser.WithUnknownTags(cfg.UnknownTagPolicy())},
		Logger:      logger,
		OnProgress: func(window int, offset int64) {
			tracker.Update(window, offset)
		},
	})
	if err != nil {
		return nil, err
	}
	defer h.Close()
	tracker = progress.NewTracker(h.TotalSize(), h.Windows())

	factory, err := output.NewFactory(cfg.Format, cfg.WriterOptions())
	if err != nil {
		return nil, err
	}
	w, err := output.Create(outPath, cfg.Split, factory)
	if err != nil {
		return nil, err
	}

	var detector *hashing.DuplicateDetector
	if cfg.Dedupe {
		if detector, err = hashing.NewDuplicateDetector(cfg.DedupeCapacity); err != nil {
			w.Close()
			return nil, err
		}
	}

	collector := metrics.New()
	collector.SetInput(h.TotalSize(), len(h.Windows()))

	logger.Info("extracting records",
		"input", input,
		"output", outPath,
		"format", cfg.Format,
		"size", h.TotalSize(),
		"windows", len(h.Windows()),
	)

	var bar *progress.Bar
	if f, ok := stderr.(*os.File); ok && cfg.Progress && progress.IsTerminal(f) {
		bar = progress.NewBar(stderr, tracker)
		bar.Start()
	}

	summary := &runSummary{Input: input, Output: outPath, Size: h.TotalSize()}
	report, err := h.Stream(ctx, func(g *chess.Game) error {
		if detector != nil && detector.CheckAndAdd(g) {
			summary.Duplicates++
			return nil
		}
		if err := w.WriteGame(g); err != nil {
			return err
		}
		summary.Written++
		return nil
	})
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if bar != nil {
		bar.Stop()
	}

	summary.Windows = report.Windows
	summary.Stats = report.Stats
	summary.Elapsed = time.Since(start)
	if sw, ok := w.(*output.SplitWriter); ok {
		summary.Files = sw.Files()
	}

	for _, res := range report.Windows {
		collector.ObserveWindow(res)
	}
	collector.AddWritten(summary.Written)
	collector.AddDuplicates(summary.Duplicates)
	if cfg.MetricsFile != "" {
		if merr := collector.WriteTextfile(cfg.MetricsFile); merr != nil {
			logger.Warn("metrics not written", "path", cfg.MetricsFile, "error", merr)
		}
	}

	if err != nil {
		return summary, err
	}
	logger.Info("done",
		"written", summary.Written,
		"duplicates", summary.Duplicates,
		"malformed", summary.Stats.Malformed,
		"elapsed", summary.Elapsed,
	)
	return summary, nil
}
