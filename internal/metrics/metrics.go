// Package metrics collects run counters in a Prometheus registry and
// exports them in the text exposition format.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
	"github.com/MitchellWeg/PGN-Parser/internal/worker"
)

const namespace = "pgnparser"

// Collector holds the metrics of one run.
type Collector struct {
	registry *prometheus.Registry

	records     *prometheus.CounterVec
	lines       *prometheus.CounterVec
	bytes       *prometheus.CounterVec
	partial     *prometheus.CounterVec
	malformed   *prometheus.CounterVec
	unknownTags *prometheus.CounterVec
	scanSeconds prometheus.Histogram

	written    prometheus.Counter
	duplicates prometheus.Counter
	inputBytes prometheus.Gauge
	windows    prometheus.Gauge
}

// New creates a collector with its own registry.
func New() *Collector {
	perWindow := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      name,
			Help:      help,
		}, []string{"window"})
	}

	c := &Collector{
		registry:    prometheus.NewRegistry(),
		records:     perWindow("records_total", "Records scanned."),
		lines:       perWindow("lines_total", "Lines consumed, blank lines included."),
		bytes:       perWindow("bytes_total", "Bytes consumed."),
		partial:     perWindow("partial_records_total", "Records flushed without a terminating blank line."),
		malformed:   perWindow("malformed_lines_total", "Tag lines skipped for lack of a key/value separator."),
		unknownTags: perWindow("unknown_tags_total", "Tag lines with an unreserved key."),
		scanSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "window_duration_seconds",
			Help:      "Wall time spent scanning one window.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		written: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_written_total",
			Help:      "Records handed to the output writer.",
		}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_dropped_total",
			Help:      "Records dropped as duplicates.",
		}),
		inputBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "input_bytes",
			Help:      "Size of the input file.",
		}),
		windows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "windows",
			Help:      "Number of windows the input was split into.",
		}),
	}

	c.registry.MustRegister(
		c.records, c.lines, c.bytes, c.partial, c.malformed, c.unknownTags,
		c.scanSeconds, c.written, c.duplicates, c.inputBytes, c.windows,
	)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// SetInput records the input size and the number of windows.
func (c *Collector) SetInput(size int64, windows int) {
	c.inputBytes.Set(float64(size))
	c.windows.Set(float64(windows))
}

// ObserveWindow adds the scanner counters of one finished window.
func (c *Collector) ObserveWindow(res worker.Result) {
	w := strconv.Itoa(res.Index)
	c.records.WithLabelValues(w).Add(float64(res.Stats.Records))
	c.lines.WithLabelValues(w).Add(float64(res.Stats.Lines))
	c.bytes.WithLabelValues(w).Add(float64(res.Stats.Bytes))
	c.partial.WithLabelValues(w).Add(float64(res.Stats.Partial))
	c.malformed.WithLabelValues(w).Add(float64(res.Stats.Malformed))
	c.unknownTags.WithLabelValues(w).Add(float64(res.Stats.UnknownTags))
	if res.Elapsed > 0 {
		c.scanSeconds.Observe(res.Elapsed.Seconds())
	}
}

// AddWritten counts records written.
func (c *Collector) AddWritten(n int64) {
	c.written.Add(float64(n))
}

// AddDuplicates counts records dropped as duplicates.
func (c *Collector) AddDuplicates(n int64) {
	c.duplicates.Add(float64(n))
}

// WriteTextfile writes all metrics to path in the text format, replacing
// the file atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.Wrapf(errors.IO(err), "write metrics %s", path)
	}
	return nil
}
