package config

// Builder applies overrides on top of a loaded Config. The CLI uses it
// for the flags that were set explicitly.
type Builder struct {
	cfg *Config
}

// NewBuilder creates a Builder starting from defaults.
func NewBuilder() *Builder {
	return From(NewConfig())
}

// From creates a Builder that modifies cfg in place.
func From(cfg *Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build returns the built Config.
func (b *Builder) Build() *Config {
	return b.cfg
}

// WithThreads sets the number of windows and workers.
func (b *Builder) WithThreads(n int) *Builder {
	b.cfg.Threads = n
	return b
}

// WithLossySeams keeps raw window cuts.
func (b *Builder) WithLossySeams(enabled bool) *Builder {
	b.cfg.LossySeams = enabled
	return b
}

// WithUnknownTags sets the unknown tag policy.
func (b *Builder) WithUnknownTags(policy string) *Builder {
	b.cfg.UnknownTags = policy
	return b
}

// WithFormat sets the output format.
func (b *Builder) WithFormat(format string) *Builder {
	b.cfg.Format = format
	return b
}

// WithDelimiter sets the CSV delimiter.
func (b *Builder) WithDelimiter(delim string) *Builder {
	b.cfg.Delimiter = delim
	return b
}

// WithSplit sets the number of records per output file.
func (b *Builder) WithSplit(n int) *Builder {
	b.cfg.Split = n
	return b
}

// WithDedupe enables duplicate suppression.
func (b *Builder) WithDedupe(enabled bool) *Builder {
	b.cfg.Dedupe = enabled
	return b
}

// WithDedupeCapacity bounds the duplicate detector.
func (b *Builder) WithDedupeCapacity(n int) *Builder {
	b.cfg.DedupeCapacity = n
	return b
}

// WithProgress enables the progress bar.
func (b *Builder) WithProgress(enabled bool) *Builder {
	b.cfg.Progress = enabled
	return b
}

// WithMetricsFile sets the metrics output path.
func (b *Builder) WithMetricsFile(path string) *Builder {
	b.cfg.MetricsFile = path
	return b
}

// WithDebug enables debug logging.
func (b *Builder) WithDebug(enabled bool) *Builder {
	b.cfg.Debug = enabled
	return b
}
