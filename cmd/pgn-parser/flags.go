package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MitchellWeg/PGN-Parser/internal/config"
)

// cliFlags holds the command-line flags. Only flags that were set on the
// command line override the loaded configuration.
type cliFlags struct {
	configFile string
	envFiles   []string

	threads     int
	lossySeams  bool
	unknownTags string
	debug       bool

	format         string
	delimiter      string
	split          int
	dedupe         bool
	dedupeCapacity int
	progress       bool
	metricsFile    string

	cfg *config.Config
}

func (f *cliFlags) register(cmd *cobra.Command) {
	defaults := config.NewConfig()

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configFile, "config", "c", "", "Config file (default: "+config.DefaultPath()+")")
	pf.StringSliceVar(&f.envFiles, "env-file", nil, "Environment files to load (default: .env)")
	pf.IntVarP(&f.threads, "threads", "t", defaults.Threads, "Number of windows scanned in parallel")
	pf.BoolVar(&f.lossySeams, "lossy-seams", false, "Cut windows at raw byte offsets instead of record starts")
	pf.StringVar(&f.unknownTags, "unknown-tags", defaults.UnknownTags, "Unreserved tag lines: drop or fold into the movetext")
	pf.BoolVar(&f.debug, "debug", false, "Enable debug logging")

	fl := cmd.Flags()
	fl.StringVarP(&f.format, "format", "f", defaults.Format, "Output format: csv or jsonl")
	fl.StringVarP(&f.delimiter, "delimiter", "d", defaults.Delimiter, "CSV field delimiter")
	fl.IntVar(&f.split, "split", 0, "Start a new output file every N records (0 = single file)")
	fl.BoolVarP(&f.dedupe, "dedupe", "D", false, "Drop records already written")
	fl.IntVar(&f.dedupeCapacity, "dedupe-capacity", defaults.DedupeCapacity, "Fingerprints remembered by --dedupe")
	fl.BoolVarP(&f.progress, "progress", "p", false, "Show a progress bar when stderr is a terminal")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics in the Prometheus text format to this file")
}

// load reads the configuration once, applies the flags that were set and
// validates the result.
func (f *cliFlags) load(cmd *cobra.Command) (*config.Config, error) {
	if f.cfg != nil {
		return f.cfg, nil
	}

	cfg, err := config.Load(f.configFile, f.envFiles...)
	if err != nil {
		return nil, err
	}
	f.apply(cmd.Flags(), config.From(cfg))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f.cfg = cfg
	return cfg, nil
}

func (f *cliFlags) apply(flags *pflag.FlagSet, b *config.Builder) {
	changed := flags.Changed
	if changed("threads") {
		b.WithThreads(f.threads)
	}
	if changed("lossy-seams") {
		b.WithLossySeams(f.lossySeams)
	}
	if changed("unknown-tags") {
		b.WithUnknownTags(f.unknownTags)
	}
	if changed("debug") {
		b.WithDebug(f.debug)
	}
	if changed("format") {
		b.WithFormat(f.format)
	}
	if changed("delimiter") {
		b.WithDelimiter(f.delimiter)
	}
	if changed("split") {
		b.WithSplit(f.split)
	}
	if changed("dedupe") {
		b.WithDedupe(f.dedupe)
	}
	if changed("dedupe-capacity") {
		b.WithDedupeCapacity(f.dedupeCapacity)
	}
	if changed("progress") {
		b.WithProgress(f.progress)
	}
	if changed("metrics-file") {
		b.WithMetricsFile(f.metricsFile)
	}
}
