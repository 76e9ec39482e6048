// pgn-parser extracts game records from PGN archives into CSV or JSON lines,
// scanning the input in parallel byte windows.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/MitchellWeg/PGN-Parser/internal/progress"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.ErrorContext(ctx, "pgn-parser failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&cliFlags{})
}

func newRootCmdWith(f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pgn-parser <input.pgn> <output>",
		Short: "Extract game records from a PGN archive",
		Long: `Extract game records from a PGN archive into CSV or JSON lines.

The input is split into one byte window per thread. Window boundaries are
moved to record starts unless --lossy-seams is given. Records are written
in file order.

Settings are read from the config file, .env, PGNPARSER_* environment
variables and flags, later sources overriding earlier ones.`,
		Version:       versioninfo.Short(),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg.Debug, isTerminal(cmd.ErrOrStderr())))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			summary, err := run(cmd.Context(), cfg, args[0], args[1], slog.Default(), cmd.ErrOrStderr())
			if summary != nil {
				printSummary(cmd.ErrOrStderr(), summary)
			}
			return err
		},
	}

	f.register(cmd)
	cmd.AddCommand(windowsCmd(f))
	cmd.AddCommand(versionCmd())
	return cmd
}

// newLogger builds the process logger: tint on a terminal or with debug,
// JSON otherwise.
func newLogger(w io.Writer, debug, console bool) *slog.Logger {
	shortfile := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			s := a.Value.Any().(*slog.Source)
			s.File = path.Base(s.File)
		}
		return a
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if debug || console {
		return slog.New(tint.NewHandler(w, &tint.Options{
			AddSource:   debug,
			Level:       level,
			TimeFormat:  time.Kitchen,
			ReplaceAttr: shortfile,
			NoColor:     !console,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   true,
		Level:       level,
		ReplaceAttr: shortfile,
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && progress.IsTerminal(f)
}
