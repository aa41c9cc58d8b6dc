package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primepair/internal/analysis"
	"github.com/roach88/primepair/internal/primes"
	"github.com/roach88/primepair/internal/report"
	"github.com/roach88/primepair/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Database string
	MaxPrime int64
	Profile  string
}

// ExportResult is the payload printed after a successful export.
type ExportResult struct {
	RunID    string `json:"run_id"`
	Database string `json:"database"`
	MaxPrime int64  `json:"max_prime"`
	Gaps     int    `json:"gaps"`
	Mod6Gaps int    `json:"mod6_gaps"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run both analyses and persist results to SQLite",
		Long: `Run both analyses and persist the results to a SQLite database.

The database holds run headers keyed by time-ordered UUIDv7 IDs, per-gap
scan tallies with retained counterexamples, and the mod-6 structural
statistics, for downstream querying.

Example:
  primepair export --db ./results.db --max-prime 1000000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().Int64VarP(&opts.MaxPrime, "max-prime", "n", DefaultMaxPrime, "upper limit for prime generation")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "directory of CUE profile files overriding the default analysis set")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	cfg, bound, err := resolveConfig(opts.Profile, opts.MaxPrime, cmd.Flags().Changed("max-prime"))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load profile", err)
	}

	slog.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	slog.Info("running analyses", "bound", bound)
	seq := primes.UpTo(bound)
	scans := scanGaps(cfg, seq)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	run := store.Run{
		ID:         store.NewRunID(),
		MaxPrime:   bound,
		Modulus:    cfg.Modulus,
		PrimeCount: int64(seq.Len()),
	}
	if err := st.WriteRun(ctx, run); err != nil {
		return WrapExitError(ExitCommandError, "failed to write run", err)
	}

	for _, scan := range scans {
		if err := st.WriteGapScan(ctx, run.ID, scan); err != nil {
			return WrapExitError(ExitCommandError, "failed to write gap scan", err)
		}
	}

	mod6Count := 0
	for _, gap := range cfg.Mod6Gaps {
		sec := report.NewMod6Section(gap, analysis.ScanMod6Range(bound, gap))
		if err := st.WriteMod6Result(ctx, run.ID, report.NewMod6Result(sec)); err != nil {
			return WrapExitError(ExitCommandError, "failed to write mod-6 result", err)
		}
		mod6Count++
	}
	slog.Info("export complete", "run_id", run.ID)

	if opts.Format == "json" {
		formatter := &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		}
		return formatter.Success(ExportResult{
			RunID:    run.ID,
			Database: opts.Database,
			MaxPrime: bound,
			Gaps:     len(scans),
			Mod6Gaps: mod6Count,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Export complete.")
	fmt.Fprintf(w, "  Run ID:    %s\n", run.ID)
	fmt.Fprintf(w, "  Database:  %s\n", opts.Database)
	fmt.Fprintf(w, "  Gap scans: %d, mod-6 breakdowns: %d\n", len(scans), mod6Count)
	return nil
}
