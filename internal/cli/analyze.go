package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/primepair/internal/analysis"
	"github.com/roach88/primepair/internal/primes"
	"github.com/roach88/primepair/internal/report"
)

// DefaultMaxPrime is the prime-generation bound when no flag or profile
// overrides it.
const DefaultMaxPrime = 1000000

// AnalyzeOptions holds flags for the analyze command.
type AnalyzeOptions struct {
	*RootOptions
	MaxPrime int64
	Base10   bool
	Mod6     bool
	Profile  string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the prime gap analyses",
		Long: `Run the digit-square property analyses over primes up to the bound.

Analysis 1 scans the enumerated prime sequence for pairs (p, p+k) with
p >= 11 across the configured gap set and reports per-gap success rates
with counterexamples. Analysis 2 re-scans the range independently for gaps
divisible by 6 and breaks results down by mod-6 residue and last-digit
pattern.

With neither --base10 nor --mod6, both analyses run.

Example:
  primepair analyze --max-prime 1000000
  primepair analyze -n 50000 --mod6 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts, cmd)
		},
	}

	cmd.Flags().Int64VarP(&opts.MaxPrime, "max-prime", "n", DefaultMaxPrime, "upper limit for prime generation")
	cmd.Flags().BoolVar(&opts.Base10, "base10", false, "run only Analysis 1: per-gap success rates")
	cmd.Flags().BoolVar(&opts.Mod6, "mod6", false, "run only Analysis 2: mod-6 structural breakdown")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "directory of CUE profile files overriding the default analysis set")

	return cmd
}

// resolveConfig combines the built-in defaults, an optional profile, and the
// bound flag. Precedence for the bound: explicit flag, then profile, then
// DefaultMaxPrime.
func resolveConfig(profileDir string, flagBound int64, flagSet bool) (analysis.Set, int64, error) {
	cfg := analysis.Default()
	bound := flagBound

	if profileDir != "" {
		profile, err := LoadProfile(profileDir)
		if err != nil {
			return cfg, bound, err
		}
		cfg = profile.Apply(cfg)
		if !flagSet && profile.MaxPrime > 0 {
			bound = profile.MaxPrime
		}
	}
	return cfg, bound, nil
}

func runAnalyze(opts *AnalyzeOptions, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	cfg, bound, err := resolveConfig(opts.Profile, opts.MaxPrime, cmd.Flags().Changed("max-prime"))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load profile", err)
	}

	neither := !opts.Base10 && !opts.Mod6
	runBase10 := opts.Base10 || neither
	runMod6 := opts.Mod6 || neither

	slog.Debug("analysis configured", "bound", bound, "modulus", cfg.Modulus,
		"base10", runBase10, "mod6", runMod6)

	if opts.Format == "json" {
		rep := buildReport(cfg, bound, runBase10, runMod6)
		formatter := &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		}
		return formatter.Success(rep)
	}

	w := cmd.OutOrStdout()
	r := report.NewRenderer(w)
	r.Banner(bound)

	if runBase10 {
		fmt.Fprintln(w, "Generating primes for Analysis 1...")
		start := time.Now()
		seq := primes.UpTo(bound)
		r.PrimeGeneration(seq.Len(), time.Since(start))
		r.GapTable(cfg, scanGaps(cfg, seq))
	}

	if runMod6 {
		r.Mod6Header()
		for _, gap := range cfg.Mod6Gaps {
			r.Mod6Gap(report.NewMod6Section(gap, analysis.ScanMod6Range(bound, gap)))
		}
	}

	r.Footer()
	return nil
}

// scanGaps runs the gap-pair scanner across the configured gap set.
func scanGaps(cfg analysis.Set, seq *primes.Sequence) []analysis.GapScan {
	scans := make([]analysis.GapScan, 0, len(cfg.Gaps))
	for _, gap := range cfg.Gaps {
		scan := analysis.ScanGapPairs(seq, gap, cfg.Modulus)
		slog.Debug("gap scanned", "gap", gap, "total", scan.TotalPairs, "success", scan.SuccessfulPairs)
		scans = append(scans, scan)
	}
	return scans
}

// buildReport assembles the machine-readable report for JSON output.
// Shared with the export command, which persists the same structure.
func buildReport(cfg analysis.Set, bound int64, base10, mod6 bool) report.Report {
	rep := report.Report{MaxPrime: bound, Modulus: cfg.Modulus}

	if base10 {
		start := time.Now()
		seq := primes.UpTo(bound)
		rep.PrimeGenSeconds = time.Since(start).Seconds()
		rep.PrimeCount = seq.Len()
		for _, scan := range scanGaps(cfg, seq) {
			rep.Gaps = append(rep.Gaps, report.NewGapResult(cfg, scan))
		}
	}

	if mod6 {
		for _, gap := range cfg.Mod6Gaps {
			sec := report.NewMod6Section(gap, analysis.ScanMod6Range(bound, gap))
			rep.Mod6 = append(rep.Mod6, report.NewMod6Result(sec))
		}
	}
	return rep
}
