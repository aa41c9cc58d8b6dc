package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primepair/internal/harness"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
}

// ScenarioSummary is the per-scenario result in JSON output.
type ScenarioSummary struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Checks   int      `json:"checks"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
}

// VerifySummary is the aggregate result in JSON output.
type VerifySummary struct {
	Scenarios []ScenarioSummary `json:"scenarios"`
	Passed    int               `json:"passed"`
	Failed    int               `json:"failed"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <scenarios-dir>",
		Short: "Run conformance scenarios against the scanners",
		Long: `Run YAML conformance scenarios against the analyzer.

Each scenario fixes a prime bound and asserts on scan outcomes: expected
pair tallies, agreement between the gap-pair scanner and the independent
mod-6 structural scan, pattern-total completeness, and rate bounds.

Exits 1 if any check fails.

Example:
  primepair verify ./testdata/scenarios`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], cmd)
		},
	}

	return cmd
}

func runVerify(opts *VerifyOptions, dir string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	scenarios, err := harness.LoadScenarioDir(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenarios", err)
	}
	slog.Debug("scenarios loaded", "count", len(scenarios))

	summary := VerifySummary{}
	for _, scenario := range scenarios {
		result := harness.Run(scenario)

		s := ScenarioSummary{
			Name:   scenario.Name,
			Checks: len(result.Checks),
			Failed: result.Failed(),
			Passed: result.Failed() == 0,
		}
		for _, check := range result.Checks {
			if check.Err != nil {
				s.Failures = append(s.Failures, check.Err.Error())
			}
		}

		if s.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Scenarios = append(summary.Scenarios, s)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		}
		if err := formatter.Success(summary); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, s := range summary.Scenarios {
			if s.Passed {
				fmt.Fprintf(w, "PASS  %s (%d checks)\n", s.Name, s.Checks)
				continue
			}
			fmt.Fprintf(w, "FAIL  %s (%d/%d checks failed)\n", s.Name, s.Failed, s.Checks)
			for _, failure := range s.Failures {
				fmt.Fprintf(w, "      %s\n", failure)
			}
		}
		fmt.Fprintf(w, "\n%d passed, %d failed\n", summary.Passed, summary.Failed)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", summary.Failed))
	}
	return nil
}
