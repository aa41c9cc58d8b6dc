package harness

import (
	"fmt"
	"math"

	"github.com/roach88/primepair/internal/analysis"
	"github.com/roach88/primepair/internal/primes"
)

// AssertionError is returned when a check fails. It carries enough context
// to diagnose the failure without re-running the scenario.
type AssertionError struct {
	Check    string // check type for categorization
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s\n  Expected: %s\n  Actual: %s", e.Check, e.Expected, e.Actual)
}

// CheckResult pairs a check with its outcome. Err is nil on success.
type CheckResult struct {
	Check Check
	Err   error
}

// Result is the outcome of running one scenario.
type Result struct {
	Scenario *Scenario
	Checks   []CheckResult
}

// Failed returns the number of failed checks.
func (r *Result) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Err != nil {
			n++
		}
	}
	return n
}

// Run executes every check in the scenario against a fresh computation.
// The prime sequence is enumerated once and shared read-only across checks;
// the mod-6 checks re-derive primality on their own, as the structural scan
// always does.
func Run(scenario *Scenario) *Result {
	seq := primes.UpTo(scenario.MaxPrime)
	result := &Result{Scenario: scenario}

	for _, check := range scenario.Checks {
		var err error
		switch check.Type {
		case CheckGapScan:
			err = runGapScanCheck(seq, check)
		case CheckCrossCheck:
			err = runCrossCheck(seq, scenario.MaxPrime, check)
		case CheckPatternTotals:
			err = runPatternTotalsCheck(scenario.MaxPrime, check)
		case CheckRateBounds:
			err = runRateBoundsCheck(seq)
		default:
			err = fmt.Errorf("unknown check type %q", check.Type)
		}
		result.Checks = append(result.Checks, CheckResult{Check: check, Err: err})
	}
	return result
}

func modulusOrDefault(c Check) int64 {
	if c.Modulus != 0 {
		return c.Modulus
	}
	return analysis.Default().Modulus
}

func runGapScanCheck(seq *primes.Sequence, check Check) error {
	scan := analysis.ScanGapPairs(seq, check.Gap, modulusOrDefault(check))
	expect := check.Expect

	if expect.TotalPairs != nil && scan.TotalPairs != *expect.TotalPairs {
		return &AssertionError{
			Check:    CheckGapScan,
			Expected: fmt.Sprintf("gap %d: %d total pairs", check.Gap, *expect.TotalPairs),
			Actual:   fmt.Sprintf("%d total pairs", scan.TotalPairs),
		}
	}
	if expect.SuccessfulPairs != nil && scan.SuccessfulPairs != *expect.SuccessfulPairs {
		return &AssertionError{
			Check:    CheckGapScan,
			Expected: fmt.Sprintf("gap %d: %d successful pairs", check.Gap, *expect.SuccessfulPairs),
			Actual:   fmt.Sprintf("%d successful pairs", scan.SuccessfulPairs),
		}
	}
	if expect.Rate != nil {
		rate, ok := scan.Rate()
		if !ok {
			return &AssertionError{
				Check:    CheckGapScan,
				Expected: fmt.Sprintf("gap %d: rate %.2f%%", check.Gap, *expect.Rate),
				Actual:   "no pairs, rate undefined",
			}
		}
		if math.Abs(rate-*expect.Rate) >= analysis.RateTolerance {
			return &AssertionError{
				Check:    CheckGapScan,
				Expected: fmt.Sprintf("gap %d: rate %.2f%%", check.Gap, *expect.Rate),
				Actual:   fmt.Sprintf("rate %.6f%%", rate),
			}
		}
	}
	if expect.Counterexamples != nil && len(scan.Counterexamples) != *expect.Counterexamples {
		return &AssertionError{
			Check:    CheckGapScan,
			Expected: fmt.Sprintf("gap %d: %d retained counterexamples", check.Gap, *expect.Counterexamples),
			Actual:   fmt.Sprintf("%d retained counterexamples", len(scan.Counterexamples)),
		}
	}
	return nil
}

// runCrossCheck verifies that the gap-pair scanner and the independent mod-6
// structural scan agree exactly on pair membership and property verdicts.
func runCrossCheck(seq *primes.Sequence, maxPrime int64, check Check) error {
	modulus := modulusOrDefault(check)
	scan := analysis.ScanGapPairs(seq, check.Gap, modulus)
	records := analysis.ScanMod6Range(maxPrime, check.Gap)

	if scan.TotalPairs != int64(len(records)) {
		return &AssertionError{
			Check:    CheckCrossCheck,
			Expected: fmt.Sprintf("gap %d: both scans find the same pair count", check.Gap),
			Actual:   fmt.Sprintf("gap scan %d vs mod-6 scan %d", scan.TotalPairs, len(records)),
		}
	}

	var success int64
	for _, r := range records {
		want := analysis.HasProperty(r.P1, r.P2, modulus)
		if r.HasProperty != want {
			return &AssertionError{
				Check:    CheckCrossCheck,
				Expected: fmt.Sprintf("pair (%d,%d): has_property=%v", r.P1, r.P2, want),
				Actual:   fmt.Sprintf("has_property=%v", r.HasProperty),
			}
		}
		if r.HasProperty {
			success++
		}
	}
	if success != scan.SuccessfulPairs {
		return &AssertionError{
			Check:    CheckCrossCheck,
			Expected: fmt.Sprintf("gap %d: both scans count the same successes", check.Gap),
			Actual:   fmt.Sprintf("gap scan %d vs mod-6 scan %d", scan.SuccessfulPairs, success),
		}
	}
	return nil
}

// runPatternTotalsCheck verifies that pattern grouping partitions the pairs:
// per-pattern totals must sum to the number of qualifying pairs.
func runPatternTotalsCheck(maxPrime int64, check Check) error {
	records := analysis.ScanMod6Range(maxPrime, check.Gap)
	ps := analysis.GroupByPattern(records)

	var sum int64
	for _, stat := range ps.Stats {
		sum += stat.Total
	}
	if sum != int64(len(records)) {
		return &AssertionError{
			Check:    CheckPatternTotals,
			Expected: fmt.Sprintf("gap %d: pattern totals sum to %d pairs", check.Gap, len(records)),
			Actual:   fmt.Sprintf("sum %d", sum),
		}
	}
	return nil
}

// runRateBoundsCheck verifies every defined rate over the default gap set
// lies in [0,100], and that pairless gaps report no rate at all.
func runRateBoundsCheck(seq *primes.Sequence) error {
	cfg := analysis.Default()
	for _, gap := range cfg.Gaps {
		scan := analysis.ScanGapPairs(seq, gap, cfg.Modulus)
		rate, ok := scan.Rate()
		if !ok {
			continue
		}
		if rate < 0 || rate > 100 {
			return &AssertionError{
				Check:    CheckRateBounds,
				Expected: fmt.Sprintf("gap %d: rate within [0,100]", gap),
				Actual:   fmt.Sprintf("rate %.6f", rate),
			}
		}
	}
	return nil
}
