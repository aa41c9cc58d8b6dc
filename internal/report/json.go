package report

import (
	"github.com/roach88/primepair/internal/analysis"
)

// Report is the machine-readable form of a full analysis run, suitable for
// JSON encoding. Rates are pointers so that "no pairs, no rate" serializes
// as absence rather than as a misleading zero.
type Report struct {
	MaxPrime        int64        `json:"max_prime"`
	Modulus         int64        `json:"modulus"`
	PrimeCount      int          `json:"prime_count,omitempty"`
	PrimeGenSeconds float64      `json:"prime_gen_seconds,omitempty"`
	Gaps            []GapResult  `json:"gaps,omitempty"`
	Mod6            []Mod6Result `json:"mod6,omitempty"`
}

// GapResult is one row of the Analysis 1 table.
type GapResult struct {
	Gap             int64           `json:"gap"`
	Name            string          `json:"name"`
	TotalPairs      int64           `json:"total_pairs"`
	SuccessfulPairs int64           `json:"successful_pairs"`
	Rate            *float64        `json:"rate,omitempty"`
	Universal       bool            `json:"universal"`
	Deviates        bool            `json:"deviates,omitempty"`
	Counterexamples []analysis.Pair `json:"counterexamples,omitempty"`
}

// NewGapResult builds a GapResult from a scan, applying the universal-gap
// annotation from the configuration.
func NewGapResult(cfg analysis.Set, scan analysis.GapScan) GapResult {
	res := GapResult{
		Gap:             scan.Gap,
		Name:            cfg.Name(scan.Gap),
		TotalPairs:      scan.TotalPairs,
		SuccessfulPairs: scan.SuccessfulPairs,
		Universal:       cfg.IsUniversal(scan.Gap),
		Counterexamples: scan.Counterexamples,
	}
	if rate, ok := scan.Rate(); ok {
		res.Rate = &rate
		res.Deviates = res.Universal && !within(rate, 100.0)
	}
	return res
}

// ResidueRate is one mod-6 residue class tally.
type ResidueRate struct {
	Residue int64   `json:"residue"`
	Total   int64   `json:"total"`
	Success int64   `json:"success"`
	Rate    float64 `json:"rate"`
}

// FailureExample is the diagnostic counterexample for a failing pattern.
type FailureExample struct {
	P1     int64 `json:"p1"`
	P2     int64 `json:"p2"`
	X1Mod3 int64 `json:"x1_mod3"`
	X2Mod3 int64 `json:"x2_mod3"`
}

// PatternRate is one last-digit-pattern tally.
type PatternRate struct {
	Pattern         string          `json:"pattern"`
	Total           int64           `json:"total"`
	Success         int64           `json:"success"`
	Rate            float64         `json:"rate"`
	FullySuccessful bool            `json:"fully_successful"`
	Example         *FailureExample `json:"example,omitempty"`
}

// Mod6Result is the structural breakdown for one gap, with residues and
// patterns in stable sorted order.
type Mod6Result struct {
	Gap      int64         `json:"gap"`
	Residues []ResidueRate `json:"residues"`
	Patterns []PatternRate `json:"patterns"`
}

// NewMod6Result converts an aggregated section into its serializable form.
func NewMod6Result(sec Mod6Section) Mod6Result {
	res := Mod6Result{Gap: sec.Gap}

	for _, residue := range []int64{1, 5} {
		stat := sec.Residues[residue]
		rate, ok := stat.Rate()
		if !ok {
			continue
		}
		res.Residues = append(res.Residues, ResidueRate{
			Residue: residue,
			Total:   stat.Total,
			Success: stat.Success,
			Rate:    rate,
		})
	}

	for _, key := range sec.Patterns.SortedKeys() {
		stat := sec.Patterns.Stats[key]
		rate, _ := stat.Rate()
		pr := PatternRate{
			Pattern:         key,
			Total:           stat.Total,
			Success:         stat.Success,
			Rate:            rate,
			FullySuccessful: stat.FullySuccessful(),
		}
		if ex, ok := sec.Patterns.FailingExamples[key]; ok {
			pr.Example = &FailureExample{P1: ex.P1, P2: ex.P2, X1Mod3: ex.X1Mod3, X2Mod3: ex.X2Mod3}
		}
		res.Patterns = append(res.Patterns, pr)
	}
	return res
}
