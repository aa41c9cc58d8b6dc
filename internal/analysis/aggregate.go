package analysis

import (
	"fmt"
	"math"
	"sort"
)

// RateTolerance is the floating-point tolerance within which a rate counts
// as exactly 100%.
const RateTolerance = 1e-9

// GroupStat is a total/success tally for one grouping key.
type GroupStat struct {
	Total   int64 `json:"total"`
	Success int64 `json:"success"`
}

// Rate returns the success rate in percent and whether it is defined.
func (g GroupStat) Rate() (float64, bool) {
	if g.Total == 0 {
		return 0, false
	}
	return float64(g.Success) / float64(g.Total) * 100, true
}

// FullySuccessful reports whether every pair in the group succeeded,
// judged as rate == 100% within RateTolerance.
func (g GroupStat) FullySuccessful() bool {
	rate, ok := g.Rate()
	return ok && math.Abs(rate-100.0) < RateTolerance
}

// PatternKey formats a last-digit pattern as its display key, e.g. "3→9".
func PatternKey(y1, y2 int64) string {
	return fmt.Sprintf("%d→%d", y1, y2)
}

// GroupByResidue tallies records by their p1 mod 6 residue.
// Only residues 1 and 5 occur for primes ≥ 11.
func GroupByResidue(records []PairRecord) map[int64]GroupStat {
	stats := make(map[int64]GroupStat)
	for _, r := range records {
		s := stats[r.Residue]
		s.Total++
		if r.HasProperty {
			s.Success++
		}
		stats[r.Residue] = s
	}
	return stats
}

// PatternStats holds the per-pattern tallies plus, for every pattern with at
// least one failure, the earliest failing record as its diagnostic example.
type PatternStats struct {
	Stats           map[string]GroupStat
	FailingExamples map[string]PairRecord
}

// SortedKeys returns the pattern keys in lexicographic order, the order the
// report lists them in.
func (p PatternStats) SortedKeys() []string {
	keys := make([]string, 0, len(p.Stats))
	for k := range p.Stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedFailingKeys returns the keys of failing patterns in lexicographic order.
func (p PatternStats) SortedFailingKeys() []string {
	keys := make([]string, 0, len(p.FailingExamples))
	for k := range p.FailingExamples {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GroupByPattern tallies records by their last-digit pattern (Y1→Y2) and
// retains the first-encountered failing record per failing pattern.
func GroupByPattern(records []PairRecord) PatternStats {
	ps := PatternStats{
		Stats:           make(map[string]GroupStat),
		FailingExamples: make(map[string]PairRecord),
	}
	for _, r := range records {
		key := PatternKey(r.Y1, r.Y2)
		s := ps.Stats[key]
		s.Total++
		if r.HasProperty {
			s.Success++
		} else if _, seen := ps.FailingExamples[key]; !seen {
			ps.FailingExamples[key] = r
		}
		ps.Stats[key] = s
	}
	return ps
}
