package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/primepair/internal/primes"
)

// Gap-6 pairs with 11 ≤ p1 ≤ 94: computed by hand for exact assertions.
// Failures are (23,29), (53,59), (83,89); every failing p1 ≡ 5 (mod 6).
func TestScanMod6RangeGap6Below100(t *testing.T) {
	records := ScanMod6Range(100, 6)

	wantP1 := []int64{11, 13, 17, 23, 31, 37, 41, 47, 53, 61, 67, 73, 83}
	require.Len(t, records, len(wantP1))

	failing := map[int64]bool{23: true, 53: true, 83: true}
	for i, r := range records {
		assert.Equal(t, wantP1[i], r.P1)
		assert.Equal(t, r.P1+6, r.P2)
		assert.Equal(t, r.P1%6, r.Residue)
		assert.Equal(t, r.P1%10, r.Y1)
		assert.Equal(t, r.P2%10, r.Y2)
		assert.Equal(t, !failing[r.P1], r.HasProperty, "p1=%d", r.P1)
	}
}

func TestScanMod6RangeResidueBreakdown(t *testing.T) {
	records := ScanMod6Range(100, 6)
	stats := GroupByResidue(records)

	require.Len(t, stats, 2, "only residues 1 and 5 occur")
	assert.Equal(t, GroupStat{Total: 6, Success: 6}, stats[1])
	assert.Equal(t, GroupStat{Total: 7, Success: 4}, stats[5])

	assert.True(t, stats[1].FullySuccessful())
	assert.False(t, stats[5].FullySuccessful())
}

func TestScanMod6RangePatternBreakdown(t *testing.T) {
	records := ScanMod6Range(100, 6)
	ps := GroupByPattern(records)

	assert.Equal(t, []string{"1→7", "3→9", "7→3"}, ps.SortedKeys())
	assert.Equal(t, GroupStat{Total: 4, Success: 4}, ps.Stats["1→7"])
	assert.Equal(t, GroupStat{Total: 5, Success: 2}, ps.Stats["3→9"])
	assert.Equal(t, GroupStat{Total: 4, Success: 4}, ps.Stats["7→3"])

	// Exactly one failing pattern; its diagnostic example is the earliest
	// failure (23,29), whose leading digits are both ≡ 2 (mod 3).
	require.Equal(t, []string{"3→9"}, ps.SortedFailingKeys())
	ex := ps.FailingExamples["3→9"]
	assert.Equal(t, int64(23), ex.P1)
	assert.Equal(t, int64(29), ex.P2)
	assert.Equal(t, int64(2), ex.X1Mod3)
	assert.Equal(t, int64(2), ex.X2Mod3)
}

func TestPatternTotalsSumToPairCount(t *testing.T) {
	for _, gap := range []int64{6, 12, 18} {
		records := ScanMod6Range(2000, gap)
		ps := GroupByPattern(records)

		var sum int64
		for _, s := range ps.Stats {
			sum += s.Total
		}
		assert.Equal(t, int64(len(records)), sum, "gap=%d", gap)
	}
}

// The two scans must agree exactly: same pairs, same property verdicts.
func TestMod6ScanCrossChecksGapScan(t *testing.T) {
	const bound = 1000
	const gap = 6

	seq := primes.UpTo(bound)
	scan := ScanGapPairs(seq, gap, 3)
	records := ScanMod6Range(bound, gap)

	assert.Equal(t, scan.TotalPairs, int64(len(records)))

	var success int64
	recorded := make(map[int64]bool)
	for _, r := range records {
		recorded[r.P1] = true
		if r.HasProperty {
			success++
		}
		// Verdicts must match the gap-scan predicate exactly.
		assert.Equal(t, HasProperty(r.P1, r.P2, 3), r.HasProperty, "p1=%d", r.P1)
	}
	assert.Equal(t, scan.SuccessfulPairs, success)

	// Membership: every pair the gap scan would count appears in the records.
	for _, p1 := range seq.Values() {
		if p1 < MinPrime || p1+gap > seq.Max() || !seq.Contains(p1+gap) {
			continue
		}
		assert.True(t, recorded[p1], "pair (%d,%d) missing from mod-6 scan", p1, p1+gap)
	}
}

func TestScanMod6RangeDegenerateBound(t *testing.T) {
	assert.Empty(t, ScanMod6Range(10, 6))
	assert.Empty(t, ScanMod6Range(0, 6))
	assert.Empty(t, ScanMod6Range(-50, 6))
}
