package analysis

import "fmt"

// Set is the configuration for one analysis run: which gaps to scan, how to
// label them, which subset gets the mod-6 structural breakdown, and the
// modulus for the divisibility test.
//
// UniversalGaps is annotation metadata, not a computed property: it records
// the gaps the accompanying paper proves reach exactly 100% success. The
// renderer compares the annotation against the empirical rate and surfaces
// any deviation; nothing in the core derives or silently adjusts it.
type Set struct {
	// Gaps lists the gaps scanned by the gap-pair analysis, in report order.
	Gaps []int64

	// GapNames maps a gap to its display name ("Twin", "Cousin", ...).
	// Gaps without an entry render as "Gap-k".
	GapNames map[int64]string

	// Mod6Gaps lists the gaps (all multiples of 6) that additionally get the
	// structural breakdown by residue and last-digit pattern.
	Mod6Gaps []int64

	// UniversalGaps marks gaps expected to reach exactly 100% success.
	UniversalGaps []int64

	// Modulus is the divisor for the Δ divisibility test.
	Modulus int64
}

// Default returns the configured analysis set from the paper: gaps 2 through
// 30, the five multiples of 6 for structural analysis, and modulus 3.
func Default() Set {
	return Set{
		Gaps: []int64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 24, 30},
		GapNames: map[int64]string{
			2: "Twin", 4: "Cousin", 6: "Sexy",
		},
		Mod6Gaps:      []int64{6, 12, 18, 24, 30},
		UniversalGaps: []int64{2, 4, 8, 10, 12, 18},
		Modulus:       3,
	}
}

// Name returns the display name for a gap, falling back to "Gap-k".
func (s Set) Name(gap int64) string {
	if name, ok := s.GapNames[gap]; ok {
		return name
	}
	return defaultGapName(gap)
}

func defaultGapName(gap int64) string {
	return fmt.Sprintf("Gap-%d", gap)
}

// IsUniversal reports whether gap carries the proven-universal annotation.
func (s Set) IsUniversal(gap int64) bool {
	for _, g := range s.UniversalGaps {
		if g == gap {
			return true
		}
	}
	return false
}
