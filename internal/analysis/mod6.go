package analysis

import (
	"github.com/roach88/primepair/internal/primes"
)

// PairRecord is one qualifying pair from the mod-6 structural scan, carrying
// everything the downstream groupings need: the pair itself, its p1 mod 6
// residue, the last-digit pattern (Y1, Y2), the leading-digit residues
// X1 mod 3 and X2 mod 3 that explain failures, and the property outcome.
type PairRecord struct {
	P1, P2      int64
	Residue     int64 // p1 mod 6, always 1 or 5 for p1 ≥ 11
	Y1, Y2      int64 // last digits
	X1Mod3      int64 // (p1/10) mod 3
	X2Mod3      int64 // (p2/10) mod 3
	HasProperty bool
}

// ScanMod6Range enumerates every pair (p1, p1+gap) with 11 ≤ p1 ≤ maxPrime−gap
// and both members prime, for a gap divisible by 6.
//
// Primality is re-derived per candidate through the oracle rather than taken
// from an enumerated sequence. That repeats O(√n) work, but keeps this scan
// fully independent of ScanGapPairs so the two can be checked against each
// other. The property test uses modulus 3, matching the gap-pair scan.
func ScanMod6Range(maxPrime, gap int64) []PairRecord {
	var records []PairRecord
	for p1 := MinPrime; p1 <= maxPrime-gap; p1++ {
		if !primes.IsPrime(p1) {
			continue
		}
		p2 := p1 + gap
		if !primes.IsPrime(p2) {
			continue
		}
		records = append(records, PairRecord{
			P1:          p1,
			P2:          p2,
			Residue:     p1 % 6,
			Y1:          p1 % 10,
			Y2:          p2 % 10,
			X1Mod3:      (p1 / 10) % 3,
			X2Mod3:      (p2 / 10) % 3,
			HasProperty: HasProperty(p1, p2, 3),
		})
	}
	return records
}
