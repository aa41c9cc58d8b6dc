package analysis

import (
	"github.com/roach88/primepair/internal/primes"
)

// MinPrime is the smallest p1 any analysis considers. The paper's theorems
// hold for p ≥ 11, which also guarantees Δ is defined for both pair members.
const MinPrime int64 = 11

// CounterexampleCap bounds how many failing pairs a scan retains.
// Totals and success counts always reflect the full scan.
const CounterexampleCap = 10

// Pair is a qualifying prime pair (p2 = p1 + gap).
type Pair struct {
	P1 int64 `json:"p1"`
	P2 int64 `json:"p2"`
}

// GapScan is the outcome of scanning one gap over the prime sequence.
type GapScan struct {
	Gap             int64  `json:"gap"`
	Modulus         int64  `json:"modulus"`
	TotalPairs      int64  `json:"total_pairs"`
	SuccessfulPairs int64  `json:"successful_pairs"`
	Counterexamples []Pair `json:"counterexamples,omitempty"`
}

// Rate returns the success rate in percent and whether it is defined.
// A scan with no pairs has no rate.
func (s GapScan) Rate() (float64, bool) {
	if s.TotalPairs == 0 {
		return 0, false
	}
	return float64(s.SuccessfulPairs) / float64(s.TotalPairs) * 100, true
}

// HasProperty reports whether the pair (p1, p2) satisfies the divisibility
// property: Δ(p1) or Δ(p2) is divisible by modulus. Δ may be negative, which
// does not affect the divisibility test.
func HasProperty(p1, p2, modulus int64) bool {
	return primes.Delta(p1)%modulus == 0 || primes.Delta(p2)%modulus == 0
}

// ScanGapPairs walks the prime sequence in ascending order and classifies
// every pair (p1, p1+gap) with p1 ≥ 11 and both members prime.
//
// Iteration stops once p1+gap exceeds the largest enumerated prime, since no
// further pair can have its upper member in range. Counterexamples are
// collected in encounter order and capped at CounterexampleCap; counting is
// unaffected by the cap.
func ScanGapPairs(seq *primes.Sequence, gap, modulus int64) GapScan {
	scan := GapScan{Gap: gap, Modulus: modulus}
	max := seq.Max()

	for _, p1 := range seq.Values() {
		if p1 < MinPrime {
			continue
		}
		p2 := p1 + gap
		if p2 > max {
			break
		}
		if !seq.Contains(p2) {
			continue
		}
		scan.TotalPairs++
		if HasProperty(p1, p2, modulus) {
			scan.SuccessfulPairs++
		} else if len(scan.Counterexamples) < CounterexampleCap {
			scan.Counterexamples = append(scan.Counterexamples, Pair{P1: p1, P2: p2})
		}
	}
	return scan
}
