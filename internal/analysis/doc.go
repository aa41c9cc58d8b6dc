// Package analysis implements the two scans at the heart of the analyzer.
//
// The gap-pair scan walks the enumerated prime sequence once per gap k and
// classifies every pair (p, p+k) of primes with p ≥ 11 by whether at least
// one member's digit-square invariant Δ is divisible by the modulus under
// test (3 for every published analysis). The scan reports totals, successes,
// and up to the first ten counterexamples.
//
// The mod-6 structural scan covers gaps divisible by 6, where failures are
// known to occur. It deliberately re-derives primality per candidate instead
// of consuming the enumerated sequence, so the two scans stay independently
// verifiable against each other (the conformance harness exercises exactly
// that cross-check). Each qualifying pair is recorded with its p mod 6
// residue and last-digit pattern; the grouping functions in this package
// aggregate those records into the per-residue and per-pattern statistics
// the report renders.
//
// Gap sets, gap names, the modulus, and the universal-gap annotation are
// explicit configuration (Set), passed into entry points rather than held
// as process-wide state.
package analysis
