package primes

// DeltaUndefined is the sentinel returned by Delta for n < 10, where the
// digit split has no leading-digit part. Callers must check for it before
// using the value; it is defined behavior, not a fault.
const DeltaUndefined int64 = -1

// Delta computes the digit-square invariant Δ(n) = X² + Y² − n, where
// X = n/10 and Y = n%10 are the leading digits and last digit of n in
// base 10. Defined for n ≥ 10; returns DeltaUndefined otherwise.
//
// Δ(n) may be negative (Δ(11) = −9). The analyses only ever test Δ for
// divisibility, which is unaffected by sign.
func Delta(n int64) int64 {
	if n < 10 {
		return DeltaUndefined
	}
	x := n / 10
	y := n % 10
	return x*x + y*y - n
}
