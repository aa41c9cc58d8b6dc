// Package testutil provides trusted reference implementations used to
// cross-validate the production number-theory code in tests.
package testutil

// Sieve returns all primes up to and including max, computed with a classic
// sieve of Eratosthenes.
//
// This is the independent reference against which the trial-division oracle
// and the enumerator are validated. It deliberately shares no code with
// package primes.
func Sieve(max int64) []int64 {
	if max < 2 {
		return nil
	}
	composite := make([]bool, max+1)
	var out []int64
	for n := int64(2); n <= max; n++ {
		if composite[n] {
			continue
		}
		out = append(out, n)
		for m := n * n; m <= max; m += n {
			composite[m] = true
		}
	}
	return out
}

// IsPrimeSlow reports primality by checking every divisor from 2 to n−1.
// Only suitable for small n; exists so tests have a second opinion that is
// obviously correct.
func IsPrimeSlow(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
