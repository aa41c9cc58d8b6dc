// Package primes provides the primality oracle, prime enumeration, and the
// digit-square invariant Δ(n) that the rest of the analyzer is built on.
//
// All functions are pure and deterministic. Primality uses trial division
// by odd divisors up to √n, which keeps the inner loop cheap enough that
// enumerating all primes below the default bound (one million) completes in
// well under a second on ordinary hardware. The enumeration is O(N·√N) by
// construction; callers bound N.
//
// Δ(n) splits the decimal representation of n into its leading digits
// X = n/10 and last digit Y = n%10 and evaluates X² + Y² − n. It is defined
// only for n ≥ 10; below that the sentinel −1 is returned and callers must
// treat the value as undefined rather than as an error.
package primes
