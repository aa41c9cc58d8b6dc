package primes

// IsPrime reports whether n is prime.
//
// Total over all int64 inputs: negatives, 0, and 1 are simply not prime.
// Trial division by odd divisors while divisor² ≤ n, so cost is O(√n).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Sequence is the strictly increasing sequence of all primes in [2, max],
// paired with a membership set for O(1) pair lookup.
//
// A Sequence is built once by UpTo and must not be mutated afterwards; it is
// shared read-only across every gap analysis in a run.
type Sequence struct {
	values []int64
	set    map[int64]struct{}
}

// UpTo enumerates all primes p with 2 ≤ p ≤ max, in ascending order.
// A bound below 2 yields an empty (but usable) Sequence.
func UpTo(max int64) *Sequence {
	s := &Sequence{set: make(map[int64]struct{})}
	for n := int64(2); n <= max; n++ {
		if IsPrime(n) {
			s.values = append(s.values, n)
			s.set[n] = struct{}{}
		}
	}
	return s
}

// Values returns the underlying ascending slice of primes.
// Callers must treat the slice as read-only.
func (s *Sequence) Values() []int64 {
	return s.values
}

// Contains reports whether n is one of the enumerated primes.
func (s *Sequence) Contains(n int64) bool {
	_, ok := s.set[n]
	return ok
}

// Len returns the number of primes in the sequence.
func (s *Sequence) Len() int {
	return len(s.values)
}

// Max returns the largest prime in the sequence, or 0 if it is empty.
func (s *Sequence) Max() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}
