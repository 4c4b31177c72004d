// Package prime holds the number-theory helpers behind the counter's
// "is this prime?" and "what is the nth prime?" questions.
package prime

import "context"

// DefaultNthLimit bounds how many primes Nth will walk before giving up.
const DefaultNthLimit = 100_000

// IsPrime reports whether p is prime using trial division up to the integer
// square root of p.
func IsPrime(p int) bool {
	if p <= 1 {
		return false
	}
	if p <= 3 {
		return true
	}
	limit := Sqrt(p)
	for i := 2; i <= limit; i++ {
		if p%i == 0 {
			return false
		}
	}
	return true
}

// Sqrt returns floor(sqrt(n)) for n >= 0 and 0 otherwise.
//
// It uses Newton's iteration on integers so large inputs never undershoot the
// true root the way a float64 round trip can.
func Sqrt(n int) int {
	if n < 2 {
		if n < 0 {
			return 0
		}
		return n
	}
	x := n
	y := x/2 + (x & 1)
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// Nth returns the n-th prime (1-based). It reports false when n < 1 or when n
// exceeds DefaultNthLimit.
func Nth(n int) (int, bool) {
	return NthWithin(n, DefaultNthLimit)
}

// NthWithin is Nth with an explicit bound on n.
func NthWithin(n, limit int) (int, bool) {
	return NthContext(context.Background(), n, limit)
}

// cancelCheckInterval is how many candidates NthContext tests between
// context checks.
const cancelCheckInterval = 1024

// NthContext is NthWithin that gives up, reporting false, once ctx is done.
func NthContext(ctx context.Context, n, limit int) (int, bool) {
	if n < 1 || (limit > 0 && n > limit) {
		return 0, false
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Err() != nil {
		return 0, false
	}
	found := 0
	for candidate := 2; ; candidate++ {
		if candidate%cancelCheckInterval == 0 && ctx.Err() != nil {
			return 0, false
		}
		if !IsPrime(candidate) {
			continue
		}
		found++
		if found == n {
			return candidate, true
		}
	}
}
