// Package lookup defines the nth-prime collaborator the counter screen calls
// into, and the channel adapter that runs it off the caller's goroutine.
//
// A lookup either finds a value or it does not. Transport failures, malformed
// responses and missing answers all collapse into Found == false; callers
// treat that as "no data", never as an error.
package lookup

import (
	"context"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/prime"
)

// Lookup answers "what is the n-th prime?".
type Lookup interface {
	NthPrime(ctx context.Context, n int) (int, bool)
}

// Func adapts a function to Lookup.
type Func func(ctx context.Context, n int) (int, bool)

// NthPrime calls f.
func (f Func) NthPrime(ctx context.Context, n int) (int, bool) {
	return f(ctx, n)
}

// Result is the single value a started lookup delivers.
type Result struct {
	N     int
	Value int
	Found bool
}

// Start runs l in a new goroutine and returns a channel that receives exactly
// one Result and is then closed. A nil lookup, a cancelled context or an
// expired deadline delivers a not-found result; a lookup still running when
// ctx ends is abandoned.
//
// Overlapping lookups are independent: nothing cancels an earlier one and
// results arrive in completion order.
func Start(ctx context.Context, l Lookup, n int) <-chan Result {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		done := make(chan Result, 1)
		go func() { done <- run(ctx, l, n) }()
		select {
		case result := <-done:
			out <- result
		case <-ctx.Done():
			out <- Result{N: n}
		}
	}()
	return out
}

func run(ctx context.Context, l Lookup, n int) (result Result) {
	result = Result{N: n}
	if l == nil {
		return result
	}
	if ctx.Err() != nil {
		return result
	}
	defer func() {
		if recover() != nil {
			result = Result{N: n}
		}
	}()
	value, found := l.NthPrime(ctx, n)
	if !found {
		return result
	}
	result.Value = value
	result.Found = true
	return result
}

// Local answers lookups in-process by trial division. Limit bounds n; zero
// uses prime.DefaultNthLimit.
type Local struct {
	Limit int
}

// NthPrime returns the n-th prime, or false when n is out of range or ctx is
// done.
func (l Local) NthPrime(ctx context.Context, n int) (int, bool) {
	limit := l.Limit
	if limit <= 0 {
		limit = prime.DefaultNthLimit
	}
	return prime.NthContext(ctx, n, limit)
}
