package prime

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		p    int
		want bool
	}{
		{p: math.MinInt, want: false},
		{p: -7, want: false},
		{p: 0, want: false},
		{p: 1, want: false},
		{p: 2, want: true},
		{p: 3, want: true},
		{p: 4, want: false},
		{p: 9, want: false},
		{p: 17, want: true},
		{p: 25, want: false},
		{p: 49, want: false},
		{p: 97, want: true},
		{p: 7919, want: true},
		{p: 7921, want: false}, // 89*89
	}
	for _, tt := range tests {
		if got := IsPrime(tt.p); got != tt.want {
			t.Fatalf("IsPrime(%d) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestIsPrime_SquaresOfLargePrimes(t *testing.T) {
	const p = 46337
	if !IsPrime(p) {
		t.Fatalf("expected %d to be prime", p)
	}
	if IsPrime(p * p) {
		t.Fatalf("expected %d to be composite", p*p)
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: -4, want: 0},
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 2, want: 1},
		{n: 3, want: 1},
		{n: 4, want: 2},
		{n: 15, want: 3},
		{n: 16, want: 4},
		{n: 17, want: 4},
		{n: 1_000_000, want: 1000},
		{n: 999_999, want: 999},
	}
	for _, tt := range tests {
		if got := Sqrt(tt.n); got != tt.want {
			t.Fatalf("Sqrt(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSqrt_NeverUndershoots(t *testing.T) {
	for n := 0; n < 20000; n++ {
		r := Sqrt(n)
		if r*r > n || (r+1)*(r+1) <= n {
			t.Fatalf("Sqrt(%d) = %d is not the floor root", n, r)
		}
	}
}

func TestNth(t *testing.T) {
	tests := []struct {
		n     int
		want  int
		found bool
	}{
		{n: 0, found: false},
		{n: -3, found: false},
		{n: 1, want: 2, found: true},
		{n: 2, want: 3, found: true},
		{n: 6, want: 13, found: true},
		{n: 100, want: 541, found: true},
	}
	for _, tt := range tests {
		got, found := Nth(tt.n)
		if found != tt.found || got != tt.want {
			t.Fatalf("Nth(%d) = (%d, %v), want (%d, %v)", tt.n, got, found, tt.want, tt.found)
		}
	}
}

func TestNthWithin_Limit(t *testing.T) {
	if _, found := NthWithin(11, 10); found {
		t.Fatal("expected lookup beyond limit to report not found")
	}
	if got, found := NthWithin(10, 10); !found || got != 29 {
		t.Fatalf("NthWithin(10, 10) = (%d, %v), want (29, true)", got, found)
	}
}

func TestNthContext_StopsWhenDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, found := NthContext(ctx, 3, 0); found {
		t.Fatal("expected cancelled context to report not found")
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	start := time.Now()
	if _, found := NthContext(ctx, 5_000_000, 0); found {
		t.Fatal("expected expired deadline to report not found")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("search ran %s past a 10ms deadline", elapsed)
	}
}

func TestNthContext_MatchesNthWithin(t *testing.T) {
	for n := 1; n <= 200; n++ {
		want, _ := NthWithin(n, 0)
		got, found := NthContext(context.Background(), n, 0)
		if !found || got != want {
			t.Fatalf("NthContext(%d) = (%d, %v), want (%d, true)", n, got, found, want)
		}
	}
}
