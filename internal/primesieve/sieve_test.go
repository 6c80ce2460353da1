package primesieve

import (
	"context"
	"testing"
)

func TestPrimesSmall(t *testing.T) {
	primes, err := Primes(context.Background(), 30, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{0, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(primes) != len(want) {
		t.Fatalf("got %v, want %v", primes, want)
	}
	for i := range want {
		if primes[i] != want[i] {
			t.Fatalf("got %v, want %v", primes, want)
		}
	}
}

func TestMobiusAndLPF(t *testing.T) {
	mu, lpf := MobiusAndLPF(20)
	wantMu := map[int64]int8{1: 1, 2: -1, 3: -1, 4: 0, 5: -1, 6: 1, 7: -1, 8: 0, 9: 0, 10: 1, 12: 0, 30: 0}
	for n, want := range wantMu {
		if n > 20 {
			continue
		}
		if mu[n] != want {
			t.Errorf("mu[%d] = %d, want %d", n, mu[n], want)
		}
	}
	wantLPF := map[int64]int32{2: 2, 3: 3, 4: 2, 6: 2, 9: 3, 15: 3, 17: 17}
	for n, want := range wantLPF {
		if lpf[n] != want {
			t.Errorf("lpf[%d] = %d, want %d", n, lpf[n], want)
		}
	}
}

func TestPrimesParallelMatchesSequential(t *testing.T) {
	const limit = 2_500_000
	seq := sequentialSieve(limit)
	par, err := parallelSieve(context.Background(), limit, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != len(par) {
		t.Fatalf("len mismatch: sequential=%d parallel=%d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("mismatch at %d: sequential=%d parallel=%d", i, seq[i], par[i])
		}
	}
}

func TestPiBSearch(t *testing.T) {
	primes := []int32{0, 2, 3, 5, 7, 11, 13}
	cases := []struct {
		v    int64
		want int64
	}{{1, 0}, {2, 1}, {4, 2}, {13, 6}, {14, 6}}
	for _, c := range cases {
		if got := PiBSearch(primes, c.v); got != c.want {
			t.Errorf("PiBSearch(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
