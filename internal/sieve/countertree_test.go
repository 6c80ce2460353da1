package sieve

import "testing"

// TestCounterTreeMatchesFreshPopcount is the round-trip named in spec.md
// §8: "after sieving primes <= P in [low, low+S), count(0,i) equals a fresh
// popcount over bits[0..i] for every i and for every update sequence."
func TestCounterTreeMatchesFreshPopcount(t *testing.T) {
	const size = 500
	bs := NewBitSieve(size)
	bs.Reset(1)
	ct := NewCounterTree(bs)
	ct.Init()

	// Strike multiples of 3, 5, 7 (as if crossing off small primes) and
	// check the invariant holds after every strike.
	for _, p := range []int64{3, 5, 7} {
		for i := int64(0); i < size; i += p {
			if bs.Test(i) {
				bs.Unset(i)
				ct.Unset(i)
			}
			for _, q := range []int64{0, i, size - 1} {
				want := bs.Count(0, q)
				got := ct.Query(q)
				if got != want {
					t.Fatalf("after unsetting %d: Query(%d) = %d, want %d", i, q, got, want)
				}
			}
		}
	}
}

func TestCounterTreeSingleBlock(t *testing.T) {
	bs := NewBitSieve(10)
	bs.Reset(0)
	ct := NewCounterTree(bs)
	ct.Init()
	for i := int64(0); i < 10; i++ {
		want := bs.Count(0, i)
		if got := ct.Query(i); got != want {
			t.Fatalf("Query(%d) = %d, want %d", i, got, want)
		}
	}
}
