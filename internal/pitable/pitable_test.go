package pitable

import (
	"context"
	"testing"
)

func linearSievePi(max int64) []int64 {
	isComposite := make([]bool, max+1)
	pi := make([]int64, max+1)
	count := int64(0)
	for n := int64(2); n <= max; n++ {
		if !isComposite[n] {
			count++
			for m := n * n; m <= max && n > 0; m += n {
				isComposite[m] = true
			}
		}
		pi[n] = count
	}
	return pi
}

// TestPiMatchesLinearSieve is the round-trip named in spec.md §8:
// "PiTable.pi(n) equals a linear-sieve pi up to n <= 10^6."
func TestPiMatchesLinearSieve(t *testing.T) {
	const max = 1_000_000
	want := linearSievePi(max)

	table, err := New(context.Background(), max, 4)
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(0); n <= max; n += 97 {
		if got := table.Pi(n); got != want[n] {
			t.Fatalf("Pi(%d) = %d, want %d", n, got, want[n])
		}
	}
	// also check every n near a word boundary, where off-by-one bit
	// placement bugs tend to surface.
	for w := int64(0); w*wordSpan <= max; w++ {
		for _, n := range []int64{w*wordSpan - 1, w * wordSpan, w*wordSpan + 1} {
			if n < 0 || n > max {
				continue
			}
			if got := table.Pi(n); got != want[n] {
				t.Fatalf("Pi(%d) = %d, want %d", n, got, want[n])
			}
		}
	}
}

func TestPiSmallValues(t *testing.T) {
	table, err := New(context.Background(), 30, 1)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[int64]int64{0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 10: 4, 11: 5, 29: 10}
	for n, want := range cases {
		if got := table.Pi(n); got != want {
			t.Errorf("Pi(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestPiThreadCountIndependent(t *testing.T) {
	const max = 200_000
	one, err := New(context.Background(), max, 1)
	if err != nil {
		t.Fatal(err)
	}
	four, err := New(context.Background(), max, 4)
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(0); n <= max; n += 53 {
		if one.Pi(n) != four.Pi(n) {
			t.Fatalf("Pi(%d) differs across thread counts: 1->%d 4->%d", n, one.Pi(n), four.Pi(n))
		}
	}
}
