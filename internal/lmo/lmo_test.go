package lmo

import (
	"context"
	"testing"

	"github.com/jgmbenoit/primecount/internal/primesieve"
)

func bruteForcePi(x int64) int64 {
	var count int64
	for n := int64(2); n <= x; n++ {
		isPrime := true
		for d := int64(2); d*d <= n; d++ {
			if n%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			count++
		}
	}
	return count
}

func TestPiMatchesBruteForce(t *testing.T) {
	cases := []int64{0, 1, 2, 10, 100, 1000, 10000, 100000}
	for _, x := range cases {
		want := bruteForcePi(x)
		got, err := Pi(context.Background(), x, Options{Threads: 2})
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Pi(%d) = %d, want %d", x, got, want)
		}
	}
}

// bruteForceS1 is an independent, trial-division-based reference for S1,
// exercised at a y large enough (>361) to force S1 onto its
// factortable-backed wheel path.
func bruteForceS1(x, y, c int64) int64 {
	mu := func(n int64) int {
		if n == 1 {
			return 1
		}
		m, factors, exp := n, 0, 0
		for p := int64(2); p*p <= m; p++ {
			if m%p == 0 {
				exp = 0
				for m%p == 0 {
					m /= p
					exp++
				}
				if exp > 1 {
					return 0
				}
				factors++
			}
		}
		if m > 1 {
			factors++
		}
		if factors%2 == 0 {
			return 1
		}
		return -1
	}
	lpf := func(n int64) int64 {
		if n == 1 {
			return 0
		}
		for p := int64(2); p*p <= n; p++ {
			if n%p == 0 {
				return p
			}
		}
		return n
	}

	primes, err := primesieve.Primes(context.Background(), y, 2)
	if err != nil {
		panic(err)
	}
	cPrime := int64(primes[c])

	var total int64
	for n := int64(1); n <= y; n++ {
		m := mu(n)
		if m == 0 {
			continue
		}
		if n == 1 || lpf(n) > cPrime {
			total += int64(m) * phiBrute(x/n, c)
		}
	}
	return total
}

func phiBrute(x, a int64) int64 {
	if x <= 0 {
		return 0
	}
	primes, err := primesieve.Primes(context.Background(), 20, 1)
	if err != nil {
		panic(err)
	}
	var count int64
	for n := int64(1); n <= x; n++ {
		keep := true
		for i := int64(1); i <= a; i++ {
			if n%int64(primes[i]) == 0 {
				keep = false
				break
			}
		}
		if keep {
			count++
		}
	}
	return count
}

func TestS1MatchesBruteForceOnWheelPath(t *testing.T) {
	const y = 500 // > 361, forces c = 7, cPrime = 17 >= wheelMinPrime
	const x = 50000

	mu, lpf := primesieve.MobiusAndLPF(y)
	primes, err := primesieve.Primes(context.Background(), y, 2)
	if err != nil {
		t.Fatal(err)
	}
	c := int64(7)

	got := S1(x, y, c, primes, lpf, mu)
	want := bruteForceS1(x, y, c)
	if got != want {
		t.Errorf("S1(%d,%d,%d) = %d, want %d", x, y, c, got, want)
	}
}

func TestPiDeterministicAcrossThreadCounts(t *testing.T) {
	const x = 500000
	want, err := Pi(context.Background(), x, Options{Threads: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, threads := range []int{2, 4, 8} {
		got, err := Pi(context.Background(), x, Options{Threads: threads})
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Pi(%d) with threads=%d = %d, want %d", x, threads, got, want)
		}
	}
}
