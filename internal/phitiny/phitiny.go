// Package phitiny implements spec.md §4.3's closed-form φ(x,a) for a <= 7:
// one period of the first a primes is tabulated once, and any φ(x,a) query
// reduces to a division and a table lookup.
package phitiny

// MaxA is the largest prime-index cutoff PhiTiny handles directly
// (spec.md §4.3: "a <= MAX_A = 7").
const MaxA = 7

var firstPrimes = [MaxA]int64{2, 3, 5, 7, 11, 13, 17}

// periods[a] is the product of the first a primes (Π = 2 for a=1, up to
// 2*3*5*7*11*13*17 = 510510 for a=7).
var periods [MaxA + 1]int64

// table[a] holds phi(r, a) for r in [0, periods[a]), and totals[a] holds
// phi(periods[a], a), the count over one full period.
var table [MaxA + 1][]int32
var totals [MaxA + 1]int64

func init() {
	periods[0] = 1
	table[0] = []int32{0}
	totals[0] = 1

	period := int64(1)
	for a := 1; a <= MaxA; a++ {
		period *= firstPrimes[a-1]
		periods[a] = period

		coprime := make([]bool, period)
		for i := range coprime {
			coprime[i] = true
		}
		coprime[0] = false
		for _, p := range firstPrimes[:a] {
			for m := p; m < period; m += p {
				coprime[m] = false
			}
		}
		t := make([]int32, period)
		count := int32(0)
		for r := int64(1); r < period; r++ {
			if coprime[r] {
				count++
			}
			t[r] = count
		}
		table[a] = t
		totals[a] = int64(count) // period is always a multiple of p_1, so it is never itself coprime
	}
}

// Phi returns phi(x, a): the count of integers in [1, x] not divisible by
// any of the first a primes, for a <= MaxA. x may be 0 or negative (yielding
// 0), matching the partial-sieve function's boundary behaviour.
func Phi(x int64, a int) int64 {
	if x <= 0 {
		return 0
	}
	if a <= 0 {
		return x
	}
	if a > MaxA {
		a = MaxA
	}
	period := periods[a]
	q, r := x/period, x%period
	return q*totals[a] + int64(table[a][r])
}

// GetC returns the largest a <= MaxA such that primes[a+1]^2 <= y, spec.md
// §4.3's get_c: the cutoff below which PhiTiny handles phi(·, a) directly
// instead of falling through to a hard-leaf sieve. primes is 1-indexed with
// a sentinel at index 0.
func GetC(y int64, primes []int32) int64 {
	c := int64(0)
	for a := int64(1); a <= MaxA; a++ {
		if int(a+1) >= len(primes) {
			break
		}
		p := int64(primes[a+1])
		if p*p > y {
			break
		}
		c = a
	}
	return c
}
