package sieve

// NextMultiples computes, for each prime in primes[1:size), the first odd
// multiple of that prime which is >= low: the "wheel of pre-multiples" of
// spec.md §3, grounded on init_next_multiples in
// original_source/src/lmo/pi_lmo_parallel3.cpp. Index 0 is left as a
// sentinel so the slice can be indexed directly by prime rank b.
func NextMultiples(primes []int32, size, low int64) []int64 {
	next := make([]int64, size)
	for b := int64(1); b < size; b++ {
		prime := int64(primes[b])
		nextMultiple := ((low + prime - 1) / prime) * prime
		if nextMultiple&1 == 0 {
			nextMultiple += prime
		}
		next[b] = nextMultiple
	}
	return next
}

// CrossOff walks the odd multiples of prime in [next, high), clearing each
// survivor from both the BitSieve and the CounterTree, and returns the
// first multiple >= high for the next segment (the wheel advances by
// +2*prime per step, per spec.md §3's "advanced across segments"). Grounded
// on cross_off in the same source file.
func CrossOff(prime, low, high, next int64, bs *BitSieve, ct *CounterTree) int64 {
	k := next
	for ; k < high; k += 2 * prime {
		i := k - low
		if bs.Test(i) {
			bs.Unset(i)
			ct.Unset(i)
		}
	}
	return k
}
