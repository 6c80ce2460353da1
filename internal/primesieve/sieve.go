// Package primesieve is the external prime-generation collaborator spec.md
// §1 calls out as out of core scope ("the underlying prime generator...
// yielding primes in order"). It is adapted from the teacher's segmented
// sieve (anisomorphic-Parallel-Prime-Sieve/main.go): a base sieve up to
// sqrt(limit) feeds a wave of segment workers, each sieving its own window
// with the base primes, whose results are then concatenated in segment
// order — the same "ordered channel of channels" idea, rewritten around an
// errgroup wave with an explicit combine step so it composes with the rest
// of the engine's wave/combine model instead of running its own pipeline of
// goroutines and channels for the whole call tree.
package primesieve

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jgmbenoit/primecount/internal/arith"
)

// Primes returns primes[1..pi(limit)] ascending, 1-indexed with a sentinel
// zero at index 0 (spec.md §3: "entry 0 reserved as sentinel 0"). For small
// limits (below segmentThreshold) a single flat sieve is used; for larger
// limits the [sqrt(limit)+1, limit] tail is generated by a wave of segment
// workers, matching the teacher's GenSegment/GenPrimes split.
func Primes(ctx context.Context, limit int64, threads int) ([]int32, error) {
	if limit < 2 {
		return []int32{0}, nil
	}
	if limit < segmentThreshold {
		return sequentialSieve(limit), nil
	}
	return parallelSieve(ctx, limit, threads)
}

const segmentThreshold = 1 << 20

// sequentialSieve is a classic odd-only sieve of Eratosthenes, the same
// bit-packing idea as the teacher's OddBits/ArrayPrimes but backed by a
// plain []bool for clarity at small sizes where memory is not the bottleneck.
func sequentialSieve(limit int64) []int32 {
	composite := make([]bool, limit+1)
	primes := make([]int32, 0, estimatePiCount(limit))
	primes = append(primes, 0) // sentinel
	if limit >= 2 {
		primes = append(primes, 2)
	}
	for i := int64(3); i <= limit; i += 2 {
		if !composite[i] {
			primes = append(primes, int32(i))
			if i <= limit/i {
				for j := i * i; j <= limit; j += 2 * i {
					composite[j] = true
				}
			}
		}
	}
	return primes
}

// parallelSieve mirrors the teacher's GenPrimes: sieve the base primes up to
// sqrt(limit) serially, then hand out fixed-width segments of the remaining
// range to a wave of workers (an errgroup instead of the teacher's channel
// pipeline), each producing its own []int32 slice; segments are then
// concatenated in ascending low-bound order to preserve determinism.
func parallelSieve(ctx context.Context, limit int64, threads int) ([]int32, error) {
	if threads < 1 {
		threads = 1
	}
	sqrtLimit := arith.Isqrt(limit) + 1
	base := sequentialSieve(sqrtLimit)

	segSize := arith.MaxI64(arith.Isqrt(limit), 1<<16)
	segSize += segSize % 2 // keep boundaries even, like the teacher's window logic

	type segment struct {
		low, high int64
	}
	var segments []segment
	for low := sqrtLimit + 1; low <= limit; low += segSize {
		high := arith.MinI64(low+segSize-1, limit)
		segments = append(segments, segment{low, high})
	}

	results := make([][]int32, len(segments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for idx, seg := range segments {
		idx, seg := idx, seg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[idx] = sieveSegment(seg.low, seg.high, base)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]int32, 0, len(base)+countLen(results))
	out = append(out, base...)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func countLen(results [][]int32) int {
	n := 0
	for _, r := range results {
		n += len(r)
	}
	return n
}

// sieveSegment sieves [low, high] using the precomputed base primes,
// returning odd survivors — the teacher's GenSegment, generalized to any
// [low, high] window and returning a slice instead of streaming a channel.
func sieveSegment(low, high int64, base []int32) []int32 {
	if low%2 == 0 {
		low++
	}
	if high%2 == 0 {
		high--
	}
	if low > high {
		return nil
	}
	size := (high-low)/2 + 1
	composite := make([]bool, size)
	for _, p32 := range base[2:] { // only odd values are kept, so 2 is skipped
		p := int64(p32)
		start := p * p
		if start > high {
			break
		}
		if start < low {
			start = low - (low % p)
			if start < low {
				start += p
			}
			if start%2 == 0 {
				start += p
			}
		}
		for k := start; k <= high; k += 2 * p {
			composite[(k-low)/2] = true
		}
	}
	out := make([]int32, 0, size/8+1)
	for i := int64(0); i < size; i++ {
		if !composite[i] {
			out = append(out, int32(low+2*i))
		}
	}
	return out
}

// estimatePiCount gives a generous capacity hint for pi(limit) using the
// x/ln(x) prime-counting heuristic; it is never used for correctness.
func estimatePiCount(limit int64) int64 {
	if limit < 10 {
		return 10
	}
	f := float64(limit)
	lnf := 1.0
	for v := f; v > 2.718281828; v /= 2.718281828 {
		lnf++
	}
	return int64(f/lnf*1.2) + 16
}

// MobiusAndLPF computes the Möbius function mu[1..n] and least-prime-factor
// lpf[1..n] with a linear (Euler) sieve: each composite is struck exactly
// once by its least prime factor, giving O(n) time. Grounded on spec.md §3's
// definition of both arrays and their combined use as the special-leaf
// predicate mu[m]!=0 && lpf[m] > prime_b.
func MobiusAndLPF(n int64) (mu []int8, lpf []int32) {
	mu = make([]int8, n+1)
	lpf = make([]int32, n+1)
	if n < 1 {
		return mu, lpf
	}
	mu[1] = 1
	primes := make([]int32, 0, estimatePiCount(n))
	for i := int64(2); i <= n; i++ {
		if lpf[i] == 0 {
			lpf[i] = int32(i)
			mu[i] = -1
			primes = append(primes, int32(i))
		}
		for _, p32 := range primes {
			p := int64(p32)
			if p > int64(lpf[i]) || i*p > n {
				break
			}
			lpf[i*p] = p32
			if p == int64(lpf[i]) {
				mu[i*p] = 0
			} else {
				mu[i*p] = -mu[i]
			}
		}
	}
	return mu, lpf
}

// PiBSearch returns the largest index k with primes[k] <= v (0 if none),
// a small helper used throughout the partial-sum terms to translate a value
// into a prime-array cutoff. primes is 1-indexed with primes[0] a sentinel.
func PiBSearch(primes []int32, v int64) int64 {
	lo, hi := 1, len(primes)-1
	res := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if int64(primes[mid]) <= v {
			res = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return int64(res)
}

// SortedCopy returns a defensive ascending copy of primes.
func SortedCopy(primes []int32) []int32 {
	out := make([]int32, len(primes))
	copy(out, primes)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
