// Package hardleaf implements the hard-leaf sieve shared by the LMO, the
// Deléglise–Rivat, and the Gourdon algorithms: spec.md §4.7 states
// "S2_hard is identical in shape to Gourdon's D", and §4.6/§4.8 describe
// both as the same wave loop over dynamically sized segments, searching
// for special leaves n = prime_b*m with mu(m)!=0 and lpf(m) > prime_b in
// the lower regime, or n = prime_b*prime_l in the upper regime. Grounded
// directly on S2_thread/S2 in
// original_source/src/lmo/pi_lmo_parallel3.cpp; internal/lmo,
// internal/delegliserivat, and internal/gourdon all call Run with their
// own b-range (via C and PiY) rather than reimplementing this loop.
package hardleaf

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jgmbenoit/primecount/internal/arith"
	"github.com/jgmbenoit/primecount/internal/balancer"
	"github.com/jgmbenoit/primecount/internal/primesieve"
	"github.com/jgmbenoit/primecount/internal/sieve"
	"github.com/jgmbenoit/primecount/internal/status"
)

// Params describes one hard-leaf computation. Primes, Lpf, and Mu are all
// 1-indexed (Primes) or dense over [0, Y] (Lpf, Mu) with sentinel/zero
// entries at index 0, matching the rest of this module's convention.
type Params struct {
	X, Y    int64
	C       int64 // b in [2, C] is handled by PhiTiny elsewhere and skipped here
	PiY     int64 // upper bound on b: the wave runs b in (C, PiY)
	Threads int
	Primes  []int32
	Lpf     []int32
	Mu      []int8

	// Logger, if non-nil, receives a progress report after each wave.
	Logger *status.Logger
}

// Run computes the hard-leaf total: sum over b in (C, PiY) of the signed
// special-leaf contributions, using the same dynamically sized segment
// waves and fixed-thread-order phi combine as the original S2 function.
func Run(ctx context.Context, p Params) (int64, error) {
	if p.Y <= 0 || p.C < 1 {
		return 0, nil
	}
	threads := p.Threads
	if threads < 1 {
		threads = 1
	}

	pi := buildPi(p.Y, p.Primes)
	piSqrty := primesieve.PiBSearch(p.Primes, arith.Isqrt(p.Y))

	low := int64(1)
	limit := p.X/p.Y + 1
	logx := arith.MaxI64(1, arith.Ilog(p.X))
	lb := balancer.New(limit, logx, threads)

	phiTotal := make([]int64, len(p.Primes))
	total := int64(0)

	for low < limit {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		_, clampedThreads, segmentsPerThread := lb.SegmentsFor(low, limit, threads)
		segmentSize := lb.SegmentSize

		start := time.Now()

		phiByThread := make([][]int64, clampedThreads)
		muSumByThread := make([][]int64, clampedThreads)
		partial := make([]int64, clampedThreads)

		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < clampedThreads; i++ {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s2, phi, muSum := threadWorker(p.X, p.Y, p.C, piSqrty, p.PiY,
					segmentSize, segmentsPerThread, int64(i), low, limit,
					pi, p.Primes, p.Lpf, p.Mu)
				partial[i] = s2
				phiByThread[i] = phi
				muSumByThread[i] = muSum
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}

		for i := 0; i < clampedThreads; i++ {
			total += partial[i]
		}

		low += segmentsPerThread * int64(clampedThreads) * segmentSize
		elapsed := time.Since(start)
		lb.Grow(low, elapsed)
		if p.Logger != nil {
			p.Logger.Wave(low, limit, elapsed)
		}

		// Reconstruct and add the missing contribution of special leaves
		// whose phi[b] depended on earlier threads' sieving, strictly in
		// thread order (thread i's phi_total update must see every
		// earlier thread's phi first).
		for i := 0; i < clampedThreads; i++ {
			phi := phiByThread[i]
			muSum := muSumByThread[i]
			for j := 1; j < len(phi); j++ {
				total += phiTotal[j] * muSum[j]
				phiTotal[j] += phi[j]
			}
		}
	}

	return total, nil
}

// threadWorker computes one thread's contribution across its slice of
// segments_per_thread segments, ported from S2_thread.
func threadWorker(x, y, c, piSqrty, piY, segmentSize, segmentsPerThread, threadNum, low, limit int64,
	pi []int32, primes []int32, lpf []int32, mu []int8) (s2Total int64, phi []int64, muSum []int64) {

	low += segmentSize * segmentsPerThread * threadNum
	limit = arith.MinI64(low+segmentSize*segmentsPerThread, limit)
	if low >= limit {
		return 0, nil, nil
	}

	size := int64(pi[arith.MinI64(arith.Isqrt(x/low), y)]) + 1
	if c >= size-1 {
		return 0, nil, nil
	}

	bs := sieve.NewBitSieve(segmentSize)
	ct := sieve.NewCounterTree(bs)
	next := sieve.NextMultiples(primes, size, low)

	phi = make([]int64, size)
	muSum = make([]int64, size)

segmentLoop:
	for ; low < limit; low += segmentSize {
		high := arith.MinI64(low+segmentSize, limit)
		b := int64(2)

		bs.Reset(low)

		for ; b <= c; b++ {
			prime := int64(primes[b])
			k := next[b]
			for ; k < high; k += prime * 2 {
				bs.Unset(k - low)
			}
			next[b] = k
		}

		ct.Init()

		// c+1 <= b < min(piSqrty, size): special leaves n = prime_b*m
		for ; b < arith.MinI64(piSqrty, size); b++ {
			prime := int64(primes[b])
			minM := arith.MaxI64(x/(prime*high), y/prime)
			maxM := arith.MinI64(x/(prime*low), y)

			if prime >= maxM {
				continue segmentLoop
			}

			for m := maxM; m > minM; m-- {
				if mu[m] != 0 && prime < int64(lpf[m]) {
					n := prime * m
					count := ct.Query(x/n - low)
					phiXn := phi[b] + count
					s2Total -= int64(mu[m]) * phiXn
					muSum[b] -= int64(mu[m])
				}
			}

			phi[b] += ct.Query(high - 1 - low)
			next[b] = sieve.CrossOff(prime, low, high, next[b], bs, ct)
		}

		// piSqrty <= b < min(piY, size): special leaves n = prime_b*prime_l
		for ; b < arith.MinI64(piY, size); b++ {
			prime := int64(primes[b])
			l := int64(pi[arith.MinI64(x/(prime*low), y)])
			minM := arith.MaxI64(x/(prime*high), y/prime)
			minM = arith.InBetween(prime, minM, y)
			minL := int64(pi[minM])

			if prime >= int64(primes[l]) {
				continue segmentLoop
			}

			for ; l > minL; l-- {
				n := prime * int64(primes[l])
				count := ct.Query(x/n - low)
				phiXn := phi[b] + count
				s2Total += phiXn
				muSum[b]++
			}

			phi[b] += ct.Query(high - 1 - low)
			next[b] = sieve.CrossOff(prime, low, high, next[b], bs, ct)
		}
	}

	return s2Total, phi, muSum
}

// buildPi returns a dense pi[v] = count of primes <= v, for v in [0, y],
// built once from the already-generated primes list rather than a fresh
// sieve (the original's make_pi(y) does the same linear scan over primes).
func buildPi(y int64, primes []int32) []int32 {
	pi := make([]int32, y+1)
	count := int32(0)
	p := 1
	for v := int64(0); v <= y; v++ {
		for p < len(primes) && int64(primes[p]) == v {
			count++
			p++
		}
		pi[v] = count
	}
	return pi
}
