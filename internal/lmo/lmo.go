// Package lmo implements the Lagarias-Miller-Odlyzko prime-counting
// algorithm, spec.md §4.8. Grounded on
// original_source/src/lmo/pi_lmo_parallel3.cpp's pi_lmo_parallel3: choose
// y = alpha*x^(1/3), compute S1 (trivial leaves) and S2 (special leaves,
// delegated to internal/hardleaf) over mu/lpf tabulated to y, subtract
// P2(x,y), and add pi(y)-1.
package lmo

import (
	"context"

	"github.com/jgmbenoit/primecount/internal/factortable"
	"github.com/jgmbenoit/primecount/internal/hardleaf"
	"github.com/jgmbenoit/primecount/internal/p2"
	"github.com/jgmbenoit/primecount/internal/phitiny"
	"github.com/jgmbenoit/primecount/internal/primesieve"
	"github.com/jgmbenoit/primecount/internal/status"
	"github.com/jgmbenoit/primecount/internal/tuning"
)

// wheelMinPrime is the largest prime factortable's coprime-to-210 wheel
// excludes. S1 only sums n whose least prime factor exceeds the c-th
// prime; once that threshold is itself >= wheelMinPrime, every surviving
// n is guaranteed coprime to 210 and the wheel can be walked directly
// instead of scanning every n <= y.
const wheelMinPrime = 7

// S1 sums the trivial-leaf contribution: for every n <= y with mu(n) != 0
// whose smallest prime factor exceeds the c-th prime (n=1 vacuously
// qualifies, having no prime factors at all), add mu(n)*phi(x/n, c).
// Not present in original_source/ (only S2 survives there); this is the
// standard LMO/Deléglise-Rivat trivial-leaf sum spec.md §4.8 names.
func S1(x, y, c int64, primes []int32, lpf []int32, mu []int8) int64 {
	cPrime := int64(primes[c])
	if cPrime >= wheelMinPrime {
		return s1Wheel(x, y, c, cPrime)
	}
	var total int64
	for n := int64(1); n <= y; n++ {
		if mu[n] == 0 {
			continue
		}
		if n == 1 || int64(lpf[n]) > cPrime {
			total += int64(mu[n]) * phitiny.Phi(x/n, int(c))
		}
	}
	return total
}

// s1Wheel is S1's fast path once cPrime >= wheelMinPrime: every surviving
// n is coprime to 2*3*5*7, so internal/factortable's dense coprime-to-210
// index visits exactly the 48-of-210 candidates that matter instead of
// scanning all of [1, y].
func s1Wheel(x, y, c, cPrime int64) int64 {
	ft := factortable.New(y)
	var total int64
	for idx := int64(0); idx < ft.Size(); idx++ {
		mu := ft.Mu(idx)
		if mu == 0 {
			continue
		}
		n := ft.GetNumber(idx)
		if n != 1 && int64(ft.Lpf(idx)) <= cPrime {
			continue
		}
		total += int64(mu) * phitiny.Phi(x/n, int(c))
	}
	return total
}

// Options configures one Pi call.
type Options struct {
	Threads int
	Verbose bool
}

// Pi returns the number of primes <= x via the LMO algorithm.
func Pi(ctx context.Context, x int64, opts Options) (int64, error) {
	if x < 2 {
		return 0, nil
	}
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}

	params := tuning.LMO(x, threads)
	y := params.Y

	mu, lpf := primesieve.MobiusAndLPF(y)
	primes, err := primesieve.Primes(ctx, y, threads)
	if err != nil {
		return 0, err
	}
	piY := int64(len(primes) - 1)
	c := tuning.ChooseC(y, primes)
	if c > piY {
		c = piY
	}
	if c < 1 && piY >= 1 {
		c = 1 // hardleaf.Run only sieves b >= 2, so prime 2 must fall in S1
	}

	s1 := S1(x, y, c, primes, lpf, mu)

	logger := status.New("lmo.S2", opts.Verbose)
	s2, err := hardleaf.Run(ctx, hardleaf.Params{
		X: x, Y: y, C: c, PiY: piY, Threads: threads,
		Primes: primes, Lpf: lpf, Mu: mu, Logger: logger,
	})
	if err != nil {
		return 0, err
	}
	logger.Done()

	p2Total, err := p2.Compute(ctx, x, y, threads)
	if err != nil {
		return 0, err
	}

	phi := s1 + s2
	return phi + piY - 1 - p2Total, nil
}
