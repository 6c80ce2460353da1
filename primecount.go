// Package primecount computes pi(x), the number of primes <= x, and the
// nth prime, via parallel implementations of the Gourdon, Deléglise-Rivat,
// and Lagarias-Miller-Odlyzko combinatorial algorithms.
package primecount

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/jgmbenoit/primecount/internal/delegliserivat"
	"github.com/jgmbenoit/primecount/internal/gourdon"
	"github.com/jgmbenoit/primecount/internal/lmo"
	"github.com/jgmbenoit/primecount/internal/nthprime"
	"github.com/jgmbenoit/primecount/internal/phitiny"
	"github.com/jgmbenoit/primecount/internal/primesieve"
)

const version = "1.0.0"

// maxSafeX64 bounds the largest x this port's int64 arithmetic can carry
// through the hard-leaf sieve's prime*m products without risking overflow
// (spec.md §6: "overflow if x magnitude exceeds 2^63"). The internal
// algorithms here are int64 throughout; see the Int128 type's doc comment
// in internal/arith/int128.go for why a full Int128 rewiring of the sieve/combine
// arithmetic is out of scope for this port. x beyond this bound is
// rejected up front rather than silently risking a wrapped result.
const maxSafeX64 = int64(1) << 62

// Algorithm selects which combinatorial variant Pi evaluates.
type Algorithm int

const (
	// Gourdon is the flagship algorithm and the default.
	Gourdon Algorithm = iota
	DelegliseRivat
	LMO
)

// Options configures one Pi/NthPrime/Phi call, mirroring
// aelaguiz-pthash-go's BuildConfig/DefaultBuildConfig pattern: an
// exported struct of tunables with a DefaultOptions constructor.
type Options struct {
	Threads   int
	Algorithm Algorithm
	Verbose   bool
	Context   context.Context
}

// DefaultOptions returns Gourdon's algorithm at runtime.NumCPU() threads.
func DefaultOptions() Options {
	return Options{Threads: runtime.NumCPU(), Algorithm: Gourdon, Context: context.Background()}
}

func (o Options) ctx() context.Context {
	if o.Context == nil {
		return context.Background()
	}
	return o.Context
}

// Pi returns the number of primes <= x using DefaultOptions.
func Pi(x int64) (int64, error) {
	return PiWithOptions(x, DefaultOptions())
}

// PiWithThreads returns the number of primes <= x using the given thread
// count and the default (Gourdon) algorithm.
func PiWithThreads(x int64, threads int) (int64, error) {
	opts := DefaultOptions()
	opts.Threads = threads
	return PiWithOptions(x, opts)
}

// PiWithOptions returns the number of primes <= x under full control of
// algorithm choice, thread count, status verbosity, and cancellation.
func PiWithOptions(x int64, opts Options) (int64, error) {
	if x < 0 {
		return 0, fmt.Errorf("primecount: pi(%d): %w", x, ErrNegativeInput)
	}
	if x > maxSafeX64 {
		return 0, fmt.Errorf("primecount: pi(%d): %w", x, ErrOverflow64)
	}
	if opts.Threads < 1 {
		return 0, fmt.Errorf("primecount: pi: %w", ErrInvalidThreads)
	}
	ctx := opts.ctx()

	var (
		result int64
		err    error
	)
	switch opts.Algorithm {
	case DelegliseRivat:
		result, err = delegliserivat.Pi(ctx, x, delegliserivat.Options{Threads: opts.Threads, Verbose: opts.Verbose})
	case LMO:
		result, err = lmo.Pi(ctx, x, lmo.Options{Threads: opts.Threads, Verbose: opts.Verbose})
	default:
		result, err = gourdon.Pi(ctx, x, gourdon.Options{Threads: opts.Threads, Verbose: opts.Verbose})
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("primecount: pi(%d): %w", x, ErrAborted)
		}
		return 0, fmt.Errorf("primecount: pi(%d): %w", x, err)
	}
	return result, nil
}

// NthPrime returns the nth prime (n >= 1, nth_prime(1) = 2), found by a
// bracketed search seeded with the Riemann R inverse and refined against
// exact Pi evaluations.
func NthPrime(n int64, threads int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("primecount: nth_prime(%d): %w", n, ErrNegativeInput)
	}
	if threads < 1 {
		return 0, fmt.Errorf("primecount: nth_prime: %w", ErrInvalidThreads)
	}
	pi := func(x int64) (int64, error) {
		return PiWithThreads(x, threads)
	}
	result, err := nthprime.NthPrime(n, pi)
	if err != nil {
		if errors.Is(err, nthprime.ErrNotFound) {
			return 0, fmt.Errorf("primecount: nth_prime(%d): %w", n, ErrNotFound)
		}
		return 0, fmt.Errorf("primecount: nth_prime(%d): %w", n, err)
	}
	return result, nil
}

// Phi returns phi(x, a): the count of integers in [1, x] not divisible
// by any of the first a primes. a <= 7 is answered by PhiTiny's closed
// form directly; larger a falls through to the classical recurrence
// phi(x,a) = phi(x,a-1) - phi(x/primes[a], a-1).
func Phi(x int64, a int, threads int) (int64, error) {
	if x < 0 {
		return 0, fmt.Errorf("primecount: phi(%d,%d): %w", x, a, ErrNegativeInput)
	}
	if a < 0 {
		return 0, fmt.Errorf("primecount: phi(%d,%d): %w", x, a, ErrNegativeInput)
	}
	if threads < 1 {
		return 0, fmt.Errorf("primecount: phi: %w", ErrInvalidThreads)
	}
	if a <= phitiny.MaxA {
		return phitiny.Phi(x, a), nil
	}
	primes, err := primesPastIndex(a, threads)
	if err != nil {
		return 0, fmt.Errorf("primecount: phi(%d,%d): %w", x, a, err)
	}
	return phiRecursive(x, a, primes), nil
}

// primesPastIndex generates primes up to a bound large enough that
// primes[a] exists, doubling the bound until it does.
func primesPastIndex(a int, threads int) ([]int32, error) {
	bound := int64(100)
	for {
		primes, err := primesieve.Primes(context.Background(), bound, threads)
		if err != nil {
			return nil, err
		}
		if len(primes) > a {
			return primes, nil
		}
		bound *= 2
	}
}

func phiRecursive(x int64, a int, primes []int32) int64 {
	if x <= 0 {
		return 0
	}
	if a <= phitiny.MaxA {
		return phitiny.Phi(x, a)
	}
	return phiRecursive(x, a-1, primes) - phiRecursive(x/int64(primes[a]), a-1, primes)
}

// Version returns primecount-go's semantic version string.
func Version() string {
	return version
}
