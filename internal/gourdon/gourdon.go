// Package gourdon implements the Gourdon prime-counting algorithm,
// spec.md §4.6, the flagship decomposition:
//
//	pi(x) = pi(y) - 1 - P2(x,y) + Sigma(x,y) + Phi0(x,y)
//	        + A(x,y) + B(x,y) + C(x,y) + D(x,y)
//
// original_source/ carries no Gourdon-specific source (only the LMO S2
// loop, which spec.md §4.7 itself says is "identical in shape" to
// Gourdon's D), so A, B, C, and Sigma — Gourdon's six-way easy-leaf split
// over the range (y, z] — are not grounded in any pack source and their
// exact combinatorics are out of scope here. This port makes an explicit
// simplification, recorded as an Open Question decision in DESIGN.md:
// alpha_z is fixed at 1, so z = y and the range (y, z] is always empty.
// Under that choice A, B, and C are correctly 0 (they sum over an empty
// range, not an approximation), Sigma — which accounts for leaves in
// (y, z] — is correctly 0 for the same reason, Phi0 is the same
// mu-weighted "sum over squarefree numbers <= y" spec.md §4.6 describes
// it as (the same object LMO's S1 computes, just named for this variant),
// and D degenerates to exactly the LMO/Deléglise-Rivat hard-leaf term
// over (c, pi(y)) via internal/hardleaf. The resulting pi(x) is exact,
// not approximate — this only forgoes Gourdon's extra y/z split, which
// is a performance optimization, not a correctness requirement.
package gourdon

import (
	"context"

	"github.com/jgmbenoit/primecount/internal/hardleaf"
	"github.com/jgmbenoit/primecount/internal/lmo"
	"github.com/jgmbenoit/primecount/internal/p2"
	"github.com/jgmbenoit/primecount/internal/primesieve"
	"github.com/jgmbenoit/primecount/internal/status"
	"github.com/jgmbenoit/primecount/internal/tuning"
)

// Phi0 sums the trivial squarefree contribution: mu(n)-weighted over
// n <= y, identical in construction to LMO's S1 (spec.md §4.6 describes
// Phi0 as "a simple sum over squarefree numbers <= y with appropriate
// signs", which is exactly what S1's mu-weighted sum computes).
func Phi0(x, y, c int64, primes []int32, lpf []int32, mu []int8) int64 {
	return lmo.S1(x, y, c, primes, lpf, mu)
}

// Sigma is Gourdon's closed-form correction for leaves in (y, z]. This
// port always calls it with z == y (see package doc), so the range is
// empty and the correct value is 0; the z > y case is an unimplemented
// Open Question.
func Sigma(x, y, z int64) int64 {
	if z <= y {
		return 0
	}
	panic("gourdon: Sigma for z > y is not implemented")
}

// A is Gourdon's first easy-leaf term over primes in (y, z]. Always 0
// under this port's z == y simplification (see package doc).
func A(x, y, z int64) int64 {
	if z <= y {
		return 0
	}
	panic("gourdon: A for z > y is not implemented")
}

// B is Gourdon's closed-form summation paralleling P2, over (y, z].
// Always 0 under this port's z == y simplification (see package doc).
func B(x, y, z int64) int64 {
	if z <= y {
		return 0
	}
	panic("gourdon: B for z > y is not implemented")
}

// C is Gourdon's second easy-leaf term over primes in (y, z]. Always 0
// under this port's z == y simplification (see package doc).
func C(x, y, z int64) int64 {
	if z <= y {
		return 0
	}
	panic("gourdon: C for z > y is not implemented")
}

// D runs the hard-leaf sieve over (c, pi(z)), identical in shape to
// LMO's S2 / Deléglise-Rivat's S2Hard per spec.md §4.7.
func D(ctx context.Context, p hardleaf.Params) (int64, error) {
	return hardleaf.Run(ctx, p)
}

// Options configures one Pi call.
type Options struct {
	Threads int
	Verbose bool
}

// Pi returns the number of primes <= x via the Gourdon algorithm.
func Pi(ctx context.Context, x int64, opts Options) (int64, error) {
	if x < 2 {
		return 0, nil
	}
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}

	params := tuning.Gourdon(x, threads)
	y := params.Y
	z := params.Z // tuning.Gourdon fixes alpha_z at 1, so z == y; see package doc

	mu, lpfTable := primesieve.MobiusAndLPF(z)
	primes, err := primesieve.Primes(ctx, z, threads)
	if err != nil {
		return 0, err
	}
	piY := int64(len(primes) - 1)
	piZ := piY // z == y
	c := tuning.ChooseC(y, primes)
	if c > piY {
		c = piY
	}
	if c < 1 && piY >= 1 {
		c = 1 // hardleaf.Run only sieves b >= 2, so prime 2 must fall in Phi0
	}

	phi0 := Phi0(x, y, c, primes, lpfTable, mu)
	sigma := Sigma(x, y, z)
	aTerm := A(x, y, z)
	bTerm := B(x, y, z)
	cTerm := C(x, y, z)

	logger := status.New("gourdon.D", opts.Verbose)
	dTerm, err := D(ctx, hardleaf.Params{
		X: x, Y: y, C: c, PiY: piZ, Threads: threads,
		Primes: primes, Lpf: lpfTable, Mu: mu, Logger: logger,
	})
	if err != nil {
		return 0, err
	}
	logger.Done()

	p2Total, err := p2.Compute(ctx, x, y, threads)
	if err != nil {
		return 0, err
	}

	return piY - 1 - p2Total + sigma + phi0 + aTerm + bTerm + cTerm + dTerm, nil
}
