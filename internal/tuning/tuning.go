// Package tuning implements spec.md §4.10's parameter tuner: choosing
// alpha, y, and (for Gourdon) alpha_y/alpha_z/z from x and a thread count
// via a closed-form heuristic in log log x. Grounded on the alpha formula in
// original_source/src/lmo/pi_lmo_parallel3.cpp's pi_lmo_parallel3: "alpha
// = in_between(1, log(log(x)) * beta, iroot<6>(x))" — the heuristic is
// deliberately not tuned for optimality; spec.md §4.10 states correctness
// must not depend on it.
package tuning

import (
	"math"

	"github.com/jgmbenoit/primecount/internal/arith"
	"github.com/jgmbenoit/primecount/internal/phitiny"
)

// Params holds the algorithmic parameters chosen for one pi(x) call.
type Params struct {
	Alpha  float64
	AlphaY float64
	AlphaZ float64
	Y      int64
	Z      int64
	C      int64
}

// LMO chooses alpha and y for the LMO/Deléglise-Rivat variants, which
// only need a single split point y = alpha * x^(1/3).
func LMO(x int64, threads int) Params {
	alpha := chooseAlpha(x, 1.0)
	x13 := arith.Icbrt(x)
	y := int64(float64(x13) * alpha)
	if y < 1 {
		y = 1
	}
	return Params{Alpha: alpha, Y: y}
}

// Gourdon chooses alpha_y and y for the Gourdon variant. internal/gourdon
// fixes alpha_z at 1 (z = y), so Sigma/A/B/C's (y, z] range is always
// empty — see internal/gourdon's package doc for why that range's
// six-way easy-leaf split isn't implemented here. This tuner stops short
// of computing a non-trivial alpha_z/z accordingly: reporting a z that
// nothing downstream is built to consume would just be a second, silently
// disagreeing copy of the same decision gourdon.go already makes.
func Gourdon(x int64, threads int) Params {
	alphaY := chooseAlpha(x, 1.0)
	x13 := arith.Icbrt(x)
	y := int64(float64(x13) * alphaY)
	if y < 1 {
		y = 1
	}
	return Params{Alpha: alphaY, AlphaY: alphaY, AlphaZ: 1, Y: y, Z: y}
}

// chooseAlpha picks alpha in [1, x^(1/6)], growing slowly with
// log(log(x)) scaled by beta, matching the original's clamp.
func chooseAlpha(x int64, beta float64) float64 {
	if x < 3 {
		return 1
	}
	logx := math.Log(float64(x))
	loglogx := math.Log(logx)
	alpha := loglogx * beta
	maxAlpha := float64(arith.Iroot(x, 6))
	if alpha < 1 {
		alpha = 1
	}
	if alpha > maxAlpha {
		alpha = maxAlpha
	}
	return alpha
}

// ChooseC returns min(PhiTiny.MaxA, the largest a such that
// primes[a+1]^2 <= y), the cutoff below which PhiTiny handles phi(x,a)
// directly instead of falling through to a hard-leaf sieve.
func ChooseC(y int64, primes []int32) int64 {
	c := phitiny.GetC(y, primes)
	if c > phitiny.MaxA {
		c = phitiny.MaxA
	}
	return c
}
