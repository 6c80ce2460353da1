package nthprime

import "errors"

// ErrNotFound is returned when the bracketing search cannot establish an
// interval containing the nth prime within a reasonable number of
// doublings (only possible for a pi implementation that isn't monotonic).
var ErrNotFound = errors.New("nthprime: search did not converge")

// PiFunc evaluates the prime-counting function at x.
type PiFunc func(x int64) (int64, error)

// NthPrime finds the smallest x such that pi(x) >= n, which (since pi
// only increases by exactly one at each prime) is the nth prime itself.
// The Riemann R inverse seeds an initial guess, expanded into a bracket
// and then binary-searched, rather than trusting the approximation's
// accuracy directly.
func NthPrime(n int64, pi PiFunc) (int64, error) {
	if n < 1 {
		return 0, nil
	}

	seed := RiemannRInverse(n)
	lo, hi := seed, seed
	if lo < 2 {
		lo = 2
	}
	if hi < 2 {
		hi = 2
	}

	plo, err := pi(lo)
	if err != nil {
		return 0, err
	}
	for step := int64(16); plo >= n; step *= 2 {
		if lo <= 2 {
			break
		}
		lo -= step
		if lo < 2 {
			lo = 2
		}
		plo, err = pi(lo)
		if err != nil {
			return 0, err
		}
		if lo == 2 {
			break
		}
	}

	phi, err := pi(hi)
	if err != nil {
		return 0, err
	}
	for step := int64(16); phi < n; step *= 2 {
		hi += step
		phi, err = pi(hi)
		if err != nil {
			return 0, err
		}
		if step > (int64(1) << 40) {
			return 0, ErrNotFound
		}
	}

	for lo < hi {
		mid := lo + (hi-lo)/2
		pm, err := pi(mid)
		if err != nil {
			return 0, err
		}
		if pm >= n {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}
