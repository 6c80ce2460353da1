/*
Package primecount computes pi(x), the number of primes not exceeding x,
using parallel implementations of three combinatorial prime-counting
algorithms: Gourdon (the default), Deléglise-Rivat, and
Lagarias-Miller-Odlyzko (LMO). It also provides NthPrime, a bracketed
search for the nth prime, and Phi, the partial-sieve function phi(x,a).

# Usage

	count, err := primecount.Pi(1000000000)

	opts := primecount.DefaultOptions()
	opts.Algorithm = primecount.LMO
	opts.Threads = 4
	count, err = primecount.PiWithOptions(1000000000, opts)

	p, err := primecount.NthPrime(1000000, 4)

# Algorithms

Each algorithm lives in its own internal package (internal/gourdon,
internal/delegliserivat, internal/lmo) and shares the same lower layers:
internal/primesieve for prime generation and Mobius/least-prime-factor
tables, internal/pitable for O(1) pi(n) lookups, internal/phitiny for
closed-form phi(x,a) with a <= 7, and internal/hardleaf for the special
leaf sieve common to all three algorithms' hardest term.

The command-line front end is cmd/primecount.
*/
package primecount
