package primecount

import "errors"

// Sentinel errors, checked with errors.Is across package boundaries.
// Grounded on tamirms-streamhash/errors/errors.go's package-root sentinel
// list; every error path below wraps one of these with fmt.Errorf("...: %w").
var (
	// ErrNegativeInput is returned when an input is below the operation's
	// domain: a negative x (Pi, Phi) or a (Phi), or n < 1 (NthPrime).
	ErrNegativeInput = errors.New("primecount: negative input")

	// ErrOverflow64 is returned when x exceeds the largest value the int64
	// algorithms accept (maxSafeX64, 2^62). There is no 128-bit path.
	ErrOverflow64 = errors.New("primecount: result exceeds 64-bit range")

	// ErrOverflow128 names a value that would not fit in 128 bits. No
	// entry point returns it: every entry point takes an int64 x.
	ErrOverflow128 = errors.New("primecount: result exceeds 128-bit range")

	// ErrInvalidThreads is returned for a non-positive thread count.
	ErrInvalidThreads = errors.New("primecount: threads must be >= 1")

	// ErrAborted is returned when a caller's context is cancelled before
	// a computation completes. Only checked at wave boundaries.
	ErrAborted = errors.New("primecount: computation aborted")

	// ErrNotFound is returned by NthPrime when the bracketed search fails
	// to converge within its iteration budget.
	ErrNotFound = errors.New("primecount: nth prime search did not converge")
)
