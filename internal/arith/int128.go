package arith

import "math/bits"

// Int128 is a signed 128-bit scalar, the "128-bit capability" spec.md §9
// treats as a compile-time toggle. Go has no native int128, so it is
// implemented mechanically as a two-word struct with the same operation set
// pthash-go's fastmod/d1array code uses for its own 128-bit arithmetic
// (bits.Mul64/Add64/Div64). This port's façade dispatches 64-bit vs.
// 128-bit by a tagged choice rather than a generic numeric interface (see
// DESIGN.md); Int128 is not itself wired into any internal algorithm's
// sieve or combine step, since every façade entry point takes an int64 x
// that can never exceed 64-bit range in the first place.
//
// Only non-negative values and the small operation set the partial-sum
// terms need (add, subtract, multiply by int64, divide by int64, compare)
// are implemented; primecount never needs full signed 128-bit multiply of
// two 128-bit operands.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// FromInt64 widens a non-negative int64 into an Int128.
func FromInt64(v int64) Int128 {
	if v < 0 {
		panic("arith: Int128 does not represent negative magnitudes")
	}
	return Int128{Hi: 0, Lo: uint64(v)}
}

// IsZero reports whether the value is zero.
func (a Int128) IsZero() bool {
	return a.Hi == 0 && a.Lo == 0
}

// Fits64 reports whether the value fits in a non-negative int64.
func (a Int128) Fits64() bool {
	return a.Hi == 0 && a.Lo <= 1<<63-1
}

// Int64 returns the value truncated to int64; callers must check Fits64
// first.
func (a Int128) Int64() int64 {
	return int64(a.Lo)
}

// Add returns a+b.
func (a Int128) Add(b Int128) Int128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return Int128{Hi: hi, Lo: lo}
}

// Sub returns a-b; the caller guarantees a >= b (all primecount subtractions
// are of a smaller running sum from a larger prefix).
func (a Int128) Sub(b Int128) Int128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Int128{Hi: hi, Lo: lo}
}

// MulInt64 returns a * b for non-negative int64 b.
func (a Int128) MulInt64(b int64) Int128 {
	if b < 0 {
		panic("arith: Int128.MulInt64 requires non-negative multiplier")
	}
	bb := uint64(b)
	hi, lo := bits.Mul64(a.Lo, bb)
	_, hiHi := bits.Mul64(a.Hi, bb)
	hi2, carry := bits.Add64(hi, hiHi, 0)
	_ = carry // overflow beyond 128 bits is a domain error the caller must have prevented
	return Int128{Hi: hi2, Lo: lo}
}

// DivInt64 returns floor(a/b) for b > 0, widened back to Int128.
func (a Int128) DivInt64(b int64) Int128 {
	if b <= 0 {
		panic("arith: Int128.DivInt64 requires a positive divisor")
	}
	bb := uint64(b)
	if a.Hi == 0 {
		return Int128{Lo: a.Lo / bb}
	}
	qHi := a.Hi / bb
	rHi := a.Hi % bb
	qLo, _ := bits.Div64(rHi, a.Lo, bb)
	return Int128{Hi: qHi, Lo: qLo}
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Int128) Cmp(b Int128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Float64 returns an approximation suitable for the parameter tuner's
// logarithmic heuristics; never used inside an exact sum (spec.md §3).
func (a Int128) Float64() float64 {
	return float64(a.Hi)*18446744073709551616.0 + float64(a.Lo)
}
