// Package factortable implements spec.md §4.5's FactorTable: for a given y,
// a packed array addressed by a dense coprime-to-210 index, storing for
// every integer n <= y coprime to 2*3*5*7 its least prime factor together
// with two flag bits encoding mu(n). Indexing skips 162 of every 210 integers
// and halves memory against keeping lpf and mu as two separate arrays.
package factortable

import "github.com/jgmbenoit/primecount/internal/primesieve"

const wheel = 210

// coprimes210 lists the residues in [0, wheel) coprime to 2*3*5*7, in
// ascending order. len(coprimes210) == 48 (= phi(210)).
var coprimes210 []int64

// indexOfResidue[r] is the position of residue r within coprimes210, or -1
// if r is not coprime to 210.
var indexOfResidue [wheel]int8

func init() {
	for r := int64(0); r < wheel; r++ {
		indexOfResidue[r] = -1
	}
	for r := int64(1); r < wheel; r++ {
		if gcd(r, wheel) == 1 {
			indexOfResidue[r] = int8(len(coprimes210))
			coprimes210 = append(coprimes210, r)
		}
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// signBit marks mu(n) < 0 in the packed entry; muZeroBit marks mu(n) == 0
// (n not squarefree). The remaining 30 bits hold the least prime factor.
// These two flags must be separate bits: n=1 has mu(1) == +1 but no least
// prime factor (lpf field 0, the same bit pattern a naive "lpf==0 means
// mu==0" encoding would also use for actually-non-squarefree n), so
// collapsing the mu==0 case onto lpf==0 would make Mu(1) indistinguishable
// from Mu(n) for squarefree n. A 16-bit entry with a single sign bit would
// also silently truncate lpf(n) for any prime n >= 2^15 (a real case once
// y climbs past a few tens of thousands), so entries are 32-bit.
const (
	signBit   = uint32(1) << 31
	muZeroBit = uint32(1) << 30
	lpfMask   = muZeroBit - 1
)

// Table answers lpf(n) and mu(n) for every n <= y coprime to 210, via a
// dense coprime index.
type Table struct {
	entries []uint32 // dense-indexed by (block*48 + position-within-block)
	y       int64
	nBlocks int64
}

// New builds a Table covering every n in [1, y].
func New(y int64) *Table {
	if y < 1 {
		y = 1
	}
	mu, lpf := primesieve.MobiusAndLPF(y)

	nBlocks := y/wheel + 1
	t := &Table{
		entries: make([]uint32, nBlocks*int64(len(coprimes210))),
		y:       y,
		nBlocks: nBlocks,
	}
	for block := int64(0); block < nBlocks; block++ {
		base := block * wheel
		for pos, r := range coprimes210 {
			n := base + r
			idx := block*int64(len(coprimes210)) + int64(pos)
			if n > y {
				t.entries[idx] = muZeroBit
				continue
			}
			var entry uint32
			if mu[n] == 0 {
				entry = muZeroBit
			} else {
				entry = uint32(lpf[n]) & lpfMask
				if mu[n] < 0 {
					entry |= signBit
				}
			}
			t.entries[idx] = entry
		}
	}
	return t
}

// Size returns the number of dense-indexed entries this table holds,
// including the tail entries beyond y, which New marks as mu == 0.
func (t *Table) Size() int64 { return int64(len(t.entries)) }

// GetIndex maps n (which must be coprime to 210) to its dense index.
// Returns -1 if n is not coprime to 210 or out of range.
func (t *Table) GetIndex(n int64) int64 {
	if n < 1 || n > t.y {
		return -1
	}
	block, r := n/wheel, n%wheel
	pos := indexOfResidue[r]
	if pos < 0 {
		return -1
	}
	return block*int64(len(coprimes210)) + int64(pos)
}

// GetNumber maps a dense index back to its integer.
func (t *Table) GetNumber(index int64) int64 {
	n := int64(len(coprimes210))
	block, pos := index/n, index%n
	return block*wheel + coprimes210[pos]
}

// Lpf returns the least prime factor of the integer at index, or 0 if
// that integer is not squarefree or equal to 1.
func (t *Table) Lpf(index int64) int32 {
	return int32(t.entries[index] & lpfMask)
}

// Mu returns the sign of mu (+1, -1, or 0) for the integer at index.
func (t *Table) Mu(index int64) int {
	e := t.entries[index]
	switch {
	case e&muZeroBit != 0:
		return 0
	case e&signBit != 0:
		return -1
	default:
		return 1
	}
}

// Y returns the upper bound this table was built for.
func (t *Table) Y() int64 { return t.y }
