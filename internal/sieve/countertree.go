package sieve

import "github.com/jgmbenoit/primecount/internal/arith"

// CounterTree is the Fenwick-like block-decomposed popcount index of
// spec.md §3/§4.2: the segment is split into blocks of width ~ sqrt(S);
// each block's live-bit count is tracked in counters[]; rank(i) sums the
// counters of every block strictly before block(i) plus a popcount of the
// partial block up to i. Grounded on the cnt_finit/cnt_query/cnt_update
// calls in original_source/src/lmo/pi_lmo_parallel3.cpp, whose bodies are
// the "tos_counters" (truncated ordered statistics) technique this
// reimplements directly against BitSieve rather than a bespoke byte array.
type CounterTree struct {
	bs         *BitSieve
	blockBits  int64
	nBlocks    int64
	counters   []int32
}

// NewCounterTree derives a block width of about sqrt(size), rounded up to a
// multiple of 64 so each block boundary aligns with a BitSieve word — this
// lets Init and Query reuse BitSieve.Count for the intra-block popcount
// instead of re-deriving word masks.
func NewCounterTree(bs *BitSieve) *CounterTree {
	size := bs.Size()
	blockBits := arith.MaxI64(arith.Isqrt(size), 64)
	blockBits = ((blockBits + 63) / 64) * 64
	nBlocks := (size + blockBits - 1) / blockBits
	return &CounterTree{
		bs:        bs,
		blockBits: blockBits,
		nBlocks:   nBlocks,
		counters:  make([]int32, nBlocks),
	}
}

// Init rebuilds every block counter from the sieve's current bit pattern in
// O(size); called once per new segment after BitSieve.Reset and the
// small-prime pre-strike (spec.md §4.2: "rebuilds block counts... in O(S)").
func (c *CounterTree) Init() {
	size := c.bs.Size()
	for b := int64(0); b < c.nBlocks; b++ {
		start := b * c.blockBits
		stop := arith.MinI64(start+c.blockBits-1, size-1)
		c.counters[b] = int32(c.bs.Count(start, stop))
	}
}

// Unset decrements the counter of the block containing i. The caller is
// responsible for having already cleared bit i in the BitSieve (and for
// only calling this once per bit, mirroring cross_off's
// "if sieve[k-low] { unset; cnt_update }" guard).
func (c *CounterTree) Unset(i int64) {
	c.counters[i/c.blockBits]--
}

// Query returns rank(i) = popcount(bits[0..i]) after any sequence of Unset
// calls: the sum of full-block counters preceding block(i), plus the
// popcount of block(i)'s own bits up to and including i.
func (c *CounterTree) Query(i int64) int64 {
	block := i / c.blockBits
	rank := int64(0)
	for b := int64(0); b < block; b++ {
		rank += int64(c.counters[b])
	}
	blockStart := block * c.blockBits
	rank += c.bs.Count(blockStart, i)
	return rank
}
