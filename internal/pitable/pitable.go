// Package pitable implements a compressed O(1) pi(n) lookup table, ported
// from PiTable.cpp: one 64-bit word covers an interval of 240 integers (8
// bytes per word, 8 bits per byte for the residues {1,7,11,13,17,19,23,29}
// mod 30 that survive wheel-30), word.count holds pi(5) plus the running
// 1-bit count of every earlier word, and word.bits has a bit set for every
// prime >= 7 at that word's residue positions.
package pitable

import (
	"context"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/jgmbenoit/primecount/internal/primesieve"
)

const wordSpan = 240

// residues are the eight values coprime to 30 in [0, 30).
var residues = [8]int64{1, 7, 11, 13, 17, 19, 23, 29}

// bitIndex[r] gives the bit position within a word for residue r in
// [0, wordSpan), or -1 if r is not one of the eight wheel-30 residues.
var bitIndex [wordSpan]int8

// maskUpTo[r] has every bit set whose residue is <= r, used to mask a
// word's bits down to "primes at or below this offset".
var maskUpTo [wordSpan]uint64

func init() {
	for i := range bitIndex {
		bitIndex[i] = -1
	}
	for block := 0; block < wordSpan/30; block++ {
		for j, r := range residues {
			bitIndex[block*30+int(r)] = int8(block*8 + j)
		}
	}
	var mask uint64
	for r := 0; r < wordSpan; r++ {
		if bitIndex[r] >= 0 {
			mask |= uint64(1) << uint(bitIndex[r])
		}
		maskUpTo[r] = mask
	}
}

type word struct {
	count uint64
	bits  uint64
}

// Table answers pi(n) queries in O(1) after construction, for 0 <= n <= max.
type Table struct {
	words []word
	max   int64
}

// New builds a Table covering [0, max]. It sieves primes up to max, then
// builds every word's bit pattern in parallel (phase one), and finally
// runs the sequential prefix-count pass (phase two) that PiTable.cpp keeps
// single-threaded because each word's count depends on the previous one.
func New(ctx context.Context, max int64, threads int) (*Table, error) {
	if max < 0 {
		max = 0
	}
	primes, err := primesieve.Primes(ctx, max+1, threads)
	if err != nil {
		return nil, err
	}

	nWords := int(max/wordSpan) + 1
	t := &Table{words: make([]word, nWords), max: max}

	if err := t.initBits(ctx, primes, threads); err != nil {
		return nil, err
	}
	t.initCounts()
	return t, nil
}

// initBits sets word.bits for every word, split across threads by word
// range: each worker owns a disjoint slice of words, so no synchronization
// is needed within this phase (mirrors PiTable::init_bits' thread split).
func (t *Table) initBits(ctx context.Context, primes []int32, threads int) error {
	n := len(t.words)
	if threads < 1 {
		threads = 1
	}
	if n == 0 {
		return nil
	}
	chunk := (n + threads - 1) / threads
	if chunk < 1 {
		chunk = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lo := int64(start) * wordSpan
			hi := int64(end)*wordSpan - 1
			if hi > t.max {
				hi = t.max
			}
			for _, p := range primes[1:] {
				pr := int64(p)
				if pr < 7 {
					continue
				}
				if pr > hi {
					break
				}
				if pr < lo {
					continue
				}
				w, r := pr/wordSpan, pr%wordSpan
				b := bitIndex[r]
				if b >= 0 {
					t.words[w].bits |= uint64(1) << uint(b)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// initCounts runs the sequential prefix pass: each word's count becomes
// pi(5) (=3) plus every set bit from every earlier word.
func (t *Table) initCounts() {
	running := uint64(3)
	for i := range t.words {
		t.words[i].count = running
		running += uint64(bits.OnesCount64(t.words[i].bits))
	}
}

// Pi returns the number of primes <= n, for 0 <= n <= the table's max.
func (t *Table) Pi(n int64) int64 {
	if n < 2 {
		return 0
	}
	if n < 7 {
		switch {
		case n < 3:
			return 1
		case n < 5:
			return 2
		default:
			return 3
		}
	}
	w, r := n/wordSpan, n%wordSpan
	word := t.words[w]
	return int64(word.count) + int64(bits.OnesCount64(word.bits&maskUpTo[r]))
}

// Max returns the largest n this table can answer.
func (t *Table) Max() int64 { return t.max }
