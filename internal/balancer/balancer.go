// Package balancer implements the dynamic load balancer that spec.md §4.9
// describes for the A+C, S2, and P2 terms: segment size and segments-per-
// thread grow geometrically based on how long the previous wave took,
// and never shrink. Grounded on the adaptive loop in
// original_source/src/lmo/pi_lmo_parallel3.cpp's S2 function (lines
// 213-253): start with a small segment size and few segments per thread,
// since most special leaves land in the first segments, then double the
// segment size (and later the segments-per-thread) once a wave finishes
// comfortably under the growth threshold.
package balancer

import (
	"time"

	"github.com/jgmbenoit/primecount/internal/arith"
)

// growthThreshold mirrors the original's "seconds < 10" heuristic: a wave
// finishing quickly enough signals there's slack to grow the next one.
const growthThreshold = 10 * time.Second

const minSegmentSize = int64(1) << 6

// Balancer tracks segment_size and segments_per_thread for one term's
// wave loop (A+C, S2, or P2 each own an independent instance — they never
// share state, matching the three separate LoadBalancerAC/S2/P2 roles
// spec.md names).
type Balancer struct {
	SegmentSize        int64
	SegmentsPerThread  int64
	sqrtLimit          int64
}

// New builds a Balancer for a wave loop whose total range is [0, limit)
// and which runs across threads. logx is max(1, ilog(x)), matching the
// original's initial segment_size formula.
func New(limit int64, logx int64, threads int) *Balancer {
	if threads < 1 {
		threads = 1
	}
	if logx < 1 {
		logx = 1
	}
	sqrtLimit := arith.Isqrt(limit)
	segmentSize := arith.NextPow2(sqrtLimit / (logx * int64(threads)))
	if segmentSize < minSegmentSize {
		segmentSize = minSegmentSize
	}
	return &Balancer{
		SegmentSize:       segmentSize,
		SegmentsPerThread: 1,
		sqrtLimit:         sqrtLimit,
	}
}

// SegmentsFor returns how many segments of SegmentSize remain in [low,
// limit), and the thread/segments-per-thread pair clamped so neither
// exceeds what's left to process.
func (b *Balancer) SegmentsFor(low, limit int64, threads int) (segments int64, clampedThreads int, segmentsPerThread int64) {
	segments = arith.CeilDiv(limit-low, b.SegmentSize)
	clampedThreads = int(arith.InBetween(1, int64(threads), segments))
	segmentsPerThread = arith.InBetween(1, b.SegmentsPerThread, arith.CeilDiv(segments, int64(clampedThreads)))
	b.SegmentsPerThread = segmentsPerThread
	return
}

// Grow applies the post-wave growth decision: once the processed range has
// passed sqrt(limit) and the wave finished comfortably under the growth
// threshold, double the segment size until it reaches sqrt(limit), then
// switch to doubling segments-per-thread instead.
func (b *Balancer) Grow(low int64, elapsed time.Duration) {
	if low > b.sqrtLimit && elapsed < growthThreshold {
		if b.SegmentSize < b.sqrtLimit {
			b.SegmentSize <<= 1
		} else {
			b.SegmentsPerThread *= 2
		}
	}
}
