// Package status implements the optional between-wave progress reporter
// spec.md §5 allows ("optional status printing may occur only between
// waves"), grounded on aelaguiz-pthash-go/internal/util/logger.go's
// ProgressLogger. That original tracks progress against a known total
// event count; this port's wave loops don't know their total wave count
// up front (the balancer grows segment size dynamically), so Logger
// instead reports low/limit coverage percentage per wave rather than a
// fixed step count.
package status

import (
	"log"
	"time"
)

// Logger reports wave progress for one term's computation. A disabled
// Logger's methods are no-ops, so call sites don't need their own
// verbose checks.
type Logger struct {
	prefix    string
	enabled   bool
	startTime time.Time
	waveNum   int
}

// New creates a Logger. When enabled is false every method is a no-op.
func New(prefix string, enabled bool) *Logger {
	return &Logger{prefix: prefix, enabled: enabled, startTime: time.Now()}
}

// Wave logs one wave's coverage, invoked after a wave's combine step.
func (l *Logger) Wave(low, limit int64, elapsed time.Duration) {
	if !l.enabled {
		return
	}
	l.waveNum++
	perc := 0.0
	if limit > 0 {
		perc = 100 * float64(low) / float64(limit)
	}
	log.Printf("%s: wave %d, %.1f%% (%.2fs)", l.prefix, l.waveNum, perc, elapsed.Seconds())
}

// Done logs completion with total elapsed time.
func (l *Logger) Done() {
	if !l.enabled {
		return
	}
	log.Printf("%s: done (%.2fs)", l.prefix, time.Since(l.startTime).Seconds())
}
