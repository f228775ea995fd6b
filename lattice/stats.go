// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"sync/atomic"
)

// Stats accumulates diagnostic counters across Reduce calls. It is supplied
// by the caller through WithStats; the zero value is ready to use and safe
// for concurrent use.
type Stats struct {
	calls          atomic.Int64
	iterations     atomic.Int64
	sizeReductions atomic.Int64
	swaps          atomic.Int64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Calls          int64
	Iterations     int64
	SizeReductions int64
	Swaps          int64
}

// Snapshot reads all four counters. Each counter is read atomically; the
// set is not a single atomic cut when reductions are still running.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Calls:          s.calls.Load(),
		Iterations:     s.iterations.Load(),
		SizeReductions: s.sizeReductions.Load(),
		Swaps:          s.swaps.Load(),
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.calls.Store(0)
	s.iterations.Store(0)
	s.sizeReductions.Store(0)
	s.swaps.Store(0)
}

// String is the profile report of the current counters.
func (s *Stats) String() string { return s.Snapshot().String() }

// String renders the snapshot on one line.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("calls=%d iterations=%d size-reductions=%d swaps=%d",
		s.Calls, s.Iterations, s.SizeReductions, s.Swaps)
}

// add folds the counters of one finished call into s.
func (s *Stats) add(iterations, sizeReductions, swaps int) {
	s.calls.Add(1)
	s.iterations.Add(int64(iterations))
	s.sizeReductions.Add(int64(sizeReductions))
	s.swaps.Add(int64(swaps))
}
