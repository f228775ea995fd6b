// SPDX-License-Identifier: MIT
// Package lattice: functional options for Reduce.
//
// Contract:
//   - Option constructors panic on nonsensical values (programmer error);
//     Reduce itself never panics on user input.
//   - No hidden globals: counters and logging are supplied by the caller.

package lattice

import "log/slog"

// Alpha is the Lovász-condition threshold (2²⁰−1)/2²⁰: strictly below 1 so
// every swap shrinks the potential, and well above 1/4.
const Alpha = 1048575.0 / 1048576.0

// SizeBound is the largest |μ| left untouched by size reduction.
const SizeBound = 0.5

const (
	panicNilStats  = "lattice: WithStats(nil)"
	panicNilLogger = "lattice: WithLogger(nil)"
)

// Option customizes a Reduce call.
type Option func(*options)

// options is the resolved configuration of one Reduce call.
type options struct {
	stats  *Stats       // nil: counters are only reported in Result
	logger *slog.Logger // nil: silent
}

// WithStats accumulates the call's counters into s. A single *Stats may be
// shared by concurrent reductions.
func WithStats(s *Stats) Option {
	if s == nil {
		panic(panicNilStats)
	}
	return func(o *options) { o.stats = s }
}

// WithLogger enables structured logging: one Debug record per outer
// iteration and one Info record per call.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts in order; later options win.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
