// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Defaults reproduce the classic algorithm exactly (exact zero test).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZeroTolerance is the magnitude at or below which an entry counts
	// as zero during pivot search and elimination. 0 means the exact test x == 0.
	DefaultZeroTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation in Set and
	// NewDenseFromRows.
	DefaultValidateNaNInf = true

	// DefaultEarlyStop ends the column sweep once every row holds a pivot.
	// The remaining columns are free either way; disabling it only costs scans.
	DefaultEarlyStop = true
)

const (
	panicZeroToleranceInvalid = "matrix: WithZeroTolerance: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration of one reduction.
// Fields are unexported; use the WithX constructors.
type Options struct {
	zeroTol   float64
	earlyStop bool
	onStep    func(Step)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		zeroTol:   DefaultZeroTolerance,
		earlyStop: DefaultEarlyStop,
	}
}

// WithZeroTolerance sets the zero threshold used by pivot search and by the
// skip test in row reduction. Entries with |x| <= eps are treated as zero.
// eps == 0 keeps the exact comparison. Panics on negative or non-finite eps.
func WithZeroTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicZeroToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = eps }
}

// WithStepHook registers fn to observe every elimination step in order.
// A nil fn clears the hook.
func WithStepHook(fn func(Step)) Option {
	return func(o *Options) { o.onStep = fn }
}

// WithEarlyStop toggles stopping the column sweep once rank == rows.
func WithEarlyStop(on bool) Option {
	return func(o *Options) { o.earlyStop = on }
}

// ZeroTolerance reports the configured zero threshold.
func (o Options) ZeroTolerance() float64 { return o.zeroTol }

// isZero applies the numeric zero policy.
func (o Options) isZero(v float64) bool {
	if o.zeroTol == 0 {
		return v == 0
	}

	return math.Abs(v) <= o.zeroTol
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
