// Package matrix reduces dense real matrices to Reduced Row Echelon Form.
//
// The matrix package provides:
//
//   - Dense, an owned row-major float64 container with bounds-checked
//     accessors and a finite-value numeric policy.
//   - RREF / Reduce / RREFRows, Gauss-Jordan elimination in place, returning
//     the rank (and, for Reduce, the pivot and free columns).
//   - The row primitives SwapRows, DescaleRow and ReduceRows.
//   - IsRREF and Rank helpers for checks that must not mutate the input.
//
// Zero tests are exact by default; WithZeroTolerance opts into a threshold.
// WithStepHook exposes every swap, descale, reduce and free-column decision
// for tracing.
//
// See the examples in this package for usage patterns.
package matrix
