// Package rref is a small toolkit for reducing dense real matrices to
// Reduced Row Echelon Form with Gauss-Jordan elimination.
//
// 🚀 What is in the box?
//
//	• matrix/         : Dense container, RREF/Reduce/RREFRows, row primitives,
//	                    rank and IsRREF checks, step hooks for tracing
//	• internal/config : YAML file + .env + RREF_* environment configuration
//	• internal/input  : row readers (one line per row, or a free token stream)
//	• internal/cli    : reduce, rank and demo commands, text or JSON output
//	• cmd/rref        : the command-line entry point
//
// ✨ Numeric contract
//
//   - Zero tests are exact unless a tolerance is configured.
//   - Pivot columns end with exact ones and zeros.
//   - Rank never exceeds min(rows, cols); reducing twice changes nothing.
//
// Quick example:
//
//	[1 2 | 5]      [1 0 | -4 ]
//	[3 4 | 6]  ->  [0 1 | 4.5]      rank 2
//
//	go install github.com/katalvlaran/rref/cmd/rref@latest
//	rref demo
package rref
