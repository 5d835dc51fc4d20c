// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage and elimination kernels.
// This file contains ONLY types: the Matrix interface, the elimination Step
// trace record and the Reduction summary. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// StepKind names one elementary action of the Gauss-Jordan sweep.
type StepKind int

const (
	// StepFree marks a column without a pivot in the unsettled rows.
	StepFree StepKind = iota
	// StepSwap marks a row exchange bringing a pivot into the pivot row.
	StepSwap
	// StepDescale marks the division of the pivot row by its pivot entry.
	StepDescale
	// StepReduce marks the elimination of the pivot column from one other row.
	StepReduce
)

// String returns the lower-case step name used in logs.
func (k StepKind) String() string {
	switch k {
	case StepFree:
		return "free"
	case StepSwap:
		return "swap"
	case StepDescale:
		return "descale"
	case StepReduce:
		return "reduce"
	default:
		return "unknown"
	}
}

// Step describes one elimination action, reported through WithStepHook.
//   - Col: the column being processed.
//   - Row: the pivot row (numPivotCols at the time of the step).
//   - Other: the second row of a swap, or the row being reduced; -1 otherwise.
//   - Scalar: the pivot value for descale, the multiplier for reduce; 0 otherwise.
type Step struct {
	Kind   StepKind
	Col    int
	Row    int
	Other  int
	Scalar float64
}

// Reduction summarizes a completed RREF sweep.
//   - Rank equals len(PivotCols).
//   - PivotCols[p] is the pivot column of row p, strictly increasing.
//   - FreeCols lists the remaining columns in increasing order.
type Reduction struct {
	Rank      int
	PivotCols []int
	FreeCols  []int
}
