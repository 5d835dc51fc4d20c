// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination to Reduced Row Echelon Form.
//
// Purpose:
//   - Reduce a Dense matrix in place to RREF and report its rank.
//   - Expose the three row primitives (swap, descale, reduce) with bounds checks.
//
// Algorithm (one pass per column j, numPivotCols = p):
//  1. scan rows p..r-1 for the first non-zero entry at column j;
//  2. none found: j is a free column, p is unchanged;
//  3. found at i != p: swap rows i and p;
//  4. descale row p so that a[p][j] == 1;
//  5. eliminate column j from every other row using row p;
//  6. p++.
//
// Numeric policy:
//   - The zero test is exact (x == 0) unless WithZeroTolerance is given.
//     No magnitude pivoting is performed.
//   - x/x == 1 and x - x*1 == 0 hold exactly in IEEE-754, so pivot columns end
//     with exact ones and zeros; other columns carry ordinary rounding.
//
// Complexity: O(r * c * r) time worst case, O(r) extra space for row views.

package matrix

import "fmt"

// RREF reduces m in place to reduced row echelon form and returns its rank.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Determinism: fixed j→i loop order; identical input gives identical output bits.
func RREF(m *Dense, opts ...Option) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRREF, ErrNilMatrix)
	}
	red := rref(m.r, m.c, m.rowViews(), gatherOptions(opts...))

	return red.Rank, nil
}

// Reduce is RREF returning the full Reduction summary (pivot and free columns).
func Reduce(m *Dense, opts ...Option) (Reduction, error) {
	if m == nil {
		return Reduction{}, matrixErrorf(opReduce, ErrNilMatrix)
	}

	return rref(m.r, m.c, m.rowViews(), gatherOptions(opts...)), nil
}

// RREFRows reduces caller-owned row storage in place and returns the rank.
// It is the boundary form of the algorithm: rows and cols are declared by the
// caller and checked against a before any entry is touched.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch when len(a) != rows or some len(a[i]) != cols.
func RREFRows(rows, cols int, a [][]float64, opts ...Option) (int, error) {
	if err := ValidateRowStorage(rows, cols, a); err != nil {
		return 0, matrixErrorf(opRREFRows, err)
	}
	red := rref(rows, cols, a, gatherOptions(opts...))

	return red.Rank, nil
}

// Rank returns the rank of m without modifying it (the sweep runs on a clone).
func Rank(m *Dense, opts ...Option) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrNilMatrix)
	}

	return RREF(m.clone(), opts...)
}

// SwapRows exchanges rows r1 and r2 of m across all columns.
// r1 == r2 is a no-op.
func SwapRows(m *Dense, r1, r2 int) error {
	if m == nil {
		return matrixErrorf(opSwapRows, ErrNilMatrix)
	}
	if err := ValidateRowIndex(m, r1); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, r2); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	swapRows(m.c, r1, r2, m.rowViews())

	return nil
}

// DescaleRow divides every entry of row by m[row][col], leaving 1 at col.
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrSingular when m[row][col] is exactly zero; m is left unchanged.
func DescaleRow(m *Dense, row, col int) error {
	if m == nil {
		return matrixErrorf(opDescaleRow, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return matrixErrorf(opDescaleRow, denseErrorf(ctxAt, row, col, ErrOutOfRange))
	}
	if m.data[row*m.c+col] == 0 {
		return matrixErrorf(opDescaleRow, denseErrorf(ctxAt, row, col, ErrSingular))
	}
	descaleRow(col, m.c, row, m.rowViews())

	return nil
}

// ReduceRows subtracts multiples of pivotRow from rows [0,rowEnd) other than
// pivotRow, over columns [start,end). Rows already zero at start are skipped.
// pivotRow is expected to hold 1 at start; ReduceRows does not check it.
//
// Errors:
//   - ErrOutOfRange when 0 <= start < end <= Cols(), 0 <= pivotRow < rowEnd <= Rows()
//     does not hold.
func ReduceRows(m *Dense, start, end, pivotRow, rowEnd int) error {
	if m == nil {
		return matrixErrorf(opReduceRows, ErrNilMatrix)
	}
	if start < 0 || end > m.c || start >= end {
		return matrixErrorf(opReduceRows, fmt.Errorf("columns [%d,%d) of %d: %w", start, end, m.c, ErrOutOfRange))
	}
	if rowEnd > m.r || pivotRow < 0 || pivotRow >= rowEnd {
		return matrixErrorf(opReduceRows, fmt.Errorf("pivot row %d, row end %d of %d: %w", pivotRow, rowEnd, m.r, ErrOutOfRange))
	}
	reduceRows(start, end, pivotRow, rowEnd, m.rowViews(), DefaultOptions())

	return nil
}

// ---------- kernels (no validation; callers guarantee shapes) ----------

// rref runs the column sweep over row views a (rows × cols).
func rref(rows, cols int, a [][]float64, o Options) Reduction {
	red := Reduction{
		PivotCols: make([]int, 0, min(rows, cols)),
	}
	numPivotCols := 0

	var i, j int
	for j = 0; j < cols; j++ {
		if o.earlyStop && numPivotCols == rows {
			break
		}

		// pivot search starts at the first unsettled row
		for i = numPivotCols; i < rows; i++ {
			if !o.isZero(a[i][j]) {
				break
			}
		}
		if i == rows {
			red.FreeCols = append(red.FreeCols, j)
			o.emit(Step{Kind: StepFree, Col: j, Row: numPivotCols, Other: -1})
			continue
		}
		if i != numPivotCols {
			swapRows(cols, numPivotCols, i, a)
			o.emit(Step{Kind: StepSwap, Col: j, Row: numPivotCols, Other: i})
		}

		o.emit(Step{Kind: StepDescale, Col: j, Row: numPivotCols, Other: -1, Scalar: a[numPivotCols][j]})
		descaleRow(j, cols, numPivotCols, a)

		reduceRows(j, cols, numPivotCols, rows, a, o)

		red.PivotCols = append(red.PivotCols, j)
		numPivotCols++
	}
	// columns skipped by the early stop are free
	for ; j < cols; j++ {
		red.FreeCols = append(red.FreeCols, j)
	}
	red.Rank = numPivotCols

	return red
}

// swapRows exchanges rows row1 and row2 column by column.
func swapRows(cols, row1, row2 int, a [][]float64) {
	if row1 == row2 {
		return
	}
	r1, r2 := a[row1], a[row2]
	for j := 0; j < cols; j++ {
		r1[j], r2[j] = r2[j], r1[j]
	}
}

// descaleRow divides the whole row by its entry at col.
// The caller guarantees a[row][col] != 0.
func descaleRow(col, cols, row int, a [][]float64) {
	r := a[row]
	pivot := r[col]
	for j := 0; j < cols; j++ {
		r[j] /= pivot
	}
}

// reduceRows zeroes column start in every row but pivotRow.
// Columns before start are already zero in the pivot row and are left alone.
func reduceRows(start, end, pivotRow, rowEnd int, a [][]float64, o Options) {
	p := a[pivotRow]
	var scalar float64
	for i := 0; i < rowEnd; i++ {
		if i == pivotRow || o.isZero(a[i][start]) {
			continue
		}
		r := a[i]
		scalar = r[start]
		for k := start; k < end; k++ {
			r[k] -= scalar * p[k]
		}
		o.emit(Step{Kind: StepReduce, Col: start, Row: pivotRow, Other: i, Scalar: scalar})
	}
}

// emit forwards s to the step hook, if any.
func (o Options) emit(s Step) {
	if o.onStep != nil {
		o.onStep(s)
	}
}

// IsRREF reports whether m is in reduced row echelon form, treating entries
// with |x| <= eps as zero: every non-zero row starts with a 1, leading ones move
// strictly right, each leading column is zero elsewhere, and zero rows are last.
func IsRREF(m *Dense, eps float64) bool {
	if m == nil {
		return false
	}
	o := DefaultOptions()
	if eps > 0 {
		o.zeroTol = eps
	}
	a := m.rowViews()
	lastLead := -1
	seenZeroRow := false
	var i, j, k int
	for i = 0; i < m.r; i++ {
		lead := -1
		for j = 0; j < m.c; j++ {
			if !o.isZero(a[i][j]) {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZeroRow = true
			continue
		}
		if seenZeroRow || lead <= lastLead || !o.isZero(a[i][lead]-1) {
			return false
		}
		for k = 0; k < m.r; k++ {
			if k != i && !o.isZero(a[k][lead]) {
				return false
			}
		}
		lastLead = lead
	}

	return true
}
