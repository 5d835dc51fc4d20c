// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the elimination kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for entries outside pivot columns.
const tol = 1e-12

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// Identity returns I_n as a *Dense.
func Identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}

	return m
}

// RandomDense fills an r×c matrix with small integers from a fixed seed.
// Roughly a third of the entries are zero to exercise swaps and free columns.
func RandomDense(t testing.TB, seed int64, r, c int) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Intn(3) == 0 {
				continue
			}
			require.NoError(t, m.Set(i, j, float64(rng.Intn(19)-9)))
		}
	}

	return m
}

// RequireRowsNear compares m against want entry by entry within eps.
func RequireRowsNear(t testing.TB, want [][]float64, m *matrix.Dense, eps float64) {
	t.Helper()
	got := m.RowsCopy()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			require.LessOrEqualf(t, math.Abs(got[i][j]-want[i][j]), eps,
				"entry (%d,%d): got %v want %v", i, j, got[i][j], want[i][j])
		}
	}
}
