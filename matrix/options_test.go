// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := matrix.DefaultOptions()
	assert.Equal(t, matrix.DefaultZeroTolerance, o.ZeroTolerance())
	assert.Zero(t, o.ZeroTolerance(), "exact zero test by default")
}

func TestWithZeroTolerance_Panics(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithZeroTolerance(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { matrix.WithZeroTolerance(0) })
}

// TestWithStepHook_NilClears verifies that a later nil hook disables tracing.
func TestWithStepHook_NilClears(t *testing.T) {
	calls := 0
	m := MustDense(t, [][]float64{{2, 4}, {1, 3}})
	_, err := matrix.RREF(m,
		matrix.WithStepHook(func(matrix.Step) { calls++ }),
		matrix.WithStepHook(nil),
	)
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestStepKindString(t *testing.T) {
	assert.Equal(t, "free", matrix.StepFree.String())
	assert.Equal(t, "swap", matrix.StepSwap.String())
	assert.Equal(t, "descale", matrix.StepDescale.String())
	assert.Equal(t, "reduce", matrix.StepReduce.String())
	assert.Equal(t, "unknown", matrix.StepKind(42).String())
}
