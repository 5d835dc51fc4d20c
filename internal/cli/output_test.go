package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rref/matrix"
)

func TestExitError(t *testing.T) {
	base := errors.New("disk gone")

	err := WrapExitError(ExitFailure, "reading rows", base)
	assert.Equal(t, "reading rows: disk gone", err.Error())
	assert.ErrorIs(t, err, base)

	plain := NewExitError(ExitCommandError, "bad args")
	assert.Equal(t, "bad args", plain.Error())
	assert.NoError(t, plain.Unwrap())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))

	wrapped := fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "x"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out}

	require.NoError(t, f.Success(RankResult{Rank: 4}, 3))
	require.NoError(t, f.Success("plain", 3))
	assert.Equal(t, "4\nplain\n", out.String())
}

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, TraceID: "t-1"}

	require.NoError(t, f.Success(RankResult{Rank: 2}, 0))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "t-1", resp.TraceID)
	assert.Nil(t, resp.Error)
	assert.Equal(t, map[string]any{"rank": float64(2)}, resp.Data)
}

func TestOutputFormatter_TextErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errOut}

	err := f.fail(ExitFailure, ErrCodeInput, msgReadInput, errors.New("eof"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Empty(t, out.String())
	assert.Equal(t, "Error [E003]: reading rows: eof\n", errOut.String())
}

func TestOutputFormatter_TextErrorFallsBackToWriter(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out}

	require.NoError(t, f.Error(ErrCodeArgs, "nope", nil))
	assert.Equal(t, "Error [E001]: nope\n", out.String())
}

func TestOutputFormatter_JSONError(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out}

	require.NoError(t, f.Error(ErrCodeReduce, "reducing matrix", map[string]int{"rows": 0}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeReduce, resp.Error.Code)
	assert.Empty(t, resp.TraceID)
}

// TestNewReduceResult checks that negative zeros never reach JSON output.
func TestNewReduceResult(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, -4}, {0, 0}})
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, math.Copysign(0, -1)))

	res := newReduceResult(m, matrix.Reduction{Rank: 1, PivotCols: []int{0}})
	assert.Equal(t, []int{}, res.FreeColumns)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":2,"cols":2,"rank":1,"pivot_columns":[0],"free_columns":[],"matrix":[[1,-4],[0,0]]}`, string(b))
	assert.NotContains(t, string(b), "-0")
}

func TestOutputFormatter_FailWithoutCause(t *testing.T) {
	var errOut bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &errOut}

	err := f.fail(ExitCommandError, ErrCodeArgs, "bad rows", nil)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitCommandError, exitErr.Code)
	assert.Equal(t, "E001: bad rows", exitErr.Error())
	assert.NoError(t, errors.Unwrap(err))
	assert.Equal(t, "Error [E001]: bad rows\n", errOut.String())
}
