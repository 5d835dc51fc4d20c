package input_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/rref/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_LineMode(t *testing.T) {
	src := "1 -1 3\n2 0.52\n\n3.3 2 -4 99\n"
	var prompts bytes.Buffer
	rd := &input.Reader{R: strings.NewReader(src), Prompt: &prompts, Mode: input.ModeLine}

	res, err := rd.Read(4, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, -1, 3},
		{2, 0.52, 0},
		{0, 0, 0},
		{3.3, 2, -4},
	}, res.Rows)
	assert.Equal(t, "Enter row 1: Enter row 2: Enter row 3: Enter row 4: ", prompts.String())
	assert.Equal(t, []input.Issue{
		{Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, res.Issues)
}

// TestRead_LineModeMalformed keeps reading the line after a bad token.
func TestRead_LineModeMalformed(t *testing.T) {
	rd := &input.Reader{R: strings.NewReader("1 x 3\nNaN 5 6\n"), Mode: input.ModeLine}

	res, err := rd.Read(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 3}, {0, 5, 6}}, res.Rows)
	assert.Equal(t, []input.Issue{
		{Row: 0, Col: 1, Token: "x"},
		{Row: 1, Col: 0, Token: "NaN"},
	}, res.Issues)
}

func TestRead_LineModeEOF(t *testing.T) {
	rd := &input.Reader{R: strings.NewReader("7 8"), Mode: ""}

	res, err := rd.Read(2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{7, 8}, {0, 0}}, res.Rows)
	assert.Len(t, res.Issues, 2)
}

func TestRead_ScanModeSpansLines(t *testing.T) {
	rd := &input.Reader{R: strings.NewReader("1 2\n3\n4 5 6"), Mode: input.ModeScan}

	res, err := rd.Read(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, res.Rows)
	assert.Empty(t, res.Issues)
}

// TestRead_ScanModeStopsAtBadToken leaves everything after the bad token at zero.
func TestRead_ScanModeStopsAtBadToken(t *testing.T) {
	rd := &input.Reader{R: strings.NewReader("1 2 oops 4 5 6"), Mode: input.ModeScan}

	res, err := rd.Read(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 0}, {0, 0, 0}}, res.Rows)
	assert.Equal(t, []input.Issue{
		{Row: 0, Col: 2, Token: "oops"},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}, res.Issues)
}

func TestRead_ScanModeEOF(t *testing.T) {
	var prompts bytes.Buffer
	rd := &input.Reader{R: strings.NewReader("1"), Prompt: &prompts, Mode: input.ModeScan}

	res, err := rd.Read(2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 0}}, res.Rows)
	assert.Len(t, res.Issues, 3)
	assert.Equal(t, "Enter row 1: ", prompts.String())
}

func TestRead_Errors(t *testing.T) {
	rd := &input.Reader{R: strings.NewReader(""), Mode: "csv"}
	_, err := rd.Read(1, 1)
	require.ErrorIs(t, err, input.ErrUnknownMode)

	rd.Mode = input.ModeLine
	_, err = rd.Read(0, 1)
	require.ErrorIs(t, err, input.ErrDimensions)
}

// TestRead_LineModeLongRow reads a row longer than bufio's default token size.
func TestRead_LineModeLongRow(t *testing.T) {
	const cols = 40000
	line := strings.TrimSuffix(strings.Repeat("1.5 ", cols), " ") + "\n"
	rd := &input.Reader{R: strings.NewReader(line), Mode: input.ModeLine}

	res, err := rd.Read(1, cols)
	require.NoError(t, err)
	require.Len(t, res.Rows[0], cols)
	assert.Equal(t, 1.5, res.Rows[0][cols-1])
	assert.Empty(t, res.Issues)
}
