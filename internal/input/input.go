// Package input collects matrix rows from a text stream.
//
// Two modes are supported:
//   - line: each row is one line; tokens are split on whitespace, a token that
//     does not parse as a number becomes 0, missing trailing entries become 0
//     and surplus tokens are ignored.
//   - scan: the input is one whitespace-separated token stream that may span
//     lines; reading stops at the first malformed token or at EOF, and every
//     entry not read by then stays 0.
//
// In both modes the returned rows are fully materialized (rows × cols), so the
// elimination core never sees raw input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Mode names, matching the config values.
const (
	ModeLine = "line"
	ModeScan = "scan"
)

const promptFormat = "Enter row %d: "

var (
	// ErrUnknownMode is returned by Read for a mode other than line or scan.
	ErrUnknownMode = errors.New("input: unknown mode")
	// ErrDimensions is returned by Read when rows or cols is not positive.
	ErrDimensions = errors.New("input: dimensions must be > 0")
)

// Issue records an entry that was defaulted to zero.
type Issue struct {
	Row, Col int
	Token    string // empty when the entry was missing
}

// Result carries the materialized rows and any defaulted entries.
type Result struct {
	Rows   [][]float64
	Issues []Issue
}

// Reader reads rows from R, optionally writing a prompt per row to Prompt.
type Reader struct {
	R      io.Reader
	Prompt io.Writer // nil disables prompting
	Mode   string
}

// Read collects rows×cols entries. EOF is not an error: unread entries are 0.
func (rd *Reader) Read(rows, cols int) (Result, error) {
	if rows <= 0 || cols <= 0 {
		return Result{}, ErrDimensions
	}
	res := Result{Rows: make([][]float64, rows)}
	for i := range res.Rows {
		res.Rows[i] = make([]float64, cols)
	}

	switch rd.Mode {
	case ModeLine, "":
		return res, rd.readLines(&res, cols)
	case ModeScan:
		return res, rd.readTokens(&res, cols)
	default:
		return Result{}, fmt.Errorf("%w %q", ErrUnknownMode, rd.Mode)
	}
}

func (rd *Reader) prompt(row int) {
	if rd.Prompt != nil {
		fmt.Fprintf(rd.Prompt, promptFormat, row+1)
	}
}

func (rd *Reader) readLines(res *Result, cols int) error {
	sc := bufio.NewScanner(rd.R)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for i := range res.Rows {
		rd.prompt(i)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("input: row %d: %w", i+1, err)
			}
			res.markMissing(i, 0, cols)
			continue
		}
		fields := strings.Fields(sc.Text())
		for j := 0; j < cols; j++ {
			if j >= len(fields) {
				res.markMissing(i, j, cols)
				break
			}
			v, ok := parseEntry(fields[j])
			if !ok {
				res.Issues = append(res.Issues, Issue{Row: i, Col: j, Token: fields[j]})
				continue
			}
			res.Rows[i][j] = v
		}
	}

	return nil
}

func (rd *Reader) readTokens(res *Result, cols int) error {
	sc := bufio.NewScanner(rd.R)
	sc.Split(bufio.ScanWords)
	for i := range res.Rows {
		rd.prompt(i)
		for j := 0; j < cols; j++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return fmt.Errorf("input: row %d: %w", i+1, err)
				}
				res.markRest(i, j)
				return nil
			}
			v, ok := parseEntry(sc.Text())
			if !ok {
				res.Issues = append(res.Issues, Issue{Row: i, Col: j, Token: sc.Text()})
				if j+1 < cols {
					res.markMissing(i, j+1, cols)
				}
				res.markRest(i+1, 0)
				return nil
			}
			res.Rows[i][j] = v
		}
	}

	return nil
}

// markMissing records entries [from,cols) of row as missing.
func (res *Result) markMissing(row, from, cols int) {
	for j := from; j < cols; j++ {
		res.Issues = append(res.Issues, Issue{Row: row, Col: j})
	}
}

// markRest records every entry from (row,col) to the end as missing.
func (res *Result) markRest(row, col int) {
	for i := row; i < len(res.Rows); i++ {
		res.markMissing(i, col, len(res.Rows[i]))
		col = 0
	}
}

// parseEntry parses a finite decimal number.
func parseEntry(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
