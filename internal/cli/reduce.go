package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rref/internal/input"
	"github.com/katalvlaran/rref/matrix"
)

// ReduceResult is the payload of the reduce and demo commands.
type ReduceResult struct {
	Rows         int         `json:"rows"`
	Cols         int         `json:"cols"`
	Rank         int         `json:"rank"`
	PivotColumns []int       `json:"pivot_columns"`
	FreeColumns  []int       `json:"free_columns"`
	Matrix       [][]float64 `json:"matrix"`

	m *matrix.Dense
}

// Text renders the reduced matrix followed by the rank.
func (r ReduceResult) Text(precision int) string {
	return r.m.Format(precision) + "rank: " + strconv.Itoa(r.Rank) + "\n"
}

// RankResult is the payload of the rank command.
type RankResult struct {
	Rank int `json:"rank"`
}

// Text renders the bare rank.
func (r RankResult) Text(int) string {
	return strconv.Itoa(r.Rank) + "\n"
}

func newReduceResult(m *matrix.Dense, red matrix.Reduction) ReduceResult {
	rows := m.RowsCopy()
	for i := range rows {
		for j, v := range rows[i] {
			if v == 0 {
				rows[i][j] = 0 // encoding/json keeps the sign of -0
			}
		}
	}
	free := red.FreeCols
	if free == nil {
		free = []int{}
	}

	return ReduceResult{
		Rows:         m.Rows(),
		Cols:         m.Cols(),
		Rank:         red.Rank,
		PivotColumns: red.PivotCols,
		FreeColumns:  free,
		Matrix:       rows,
		m:            m,
	}
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "reduce <rows> <cols>",
		Short: "Read a matrix and print its reduced row echelon form",
		Long: `Read <rows> rows of <cols> numbers each, reduce the matrix to RREF in
place and print it together with its rank.

Missing or malformed entries are taken as 0.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(rootOpts, cmd, args, inputPath, false)
		},
	}
	cmd.Flags().StringVarP(&inputPath, flagInput, "i", "", "read rows from this file instead of stdin")

	return cmd
}

// NewRankCommand creates the rank command.
func NewRankCommand(rootOpts *RootOptions) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:           "rank <rows> <cols>",
		Short:         "Read a matrix and print only its rank",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(rootOpts, cmd, args, inputPath, true)
		},
	}
	cmd.Flags().StringVarP(&inputPath, flagInput, "i", "", "read rows from this file instead of stdin")

	return cmd
}

// NewDemoCommand creates the demo command, which reduces a built-in 4×3 matrix.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "demo",
		Short:         "Reduce the built-in 4x3 sample matrix",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.begin(cmd)
			if err != nil {
				return err
			}
			return s.reduceAndReport(DemoRows(), false)
		},
	}
}

// DemoRows returns a fresh copy of the sample matrix.
func DemoRows() [][]float64 {
	return [][]float64{
		{1.0, -1.0, 3.0},
		{2.0, 0.52, 0.0},
		{0.0, 0.0, 0.0},
		{3.3, 2.0, -4.0},
	}
}

func runReduce(opts *RootOptions, cmd *cobra.Command, args []string, inputPath string, rankOnly bool) error {
	s, err := opts.begin(cmd)
	if err != nil {
		return err
	}

	rows, err := parseDimension("rows", args[0])
	if err != nil {
		return s.formatter.fail(ExitCommandError, ErrCodeArgs, err.Error(), nil)
	}
	cols, err := parseDimension("cols", args[1])
	if err != nil {
		return s.formatter.fail(ExitCommandError, ErrCodeArgs, err.Error(), nil)
	}

	var src io.Reader = cmd.InOrStdin()
	var prompt io.Writer
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return s.formatter.fail(ExitCommandError, ErrCodeInput, fmt.Sprintf(msgOpenInput, inputPath), err)
		}
		defer f.Close()
		src = f
	} else if s.cfg.Prompt {
		prompt = cmd.ErrOrStderr()
	}

	rd := &input.Reader{R: src, Prompt: prompt, Mode: s.cfg.InputMode}
	res, err := rd.Read(rows, cols)
	if err != nil {
		return s.formatter.fail(ExitFailure, ErrCodeInput, msgReadInput, err)
	}
	for _, is := range res.Issues {
		if is.Token != "" {
			s.logger.Warn("malformed entry defaulted to zero", "row", is.Row, "col", is.Col, "token", is.Token)
		} else {
			s.logger.Debug("missing entry defaulted to zero", "row", is.Row, "col", is.Col)
		}
	}

	return s.reduceAndReport(res.Rows, rankOnly)
}

// reduceAndReport runs the elimination over rows and writes the result.
func (s *session) reduceAndReport(rows [][]float64, rankOnly bool) error {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return s.formatter.fail(ExitCommandError, ErrCodeReduce, msgReduce, err)
	}

	opts := []matrix.Option{matrix.WithZeroTolerance(s.cfg.ZeroTolerance)}
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, matrix.WithStepHook(stepLogger(s.logger)))
	}

	if rankOnly {
		rank, err := matrix.Rank(m, opts...)
		if err != nil {
			return s.formatter.fail(ExitFailure, ErrCodeReduce, msgReduce, err)
		}
		s.logger.Info("rank computed", "rows", m.Rows(), "cols", m.Cols(), "rank", rank)
		return s.formatter.Success(RankResult{Rank: rank}, s.cfg.Precision)
	}

	red, err := matrix.Reduce(m, opts...)
	if err != nil {
		return s.formatter.fail(ExitFailure, ErrCodeReduce, msgReduce, err)
	}
	s.logger.Info("matrix reduced", "rows", m.Rows(), "cols", m.Cols(), "rank", red.Rank, "pivots", red.PivotCols)

	return s.formatter.Success(newReduceResult(m, red), s.cfg.Precision)
}

// stepLogger logs each elimination step at debug level.
func stepLogger(l *slog.Logger) func(matrix.Step) {
	return func(st matrix.Step) {
		l.Debug("elimination step",
			"kind", st.Kind.String(),
			"col", st.Col,
			"row", st.Row,
			"other", st.Other,
			"scalar", st.Scalar,
		)
	}
}
