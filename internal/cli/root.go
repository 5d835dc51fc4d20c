// Package cli implements the rref command-line interface: argument and
// configuration handling, row collection, and result rendering around the
// matrix package.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rref/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose       bool
	Format        string // "json" | "text"
	ConfigPath    string
	Precision     int
	InputMode     string // "line" | "scan"
	ZeroTolerance float64
	NoPrompt      bool

	newTraceID func() string
}

// Flag names; also used to detect explicit overrides of config values.
const (
	flagVerbose   = "verbose"
	flagFormat    = "format"
	flagConfig    = "config"
	flagPrecision = "precision"
	flagMode      = "mode"
	flagTolerance = "zero-tolerance"
	flagNoPrompt  = "no-prompt"
	flagInput     = "input"
)

// NewRootCommand creates the root command for the rref CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{newTraceID: uuid.NewString})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	if opts.newTraceID == nil {
		opts.newTraceID = uuid.NewString
	}

	cmd := &cobra.Command{
		Use:   "rref",
		Short: "rref - reduced row echelon form calculator",
		Long: `Reduce a dense real matrix to Reduced Row Echelon Form by Gauss-Jordan
elimination and report its rank.

Rows are read interactively (one prompt per row) or from a file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, flagVerbose, "v", false, "verbose output (logs every elimination step)")
	pf.StringVar(&opts.Format, flagFormat, config.DefaultFormat, "output format (json|text)")
	pf.StringVarP(&opts.ConfigPath, flagConfig, "c", "", "path to a YAML config file")
	pf.IntVarP(&opts.Precision, flagPrecision, "p", config.DefaultPrecision, "digits after the decimal point in text output")
	pf.StringVar(&opts.InputMode, flagMode, config.DefaultInputMode, "row input mode (line|scan)")
	pf.Float64Var(&opts.ZeroTolerance, flagTolerance, config.DefaultZeroTolerance, "treat |x| <= tolerance as zero (0 = exact test)")
	pf.BoolVar(&opts.NoPrompt, flagNoPrompt, false, "do not prompt for rows")

	// Add subcommands
	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewRankCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// Execute runs the root command with os.Args and returns the process exit code.
func Execute() int {
	return execute(NewRootCommand())
}

// execute runs cmd and maps its error to an exit code. Errors that were not
// already reported through an OutputFormatter are printed once to stderr.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// cobra usage errors (unknown flag, wrong arg count)
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return ExitCommandError
	}
	return GetExitCode(err)
}

// resolve loads the configuration and applies explicitly set flags on top.
func (o *RootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed(flagFormat) {
		cfg.Format = o.Format
	}
	if fl.Changed(flagPrecision) {
		cfg.Precision = o.Precision
	}
	if fl.Changed(flagMode) {
		cfg.InputMode = o.InputMode
	}
	if fl.Changed(flagTolerance) {
		cfg.ZeroTolerance = o.ZeroTolerance
	}
	if fl.Changed(flagNoPrompt) {
		cfg.Prompt = !o.NoPrompt
	}
	if o.Verbose {
		cfg.LogLevel = config.LevelDebug
	}

	return cfg, cfg.Validate()
}

// session bundles what every command needs after resolution.
type session struct {
	cfg       config.Config
	formatter *OutputFormatter
	logger    *slog.Logger
}

// begin resolves config and builds the formatter and logger for cmd.
// On failure the error has already been reported.
func (o *RootOptions) begin(cmd *cobra.Command) (*session, error) {
	traceID := o.newTraceID()
	formatter := &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		TraceID:   traceID,
	}
	if formatter.Format != config.FormatJSON {
		formatter.Format = config.FormatText
	}

	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, formatter.fail(ExitCommandError, ErrCodeConfig, msgLoadConfig, err)
	}
	formatter.Format = cfg.Format

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel).With("trace_id", traceID, "cmd", cmd.Name())

	return &session{cfg: cfg, formatter: formatter, logger: logger}, nil
}

// newLogger builds a text slog.Logger writing to w at the named level.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case config.LevelDebug:
		lvl = slog.LevelDebug
	case config.LevelWarn:
		lvl = slog.LevelWarn
	case config.LevelError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// parseDimension parses a positive integer positional argument.
func parseDimension(name, arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf(msgInvalidDimension, name, arg)
	}

	return n, nil
}
