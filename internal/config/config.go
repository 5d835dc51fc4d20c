// Package config resolves CLI settings from defaults, an optional YAML file,
// a .env file and RREF_* environment variables, in that order of precedence
// (later sources win). Command-line flags are applied on top by the cli package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Input modes.
const (
	// ModeLine reads one row per line; bad tokens and missing entries become 0.
	ModeLine = "line"
	// ModeScan reads a whitespace token stream; the first bad token ends input.
	ModeScan = "scan"
)

// Log levels accepted in LogLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Defaults.
const (
	DefaultFormat        = FormatText
	DefaultPrecision     = 6 // matches printf("%f")
	DefaultZeroTolerance = 0.0
	DefaultInputMode     = ModeLine
	DefaultPrompt        = true
	DefaultLogLevel      = LevelWarn
)

// Environment variable names.
const (
	EnvFormat        = "RREF_FORMAT"
	EnvPrecision     = "RREF_PRECISION"
	EnvZeroTolerance = "RREF_ZERO_TOLERANCE"
	EnvInputMode     = "RREF_INPUT_MODE"
	EnvPrompt        = "RREF_PROMPT"
	EnvLogLevel      = "RREF_LOG_LEVEL"
)

// envSearchDepth bounds the upward search for a .env file.
const envSearchDepth = 5

var (
	ErrInvalidFormat    = errors.New("config: invalid format")
	ErrInvalidMode      = errors.New("config: invalid input mode")
	ErrInvalidPrecision = errors.New("config: precision must be between 0 and 17")
	ErrInvalidTolerance = errors.New("config: zero tolerance must be finite and non-negative")
	ErrInvalidLogLevel  = errors.New("config: invalid log level")
)

// Config holds the resolved settings of one CLI invocation.
type Config struct {
	Format        string  `yaml:"format"`
	Precision     int     `yaml:"precision"`
	ZeroTolerance float64 `yaml:"zero_tolerance"`
	InputMode     string  `yaml:"input_mode"`
	Prompt        bool    `yaml:"prompt"`
	LogLevel      string  `yaml:"log_level"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Format:        DefaultFormat,
		Precision:     DefaultPrecision,
		ZeroTolerance: DefaultZeroTolerance,
		InputMode:     DefaultInputMode,
		Prompt:        DefaultPrompt,
		LogLevel:      DefaultLogLevel,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), a .env file found from the working directory upward, and
// the process environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := loadEnvFile(); err != nil {
		return cfg, fmt.Errorf("config: load .env: %w", err)
	}
	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// mergeFile overlays the YAML document at path. Absent keys keep their value.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// mergeEnv overlays RREF_* variables using lookup.
func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvPrecision); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvPrecision, v, ErrInvalidPrecision)
		}
		c.Precision = n
	}
	if v, ok := lookup(EnvZeroTolerance); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvZeroTolerance, v, ErrInvalidTolerance)
		}
		c.ZeroTolerance = f
	}
	if v, ok := lookup(EnvInputMode); ok && v != "" {
		c.InputMode = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvPrompt); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvPrompt, v, err)
		}
		c.Prompt = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidFormat, c.Format, []string{FormatText, FormatJSON})
	}
	switch c.InputMode {
	case ModeLine, ModeScan:
	default:
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidMode, c.InputMode, []string{ModeLine, ModeScan})
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("%w: got %d", ErrInvalidPrecision, c.Precision)
	}
	if c.ZeroTolerance < 0 || math.IsNaN(c.ZeroTolerance) || math.IsInf(c.ZeroTolerance, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidTolerance, c.ZeroTolerance)
	}
	switch c.LogLevel {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// loadEnvFile looks up to envSearchDepth levels for a .env file and loads it.
// Variables already set in the process environment are not overridden.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
