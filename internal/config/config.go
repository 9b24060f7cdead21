package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sonemaro/patterntext/pkg/logger"
	"github.com/sonemaro/patterntext/pkg/output"
	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Verbose sets the verbosity level of the log sink
	Verbose int

	// LogFile is the path log entries are appended to ("-" for stderr)
	LogFile string

	// LogFormat is the log encoding (text or json)
	LogFormat string

	// Output specifies the output format (text, json, or yaml)
	Output string

	// OutputFile is the path to write the output (empty for stdout)
	OutputFile string

	// WithStats appends batch statistics to the output
	WithStats bool

	// NoColor disables colored output
	NoColor bool
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("verbose", DefaultVerbosity)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_format", string(LogFormatText))
	v.SetDefault("output", string(OutputFormatText))
	v.SetDefault("output_file", "")
	v.SetDefault("stats", false)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("PATTERNTEXT")
	v.AutomaticEnv()

	for _, key := range []string{
		"verbose", "log_file", "log_format", "output", "output_file", "stats", "no_color",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := Config{
		Verbose:    parseVerbosity(v.GetString("verbose")),
		LogFile:    strings.TrimSpace(v.GetString("log_file")),
		LogFormat:  strings.ToLower(v.GetString("log_format")),
		Output:     strings.ToLower(v.GetString("output")),
		OutputFile: strings.TrimSpace(v.GetString("output_file")),
		WithStats:  v.GetBool("stats"),
		NoColor:    v.GetBool("no_color"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseVerbosity accepts either a number ("2") or a string of v's ("vv")
func parseVerbosity(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultVerbosity
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return strings.Count(s, "v")
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	if !output.Format(c.Output).IsValid() {
		return fmt.Errorf("invalid output format: must be one of [text json yaml]")
	}

	if !logger.Encoding(c.LogFormat).IsValid() {
		return fmt.Errorf("invalid log format: must be one of [text json]")
	}

	if c.OutputFile != "" && c.OutputFile == c.LogFile {
		return fmt.Errorf("output file and log file must differ")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Verbose: %d, LogFile: %s, LogFormat: %s, Output: %s, "+
			"OutputFile: %s, WithStats: %v, NoColor: %v}",
		c.Verbose, c.LogFile, c.LogFormat, c.Output,
		c.OutputFile, c.WithStats, c.NoColor,
	)
}
