package config

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	// OutputFormatText prints one sentence per line
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON represents the JSON output format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML output format
	OutputFormatYAML OutputFormat = "yaml"
)

// LogFormat represents the supported log encodings
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Configuration defaults
const (
	// DefaultLogFile is the log file written next to the working directory
	DefaultLogFile = "patterntext.log"

	// StderrLogFile sends log entries to stderr instead of a file
	StderrLogFile = "-"

	// DefaultVerbosity records debug entries, which include every rendered sentence
	DefaultVerbosity = 1
)
