// Package config provides configuration management for the patterntext
// application. It reads environment variables through viper and validates
// every value before the application starts.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Command line flags are applied on top of the loaded configuration by the
// commands package, and only when the flag was set explicitly.
//
// # Environment Variables
//
//	PATTERNTEXT_VERBOSE      Verbosity level, "2" or "vv" (default: 1)
//	PATTERNTEXT_LOG_FILE     Log file path, "-" for stderr (default: patterntext.log)
//	PATTERNTEXT_LOG_FORMAT   Log encoding: text|json (default: text)
//	PATTERNTEXT_OUTPUT       Output format: text|json|yaml (default: text)
//	PATTERNTEXT_OUTPUT_FILE  Output file path (empty for stdout)
//	PATTERNTEXT_STATS        Append statistics to the output (true/false)
//	PATTERNTEXT_NO_COLOR     Disable colored output (true/false)
//
// # Verbosity
//
// The log sink records debug entries by default, so every user input and
// every rendered sentence ends up in the log file:
//
//	0: Info, Warn, Error
//	1: Debug + Level 0 (default)
//	2: Trace + Level 1
//
// # Configuration Validation
//
//   - Verbose must be non-negative
//   - Output must be one of: text, json, yaml
//   - LogFormat must be one of: text, json
//   - OutputFile must not point at the log file
package config
