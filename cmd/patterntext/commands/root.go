/*
Package commands implements the CLI command structure for patterntext.
It provides the root command, which renders patterns, and the version
subcommand.
*/
package commands

import (
	"fmt"

	"github.com/sonemaro/patterntext/cmd/patterntext/app"
	"github.com/sonemaro/patterntext/internal/config"
	"github.com/sonemaro/patterntext/pkg/pattern"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options holds command-line options that apply to all commands
type Options struct {
	FS afero.Fs

	verbosity  int
	noColor    bool
	output     string
	outputFile string
	logFile    string
	logFormat  string
	stats      bool
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs())
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	opts := &Options{FS: fs}

	rootCmd := &cobra.Command{
		Use:   "patterntext [flags] <pattern> <number>...",
		Short: "Render a letter pattern as a sentence",
		Long: fmt.Sprintf(`patterntext repeats a pattern until it reaches each requested length and
prints it as a sentence.

The pattern may only contain the letters %s (%s).
Every number must be an integer greater than 0; a single invalid number
rejects the whole batch.

Flags must come before the pattern.`, pattern.Default.String(), describeAlphabet(pattern.Default)),
		Example: `  patterntext STTTS 5 7
  patterntext -o json S 1 2 3
  patterntext --log-file - -vv ST 4`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], args[1:], opts)
		},
	}

	// Anything after the pattern is a number, including "-1".
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().CountVarP(&opts.verbosity, "verbose", "v",
		"log verbosity (can be used multiple times)")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"disable colored output")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", string(config.OutputFormatText),
		"output format: text|json|yaml")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output-file", "f", "",
		"write output to file instead of stdout")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", config.DefaultLogFile,
		`log file path ("-" for stderr)`)
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", string(config.LogFormatText),
		"log format: text|json")
	rootCmd.Flags().BoolVar(&opts.stats, "stats", false,
		"append statistics to the output")

	rootCmd.AddCommand(newVersionCommand(opts))

	return rootCmd
}

// loadConfig reads the environment and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbosity
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("output-file") {
		cfg.OutputFile = opts.outputFile
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("stats") {
		cfg.WithStats = opts.stats
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func runRender(cmd *cobra.Command, patternArg string, numbers []string, opts *Options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	application, err := app.New(cfg, opts.FS, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	runErr := application.Run(patternArg, numbers)
	if err := application.Shutdown(); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func describeAlphabet(a pattern.Alphabet) string {
	letters := a.Letters()
	parts := make([]string, 0, len(letters))
	for _, c := range letters {
		w, _ := a.Word(c)
		parts = append(parts, fmt.Sprintf("%c = %s", c, w))
	}
	return pattern.JoinWords(parts)
}
