/*
Package app provides the main application container for patterntext. It owns
the log sink, wires the reporter, mapper and formatter together, and runs a
single invocation.

Usage:

	application, err := app.New(cfg, afero.NewOsFs(), os.Stdout)
	if err != nil {
	    log.Fatal(err)
	}
	defer application.Shutdown()

	err = application.Run("STTTS", []string{"5", "7"})
*/
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/sonemaro/patterntext/internal/config"
	"github.com/sonemaro/patterntext/pkg/logger"
	"github.com/sonemaro/patterntext/pkg/output"
	"github.com/sonemaro/patterntext/pkg/pattern"
	"github.com/sonemaro/patterntext/pkg/report"
	"github.com/spf13/afero"
)

// ErrInvalidInput is returned by Run when the pattern or any of the numbers
// was rejected. The reason has already been reported when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// App represents the main application container
type App struct {
	config *config.Config
	fs     afero.Fs
	stdout io.Writer

	log     logger.Logger
	logFile afero.File

	reporter  report.Reporter
	mapper    *pattern.Mapper
	formatter output.Formatter
}

// New creates a new application instance. Log entries are appended to
// cfg.LogFile on fs; results are printed to stdout.
func New(cfg *config.Config, fs afero.Fs, stdout io.Writer) (*App, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	a := &App{
		config: cfg,
		fs:     fs,
		stdout: stdout,
	}

	if err := a.initLogger(); err != nil {
		return nil, err
	}
	a.initComponents()

	a.log.WithFields(logger.Fields{
		"verbose": cfg.Verbose,
		"output":  cfg.Output,
		"file":    cfg.OutputFile,
	}).Debug("Application initialized")

	return a, nil
}

// Run validates the pattern and the numbers and prints one sentence per
// number. A single invalid number rejects the whole batch.
func (a *App) Run(patternArg string, numbers []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	if len(numbers) == 0 {
		return fmt.Errorf("at least one number is required")
	}

	a.reporter.Report(report.DebugLogOnly(
		fmt.Sprintf("User input: %s %s", patternArg, strings.Join(numbers, " "))))

	// Both checks always run so the user sees every problem at once.
	lengths := a.mapper.ValidateInts(numbers)
	validPattern := a.mapper.ValidateChars(patternArg)
	if !validPattern || len(lengths) == 0 {
		a.log.WithFields(logger.Fields{
			"pattern": patternArg,
			"numbers": numbers,
		}).Debug("Input rejected")
		return ErrInvalidInput
	}

	batch := &output.Batch{
		Pattern:   patternArg,
		Generated: time.Now(),
	}

	direct := a.printsDirectly()
	for _, n := range lengths {
		text := a.mapper.Render(patternArg, n)
		batch.Sentences = append(batch.Sentences, output.Sentence{Length: n, Text: text})

		if direct {
			a.reporter.Report(report.Debug(text))
		} else {
			a.reporter.Report(report.DebugLogOnly(text))
		}
	}

	if direct {
		return nil
	}

	formatted, err := a.formatter.Format(batch)
	if err != nil {
		return fmt.Errorf("output formatting failed: %w", err)
	}

	if err := a.writeOutput(formatted, a.config.OutputFile); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// Shutdown flushes the logger and closes the log file
func (a *App) Shutdown() error {
	a.log.Debug("Shutting down")

	syncErr := a.log.Sync()
	if a.logFile == nil {
		// stderr does not always support fsync
		return nil
	}

	closeErr := a.logFile.Close()
	a.logFile = nil

	if syncErr != nil {
		return fmt.Errorf("failed to flush log: %w", syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close log file: %w", closeErr)
	}
	return nil
}

// initLogger opens the log sink and creates the application logger
func (a *App) initLogger() error {
	var sink io.Writer = os.Stderr

	path := a.config.LogFile
	if path != "" && path != config.StderrLogFile {
		if err := a.createDirectory(path); err != nil {
			return err
		}

		f, err := a.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		sink = f
	}

	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
		Output:    sink,
		Encoding:  logger.Encoding(a.config.LogFormat),
	})

	return nil
}

// initComponents initializes all application components
func (a *App) initComponents() {
	a.reporter = report.New(a.log, a.stdout, report.Config{
		NoColor: a.config.NoColor,
	})

	a.mapper = pattern.NewMapper(pattern.Default, a.reporter)

	a.formatter = output.NewFormatter(output.Config{
		Format:    output.Format(a.config.Output),
		WithStats: a.config.WithStats,
	}, a.log)
}

// printsDirectly reports whether sentences go straight to stdout as they are
// rendered instead of being collected into a formatted document.
func (a *App) printsDirectly() bool {
	return output.Format(a.config.Output) == output.FormatText &&
		a.config.OutputFile == "" &&
		!a.config.WithStats
}

// writeOutput writes the formatted output to the specified destination
func (a *App) writeOutput(content string, outputPath string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if outputPath == "" {
		if _, err := io.WriteString(a.stdout, content); err != nil {
			a.log.WithFields(logger.Fields{
				"error": err,
			}).Error("Failed to write to stdout")
			return err
		}
		return nil
	}

	if err := a.createDirectory(outputPath); err != nil {
		return err
	}

	if err := afero.WriteFile(a.fs, outputPath, []byte(content), 0644); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  outputPath,
		}).Error("Failed to write output file")
		return fmt.Errorf("failed to write output file: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"path": outputPath,
	}).Info("Output written successfully")
	return nil
}

// createDirectory ensures the parent directory of path exists
func (a *App) createDirectory(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	if err := a.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
