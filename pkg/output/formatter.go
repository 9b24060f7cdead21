/*
Package output provides formatters for rendered sentences in plain text,
JSON and YAML, with optional statistics.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:    output.FormatJSON,
		WithStats: true,
	}, log)

	result, err := formatter.Format(&output.Batch{
		Pattern:   "STTTS",
		Sentences: []output.Sentence{{Length: 2, Text: "Soft and Tough."}},
	})
*/
package output

import (
	"fmt"
	"time"

	"github.com/sonemaro/patterntext/pkg/logger"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IsValid reports whether f is a supported format
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Sentence is one rendered pattern
type Sentence struct {
	Length int    `json:"length" yaml:"length"`
	Text   string `json:"text" yaml:"text"`
}

// Batch holds every sentence rendered for one pattern
type Batch struct {
	Pattern   string
	Sentences []Sentence
	Generated time.Time
}

// Config holds formatter configuration
type Config struct {
	Format    Format
	WithStats bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(*Batch) (string, error)
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// Format formats the batch according to the configured format
func (f *formatter) Format(batch *Batch) (string, error) {
	if batch == nil {
		msg := "nil batch provided for formatting"
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}

	f.log.WithFields(logger.Fields{
		"format":    f.config.Format,
		"withStats": f.config.WithStats,
		"sentences": len(batch.Sentences),
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatText:
		return f.formatText(batch)
	case FormatJSON:
		return f.formatJSON(batch)
	case FormatYAML:
		return f.formatYAML(batch)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}
}
