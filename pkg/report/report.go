/*
Package report delivers user-facing messages. Every message goes to the log
at its level, and to the console unless it is marked log-only.

Basic usage:

	r := report.New(log, os.Stdout, report.Config{})
	r.Report(report.Error("A is not one of the allowed letters"))
	r.Report(report.Debug("Soft, Tough and Soft."))
	r.Report(report.ErrorLogOnly("An empty string has been passed to the function"))
*/
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/sonemaro/patterntext/pkg/logger"
	"golang.org/x/term"
)

// Level is the severity a message is logged with.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Message is a single report.
type Message struct {
	Text  string
	Level Level

	// LogOnly keeps the message off the console
	LogOnly bool
}

// Debug builds a debug message shown on the console and in the log.
func Debug(text string) Message {
	return Message{Text: text, Level: LevelDebug}
}

// DebugLogOnly builds a debug message that only goes to the log.
func DebugLogOnly(text string) Message {
	return Message{Text: text, Level: LevelDebug, LogOnly: true}
}

// Error builds an error message shown on the console and in the log.
func Error(text string) Message {
	return Message{Text: text, Level: LevelError}
}

// ErrorLogOnly builds an error message that only goes to the log.
func ErrorLogOnly(text string) Message {
	return Message{Text: text, Level: LevelError, LogOnly: true}
}

// Reporter is the sink for user-facing messages.
type Reporter interface {
	Report(Message)
}

// Config holds reporter configuration
type Config struct {
	// NoColor disables colored error messages on the console
	NoColor bool
}

type reporter struct {
	log      logger.Logger
	out      io.Writer
	colorize bool
	errColor *color.Color
	mu       sync.Mutex
}

// New creates a Reporter that logs through log and prints to out.
// Error messages are colored only when colors are enabled and out is a terminal.
func New(log logger.Logger, out io.Writer, config Config) Reporter {
	if out == nil {
		out = os.Stdout
	}

	r := &reporter{
		log:      log,
		out:      out,
		colorize: !config.NoColor && isTerminal(out),
		errColor: color.New(color.FgRed),
	}
	if r.colorize {
		r.errColor.EnableColor()
	}
	return r
}

func (r *reporter) Report(m Message) {
	switch m.Level {
	case LevelError:
		r.log.Error(m.Text)
	case LevelWarn:
		r.log.Warn(m.Text)
	case LevelInfo:
		r.log.Info(m.Text)
	default:
		r.log.Debug(m.Text)
	}

	if m.LogOnly {
		return
	}

	text := m.Text
	if r.colorize && m.Level == LevelError {
		text = r.errColor.Sprint(text)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintln(r.out, text); err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
		}).Warn("Failed to write message to console")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
