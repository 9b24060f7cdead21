package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sonemaro/patterntext/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }
func (m *mockLogger) Sync() error                                   { return nil }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReport(t *testing.T) {
	tests := []struct {
		name       string
		message    Message
		wantLogs   []string
		wantOutput string
	}{
		{
			name:       "error message goes to log and console",
			message:    Error("Test message"),
			wantLogs:   []string{"ERROR: Test message"},
			wantOutput: "Test message\n",
		},
		{
			name:       "log only error stays off the console",
			message:    ErrorLogOnly("Test message"),
			wantLogs:   []string{"ERROR: Test message"},
			wantOutput: "",
		},
		{
			name:       "debug message logged at debug level",
			message:    Debug("Test message"),
			wantLogs:   []string{"DEBUG: Test message"},
			wantOutput: "Test message\n",
		},
		{
			name:       "debug log only",
			message:    DebugLogOnly("User input: S 1"),
			wantLogs:   []string{"DEBUG: User input: S 1"},
			wantOutput: "",
		},
		{
			name:       "info message",
			message:    Message{Text: "hello", Level: LevelInfo},
			wantLogs:   []string{"INFO: hello"},
			wantOutput: "hello\n",
		},
		{
			name:       "warn message",
			message:    Message{Text: "careful", Level: LevelWarn, LogOnly: true},
			wantLogs:   []string{"WARN: careful"},
			wantOutput: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &mockLogger{}
			var out bytes.Buffer

			r := New(log, &out, Config{})
			r.Report(tt.message)

			assert.Equal(t, tt.wantLogs, log.logs)
			assert.Equal(t, tt.wantOutput, out.String())
		})
	}
}

func TestReportNoColorOutsideTerminal(t *testing.T) {
	log := &mockLogger{}
	var out bytes.Buffer

	r := New(log, &out, Config{NoColor: false})
	r.Report(Error("0 is not valid number (should be integer greater than 0)"))

	assert.Equal(t, "0 is not valid number (should be integer greater than 0)\n", out.String())
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestReportWriteFailureIsLogged(t *testing.T) {
	log := &mockLogger{}

	r := New(log, failingWriter{}, Config{})
	r.Report(Debug("Soft."))

	assert.Equal(t, []string{"DEBUG: Soft.", "WARN: Failed to write message to console"}, log.logs)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "level(9)", Level(9).String())
}
