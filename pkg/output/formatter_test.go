package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sonemaro/patterntext/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
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

func createTestBatch() *Batch {
	return &Batch{
		Pattern: "STTTS",
		Sentences: []Sentence{
			{Length: 5, Text: "Soft, Tough, Tough, Tough and Soft."},
			{Length: 7, Text: "Soft, Tough, Tough, Tough, Soft, Soft and Tough."},
			{Length: 1, Text: "Soft."},
		},
		Generated: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		withStats bool
		verify    func(*testing.T, string, *mockLogger)
	}{
		{
			name:   "text format",
			format: FormatText,
			verify: func(t *testing.T, output string, log *mockLogger) {
				assert.Equal(t, "Soft, Tough, Tough, Tough and Soft.\n"+
					"Soft, Tough, Tough, Tough, Soft, Soft and Tough.\n"+
					"Soft.\n", output)
				assert.Contains(t, log.logs, "DEBUG: Formatting text output")
			},
		},
		{
			name:      "text format with stats",
			format:    FormatText,
			withStats: true,
			verify: func(t *testing.T, output string, log *mockLogger) {
				assert.Contains(t, output, "Statistics:")
				assert.Contains(t, output, "Pattern: STTTS")
				assert.Contains(t, output, "Sentences: 3")
				assert.Contains(t, output, "Total Words: 13")
				assert.Contains(t, output, "Longest: 7")
				assert.Contains(t, log.logs, "DEBUG: Adding statistics to output")
			},
		},
		{
			name:   "json format",
			format: FormatJSON,
			verify: func(t *testing.T, output string, log *mockLogger) {
				var doc struct {
					Pattern   string     `json:"pattern"`
					Sentences []Sentence `json:"sentences"`
					Generated time.Time  `json:"generated"`
				}
				require.NoError(t, json.Unmarshal([]byte(output), &doc))
				assert.Equal(t, "STTTS", doc.Pattern)
				assert.Equal(t, createTestBatch().Sentences, doc.Sentences)
				assert.NotContains(t, output, `"statistics"`)
				assert.Contains(t, log.logs, "DEBUG: Formatting JSON output")
			},
		},
		{
			name:      "json format with stats",
			format:    FormatJSON,
			withStats: true,
			verify: func(t *testing.T, output string, log *mockLogger) {
				assert.Contains(t, output, `"statistics"`)
				assert.Contains(t, output, `"totalWords": 13`)
				assert.Contains(t, log.logs, "DEBUG: Adding statistics to structured output")
			},
		},
		{
			name:   "yaml format",
			format: FormatYAML,
			verify: func(t *testing.T, output string, log *mockLogger) {
				var doc struct {
					Pattern   string     `yaml:"pattern"`
					Sentences []Sentence `yaml:"sentences"`
				}
				require.NoError(t, yaml.Unmarshal([]byte(output), &doc))
				assert.Equal(t, "STTTS", doc.Pattern)
				assert.Equal(t, createTestBatch().Sentences, doc.Sentences)
				assert.Contains(t, output, "pattern: STTTS")
				assert.Contains(t, log.logs, "DEBUG: Formatting YAML output")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &mockLogger{}

			formatter := NewFormatter(Config{
				Format:    tt.format,
				WithStats: tt.withStats,
			}, log)

			output, err := formatter.Format(createTestBatch())

			require.NoError(t, err)
			require.NotEmpty(t, output)

			tt.verify(t, output, log)
		})
	}
}

func TestFormatterEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		batch     *Batch
		format    Format
		wantErr   bool
		errString string
		verify    func(*testing.T, string)
	}{
		{
			name:      "nil batch",
			batch:     nil,
			format:    FormatText,
			wantErr:   true,
			errString: "nil batch",
		},
		{
			name:      "invalid format",
			batch:     createTestBatch(),
			format:    "invalid",
			wantErr:   true,
			errString: "unsupported format",
		},
		{
			name:   "empty batch as text",
			batch:  &Batch{Pattern: "S"},
			format: FormatText,
			verify: func(t *testing.T, output string) {
				assert.Empty(t, output)
			},
		},
		{
			name:   "empty batch as json keeps an empty list",
			batch:  &Batch{Pattern: "S"},
			format: FormatJSON,
			verify: func(t *testing.T, output string) {
				assert.Contains(t, output, `"sentences": []`)
				assert.Contains(t, output, `"generated"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &mockLogger{}
			formatter := NewFormatter(Config{Format: tt.format}, log)

			output, err := formatter.Format(tt.batch)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)

				hasError := false
				for _, logMsg := range log.logs {
					if strings.HasPrefix(logMsg, "ERROR: ") {
						hasError = true
						break
					}
				}
				assert.True(t, hasError, "Expected error log message not found")
				return
			}

			require.NoError(t, err)
			tt.verify(t, output)
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatYAML.IsValid())
	assert.False(t, Format("tree").IsValid())
}
