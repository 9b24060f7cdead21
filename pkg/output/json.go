package output

import (
	"encoding/json"
	"time"

	"github.com/sonemaro/patterntext/pkg/logger"
)

// document represents the complete structured output
type document struct {
	Pattern    string     `json:"pattern" yaml:"pattern"`
	Sentences  []Sentence `json:"sentences" yaml:"sentences"`
	Statistics *stats     `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	Generated  time.Time  `json:"generated" yaml:"generated"`
}

func (f *formatter) newDocument(batch *Batch) *document {
	generated := batch.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	sentences := batch.Sentences
	if sentences == nil {
		sentences = []Sentence{}
	}

	doc := &document{
		Pattern:   batch.Pattern,
		Sentences: sentences,
		Generated: generated,
	}

	if f.config.WithStats {
		f.log.Debug("Adding statistics to structured output")
		doc.Statistics = f.calculateStats(batch)
	}

	return doc
}

func (f *formatter) formatJSON(batch *Batch) (string, error) {
	f.log.Debug("Formatting JSON output")

	bytes, err := json.MarshalIndent(f.newDocument(batch), "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}
