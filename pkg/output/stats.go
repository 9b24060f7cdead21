package output

import (
	"github.com/sonemaro/patterntext/pkg/logger"
)

// stats holds statistics about a rendered batch
type stats struct {
	Sentences  int `json:"sentences" yaml:"sentences"`
	TotalWords int `json:"totalWords" yaml:"totalWords"`
	Longest    int `json:"longest" yaml:"longest"`
}

func (f *formatter) calculateStats(batch *Batch) *stats {
	f.log.Debug("Calculating batch statistics")

	st := &stats{Sentences: len(batch.Sentences)}
	for _, s := range batch.Sentences {
		st.TotalWords += s.Length
		if s.Length > st.Longest {
			st.Longest = s.Length
		}
	}

	f.log.WithFields(logger.Fields{
		"sentences": st.Sentences,
		"words":     st.TotalWords,
		"longest":   st.Longest,
	}).Debug("Statistics calculated")

	return st
}
