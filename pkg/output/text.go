package output

import (
	"fmt"
	"strings"

	"github.com/sonemaro/patterntext/pkg/logger"
)

// formatText writes one sentence per line
func (f *formatter) formatText(batch *Batch) (string, error) {
	f.log.Debug("Formatting text output")

	var builder strings.Builder
	for _, s := range batch.Sentences {
		f.log.WithFields(logger.Fields{
			"length": s.Length,
		}).Trace("Writing sentence")

		builder.WriteString(s.Text)
		builder.WriteString("\n")
	}

	if f.config.WithStats {
		f.log.Debug("Adding statistics to output")
		stats := f.calculateStats(batch)
		builder.WriteString("\nStatistics:\n")
		builder.WriteString(fmt.Sprintf("  Pattern: %s\n", batch.Pattern))
		builder.WriteString(fmt.Sprintf("  Sentences: %d\n", stats.Sentences))
		builder.WriteString(fmt.Sprintf("  Total Words: %d\n", stats.TotalWords))
		builder.WriteString(fmt.Sprintf("  Longest: %d\n", stats.Longest))
	}

	return builder.String(), nil
}
